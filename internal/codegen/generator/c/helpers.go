package cgen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"pad":   pad,
	}
}

// pad returns as many spaces as the joined parts are long, aligning a
// continuation line under the first parameter of a declaration.
func pad(parts ...string) string {
	return strings.Repeat(" ", len(strings.Join(parts, "")))
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(tplFuncs()).Parse(text))
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func includeLine(file string) string {
	return fmt.Sprintf("#include \"%s\"\n", file)
}
