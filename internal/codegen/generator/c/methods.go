package cgen

import (
	"github.com/Alia5/flowstub/internal/codegen/schema"
)

var structTmpl = mustTemplate("struct", `struct {{.}} {
    /* TODO: add struct fields */
};

`)

var openTmpl = mustTemplate("open", `static int
{{.Name}}(struct sol_flow_node *node, void *data, const struct sol_flow_node_options *options)
{
{{if .PrivateData}}    struct {{.PrivateData}} *mdata = data;
{{end}}{{if .Options}}    const struct {{.NameC}}_options *opts;

    SOL_FLOW_NODE_OPTIONS_SUB_API_CHECK(options, {{.NameUpper}}_OPTIONS_API_VERSION,
                                       -EINVAL);
    opts = (const struct {{.NameC}}_options *)options;

{{end}}    /* TODO: implement open method */

    return 0;
}

`)

var closeTmpl = mustTemplate("close", `static void
{{.Name}}(struct sol_flow_node *node, void *data)
{
{{if .PrivateData}}    struct {{.PrivateData}} *mdata = data;
{{end}}    /* TODO: implement close method */
}

`)

var portTmpl = mustTemplate("port", `static int
{{.Name}}(struct sol_flow_node *node, void *data, uint16_t port, uint16_t conn_id)
{
{{if .PrivateData}}    struct {{.PrivateData}} *mdata = data;
{{end}}    /* TODO: implement {{.Role}} method */

    return 0;
}

`)

var processTmpl = mustTemplate("process", `static int
{{.Name}}(struct sol_flow_node *node, void *data, uint16_t port, uint16_t conn_id, const struct sol_flow_packet *packet)
{
{{if .PrivateData}}    struct {{.PrivateData}} *mdata = data;
{{end}}{{with .Single}}    int r;
    {{.Decl}}in_value;

    r = {{.Getter}};
    SOL_INT_CHECK(r, < 0, r);

{{end}}    /* TODO: implement process method */

    return 0;
}

`)

type methodData struct {
	Name        string
	Role        string
	PrivateData string
	NameC       string
	NameUpper   string
	Options     bool
	Single      *PacketType
}

// declareStruct emits an empty private data struct unless the run already
// declared one with the same name.
func declareStruct(stub *Stub, nt *schema.NodeType, reg *Registry) error {
	name := nt.PrivateDataType
	if name == "" || !reg.Structs.Claim(name) {
		return nil
	}
	text, err := render(structTmpl, name)
	if err != nil {
		return err
	}
	stub.add(SectionStruct, name, text)
	return nil
}

// declareMethods emits the lifecycle and port method stubs of nt that the
// run has not declared yet: open, close, then connect, disconnect and
// process methods in first-declared order.
func declareMethods(stub *Stub, nt *schema.NodeType, reg *Registry) error {
	nm, err := DeriveMethods(nt)
	if err != nil {
		return err
	}

	base := methodData{
		PrivateData: nt.PrivateDataType,
		NameC:       nt.NameC,
		NameUpper:   nt.NameUpper,
		Options:     nt.HasOptions(),
	}

	emit := func(name, role string, single *PacketType) error {
		if name == "" || !reg.Methods.Claim(name) {
			return nil
		}
		d := base
		d.Name = name
		d.Role = role
		d.Single = single

		t := portTmpl
		switch role {
		case "open":
			t = openTmpl
		case "close":
			t = closeTmpl
		case "process":
			t = processTmpl
		}
		text, err := render(t, d)
		if err != nil {
			return err
		}
		stub.add(SectionMethod, name, text)
		return nil
	}

	if err := emit(nm.Open, "open", nil); err != nil {
		return err
	}
	if err := emit(nm.Close, "close", nil); err != nil {
		return err
	}
	for _, a := range nm.Connect.List() {
		if err := emit(a.Method, "connect", nil); err != nil {
			return err
		}
	}
	for _, a := range nm.Disconnect.List() {
		if err := emit(a.Method, "disconnect", nil); err != nil {
			return err
		}
	}
	for _, a := range nm.Process.List() {
		if reg.Methods.Has(a.Method) {
			continue
		}
		var single *PacketType
		if tag, ok := a.SinglePacketType(); ok {
			pt, err := LookupType(tag)
			if err != nil {
				return err
			}
			single = &pt
		}
		if err := emit(a.Method, "process", single); err != nil {
			return err
		}
	}
	return nil
}
