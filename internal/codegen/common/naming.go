package common

import (
	"strings"

	"github.com/Alia5/flowstub/internal/codegen/generror"
)

// NamespaceSeparator splits a module sub-type name into namespace and node.
const NamespaceSeparator = "/"

// Normalize replaces every character outside [A-Za-z0-9_] with '_'.
// Case is preserved.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isIdentRune(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// CompoundName builds the canonical lower-case symbol for a node type:
// normalize(lower(raw)), prefixed by normalize(prefix) + "_" when a prefix is set.
// Example: ("p", "My-Node") -> "p_my_node".
func CompoundName(prefix, raw string) string {
	name := Normalize(strings.ToLower(raw))
	if p := Normalize(prefix); p != "" {
		return p + "_" + name
	}
	return name
}

// SubTypeName derives the compound name of a module sub-type from the
// module's compound name and the sub-type's raw "<namespace>/<node>" name.
// Example: ("p_mymodule", "mymodule/nodeA") -> "p_mymodule_nodea".
func SubTypeName(moduleNameC, moduleName, raw string) (string, error) {
	parts := strings.Split(raw, NamespaceSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", &generror.MalformedNamespaceError{Name: raw, Module: moduleName}
	}
	return moduleNameC + "_" + Normalize(strings.ToLower(parts[1])), nil
}

// UpperName is the macro/constant form of a compound name.
func UpperName(nameC string) string {
	return strings.ToUpper(nameC)
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
