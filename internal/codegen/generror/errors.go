// Package generror holds the error kinds that abort a stub generation run.
// None of them are recoverable; callers match them with errors.As to decide
// how to report the failure.
package generror

import (
	"fmt"
	"strings"
)

// SchemaSuffixError reports an input path that does not carry the description
// file suffix.
type SchemaSuffixError struct {
	Path   string
	Suffix string
}

func (e *SchemaSuffixError) Error() string {
	return fmt.Sprintf("description file %q does not use the %s extension", e.Path, e.Suffix)
}

// OutputExistsError reports an output path that is already present while
// overwriting was not forced.
type OutputExistsError struct {
	Path string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("can't overwrite stub file %q, remove it yourself or use --force", e.Path)
}

// UnrecognizedTypeError reports a port data type that is neither built in nor custom.
type UnrecognizedTypeError struct {
	Type     string
	NodeType string
}

func (e *UnrecognizedTypeError) Error() string {
	if e.NodeType == "" {
		return fmt.Sprintf("unrecognized data type %q", e.Type)
	}
	return fmt.Sprintf("node type %q: unrecognized data type %q", e.NodeType, e.Type)
}

// MalformedNamespaceError reports a module sub-type whose name is not of the
// form "<namespace>/<node>".
type MalformedNamespaceError struct {
	Name   string
	Module string
}

func (e *MalformedNamespaceError) Error() string {
	return fmt.Sprintf("module %q: sub-type name %q is not of the form <namespace>/<node>", e.Module, e.Name)
}

// InvalidSchemaError carries every violation found while validating one
// description file.
type InvalidSchemaError struct {
	Path       string
	Violations []string
}

func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("invalid description %q: %s", e.Path, strings.Join(e.Violations, "; "))
}
