package schema

import "encoding/json"

// PortMethods maps the port roles to the names of the C functions
// implementing them. Empty means the role is not used by the port.
type PortMethods struct {
	Process    string `json:"process"`
	Connect    string `json:"connect"`
	Disconnect string `json:"disconnect"`
}

// Port is one in or out port of a node type.
type Port struct {
	DataType string      `json:"data_type"`
	Methods  PortMethods `json:"methods"`
}

// NodeMethods maps the node lifecycle roles to C function names.
type NodeMethods struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// NodeType is the unit of generation.
type NodeType struct {
	Name            string          `json:"name"`
	PrivateDataType string          `json:"private_data_type"`
	Options         json.RawMessage `json:"options"`
	Methods         NodeMethods     `json:"methods"`
	InPorts         []Port          `json:"in_ports"`
	OutPorts        []Port          `json:"out_ports"`
	Types           []*NodeType     `json:"types"`

	// Derived by the loader.
	NameC     string `json:"-"`
	NameUpper string `json:"-"`
	PrefixC   string `json:"-"`
}

// HasOptions reports whether the description declares an options block.
// Only presence matters; the content is never inspected.
func (n *NodeType) HasOptions() bool {
	return len(n.Options) > 0
}

// IsModule reports whether the description declares a "types" collection.
func (n *NodeType) IsModule() bool {
	return n.Types != nil
}

// File is one loaded description file.
type File struct {
	Path     string
	BaseName string
	Root     *NodeType
}

// NodeTypes returns the node types the file expands to: the declared
// sub-types for a module description, the root description otherwise.
func (f *File) NodeTypes() []*NodeType {
	if f.Root.IsModule() {
		return f.Root.Types
	}
	return []*NodeType{f.Root}
}

// HeaderInclude is the companion generated header of the description.
func (f *File) HeaderInclude() string {
	return f.BaseName + "-gen.h"
}

// SourceInclude is the companion generated source of the description.
func (f *File) SourceInclude() string {
	return f.BaseName + "-gen.c"
}
