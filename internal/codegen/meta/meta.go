package meta

import "github.com/Alia5/flowstub/internal/codegen/schema"

// Metadata holds everything loaded for one generation run.
// Shared between the generator orchestrator and the C stub emitter.
type Metadata struct {
	Files  []*schema.File // in command-line order
	Prefix string
	Module bool
}

// NodeTypes returns every node type of the run, file by file, in declared order.
func (m *Metadata) NodeTypes() []*schema.NodeType {
	var out []*schema.NodeType
	for _, f := range m.Files {
		out = append(out, f.NodeTypes()...)
	}
	return out
}
