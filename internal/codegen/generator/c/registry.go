package cgen

// builtinStructs are never redeclared as private data structs.
var builtinStructs = []string{"sol_drange", "sol_irange", "sol_rgb", "sol_direction_vector"}

// NameSet is an insertion-ordered set of symbol names.
type NameSet struct {
	names []string
	seen  map[string]bool
}

func NewNameSet(seed ...string) *NameSet {
	s := &NameSet{seen: make(map[string]bool)}
	for _, n := range seed {
		s.Claim(n)
	}
	return s
}

// Claim adds name and reports whether it was not present yet.
func (s *NameSet) Claim(name string) bool {
	if s.seen[name] {
		return false
	}
	s.seen[name] = true
	s.names = append(s.names, name)
	return true
}

func (s *NameSet) Has(name string) bool { return s.seen[name] }

// Names returns the claimed names in claim order.
func (s *NameSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Registry carries the symbols already emitted during one run, so that
// each custom packet, private data struct and method is declared once
// across every description of the run.
type Registry struct {
	Packets *NameSet
	Structs *NameSet
	Methods *NameSet
}

func NewRegistry() *Registry {
	return &Registry{
		Packets: NewNameSet(),
		Structs: NewNameSet(builtinStructs...),
		Methods: NewNameSet(),
	}
}
