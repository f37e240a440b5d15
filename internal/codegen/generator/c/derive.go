package cgen

import (
	"github.com/Alia5/flowstub/internal/codegen/generror"
	"github.com/Alia5/flowstub/internal/codegen/schema"
)

// Aggregate is the set of data types invoking one method name, in the
// order they were first seen.
type Aggregate struct {
	Method string
	types  []string
	seen   map[string]bool
}

func (a *Aggregate) add(dataType string) {
	if a.seen[dataType] {
		return
	}
	a.seen[dataType] = true
	a.types = append(a.types, dataType)
}

// Types returns the distinct data types of the aggregate.
func (a *Aggregate) Types() []string {
	return append([]string(nil), a.types...)
}

// SinglePacketType returns the lone concrete data type of the aggregate.
// It reports false when more than one type is involved or when the only
// member is "any" or "empty"; the generated body then stays generic.
func (a *Aggregate) SinglePacketType() (string, bool) {
	if a.seen[TypeAny] || a.seen[TypeEmpty] {
		return "", false
	}
	if len(a.types) != 1 {
		return "", false
	}
	return a.types[0], true
}

// Aggregates maps method names to their aggregates, keeping first-declared order.
type Aggregates struct {
	order  []*Aggregate
	byName map[string]*Aggregate
}

func newAggregates() *Aggregates {
	return &Aggregates{byName: make(map[string]*Aggregate)}
}

func (m *Aggregates) add(method, dataType string) {
	if method == "" {
		return
	}
	if dataType == "" {
		dataType = TypeAny
	}
	a, ok := m.byName[method]
	if !ok {
		a = &Aggregate{Method: method, seen: make(map[string]bool)}
		m.byName[method] = a
		m.order = append(m.order, a)
	}
	a.add(dataType)
}

// List returns the aggregates in first-declared order.
func (m *Aggregates) List() []*Aggregate {
	return append([]*Aggregate(nil), m.order...)
}

// Get returns the aggregate of method, or nil.
func (m *Aggregates) Get(method string) *Aggregate {
	return m.byName[method]
}

func (m *Aggregates) Len() int { return len(m.order) }

// NodeMethods is everything one node type asks the emitter to declare.
type NodeMethods struct {
	Open       string
	Close      string
	Connect    *Aggregates
	Disconnect *Aggregates
	Process    *Aggregates
}

// DeriveMethods scans the ports of nt and aggregates, per role, the data
// types invoking each method name. Out ports have no process role.
func DeriveMethods(nt *schema.NodeType) (*NodeMethods, error) {
	nm := &NodeMethods{
		Open:       nt.Methods.Open,
		Close:      nt.Methods.Close,
		Connect:    newAggregates(),
		Disconnect: newAggregates(),
		Process:    newAggregates(),
	}

	for _, p := range nt.InPorts {
		if err := checkPort(nt, p); err != nil {
			return nil, err
		}
		nm.Process.add(p.Methods.Process, p.DataType)
		nm.Connect.add(p.Methods.Connect, p.DataType)
		nm.Disconnect.add(p.Methods.Disconnect, p.DataType)
	}
	for _, p := range nt.OutPorts {
		if err := checkPort(nt, p); err != nil {
			return nil, err
		}
		nm.Connect.add(p.Methods.Connect, p.DataType)
		nm.Disconnect.add(p.Methods.Disconnect, p.DataType)
	}
	return nm, nil
}

func checkPort(nt *schema.NodeType, p schema.Port) error {
	if err := CheckPortType(p.DataType); err != nil {
		return &generror.UnrecognizedTypeError{Type: p.DataType, NodeType: nt.Name}
	}
	return nil
}
