package schema

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/flowstub/internal/codegen/generror"
)

func newTestLoader(t *testing.T, prefix string, module bool) *Loader {
	t.Helper()
	l, err := NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)), prefix, module)
	require.NoError(t, err)
	return l
}

func TestBaseName(t *testing.T) {
	base, err := BaseName(filepath.Join("some", "dir", "timer.json"))
	require.NoError(t, err)
	assert.Equal(t, "timer", base)

	_, err = BaseName("schema.txt")
	var sfxErr *generror.SchemaSuffixError
	require.True(t, errors.As(err, &sfxErr))
	assert.Equal(t, "schema.txt", sfxErr.Path)
	assert.Equal(t, ".json", sfxErr.Suffix)
}

func TestLoadSingleNodeType(t *testing.T) {
	l := newTestLoader(t, "p", false)
	f, err := l.Load("dir/boolean.json", []byte(`{
		"name": "Boolean/Toggle",
		"private_data_type": "toggle_data",
		"options": {"members": []},
		"methods": {"open": "toggle_open", "close": "toggle_close"},
		"in_ports": [
			{"name": "IN", "data_type": "boolean", "methods": {"process": "toggle_process"}}
		],
		"out_ports": [
			{"name": "OUT", "data_type": "custom:MyThing", "methods": {"connect": "toggle_connect"}}
		],
		"description": "ignored field"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "boolean", f.BaseName)
	assert.Equal(t, "boolean-gen.h", f.HeaderInclude())
	assert.Equal(t, "boolean-gen.c", f.SourceInclude())

	nts := f.NodeTypes()
	require.Len(t, nts, 1)
	nt := nts[0]
	assert.Equal(t, "p_boolean_toggle", nt.NameC)
	assert.Equal(t, "P_BOOLEAN_TOGGLE", nt.NameUpper)
	assert.Equal(t, "p", nt.PrefixC)
	assert.True(t, nt.HasOptions())
	assert.False(t, nt.IsModule())
	assert.Equal(t, "toggle_open", nt.Methods.Open)
	assert.Equal(t, "toggle_close", nt.Methods.Close)
	require.Len(t, nt.InPorts, 1)
	assert.Equal(t, "boolean", nt.InPorts[0].DataType)
	assert.Equal(t, "toggle_process", nt.InPorts[0].Methods.Process)
	require.Len(t, nt.OutPorts, 1)
	assert.Equal(t, "toggle_connect", nt.OutPorts[0].Methods.Connect)
}

func TestLoadOptionsPresence(t *testing.T) {
	l := newTestLoader(t, "", false)

	f, err := l.Load("a.json", []byte(`{"name": "a"}`))
	require.NoError(t, err)
	assert.False(t, f.Root.HasOptions())

	f, err = l.Load("b.json", []byte(`{"name": "b", "options": true}`))
	require.NoError(t, err)
	assert.True(t, f.Root.HasOptions())
}

func TestLoadModuleExpansion(t *testing.T) {
	l := newTestLoader(t, "p", true)
	f, err := l.Load("mymodule.json", []byte(`{
		"name": "mymodule",
		"types": [
			{"name": "mymodule/nodeA", "private_data_type": "a_data"},
			{"name": "mymodule/Node-B"}
		]
	}`))
	require.NoError(t, err)
	require.True(t, f.Root.IsModule())

	nts := f.NodeTypes()
	require.Len(t, nts, 2)
	assert.Equal(t, "p_mymodule_nodea", nts[0].NameC)
	assert.Equal(t, "P_MYMODULE_NODEA", nts[0].NameUpper)
	assert.Equal(t, "p", nts[0].PrefixC)
	assert.Equal(t, "a_data", nts[0].PrivateDataType)
	assert.Equal(t, "p_mymodule_node_b", nts[1].NameC)
}

func TestLoadMalformedNamespace(t *testing.T) {
	l := newTestLoader(t, "", false)
	_, err := l.Load("mymodule.json", []byte(`{
		"name": "mymodule",
		"types": [{"name": "nodeA"}]
	}`))
	var mnErr *generror.MalformedNamespaceError
	require.True(t, errors.As(err, &mnErr), "expected MalformedNamespaceError, got %v", err)
	assert.Equal(t, "nodeA", mnErr.Name)
}

func TestLoadInvalidDescriptions(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", `{"in_ports": []}`},
		{"empty name", `{"name": ""}`},
		{"name not a string", `{"name": 3}`},
		{"ports not a list", `{"name": "x", "in_ports": {"data_type": "int"}}`},
		{"method name not a string", `{"name": "x", "in_ports": [{"methods": {"process": 1}}]}`},
		{"sub-type without name", `{"name": "x", "types": [{"in_ports": []}]}`},
		{"not json", `{"name": `},
	}
	l := newTestLoader(t, "", false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load("x.json", []byte(tt.doc))
			var schemaErr *generror.InvalidSchemaError
			require.True(t, errors.As(err, &schemaErr), "expected InvalidSchemaError, got %v", err)
			assert.NotEmpty(t, schemaErr.Violations)
			assert.Equal(t, "x.json", schemaErr.Path)
		})
	}
}

func TestLoadAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, os.WriteFile(first, []byte(`{"name": "one"}`), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(`{"name": "two"}`), 0o644))

	l := newTestLoader(t, "", false)
	files, err := l.LoadAll([]string{second, first})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "second", files[0].BaseName)
	assert.Equal(t, "first", files[1].BaseName)

	_, err = l.LoadAll([]string{first, filepath.Join(dir, "missing.json")})
	assert.Error(t, err)
}
