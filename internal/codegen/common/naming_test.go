package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/flowstub/internal/codegen/generror"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"already_ok_09", "already_ok_09"},
		{"Mixed-Case", "Mixed_Case"},
		{"a/b.c d", "a_b_c_d"},
		{"ünï", "_n_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCompoundName(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		raw    string
		want   string
	}{
		{"no prefix", "", "My-Node", "my_node"},
		{"prefix", "p", "My-Node", "p_my_node"},
		{"prefix is normalized but keeps case", "Sol-Flow", "timer", "Sol_Flow_timer"},
		{"namespaced name", "", "mymodule/nodeA", "mymodule_nodea"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompoundName(tt.prefix, tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "P_MY_NODE", UpperName(CompoundName("p", "my-node")))
}

func TestSubTypeName(t *testing.T) {
	got, err := SubTypeName("p_mymodule", "mymodule", "mymodule/nodeA")
	require.NoError(t, err)
	assert.Equal(t, "p_mymodule_nodea", got)

	got, err = SubTypeName("m", "m", "m/node-b")
	require.NoError(t, err)
	assert.Equal(t, "m_node_b", got)

	for _, bad := range []string{"nodeA", "", "/nodeA", "mymodule/", "a/b/c"} {
		t.Run(bad, func(t *testing.T) {
			_, err := SubTypeName("p_mymodule", "mymodule", bad)
			var mnErr *generror.MalformedNamespaceError
			require.True(t, errors.As(err, &mnErr), "expected MalformedNamespaceError, got %v", err)
			assert.Equal(t, bad, mnErr.Name)
			assert.Equal(t, "mymodule", mnErr.Module)
		})
	}
}
