package cgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/flowstub/internal/codegen/generror"
	"github.com/Alia5/flowstub/internal/codegen/schema"
)

func port(dataType, process, connect, disconnect string) schema.Port {
	return schema.Port{
		DataType: dataType,
		Methods:  schema.PortMethods{Process: process, Connect: connect, Disconnect: disconnect},
	}
}

func TestDeriveMethods(t *testing.T) {
	nt := &schema.NodeType{
		Name:    "test",
		Methods: schema.NodeMethods{Open: "open_m", Close: "close_m"},
		InPorts: []schema.Port{
			port("int", "proc", "conn", ""),
			port("string", "proc", "conn", "disc"),
			port("", "other", "", ""),
		},
		OutPorts: []schema.Port{
			// process is meaningless on out ports
			port("float", "out_proc", "out_conn", "disc"),
		},
	}

	nm, err := DeriveMethods(nt)
	require.NoError(t, err)

	assert.Equal(t, "open_m", nm.Open)
	assert.Equal(t, "close_m", nm.Close)

	require.Equal(t, 2, nm.Process.Len())
	assert.Equal(t, []string{"int", "string"}, nm.Process.Get("proc").Types())
	assert.Equal(t, []string{TypeAny}, nm.Process.Get("other").Types())
	assert.Nil(t, nm.Process.Get("out_proc"))

	require.Equal(t, 2, nm.Connect.Len())
	assert.Equal(t, "conn", nm.Connect.List()[0].Method)
	assert.Equal(t, "out_conn", nm.Connect.List()[1].Method)
	assert.Equal(t, []string{"float"}, nm.Connect.Get("out_conn").Types())

	require.Equal(t, 1, nm.Disconnect.Len())
	assert.Equal(t, []string{"string", "float"}, nm.Disconnect.Get("disc").Types())
}

func TestDeriveMethodsRejectsUnknownType(t *testing.T) {
	nt := &schema.NodeType{
		Name:    "bad",
		InPorts: []schema.Port{port("quaternion", "proc", "", "")},
	}
	_, err := DeriveMethods(nt)
	var typeErr *generror.UnrecognizedTypeError
	require.True(t, errors.As(err, &typeErr), "expected UnrecognizedTypeError, got %v", err)
	assert.Equal(t, "quaternion", typeErr.Type)
	assert.Equal(t, "bad", typeErr.NodeType)
}

func TestSinglePacketType(t *testing.T) {
	tests := []struct {
		name   string
		types  []string
		want   string
		wantOK bool
	}{
		{"single int", []string{"int"}, "int", true},
		{"same type twice", []string{"int", "int"}, "int", true},
		{"single custom", []string{"custom:Foo"}, "custom:Foo", true},
		{"two types", []string{"int", "string"}, "", false},
		{"any", []string{TypeAny}, "", false},
		{"empty", []string{TypeEmpty}, "", false},
		{"concrete and any", []string{"int", TypeAny}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggs := newAggregates()
			for _, typ := range tt.types {
				aggs.add("m", typ)
			}
			got, ok := aggs.Get("m").SinglePacketType()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
