package cgen

import (
	"strings"

	"github.com/Alia5/flowstub/internal/codegen/common"
	"github.com/Alia5/flowstub/internal/codegen/generror"
)

const (
	customPrefix = "custom:"

	// TypeAny marks a port that declares no data type.
	TypeAny = "any"
	// TypeEmpty is the data type of ports carrying no payload.
	TypeEmpty = "empty"
)

// PacketType describes how a process stub receives a value of one data type.
// Decl is the C declaration prefix of the local receiving the value (it is
// followed directly by "in_value;"), Getter the accessor call filling it.
type PacketType struct {
	Tag    string
	Decl   string
	Getter string
}

type builtinType struct {
	decl   string
	getter string
}

var builtinTypes = map[string]builtinType{
	"boolean":          {"bool ", "boolean(packet, &in_value)"},
	"blob":             {"struct sol_blob *", "blob(packet, &in_value)"},
	"byte":             {"unsigned char ", "byte(packet, &in_value)"},
	"int":              {"struct sol_irange ", "irange(packet, &in_value)"},
	"float":            {"struct sol_drange ", "drange(packet, &in_value)"},
	"rgb":              {"struct sol_rgb ", "rgb(packet, &in_value)"},
	"direction-vector": {"struct sol_direction_vector ", "direction_vector(packet, &in_value)"},
	"string":           {"const char *", "string(packet, &in_value)"},
	"error":            {"int code_value; const char *", "error(packet, &code_value, &in_value)"},
}

// IsCustom reports whether tag names a per-description packet type.
func IsCustom(tag string) bool {
	return strings.HasPrefix(tag, customPrefix)
}

// CustomName returns the normalized symbol of a custom packet type.
// Example: "custom:MyThing" -> "mything".
func CustomName(tag string) string {
	return common.Normalize(strings.ToLower(strings.TrimPrefix(tag, customPrefix)))
}

// LookupType resolves a data type tag to its C representation and accessor.
func LookupType(tag string) (PacketType, error) {
	if IsCustom(tag) {
		name := CustomName(tag)
		if name == "" {
			return PacketType{}, &generror.UnrecognizedTypeError{Type: tag}
		}
		return PacketType{
			Tag:    tag,
			Decl:   "struct " + name + "_packet_data ",
			Getter: "packet_get_" + name + "(packet /* TODO: add args */)",
		}, nil
	}
	bt, ok := builtinTypes[tag]
	if !ok {
		return PacketType{}, &generror.UnrecognizedTypeError{Type: tag}
	}
	return PacketType{
		Tag:    tag,
		Decl:   bt.decl,
		Getter: "sol_flow_packet_get_" + bt.getter,
	}, nil
}

// CheckPortType accepts every tag a port may carry: the built-in types,
// custom types, and the pass-through tags "any" and "empty".
func CheckPortType(tag string) error {
	if tag == "" || tag == TypeAny || tag == TypeEmpty {
		return nil
	}
	_, err := LookupType(tag)
	return err
}
