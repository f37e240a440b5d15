package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/Alia5/flowstub/internal/codegen/generror"
)

//go:embed nodetype.cue
var nodeTypeSchema string

// Validator checks raw descriptions against the embedded #NodeType definition.
type Validator struct {
	ctx *cue.Context
	def cue.Value
}

func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	compiled := ctx.CompileString(nodeTypeSchema, cue.Filename("nodetype.cue"))
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("compile node type schema: %w", err)
	}
	def := compiled.LookupPath(cue.ParsePath("#NodeType"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup #NodeType: %w", err)
	}
	return &Validator{ctx: ctx, def: def}, nil
}

// Validate returns an *generror.InvalidSchemaError listing every violation
// found in data, or nil when the description is acceptable.
func (v *Validator) Validate(path string, data []byte) error {
	val := v.ctx.CompileBytes(data, cue.Filename(path))
	if err := val.Err(); err != nil {
		return &generror.InvalidSchemaError{Path: path, Violations: violations(err)}
	}
	res := v.def.Unify(val)
	if err := res.Validate(cue.Concrete(true)); err != nil {
		return &generror.InvalidSchemaError{Path: path, Violations: violations(err)}
	}
	return nil
}

func violations(err error) []string {
	list := errors.Errors(err)
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Error())
	}
	if len(out) == 0 {
		out = append(out, err.Error())
	}
	return out
}
