package cmd

import (
	"log/slog"

	"github.com/Alia5/flowstub/internal/codegen/generator"
	"github.com/Alia5/flowstub/internal/log"
)

type Generate struct {
	Output string   `arg:"" name:"output" help:"Output stub (.c) file"`
	Inputs []string `arg:"" name:"inputs" help:"Node type description files (.json)"`
	Prefix string   `help:"Prefix to use in generated C code" env:"FLOWSTUB_PREFIX"`
	Module bool     `help:"Generate a module instead of builtin node types" env:"FLOWSTUB_MODULE"`
	Force  bool     `help:"Force stub file rewrite" env:"FLOWSTUB_FORCE"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, sections log.SectionLogger) error {
	logger.Debug("Starting stub generation", "output", g.Output, "inputs", g.Inputs)

	return generator.New(logger, sections).Run(generator.Options{
		Output: g.Output,
		Inputs: g.Inputs,
		Prefix: g.Prefix,
		Module: g.Module,
		Force:  g.Force,
	})
}
