package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	cgen "github.com/Alia5/flowstub/internal/codegen/generator/c"
	"github.com/Alia5/flowstub/internal/codegen/generror"
	"github.com/Alia5/flowstub/internal/codegen/meta"
	"github.com/Alia5/flowstub/internal/codegen/schema"
	"github.com/Alia5/flowstub/internal/log"
)

// Options describe one generation run.
type Options struct {
	Output string
	Inputs []string
	Prefix string
	Module bool
	Force  bool
}

type Generator struct {
	logger   *slog.Logger
	sections log.SectionLogger
}

func New(logger *slog.Logger, sections log.SectionLogger) *Generator {
	if sections == nil {
		sections = log.NewSection(nil)
	}
	return &Generator{
		logger:   logger,
		sections: sections,
	}
}

// Run validates the inputs, loads every description, builds the stub in
// memory and only then creates the output file. The output is never
// touched when any earlier step fails.
func (g *Generator) Run(opts Options) (err error) {
	if len(opts.Inputs) == 0 {
		return errors.New("at least one description file is required")
	}
	for _, in := range opts.Inputs {
		if _, err := schema.BaseName(in); err != nil {
			return err
		}
	}
	if err := checkOutput(opts.Output, opts.Force); err != nil {
		return err
	}

	md, err := g.Load(opts)
	if err != nil {
		return err
	}

	g.logger.Debug("Building stub", "node_types", len(md.NodeTypes()))
	reg := cgen.NewRegistry()
	stub, err := cgen.Build(md, reg)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("create stub file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close stub file: %w", cerr)
		}
	}()

	n, err := stub.Emit(f, func(sec cgen.Section) {
		g.sections.Log(sec.Kind.String(), sec.Name, sec.Text)
	})
	if err != nil {
		return err
	}

	g.logger.Info("Generated stub",
		"file", opts.Output,
		"bytes", n,
		"packets", len(reg.Packets.Names()),
		"methods", len(reg.Methods.Names()))
	return nil
}

// Load reads every description of opts in command-line order.
func (g *Generator) Load(opts Options) (*meta.Metadata, error) {
	loader, err := schema.NewLoader(g.logger, opts.Prefix, opts.Module)
	if err != nil {
		return nil, err
	}

	g.logger.Info("Loading descriptions", "count", len(opts.Inputs), "prefix", opts.Prefix, "module", opts.Module)
	files, err := loader.LoadAll(opts.Inputs)
	if err != nil {
		return nil, err
	}
	return &meta.Metadata{
		Files:  files,
		Prefix: opts.Prefix,
		Module: opts.Module,
	}, nil
}

func checkOutput(path string, force bool) error {
	if path == "" {
		return errors.New("output path is required")
	}
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return &generror.OutputExistsError{Path: path}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat stub file: %w", err)
	}
	return nil
}
