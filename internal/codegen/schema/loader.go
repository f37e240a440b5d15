package schema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/flowstub/internal/codegen/common"
	"github.com/Alia5/flowstub/internal/codegen/generror"
)

// Suffix is the required extension of description files.
const Suffix = ".json"

// BaseName strips the directory and the description suffix from path.
// The result names the companion generated files.
func BaseName(path string) (string, error) {
	if !strings.HasSuffix(path, Suffix) {
		return "", &generror.SchemaSuffixError{Path: path, Suffix: Suffix}
	}
	return filepath.Base(strings.TrimSuffix(path, Suffix)), nil
}

// Loader parses description files and attaches derived naming metadata.
type Loader struct {
	prefix    string
	module    bool
	validator *Validator
	logger    *slog.Logger
}

func NewLoader(logger *slog.Logger, prefix string, module bool) (*Loader, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	return &Loader{
		prefix:    prefix,
		module:    module,
		validator: v,
		logger:    logger,
	}, nil
}

// LoadAll loads every path in order. Nothing is returned unless all of
// them load.
func (l *Loader) LoadAll(paths []string) ([]*File, error) {
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := l.LoadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func (l *Loader) LoadFile(path string) (*File, error) {
	if _, err := BaseName(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}
	return l.Load(path, data)
}

// Load validates and decodes one description. path is only used for the
// base name and for error messages.
func (l *Loader) Load(path string, data []byte) (*File, error) {
	base, err := BaseName(path)
	if err != nil {
		return nil, err
	}
	if err := l.validator.Validate(path, data); err != nil {
		return nil, err
	}

	var root NodeType
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode description %q: %w", path, err)
	}

	l.name(&root)
	if root.IsModule() {
		for _, t := range root.Types {
			if err := l.nameSubType(&root, t); err != nil {
				return nil, err
			}
		}
	} else if l.module {
		l.logger.Warn("Description has no types collection, generating a single node type", "file", path, "name", root.Name)
	}

	l.logger.Debug("Loaded description", "file", path, "name", root.Name, "name_c", root.NameC, "types", len(root.Types))
	return &File{Path: path, BaseName: base, Root: &root}, nil
}

func (l *Loader) name(n *NodeType) {
	n.PrefixC = common.Normalize(l.prefix)
	n.NameC = common.CompoundName(l.prefix, n.Name)
	n.NameUpper = common.UpperName(n.NameC)
}

func (l *Loader) nameSubType(module, t *NodeType) error {
	nameC, err := common.SubTypeName(module.NameC, module.Name, t.Name)
	if err != nil {
		return err
	}
	t.PrefixC = module.PrefixC
	t.NameC = nameC
	t.NameUpper = common.UpperName(nameC)
	return nil
}
