package cgen

import (
	"fmt"

	"github.com/Alia5/flowstub/internal/codegen/common"
	"github.com/Alia5/flowstub/internal/codegen/meta"
)

const commonHeaders = `#include "sol-flow-internal.h"

#include <sol-util.h>
#include <errno.h>

`

// Build assembles the stub for every description of md, in this order:
// header comment, companion header includes, common headers, custom
// packet types, private data structs, methods, companion source includes.
// reg records what has been declared and may be shared between runs that
// must not redeclare each other's symbols.
func Build(md *meta.Metadata, reg *Registry) (*Stub, error) {
	header, err := common.HeaderComment()
	if err != nil {
		return nil, err
	}

	stub := &Stub{}
	stub.add(SectionHeader, "header", header)
	for _, f := range md.Files {
		stub.add(SectionInclude, f.HeaderInclude(), includeLine(f.HeaderInclude()))
	}
	stub.add(SectionCommon, "common", commonHeaders+"\n")

	nodeTypes := md.NodeTypes()
	for _, nt := range nodeTypes {
		if err := declarePackets(stub, nt, reg); err != nil {
			return nil, fmt.Errorf("declare packets of %q: %w", nt.Name, err)
		}
	}
	for _, nt := range nodeTypes {
		if err := declareStruct(stub, nt, reg); err != nil {
			return nil, fmt.Errorf("declare struct of %q: %w", nt.Name, err)
		}
	}
	for _, nt := range nodeTypes {
		if err := declareMethods(stub, nt, reg); err != nil {
			return nil, fmt.Errorf("declare methods of %q: %w", nt.Name, err)
		}
	}

	for _, f := range md.Files {
		stub.add(SectionSource, f.SourceInclude(), includeLine(f.SourceInclude()))
	}
	return stub, nil
}
