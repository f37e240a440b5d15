package cgen

import (
	"fmt"
	"io"
	"strings"
)

// SectionKind identifies what a section of the stub declares.
type SectionKind int

const (
	SectionHeader SectionKind = iota
	SectionInclude
	SectionCommon
	SectionPacket
	SectionStruct
	SectionMethod
	SectionSource
)

var sectionKindNames = [...]string{
	SectionHeader:  "header",
	SectionInclude: "include",
	SectionCommon:  "common",
	SectionPacket:  "packet",
	SectionStruct:  "struct",
	SectionMethod:  "method",
	SectionSource:  "source",
}

func (k SectionKind) String() string {
	if int(k) < len(sectionKindNames) {
		return sectionKindNames[k]
	}
	return fmt.Sprintf("SectionKind(%d)", int(k))
}

// Section is one named chunk of generated text.
type Section struct {
	Kind SectionKind
	Name string
	Text string
}

// Stub is the generated file as an ordered list of sections.
type Stub struct {
	sections []Section
}

func (s *Stub) add(kind SectionKind, name, text string) {
	s.sections = append(s.sections, Section{Kind: kind, Name: name, Text: text})
}

// Sections returns the sections in output order.
func (s *Stub) Sections() []Section {
	return append([]Section(nil), s.sections...)
}

// Names returns the names of the sections of one kind, in output order.
func (s *Stub) Names(kind SectionKind) []string {
	var out []string
	for _, sec := range s.sections {
		if sec.Kind == kind {
			out = append(out, sec.Name)
		}
	}
	return out
}

// String renders the whole stub.
func (s *Stub) String() string {
	var b strings.Builder
	for _, sec := range s.sections {
		b.WriteString(sec.Text)
	}
	return b.String()
}

// Emit writes every section to w, calling each (when non-nil) after a
// section has been written.
func (s *Stub) Emit(w io.Writer, each func(Section)) (int64, error) {
	var total int64
	for _, sec := range s.sections {
		n, err := io.WriteString(w, sec.Text)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write %s section %q: %w", sec.Kind, sec.Name, err)
		}
		if each != nil {
			each(sec)
		}
	}
	return total, nil
}
