package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// SectionLogger traces the sections written to a generated stub.
type SectionLogger interface {
	Log(kind, name, text string)
}

type sectionLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewSection creates a SectionLogger. If w is nil, returns a no-op logger.
func NewSection(w io.Writer) SectionLogger {
	return &sectionLogger{w: w}
}

// Log emits one line per section with its kind, symbol name, size and
// line count.
func (s *sectionLogger) Log(kind, name, text string) {
	if s.w == nil {
		return
	}

	line := fmt.Sprintf("%s %-7s %s: %d bytes, %d lines\n",
		time.Now().Format("2006/01/02 15:04:05"),
		kind,
		name,
		len(text),
		strings.Count(text, "\n"))

	s.mu.Lock()
	_, _ = io.WriteString(s.w, line)
	s.mu.Unlock()
}
