package render

import (
	"io"
	"strings"

	"github.com/lixenwraith/vi-maze/constants"
)

// TextSink writes buffers as plain lines, used when no full-screen terminal is available
type TextSink struct {
	w     io.Writer
	clear bool
	err   error
}

// NewTextSink writes to w; clear prefixes every frame with the ANSI clear-screen sequence
func NewTextSink(w io.Writer, clear bool) *TextSink {
	return &TextSink{w: w, clear: clear}
}

// NewText creates the plain line-mode renderer
func NewText(w io.Writer, clear bool) *Orchestrator {
	return NewDefault(NewTextSink(w, clear))
}

func (t *TextSink) Present(buf *Buffer) {
	var sb strings.Builder
	if t.clear {
		sb.WriteString(constants.ClearScreen)
	}
	for _, line := range buf.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(t.w, sb.String()); err != nil && t.err == nil {
		t.err = err
	}
}

// Err returns the first write error, if any
func (t *TextSink) Err() error {
	return t.err
}
