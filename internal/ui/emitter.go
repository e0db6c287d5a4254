package ui

import (
	"bufio"
	"fmt"
	"io"
)

// Emitter writes the picked path for the calling shell
type Emitter struct {
	w *bufio.Writer
}

// NewEmitter wraps w, normally os.Stderr
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// Emit writes path without a trailing newline and flushes it
func (e *Emitter) Emit(path string) error {
	if _, err := e.w.WriteString(path); err != nil {
		return fmt.Errorf("failed to write path: %w", err)
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush path: %w", err)
	}
	return nil
}
