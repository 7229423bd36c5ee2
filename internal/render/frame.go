// Package render pushes rendered frames to a terminal-like writer.
package render

import (
	"fmt"
	"io"
	"strings"

	"text-ca/pkg/life"
)

const (
	ansiClear     = "\x1b[2J"
	ansiHome      = "\x1b[H"
	ansiEraseLine = "\x1b[K"
)

// FrameWriter writes one frame per call to an underlying writer. With
// Overdraw set it clears the screen once and then repaints in place by
// homing the cursor, which keeps a fixed-size grid flicker free.
type FrameWriter struct {
	out      io.Writer
	overdraw bool
	status   bool
	wrote    bool
}

// NewFrameWriter returns a writer targeting out. overdraw enables the
// in-place ANSI repaint, status appends a census line under the grid.
func NewFrameWriter(out io.Writer, overdraw, status bool) *FrameWriter {
	return &FrameWriter{out: out, overdraw: overdraw, status: status}
}

// WriteFrame emits a single frame. The frame text is written untouched;
// only cursor control and the status line are added around it.
func (fw *FrameWriter) WriteFrame(frame string, c life.Census, ruleName string) error {
	var b strings.Builder
	b.Grow(len(frame) + 64)

	if fw.overdraw {
		if !fw.wrote {
			b.WriteString(ansiClear)
		}
		b.WriteString(ansiHome)
	}
	b.WriteString(frame)
	if fw.status {
		fmt.Fprintf(&b, "gen %d | pop %d | %s", c.Generation, c.Population, ruleName)
		if fw.overdraw {
			b.WriteString(ansiEraseLine)
		}
		b.WriteByte('\n')
	}

	fw.wrote = true
	_, err := io.WriteString(fw.out, b.String())
	return err
}
