// Package document holds editable source text as a line array and converts
// between byte offsets and line/column positions. It is the text-source
// collaborator consumed by the analysis pipeline; rendering and input handling
// live entirely outside this module.
package document

import (
	"strings"

	"github.com/cmmoran/jsls/internal/model"
)

// Change describes one edit, as delivered to change subscribers. StartLine is
// the first line touched by the edit; the tokenizer cache is invalidated from
// that line on.
type Change struct {
	StartLine    int
	StartOffset  int
	DeletedText  string
	InsertedText string
}

// Document is a line-indexed text buffer with a monotonically increasing
// version counter. The zero value is not usable; construct with New.
type Document struct {
	lines     []string
	version   int
	listeners []func(Change)
}

// New builds a document from the full source text.
func New(text string) *Document {
	return &Document{lines: splitLines(text), version: 1}
}

func splitLines(text string) []string {
	// '\n' only; '\r' stays attached to its line. An empty document still has
	// one (empty) line so line 0 always exists.
	return strings.Split(text, "\n")
}

// Text reassembles the full document text.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// Line returns line i without its trailing newline, or "" when out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// LineCount reports the number of lines; always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Len reports the byte length of the full text.
func (d *Document) Len() int {
	n := 0
	for _, l := range d.lines {
		n += len(l)
	}
	return n + len(d.lines) - 1
}

// Version reports the current document version. Every mutation increments it.
func (d *Document) Version() int {
	return d.version
}

// OffsetToPosition converts a byte offset into a line/column pair. Offsets
// past the end clamp to the final position.
func (d *Document) OffsetToPosition(off int) model.Position {
	if off < 0 {
		off = 0
	}
	remaining := off
	for i, l := range d.lines {
		if remaining <= len(l) {
			return model.Position{Line: i, Column: remaining}
		}
		remaining -= len(l) + 1 // consume the newline
	}
	last := len(d.lines) - 1
	return model.Position{Line: last, Column: len(d.lines[last])}
}

// PositionToOffset converts a line/column pair into a byte offset, clamping
// both coordinates into range.
func (d *Document) PositionToOffset(line, col int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lines) {
		line = len(d.lines) - 1
		col = len(d.lines[line])
	}
	off := 0
	for i := 0; i < line; i++ {
		off += len(d.lines[i]) + 1
	}
	if col < 0 {
		col = 0
	}
	if col > len(d.lines[line]) {
		col = len(d.lines[line])
	}
	return off + col
}

// LineStartOffset returns the byte offset at which line i begins.
func (d *Document) LineStartOffset(i int) int {
	return d.PositionToOffset(i, 0)
}

// SetText replaces the entire document in one edit.
func (d *Document) SetText(text string) {
	old := d.Text()
	d.lines = splitLines(text)
	d.bump(Change{StartLine: 0, StartOffset: 0, DeletedText: old, InsertedText: text})
}

// Replace substitutes text for the byte span [start, end) and notifies
// subscribers. The span is clamped into the document.
func (d *Document) Replace(start, end int, text string) {
	full := d.Text()
	if start < 0 {
		start = 0
	}
	if end > len(full) {
		end = len(full)
	}
	if end < start {
		end = start
	}
	startPos := d.OffsetToPosition(start)
	deleted := full[start:end]
	d.lines = splitLines(full[:start] + text + full[end:])
	d.bump(Change{
		StartLine:    startPos.Line,
		StartOffset:  start,
		DeletedText:  deleted,
		InsertedText: text,
	})
}

// Insert places text at a byte offset.
func (d *Document) Insert(off int, text string) {
	d.Replace(off, off, text)
}

// Delete removes the byte span [start, end).
func (d *Document) Delete(start, end int) {
	d.Replace(start, end, "")
}

// OnChange registers a callback invoked after every mutation. Callbacks run
// synchronously on the mutating goroutine, in registration order.
func (d *Document) OnChange(fn func(Change)) {
	d.listeners = append(d.listeners, fn)
}

func (d *Document) bump(c Change) {
	d.version++
	for _, fn := range d.listeners {
		fn(c)
	}
}
