package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BOM is the UTF-8 byte order mark.
const BOM = "\ufeff"

// Position is a zero-based location in a Buffer. Column counts runes.
type Position struct {
	Line   int
	Column int
}

// Before reports whether p comes before q.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

// Buffer is an in-memory text editor with a single cursor and selection.
//
// Every line keeps its own ending ("\r\n", "\n", "\r", or "" for a last
// line without one). Lines opened by the buffer use Newline.
type Buffer struct {
	lines   []string
	endings []string
	newline string
	// detected is set when newline was taken from the input
	detected      bool
	bom           bool
	anchor, caret Position
}

// NewBuffer creates a Buffer holding text, with the cursor at the start.
// A leading byte order mark is kept out of the lines and restored by String.
func NewBuffer(text string) *Buffer {
	b := &Buffer{newline: "\n"}
	if strings.HasPrefix(text, BOM) {
		b.bom = true
		text = text[len(BOM):]
	}

	b.lines, b.endings = splitLines(text)
	if b.endings[0] != "" {
		b.newline = b.endings[0]
		b.detected = true
	}
	return b
}

// Newline returns the line separator used for inserted lines.
func (b *Buffer) Newline() string {
	return b.newline
}

// NewlineDetected reports whether the separator was taken from the input text.
func (b *Buffer) NewlineDetected() bool {
	return b.detected
}

// SetNewline changes the line separator used for inserted lines.
func (b *Buffer) SetNewline(nl string) {
	if nl != "" {
		b.newline = nl
	}
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	return b.caret
}

// Selection returns the selected range in document order.
func (b *Buffer) Selection() (start, end Position) {
	if b.caret.Before(b.anchor) {
		return b.caret, b.anchor
	}
	return b.anchor, b.caret
}

// SetCursor moves the cursor to p and clears the selection.
func (b *Buffer) SetCursor(p Position) error {
	if err := b.validate(p); err != nil {
		return err
	}
	b.anchor, b.caret = p, p
	return nil
}

// Select selects the range from start to end, leaving the cursor at end.
func (b *Buffer) Select(start, end Position) error {
	if err := b.validate(start); err != nil {
		return fmt.Errorf("invalid selection start: %w", err)
	}
	if err := b.validate(end); err != nil {
		return fmt.Errorf("invalid selection end: %w", err)
	}
	b.anchor, b.caret = start, end
	return nil
}

// SelectAll selects the entire buffer.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	b.anchor = Position{}
	b.caret = Position{Line: last, Column: utf8.RuneCountInString(b.lines[last])}
}

// SelectedText returns the text between the selection bounds.
func (b *Buffer) SelectedText() string {
	start, end := b.Selection()
	if start == end {
		return ""
	}
	if start.Line == end.Line {
		line := b.lines[start.Line]
		return line[byteOffset(line, start.Column):byteOffset(line, end.Column)]
	}

	var sb strings.Builder
	first := b.lines[start.Line]
	sb.WriteString(first[byteOffset(first, start.Column):])
	sb.WriteString(b.endings[start.Line])
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteString(b.lines[i])
		sb.WriteString(b.endings[i])
	}
	last := b.lines[end.Line]
	sb.WriteString(last[:byteOffset(last, end.Column)])
	return sb.String()
}

// MoveToBeginningOfLine moves the cursor to column zero of its line and clears the selection.
func (b *Buffer) MoveToBeginningOfLine() {
	b.caret.Column = 0
	b.anchor = b.caret
}

// SelectToEndOfLine extends the selection to the end of the cursor's line.
func (b *Buffer) SelectToEndOfLine() {
	b.caret.Column = utf8.RuneCountInString(b.lines[b.caret.Line])
}

// SelectCurrentLineIfEmpty implements Editor.
func (b *Buffer) SelectCurrentLineIfEmpty() string {
	if text := b.SelectedText(); text != "" {
		return text
	}
	b.MoveToBeginningOfLine()
	b.SelectToEndOfLine()
	return b.SelectedText()
}

// InsertNewlineBelow opens an empty line below the line holding the end of
// the selection and moves the cursor onto it.
func (b *Buffer) InsertNewlineBelow() {
	_, end := b.Selection()
	at := end.Line + 1

	ending := b.newline
	if b.endings[end.Line] == "" {
		// Last line without an ending: it gains one, the new line stays open
		b.endings[end.Line] = b.newline
		ending = ""
	}

	b.lines = append(b.lines, "")
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = ""

	b.endings = append(b.endings, "")
	copy(b.endings[at+1:], b.endings[at:])
	b.endings[at] = ending

	b.caret = Position{Line: at}
	b.anchor = b.caret
}

// InsertText replaces the selection with text and leaves the cursor after it.
func (b *Buffer) InsertText(text string) {
	start, end := b.Selection()

	head := b.lines[start.Line][:byteOffset(b.lines[start.Line], start.Column)]
	tail := b.lines[end.Line][byteOffset(b.lines[end.Line], end.Column):]
	tailEnding := b.endings[end.Line]

	inserted, ends := splitLines(text)
	if ends[len(ends)-1] != "" {
		inserted = append(inserted, "")
	}
	last := len(inserted) - 1
	caret := Position{
		Line:   start.Line + last,
		Column: utf8.RuneCountInString(inserted[last]),
	}
	if last == 0 {
		caret.Column += utf8.RuneCountInString(head)
	}

	inserted[0] = head + inserted[0]
	inserted[last] += tail

	endings := make([]string, len(inserted))
	for i := range endings {
		endings[i] = b.newline
	}
	endings[last] = tailEnding

	b.lines = splice(b.lines, start.Line, end.Line+1, inserted)
	b.endings = splice(b.endings, start.Line, end.Line+1, endings)

	b.caret = caret
	b.anchor = caret
}

// InsertTextBelowSelection implements Editor.
func (b *Buffer) InsertTextBelowSelection(text string) {
	b.InsertNewlineBelow()
	b.InsertText(text)
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	var sb strings.Builder
	if b.bom {
		sb.WriteString(BOM)
	}
	for i, line := range b.lines {
		sb.WriteString(line)
		sb.WriteString(b.endings[i])
	}
	return sb.String()
}

func (b *Buffer) validate(p Position) error {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return fmt.Errorf("line %d out of range (buffer has %d lines)", p.Line+1, len(b.lines))
	}
	if n := utf8.RuneCountInString(b.lines[p.Line]); p.Column < 0 || p.Column > n {
		return fmt.Errorf("column %d out of range (line %d has %d characters)", p.Column+1, p.Line+1, n)
	}
	return nil
}

// splitLines splits text after each "\r\n", "\n" or "\r". A trailing
// ending does not start another line. At least one line is returned.
func splitLines(text string) (lines, endings []string) {
	for start := 0; ; {
		i := strings.IndexAny(text[start:], "\r\n")
		if i < 0 {
			if start < len(text) || len(lines) == 0 {
				lines = append(lines, text[start:])
				endings = append(endings, "")
			}
			return lines, endings
		}

		end := start + i
		eol := text[end : end+1]
		if eol == "\r" && strings.HasPrefix(text[end+1:], "\n") {
			eol = "\r\n"
		}
		lines = append(lines, text[start:end])
		endings = append(endings, eol)
		start = end + len(eol)
	}
}

// splice replaces s[from:to] with repl.
func splice(s []string, from, to int, repl []string) []string {
	out := make([]string, 0, len(s)-(to-from)+len(repl))
	out = append(out, s[:from]...)
	out = append(out, repl...)
	return append(out, s[to:]...)
}

// byteOffset converts a rune column in line to a byte offset.
func byteOffset(line string, column int) int {
	off := 0
	for i := 0; i < column && off < len(line); i++ {
		_, size := utf8.DecodeRuneInString(line[off:])
		off += size
	}
	return off
}

// Ensure Buffer implements Editor.
var _ Editor = (*Buffer)(nil)
