// Package editor defines the editing surface the comment command runs against.
package editor

import (
	"context"
	"strings"
	"unicode"

	"github.com/go-courier/logr"
	"github.com/thirteen37/underlinee/internal/comment"
)

// Editor is the narrow set of operations the comment command needs from a host editor.
type Editor interface {
	// SelectedText returns the currently selected text, or "" if nothing is selected.
	SelectedText() string

	// SelectCurrentLineIfEmpty selects the whole current line when the
	// selection is empty and returns the resulting selection text.
	SelectCurrentLineIfEmpty() string

	// InsertTextBelowSelection opens a new line below the selection and writes text into it.
	InsertTextBelowSelection(text string)
}

// Workspace gives access to the editor that currently has focus.
type Workspace interface {
	ActiveEditor() (Editor, bool)
}

// Single is a Workspace holding at most one editor.
type Single struct {
	editor Editor
}

// NewWorkspace returns a Workspace whose active editor is e.
// A nil e yields a workspace without an active editor.
func NewWorkspace(e Editor) *Single {
	return &Single{editor: e}
}

// ActiveEditor returns the held editor, if any.
func (w *Single) ActiveEditor() (Editor, bool) {
	if w == nil || w.editor == nil {
		return nil, false
	}
	return w.editor, true
}

// ResolveSelection returns the trimmed text the comment is generated from.
// An empty selection falls back to the entire current line.
func ResolveSelection(e Editor) string {
	selection := e.SelectedText()
	if selection == "" {
		selection = e.SelectCurrentLineIfEmpty()
	}
	return Trim(selection)
}

// Trim removes leading and trailing white space and byte order marks.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// InsertComment generates a comment for the active editor's selection and
// inserts it on a new line below. Without an active editor it does nothing
// and returns false.
func InsertComment(ctx context.Context, ws Workspace) (string, bool) {
	l := logr.FromContext(ctx)

	e, ok := ws.ActiveEditor()
	if !ok {
		l.Debug("no active editor")
		return "", false
	}

	selection := ResolveSelection(e)
	generated := comment.Generate(selection)
	e.InsertTextBelowSelection(generated)

	l.WithValues("selection", selection, "comment", generated).Debug("inserted comment")
	return generated, true
}
