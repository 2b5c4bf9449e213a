// Package editorconfig resolves .editorconfig properties that affect inserted text.
package editorconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	ec "github.com/editorconfig/editorconfig-core-go/v2"
)

// Properties holds the resolved properties for a single file.
type Properties struct {
	// EndOfLine is "lf", "crlf", "cr" or "" when unset.
	EndOfLine string
}

// Newline returns the line separator for EndOfLine, or "" when unset or unknown.
func (p Properties) Newline() string {
	switch p.EndOfLine {
	case ec.EndOfLineLf:
		return "\n"
	case ec.EndOfLineCrLf:
		return "\r\n"
	case ec.EndOfLineCr:
		return "\r"
	default:
		return ""
	}
}

// Resolve returns the properties applying to filename.
// .editorconfig files are read from the file's directory upward until one
// declares root = true. Nearer files and later sections take precedence.
func Resolve(filename string) (Properties, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return Properties{}, fmt.Errorf("failed to resolve %s: %w", filename, err)
	}

	def, err := ec.GetDefinitionForFilename(abs)
	if err != nil {
		return Properties{}, fmt.Errorf("failed to read .editorconfig for %s: %w", filename, err)
	}

	return Properties{
		EndOfLine: strings.ToLower(strings.TrimSpace(def.EndOfLine)),
	}, nil
}
