package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-courier/logr"
	"github.com/spf13/cobra"
	"github.com/thirteen37/underlinee/internal/editor"
	"github.com/thirteen37/underlinee/internal/editorconfig"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Insert a comment below a line or selection of a file",
	Long: `Insert a decorative comment below a line or selection of a file.

Lines and columns are 1-based. Without --select, the whole line given
by --line is used.

Example:
  underlinee generate main.go --line 12
  underlinee generate README.md --select 3:1-3:14 --in-place`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	genLine      int
	genSelection string
	genInPlace   bool
)

func init() {
	generateCmd.Flags().IntVarP(&genLine, "line", "l", 1, "Line to place the cursor on")
	generateCmd.Flags().StringVarP(&genSelection, "select", "s", "", "Selection as LINE:COL-LINE:COL")
	generateCmd.Flags().BoolVarP(&genInPlace, "in-place", "i", false, "Write the result back to the file (default from config)")

	generateCmd.MarkFlagsMutuallyExclusive("line", "select")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	filename := expandPath(args[0])
	l := logr.FromContext(cmd.Context()).WithValues("file", filename)

	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	buf := editor.NewBuffer(string(data))

	// A file without line breaks gives no hint; ask .editorconfig
	if cfg.EditorConfig && !buf.NewlineDetected() {
		props, err := editorconfig.Resolve(filename)
		if err != nil {
			l.Warn(err)
		} else {
			buf.SetNewline(props.Newline())
		}
	}

	if genSelection != "" {
		start, end, err := parseSelection(genSelection)
		if err != nil {
			return fmt.Errorf("invalid --select %q: %w", genSelection, err)
		}
		if err := buf.Select(start, end); err != nil {
			return fmt.Errorf("invalid --select %q: %w", genSelection, err)
		}
	} else {
		if genLine < 1 || genLine > buf.LineCount() {
			return fmt.Errorf("invalid --line %d: file has %d lines", genLine, buf.LineCount())
		}
		if err := buf.SetCursor(editor.Position{Line: genLine - 1}); err != nil {
			return fmt.Errorf("invalid --line %d: %w", genLine, err)
		}
	}

	if err := runGenerateComment(cmd.Context(), buf); err != nil {
		return err
	}

	inPlace := cfg.Output.InPlace
	if cmd.Flags().Changed("in-place") {
		inPlace = genInPlace
	}

	if inPlace {
		if err := os.WriteFile(filename, []byte(buf.String()), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
		l.WithValues("line", buf.Cursor().Line+1).Info("updated")
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}

// parseSelection parses a 1-based LINE:COL-LINE:COL range.
func parseSelection(s string) (start, end editor.Position, err error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return start, end, fmt.Errorf("expected LINE:COL-LINE:COL")
	}
	if start, err = parsePosition(from); err != nil {
		return start, end, err
	}
	if end, err = parsePosition(to); err != nil {
		return start, end, err
	}
	return start, end, nil
}

// parsePosition parses a 1-based LINE:COL into a zero-based Position.
func parsePosition(s string) (editor.Position, error) {
	lineStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return editor.Position{}, fmt.Errorf("expected LINE:COL, got %q", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return editor.Position{}, fmt.Errorf("invalid line %q", lineStr)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return editor.Position{}, fmt.Errorf("invalid column %q", colStr)
	}
	return editor.Position{Line: line - 1, Column: col - 1}, nil
}
