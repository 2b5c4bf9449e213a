package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thirteen37/underlinee/internal/comment"
	"github.com/thirteen37/underlinee/internal/editor"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Echo stdin with a comment inserted below it",
	Long: `Read text from stdin, treat all of it as the selection and write it to
stdout followed by the generated comment line.

Intended for editors that pipe a range through a command, for example:
  :.!underlinee filter      (vim)
  | underlinee filter       (kakoune)`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	buf := editor.NewBuffer(string(data))
	buf.SelectAll()

	if err := runGenerateComment(cmd.Context(), buf); err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}

var commentCmd = &cobra.Command{
	Use:   "comment [text...]",
	Short: "Print the comment generated for some text",
	Long: `Print only the comment generated for the given text.
Arguments are joined with spaces; without arguments stdin is used.

Example:
  underlinee comment '# Installation'`,
	RunE: runComment,
}

func runComment(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), comment.Generate(editor.Trim(text)))
	return err
}
