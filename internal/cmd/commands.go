package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirteen37/underlinee/internal/editor"
	"github.com/thirteen37/underlinee/internal/extension"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the editor commands registered on activation",
	Args:  cobra.NoArgs,
	RunE:  runCommands,
}

func runCommands(cmd *cobra.Command, args []string) error {
	reg := extension.NewRegistry()
	subs, err := extension.Activate(reg, editor.NewWorkspace(nil))
	if err != nil {
		return fmt.Errorf("failed to activate: %w", err)
	}
	defer extension.Deactivate(cmd.Context(), subs)

	for _, name := range reg.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
