// Package cmd provides the CLI commands for underlinee.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-courier/logr"
	"github.com/spf13/cobra"
	"github.com/thirteen37/underlinee/internal/config"
	"github.com/thirteen37/underlinee/internal/editor"
	"github.com/thirteen37/underlinee/internal/extension"
	"github.com/thirteen37/underlinee/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "underlinee",
	Short: "Underline a line of text with a decorative comment",
	Long: `underlinee inserts a decorative comment below the selected text.

The comment style is the text before the first space of the selection
and is followed by "=" characters up to the selection's length:

  // hello world
  // ===========

Without a selection, the whole current line is used.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configFile string
	logLevel   string

	// cfg is the configuration loaded by setup.
	cfg *config.Config
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/underlinee/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration and attaches a logger to the command context.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configFile != "" {
		cfg, err = config.Load(expandPath(configFile))
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	l, err := logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cmd.SetContext(logging.WithLogger(cmd.Context(), l))
	return nil
}

// runGenerateComment activates the extension against buf and dispatches the
// generate-comment command, as a host editor would on a key binding.
func runGenerateComment(ctx context.Context, buf *editor.Buffer) error {
	ctx, l := logr.FromContext(ctx).Start(ctx, "generate-comment")
	defer l.End()

	reg := extension.NewRegistry()
	subs, err := extension.Activate(reg, editor.NewWorkspace(buf))
	if err != nil {
		return fmt.Errorf("failed to activate: %w", err)
	}
	defer extension.Deactivate(ctx, subs)

	return reg.Dispatch(ctx, extension.GenerateComment)
}

// expandPath expands ~ to home directory.
func expandPath(p string) string {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, p[2:])
	}
	return p
}
