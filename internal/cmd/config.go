package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-courier/logr"
	"github.com/spf13/cobra"
	"github.com/thirteen37/underlinee/internal/config"
	"github.com/thirteen37/underlinee/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the underlinee configuration file",
	// An unreadable config file must not stop init from replacing it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(cmd.ErrOrStderr(), logLevel, "")
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), l))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	Long: `Write the default settings as TOML to the file given by --config,
or to $XDG_CONFIG_HOME/underlinee/config.toml.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := expandPath(configFile)
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	l := logr.FromContext(cmd.Context()).WithValues("file", path)

	if _, err := os.Stat(path); err == nil {
		if !configForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
		l.Debug("overwriting")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
