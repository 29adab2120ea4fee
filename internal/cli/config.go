package cli

import (
	"errors"
	"fmt"
	"os"

	"share-cli/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{
				"data": app.cfg,
				"meta": map[string]any{"path": app.ConfigPath},
			})
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(app.ConfigPath); err == nil && !force {
				return writeErr(cmd, fmt.Errorf("config already exists: %s (use --force to overwrite)", app.ConfigPath))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return writeErr(cmd, err)
			}
			cfg := config.DefaultConfig()
			if err := cfg.Save(app.ConfigPath); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": cfg,
				"meta": map[string]any{"path": app.ConfigPath, "written": true},
			})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}
