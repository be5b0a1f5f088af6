// Package cmd provides Cobra CLI commands for sitepanel.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sitepanel/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "sitepanel",
		Short: "Inspect and manage per-website permissions",
		Long: `Sitepanel - the per-website permission panel.

Shows, for one origin at a time, the state of the tracked permission
features (camera, location, microphone, notification, persistent
storage, protected media, autoplay) and records decision changes.

Use 'sitepanel show <origin>' for the interactive panel, or the
subcommands for scripted operations.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// SetVersionInfo wires the build-time version into the root command.
func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}
