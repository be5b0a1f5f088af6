package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sitepanel/internal/ui"
)

var guiCmd = &cobra.Command{
	Use:   "gui <origin>",
	Short: "Open the GTK permission panel for an origin",
	Args:  cobra.ExactArgs(1),
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(_ *cobra.Command, args []string) error {
	app := GetApp()

	gtkApp := ui.NewApp(args[0], app.SitePermissionsUC, app.Config)
	if code := gtkApp.Run(app.Ctx(), os.Args[:1]); code != 0 {
		os.Exit(code)
	}
	return nil
}
