package cmd

import (
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear <origin>",
	Short: "Remove every stored decision for an origin",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	app := GetApp()
	origin := args[0]

	if err := app.SitePermissionsUC.Clear(app.Ctx(), origin); err != nil {
		return err
	}
	cmd.Printf("cleared stored decisions for %s\n", origin)
	return nil
}
