package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <origin>",
	Short: "List stored decisions for an origin",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	app := GetApp()
	origin := args[0]

	records, err := app.SitePermissionsUC.Records(app.Ctx(), origin)
	if err != nil {
		return err
	}

	mode, stored, err := app.Permissions.GetAutoplay(app.Ctx(), origin)
	if err != nil {
		return err
	}

	if len(records) == 0 && !stored {
		cmd.Printf("no stored decisions for %s\n", origin)
		return nil
	}

	for _, record := range records {
		updated := time.Unix(record.UpdatedAt, 0).Format("2006-01-02 15:04")
		cmd.Println(fmt.Sprintf("%-25s %-10s %s", record.Feature, record.Decision, updated))
	}
	if stored {
		cmd.Println(fmt.Sprintf("%-25s %s", "autoplay", mode))
	}
	return nil
}
