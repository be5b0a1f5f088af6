package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/sitepanel/internal/cli/model"
	"github.com/bnema/sitepanel/internal/domain/entity"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <origin>",
	Short: "Show the permission panel for an origin",
	Long:  `Interactive permission panel for one origin. Toggle rows and cycle the autoplay mode; changes persist immediately.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the computed state as JSON")
}

func runShow(_ *cobra.Command, args []string) error {
	origin := args[0]

	if showJSON {
		return runShowJSON(origin)
	}

	m, err := model.NewPanelModel(GetApp().Ctx(), origin, GetApp().SitePermissionsUC, GetApp().Theme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// showEntry is the JSON projection of one feature's computed state.
type showEntry struct {
	Feature  string   `json:"feature"`
	Enabled  bool     `json:"enabled"`
	Visible  bool     `json:"visible"`
	Status   string   `json:"status"`
	Options  []string `json:"options,omitempty"`
	Selected string   `json:"selected,omitempty"`
}

func runShowJSON(origin string) error {
	app := GetApp()

	state, err := app.SitePermissionsUC.State(app.Ctx(), origin)
	if err != nil {
		return err
	}

	entries := make([]showEntry, 0, len(entity.Features()))
	for _, f := range entity.Features() {
		perm, ok := state[f]
		if !ok {
			return fmt.Errorf("state missing feature %q", f)
		}

		entry := showEntry{
			Feature: string(f),
			Enabled: perm.Enabled(),
			Visible: perm.Visible(),
			Status:  perm.Status(),
		}
		if autoplay, isAutoplay := perm.(entity.AutoplayPermission); isAutoplay {
			for _, option := range autoplay.Options {
				entry.Options = append(entry.Options, string(option))
			}
			entry.Selected = string(autoplay.Current)
		}
		entries = append(entries, entry)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}
