package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sitepanel/internal/domain/entity"
)

var setCmd = &cobra.Command{
	Use:   "set <origin> <feature> <decision>",
	Short: "Record a decision for an origin",
	Long: `Record a permission decision for an origin.

For toggle features the decision is granted, denied, or prompt
(prompt removes the stored decision). For autoplay the decision is one
of the modes: allow_all, block_audible, block_all.`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	origin, featureArg, decisionArg := args[0], args[1], args[2]

	feature, ok := entity.ParseFeature(featureArg)
	if !ok {
		return fmt.Errorf("unknown feature %q", featureArg)
	}

	if feature == entity.FeatureAutoplay {
		option, ok := entity.ParseAutoplayOption(decisionArg)
		if !ok {
			return fmt.Errorf("unknown autoplay mode %q (expected allow_all, block_audible, or block_all)", decisionArg)
		}
		if err := app.SitePermissionsUC.SetAutoplay(app.Ctx(), origin, option); err != nil {
			return err
		}
		cmd.Printf("%s: autoplay set to %s\n", origin, option)
		return nil
	}

	decision, ok := entity.ParsePermissionDecision(decisionArg)
	if !ok {
		return fmt.Errorf("unknown decision %q (expected granted, denied, or prompt)", decisionArg)
	}

	if decision == entity.PermissionPrompt {
		if err := app.Permissions.Delete(app.Ctx(), origin, feature); err != nil {
			return err
		}
		cmd.Printf("%s: %s reset to prompt\n", origin, feature)
		return nil
	}

	err := app.Permissions.Set(app.Ctx(), &entity.PermissionRecord{
		Origin:   origin,
		Feature:  feature,
		Decision: decision,
	})
	if err != nil {
		return err
	}
	cmd.Printf("%s: %s set to %s\n", origin, feature, decision)
	return nil
}
