package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyaoi/termfolio/internal/app"
	"github.com/kyaoi/termfolio/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the saved theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	// The --theme flag is a startup override for the viewer, not for this
	// command.
	cfg.DefaultTheme = ""
	controller, err := app.NewThemeController(cfg, logger)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		switch args[0] {
		case "toggle":
			controller.Toggle()
		default:
			mode, ok := theme.ParseFlag(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q: must be dark, light or toggle", args[0])
			}
			controller.Set(mode)
		}
		logger.Debug("theme saved", "mode", controller.Mode())
	}

	fmt.Fprintln(cmd.OutOrStdout(), controller.Mode())
	return nil
}
