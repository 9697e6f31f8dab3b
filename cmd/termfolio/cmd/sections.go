package cmd

import (
	"fmt"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kyaoi/termfolio/internal/app"
	"github.com/kyaoi/termfolio/internal/section"
	"github.com/kyaoi/termfolio/internal/ui"
)

var (
	sectionsWidth  int
	sectionsHeight int
	sectionsScroll int
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Print where each section lands for a terminal size",
	Args:  cobra.NoArgs,
	RunE:  runSections,
}

func init() {
	sectionsCmd.Flags().IntVar(&sectionsWidth, "width", 100, "Terminal width")
	sectionsCmd.Flags().IntVar(&sectionsHeight, "height", 40, "Terminal height")
	sectionsCmd.Flags().IntVar(&sectionsScroll, "scroll", -1, "Also report the active section at this line offset")
}

func runSections(cmd *cobra.Command, args []string) error {
	cfg.NoPersist = true
	state, err := app.LoadInitialState(cfg, logger)
	if err != nil {
		return err
	}

	model := ui.NewModel(state)
	model.Update(tea.WindowSizeMsg{Width: sectionsWidth, Height: sectionsHeight})
	layout := model.Layout()

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tTOP\tLINES\tRANGE")
	for _, id := range section.Order {
		m, ok := layout.Measure(id)
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\thidden\n", id)
			continue
		}
		top, _ := layout.Top(id)
		lines, _ := layout.Lines(id)
		fmt.Fprintf(w, "%s\t%d\t%d\t[%d,%d)\n", id, top, lines, m.Top, m.Top+m.Height)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if sectionsScroll >= 0 {
		active := section.ComputeActive(section.LineOffset(sectionsScroll), section.Home, layout)
		fmt.Fprintf(out, "\nactive at line %d: %s\n", sectionsScroll, active)
	}
	logger.Debug("measured layout", "width", sectionsWidth, "height", sectionsHeight,
		"lines", layout.TotalLines(), "theme", state.Theme.Mode())
	return nil
}
