package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kyaoi/termfolio/internal/app"
	"github.com/kyaoi/termfolio/internal/config"
	"github.com/kyaoi/termfolio/internal/theme"
)

var (
	verbose     bool
	cfgFile     string
	contentFile string
	themeFlag   string
	noPersist   bool
	logFile     string
	logger      *log.Logger
	cfg         *config.Config
	logCloser   io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "Browse a personal portfolio in the terminal",
	Long: `termfolio renders a single-page portfolio (home, about, projects, skills,
education, work, certifications and contact) in a scrollable terminal view.
The navigation bar follows the section you are reading and the dark/light
theme choice is remembered between runs.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlags(cmd)
		return setupLogger(cmd.Name() == "termfolio")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.LoadInitialState(cfg, logger)
		if err != nil {
			return err
		}
		logger.Info("starting", "theme", state.Theme.Mode(), "content", state.ContentPath)
		return app.Run(cmd.Context(), state)
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "termfolio.yaml", "Config file")
	rootCmd.PersistentFlags().StringVarP(&contentFile, "content", "c", "", "Portfolio Markdown file with YAML front matter")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Start in the given theme (dark or light)")
	rootCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "Do not read or write the theme preference file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.Content = contentFile
	}
	if flags.Changed("theme") {
		cfg.DefaultTheme = themeFlag
	}
	if flags.Changed("no-persist") {
		cfg.NoPersist = noPersist
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
}

// setupLogger builds the logger. The interactive view owns the terminal, so
// it only logs when a log file is configured.
func setupLogger(interactive bool) error {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	var out io.Writer = os.Stderr
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		out = f
		logCloser = f
	case interactive:
		out = io.Discard
	}

	palette := theme.PaletteFor(theme.Dark)
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(palette.Secondary).
		Bold(true)
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(palette.Accent).
		Bold(true)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(palette.Toggle).
		Bold(true)
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(palette.Error).
		Bold(true)

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: verbose || cfg.LogFile != "",
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
	return nil
}
