package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/config"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/logging"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/submit"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/ui"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// errReported marks failures already printed to the user
var errReported = errors.New("reported")

// rootCmd runs the interactive request form
var rootCmd = &cobra.Command{
	Use:   "sb",
	Short: "sb - scorecard analysis request builder",
	Long: `sb builds analysis requests against the topline scorecards.

Run without arguments to open the interactive request form. Use
'sb submit' for scripted requests or 'sb wizard' for a step-by-step prompt.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
		loaded, err := config.Load(configPath)
		switch {
		case err == nil:
			cfg = loaded
		case cmd == configInitCmd:
			// init rewrites the file, so a broken one must not block it.
			cfg = config.DefaultConfig()
			cfg.Logging.File = ""
		default:
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runForm,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file")

	rootCmd.AddCommand(submitCmd, wizardCmd, scorecardsCmd, configCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the request form needs an interactive terminal; use 'sb submit' instead")
	}

	logger.Info("starting request form", zap.String("config", configPath))
	sub := submit.NewAcknowledger(logger)
	defer sub.Close()

	opts := ui.Options{
		DefaultEmail: cfg.DefaultEmail,
		DateLayout:   cfg.DateLayout,
	}
	if cfg.Clipboard && !clipboard.Unsupported {
		opts.CopyToClipboard = clipboard.WriteAll
	}

	m := ui.NewModel(opts, sub, logger, ui.DefaultTheme(lipgloss.DefaultRenderer()))
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running request form: %w", err)
	}

	if fm, ok := final.(ui.Model); ok {
		if req, ok := fm.LastRequest(); ok {
			fmt.Printf("Last request: %s (%s)\n", req.ID, req.Scorecard)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
