package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/spacetask/internal/config"
	"github.com/existflow/spacetask/internal/logger"
	"github.com/existflow/spacetask/internal/tui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
	dbPath     string
	memory     bool

	// cfg is loaded once per run in PersistentPreRunE
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spacetask",
	Short: "SpaceTask - Terminal todo app with spaces, undo and streaks",
	Long: `SpaceTask is a terminal-based todo application. Tasks live in spaces,
carry priorities, due dates and notes, and collect tracked time. Adding and
deleting can be undone and redone.

Run 'spacetask' without arguments to launch the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		loaded, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  %v, using defaults\n", err)
			loaded = config.DefaultConfig()
		}
		cfg = loaded

		// Override with CLI flags if provided
		configChanged := false
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
			configChanged = true
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
			configChanged = true
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
			configChanged = true
		}
		if cmd.Flags().Changed("db") {
			cfg.DBPath = dbPath
			configChanged = true
		}

		logConfig := logger.Config{
			Level:      logger.ParseLevel(cfg.LogLevel),
			FilePath:   cfg.LogFile,
			MaxSize:    10 * 1024 * 1024, // 10MB
			MaxAge:     7,
			MaxBackups: 5,
			Console:    cfg.LogConsole,
		}
		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		// Save config if changed via CLI flags
		if configChanged {
			if err := cfg.Save(); err != nil {
				logger.Warn("Failed to save config", logger.F("error", err))
			}
		}

		logger.Info("SpaceTask started", logger.F("command", cmd.Name()), logger.F("run", runID))
		return nil
	},

	RunE: runRoot,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("SpaceTask exiting", logger.F("command", cmd.Name()), logger.F("run", runID))
		_ = logger.Close()
	},
}

// runID tags every log line written by this process
var runID = uuid.NewString()

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		// Piped output gets the active list instead of the TUI
		return runList(cmd, args)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("Launching TUI")
	m := tui.NewModel(a.store, tui.Options{
		FirstVisit:    a.firstVisit,
		ConfirmDelete: cfg.ConfirmDelete,
		Logger:        a.log,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", logger.F("error", err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("TUI exited normally")
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add logging flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database")
	rootCmd.PersistentFlags().BoolVar(&memory, "memory", false, "Keep data in memory for this run only")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(redoCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(spaceCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(guideCmd)
}
