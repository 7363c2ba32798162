package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/config"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/store"
)

// cfg is resolved in PersistentPreRunE before any command runs.
var cfg = &config.Config{History: true, Log: config.LogConfig{Level: "info", Format: "console"}}

var rootCmd = &cobra.Command{
	Use:   "careerfit",
	Short: "Should I become a Logistics Planner?",
	Long: `careerfit is a terminal career-fit assessment for the Logistics Planner role.

It scores personality fit, technical aptitude and career readiness (WISCAR)
and recommends whether to pursue the career, prepare first, or look at
related paths. Completed results are kept in a local history database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(config.LoadOptions{
			ConfigFile: configFile,
			Flags:      cmd.Flags(),
		})
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/careerfit/config.yaml)")
	pf.String("db", "", "Path to SQLite history database (overrides CAREERFIT_DB env var)")
	pf.String("catalog", "", "Path to an alternative question catalog (YAML or JSON)")
	pf.String("log-level", "", "Log level: "+strings.Join(logging.Levels, ", "))
	pf.String("log-format", "", "Log format: "+strings.Join(logging.Formats, ", "))
	pf.String("log-file", "", "Write logs to this file")
	pf.Bool("no-history", false, "Do not read or write the results history")

	rootCmd.Flags().Bool("skip-welcome", false, "Start on the home screen")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path from config (flag, env or file),
// then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database. It returns nil when history is off.
func openStore() (*store.Store, error) {
	if !cfg.History {
		return nil, nil
	}
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCatalog returns the configured catalog or the embedded one.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog)
}

// newLogger builds the logger for a command. The TUI owns the terminal, so
// without an explicit log file it logs to careerfit.log in the data
// directory. Line-mode commands log to stderr and stay quiet below warn
// unless a level was asked for.
func newLogger(cmd *cobra.Command, tui bool) (*zap.Logger, error) {
	lc := cfg.Logging()
	if lc.File == "" {
		if tui {
			dir, err := store.DataDir()
			if err != nil {
				return nil, err
			}
			lc.File = filepath.Join(dir, "careerfit.log")
		} else if !cmd.Flags().Changed("log-level") && strings.EqualFold(lc.Level, "info") {
			lc.Level = "warn"
		}
	}
	return logging.New(lc)
}
