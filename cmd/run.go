package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	log, err := newLogger(cmd, true)
	if err != nil {
		return err
	}
	defer log.Sync()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}

	opts := app.Options{
		Catalog:   cat,
		Logger:    log,
		ExportDir: ".",
	}
	if st != nil {
		defer st.Close()
		opts.Results = st.ResultRepo()
	}
	opts.SkipWelcome, _ = cmd.Flags().GetBool("skip-welcome")

	log.Debug("configuration",
		zap.String("config_file", cfg.File),
		zap.Bool("history", cfg.History),
		zap.String("catalog", cfg.Catalog))
	return app.Run(opts)
}
