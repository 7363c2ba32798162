package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		repo, done, err := historyRepo()
		if err != nil {
			return err
		}
		defer done()

		recs, err := repo.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results yet. Run careerfit to take the assessment.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), historyTable(recs))
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [ATTEMPT]",
	Short: "Print the report for one attempt (default: the latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(mustString(cmd, "format"))
		if err != nil {
			return err
		}
		repo, done, err := historyRepo()
		if err != nil {
			return err
		}
		defer done()

		var rec *store.Record
		if len(args) == 1 {
			rec, err = repo.Get(cmd.Context(), args[0])
		} else {
			rec, err = repo.Latest(cmd.Context())
		}
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no matching result in history")
		}
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), format, report.Report{
			AttemptID:   rec.AttemptID,
			StartedAt:   rec.StartedAt,
			CompletedAt: rec.CompletedAt,
			Answered:    rec.Answered,
			Total:       len(cat.Questions()),
			Results:     rec.Results,
		})
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent results",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 0 {
			return fmt.Errorf("--keep must not be negative")
		}
		repo, done, err := historyRepo()
		if err != nil {
			return err
		}
		defer done()

		before, err := repo.Count(cmd.Context())
		if err != nil {
			return err
		}
		if err := repo.Prune(cmd.Context(), keep); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d result(s), kept %d.\n", max(before-keep, 0), min(before, keep))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to list (0 for all)")
	historyShowCmd.Flags().String("format", "text", "Report format: text, json or yaml")
	historyPruneCmd.Flags().Int("keep", 10, "Number of most recent results to keep")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
}

// historyRepo opens the results store; done closes it.
func historyRepo() (store.ResultRepo, func(), error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	if st == nil {
		return nil, nil, fmt.Errorf("history is turned off (--no-history or history: false)")
	}
	return st.ResultRepo(), func() { st.Close() }, nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func historyTable(recs []store.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COMPLETED", "ATTEMPT", "OVERALL", "RECOMMENDATION", "TIME", "ANSWERED")
	for _, rec := range recs {
		t.Row(
			rec.CompletedAt.Local().Format("2006-01-02 15:04"),
			rec.AttemptID,
			strconv.Itoa(rec.Results.Overall),
			rec.Results.Recommendation.Headline(),
			report.FormatDuration(rec.Duration().Seconds()),
			strconv.Itoa(rec.Answered),
		)
	}
	return t.String()
}
