package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/response"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/components"
)

// errQuit ends a line-mode attempt early.
var errQuit = errors.New("assessment abandoned")

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the assessment in plain line mode (no full-screen UI)",
	Long: `Answer the assessment one question at a time over stdin and stdout.

Type the number of an option and press Enter. An empty line repeats the
question; "q" abandons the attempt. The report is printed at the end and
the result is saved to history unless --no-history is set.`,
	RunE: runTake,
}

func init() {
	takeCmd.Flags().String("format", "text", "Report format: text, json or yaml")
}

func runTake(cmd *cobra.Command, args []string) error {
	formatVal, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatVal)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, false)
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
	var results store.ResultRepo
	if st != nil {
		defer st.Close()
		results = st.ResultRepo()
	}

	a := assessment.New(cat, assessment.WithLogger(log))
	out := cmd.OutOrStdout()
	rep, err := takeAssessment(a, cmd.InOrStdin(), out)
	if errors.Is(err, errQuit) {
		fmt.Fprintln(out, "\nAssessment abandoned. Nothing was saved.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	if err := report.Write(out, format, rep); err != nil {
		return err
	}

	if results != nil {
		if err := saveReport(cmd.Context(), results, rep); err != nil {
			log.Error("save result", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved to history as %s\n", rep.AttemptID)
	}
	return nil
}

// takeAssessment runs a started-from-intro assessment over a line-oriented
// reader. Every question must be answered before moving on.
func takeAssessment(a *assessment.Assessment, in io.Reader, out io.Writer) (report.Report, error) {
	if err := a.Start(); err != nil {
		return report.Report{}, err
	}
	scanner := bufio.NewScanner(in)

	section := ""
	for a.Phase() == assessment.PhaseTaking {
		q, _ := a.CurrentQuestion()
		p := a.Progress()

		if p.SectionID != section {
			section = p.SectionID
			sec, _ := a.CurrentSection()
			fmt.Fprintf(out, "\n══ Section %d of %d: %s ══\n%s\n", p.Section, p.TotalSections, sec.Title, sec.Description)
		}

		options := q.Options
		if q.Type == catalog.TypeLikert {
			options = components.LikertLabels
		}

		fmt.Fprintf(out, "\n── Question %d of %d (%.0f%% complete) ──\n", p.Index, p.TotalQuestions, p.Percent)
		if q.Type == catalog.TypeScenario {
			fmt.Fprintln(out, "Scenario:")
		}
		fmt.Fprintln(out, q.Prompt)
		for i, opt := range options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		for {
			fmt.Fprintf(out, "Your answer [1-%d, q to quit]: ", len(options))
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return report.Report{}, fmt.Errorf("read answer: %w", err)
				}
				return report.Report{}, errQuit
			}
			line := strings.TrimSpace(scanner.Text())
			if strings.EqualFold(line, "q") {
				return report.Report{}, errQuit
			}
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(options) {
				fmt.Fprintf(out, "Please enter a number from 1 to %d.\n", len(options))
				continue
			}

			ans := response.Choice(options[n-1])
			if q.Type == catalog.TypeLikert {
				ans = response.Rating(n)
			}
			if err := a.RecordAnswer(ans); err != nil {
				return report.Report{}, err
			}
			break
		}

		if err := a.Advance(); err != nil {
			return report.Report{}, err
		}
	}

	results, _ := a.Results()
	return report.Report{
		AttemptID:   a.AttemptID(),
		StartedAt:   a.StartedAt(),
		CompletedAt: a.FinishedAt(),
		Answered:    len(a.Responses()),
		Total:       len(a.Catalog().Questions()),
		Results:     results,
	}, nil
}

func saveReport(ctx context.Context, repo store.ResultRepo, rep report.Report) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return repo.Save(ctx, &store.Record{
		AttemptID:   rep.AttemptID,
		StartedAt:   rep.StartedAt,
		CompletedAt: rep.CompletedAt,
		Answered:    rep.Answered,
		Results:     rep.Results,
	})
}
