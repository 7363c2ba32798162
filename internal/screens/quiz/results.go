package quiz

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/summary"
	"github.com/abhisek/careerfit/internal/store"
)

// newResultsScreen builds the results screen for a scored attempt. It saves
// the attempt to history when a repo is configured, and "retake" restarts
// the same assessment from its intro.
func newResultsScreen(deps Deps, a *assessment.Assessment) screen.Screen {
	rep := reportFor(a)

	opts := []summary.Option{
		summary.WithLogger(deps.Logger),
		summary.WithExportDir(deps.ExportDir),
		summary.WithRestart(func() screen.Screen {
			if err := a.Restart(); err != nil {
				deps.logger().Error("restart assessment", zap.Error(err))
				return NewIntro(deps)
			}
			return newIntro(deps, a)
		}),
	}
	if deps.Results != nil {
		rec := &store.Record{
			AttemptID:   rep.AttemptID,
			StartedAt:   rep.StartedAt,
			CompletedAt: rep.CompletedAt,
			Answered:    rep.Answered,
			Results:     rep.Results,
		}
		opts = append(opts, summary.WithSave(func(ctx context.Context) error {
			return deps.Results.Save(ctx, rec)
		}))
	}
	return summary.New(rep, opts...)
}

// reportFor snapshots a scored attempt.
func reportFor(a *assessment.Assessment) report.Report {
	results, _ := a.Results()
	return report.Report{
		AttemptID:   a.AttemptID(),
		StartedAt:   a.StartedAt(),
		CompletedAt: a.FinishedAt(),
		Answered:    len(a.Responses()),
		Total:       len(a.Catalog().Questions()),
		Results:     results,
	}
}
