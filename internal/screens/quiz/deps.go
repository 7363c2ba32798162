// Package quiz holds the screens of one assessment attempt: the intro, the
// question flow and the hand-off to the results screen.
package quiz

import (
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/store"
)

// Deps are the services the assessment screens share.
type Deps struct {
	Catalog *catalog.Catalog

	// Results receives completed attempts. Nil disables history.
	Results store.ResultRepo

	Logger *zap.Logger

	// ExportDir is suggested as the directory for exported reports.
	ExportDir string

	// Options are applied to every new attempt, after the logger.
	Options []assessment.Option
}

func (d Deps) logger() *zap.Logger {
	return logging.OrNop(d.Logger)
}

func (d Deps) newAssessment() *assessment.Assessment {
	opts := append([]assessment.Option{assessment.WithLogger(d.Logger)}, d.Options...)
	return assessment.New(d.Catalog, opts...)
}
