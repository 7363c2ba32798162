package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/response"
	"github.com/abhisek/careerfit/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score FILE",
	Short: "Score a response sheet without taking the assessment",
	Long: `Score a YAML or JSON response sheet of the form

  responses:
    - question: psych_1
      answer: 4
    - question: tech_1
      answer: 16 trucks

Likert answers are numbers from 1 to 5; other answers are the option text.
Answers to unknown questions are reported and ignored. Use "-" to read
the sheet from stdin. Scored sheets are not saved to history.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("format", "", "Report format: text, json or yaml (default from --output extension, else text)")
	scoreCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
}

func runScore(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	data, err := readSheet(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	responses, err := response.ParseSheet(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	known := knownResponses(cat, responses, func(id string) {
		log.Warn("unknown question in sheet", zap.String("question", id))
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring answer to unknown question %q\n", id)
	})

	rep := report.Report{
		Answered: len(known),
		Total:    len(cat.Questions()),
		Results:  scoring.Calculate(cat, known),
	}

	formatVal, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	format := report.FormatText
	switch {
	case formatVal != "":
		if format, err = report.ParseFormat(formatVal); err != nil {
			return err
		}
	case outPath != "":
		format = report.FormatForPath(outPath)
	}

	if outPath == "" {
		return report.Write(cmd.OutOrStdout(), format, rep)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Write(f, format, rep); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", outPath)
	return nil
}

func readSheet(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read response sheet: %w", err)
	}
	return data, nil
}

// knownResponses drops answers to questions the catalog doesn't have,
// calling unknown for each one.
func knownResponses(cat *catalog.Catalog, responses []response.Response, unknown func(id string)) []response.Response {
	out := make([]response.Response, 0, len(responses))
	for _, r := range responses {
		if _, err := cat.Lookup(r.QuestionID); errors.Is(err, catalog.ErrQuestionNotFound) {
			unknown(r.QuestionID)
			continue
		}
		out = append(out, r)
	}
	return out
}
