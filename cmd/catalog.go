package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the question catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the assessment's questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		out, err := catalogTable(cat, section)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("section", "", "Only list questions in this section (psychometric, technical, wiscar)")
	catalogCmd.AddCommand(catalogListCmd)
}

// catalogTable renders the questions as a table, optionally for one section.
func catalogTable(cat *catalog.Catalog, section string) (string, error) {
	sections := cat.Sections()
	if section != "" {
		sec, ok := cat.Section(section)
		if !ok {
			ids := make([]string, 0, len(sections))
			for _, s := range sections {
				ids = append(ids, s.ID)
			}
			return "", fmt.Errorf("unknown section %q (want one of %s)", section, strings.Join(ids, ", "))
		}
		sections = []catalog.Section{sec}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SECTION", "TYPE", "CONSTRUCT", "WEIGHT", "OPTIONS", "PROMPT")
	for _, sec := range sections {
		for _, q := range sec.Questions {
			opts := "1-5"
			if q.Type != catalog.TypeLikert {
				opts = strconv.Itoa(len(q.Options))
			}
			t.Row(q.ID, sec.ID, string(q.Type), q.Construct,
				strconv.FormatFloat(q.Weight, 'g', -1, 64), opts, truncate(q.Prompt, 48))
		}
	}
	return t.String(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
