package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Column names of the results table.
const (
	resultsTable         = "results"
	colID                = "id"
	colAttemptID         = "attempt_id"
	colStartedAt         = "started_at"
	colCompletedAt       = "completed_at"
	colAnswered          = "answered"
	colPsychometric      = "psychometric"
	colTechnical         = "technical"
	colWiscar            = "wiscar"
	colOverall           = "overall"
	colRecommendation    = "recommendation"
	colData              = "data"
	resultsCompletedAtIx = "results_completed_at"
)

var (
	// resultsColumns holds the columns for the "results" table.
	resultsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt64, Increment: true},
		{Name: colAttemptID, Type: field.TypeString, Unique: true},
		{Name: colStartedAt, Type: field.TypeInt64},
		{Name: colCompletedAt, Type: field.TypeInt64},
		{Name: colAnswered, Type: field.TypeInt},
		{Name: colPsychometric, Type: field.TypeInt},
		{Name: colTechnical, Type: field.TypeInt},
		{Name: colWiscar, Type: field.TypeInt},
		{Name: colOverall, Type: field.TypeInt},
		{Name: colRecommendation, Type: field.TypeString},
		{Name: colData, Type: field.TypeString, Size: 2147483647},
	}
	// resultsSchema holds the schema information for the "results" table.
	resultsSchema = &schema.Table{
		Name:       resultsTable,
		Columns:    resultsColumns,
		PrimaryKey: []*schema.Column{resultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    resultsCompletedAtIx,
				Unique:  false,
				Columns: []*schema.Column{resultsColumns[3]},
			},
		},
	}
	// tables holds every table the store manages.
	tables = []*schema.Table{resultsSchema}
)

// migrate creates or upgrades the schema. Safe to run on every open.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
