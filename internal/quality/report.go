package quality

import (
	"github.com/caremap/healthdesert/internal/adapters/curated"
	"github.com/caremap/healthdesert/internal/adapters/dataset"
	"github.com/caremap/healthdesert/internal/domain/entities"
)

// ColumnsOfInterest are the dataset columns the analysis pipeline reads.
var ColumnsOfInterest = []string{
	"name",
	"address_city",
	"address_stateOrRegion",
	"address_line1",
	"facilityTypeId",
	"operatorTypeId",
	"specialties",
	"procedure",
	"equipment",
	"capability",
	"description",
	"organizationDescription",
	"numberDoctors",
	"capacity",
	"source_url",
}

// ColumnCoverage reports how many rows carry a usable value for one column.
type ColumnCoverage struct {
	Column   string  `json:"column"`
	NonEmpty int     `json:"nonEmpty"`
	Coverage float64 `json:"coverage"`
}

// Summary is the data-quality report for one dataset plus its curated
// analysis targets.
type Summary struct {
	RowCount        int              `json:"rowCount"`
	ColumnCount     int              `json:"columnCount"`
	Columns         []ColumnCoverage `json:"columns"`
	SelectionCount  int              `json:"selectionCount"`
	ZoneCount       int              `json:"zoneCount"`
	SelectionIssues []string         `json:"selectionIssues"`
	ZoneIssues      []string         `json:"zoneIssues"`
}

// OK reports whether the curated targets are usable against this dataset.
func (s *Summary) OK() bool {
	return len(s.SelectionIssues) == 0 && len(s.ZoneIssues) == 0
}

// BuildSummary computes field coverage over the columns of interest and
// validates the curated selections and zones against the dataset.
func BuildSummary(ds *dataset.Dataset, selections []entities.FacilitySelection, zones []entities.DesertZone) *Summary {
	summary := &Summary{
		RowCount:        len(ds.Rows),
		ColumnCount:     len(ds.Columns),
		SelectionCount:  len(selections),
		ZoneCount:       len(zones),
		SelectionIssues: curated.SelectionIssues(selections, len(ds.Rows)),
		ZoneIssues:      curated.ZoneIssues(zones),
	}

	for _, column := range ColumnsOfInterest {
		nonEmpty := 0
		for _, row := range ds.Rows {
			value := row.Get(column)
			if value != "" && value != "[]" {
				nonEmpty++
			}
		}
		coverage := 0.0
		if len(ds.Rows) > 0 {
			coverage = float64(nonEmpty) / float64(len(ds.Rows))
		}
		summary.Columns = append(summary.Columns, ColumnCoverage{
			Column:   column,
			NonEmpty: nonEmpty,
			Coverage: coverage,
		})
	}

	return summary
}
