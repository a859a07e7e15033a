package dataset

import (
	"fmt"

	"github.com/caremap/healthdesert/internal/domain/entities"
	apperrors "github.com/caremap/healthdesert/pkg/errors"
)

// Repository exposes a loaded dataset to the analysis pipeline, with rows
// indexed by cleaned region and city for cross-facility comparisons.
type Repository struct {
	ds       *Dataset
	byRegion map[string][]Row
	byCity   map[string][]Row
}

// NewRepository indexes the dataset.
func NewRepository(ds *Dataset) *Repository {
	repo := &Repository{
		ds:       ds,
		byRegion: make(map[string][]Row),
		byCity:   make(map[string][]Row),
	}
	for _, row := range ds.Rows {
		if region := row.Get("address_stateOrRegion"); region != "" {
			repo.byRegion[region] = append(repo.byRegion[region], row)
		}
		if city := row.Get("address_city"); city != "" {
			repo.byCity[city] = append(repo.byCity[city], row)
		}
	}
	return repo
}

// RowCount is the number of data rows loaded (header excluded).
func (r *Repository) RowCount() int {
	return len(r.ds.Rows)
}

// Facility extracts the typed facility at the selection's row index.
// CSVRow is 1-based and accounts for the header row.
func (r *Repository) Facility(selection entities.FacilitySelection) (*entities.Facility, error) {
	if selection.Row < 0 || selection.Row >= len(r.ds.Rows) {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("selection row %d is outside the dataset (%d rows)", selection.Row, len(r.ds.Rows)))
	}
	row := r.ds.Rows[selection.Row]

	return &entities.Facility{
		Name:           row.Get("name"),
		City:           row.Get("address_city"),
		Region:         row.Get("address_stateOrRegion"),
		Address:        row.Get("address_line1"),
		FacilityType:   row.Get("facilityTypeId"),
		OperatorType:   row.Get("operatorTypeId"),
		Specialties:    ParseListField(row["specialties"]),
		Procedures:     ParseListField(row["procedure"]),
		Equipment:      ParseListField(row["equipment"]),
		Capabilities:   ParseListField(row["capability"]),
		Description:    row.Get("description"),
		OrgDescription: row.Get("organizationDescription"),
		NumDoctors:     ParseOptionalInt(row["numberDoctors"]),
		BedCapacity:    ParseOptionalInt(row["capacity"]),
		SourceURL:      row.Get("source_url"),
		Websites:       ParseListField(row["websites"]),
		PhoneNumbers:   ParseListField(row["phone_numbers"]),
		CSVRow:         selection.Row + 2,
	}, nil
}

// RegionProfile aggregates the rows sharing the facility's region, falling
// back to its city when the region column is empty. The returned label is
// the name used in comparison findings.
func (r *Repository) RegionProfile(region, city string) (*entities.RegionProfile, string) {
	label := region
	rows := r.byRegion[region]
	if region == "" {
		label = city
		rows = r.byCity[city]
	}

	profile := &entities.RegionProfile{SpecialtyCounts: make(map[string]int)}
	for _, row := range rows {
		profile.FacilityCount++
		if row.Get("facilityTypeId") == "hospital" {
			profile.HospitalCount++
		}
		for _, s := range ParseListField(row["specialties"]) {
			profile.SpecialtyCounts[s]++
		}
	}
	return profile, label
}
