package repositories

import "github.com/caremap/healthdesert/internal/domain/entities"

// DatasetRepository exposes the loaded facility dataset to the analysis pipeline.
type DatasetRepository interface {
	// RowCount is the number of data rows loaded (header excluded).
	RowCount() int

	// Facility extracts the facility at the selection's row index.
	Facility(selection entities.FacilitySelection) (*entities.Facility, error)

	// RegionProfile aggregates rows for the facility's region, falling back
	// to its city when the region column is empty. Returns the label used.
	RegionProfile(region, city string) (*entities.RegionProfile, string)
}
