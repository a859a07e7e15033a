package curated

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caremap/healthdesert/internal/domain/entities"
	apperrors "github.com/caremap/healthdesert/pkg/errors"
)

// LoadSelections reads the curated facility selections from a JSON file.
func LoadSelections(path string) ([]entities.FacilitySelection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facility selections file: %w", err)
	}

	var selections []entities.FacilitySelection
	if err := json.Unmarshal(data, &selections); err != nil {
		return nil, fmt.Errorf("failed to parse facility selections: %w", err)
	}

	return selections, nil
}

// SelectionIssues lists every problem with the selections against a dataset
// of rowCount rows.
func SelectionIssues(selections []entities.FacilitySelection, rowCount int) []string {
	var issues []string
	if len(selections) == 0 {
		issues = append(issues, "no facility selections configured")
	}

	seen := make(map[int]struct{}, len(selections))
	for i, s := range selections {
		if s.Row < 0 {
			issues = append(issues, fmt.Sprintf("selection at index %d: negative row %d", i, s.Row))
		} else if s.Row >= rowCount {
			issues = append(issues, fmt.Sprintf("selection at index %d: row %d is outside the dataset (%d rows)", i, s.Row, rowCount))
		}
		if _, dup := seen[s.Row]; dup {
			issues = append(issues, fmt.Sprintf("selection at index %d: duplicate row %d", i, s.Row))
		}
		seen[s.Row] = struct{}{}

		if s.Lat < -90 || s.Lat > 90 {
			issues = append(issues, fmt.Sprintf("selection at index %d: latitude %v out of range", i, s.Lat))
		}
		if s.Lng < -180 || s.Lng > 180 {
			issues = append(issues, fmt.Sprintf("selection at index %d: longitude %v out of range", i, s.Lng))
		}
	}
	return issues
}

// ValidateSelections rejects selections with any issue.
func ValidateSelections(selections []entities.FacilitySelection, rowCount int) error {
	if issues := SelectionIssues(selections, rowCount); len(issues) > 0 {
		return apperrors.NewValidationError(issues[0])
	}
	return nil
}

// LoadDesertZones reads the curated desert zones from a JSON file.
func LoadDesertZones(path string) ([]entities.DesertZone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read desert zones file: %w", err)
	}

	var zones []entities.DesertZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("failed to parse desert zones: %w", err)
	}

	return zones, nil
}

// ZoneIssues lists every problem with the configured desert zones.
func ZoneIssues(zones []entities.DesertZone) []string {
	var issues []string
	if len(zones) == 0 {
		issues = append(issues, "no desert zones configured")
	}

	seen := make(map[string]struct{}, len(zones))
	for i, z := range zones {
		if z.Name == "" {
			issues = append(issues, fmt.Sprintf("zone at index %d: missing name", i))
			continue
		}
		if _, dup := seen[z.Name]; dup {
			issues = append(issues, fmt.Sprintf("zone %q: duplicate name", z.Name))
		}
		seen[z.Name] = struct{}{}

		if z.Population <= 0 {
			issues = append(issues, fmt.Sprintf("zone %q: population must be positive", z.Name))
		}
		if z.Lat < -90 || z.Lat > 90 {
			issues = append(issues, fmt.Sprintf("zone %q: latitude %v out of range", z.Name, z.Lat))
		}
		if z.Lng < -180 || z.Lng > 180 {
			issues = append(issues, fmt.Sprintf("zone %q: longitude %v out of range", z.Name, z.Lng))
		}
		if z.NearestDistanceKm < 0 {
			issues = append(issues, fmt.Sprintf("zone %q: negative nearest distance", z.Name))
		}
		if len(z.MissingSpecialties) == 0 {
			issues = append(issues, fmt.Sprintf("zone %q: at least one missing specialty is required", z.Name))
		}
	}
	return issues
}

// ValidateDesertZones rejects zone sets with any issue.
func ValidateDesertZones(zones []entities.DesertZone) error {
	if issues := ZoneIssues(zones); len(issues) > 0 {
		return apperrors.NewValidationError(issues[0])
	}
	return nil
}
