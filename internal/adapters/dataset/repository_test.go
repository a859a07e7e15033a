package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caremap/healthdesert/internal/domain/entities"
	apperrors "github.com/caremap/healthdesert/pkg/errors"
)

func testDataset() *Dataset {
	return &Dataset{
		Columns: []string{"name", "address_city", "address_stateOrRegion", "facilityTypeId", "specialties", "capacity", "numberDoctors"},
		Rows: []Row{
			{
				"name":                    "Korle Bu Teaching Hospital",
				"address_city":            "Accra",
				"address_stateOrRegion":   "Greater Accra",
				"address_line1":           "Guggisberg Avenue",
				"facilityTypeId":          "hospital",
				"operatorTypeId":          "government",
				"specialties":             `["cardiology","neurosurgery"]`,
				"procedure":               `["dialysis"]`,
				"equipment":               `["MRI scanner"]`,
				"capability":              `["24 hour emergency"]`,
				"description":             "Tertiary referral hospital.",
				"organizationDescription": "null",
				"numberDoctors":           "250",
				"capacity":                "2000",
				"websites":                `["https://kbth.gov.gh"]`,
				"phone_numbers":           `["+233302739510"]`,
			},
			{
				"name":                  "Accra Eye Clinic",
				"address_city":          "Accra",
				"address_stateOrRegion": "Greater Accra",
				"facilityTypeId":        "clinic",
				"specialties":           `["ophthalmology","cardiology"]`,
			},
			{
				"name":           "Riverside Health Post",
				"address_city":   "Dambai",
				"facilityTypeId": "clinic",
				"specialties":    `["generalPractice"]`,
			},
		},
	}
}

func TestFacility_Extraction(t *testing.T) {
	repo := NewRepository(testDataset())

	f, err := repo.Facility(entities.FacilitySelection{Row: 0, Lat: 5.53, Lng: -0.22})

	require.NoError(t, err)
	assert.Equal(t, "Korle Bu Teaching Hospital", f.Name)
	assert.Equal(t, "Greater Accra", f.Region)
	assert.Equal(t, "hospital", f.FacilityType)
	assert.Equal(t, []string{"cardiology", "neurosurgery"}, f.Specialties)
	assert.Equal(t, []string{"MRI scanner"}, f.Equipment)
	assert.Equal(t, "", f.OrgDescription)
	require.NotNil(t, f.NumDoctors)
	assert.Equal(t, 250, *f.NumDoctors)
	require.NotNil(t, f.BedCapacity)
	assert.Equal(t, 2000, *f.BedCapacity)
	// Row 0 of the data is row 2 of the source file, after the header.
	assert.Equal(t, 2, f.CSVRow)
}

func TestFacility_OutOfRange(t *testing.T) {
	repo := NewRepository(testDataset())

	_, err := repo.Facility(entities.FacilitySelection{Row: 99})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestRowCount(t *testing.T) {
	repo := NewRepository(testDataset())
	assert.Equal(t, 3, repo.RowCount())
}

func TestRegionProfile(t *testing.T) {
	repo := NewRepository(testDataset())

	profile, label := repo.RegionProfile("Greater Accra", "Accra")

	assert.Equal(t, "Greater Accra", label)
	assert.Equal(t, 2, profile.FacilityCount)
	assert.Equal(t, 1, profile.HospitalCount)
	assert.Equal(t, 2, profile.SpecialtyCounts["cardiology"])
	assert.Equal(t, 1, profile.SpecialtyCounts["ophthalmology"])
}

func TestRegionProfile_CityFallback(t *testing.T) {
	repo := NewRepository(testDataset())

	profile, label := repo.RegionProfile("", "Dambai")

	assert.Equal(t, "Dambai", label)
	assert.Equal(t, 1, profile.FacilityCount)
	assert.Equal(t, 0, profile.HospitalCount)
}

func TestRegionProfile_UnknownRegion(t *testing.T) {
	repo := NewRepository(testDataset())

	profile, label := repo.RegionProfile("Atlantis", "")

	assert.Equal(t, "Atlantis", label)
	require.NotNil(t, profile)
	assert.Equal(t, 0, profile.FacilityCount)
}
