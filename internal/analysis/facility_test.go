package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caremap/healthdesert/internal/domain/entities"
)

func intPtr(n int) *int { return &n }

func emptyProfile() *entities.RegionProfile {
	return &entities.RegionProfile{SpecialtyCounts: map[string]int{}}
}

func TestBasicLookups_SpecialtyInventory(t *testing.T) {
	f := &entities.Facility{
		Specialties: []string{"cardiology", "pediatrics", "gynecologyAndObstetrics"},
	}

	findings := basicLookups(f, emptyProfile(), "")

	require.Len(t, findings, 1)
	assert.Equal(t, "Q1.1: What specialties does this facility offer?", findings[0].Question)
	assert.Contains(t, findings[0].Answer, "3 specialties")
	assert.Contains(t, findings[0].Answer, "Gynecology & Obstetrics")
	assert.True(t, strings.HasSuffix(findings[0].Answer, "."))
	assert.Equal(t, entities.ConfidenceHigh, findings[0].Confidence)
}

func TestBasicLookups_SpecialtyOverflow(t *testing.T) {
	specs := []string{
		"cardiology", "pediatrics", "radiology", "neurosurgery", "dentistry",
		"psychiatry", "nephrology", "urology", "dermatology", "oncology",
		"ophthalmology", "generalSurgery",
	}
	f := &entities.Facility{Specialties: specs}

	findings := basicLookups(f, emptyProfile(), "")

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Answer, "12 specialties")
	assert.Contains(t, findings[0].Answer, "and 2 more.")
	// The listed names stop at ten.
	assert.NotContains(t, findings[0].Answer, "General Surgery")
}

func TestBasicLookups_RegionComparisonVerdicts(t *testing.T) {
	f := &entities.Facility{Region: "Greater Accra"}

	cases := []struct {
		count   int
		verdict string
	}{
		{3, "has limited healthcare infrastructure"},
		{10, "has moderate coverage"},
		{25, "is one of the most served regions"},
	}
	for _, tc := range cases {
		profile := &entities.RegionProfile{FacilityCount: tc.count, HospitalCount: 2}
		findings := basicLookups(f, profile, "Greater Accra")

		require.Len(t, findings, 1)
		assert.Equal(t, "Q1.5: How does Greater Accra compare?", findings[0].Question)
		assert.Contains(t, findings[0].Answer, tc.verdict)
		assert.Contains(t, findings[0].Answer, "(2 hospitals)")
	}
}

func TestBasicLookups_NoRegionNoComparison(t *testing.T) {
	f := &entities.Facility{Specialties: []string{"cardiology"}}
	findings := basicLookups(f, emptyProfile(), "")
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Question, "Q1.1")
}

func TestValidation_MissingEquipmentEvidence(t *testing.T) {
	f := &entities.Facility{
		Specialties: []string{"cardiology"},
		Equipment:   []string{"ECG machine"},
	}

	findings := validation(f)

	require.Len(t, findings, 1)
	assert.Equal(t, "Q3.1: Does this facility have equipment for Cardiology?", findings[0].Question)
	assert.Contains(t, findings[0].Answer, "no mention of: echocardiograph, defibrillator, cardiac monitor")
	assert.Contains(t, findings[0].Answer, "Only evidence of: ECG.")
	assert.Equal(t, entities.FlagWarning, findings[0].Flag)
	assert.Equal(t, entities.ConfidenceMedium, findings[0].Confidence)
}

func TestValidation_EvidenceOutweighsMissing(t *testing.T) {
	f := &entities.Facility{
		Specialties: []string{"nephrology"},
		Equipment:   []string{"dialysis machine", "ultrasound scanner"},
	}

	// Both required items evidenced: no finding for the specialty, but the
	// structured-equipment check passes too, so nothing at all.
	assert.Empty(t, validation(f))
}

func TestValidation_NoStructuredEquipment(t *testing.T) {
	f := &entities.Facility{
		Specialties:  []string{"dermatology"},
		Capabilities: []string{"skin clinic"},
	}

	findings := validation(f)

	require.Len(t, findings, 1)
	assert.Equal(t, "Q3.4: Is equipment data available to verify procedure claims?", findings[0].Question)
	assert.Contains(t, findings[0].Answer, "claims 1 specialties but has NO structured equipment data")
	assert.Equal(t, entities.ConfidenceLow, findings[0].Confidence)
}

func TestAnomalies_SmallFacilityManySpecialties(t *testing.T) {
	specs := []string{
		"cardiology", "pediatrics", "radiology", "neurosurgery", "dentistry",
		"psychiatry", "nephrology", "urology", "dermatology", "oncology", "ophthalmology",
	}
	f := &entities.Facility{
		Specialties: specs,
		BedCapacity: intPtr(30),
		Equipment:   []string{"X-ray"},
	}

	findings := anomalies(f)

	var redFlag *entities.Finding
	for i := range findings {
		if strings.Contains(findings[i].Answer, "RED FLAG") {
			redFlag = &findings[i]
		}
	}
	require.NotNil(t, redFlag)
	assert.Contains(t, redFlag.Answer, "11 specialties with only 30 beds")
	assert.Equal(t, entities.FlagAlert, redFlag.Flag)
}

func TestAnomalies_NoBedsManySpecialties(t *testing.T) {
	specs := make([]string, 16)
	for i := range specs {
		specs[i] = "cardiology"
	}
	f := &entities.Facility{Specialties: specs, Equipment: []string{"ECG"}}

	findings := anomalies(f)

	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].Answer, "CAUTION")
	assert.Contains(t, findings[0].Answer, "no bed capacity")
	assert.Equal(t, entities.FlagWarning, findings[0].Flag)
}

func TestAnomalies_LargeFacilityNoDoctorCount(t *testing.T) {
	f := &entities.Facility{
		BedCapacity: intPtr(150),
	}

	findings := anomalies(f)

	require.Len(t, findings, 1)
	assert.Equal(t, "Q4.7: Do facility characteristics correlate as expected?", findings[0].Question)
	assert.Contains(t, findings[0].Answer, "150 beds but no doctor count")
}

func TestAnomalies_ComplexClaimsWithoutInfrastructure(t *testing.T) {
	f := &entities.Facility{
		Specialties:  []string{"neurosurgery", "cardiacSurgery"},
		Capabilities: []string{"outpatient clinic"},
	}

	findings := anomalies(f)

	require.Len(t, findings, 2)
	assert.Contains(t, findings[0].Answer, "Claims advanced specialties (Neurosurgery, Cardiac Surgery) but lists NO equipment")
	assert.Equal(t, entities.FlagAlert, findings[0].Flag)
	assert.Contains(t, findings[1].Answer, "no mention of 24-hour or emergency services")
	assert.Equal(t, entities.FlagWarning, findings[1].Flag)
}

func TestAnomalies_ComplexClaimsWith24HourSignal(t *testing.T) {
	f := &entities.Facility{
		Specialties:  []string{"neurosurgery"},
		Equipment:    []string{"operating microscope"},
		Capabilities: []string{"24 hour emergency department"},
	}

	findings := anomalies(f)

	for _, finding := range findings {
		assert.NotContains(t, finding.Answer, "no mention of 24-hour")
	}
}

func TestAnomalies_CleanFacilityGetsSummary(t *testing.T) {
	f := &entities.Facility{
		Specialties: []string{"pediatrics"},
		BedCapacity: intPtr(60),
		NumDoctors:  intPtr(10),
		Equipment:   []string{"incubator"},
	}

	findings := anomalies(f)

	require.Len(t, findings, 1)
	assert.Equal(t, "Q4: Anomaly Detection Summary", findings[0].Question)
	assert.Equal(t, entities.FlagOK, findings[0].Flag)
	assert.Equal(t, entities.ConfidenceMedium, findings[0].Confidence)
}

func TestServiceClassification_ItinerantWins(t *testing.T) {
	f := &entities.Facility{
		Description: "Surgical camp held twice a year with outreach teams. Clinic open daily.",
	}

	findings := serviceClassification(f)

	require.NotEmpty(t, findings)
	assert.Contains(t, findings[0].Answer, "ITINERANT SIGNALS DETECTED")
	assert.Contains(t, findings[0].Answer, "camp, outreach, twice a year")
	assert.Contains(t, findings[0].Answer, "also found permanent signals: 'daily'")
	assert.Equal(t, entities.FlagWarning, findings[0].Flag)
}

func TestServiceClassification_PermanentOnly(t *testing.T) {
	f := &entities.Facility{
		Capabilities: []string{"Open 24/7 with full-time staff"},
	}

	findings := serviceClassification(f)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Answer, "permanently staffed")
	assert.Equal(t, entities.FlagOK, findings[0].Flag)
}

func TestServiceClassification_ReferralLanguage(t *testing.T) {
	f := &entities.Facility{
		Description: "We refer complicated cases and partner with the teaching hospital.",
	}

	findings := serviceClassification(f)

	var referral *entities.Finding
	for i := range findings {
		if strings.Contains(findings[i].Question, "Q5.2") {
			referral = &findings[i]
		}
	}
	require.NotNil(t, referral)
	assert.Contains(t, referral.Answer, "Referral language detected: 'refer, partner'")
}

func TestWorkforce_DoctorToBedRatio(t *testing.T) {
	f := &entities.Facility{
		NumDoctors:  intPtr(10),
		BedCapacity: intPtr(55),
	}

	findings := workforce(f)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Answer, "Facility reports 10 doctors.")
	assert.Contains(t, findings[0].Answer, "doctor-to-bed ratio of 1:5")
	assert.Equal(t, entities.ConfidenceHigh, findings[0].Confidence)
	assert.Empty(t, findings[0].Flag)
}

func TestWorkforce_MissingDoctorCount(t *testing.T) {
	f := &entities.Facility{}

	findings := workforce(f)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Answer, "No doctor count reported")
	assert.Equal(t, entities.FlagWarning, findings[0].Flag)
	assert.Equal(t, entities.ConfidenceLow, findings[0].Confidence)
}

func TestWorkforce_VisitingSpecialists(t *testing.T) {
	f := &entities.Facility{
		NumDoctors:  intPtr(3),
		Description: "A visiting consultant covers surgical cases part-time.",
	}

	findings := workforce(f)

	require.Len(t, findings, 2)
	assert.Contains(t, findings[1].Answer, "Visiting specialist signals detected: 'visiting, consultant, part-time'")
	assert.Equal(t, entities.FlagWarning, findings[1].Flag)
}

func TestResourceGaps_ScarceSpecialties(t *testing.T) {
	f := &entities.Facility{Specialties: []string{"neurosurgery", "pediatrics"}}
	profile := &entities.RegionProfile{
		SpecialtyCounts: map[string]int{"neurosurgery": 1, "pediatrics": 8},
	}

	findings := resourceGaps(f, profile)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Answer, "providing: Neurosurgery.")
	assert.NotContains(t, findings[0].Answer, "Pediatrics")
	assert.Equal(t, entities.FlagAlert, findings[0].Flag)
}

func TestResourceGaps_WellCoveredRegion(t *testing.T) {
	f := &entities.Facility{Specialties: []string{"pediatrics"}}
	profile := &entities.RegionProfile{SpecialtyCounts: map[string]int{"pediatrics": 12}}

	assert.Empty(t, resourceGaps(f, profile))
}

func TestResourceGaps_NoSpecialties(t *testing.T) {
	assert.Empty(t, resourceGaps(&entities.Facility{}, emptyProfile()))
}

func TestNGOAnalysis_SignalsInName(t *testing.T) {
	f := &entities.Facility{Name: "Hope Foundation Clinic"}

	findings := ngoAnalysis(f)

	require.Len(t, findings, 1)
	assert.Equal(t, "Q8.1: Is this an NGO-operated facility?", findings[0].Question)
	assert.Contains(t, findings[0].Answer, "'foundation'")
	assert.Equal(t, entities.ConfidenceMedium, findings[0].Confidence)
}

func TestNGOAnalysis_OperatorTypeOnly(t *testing.T) {
	f := &entities.Facility{Name: "District Clinic", OperatorType: "ngo"}

	findings := ngoAnalysis(f)

	require.Len(t, findings, 1)
}

func TestNGOAnalysis_NoSignals(t *testing.T) {
	f := &entities.Facility{Name: "District Clinic", OperatorType: "government"}
	assert.Empty(t, ngoAnalysis(f))
}

func TestAnalyzeFacility_ZeroSpecialties(t *testing.T) {
	f := &entities.Facility{Name: "Empty Facility"}

	result := AnalyzeFacility(f, emptyProfile(), "")

	assert.Empty(t, result.BasicLookups)
	assert.Empty(t, result.Validation)
	assert.Empty(t, result.ResourceGaps)
	// Anomaly summary still fires.
	require.Len(t, result.AnomalyDetection, 1)
	assert.Equal(t, entities.FlagOK, result.AnomalyDetection[0].Flag)
}
