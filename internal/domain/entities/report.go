package entities

import "time"

// FacilityAnalysis groups findings by question category for one facility.
type FacilityAnalysis struct {
	BasicLookups          []Finding `json:"basicLookups"`
	Validation            []Finding `json:"validation"`
	AnomalyDetection      []Finding `json:"anomalyDetection"`
	ServiceClassification []Finding `json:"serviceClassification"`
	WorkforceDistribution []Finding `json:"workforceDistribution"`
	ResourceGaps          []Finding `json:"resourceGaps"`
	NGOAnalysis           []Finding `json:"ngoAnalysis"`
}

// All returns every finding across categories, in category order.
func (a *FacilityAnalysis) All() []Finding {
	var out []Finding
	for _, fs := range [][]Finding{
		a.BasicLookups,
		a.Validation,
		a.AnomalyDetection,
		a.ServiceClassification,
		a.WorkforceDistribution,
		a.ResourceGaps,
		a.NGOAnalysis,
	} {
		out = append(out, fs...)
	}
	return out
}

// EnsureArrays replaces nil category slices with empty ones so every
// category marshals as a JSON array rather than null. The front-end iterates
// each category unconditionally.
func (a *FacilityAnalysis) EnsureArrays() {
	for _, fs := range []*[]Finding{
		&a.BasicLookups,
		&a.Validation,
		&a.AnomalyDetection,
		&a.ServiceClassification,
		&a.WorkforceDistribution,
		&a.ResourceGaps,
		&a.NGOAnalysis,
	} {
		if *fs == nil {
			*fs = []Finding{}
		}
	}
}

// DesertAnalysis groups findings for one desert zone.
type DesertAnalysis struct {
	Geospatial []Finding `json:"geospatial"`
	UnmetNeeds []Finding `json:"unmetNeeds"`
	NGOGaps    []Finding `json:"ngoGaps"`
}

// All returns every finding across categories, in category order.
func (a *DesertAnalysis) All() []Finding {
	var out []Finding
	for _, fs := range [][]Finding{a.Geospatial, a.UnmetNeeds, a.NGOGaps} {
		out = append(out, fs...)
	}
	return out
}

// EnsureArrays replaces nil category slices with empty ones so every
// category marshals as a JSON array rather than null.
func (a *DesertAnalysis) EnsureArrays() {
	for _, fs := range []*[]Finding{&a.Geospatial, &a.UnmetNeeds, &a.NGOGaps} {
		if *fs == nil {
			*fs = []Finding{}
		}
	}
}

// Citation records where a facility report's data came from.
type Citation struct {
	CSVRow     int      `json:"csvRow"`
	Source     string   `json:"source"`
	FieldsUsed []string `json:"fields_used"`
}

// FacilityReport is the per-facility entry in the output artifact.
type FacilityReport struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Lat          float64           `json:"lat"`
	Lng          float64           `json:"lng"`
	Name         string            `json:"name"`
	City         string            `json:"city"`
	Region       string            `json:"region"`
	FacilityType string            `json:"facilityType"`
	Specialties  []string          `json:"specialties"`
	Equipment    []string          `json:"equipment"`
	Capabilities []string          `json:"capabilities"`
	NumDoctors   *int              `json:"numDoctors"`
	BedCapacity  *int              `json:"bedCapacity"`
	Analysis     *FacilityAnalysis `json:"analysis"`
	AISummary    *string           `json:"aiSummary"`
	AlertCount   int               `json:"alertCount"`
	WarningCount int               `json:"warningCount"`
	Citation     Citation          `json:"citation"`
}

// DesertReport is the per-zone entry in the output artifact.
type DesertReport struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Lat                float64         `json:"lat"`
	Lng                float64         `json:"lng"`
	Name               string          `json:"name"`
	Region             string          `json:"region"`
	Population         int             `json:"population"`
	NearestFacility    string          `json:"nearestFacility"`
	NearestDistanceKm  float64         `json:"nearestDistance_km"`
	MissingSpecialties []string        `json:"missingSpecialties"`
	Context            string          `json:"context"`
	SeverityScore      int             `json:"severityScore"`
	Analysis           *DesertAnalysis `json:"analysis"`
	AISummary          *string         `json:"aiSummary"`
	Recommendations    []string        `json:"recommendations"`
	AlertCount         int             `json:"alertCount"`
}

// ReportMetadata summarizes one pipeline run.
type ReportMetadata struct {
	RunID              string    `json:"runId"`
	GeneratedAt        time.Time `json:"generatedAt"`
	TotalFacilities    int       `json:"totalFacilities"`
	TotalDeserts       int       `json:"totalDeserts"`
	CSVRowsAnalyzed    int       `json:"csvRowsAnalyzed"`
	TotalAlerts        int       `json:"totalAlerts"`
	TotalWarnings      int       `json:"totalWarnings"`
	QuestionCategories []string  `json:"questionCategories"`
	DataSource         string    `json:"dataSource"`
}

// Report is the full output artifact consumed by the globe front-end.
type Report struct {
	Facilities []*FacilityReport `json:"facilities"`
	Deserts    []*DesertReport   `json:"deserts"`
	Metadata   ReportMetadata    `json:"metadata"`
}

// QuestionCategories are the labels of the nine analysis categories.
var QuestionCategories = []string{
	"Q1: Basic Queries & Lookups",
	"Q2: Geospatial Queries",
	"Q3: Validation & Verification",
	"Q4: Misrepresentation & Anomaly Detection",
	"Q5: Service Classification & Inference",
	"Q6: Workforce Distribution",
	"Q7: Resource Distribution & Gaps",
	"Q8: NGO & International Organization Analysis",
	"Q9: Unmet Needs & Demand Analysis",
}
