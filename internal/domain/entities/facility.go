package entities

import "strings"

// Facility represents a healthcare facility extracted from one dataset row.
type Facility struct {
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Region         string   `json:"region"`
	Address        string   `json:"address"`
	FacilityType   string   `json:"facilityType"`
	OperatorType   string   `json:"operatorType"`
	Specialties    []string `json:"specialties"`
	Procedures     []string `json:"procedures"`
	Equipment      []string `json:"equipment"`
	Capabilities   []string `json:"capabilities"`
	Description    string   `json:"description"`
	OrgDescription string   `json:"orgDescription"`
	NumDoctors     *int     `json:"numDoctors"`
	BedCapacity    *int     `json:"bedCapacity"`
	SourceURL      string   `json:"sourceUrl"`
	Websites       []string `json:"websites"`
	PhoneNumbers   []string `json:"phone"`
	CSVRow         int      `json:"csvRow"`
}

// NarrativeText returns the lowercased unstructured text of the facility:
// capability lines plus both description fields.
func (f *Facility) NarrativeText() string {
	parts := []string{
		strings.Join(f.Capabilities, " "),
		f.Description,
		f.OrgDescription,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// EvidenceText returns NarrativeText extended with the structured equipment
// list, used when checking equipment claims against all available text.
func (f *Facility) EvidenceText() string {
	return f.NarrativeText() + " " + strings.ToLower(strings.Join(f.Equipment, " "))
}

// RegionProfile aggregates dataset rows sharing a region (or city) so single
// facilities can be compared against their surroundings.
type RegionProfile struct {
	FacilityCount   int
	HospitalCount   int
	SpecialtyCounts map[string]int
}
