package entities

// DesertZone is a curated underserved area with hand-verified context.
type DesertZone struct {
	Name               string   `json:"name"`
	Lat                float64  `json:"lat"`
	Lng                float64  `json:"lng"`
	Region             string   `json:"region"`
	Population         int      `json:"population"`
	NearestFacility    string   `json:"nearestFacility"`
	NearestDistanceKm  float64  `json:"nearestDistance_km"`
	MissingSpecialties []string `json:"missingSpecialties"`
	Context            string   `json:"context"`
}

// FacilitySelection points at one dataset row chosen for full analysis,
// paired with manually verified coordinates.
type FacilitySelection struct {
	Row int     `json:"row"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
