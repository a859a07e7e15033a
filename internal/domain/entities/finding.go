package entities

// Confidence grades how reliable a finding is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IsValid checks if the confidence value is one of the defined constants.
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Flag marks the severity of a finding. An empty flag means informational.
type Flag string

const (
	FlagOK      Flag = "ok"
	FlagWarning Flag = "warning"
	FlagAlert   Flag = "alert"
)

// Finding is a single question/answer pair produced by a rule-based analyzer.
type Finding struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Confidence Confidence `json:"confidence"`
	Flag       Flag       `json:"flag,omitempty"`
}

// CountFlags tallies alert and warning findings.
func CountFlags(findings []Finding) (alerts, warnings int) {
	for _, f := range findings {
		switch f.Flag {
		case FlagAlert:
			alerts++
		case FlagWarning:
			warnings++
		}
	}
	return alerts, warnings
}
