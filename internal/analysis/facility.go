package analysis

import (
	"fmt"
	"strings"

	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/pkg/utils"
)

// AnalyzeFacility runs every facility question category against one
// extracted facility record. The region profile aggregates the dataset rows
// sharing the facility's region (or city), regionLabel being the name used
// in the comparison findings.
func AnalyzeFacility(f *entities.Facility, profile *entities.RegionProfile, regionLabel string) *entities.FacilityAnalysis {
	a := &entities.FacilityAnalysis{
		BasicLookups:          basicLookups(f, profile, regionLabel),
		Validation:            validation(f),
		AnomalyDetection:      anomalies(f),
		ServiceClassification: serviceClassification(f),
		WorkforceDistribution: workforce(f),
		ResourceGaps:          resourceGaps(f, profile),
		NGOAnalysis:           ngoAnalysis(f),
	}
	a.EnsureArrays()
	return a
}

// basicLookups covers Q1: specialty inventory and region comparison.
func basicLookups(f *entities.Facility, profile *entities.RegionProfile, regionLabel string) []entities.Finding {
	var findings []entities.Finding

	if len(f.Specialties) > 0 {
		listed := utils.ReadableSpecialties(first(f.Specialties, 10))
		answer := fmt.Sprintf("This facility reports %d specialties: %s",
			len(f.Specialties), strings.Join(listed, ", "))
		if len(f.Specialties) > 10 {
			answer += fmt.Sprintf(" and %d more.", len(f.Specialties)-10)
		} else {
			answer += "."
		}
		findings = append(findings, entities.Finding{
			Question:   "Q1.1: What specialties does this facility offer?",
			Answer:     answer,
			Confidence: entities.ConfidenceHigh,
		})
	}

	if regionLabel != "" && profile != nil && profile.FacilityCount > 0 {
		verdict := "has limited healthcare infrastructure"
		if profile.FacilityCount > 20 {
			verdict = "is one of the most served regions"
		} else if profile.FacilityCount > 5 {
			verdict = "has moderate coverage"
		}
		findings = append(findings, entities.Finding{
			Question: fmt.Sprintf("Q1.5: How does %s compare?", regionLabel),
			Answer: fmt.Sprintf("%s has %d facilities in the dataset (%d hospitals). This %s.",
				regionLabel, profile.FacilityCount, profile.HospitalCount, verdict),
			Confidence: entities.ConfidenceHigh,
		})
	}

	return findings
}

// validation covers Q3: equipment evidence behind specialty claims.
func validation(f *entities.Facility) []entities.Finding {
	var findings []entities.Finding
	allText := f.EvidenceText()

	for _, spec := range f.Specialties {
		required, ok := SpecialtyEquipmentRequirements[spec]
		if !ok {
			continue
		}
		var found, missing []string
		for _, eq := range required {
			if strings.Contains(allText, strings.ToLower(eq)) {
				found = append(found, eq)
			} else {
				missing = append(missing, eq)
			}
		}
		if len(missing) > 0 && len(missing) > len(found) {
			answer := fmt.Sprintf("Claims %s but no mention of: %s. ",
				utils.ReadableSpecialty(spec), strings.Join(missing, ", "))
			if len(found) > 0 {
				answer += fmt.Sprintf("Only evidence of: %s.", strings.Join(found, ", "))
			} else {
				answer += "No supporting equipment evidence found in unstructured text."
			}
			findings = append(findings, entities.Finding{
				Question:   fmt.Sprintf("Q3.1: Does this facility have equipment for %s?", utils.ReadableSpecialty(spec)),
				Answer:     answer,
				Confidence: entities.ConfidenceMedium,
				Flag:       entities.FlagWarning,
			})
		}
	}

	if len(f.Specialties) > 0 && len(f.Equipment) == 0 {
		findings = append(findings, entities.Finding{
			Question: "Q3.4: Is equipment data available to verify procedure claims?",
			Answer: fmt.Sprintf("Facility claims %d specialties but has NO structured equipment data. Verification relies entirely on unstructured capability text.",
				len(f.Specialties)),
			Confidence: entities.ConfidenceLow,
			Flag:       entities.FlagWarning,
		})
	}

	return findings
}

// anomalies covers Q4: claims that do not square with reported size,
// staffing, or infrastructure.
func anomalies(f *entities.Facility) []entities.Finding {
	var findings []entities.Finding

	var complexClaimed []string
	for _, s := range f.Specialties {
		if _, ok := ComplexProcedures[s]; ok {
			complexClaimed = append(complexClaimed, s)
		}
	}

	allText := f.NarrativeText()
	beds, hasBeds := intValue(f.BedCapacity)
	_, hasDoctors := intValue(f.NumDoctors)

	if hasBeds && beds < 50 && len(f.Specialties) > 10 {
		findings = append(findings, entities.Finding{
			Question: "Q4.4: Are the claimed procedures realistic for this facility size?",
			Answer: fmt.Sprintf("RED FLAG: Facility claims %d specialties with only %d beds. A facility this size would typically support 3-5 specialties. The breadth of claims (%s...) is disproportionate to stated capacity.",
				len(f.Specialties), beds, strings.Join(utils.ReadableSpecialties(first(f.Specialties, 5)), ", ")),
			Confidence: entities.ConfidenceHigh,
			Flag:       entities.FlagAlert,
		})
	} else if !hasBeds && len(f.Specialties) > 15 {
		findings = append(findings, entities.Finding{
			Question: "Q4.4: Are the claimed procedures realistic for this facility size?",
			Answer: fmt.Sprintf("CAUTION: Facility claims %d specialties but reports no bed capacity. Without size data, the breadth of specialty claims cannot be verified.",
				len(f.Specialties)),
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagWarning,
		})
	}

	if hasBeds && beds >= 100 && !hasDoctors {
		findings = append(findings, entities.Finding{
			Question: "Q4.7: Do facility characteristics correlate as expected?",
			Answer: fmt.Sprintf("Facility reports %d beds but no doctor count. A %d-bed facility would typically require 20-40+ physicians. Missing staffing data weakens confidence in capacity claims.",
				beds, beds),
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagWarning,
		})
	}

	if len(complexClaimed) > 0 && len(f.Equipment) == 0 {
		findings = append(findings, entities.Finding{
			Question: "Q4.8: Is the breadth of procedures supported by infrastructure?",
			Answer: fmt.Sprintf("Claims advanced specialties (%s) but lists NO equipment. These specialties require significant infrastructure (operating theatres, ICU, specialized imaging). Absence of equipment data is a major red flag.",
				strings.Join(utils.ReadableSpecialties(complexClaimed), ", ")),
			Confidence: entities.ConfidenceHigh,
			Flag:       entities.FlagAlert,
		})
	}

	has24hr := utils.ContainsAny(allText, "24", "emergency")
	if len(complexClaimed) > 0 && !has24hr {
		findings = append(findings, entities.Finding{
			Question: "Q4.9: Are there contradictory signals?",
			Answer: fmt.Sprintf("Claims complex specialties (%s) but no mention of 24-hour or emergency services. Complex procedures require round-the-clock post-operative care.",
				strings.Join(utils.ReadableSpecialties(first(complexClaimed, 3)), ", ")),
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagWarning,
		})
	}

	if len(findings) == 0 {
		findings = append(findings, entities.Finding{
			Question:   "Q4: Anomaly Detection Summary",
			Answer:     "No significant anomalies detected. Specialty claims appear proportionate to reported infrastructure, though independent verification is recommended.",
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagOK,
		})
	}

	return findings
}

// serviceClassification covers Q5: itinerant vs permanent delivery and
// referral language.
func serviceClassification(f *entities.Facility) []entities.Finding {
	var findings []entities.Finding
	allText := f.NarrativeText()

	foundItinerant := utils.FoundSignals(allText, itinerantSignals)
	foundPermanent := utils.FoundSignals(allText, permanentSignals)

	if len(foundItinerant) > 0 {
		answer := fmt.Sprintf("ITINERANT SIGNALS DETECTED: Text contains '%s'. Some services may be delivered through periodic outreach rather than permanent service lines.",
			strings.Join(foundItinerant, ", "))
		if len(foundPermanent) > 0 {
			answer += fmt.Sprintf(" However, also found permanent signals: '%s'.", strings.Join(foundPermanent, ", "))
		}
		findings = append(findings, entities.Finding{
			Question:   "Q5.1: Are services permanent or itinerant?",
			Answer:     answer,
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagWarning,
		})
	} else if len(foundPermanent) > 0 {
		findings = append(findings, entities.Finding{
			Question: "Q5.1: Are services permanent or itinerant?",
			Answer: fmt.Sprintf("Services appear to be permanently staffed. Indicators: '%s'.",
				strings.Join(foundPermanent, ", ")),
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagOK,
		})
	}

	if foundReferral := utils.FoundSignals(allText, referralSignals); len(foundReferral) > 0 {
		findings = append(findings, entities.Finding{
			Question: "Q5.2: Does the facility perform procedures or refer them?",
			Answer: fmt.Sprintf("Referral language detected: '%s'. Some claimed capabilities may involve referring patients to other facilities rather than in-house delivery.",
				strings.Join(foundReferral, ", ")),
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagWarning,
		})
	}

	return findings
}

// workforce covers Q6: staffing counts and visiting-specialist signals.
func workforce(f *entities.Facility) []entities.Finding {
	var findings []entities.Finding
	allText := f.NarrativeText()

	doctors, hasDoctors := intValue(f.NumDoctors)
	beds, hasBeds := intValue(f.BedCapacity)

	if hasDoctors {
		answer := fmt.Sprintf("Facility reports %d doctors.", doctors)
		if hasBeds {
			answer += fmt.Sprintf(" For %d beds, this is a doctor-to-bed ratio of 1:%d.", beds, beds/doctors)
		}
		findings = append(findings, entities.Finding{
			Question:   "Q6.1: What is the known workforce at this facility?",
			Answer:     answer,
			Confidence: entities.ConfidenceHigh,
		})
	} else {
		findings = append(findings, entities.Finding{
			Question:   "Q6.1: What is the known workforce at this facility?",
			Answer:     "No doctor count reported. Workforce data gap — cannot assess staffing adequacy.",
			Confidence: entities.ConfidenceLow,
			Flag:       entities.FlagWarning,
		})
	}

	if foundVisiting := utils.FoundSignals(allText, visitingSignals); len(foundVisiting) > 0 {
		findings = append(findings, entities.Finding{
			Question: "Q6.4: Is there evidence of visiting vs permanent specialists?",
			Answer: fmt.Sprintf("Visiting specialist signals detected: '%s'. Service continuity may be fragile if tied to individual practitioners.",
				strings.Join(foundVisiting, ", ")),
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagWarning,
		})
	}

	return findings
}

// resourceGaps covers Q7: specialties for which this facility is one of at
// most two regional providers.
func resourceGaps(f *entities.Facility, profile *entities.RegionProfile) []entities.Finding {
	if len(f.Specialties) == 0 {
		return nil
	}

	var soleProvider []string
	for _, s := range f.Specialties {
		count := 0
		if profile != nil {
			count = profile.SpecialtyCounts[s]
		}
		if count <= 2 {
			soleProvider = append(soleProvider, s)
		}
	}
	if len(soleProvider) == 0 {
		return nil
	}

	return []entities.Finding{{
		Question: "Q7.5: Are any procedures dependent on very few facilities?",
		Answer: fmt.Sprintf("This facility is one of very few in its region providing: %s. Loss of this facility would create critical coverage gaps.",
			strings.Join(utils.ReadableSpecialties(first(soleProvider, 5)), ", ")),
		Confidence: entities.ConfidenceHigh,
		Flag:       entities.FlagAlert,
	}}
}

// ngoAnalysis covers Q8: NGO / mission affiliation signals.
func ngoAnalysis(f *entities.Facility) []entities.Finding {
	searchText := f.NarrativeText()
	nameLower := strings.ToLower(f.Name)

	var foundNGO []string
	for _, s := range ngoSignals {
		if strings.Contains(searchText, s) || strings.Contains(nameLower, s) {
			foundNGO = append(foundNGO, s)
		}
	}

	_, operatorIsNGO := ngoOperatorTypes[f.OperatorType]
	if len(foundNGO) == 0 && !operatorIsNGO {
		return nil
	}

	return []entities.Finding{{
		Question: "Q8.1: Is this an NGO-operated facility?",
		Answer: fmt.Sprintf("NGO/mission signals detected: '%s'. Sustainability should be assessed — NGO-operated facilities may depend on external funding cycles.",
			strings.Join(first(foundNGO, 3), ", ")),
		Confidence: entities.ConfidenceMedium,
	}}
}

// intValue unwraps an optional count. Zero is treated as absent: the dataset
// uses 0 interchangeably with missing for these columns.
func intValue(p *int) (int, bool) {
	if p == nil || *p <= 0 {
		return 0, false
	}
	return *p, true
}

func first(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
