package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/pkg/utils"
)

// ngoProximityKm is the radius around a zone scanned for NGO-affiliated
// facilities.
const ngoProximityKm = 100.0

// AnalyzeDesertGeospatial covers Q2 for a desert zone: the cold-spot alert
// and the nearest processed facilities.
func AnalyzeDesertGeospatial(zone *entities.DesertZone, facilities []*entities.FacilityReport) []entities.Finding {
	var findings []entities.Finding

	answer := fmt.Sprintf("%s in %s is a confirmed healthcare cold spot. The nearest facility with meaningful capacity is %s, ",
		zone.Name, zone.Region, zone.NearestFacility)
	if zone.NearestDistanceKm > 0 {
		answer += fmt.Sprintf("%skm away. ", formatKm(zone.NearestDistanceKm))
	} else {
		answer += "but it has severe capacity limitations. "
	}
	answer += fmt.Sprintf("Population of ~%s people has no access to: %s.",
		utils.CommaInt(zone.Population),
		strings.Join(utils.ReadableSpecialties(first(zone.MissingSpecialties, 4)), ", "))

	findings = append(findings, entities.Finding{
		Question:   fmt.Sprintf("Q2.3: Is %s a geographic cold spot?", zone.Name),
		Answer:     answer,
		Confidence: entities.ConfidenceHigh,
		Flag:       entities.FlagAlert,
	})

	if len(facilities) > 0 {
		type neighbor struct {
			distance    float64
			name        string
			specialties int
		}
		closest := make([]neighbor, 0, len(facilities))
		for _, fac := range facilities {
			closest = append(closest, neighbor{
				distance:    DistanceKm(fac.Lat, fac.Lng, zone.Lat, zone.Lng),
				name:        fac.Name,
				specialties: len(fac.Specialties),
			})
		}
		sort.Slice(closest, func(i, j int) bool {
			if closest[i].distance != closest[j].distance {
				return closest[i].distance < closest[j].distance
			}
			return closest[i].name < closest[j].name
		})
		if len(closest) > 3 {
			closest = closest[:3]
		}

		lines := make([]string, 0, len(closest))
		for _, n := range closest {
			lines = append(lines, fmt.Sprintf("• %s — %.0fkm (%d specialties)", n.name, n.distance, n.specialties))
		}
		findings = append(findings, entities.Finding{
			Question:   "Q2.1: What are the nearest facilities in the dataset?",
			Answer:     strings.Join(lines, "\n"),
			Confidence: entities.ConfidenceHigh,
		})
	}

	return findings
}

// AnalyzeDesertUnmetNeeds covers Q9 for a desert zone.
func AnalyzeDesertUnmetNeeds(zone *entities.DesertZone) []entities.Finding {
	answer := fmt.Sprintf("Population ~%s with ", utils.CommaInt(zone.Population))
	if zone.NearestDistanceKm > 0 {
		answer += fmt.Sprintf("nearest hospital %skm away. ", formatKm(zone.NearestDistanceKm))
	} else {
		answer += "severely under-resourced local facility. "
	}
	answer += fmt.Sprintf("Missing %d critical specialties. Based on WHO guidelines, a population this size requires at minimum: basic emergency obstetric care, surgical capability, and diagnostic services — none of which are available locally.",
		len(zone.MissingSpecialties))

	return []entities.Finding{{
		Question:   fmt.Sprintf("Q9.5: Does %s have capacity for its population?", zone.Name),
		Answer:     answer,
		Confidence: entities.ConfidenceHigh,
		Flag:       entities.FlagAlert,
	}}
}

// AnalyzeDesertNGOGaps covers Q8.3 for a desert zone: NGO presence among the
// processed facilities within ngoProximityKm.
func AnalyzeDesertNGOGaps(zone *entities.DesertZone, facilities []*entities.FacilityReport) []entities.Finding {
	ngoNearby := false
	for _, fac := range facilities {
		if DistanceKm(fac.Lat, fac.Lng, zone.Lat, zone.Lng) >= ngoProximityKm {
			continue
		}
		searchText := strings.ToLower(strings.Join(fac.Capabilities, " "))
		nameLower := strings.ToLower(fac.Name)
		if utils.ContainsAny(searchText, desertNGOSignals...) || utils.ContainsAny(nameLower, desertNGOSignals...) {
			ngoNearby = true
			break
		}
	}

	if !ngoNearby {
		return []entities.Finding{{
			Question: "Q8.3: Are there NGOs working in this area despite evident need?",
			Answer: fmt.Sprintf("No NGO or international organization presence detected within 100km of %s. This area has a population of ~%s with significant unmet needs, making it a high-priority target for development organizations.",
				zone.Name, utils.CommaInt(zone.Population)),
			Confidence: entities.ConfidenceMedium,
			Flag:       entities.FlagAlert,
		}}
	}

	return []entities.Finding{{
		Question: "Q8.3: Are there NGOs working in this area?",
		Answer: fmt.Sprintf("At least one NGO/mission-affiliated facility exists within 100km, but coverage gaps remain significant for the population of ~%s.",
			utils.CommaInt(zone.Population)),
		Confidence: entities.ConfidenceMedium,
	}}
}

// Recommendations derives actionable interventions for a zone from its
// distance to care and missing specialties.
func Recommendations(zone *entities.DesertZone) []string {
	missing := make(map[string]struct{}, len(zone.MissingSpecialties))
	for _, s := range zone.MissingSpecialties {
		missing[s] = struct{}{}
	}

	var recs []string
	if zone.NearestDistanceKm > 80 {
		recs = append(recs, "Deploy mobile health clinics for emergency triage and stabilization")
	}
	recs = append(recs, "Establish telemedicine link to nearest specialist hospital for remote consultation")
	if _, ok := missing["generalSurgery"]; ok {
		recs = append(recs, "Prioritize surgical capacity — even a minor surgical theatre could save lives in emergency cases")
	}
	_, needsObstetrics := missing["gynecologyAndObstetrics"]
	_, needsPediatrics := missing["pediatrics"]
	if needsObstetrics || needsPediatrics {
		recs = append(recs, "Urgent need for maternal and child health services — high maternal mortality area")
	}
	if _, ok := missing["emergencyMedicine"]; ok {
		recs = append(recs, "Establish 24/7 emergency stabilization point to reduce transfer mortality")
	}
	if _, ok := missing["ophthalmology"]; ok {
		recs = append(recs, "Schedule periodic ophthalmology outreach camps (high prevalence of preventable blindness)")
	}
	recs = append(recs, "Recruit and train community health workers for early detection and referral pathways")
	return recs
}

// SeverityScore grades a zone from 2 to 10 by distance to care, missing
// specialties, and population at risk.
func SeverityScore(zone *entities.DesertZone) int {
	severity := 2
	switch {
	case zone.NearestDistanceKm > 100:
		severity += 3
	case zone.NearestDistanceKm > 50:
		severity += 2
	case zone.NearestDistanceKm > 0:
		severity += 1
	}

	missing := len(zone.MissingSpecialties)
	if missing > 3 {
		missing = 3
	}
	severity += missing

	if zone.Population > 40000 {
		severity += 2
	} else if zone.Population > 20000 {
		severity += 1
	}

	if severity > 10 {
		severity = 10
	}
	return severity
}

// formatKm prints a distance without a trailing ".0" for whole values.
func formatKm(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}
