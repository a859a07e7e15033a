package summary

import (
	"fmt"
	"strings"

	"github.com/caremap/healthdesert/internal/domain/entities"
	"github.com/caremap/healthdesert/pkg/utils"
)

const facilitySystemPrompt = `You are a healthcare intelligence analyst for the Virtue Foundation, analyzing healthcare facilities in Ghana.
You are given structured data extracted from a facility's CSV record plus rule-based analysis findings.
Write a concise but insightful summary (3-5 paragraphs) that:
1. Describes the facility's capabilities and role in its region
2. Highlights any RED FLAGS or anomalies (equipment mismatches, suspicious claims, missing data)
3. Assesses whether the facility's claimed specialties are realistic given its infrastructure
4. Notes workforce signals (visiting vs permanent staff, staffing adequacy)
5. Identifies what this facility is critical for in its region (sole provider of certain specialties?)
Be direct and analytical. Use specific data points. Flag concerns clearly.`

const desertSystemPrompt = `You are a healthcare intelligence analyst for the Virtue Foundation, identifying medical deserts in Ghana.
You are given data about an underserved area including population, nearest facilities, and missing specialties.
Write a concise but powerful summary (3-5 paragraphs) that:
1. Explains why this area is a medical desert and the human impact
2. Quantifies the gap (distance to care, population affected, missing capabilities)
3. Identifies the most urgent unmet needs
4. Suggests specific, actionable interventions prioritized by impact
5. Notes any compounding factors (geography, seasonal access, cross-border issues)
Be direct and evidence-based. This analysis will be used by NGO planners to allocate resources.`

// buildFacilityPrompt assembles the user message for one facility: its key
// fields plus every rule-based finding tagged by flag.
func buildFacilityPrompt(f *entities.Facility, analysis *entities.FacilityAnalysis) string {
	var b strings.Builder

	equipment := "NONE reported"
	if len(f.Equipment) > 0 {
		equipment = strings.Join(firstN(f.Equipment, 10), ", ")
	}

	fmt.Fprintf(&b, `Facility: %s
Location: %s, %s
Type: %s
Bed Capacity: %s
Doctors: %s
Specialties (%d): %s
Equipment listed: %s
Key capabilities: %s
Description: %s

Rule-based analysis findings:
`,
		f.Name,
		f.City, f.Region,
		f.FacilityType,
		optionalCount(f.BedCapacity),
		optionalCount(f.NumDoctors),
		len(f.Specialties), strings.Join(firstN(f.Specialties, 15), ", "),
		equipment,
		strings.Join(firstN(f.Capabilities, 6), "; "),
		utils.Truncate(f.Description, 300),
	)

	writeFindings(&b, analysis.All())
	return b.String()
}

// buildDesertPrompt assembles the user message for one desert zone.
func buildDesertPrompt(zone *entities.DesertZone, analysis *entities.DesertAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Medical Desert: %s
Region: %s
Population: ~%s
Nearest Facility: %s (%vkm away)
Missing Specialties: %s
Context: %s

Rule-based analysis findings:
`,
		zone.Name,
		zone.Region,
		utils.CommaInt(zone.Population),
		zone.NearestFacility, zone.NearestDistanceKm,
		strings.Join(zone.MissingSpecialties, ", "),
		zone.Context,
	)

	writeFindings(&b, analysis.All())
	return b.String()
}

func writeFindings(b *strings.Builder, findings []entities.Finding) {
	for _, f := range findings {
		flag := string(f.Flag)
		if flag == "" {
			flag = "info"
		}
		fmt.Fprintf(b, "\n[%s] %s: %s", strings.ToUpper(flag), f.Question, f.Answer)
	}
}

func optionalCount(p *int) string {
	if p == nil || *p <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", *p)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
