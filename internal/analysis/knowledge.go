package analysis

// SpecialtyEquipmentRequirements maps a claimed specialty code to the
// equipment a facility offering it should show some evidence of.
var SpecialtyEquipmentRequirements = map[string][]string{
	"neurosurgery":            {"operating microscope", "CT scan", "MRI", "ICU", "ventilator"},
	"cardiology":              {"ECG", "echocardiograph", "defibrillator", "cardiac monitor"},
	"cardiacSurgery":          {"heart-lung machine", "operating theatre", "ICU", "ventilator", "blood bank"},
	"ophthalmology":           {"slit lamp", "operating microscope", "tonometer", "fundoscope"},
	"radiology":               {"X-ray", "ultrasound", "CT scan"},
	"orthopedicSurgery":       {"X-ray", "operating theatre", "C-arm"},
	"nephrology":              {"dialysis machine", "ultrasound"},
	"generalSurgery":          {"operating theatre", "anaesthesia machine", "sterilizer", "blood bank"},
	"gynecologyAndObstetrics": {"ultrasound", "fetal monitor", "delivery suite", "operating theatre"},
	"pediatrics":              {"neonatal unit", "incubator", "pediatric ward"},
	"emergencyMedicine":       {"emergency department", "defibrillator", "ventilator", "trauma kit"},
	"dentistry":               {"dental chair", "dental X-ray", "autoclave"},
	"psychiatry":              {"counselling room", "inpatient ward"},
}

// ComplexProcedures are specialty codes whose procedures demand major
// infrastructure (theatres, ICU, advanced imaging).
var ComplexProcedures = map[string]struct{}{
	"neurosurgery":            {},
	"cardiacSurgery":          {},
	"plasticSurgery":          {},
	"hepatobiliarySurgery":    {},
	"spineNeurosurgery":       {},
	"transplantSurgery":       {},
	"interventionalRadiology": {},
}

// ModerateProcedures are specialty codes of intermediate complexity.
var ModerateProcedures = map[string]struct{}{
	"generalSurgery":          {},
	"orthopedicSurgery":       {},
	"gynecologyAndObstetrics": {},
	"ophthalmology":           {},
	"urology":                 {},
}

// Keyword signal lists scanned against lowercased unstructured text.
var (
	itinerantSignals = []string{"visiting", "camp", "outreach", "mission", "periodic", "twice a year", "annual", "quarterly"}
	permanentSignals = []string{"24/7", "24 hours", "permanent", "full-time", "daily"}
	referralSignals  = []string{"refer", "arrange", "collaborate", "send to", "partner", "transfer"}
	visitingSignals  = []string{"visiting", "consultant", "locum", "part-time"}
	ngoSignals       = []string{"ngo", "foundation", "charity", "mission", "non-profit", "nonprofit", "volunteer", "international", "aid"}

	// The desert scan uses a tighter list: these are the signals that mark a
	// facility as NGO/mission-affiliated when checking zone surroundings.
	desertNGOSignals = []string{"ngo", "foundation", "mission", "volunteer"}
)

// ngoOperatorTypes are operatorTypeId values that mark a facility as
// NGO-run regardless of text signals.
var ngoOperatorTypes = map[string]struct{}{
	"ngo":     {},
	"charity": {},
	"mission": {},
}
