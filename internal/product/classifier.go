package product

import "strings"

// Sentinel codes returned when a campaign name cannot be classified
const (
	CodeUnknown = "UNKNOWN"
	CodeOther   = "OTHER"
)

type rule struct {
	pattern string
	code    string
}

// Campaign names are free-form text, so classification is ordered substring
// matching: the first rule whose pattern appears in the upper-cased name
// wins. Specific patterns must stay above the generic single-word fallbacks
// or names carrying both would resolve to the wrong product.
var rules = []rule{
	{"LIFE-SENIOR-BONECARE", "LIFE-SENIOR-BONECARE"},
	{"LIFE-SENIOR-HAPPY", "LIFE-SENIOR-HAPPY"},
	{"LIFE-SAVING-PLUS", "LIFE-SAVING-PLUS"},
	{"HEALTH-SABAI-JAI", "HEALTH-SABAI-JAI"},
	{"HEALTH-OPD-KID", "HEALTH-OPD-KID"},
	{"HEALTH-CI-PROTECT", "HEALTH-CI-PROTECT"},
	{"BONECARE", "LIFE-SENIOR-BONECARE"},
	{"SABAI", "HEALTH-SABAI-JAI"},
	{"CI-PROTECT", "HEALTH-CI-PROTECT"},
	{"SENIOR", "LIFE-SENIOR"},
	{"SAVING", "LIFE-SAVING-PLUS"},
	{"HAPPY", "LIFE-HAPPY"},
	{"OPD", "HEALTH-OPD-KID"},
}

// Classify maps a campaign name to its normalized product code. Given the
// same name it always returns the same code; both fetchers share this single
// table.
func Classify(name string) string {
	if name == "" {
		return CodeUnknown
	}

	upper := strings.ToUpper(name)
	for _, r := range rules {
		if strings.Contains(upper, r.pattern) {
			return r.code
		}
	}

	return CodeOther
}
