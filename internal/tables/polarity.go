package tables

// Polarities maps the export's internal polarity tags to school names. An
// unknown tag yields a polarity warning, not an error.
var Polarities = map[string]string{
	"AP_ATTACK":    "madurai",
	"AP_DEFENSE":   "vazarin",
	"AP_TACTIC":    "naramon",
	"AP_POWER":     "zenurik",
	"AP_PRECEPT":   "penjaga",
	"AP_WARD":      "unairu",
	"AP_UMBRA":     "umbra",
	"AP_ANY":       "any",
	"AP_UNIVERSAL": "universal",
}
