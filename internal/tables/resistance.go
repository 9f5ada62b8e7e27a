package tables

// Resistance element codes of the enemy affector string. A token like
// "++El" reads as Electricity at +50%; unrecognized tokens resolve to the
// explicit None affector with a zero modifier rather than an error.
var ResistanceElements = map[string]string{
	"Im": "Impact",
	"Pu": "Puncture",
	"Sl": "Slash",
	"He": "Heat",
	"Co": "Cold",
	"El": "Electricity",
	"To": "Toxin",
	"Bl": "Blast",
	"Ra": "Radiation",
	"Ga": "Gas",
	"Ma": "Magnetic",
	"Vi": "Viral",
	"Cr": "Corrosive",
	"Vo": "Void",
}

// ResistanceTiers maps the sign-run length of an affector token to its
// percentage modifier.
var ResistanceTiers = map[string]float64{
	"+":   0.25,
	"++":  0.5,
	"+++": 0.75,
	"-":   -0.25,
	"--":  -0.5,
	"---": -0.75,
}
