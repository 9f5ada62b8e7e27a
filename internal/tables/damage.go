package tables

// DamageOrder is the positional meaning of the export's per-shot damage
// array. The export does not name these slots; their count and order are a
// schema-version assumption. A shorter upstream array decodes prefix-wise; a
// longer one means the upstream added slots and the tail is ignored with a
// warning.
var DamageOrder = []string{
	"impact",
	"puncture",
	"slash",
	"heat",
	"cold",
	"electricity",
	"toxin",
	"blast",
	"radiation",
	"gas",
	"magnetic",
	"viral",
	"corrosive",
	"void",
	"tau",
	"cinematic",
	"shieldDrain",
	"healthDrain",
	"energyDrain",
	"true",
}
