package build

import (
	"strings"

	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/tables"
)

// addDamage destructures the export's positional per-shot damage array into
// the named damage map. All-zero arrays contribute nothing. The slot order
// is a schema-version assumption: a longer upstream array means the export
// added slots and the tail is ignored, loudly.
func (p *Pipeline) addDamage(item *model.Item, rawItem *model.RawItem) {
	shots := rawItem.DamagePerShot
	if len(shots) == 0 {
		return
	}

	any := false
	for _, v := range shots {
		if v != 0 {
			any = true
			break
		}
	}
	if !any {
		return
	}

	if len(shots) > len(tables.DamageOrder) {
		log.Warn().
			Str("uniqueName", item.UniqueName).
			Int("slots", len(shots)).
			Msg("damage array longer than known slot order, ignoring tail")
		shots = shots[:len(tables.DamageOrder)]
	}

	damage := &model.Damage{}
	total := 0.0
	for i, v := range shots {
		total += v
		setDamageSlot(damage, tables.DamageOrder[i], v)
	}
	if rawItem.TotalDamage > 0 {
		total = rawItem.TotalDamage
	}
	damage.Total = total
	item.Damage = damage
}

func setDamageSlot(d *model.Damage, slot string, v float64) {
	switch slot {
	case "impact":
		d.Impact = v
	case "puncture":
		d.Puncture = v
	case "slash":
		d.Slash = v
	case "heat":
		d.Heat = v
	case "cold":
		d.Cold = v
	case "electricity":
		d.Electricity = v
	case "toxin":
		d.Toxin = v
	case "blast":
		d.Blast = v
	case "radiation":
		d.Radiation = v
	case "gas":
		d.Gas = v
	case "magnetic":
		d.Magnetic = v
	case "viral":
		d.Viral = v
	case "corrosive":
		d.Corrosive = v
	case "void":
		d.Void = v
	case "tau":
		d.Tau = v
	case "cinematic":
		d.Cinematic = v
	case "shieldDrain":
		d.ShieldDrain = v
	case "healthDrain":
		d.HealthDrain = v
	case "energyDrain":
		d.EnergyDrain = v
	case "true":
		d.True = v
	}
}

// addResistances parses the enemy affector string: space-separated tokens of
// a +/- run and an element code, e.g. "++El -To". Unrecognized tokens
// resolve to the explicit None affector with a zero modifier, never an
// error.
func (p *Pipeline) addResistances(item *model.Item, rawItem *model.RawItem) {
	raw := strings.TrimSpace(rawItem.Affectors)
	if raw == "" {
		return
	}

	var resistances []model.Resistance
	for _, token := range strings.Fields(raw) {
		signs := token[:signRun(token)]
		code := token[len(signs):]

		element, knownElement := tables.ResistanceElements[code]
		modifier, knownTier := tables.ResistanceTiers[signs]
		if !knownElement || !knownTier {
			resistances = append(resistances, model.Resistance{Element: "None", Modifier: 0})
			continue
		}
		resistances = append(resistances, model.Resistance{Element: element, Modifier: modifier})
	}
	item.Resistances = resistances
}

func signRun(token string) int {
	for i := 0; i < len(token); i++ {
		if token[i] != '+' && token[i] != '-' {
			return i
		}
	}
	return len(token)
}
