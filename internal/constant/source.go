package constant

// Logical source keys of the change cache. Endpoint-level keys for the game
// export are derived per locale and appended to these.
const (
	SourceManifest    = "Manifest"
	SourceDropChances = "DropChances"
	SourcePatchlogs   = "Patchlogs"
	SourceWikia       = "Wikia"
	SourceVaultData   = "VaultData"
	SourceRelics      = "Relics"
)

// Game export categories, in upstream order. The order is load-bearing for
// the merge: the first category to mention a uniqueName owns the record.
var ExportCategories = []string{
	"Customs",
	"Drones",
	"Flavour",
	"Gear",
	"Keys",
	"RelicArcane",
	"Resources",
	"Sentinels",
	"Enemies",
	"Pets",
	"Upgrades",
	"Warframes",
	"Weapons",
}

// Recipes is fetched alongside the item categories but is consumed during
// blueprint folding only; it never yields standalone records.
const ExportRecipes = "Recipes"

// LocaleEN is the canonical locale. All derivation happens on it; other
// locales contribute to the i18n side table only.
const LocaleEN = "en"

// I18nFields are the per-locale fields allowed into the i18n side table.
var I18nFields = []string{"name", "description", "passiveDescription", "abilities", "trigger", "systemName", "levelStats"}
