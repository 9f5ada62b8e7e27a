package tables

import "regexp"

// Tradability decision data. An item is tradable when any of the three
// OR-ed signals hits (type allow-list, variant-name regex, augment flag) and
// none of the deny filters match. See build/tradable.go for the combination.

var TradableTypes = []string{
	"Arcane",
	"Fish",
	"Focus Lens",
	"Fusion Treasure",
	"Gem",
	"Key",
	"Mod",
	"Relic",
	"Riven Mod",
	"Upgrades",
}

var UntradableTypes = []string{
	"Color Palette",
	"Exalted Weapon",
	"Extractor",
	"Fur Color",
	"Fur Pattern",
	"Glyph",
	"Medallion",
	"Pets",
	"Ship Decoration",
	"Sigil",
	"Skin",
}

// TradableRegex marks named variants that trade even when the base item does
// not. The negative lookahead-free alternation is matched against both name
// and uniqueName.
var TradableRegex = regexp.MustCompile(`(Prime|Vandal|Wraith|Prisma|Mara|Rakta|Synoid|Sancti|Vaykor|Telos|Secura)`)

// UntradableRegex denies trade regardless of a variant-regex hit.
var UntradableRegex = regexp.MustCompile(`(Glyph|Mandachord|Greater.*Lens|Sugatra|\[|SentinelWeapons|Toroid|Bait|([A-Z][a-z]+ )+Relic)`)

// CraftOnlyTypes are weapon types that never trade as finished items even
// when "Prime" shows up in a component's name; the final tradability guard
// excludes them to avoid false positives on component names.
var CraftOnlyTypes = []string{
	"Amp",
	"K-Drive Component",
	"Kitgun Component",
	"Zaw Component",
	"Sentinel Weapon",
}
