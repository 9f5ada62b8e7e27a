package tables

// Variant prefixes and suffixes used by the drop-search regex family. A
// base item must not match drop-table lines of its variants and vice versa:
// searching "Gorgon" must skip "Gorgon Wraith" lines, searching
// "Gorgon Wraith" must skip plain "Gorgon" lines.

var VariantPrefixes = []string{
	"Carmine",
	"Dex",
	"Mara",
	"Prisma",
	"Rakta",
	"Sancti",
	"Secura",
	"Synoid",
	"Telos",
	"Vaykor",
}

var VariantSuffixes = []string{
	"Prime",
	"Umbra",
	"Vandal",
	"Wraith",
}

// RelicGrades are the refinement tiers of one relic, encoded in upstream
// names ("Axi A1 Radiant") but collapsed for images and drop lookup.
var RelicGrades = []string{
	"Intact",
	"Exceptional",
	"Flawless",
	"Radiant",
}
