package tables

import "strings"

// vaultExclusionNames are prime-named items the vault tracker never lists:
// founders gear that never rotates, prime-styled skins, sentinel-linked
// weapons that vault with their sentinel, and the "special item" category.
// A miss on one of these is not a data gap and must not warn.
var vaultExclusionNames = map[string]struct{}{
	"Excalibur Prime":          {},
	"Skana Prime":              {},
	"Lato Prime":               {},
	"Prime Laser Rifle":        {},
	"Deth Machine Rifle Prime": {},
	"Sweeper Prime":            {},
	"Stinger Prime":            {},
	"Burst Laser Prime":        {},
	"Noggle Stencil Prime":     {},
}

func IsVaultExcluded(name, itemType string) bool {
	if _, ok := vaultExclusionNames[name]; ok {
		return true
	}
	switch itemType {
	case "Skin", "Sentinel Weapon", "Ship Decoration", "Special Item":
		return true
	}
	// prime accessories and prime-styled cosmetics carry the marker without
	// ever entering drop rotation
	return strings.Contains(name, "Prime Gene-Masking Kit")
}
