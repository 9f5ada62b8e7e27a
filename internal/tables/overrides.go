package tables

import "ordis.dev/itembuilder/internal/model"

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

// Overrides patches computed fields per uniqueName, applied last and
// unconditionally to top-level items and to every component. Entries exist
// because the upstream export is wrong or ambiguous for these records.
var Overrides = map[string]*model.Patch{
	// export calls the starter frame "Excalibur Prime" in one locale table
	"/Lotus/Powersuits/Excalibur/ExcaliburPrime": {
		Masterable: boolptr(true),
		Tradable:   boolptr(false),
	},
	// quest key chains are flagged tradable upstream but cannot trade
	"/Lotus/Types/Keys/VeilBreakerQuest/VeilBreakerQuestKeyChain": {
		Tradable: boolptr(false),
	},
	"/Lotus/Types/Friendly/Pets/ZanukaPets/ZanukaPetParts/ZanukaPetPartHead": {
		Name: strptr("Hound Head"),
	},
	// the export mislabels the Helminth segment as a resource
	"/Lotus/Types/Recipes/AbilityOverrides/HelminthAbilityOverrideSegment": {
		Type:     strptr("Ship Segment"),
		Tradable: boolptr(false),
	},
	"/Lotus/Upgrades/Mods/Fusers/LegendaryModFuser": {
		Name: strptr("Legendary Core"),
	},
	// founders gear never vaulted through the tracker; pin the category
	"/Lotus/Weapons/Tenno/Melee/Swords/SkanaPrime/SkanaPrime": {
		Tradable: boolptr(false),
	},
	"/Lotus/Weapons/Tenno/Pistols/LatoPrime/LatoPrime": {
		Tradable: boolptr(false),
	},
}
