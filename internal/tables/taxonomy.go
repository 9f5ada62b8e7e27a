package tables

import "regexp"

// TaxonomyRule resolves an item's type from its uniqueName path. Rules are
// evaluated in declared order and the first non-append match wins; the order
// of this table is therefore a total-ordering invariant, not a coincidence.
// More specific path fragments must stay listed before any more general
// fragment they contain (e.g. "Sentinels/SentinelWeapons" before
// "Sentinels").
type TaxonomyRule struct {
	// ID is the uniqueName path fragment this rule matches on. Ignored when
	// Regex is set.
	ID string

	// Name is the resolved type.
	Name string

	// Regex matches against the whole uniqueName instead of a fragment test.
	Regex *regexp.Regexp

	// Append marks a qualifier rule: when it matches, Name is prefixed to the
	// type resolved by the first non-append match further down the table.
	Append bool
}

var Taxonomy = []TaxonomyRule{
	// qualifiers
	{ID: "/Archwing/", Name: "Archwing", Append: true},

	// specific fragments before the general ones they contain
	{ID: "/Sentinels/SentinelPowersuits/", Name: "Sentinel"},
	{ID: "/SentinelWeapons/", Name: "Sentinel Weapon"},
	{ID: "/Sentinels/", Name: "Sentinel"},
	{ID: "/CatbrowPet/", Name: "Kavat"},
	{ID: "/KubrowPet/Eggs/", Name: "Egg"},
	{ID: "/KubrowPet/", Name: "Kubrow"},
	{ID: "/InfestedKubrowPet/", Name: "Predasite"},
	{ID: "/MoaPets/", Name: "Moa"},
	{ID: "/ZanukaPets/", Name: "Hound"},
	{ID: "/CreaturePets/", Name: "Companion"},

	{ID: "/Powersuits/", Name: "Warframe"},
	{ID: "/EntratiMech/", Name: "Necramech"},

	{ID: "/LongGuns/", Name: "Rifle"},
	{ID: "/Shotgun", Name: "Shotgun"},
	{ID: "/Pistols/", Name: "Pistol"},
	{ID: "/Melee/", Name: "Melee"},
	{ID: "/ThrownWeapons/", Name: "Thrown"},
	{ID: "/OperatorAmplifiers/", Name: "Amp"},
	{ID: "/ModularMelee", Name: "Zaw Component"},
	{ID: "/ModularPrimary", Name: "Kitgun Component"},
	{ID: "/ModularSecondary", Name: "Kitgun Component"},
	{ID: "/Hoverboard", Name: "K-Drive Component"},

	{ID: "/Projections/", Name: "Relic"},
	{ID: "/Types/Game/Projections/", Name: "Relic"},
	{ID: "/ArcaneUpgrades/", Name: "Arcane"},
	{ID: "/CosmeticEnhancers/", Name: "Arcane"},
	{ID: "/AuraMods/", Name: "Aura"},
	{ID: "/StanceMods/", Name: "Stance Mod"},
	{ID: "/RivenMods/", Name: "Riven Mod"},
	{ID: "/Mods/", Name: "Mod"},
	{ID: "/AugmentMods/", Name: "Augment Mod"},

	{ID: "/Types/Keys/", Name: "Key"},
	{ID: "/QuestKeys/", Name: "Key"},
	{ID: "/Gems/", Name: "Gem"},
	{ID: "/Fish/", Name: "Fish"},
	{ID: "/Plants/", Name: "Plant"},
	{ID: "/MiscItems/PhotoboothTile", Name: "Captura"},
	{ID: "/Boosters/", Name: "Booster"},
	{ID: "/Types/Items/FusionTreasures/", Name: "Fusion Treasure"},
	{ID: "/FocusLens", Name: "Focus Lens"},
	{ID: "/Types/Restoratives/", Name: "Gear"},
	{ID: "/Types/Gameplay/Eidolon/Resources/", Name: "Resource"},
	{ID: "/Types/Items/MiscItems/", Name: "Resource"},
	{ID: "/ShipDecos/", Name: "Ship Decoration"},
	{ID: "/Interface/Glyphs/", Name: "Glyph"},
	{ID: "/Sigils/", Name: "Sigil"},
	{ID: "/Skins/", Name: "Skin"},
	{ID: "/ColourPickerItems/", Name: "Color Palette"},
	{ID: "/Extractors/", Name: "Extractor"},
	{ID: "/Recipes/", Name: "Blueprint"},

	{Regex: regexp.MustCompile(`/Lotus/Language/(Menu|Items)/`), Name: "Resource"},
	{Regex: regexp.MustCompile(`/Lotus/Types/Enemies/`), Name: "Enemy"},
}

// TypeMisc is the fallback type when no taxonomy rule, resource sniff,
// faction tag or product category yields anything.
const TypeMisc = "Misc"
