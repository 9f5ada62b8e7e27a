package constant

// Output categories. Every built item lands in exactly one of these
// partitions; each partition is persisted as its own JSON file.
const (
	CategoryArcanes   = "Arcanes"
	CategoryArchGun   = "Arch-Gun"
	CategoryArchMelee = "Arch-Melee"
	CategoryArchwing  = "Archwing"
	CategoryEnemy     = "Enemy"
	CategoryFish      = "Fish"
	CategoryGear      = "Gear"
	CategoryGlyphs    = "Glyphs"
	CategoryMelee     = "Melee"
	CategoryMisc      = "Misc"
	CategoryMods      = "Mods"
	CategoryNode      = "Node"
	CategoryPets      = "Pets"
	CategoryPrimary   = "Primary"
	CategoryQuests    = "Quests"
	CategoryRelics    = "Relics"
	CategoryResources = "Resources"
	CategorySecondary = "Secondary"
	CategorySentinels = "Sentinels"
	CategorySigils    = "Sigils"
	CategorySkins     = "Skins"
	CategoryWarframes = "Warframes"
)

// Categories lists every output partition in file order.
var Categories = []string{
	CategoryArcanes,
	CategoryArchGun,
	CategoryArchMelee,
	CategoryArchwing,
	CategoryEnemy,
	CategoryFish,
	CategoryGear,
	CategoryGlyphs,
	CategoryMelee,
	CategoryMisc,
	CategoryMods,
	CategoryNode,
	CategoryPets,
	CategoryPrimary,
	CategoryQuests,
	CategoryRelics,
	CategoryResources,
	CategorySecondary,
	CategorySentinels,
	CategorySigils,
	CategorySkins,
	CategoryWarframes,
}

// Weapon slot enum of the game export.
const (
	SlotSecondary = 0
	SlotPrimary   = 1
	SlotMelee     = 5
)
