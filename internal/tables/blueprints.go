package tables

// BlueprintDenyList holds recipe uniqueNames whose resultType collides with
// an unrelated item; folding them would attach the wrong components. They
// are skipped during blueprint matching.
var BlueprintDenyList = map[string]struct{}{
	"/Lotus/Types/Recipes/Weapons/DuplicateBlueprints/BronkorBlueprint":          {},
	"/Lotus/Types/Recipes/Weapons/DuplicateBlueprints/ForgedDualDaggerBlueprint": {},
	"/Lotus/Types/Recipes/EidolonRecipes/GemCutRecipeA":                          {},
	"/Lotus/Types/Recipes/Components/WeaponUtilityUnlockerBlueprint":             {},
}
