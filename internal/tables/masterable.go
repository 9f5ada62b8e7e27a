package tables

import "ordis.dev/itembuilder/internal/constant"

// MasterableCategories lists every output category whose items award
// mastery when leveled.
var MasterableCategories = []string{
	constant.CategoryArchGun,
	constant.CategoryArchMelee,
	constant.CategoryArchwing,
	constant.CategoryMelee,
	constant.CategoryPets,
	constant.CategoryPrimary,
	constant.CategorySecondary,
	constant.CategorySentinels,
	constant.CategoryWarframes,
}

// NonMasterable carves out named items that sit in a masterable category but
// award no mastery by business rule.
var NonMasterable = map[string]struct{}{
	"Amp":          {},
	"Sirocco":      {},
	"Vericres":     {},
	"Paracesis II": {},
}
