package build

import (
	"strings"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

// classify maps the raw source category plus derived state to the output
// category and computes tradability. Components never pass through here;
// they inherit category context and the field stays unset.
func (p *Pipeline) classify(item *model.Item, rawItem *model.RawItem, sourceCategory string) {
	item.Category = category(item, rawItem, sourceCategory)
	item.Tradable = isTradable(item, rawItem)
}

// category is the fixed decision table. Branch order inside a source
// category matters: name checks run before type checks where both apply.
func category(item *model.Item, rawItem *model.RawItem, sourceCategory string) string {
	switch sourceCategory {
	case "Customs":
		return constant.CategorySkins

	case "Drones":
		return constant.CategoryMisc

	case "Flavour":
		switch {
		case strings.Contains(item.Name, "Glyph"):
			return constant.CategoryGlyphs
		case strings.Contains(item.Name, "Sigil"):
			return constant.CategorySigils
		default:
			return constant.CategorySkins
		}

	case "Gear":
		return constant.CategoryGear

	case "Keys":
		if strings.Contains(item.Name, "Derelict") {
			return constant.CategoryMisc
		}
		return constant.CategoryQuests

	case "RelicArcane":
		if item.Type == "Relic" {
			return constant.CategoryRelics
		}
		return constant.CategoryArcanes

	case "Sentinels":
		if item.Type == "Sentinel" {
			return constant.CategorySentinels
		}
		return constant.CategoryPets

	case "Upgrades":
		if item.Type == "Arcane" {
			return constant.CategoryArcanes
		}
		return constant.CategoryMods

	case "Warframes":
		if item.IsArchwing {
			return constant.CategoryArchwing
		}
		return constant.CategoryWarframes

	case "Weapons":
		if item.IsArchwing {
			if rawItem.Slot != nil && *rawItem.Slot == constant.SlotMelee {
				return constant.CategoryArchMelee
			}
			return constant.CategoryArchGun
		}
		if rawItem.Slot != nil {
			switch *rawItem.Slot {
			case constant.SlotSecondary:
				return constant.CategorySecondary
			case constant.SlotPrimary:
				return constant.CategoryPrimary
			case constant.SlotMelee:
				return constant.CategoryMelee
			}
		}
		return constant.CategoryMisc

	case "Resources":
		if item.Type == "Fish" {
			return constant.CategoryFish
		}
		return constant.CategoryResources

	case "Enemies":
		return constant.CategoryEnemy

	case "Pets":
		return constant.CategoryPets

	default:
		// system nodes arrive without a dedicated source category
		if strings.Contains(item.UniqueName, "SolNode") {
			return constant.CategoryNode
		}
		return constant.CategoryMisc
	}
}
