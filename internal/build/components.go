package build

import (
	"strings"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

// foldBlueprint inlines the item's crafting recipe, if any: each ingredient
// becomes a component run through the per-item pipeline with parent context,
// a synthetic Blueprint pseudo-component is appended, and the recipe's cost
// metadata moves onto the parent. The recipe's own bookkeeping fields
// (ingredients, resultType, internal id) never surface on output.
func (p *Pipeline) foldBlueprint(item *model.Item, rawItem *model.RawItem) {
	bp, ok := p.blueprints[item.UniqueName]
	if !ok {
		return
	}

	components := make([]*model.Item, 0, len(bp.Ingredients)+1)
	seen := map[string]struct{}{}

	for _, ing := range bp.Ingredients {
		if _, dup := seen[ing.ItemType]; dup {
			continue
		}
		seen[ing.ItemType] = struct{}{}

		ref, found := p.rawByName[ing.ItemType]
		if !found {
			p.warns.Add(constant.WarnMissingComponents, item.Name+": "+ing.ItemType)
			continue
		}
		components = append(components, p.processComponent(ref.item, item, ing.ItemCount))
	}

	blueprint := &model.Item{
		UniqueName:  bp.UniqueName,
		Name:        "Blueprint",
		Description: item.Description,
		ItemCount:   1,
		Ducats:      bp.PrimeSellingPrice,
		Parent:      item.Name,
	}
	components = append(components, blueprint)

	// deterministic component order; map/set iteration must never decide it
	sortItems(components)
	item.Components = components

	item.BuildPrice = bp.BuildPrice
	item.BuildTime = bp.BuildTime
	item.SkipBuildTime = bp.SkipBuildTimePrice
	item.BuildQuantity = bp.Num
	item.ConsumeOnBuild = bp.ConsumeOnUse
}

// processComponent runs one ingredient record back through the per-item
// filter pipeline with parent context injected. Components never receive
// their own category or type; both are inherited contextually and stay
// unset on output.
func (p *Pipeline) processComponent(rawComp *model.RawItem, parent *model.Item, count int) *model.Item {
	comp := &model.Item{
		UniqueName: rawComp.UniqueName,
		ItemCount:  count,
		Parent:     parent.Name,
	}

	p.parse(comp, rawComp, parent.Name)

	// parent-name stripping is limited to recipe-scoped components and
	// tradable parents; other components keep the full name
	if strings.Contains(comp.UniqueName, "/Recipes/") || parent.Tradable {
		comp.Name = stripParentName(comp.Name, parent.Name)
	}

	comp.Tradable = isTradable(comp, rawComp)
	comp.Type = ""

	// components shared by several top-level items keep the accumulated
	// parent list; single-parent back-references stay transient
	if names := p.parents[comp.UniqueName]; len(names) > 1 {
		comp.Parents = names
	}

	return comp
}

func stripParentName(name, parentName string) string {
	stripped := strings.TrimSpace(strings.TrimPrefix(name, parentName))
	if stripped == "" {
		return name
	}
	return stripped
}
