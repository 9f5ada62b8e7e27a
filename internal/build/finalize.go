package build

import (
	"strings"

	"github.com/samber/lo"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/tables"
)

// finalize is the last pipeline stage: polarity normalization, the mastery
// flag, the Mk1 casing revert, and - strictly last - the per-uniqueName
// override patch, which overwrites any computed field unconditionally for
// the item and recursively for every component.
func (p *Pipeline) finalize(item *model.Item) {
	p.normalizePolarities(item)
	for _, comp := range item.Components {
		p.normalizePolarities(comp)
	}

	item.Masterable = isMasterable(item)

	// enrichment is done; restore the display spelling
	if strings.HasPrefix(item.Name, "MK1") {
		item.Name = "Mk1" + item.Name[3:]
	}

	p.applyOverride(item)
	for _, comp := range item.Components {
		p.applyOverride(comp)
	}
}

func (p *Pipeline) applyOverride(item *model.Item) {
	if patch, ok := tables.Overrides[item.UniqueName]; ok {
		patch.Apply(item)
	}
}

// normalizePolarities lowercases polarity values through the school-name
// map as a universal post-processing step, override or not.
func (p *Pipeline) normalizePolarities(item *model.Item) {
	if item.Polarity != "" {
		item.Polarity = p.mapPolarity(item, item.Polarity)
	}
	if len(item.Polarities) > 0 {
		item.Polarities = lo.Map(item.Polarities, func(pol string, _ int) string {
			return p.mapPolarity(item, pol)
		})
	}
}

func (p *Pipeline) mapPolarity(item *model.Item, raw string) string {
	if name, ok := tables.Polarities[raw]; ok {
		return name
	}
	lowered := strings.ToLower(raw)
	if !lo.Contains(lo.Values(tables.Polarities), lowered) {
		p.warns.Add(constant.WarnPolarity, item.Name+": "+raw)
	}
	return lowered
}

func isMasterable(item *model.Item) bool {
	if _, excepted := tables.NonMasterable[item.Name]; excepted {
		return false
	}
	return lo.Contains(tables.MasterableCategories, item.Category)
}
