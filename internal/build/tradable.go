package build

import (
	"github.com/samber/lo"

	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/tables"
)

// isTradable combines three independent signals: type allow-list, a named
// variant in the name or uniqueName, or the explicit augment flag. The deny
// filters run first and veto everything; the trailing guard excludes
// craft-only weapon types whose component names mention "Prime" without
// being an actual Prime variant.
func isTradable(item *model.Item, rawItem *model.RawItem) bool {
	if lo.Contains(tables.UntradableTypes, item.Type) {
		return false
	}
	if tables.UntradableRegex.MatchString(item.Name) || tables.UntradableRegex.MatchString(item.UniqueName) {
		return false
	}

	byType := lo.Contains(tables.TradableTypes, item.Type)
	byVariant := tables.TradableRegex.MatchString(item.Name) || tables.TradableRegex.MatchString(item.UniqueName)

	tradable := byType || byVariant || rawItem.IsAugment

	if tradable && lo.Contains(tables.CraftOnlyTypes, item.Type) {
		return false
	}
	return tradable
}
