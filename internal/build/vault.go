package build

import (
	"strings"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
	"ordis.dev/itembuilder/internal/tables"
)

// vaultCategories are the output categories whose prime items rotate
// through the vault.
var vaultCategories = map[string]struct{}{
	constant.CategoryWarframes: {},
	constant.CategoryPrimary:   {},
	constant.CategorySecondary: {},
	constant.CategoryMelee:     {},
	constant.CategoryArchwing:  {},
	constant.CategoryArchGun:   {},
	constant.CategoryArchMelee: {},
	constant.CategorySentinels: {},
	constant.CategoryPets:      {},
}

// addVaultData attaches release/vault dates from the vault tracker, falling
// back to the wiki's version table. A miss on both is a missingVaultData
// warning unless the item is a documented tracker absence.
func (p *Pipeline) addVaultData(item *model.Item) {
	if !strings.HasSuffix(item.Name, " Prime") {
		return
	}
	if _, ok := vaultCategories[item.Category]; !ok {
		return
	}

	rec := p.vault[strings.ToLower(item.Name)]
	if rec != nil {
		if rec.ReleaseDate.Valid {
			item.ReleaseDate = rec.ReleaseDate.String
		}
		if rec.VaultedDate.Valid {
			item.VaultDate = rec.VaultedDate.String
		}
		if rec.EstimatedVaultedDate.Valid {
			item.EstimatedVaultDate = rec.EstimatedVaultedDate.String
		}
		if rec.Vaulted.Valid {
			v := rec.Vaulted.Bool
			item.Vaulted = &v
		}
		return
	}

	// wiki fallback: the introduced-version name resolves to a date
	if frame := p.wikiaFrame(item.Name); frame != nil {
		if date, ok := p.versions[frame.Introduced]; ok {
			item.ReleaseDate = date
		}
		if frame.Vaulted != nil {
			v := *frame.Vaulted
			item.Vaulted = &v
		}
		if item.ReleaseDate != "" || item.Vaulted != nil {
			return
		}
	}

	if !tables.IsVaultExcluded(item.Name, item.Type) {
		p.warns.Add(constant.WarnMissingVaultData, item.Name)
	}
}

func (p *Pipeline) wikiaFrame(name string) *model.WikiaWarframe {
	if p.raw.Wikia == nil {
		return nil
	}
	for i := range p.raw.Wikia.Warframes {
		if strings.EqualFold(p.raw.Wikia.Warframes[i].Name, name) {
			return &p.raw.Wikia.Warframes[i]
		}
	}
	for i := range p.raw.Wikia.Archwings {
		if strings.EqualFold(p.raw.Wikia.Archwings[i].Name, name) {
			return &p.raw.Wikia.Archwings[i]
		}
	}
	return nil
}
