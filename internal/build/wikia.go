package build

import (
	"strings"

	"github.com/samber/lo"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

// addWikiaData merges the wiki's per-category stats onto the item. Wiki
// records are matched case-insensitively by display name; a malformed or
// absent record simply contributes nothing.
func (p *Pipeline) addWikiaData(item *model.Item) {
	if p.raw.Wikia == nil {
		return
	}

	switch item.Category {
	case constant.CategoryPrimary, constant.CategorySecondary, constant.CategoryMelee,
		constant.CategoryArchGun, constant.CategoryArchMelee:
		p.addWikiaWeapon(item, p.raw.Wikia.Weapons)

	case constant.CategoryWarframes, constant.CategoryArchwing:
		frame := p.wikiaFrame(item.Name)
		if frame == nil {
			return
		}
		if frame.Aura != "" {
			item.Aura = frame.Aura
		}
		if len(frame.Polarities) > 0 {
			item.Polarities = append([]string(nil), frame.Polarities...)
		}
		if frame.Sex != "" {
			item.Sex = frame.Sex
		}
		item.WikiaURL = frame.URL
		item.WikiaThumbnail = frame.Thumbnail

	case constant.CategoryMods:
		mod, ok := lo.Find(p.raw.Wikia.Mods, func(m model.WikiaMod) bool {
			return strings.EqualFold(m.Name, item.Name)
		})
		if !ok {
			return
		}
		item.Rarity = mod.Rarity
		item.Transmutable = mod.Transmutable
		item.WikiaURL = mod.URL
		item.WikiaThumbnail = mod.Thumbnail

	case constant.CategorySentinels, constant.CategoryPets:
		p.addWikiaWeapon(item, p.raw.Wikia.Companions)
	}
}

func (p *Pipeline) addWikiaWeapon(item *model.Item, records []model.WikiaWeapon) {
	rec, ok := lo.Find(records, func(w model.WikiaWeapon) bool {
		return strings.EqualFold(w.Name, item.Name)
	})
	if !ok {
		return
	}

	if rec.Disposition > 0 {
		item.Disposition = rec.Disposition
	}
	item.WikiaURL = rec.URL
	if rec.Thumbnail == "" {
		p.warns.Add(constant.WarnMissingWikiThumb, item.Name)
	} else {
		item.WikiaThumbnail = rec.Thumbnail
	}
}
