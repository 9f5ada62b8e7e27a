package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ordis.dev/itembuilder/internal/model"
)

func TestIsTradable(t *testing.T) {
	tradable := func(item model.Item, rawItem model.RawItem) bool {
		return isTradable(&item, &rawItem)
	}

	// type allow-list
	assert.True(t, tradable(model.Item{Name: "Serration", Type: "Mod"}, model.RawItem{}))
	assert.True(t, tradable(model.Item{Name: "Axi A1 Relic", Type: "Relic"}, model.RawItem{}))

	// named variant trades even when the type does not
	assert.True(t, tradable(model.Item{
		UniqueName: "/Lotus/Weapons/Grineer/LongGuns/WraithGorgon/WraithGorgon",
		Name:       "Gorgon Wraith",
		Type:       "Rifle",
	}, model.RawItem{}))
	assert.False(t, tradable(model.Item{
		UniqueName: "/Lotus/Weapons/Grineer/GrineerAssaultRifle/GrineerAssaultRifle",
		Name:       "Gorgon",
		Type:       "Rifle",
	}, model.RawItem{}))

	// augment flag is an independent signal
	assert.True(t, tradable(model.Item{Name: "Fireball Frenzy", Type: "Augment Mod"}, model.RawItem{IsAugment: true}))

	// deny filters veto any positive signal
	assert.False(t, tradable(model.Item{Name: "Excalibur Prime Skin", Type: "Skin"}, model.RawItem{}))
	assert.False(t, tradable(model.Item{Name: "Ember Prime Glyph", Type: "Mod"}, model.RawItem{}))

	// craft-only weapon families never trade as finished items
	assert.False(t, tradable(model.Item{Name: "Prisma Burst Laser", Type: "Sentinel Weapon"}, model.RawItem{}))

	assert.False(t, tradable(model.Item{Name: "Braton", Type: "Rifle"}, model.RawItem{}))
}
