package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ordis.dev/itembuilder/internal/model"
)

func TestDropMatcherVariantIsolation(t *testing.T) {
	base := newDropMatcher("Gorgon")
	assert.True(t, base.matches("Gorgon Blueprint"))
	assert.False(t, base.matches("Gorgon Wraith Blueprint"))
	assert.False(t, base.matches("Prisma Gorgon Blueprint"))

	wraith := newDropMatcher("Gorgon Wraith")
	assert.True(t, wraith.matches("Gorgon Wraith Blueprint"))
	assert.False(t, wraith.matches("Gorgon Blueprint"))

	// variant words inside the target must not self-exclude
	prime := newDropMatcher("Braton Prime Barrel")
	assert.True(t, prime.matches("Braton Prime Barrel"))
	assert.False(t, prime.matches("Braton Prime Stock"))

	// whole-word runs only, no substring hits
	assert.False(t, base.matches("Gorgonite Ore"))
}

func TestSearchDrops(t *testing.T) {
	p := newTestPipeline(t, &model.RawData{
		Drops: &model.Drops{Changed: true, Rates: []model.RawDrop{
			{Item: "Braton Prime Barrel", Location: "Lith B1 Relic", Rarity: "Uncommon", Chance: 11},
			{Item: "Braton Prime Barrel", Location: "Lith B8 Relic (Radiant)", Rarity: "Uncommon", Chance: 20},
			{Item: "Braton Prime Barrel", Location: "Lith B1 Relic", Rarity: "Uncommon", Chance: 11}, // exact duplicate
			{Item: "Braton Prime Stock", Location: "Meso B3 Relic", Rarity: "Common", Chance: 25.33},
		}},
	})

	drops := p.searchDrops("Braton Prime Barrel")

	assert.Equal(t, []model.DropEntry{
		{Location: "Lith B8 Relic (Radiant)", Type: "Braton Prime Barrel", Rarity: "Uncommon", Chance: 0.2},
		{Location: "Lith B1 Relic", Type: "Braton Prime Barrel", Rarity: "Uncommon", Chance: 0.11},
	}, drops)
}

func TestSortDrops(t *testing.T) {
	drops := []model.DropEntry{
		{Location: "B", Chance: 0.1},
		{Location: "A", Chance: 0.1},
		{Location: "C", Chance: 0.5},
		{Location: "A", Chance: 0.1, Type: "X"},
	}
	sortDrops(drops)

	assert.Equal(t, 0.5, drops[0].Chance)
	assert.Equal(t, "A", drops[1].Location)
	assert.Equal(t, "", drops[1].Type)
	assert.Equal(t, "X", drops[2].Type)
	assert.Equal(t, "B", drops[3].Location)
}

func TestDropLookupName(t *testing.T) {
	assert.Equal(t, "Axi A1 Relic", dropLookupName(&model.Item{
		UniqueName: "/Lotus/Types/Game/Projections/T4VoidProjectionA",
		Name:       "Axi A1 Intact",
		Type:       "Relic",
	}))
	assert.Equal(t, "Braton Prime", dropLookupName(&model.Item{
		UniqueName: "/Lotus/Weapons/Tenno/LongGuns/BratonPrime/BratonPrime",
		Name:       "Braton Prime",
	}))
}
