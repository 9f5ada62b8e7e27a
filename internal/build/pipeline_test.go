package build

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

const (
	bratonUniqueName  = "/Lotus/Weapons/Tenno/LongGuns/BratonPrime/BratonPrime"
	barrelUniqueName  = "/Lotus/Types/Recipes/Weapons/WeaponParts/BratonPrimeBarrel"
	gorgonUniqueName  = "/Lotus/Weapons/Grineer/GrineerAssaultRifle/GrineerAssaultRifle"
	ferriteUniqueName = "/Lotus/Types/Items/MiscItems/Ferrite"
	relicUniqueName   = "/Lotus/Types/Game/Projections/T4VoidProjectionA"
)

func fixtureRaw() *model.RawData {
	primary := constant.SlotPrimary
	return &model.RawData{
		API: []model.RawCategory{
			{Category: "Weapons", Data: []model.RawItem{
				{UniqueName: bratonUniqueName, Name: "BRATON PRIME", Slot: &primary, Description: "The gilded classic."},
				{UniqueName: gorgonUniqueName, Name: "GORGON", Slot: &primary},
				// duplicate of a record owned by an earlier export category
				{UniqueName: ferriteUniqueName, Name: "FERRITE", Slot: &primary},
			}},
			{Category: "Resources", Data: []model.RawItem{
				{UniqueName: barrelUniqueName, Name: "BRATON PRIME BARREL", Description: "Weapon part."},
				{UniqueName: ferriteUniqueName, Name: "FERRITE", Description: "A common component metal."},
			}},
			{Category: "RelicArcane", Data: []model.RawItem{
				{UniqueName: relicUniqueName, Name: "Axi A1 Intact"},
			}},
		},
		Blueprints: []model.RawBlueprint{{
			UniqueName:        "/Lotus/Types/Recipes/Weapons/BratonPrimeBlueprint",
			ResultType:        bratonUniqueName,
			Ingredients:       []model.RawIngredient{{ItemType: barrelUniqueName, ItemCount: 1}},
			BuildPrice:        15000,
			BuildTime:         86400,
			Num:               1,
			PrimeSellingPrice: 100,
		}},
		Manifest: []model.ManifestEntry{
			{UniqueName: bratonUniqueName, TextureLocation: "/Lotus/Interface/Icons/BratonPrime.png!00_a"},
			{UniqueName: barrelUniqueName, TextureLocation: "/Lotus/Interface/Icons/BratonPrimeBarrel.png!00_b"},
			{UniqueName: gorgonUniqueName, TextureLocation: "/Lotus/Interface/Icons/Gorgon.png!00_c"},
			{UniqueName: ferriteUniqueName, TextureLocation: "/Lotus/Interface/Icons/Ferrite.png!00_d"},
			{UniqueName: relicUniqueName, TextureLocation: "/Lotus/Interface/Icons/ProjA.png!00_e"},
		},
		Drops: &model.Drops{Changed: true, Rates: []model.RawDrop{
			{Item: "Braton Prime Barrel", Location: "Lith B1 Relic", Rarity: "Uncommon", Chance: 11},
			{Item: "Braton Prime Barrel", Location: "Lith B8 Relic (Radiant)", Rarity: "Uncommon", Chance: 20},
			{Item: "Gorgon Wraith Receiver", Location: "Invasion", Rarity: "Common", Chance: 50},
			{Item: "Axi A1 Relic", Location: "Xini (Eris)", Rarity: "Rare", Chance: 6.5, Rotation: "B"},
		}},
		Patchlogs: &model.Patchlogs{Changed: true, Posts: []model.PatchlogPost{
			{Name: "Braton Prime Changes", Date: "2020-03-05", URL: "https://forums.example.com/braton-prime"},
			{Name: "Gorgon Wraith Hotfix", Date: "2019-01-01", URL: "https://forums.example.com/gorgon-wraith"},
		}},
		Wikia: &model.Wikia{
			Weapons: []model.WikiaWeapon{{Name: "Braton Prime", URL: "https://wiki.example.com/Braton_Prime", Thumbnail: "https://img.example.com/bp.png", Disposition: 3}},
			Ducats:  []model.WikiaDucat{{Name: "Braton Prime Barrel", Ducats: 15}},
		},
		VaultData: []model.VaultRecord{{
			Name:        "Braton Prime",
			ReleaseDate: null.StringFrom("2013-12-10"),
			Vaulted:     null.BoolFrom(false),
		}},
		Relics: []model.TitaniaRelic{{
			Tier:  "Axi",
			Name:  "A1",
			State: "Intact",
			Rewards: []model.TitaniaRelicItem{
				{ItemName: "Braton Prime Barrel", Rarity: "Uncommon", Chance: 11},
				{ItemName: "Forma Blueprint", Rarity: "Common", Chance: 25.33},
			},
		}},
		I18n: map[string]map[string]map[string]string{
			"de": {bratonUniqueName: {"name": "Braton Prime", "description": "Der vergoldete Klassiker."}},
		},
	}
}

func runFixture(t *testing.T) *Result {
	t.Helper()
	result, err := NewPipeline(fixtureRaw(), LoadPrevious(t.TempDir())).Run()
	require.NoError(t, err)
	return result
}

func itemByName(t *testing.T, items []*model.Item, name string) *model.Item {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("item %q not in result", name)
	return nil
}

func TestPipelineRecordSet(t *testing.T) {
	result := runFixture(t)

	// the recipe-scoped barrel folds into its parent and never stands alone
	names := make([]string, 0, len(result.All))
	for _, item := range result.All {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Axi A1 Intact", "Braton Prime", "Ferrite", "Gorgon"}, names)
}

func TestPipelineDuplicateOwnership(t *testing.T) {
	result := runFixture(t)

	// Resources precedes Weapons in export order, so it owns the record
	ferrite := itemByName(t, result.All, "Ferrite")
	assert.Equal(t, constant.CategoryResources, ferrite.Category)
	assert.Len(t, result.Categories[constant.CategoryResources], 1)
	assert.Len(t, result.Categories[constant.CategoryPrimary], 2)
}

func TestPipelineBlueprintFolding(t *testing.T) {
	braton := itemByName(t, runFixture(t).All, "Braton Prime")

	assert.Equal(t, constant.CategoryPrimary, braton.Category)
	assert.True(t, braton.Tradable)
	assert.True(t, braton.Masterable)
	assert.Equal(t, 15000, braton.BuildPrice)
	assert.Equal(t, 86400, braton.BuildTime)
	assert.Equal(t, 1, braton.BuildQuantity)
	assert.Equal(t, "braton-prime.png", braton.ImageName)

	require.Len(t, braton.Components, 2)
	barrel, blueprint := braton.Components[0], braton.Components[1]

	assert.Equal(t, "Barrel", barrel.Name)
	assert.Equal(t, 1, barrel.ItemCount)
	assert.Equal(t, 15, barrel.Ducats)
	assert.Empty(t, barrel.Type)
	assert.Empty(t, barrel.Category)
	assert.Equal(t, "prime-barrel.png", barrel.ImageName)

	assert.Equal(t, "Blueprint", blueprint.Name)
	assert.Equal(t, 1, blueprint.ItemCount)
	assert.Equal(t, 100, blueprint.Ducats)
}

func TestPipelineComponentDrops(t *testing.T) {
	braton := itemByName(t, runFixture(t).All, "Braton Prime")

	// drops attach per component, highest chance first
	assert.Empty(t, braton.Drops)
	barrel := braton.Components[0]
	require.Len(t, barrel.Drops, 2)
	assert.Equal(t, 0.2, barrel.Drops[0].Chance)
	assert.Equal(t, "Lith B8 Relic (Radiant)", barrel.Drops[0].Location)
}

func TestPipelineVariantIsolation(t *testing.T) {
	gorgon := itemByName(t, runFixture(t).All, "Gorgon")

	// Wraith lines belong to the variant, not the base weapon
	assert.Empty(t, gorgon.Drops)
	assert.Empty(t, gorgon.Patchlogs)
	assert.False(t, gorgon.Tradable)
}

func TestPipelineEnrichment(t *testing.T) {
	braton := itemByName(t, runFixture(t).All, "Braton Prime")

	assert.Equal(t, "2013-12-10", braton.ReleaseDate)
	require.NotNil(t, braton.Vaulted)
	assert.False(t, *braton.Vaulted)

	assert.Equal(t, 3, braton.Disposition)
	assert.Equal(t, "https://wiki.example.com/Braton_Prime", braton.WikiaURL)

	require.Len(t, braton.Patchlogs, 1)
	assert.Equal(t, "Braton Prime Changes", braton.Patchlogs[0].Name)
}

func TestPipelineRelic(t *testing.T) {
	relic := itemByName(t, runFixture(t).All, "Axi A1 Intact")

	assert.Equal(t, "Relic", relic.Type)
	assert.Equal(t, constant.CategoryRelics, relic.Category)
	assert.True(t, relic.Tradable)
	assert.Equal(t, "axi-a1.png", relic.ImageName)

	require.Len(t, relic.RelicRewards, 2)
	assert.Equal(t, "Braton Prime Barrel", relic.RelicRewards[0].ItemName)

	require.Len(t, relic.Drops, 1)
	assert.Equal(t, "Xini (Eris)", relic.Drops[0].Location)
	assert.Equal(t, "B", relic.Drops[0].Rotation)
}

func TestPipelineI18nPassthrough(t *testing.T) {
	result := runFixture(t)
	assert.Equal(t, "Der vergoldete Klassiker.", result.I18n["de"][bratonUniqueName]["description"])
}

func TestPipelineDeterministic(t *testing.T) {
	first, err := NewPipeline(fixtureRaw(), LoadPrevious(t.TempDir())).Run()
	require.NoError(t, err)
	second, err := NewPipeline(fixtureRaw(), LoadPrevious(t.TempDir())).Run()
	require.NoError(t, err)

	a, err := json.Marshal(first.All)
	require.NoError(t, err)
	b, err := json.Marshal(second.All)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestPipelineDropReuse(t *testing.T) {
	dir := t.TempDir()

	raw := fixtureRaw()
	result, err := NewPipeline(raw, LoadPrevious(dir)).Run()
	require.NoError(t, err)

	b, err := json.Marshal(result.All)
	require.NoError(t, err)
	writeFixtureAll(t, dir, b)

	// unchanged drop source: entries come from the previous build even when
	// the current rate table no longer carries them
	raw = fixtureRaw()
	raw.Drops.Changed = false
	raw.Drops.Rates = nil

	reused, err := NewPipeline(raw, LoadPrevious(dir)).Run()
	require.NoError(t, err)

	barrel := itemByName(t, reused.All, "Braton Prime").Components[0]
	require.Len(t, barrel.Drops, 2)
	assert.Equal(t, 0.2, barrel.Drops[0].Chance)
}
