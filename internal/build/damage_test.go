package build

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ordis.dev/itembuilder/internal/model"
)

func TestAddDamage(t *testing.T) {
	p := newTestPipeline(t, nil)

	item := &model.Item{UniqueName: "/Lotus/Weapons/Tenno/Rifle/Rifle"}
	p.addDamage(item, &model.RawItem{DamagePerShot: []float64{20, 10, 5}})

	assert.NotNil(t, item.Damage)
	assert.Equal(t, 20.0, item.Damage.Impact)
	assert.Equal(t, 10.0, item.Damage.Puncture)
	assert.Equal(t, 5.0, item.Damage.Slash)
	assert.Equal(t, 35.0, item.Damage.Total)
}

func TestAddDamageUpstreamTotalWins(t *testing.T) {
	p := newTestPipeline(t, nil)

	item := &model.Item{}
	p.addDamage(item, &model.RawItem{DamagePerShot: []float64{20, 10, 5}, TotalDamage: 40})

	assert.Equal(t, 40.0, item.Damage.Total)
}

func TestAddDamageAllZero(t *testing.T) {
	p := newTestPipeline(t, nil)

	item := &model.Item{}
	p.addDamage(item, &model.RawItem{DamagePerShot: make([]float64, 20)})

	assert.Nil(t, item.Damage)
}

func TestAddResistances(t *testing.T) {
	p := newTestPipeline(t, nil)

	item := &model.Item{}
	p.addResistances(item, &model.RawItem{Affectors: "++El -To +++Ra --Xx"})

	assert.Equal(t, []model.Resistance{
		{Element: "Electricity", Modifier: 0.5},
		{Element: "Toxin", Modifier: -0.25},
		{Element: "Radiation", Modifier: 0.75},
		{Element: "None", Modifier: 0},
	}, item.Resistances)
}

func TestAddResistancesEmpty(t *testing.T) {
	p := newTestPipeline(t, nil)

	item := &model.Item{}
	p.addResistances(item, &model.RawItem{Affectors: "   "})

	assert.Nil(t, item.Resistances)
}
