package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

func TestAddVaultDataWarnsOnMissingPrime(t *testing.T) {
	p := newTestPipeline(t, nil)

	item := &model.Item{Name: "Tipedo Prime", Category: constant.CategoryMelee, Type: "Melee"}
	p.addVaultData(item)

	assert.Equal(t, 1, p.warns.Count())
	assert.Empty(t, item.ReleaseDate)
}

func TestAddVaultDataExclusionsDoNotWarn(t *testing.T) {
	p := newTestPipeline(t, nil)

	// founders gear is a documented tracker absence
	p.addVaultData(&model.Item{Name: "Lato Prime", Category: constant.CategorySecondary, Type: "Pistol"})
	// non-prime names and non-vault categories skip the lookup entirely
	p.addVaultData(&model.Item{Name: "Braton", Category: constant.CategoryPrimary, Type: "Rifle"})
	p.addVaultData(&model.Item{Name: "Energy Siphon Prime", Category: constant.CategoryMods, Type: "Mod"})

	assert.Equal(t, 0, p.warns.Count())
}

func TestAddVaultDataWikiFallback(t *testing.T) {
	vaulted := true
	p := newTestPipeline(t, &model.RawData{
		Wikia: &model.Wikia{
			Warframes: []model.WikiaWarframe{{Name: "Ember Prime", Introduced: "11.0", Vaulted: &vaulted}},
			Versions:  []model.WikiaVersion{{Name: "11.0", Date: "2013-11-20"}},
		},
	})

	item := &model.Item{Name: "Ember Prime", Category: constant.CategoryWarframes, Type: "Warframe"}
	p.addVaultData(item)

	assert.Equal(t, "2013-11-20", item.ReleaseDate)
	assert.NotNil(t, item.Vaulted)
	assert.True(t, *item.Vaulted)
	assert.Equal(t, 0, p.warns.Count())
}

func TestAddVaultDataTrackerRecord(t *testing.T) {
	p := newTestPipeline(t, &model.RawData{
		VaultData: []model.VaultRecord{{
			Name:                 "Frost Prime",
			ReleaseDate:          null.StringFrom("2013-05-03"),
			VaultedDate:          null.StringFrom("2015-10-06"),
			EstimatedVaultedDate: null.StringFrom("2015-10-01"),
			Vaulted:              null.BoolFrom(true),
		}},
	})

	item := &model.Item{Name: "Frost Prime", Category: constant.CategoryWarframes, Type: "Warframe"}
	p.addVaultData(item)

	assert.Equal(t, "2013-05-03", item.ReleaseDate)
	assert.Equal(t, "2015-10-06", item.VaultDate)
	assert.Equal(t, "2015-10-01", item.EstimatedVaultDate)
	assert.True(t, *item.Vaulted)
}
