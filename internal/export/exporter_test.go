package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"ordis.dev/itembuilder/internal/app/appconfig"
	"ordis.dev/itembuilder/internal/constant"
	"ordis.dev/itembuilder/internal/model"
)

func testExporter(t *testing.T) (*Exporter, string) {
	t.Helper()
	dir := t.TempDir()
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{OutputDir: dir}}
	return NewExporter(conf), dir
}

func readOutput(t *testing.T, dir, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return b
}

func TestWriteCategoriesCoversEveryPartition(t *testing.T) {
	e, dir := testExporter(t)

	require.NoError(t, e.WriteCategories(map[string][]*model.Item{
		constant.CategoryPrimary: {{UniqueName: "/Lotus/Weapons/Braton", Name: "Braton"}},
	}))

	b := readOutput(t, dir, "Primary.json")
	assert.Equal(t, "Braton", gjson.GetBytes(b, "0.name").String())

	// empty partitions still get a file so the file set never fluctuates
	for _, cat := range constant.Categories {
		_, err := os.Stat(filepath.Join(dir, cat+".json"))
		assert.NoError(t, err, cat)
	}
	assert.Equal(t, "[]\n", string(readOutput(t, dir, "Fish.json")))
}

func TestWriteAllByteStable(t *testing.T) {
	e, dir := testExporter(t)

	items := []*model.Item{
		{UniqueName: "/Lotus/Weapons/Braton", Name: "Braton", Tradable: false},
		{UniqueName: "/Lotus/Weapons/BratonPrime", Name: "Braton Prime", Tradable: true},
	}

	require.NoError(t, e.WriteAll(items))
	first := readOutput(t, dir, "All.json")

	require.NoError(t, e.WriteAll(items))
	second := readOutput(t, dir, "All.json")

	assert.Equal(t, first, second)
	assert.Equal(t, int64(2), gjson.GetBytes(first, "#").Int())
}

func TestWriteI18nPivot(t *testing.T) {
	e, dir := testExporter(t)

	require.NoError(t, e.WriteI18n(map[string]map[string]map[string]string{
		"de": {"/Lotus/Weapons/Braton": {"name": "Braton", "description": "Klassiker"}},
		"fr": {"/Lotus/Weapons/Braton": {"name": "Braton"}},
	}))

	b := readOutput(t, dir, "i18n.json")
	assert.Equal(t, "Klassiker", gjson.GetBytes(b, `\/Lotus\/Weapons\/Braton.de.description`).String())
	assert.Equal(t, "Braton", gjson.GetBytes(b, `\/Lotus\/Weapons\/Braton.fr.name`).String())
}

func TestWriteWarnings(t *testing.T) {
	e, dir := testExporter(t)

	w := model.NewWarnings()
	w.Add(constant.WarnMissingImage, "Gorgon")
	w.Add(constant.WarnMissingImage, "Braton")
	require.NoError(t, e.WriteWarnings(w))

	b := readOutput(t, dir, "Warnings.json")
	assert.Equal(t, "Braton", gjson.GetBytes(b, "missingImage.0").String())
}
