package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordis.dev/itembuilder/internal/model"
)

func TestExportCategory(t *testing.T) {
	category, ok := exportCategory("ExportWeapons_en.json")
	require.True(t, ok)
	assert.Equal(t, "Weapons", category)

	category, ok = exportCategory("ExportRelicArcane_de.json")
	require.True(t, ok)
	assert.Equal(t, "RelicArcane", category)

	_, ok = exportCategory("ExportVirtuals_en.json")
	assert.False(t, ok)

	_, ok = exportCategory("ExportManifest.json")
	assert.False(t, ok)
}

func TestCleanExport(t *testing.T) {
	dirty := []byte("{\"name\":\"Bro\rken\nName\",\x01\"description\":\"ok\"}")
	assert.Equal(t, `{"name":"BrokenName","description":"ok"}`, string(cleanExport(dirty)))
}

func TestFoldOriginEndpointCategory(t *testing.T) {
	raw := &model.RawData{I18n: map[string]map[string]map[string]string{}}
	s := &Service{}

	body := []byte(`{"ExportWeapons":[{"uniqueName":"/Lotus/Weapons/Braton","name":"BRATON"}]}`)
	err := s.foldOriginEndpoint(raw, originEndpoint{locale: "en", name: "ExportWeapons_en.json"}, body)
	require.NoError(t, err)

	require.Len(t, raw.API, 1)
	assert.Equal(t, "Weapons", raw.API[0].Category)
	assert.Equal(t, "BRATON", raw.API[0].Data[0].Name)
}

func TestFoldOriginEndpointManifest(t *testing.T) {
	raw := &model.RawData{I18n: map[string]map[string]map[string]string{}}
	s := &Service{}

	body := []byte(`{"Manifest":[{"uniqueName":"/Lotus/Weapons/Braton","textureLocation":"/Lotus/Icons/Braton.png!00_a"}]}`)
	err := s.foldOriginEndpoint(raw, originEndpoint{locale: "en", name: "ExportManifest.json"}, body)
	require.NoError(t, err)

	require.Len(t, raw.Manifest, 1)
	assert.Equal(t, "/Lotus/Icons/Braton.png!00_a", raw.Manifest[0].TextureLocation)
}

func TestFoldOriginEndpointI18n(t *testing.T) {
	raw := &model.RawData{I18n: map[string]map[string]map[string]string{}}
	s := &Service{}

	body := []byte(`{"ExportWeapons":[{"uniqueName":"/Lotus/Weapons/Braton","name":"Braton","description":"Klassiker","unwanted":"x"}]}`)
	err := s.foldOriginEndpoint(raw, originEndpoint{locale: "de", name: "ExportWeapons_de.json"}, body)
	require.NoError(t, err)

	assert.Empty(t, raw.API)
	assert.Equal(t, "Klassiker", raw.I18n["de"]["/Lotus/Weapons/Braton"]["description"])
	// only allow-listed fields cross into the i18n table
	_, ok := raw.I18n["de"]["/Lotus/Weapons/Braton"]["unwanted"]
	assert.False(t, ok)
}

func TestFoldOriginEndpointUnconsumed(t *testing.T) {
	raw := &model.RawData{I18n: map[string]map[string]map[string]string{}}
	s := &Service{}

	err := s.foldOriginEndpoint(raw, originEndpoint{locale: "en", name: "ExportVirtuals_en.json"}, []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, raw.API)
}
