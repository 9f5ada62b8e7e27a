package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordis.dev/itembuilder/internal/model"
)

func TestDecodeArrayProbesPaths(t *testing.T) {
	wrapped := []byte(`{"data":[{"place":"Xini","item":"Axi A1 Relic","rarity":"Rare","chance":6.5}]}`)
	rates, err := decodeArray[model.RawDrop](wrapped, "data")
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "Xini", rates[0].Location)

	bare := []byte(`[{"place":"Xini","item":"Axi A1 Relic","rarity":"Rare","chance":6.5}]`)
	rates, err = decodeArray[model.RawDrop](bare, "data")
	require.NoError(t, err)
	assert.Len(t, rates, 1)
}

func TestDecodeArrayRejectsNonArray(t *testing.T) {
	_, err := decodeArray[model.RawDrop]([]byte(`{"data":{"nope":1}}`), "data")
	assert.Error(t, err)
}
