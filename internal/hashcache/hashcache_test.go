package hashcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordis.dev/itembuilder/internal/app/appconfig"
)

func testConfig(t *testing.T) *appconfig.Config {
	t.Helper()
	return &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{CacheDir: t.TempDir()}}
}

func TestChangedAcrossRuns(t *testing.T) {
	conf := testConfig(t)

	c, err := New(conf)
	require.NoError(t, err)

	// a key never seen before counts as changed
	assert.True(t, c.Changed("Drops", []byte(`{"a":1}`)))
	require.NoError(t, c.Save())

	c, err = New(conf)
	require.NoError(t, err)
	assert.False(t, c.Changed("Drops", []byte(`{"a":1}`)))
	assert.True(t, c.Changed("Drops", []byte(`{"a":2}`)))
}

func TestUnsavedRunDoesNotAdvance(t *testing.T) {
	conf := testConfig(t)

	c, err := New(conf)
	require.NoError(t, err)
	assert.True(t, c.Changed("Drops", []byte("v1")))
	// no Save: a crashed run must re-fetch next time

	c, err = New(conf)
	require.NoError(t, err)
	assert.True(t, c.Changed("Drops", []byte("v1")))
}

func TestChangedToken(t *testing.T) {
	c, err := New(testConfig(t))
	require.NoError(t, err)

	assert.True(t, c.ChangedToken("Origin:Weapons", "lzma!abc"))
	assert.False(t, c.ChangedToken("Origin:Weapons", "lzma!abc"))
	assert.True(t, c.ChangedToken("Origin:Weapons", "lzma!def"))
}

func TestHashStable(t *testing.T) {
	assert.Equal(t, Hash([]byte("braton")), Hash([]byte("braton")))
	assert.NotEqual(t, Hash([]byte("braton")), Hash([]byte("gorgon")))
	assert.Len(t, Hash([]byte("braton")), 16)
}
