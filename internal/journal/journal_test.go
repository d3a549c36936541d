package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	j := New(path)
	assert.False(t, j.IsExported("image1.png"))

	j.MarkExported("image1.png", "media/image1.png")
	j.MarkExported("image2.png", "media/image2.png")
	assert.True(t, j.IsExported("image1.png"))

	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.IsExported("image1.png"))
	assert.True(t, reloaded.IsExported("image2.png"))
	assert.ElementsMatch(t, []string{"image1.png", "image2.png"}, reloaded.ListExported())
}

func TestJournalLoadMissingFile(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, j.Load(), "a missing journal starts fresh")
	assert.Empty(t, j.ListExported())
}

func TestJournalClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	j := New(path)
	j.MarkExported("a.png", "a.png")
	j.Clear()
	assert.False(t, j.IsExported("a.png"))

	reloaded := New(path)
	require.NoError(t, reloaded.Load())
	assert.Empty(t, reloaded.ListExported())
}
