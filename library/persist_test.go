package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyLibrary(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, lib.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lib := New()
	lib.PDFDirectory = "/srv/standards/pdfs"
	Seed(lib)

	path := filepath.Join(t.TempDir(), "sub", "standards_index.json")
	require.NoError(t, lib.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, lib.PDFDirectory, loaded.PDFDirectory)
	assert.Equal(t, lib.IDs(), loaded.IDs(), "standard order survives the round trip")

	for _, id := range lib.IDs() {
		want, err := lib.Standard(id)
		require.NoError(t, err)
		got, err := loaded.Standard(id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Aliases flatten back out into the full index on load.
	for _, query := range []string{"leakage current", "touch current", "Class B", "OTS"} {
		want := lib.LookupTopic(query)
		got := loaded.LookupTopic(query)
		require.NotNil(t, got, "query %q", query)
		assert.Equal(t, want.Topic, got.Topic, "query %q", query)
	}

	assert.Equal(t, lib.TopicCount(), loaded.TopicCount())

	// Re-saving the loaded library is byte-stable modulo a fresh file.
	path2 := filepath.Join(t.TempDir(), "again.json")
	require.NoError(t, loaded.Save(path2))
	reloaded, err := Load(path2)
	require.NoError(t, err)
	assert.Equal(t, loaded.IDs(), reloaded.IDs())
	assert.Equal(t, loaded.TopicCount(), reloaded.TopicCount())
}

func TestSeedContents(t *testing.T) {
	lib := New()
	Seed(lib)

	assert.Equal(t, []string{"IEC_60601-1", "ISO_14708-1", "ISO_14971", "IEC_62304"}, lib.IDs())
	assert.Equal(t, 10, lib.TopicCount())

	std, err := lib.Standard("IEC_60601-1")
	require.NoError(t, err)
	assert.Equal(t, "IEC 60601-1", std.ShortTitle)
	assert.Len(t, std.Sections, 16)
	assert.Len(t, std.Annexes, 5)

	xref := lib.LookupTopic("earth leakage")
	require.NotNil(t, xref)
	assert.Equal(t, "leakage current", xref.Topic)
	assert.Equal(t, "8.7", xref.PrimarySection)
}
