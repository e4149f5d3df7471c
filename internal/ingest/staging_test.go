package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{"PDF", true},
		{".JPeG", true},
		{".png", true},
		{".txt", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AllowedExt(tt.ext), "ext %q", tt.ext)
	}
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/tmp/.DS_Store"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("/tmp/invoice.pdf"))
}

func TestStagerResetAndCopyIn(t *testing.T) {
	root := t.TempDir()
	staging := filepath.Join(t.TempDir(), "staging_area")
	st := NewStager(staging, filepath.Join(t.TempDir(), "processed_area"), nil, nil)

	require.NoError(t, st.Reset())

	// Same basename in two subdirectories forces a collision rename.
	sub := filepath.Join(root, "march")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "inv.pdf"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "inv.pdf"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden.pdf"), []byte("h"), 0o644))

	stats, err := st.CopyIn(root)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), stats.Copied)
	assert.Equal(t, uint32(1), stats.Renamed)
	assert.Equal(t, uint32(1), stats.Skipped)

	entries, err := os.ReadDir(staging)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"inv.pdf", "inv_dup.pdf"}, names)
}

func TestStagerResetClearsPreviousRun(t *testing.T) {
	staging := filepath.Join(t.TempDir(), "staging_area")
	st := NewStager(staging, t.TempDir(), nil, nil)

	require.NoError(t, st.Reset())
	require.NoError(t, os.WriteFile(filepath.Join(staging, "stale.pdf"), []byte("s"), 0o644))
	require.NoError(t, st.Reset())

	entries, err := os.ReadDir(staging)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegularizeMovesImages(t *testing.T) {
	staging := filepath.Join(t.TempDir(), "staging_area")
	processed := filepath.Join(t.TempDir(), "processed_area")
	st := NewStager(staging, processed, nil, nil)

	require.NoError(t, st.Reset())
	require.NoError(t, os.WriteFile(filepath.Join(staging, "receipt.jpg"), []byte("img"), 0o644))

	stats, err := st.Regularize()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.Moved)

	_, err = os.Stat(filepath.Join(processed, "receipt.jpg"))
	assert.NoError(t, err)
}
