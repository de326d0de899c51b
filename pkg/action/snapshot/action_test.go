package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecordsAndDiffs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.js")
	outDir := filepath.Join(dir, "snapshots")
	mpath := filepath.Join(dir, "manifest.yaml")

	require.NoError(t, os.WriteFile(src, []byte("const a = 1\n"), 0o644))
	first, err := Generate(src, outDir, mpath, "v1.0.0")
	require.NoError(t, err)
	assert.FileExists(t, first)

	require.NoError(t, os.WriteFile(src, []byte("const a = 1\nfunction added() { return a }\n"), 0o644))
	second, err := Generate(src, outDir, mpath, "v1.1.0")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	m, err := List(mpath)
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", m.CurrentVersion)
	assert.Equal(t, "v1.0.0", m.PreviousVersion)
	assert.Len(t, m.Snapshots, 2)
	assert.Equal(t, "v1.1.0", m.Latest())

	diff, err := DiffCurrentWithPrevious(mpath)
	require.NoError(t, err)
	assert.Contains(t, diff, "added", "the new symbol shows up in the outline diff")
}

func TestDiffRequiresTwoVersions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.js")
	mpath := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(src, []byte("let solo = 1\n"), 0o644))

	_, err := Generate(src, filepath.Join(dir, "snapshots"), mpath, "v1.0.0")
	require.NoError(t, err)

	_, err = DiffCurrentWithPrevious(mpath)
	require.ErrorIs(t, err, ErrNoHistory)
}
