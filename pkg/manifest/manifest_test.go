package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSnapshotRotatesPointers(t *testing.T) {
	m := &Manifest{}

	m.AddSnapshot(Snapshot{Name: "app", Version: "v1.0.0", File: "app@v1.0.0.yaml"})
	assert.Equal(t, "v1.0.0", m.CurrentVersion)
	assert.Empty(t, m.PreviousVersion)

	m.AddSnapshot(Snapshot{Name: "app", Version: "v1.1.0", File: "app@v1.1.0.yaml"})
	assert.Equal(t, "v1.1.0", m.CurrentVersion)
	assert.Equal(t, "v1.0.0", m.PreviousVersion)
}

func TestAddSnapshotDedupes(t *testing.T) {
	m := &Manifest{}

	m.AddSnapshot(Snapshot{Name: "app", Version: "v1.0.0", File: "first.yaml"})
	m.AddSnapshot(Snapshot{Name: "app", Version: "v1.0.0", File: "second.yaml"})

	require.Len(t, m.Snapshots, 1)
	assert.Equal(t, "second.yaml", m.Snapshots[0].File)
	assert.Empty(t, m.PreviousVersion, "re-recording the current version keeps the pointers")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "manifest.yaml")
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Name: "app", Version: "v1.0.0", File: "app@v1.0.0.yaml", Source: "app.js"})
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
	assert.Equal(t, "app@v1.0.0.yaml", loaded.SnapshotFile("v1.0.0"))
	assert.Empty(t, loaded.SnapshotFile("v9.9.9"))
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, m.Snapshots)
	assert.Empty(t, m.CurrentVersion)
}

func TestLatestOrdersBySemver(t *testing.T) {
	m := &Manifest{Snapshots: []Snapshot{
		{Name: "app", Version: "v1.2.0"},
		{Name: "app", Version: "v1.10.0"},
		{Name: "app", Version: "v1.9.1"},
		{Name: "app", Version: "not-a-version"},
	}}

	assert.Equal(t, "v1.10.0", m.Latest())
}
