package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReportsPerFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.js")
	require.NoError(t, os.WriteFile(good, []byte("const a = 1\nfunction f() { return a }\n"), 0o644))
	broken := filepath.Join(dir, "broken.js")
	require.NoError(t, os.WriteFile(broken, []byte("const = 1\nlet ok = 2\n"), 0o644))

	reports, err := Run([]string{good, broken})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, good, reports[0].Path)
	assert.Empty(t, reports[0].Diagnostics)
	assert.Greater(t, reports[0].Tokens, 0)
	assert.Greater(t, reports[0].Nodes, 0)
	var names []string
	for _, ds := range reports[0].Outline {
		names = append(names, ds.Name)
	}
	assert.Contains(t, names, "a")
	assert.Contains(t, names, "f")

	assert.NotEmpty(t, reports[1].Diagnostics, "broken file reports its parse errors")
	names = names[:0]
	for _, ds := range reports[1].Outline {
		names = append(names, ds.Name)
	}
	assert.Contains(t, names, "ok", "recovery keeps the rest of the file in the outline")
}

func TestRunStopsOnUnreadableFile(t *testing.T) {
	_, err := Run([]string{filepath.Join(t.TempDir(), "absent.js")})
	require.Error(t, err)
	assert.ErrorContains(t, err, "absent.js")
}
