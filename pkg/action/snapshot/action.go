// Package snapshot records document outlines on disk and diffs them across
// recorded versions.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/jsls/pkg/language"
	"github.com/cmmoran/jsls/pkg/manifest"
)

// ErrNoHistory is returned by DiffCurrentWithPrevious when the manifest does
// not yet record two versions to compare.
var ErrNoHistory = errors.New("fewer than two snapshot versions recorded")

// Generate analyzes the source file, writes its outline as a YAML snapshot
// under outDir, and records it in the manifest. It returns the snapshot path.
func Generate(srcPath, outDir, manifestPath, version string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", srcPath, err)
	}
	svc := language.New(string(data))
	payload, err := yaml.Marshal(svc.DocumentSymbols())
	if err != nil {
		return "", fmt.Errorf("marshal outline: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	outFile := filepath.Clean(filepath.Join(outDir, fmt.Sprintf("%s@%s.yaml", name, version)))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}
	if err := os.WriteFile(outFile, payload, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	m.AddSnapshot(manifest.Snapshot{Name: name, Version: version, File: outFile, Source: srcPath})
	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous snapshot files, and returns a textual diff of their contents. An
// empty string means the outlines match.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", ErrNoHistory
	}

	currentPath := m.SnapshotFile(m.CurrentVersion)
	previousPath := m.SnapshotFile(m.PreviousVersion)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("snapshot files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
