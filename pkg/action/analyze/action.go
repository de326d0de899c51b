// Package analyze runs the analysis pipeline over source files on disk and
// reports per-file results for the CLI and tests.
package analyze

import (
	"fmt"
	"os"

	"github.com/cmmoran/jsls/pkg/language"
)

// Report is the analysis result for one file.
type Report struct {
	Path        string                    `json:"path"`
	Tokens      int                       `json:"tokens"`
	Nodes       int                       `json:"nodes"`
	Diagnostics []language.Diagnostic     `json:"diagnostics"`
	Outline     []language.DocumentSymbol `json:"outline"`
}

// Run analyzes each path synchronously and returns one report per file, in
// input order.
func Run(paths []string, opts ...language.Option) ([]Report, error) {
	reports := make([]Report, 0, len(paths))
	for _, p := range paths {
		r, err := File(p, opts...)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// File analyzes a single source file.
func File(path string, opts ...language.Option) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read source %s: %w", path, err)
	}

	svc := language.New(string(data), opts...)
	a := svc.Snapshot()
	return Report{
		Path:        path,
		Tokens:      len(a.Tokens),
		Nodes:       a.NodeCount(),
		Diagnostics: svc.Diagnostics(),
		Outline:     svc.DocumentSymbols(),
	}, nil
}
