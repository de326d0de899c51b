package test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/cmmoran/jsls/pkg/language"
)

// TestFixtures feeds every archive under testdata through a full analysis
// pass and compares a rendered report with the archive's expect file. Each
// archive holds a src.js file and an expect file; the comment section
// describes the case.
func TestFixtures(ttt *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(ttt, err)
	require.NotEmpty(ttt, matches, "no fixture archives under testdata")
	for _, path := range matches {
		path := path
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		ttt.Run(name, func(t *testing.T) {
			t.Parallel()
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)
			files := map[string]string{}
			for _, f := range ar.Files {
				files[f.Name] = string(f.Data)
			}
			src, ok := files["src.js"]
			require.Truef(t, ok, "%s: missing src.js", path)
			want, ok := files["expect"]
			require.Truef(t, ok, "%s: missing expect", path)

			got := report(language.New(src))
			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Logf("diff: %s", diff)
			}
			require.EqualValuesf(t, want, got, "report mismatch for %s, diff = %s", path, diff)
		})
	}
}

// report renders an analyzed document the way the fixtures record it: a
// diagnostics block followed by the position-ordered outline.
func report(svc *language.Service) string {
	var b strings.Builder
	diags := svc.Diagnostics()
	if len(diags) == 0 {
		b.WriteString("diagnostics: none\n")
	} else {
		b.WriteString("diagnostics:\n")
		for _, d := range diags {
			fmt.Fprintf(&b, "  %s: %s\n", d.Severity, d.Message)
		}
	}
	syms := svc.DocumentSymbols()
	if len(syms) == 0 {
		b.WriteString("outline: none\n")
	} else {
		b.WriteString("outline:\n")
		for _, s := range syms {
			fmt.Fprintf(&b, "  %s %s\n", s.Kind, s.Name)
		}
	}
	return b.String()
}
