package provider

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cmmoran/jsls/internal/model"
)

// ranker orders candidates with a stable multi-key sort. Keys in
// priority order: match quality, recency, line locality, symbol-kind
// priority, unknown-type demotion, then the label alphabetically.
// Results are deduplicated by label and capped.
type ranker struct {
	opts   *Options
	tick   int
	recent map[string]int
}

func newRanker(opts *Options) *ranker {
	return &ranker{opts: opts, recent: map[string]int{}}
}

func (r *ranker) markUsed(label string) {
	r.tick++
	r.recent[label] = r.tick
}

func (r *ranker) rank(items []model.CompletionItem, prefix string, cursorLine int) []model.CompletionItem {
	type scored struct {
		item model.CompletionItem
		keys [5]int
	}
	list := make([]scored, 0, len(items))
	for _, it := range items {
		match := matchScore(it.Label, prefix)
		if match < 0 {
			continue
		}
		list = append(list, scored{
			item: it,
			keys: [5]int{
				match,
				r.recencyKey(it.Label),
				r.localityKey(it.DeclLine, cursorLine),
				kindPriority(it),
				boolKey(it.IsUnknown),
			},
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := &list[i], &list[j]
		for k := range a.keys {
			if a.keys[k] != b.keys[k] {
				return a.keys[k] < b.keys[k]
			}
		}
		al, bl := strings.ToLower(a.item.Label), strings.ToLower(b.item.Label)
		if al != bl {
			return al < bl
		}
		return a.item.Label < b.item.Label
	})

	out := make([]model.CompletionItem, 0, min(len(list), r.opts.MaxItems))
	seen := map[string]bool{}
	for _, s := range list {
		if seen[s.item.Label] {
			continue
		}
		seen[s.item.Label] = true
		s.item.SortOrder = len(out)
		out = append(out, s.item)
		if len(out) == r.opts.MaxItems {
			break
		}
	}
	return out
}

// matchScore grades how well a label matches the typed prefix: exact
// case-sensitive first, then case-insensitive, prefix, initials,
// substring; anything else is excluded.
func matchScore(label, prefix string) int {
	if prefix == "" {
		return 2
	}
	if label == prefix {
		return 0
	}
	if strings.EqualFold(label, prefix) {
		return 1
	}
	if strings.HasPrefix(label, prefix) {
		return 2
	}
	lowerLabel, lowerPrefix := strings.ToLower(label), strings.ToLower(prefix)
	if strings.HasPrefix(lowerLabel, lowerPrefix) {
		return 3
	}
	if strings.HasPrefix(initialsOf(label), lowerPrefix) {
		return 4
	}
	if strings.Contains(lowerLabel, lowerPrefix) {
		return 5
	}
	return -1
}

// initialsOf compresses camelCase and snake_case labels to their
// initials: fooBarBaz and foo_bar_baz both become "fbb".
func initialsOf(label string) string {
	var b strings.Builder
	boundary := true
	for _, r := range label {
		switch {
		case r == '_' || r == '$' || r == '#':
			boundary = true
		case boundary:
			b.WriteRune(unicode.ToLower(r))
			boundary = false
		case unicode.IsUpper(r):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func (r *ranker) recencyKey(label string) int {
	if !r.opts.RecencyBoost {
		return 0
	}
	if t, ok := r.recent[label]; ok {
		return r.tick - t
	}
	return 1 << 30
}

func (r *ranker) localityKey(declLine, cursorLine int) int {
	if !r.opts.LocalityBoost {
		return 0
	}
	if declLine < 0 {
		return 2
	}
	delta := declLine - cursorLine
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta < 10:
		return 0
	case delta < 50:
		return 1
	}
	return 2
}

// kindPriority orders declaration forms: parameters and locals first,
// then members, functions, imports, classes, with keywords and
// snippets after real symbols. Private-looking `_` names go last.
func kindPriority(it model.CompletionItem) int {
	if strings.HasPrefix(it.Label, "_") {
		return 9
	}
	switch it.Kind {
	case model.KindParameter:
		return 0
	case model.KindVariable:
		return 1
	case model.KindProperty, model.KindGetter, model.KindSetter, model.KindMethod:
		return 2
	case model.KindFunction:
		return 3
	case model.KindImport:
		return 4
	case model.KindClass:
		return 5
	case model.KindKeyword:
		return 7
	case model.KindSnippet:
		return 8
	}
	return 6
}

func boolKey(b bool) int {
	if b {
		return 1
	}
	return 0
}
