// Package provider turns one analyzed document revision into editor
// intelligence: ranked completions and hover cards. Providers never
// mutate the analysis they are handed.
package provider

import (
	"sort"

	"github.com/cmmoran/jsls/internal/infer"
	"github.com/cmmoran/jsls/internal/lexer"
	"github.com/cmmoran/jsls/internal/symbols"
	"github.com/cmmoran/jsls/internal/types"
)

// View is one analyzed document revision as the service hands it to
// the providers.
type View struct {
	Src    string
	Tokens []lexer.Token
	Table  *symbols.Table
	Engine *infer.Engine
}

// ContextKind classifies the syntax around a completion request.
type ContextKind int

const (
	// None suppresses completion entirely (inside a string or comment).
	None ContextKind = iota
	// Bare completes visible symbols, keywords and snippets.
	Bare
	// Member completes the members of a resolved receiver type.
	Member
	// This completes instance members of the enclosing class.
	This
)

// Context is the classified surroundings of a cursor offset.
type Context struct {
	Kind     ContextKind
	Prefix   string     // identifier fragment already typed
	Start    int        // offset where the prefix begins
	Receiver types.Type // resolved receiver for Member contexts, may be nil
}

// Classify inspects the text left of offset and decides what kind of
// completion applies there. Priority order: suppressed contexts, then
// `this.`, then member chains, then bare identifiers.
func Classify(v View, offset int) Context {
	if offset < 0 {
		offset = 0
	}
	if offset > len(v.Src) {
		offset = len(v.Src)
	}
	if insideLiteral(v.Tokens, offset) {
		return Context{Kind: None, Start: offset}
	}

	start := offset
	for start > 0 && isIdentByte(v.Src[start-1]) {
		start--
	}
	prefix := v.Src[start:offset]

	if start > 0 && v.Src[start-1] == '.' {
		recv, anchor, ok := resolveReceiver(v, start-1)
		if !ok {
			return Context{Kind: None, Start: start}
		}
		if anchor == anchorThis {
			return Context{Kind: This, Prefix: prefix, Start: start, Receiver: recv}
		}
		return Context{Kind: Member, Prefix: prefix, Start: start, Receiver: recv}
	}

	if prefix != "" && prefix[0] >= '0' && prefix[0] <= '9' {
		// mid-number; digits are not an identifier prefix
		return Context{Kind: None, Start: start}
	}
	return Context{Kind: Bare, Prefix: prefix, Start: start}
}

// insideLiteral reports whether the character left of offset sits in a
// string or comment token.
func insideLiteral(tokens []lexer.Token, offset int) bool {
	if offset <= 0 {
		return false
	}
	at := offset - 1
	i := sort.Search(len(tokens), func(i int) bool { return tokens[i].End > at })
	if i >= len(tokens) || tokens[i].Start > at {
		return false
	}
	k := tokens[i].Kind
	return k == lexer.KindString || k == lexer.KindComment
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c == '#' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

type anchorKind int

const (
	anchorExpr anchorKind = iota
	anchorThis
)

// segment is one step of a textual member chain, optionally followed by
// a call and/or an index suffix.
type segment struct {
	name   string
	str    bool // string-literal anchor, first segment only
	call   bool
	index  bool
	digits bool
}

// resolveReceiver types the chain of text ending at the dot at dot.
// Chains may contain calls and index accesses; anything unresolvable
// degrades to any rather than failing, but text that is not a chain at
// all (for example `1.`) reports !ok.
func resolveReceiver(v View, dot int) (types.Type, anchorKind, bool) {
	segs, ok := chainBefore(v.Src, dot)
	if !ok || len(segs) == 0 {
		return nil, anchorExpr, false
	}

	first := segs[0]
	anchor := anchorExpr
	var t types.Type
	switch {
	case first.str:
		t = types.Str
	case first.digits:
		t = types.Num
	case first.name == "this":
		if len(segs) == 1 && !first.call && !first.index {
			anchor = anchorThis
		}
		t = thisReceiver(v, dot)
	case first.name == "super":
		t = types.Any
	case first.name == "":
		// a bare (...) or [...] group anchors the chain
		if first.index {
			t = &types.ArrayType{}
		} else {
			t = types.Any
		}
	default:
		if sym := v.Table.ScopeAt(dot).Resolve(first.name); sym != nil {
			t = v.Engine.SymbolType(sym)
		} else {
			t = types.Any
		}
	}
	t = applySuffixes(v, t, first, dot)

	for _, s := range segs[1:] {
		t = v.Engine.MemberType(t, s.name)
		t = applySuffixes(v, t, s, dot)
	}
	return t, anchor, true
}

func applySuffixes(v View, t types.Type, s segment, at int) types.Type {
	if s.call {
		t = v.Engine.CallResult(t)
	}
	if s.index {
		t = indexed(v, t, s.name, at)
	}
	return t
}

// indexed types an `xs[...]` step, falling back to the plural-name
// element hint when the array's element type is unknown.
func indexed(v View, t types.Type, name string, at int) types.Type {
	switch tt := t.(type) {
	case *types.ArrayType:
		if tt.Elem != nil && tt.Elem != types.Any {
			return tt.Elem
		}
		if name != "" {
			if hint := v.Engine.ElementHint(name, at); hint != nil {
				return hint
			}
		}
		return types.Any
	}
	if t == types.Str {
		return types.Str
	}
	return types.Any
}

// thisReceiver resolves `this` to an instance of the enclosing class.
func thisReceiver(v View, off int) types.Type {
	cls := v.Table.ScopeAt(off).EnclosingClass()
	if cls == nil {
		return nil
	}
	if ct, ok := v.Engine.SymbolType(cls).(*types.ClassType); ok {
		return types.NewInstance(ct)
	}
	return nil
}

// chainBefore walks backward from the dot at dot and extracts the
// member chain as text segments. Balanced () and [] groups are skipped
// wholesale; their contents never influence the receiver type.
func chainBefore(src string, dot int) ([]segment, bool) {
	var rev []segment
	pos := dot
	for {
		var seg segment
		for pos > 0 {
			switch src[pos-1] {
			case ')':
				open := matchBack(src, pos-1, '(', ')')
				if open < 0 {
					return nil, false
				}
				seg.call = true
				pos = open
				continue
			case ']':
				open := matchBack(src, pos-1, '[', ']')
				if open < 0 {
					return nil, false
				}
				seg.index = true
				pos = open
				continue
			}
			break
		}

		if pos > 0 && (src[pos-1] == '\'' || src[pos-1] == '"') {
			quote := src[pos-1]
			open := pos - 2
			for open >= 0 && src[open] != quote && src[open] != '\n' {
				open--
			}
			if open < 0 || src[open] != quote {
				return nil, false
			}
			seg.str = true
			rev = append(rev, seg)
			break
		}

		end := pos
		for pos > 0 && isIdentByte(src[pos-1]) {
			pos--
		}
		seg.name = src[pos:end]
		seg.digits = seg.name != "" && allDigits(seg.name)
		rev = append(rev, seg)

		if seg.name == "" {
			if !seg.call && !seg.index {
				return nil, false
			}
			break
		}
		if pos > 0 && src[pos-1] == '.' {
			pos--
			continue
		}
		break
	}

	out := make([]segment, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}
	return out, true
}

// matchBack finds the opening bracket for the closer at closeAt,
// scanning left. Quotes inside the group are not tracked; chains are
// local enough that this stays accurate in practice.
func matchBack(src string, closeAt int, openB, closeB byte) int {
	depth := 1
	for i := closeAt - 1; i >= 0; i-- {
		switch src[i] {
		case closeB:
			depth++
		case openB:
			depth--
			if depth == 0 {
				return i
			}
		case '\n':
			return -1
		}
	}
	return -1
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
