package provider

import (
	"sort"
	"strings"

	"github.com/cmmoran/jsls/internal/builtins"
	"github.com/cmmoran/jsls/internal/lexer"
	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/symbols"
	"github.com/cmmoran/jsls/internal/types"
)

const hoverMemberPreview = 5

// Hover resolves the word at offset against keyword docs, the builtin
// API tables, or the symbol table, and formats a card with a code
// signature line, documentation, and a short member preview for
// aggregate types. Returns nil when nothing resolves.
func (p *Provider) Hover(v View, offset int) *model.HoverInfo {
	word, start, end := wordAt(v.Src, offset)
	if word == "" || hoverSuppressed(v.Tokens, start) {
		return nil
	}
	rng := model.Range{Start: start, End: end}

	if start > 0 && v.Src[start-1] == '.' {
		if recv, _, ok := resolveReceiver(v, start-1); ok {
			return memberHover(v, recv, word, rng)
		}
	}

	if doc, ok := builtins.KeywordDoc(word); ok {
		return card(rng, word, doc, nil)
	}

	if sym := v.Table.ScopeAt(offset).Resolve(word); sym != nil {
		return symbolHover(v, sym, rng)
	}
	return nil
}

// hoverSuppressed hides hover inside strings and comments.
func hoverSuppressed(tokens []lexer.Token, wordStart int) bool {
	i := sort.Search(len(tokens), func(i int) bool { return tokens[i].End > wordStart })
	if i >= len(tokens) || tokens[i].Start > wordStart {
		return false
	}
	k := tokens[i].Kind
	return k == lexer.KindString || k == lexer.KindComment
}

// wordAt expands around offset to the identifier word under the cursor.
func wordAt(src string, offset int) (string, int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	start, end := offset, offset
	for start > 0 && isIdentByte(src[start-1]) {
		start--
	}
	for end < len(src) && isIdentByte(src[end]) {
		end++
	}
	return src[start:end], start, end
}

func memberHover(v View, recv types.Type, word string, rng model.Range) *model.HoverInfo {
	mt := v.Engine.MemberType(recv, word)
	if mt == nil || mt.Kind() == types.KindAny {
		return nil
	}
	doc, _ := receiverDoc(recv, word)
	return card(rng, signature(word, mt), doc, memberPreview(mt))
}

func symbolHover(v View, sym *symbols.Symbol, rng model.Range) *model.HoverInfo {
	t := v.Engine.SymbolType(sym)
	return card(rng, signature(sym.Name, t), sym.Doc, memberPreview(t))
}

// signature renders a code line for a named value: functions get their
// name spliced into the rendered type, everything else reads
// `name: type`.
func signature(name string, t types.Type) string {
	switch tt := t.(type) {
	case nil:
		return name
	case *types.FunctionType:
		s := tt.String()
		if i := strings.IndexByte(s, '('); i >= 0 {
			return s[:i] + " " + name + s[i:]
		}
		return name + ": " + s
	case *types.ClassType:
		return tt.String()
	case *types.ObjectType:
		if tt.Name == "" || tt.Name == name {
			return name + ": object"
		}
		return name + ": " + tt.Name
	}
	if t == types.Any {
		return name
	}
	return name + ": " + t.String()
}

// memberPreview lists up to five member names of an aggregate type.
// Classes preview what their instances will have.
func memberPreview(t types.Type) []string {
	var members []types.Member
	if ct, ok := t.(*types.ClassType); ok {
		members = ct.InstanceMembers()
	} else {
		members = types.MembersOf(t)
	}
	if len(members) == 0 {
		return nil
	}
	names := make([]string, 0, hoverMemberPreview)
	for _, m := range members {
		names = append(names, m.Name)
		if len(names) == hoverMemberPreview {
			break
		}
	}
	return names
}

func card(rng model.Range, code, doc string, members []string) *model.HoverInfo {
	contents := []model.HoverContent{{Kind: model.HoverCode, Value: code}}
	if doc != "" {
		contents = append(contents, model.HoverContent{Kind: model.HoverText, Value: doc})
	}
	if len(members) > 0 {
		contents = append(contents, model.HoverContent{
			Kind:  model.HoverText,
			Value: "Members: " + strings.Join(members, ", "),
		})
	}
	return &model.HoverInfo{Contents: contents, Range: rng}
}
