package provider

import (
	"github.com/cmmoran/jsls/internal/builtins"
	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/symbols"
	"github.com/cmmoran/jsls/internal/types"
)

// Provider produces completions and hover cards over analyzed views.
// The ranker's recency state survives across document revisions.
type Provider struct {
	opts   *Options
	ranker *ranker
}

func New(opts *Options) *Provider {
	if opts == nil {
		opts = NewOptions()
	}
	opts.Normalize()
	return &Provider{opts: opts, ranker: newRanker(opts)}
}

// MarkUsed records that a completion label was accepted, feeding the
// optional recency boost.
func (p *Provider) MarkUsed(label string) { p.ranker.markUsed(label) }

// Completions returns ranked completion items for a cursor offset.
func (p *Provider) Completions(v View, offset int) []model.CompletionItem {
	ctx := Classify(v, offset)

	var items []model.CompletionItem
	switch ctx.Kind {
	case None:
		return nil
	case This:
		items = p.thisCandidates(v, offset, ctx.Receiver)
	case Member:
		items = p.memberCandidates(ctx.Receiver)
	case Bare:
		items = p.bareCandidates(v, offset)
	}
	return p.ranker.rank(items, ctx.Prefix, v.Table.Line(offset))
}

// thisCandidates lists the instance members of the enclosing class,
// including inherited ones, with declaration kinds taken from the
// class's own symbol where available.
func (p *Provider) thisCandidates(v View, offset int, recv types.Type) []model.CompletionItem {
	inst, ok := recv.(*types.InstanceType)
	if !ok || inst.Of == nil {
		return nil
	}
	cls := v.Table.ScopeAt(offset).EnclosingClass()

	var items []model.CompletionItem
	for _, m := range inst.Of.InstanceMembers() {
		item := memberItem(m.Name, m.Type)
		if cls != nil {
			if ms := cls.Member(m.Name); ms != nil && !ms.Static {
				item.Kind = ms.Kind
				item.DeclLine = ms.DeclLine
			}
		}
		items = append(items, item)
	}
	return items
}

// memberCandidates lists the members of a receiver type: intrinsic
// members first, then the builtin prototype layer for non-unions. An
// unknown receiver degrades to the generic array/string hint sets.
func (p *Provider) memberCandidates(recv types.Type) []model.CompletionItem {
	if recv == nil || recv.Kind() == types.KindAny {
		return hintCandidates()
	}

	var items []model.CompletionItem
	seen := map[string]bool{}
	for _, m := range types.MembersOf(recv) {
		item := memberItem(m.Name, m.Type)
		if doc, ok := receiverDoc(recv, m.Name); ok {
			item.Detail = doc
		}
		items = append(items, item)
		seen[m.Name] = true
	}
	if _, isUnion := recv.(*types.UnionType); !isUnion {
		for _, m := range builtins.MemberTable(recv) {
			if seen[m.Name] {
				continue
			}
			item := memberItem(m.Name, builtins.Resolve(m, recv))
			item.Detail = m.Doc
			items = append(items, item)
		}
	}
	return items
}

// hintCandidates merges the generic array and string member tables for
// receivers whose type is unknown.
func hintCandidates() []model.CompletionItem {
	var items []model.CompletionItem
	seen := map[string]bool{}
	add := func(self types.Type, table []builtins.Member) {
		for _, m := range table {
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			item := memberItem(m.Name, builtins.Resolve(m, self))
			item.Detail = m.Doc
			items = append(items, item)
		}
	}
	add(&types.ArrayType{}, builtins.MemberTable(&types.ArrayType{}))
	add(types.Str, builtins.MemberTable(types.Str))
	return items
}

// receiverDoc finds builtin documentation for a member of recv.
func receiverDoc(recv types.Type, name string) (string, bool) {
	switch tt := recv.(type) {
	case *types.ObjectType:
		if tt.Name != "" {
			return builtins.DocFor(tt.Name + "." + name)
		}
	case *types.ClassType:
		return builtins.DocFor(tt.Name + "." + name)
	case *types.InstanceType:
		if tt.Of != nil {
			return builtins.DocFor(tt.Of.Name + "." + name)
		}
	}
	return builtins.MemberDoc(recv, name)
}

func memberItem(name string, t types.Type) model.CompletionItem {
	kind := model.KindProperty
	if _, ok := t.(*types.FunctionType); ok {
		kind = model.KindMethod
	}
	return model.CompletionItem{
		Label:      name,
		InsertText: name,
		Kind:       kind,
		TypeInfo:   typeInfo(t),
		IsUnknown:  isUnknown(t),
		DeclLine:   -1,
	}
}

// bareCandidates lists every symbol visible at the offset plus the
// keyword and snippet tables.
func (p *Provider) bareCandidates(v View, offset int) []model.CompletionItem {
	var items []model.CompletionItem
	for _, sym := range v.Table.ScopeAt(offset).Visible() {
		items = append(items, symbolItem(v, sym))
	}
	for _, kw := range builtins.Keywords() {
		items = append(items, model.CompletionItem{
			Label:      kw.Name,
			InsertText: kw.Name,
			Kind:       model.KindKeyword,
			Detail:     kw.Doc,
			DeclLine:   -1,
		})
	}
	items = append(items, snippets...)
	return items
}

func symbolItem(v View, sym *symbols.Symbol) model.CompletionItem {
	t := v.Engine.SymbolType(sym)
	return model.CompletionItem{
		Label:      sym.Name,
		InsertText: sym.Name,
		Kind:       sym.Kind,
		TypeInfo:   typeInfo(t),
		Detail:     sym.Doc,
		IsUnknown:  isUnknown(t),
		DeclLine:   sym.DeclLine,
	}
}

func typeInfo(t types.Type) string {
	if t == nil || t == types.Any {
		return ""
	}
	return t.String()
}

func isUnknown(t types.Type) bool {
	return t == nil || t.Kind() == types.KindAny
}

// snippets are template completions offered alongside bare symbols.
var snippets = []model.CompletionItem{
	{Label: "log", InsertText: "console.log()", Kind: model.KindSnippet, Detail: "Log to the console", DeclLine: -1},
	{Label: "fun", InsertText: "function name() {\n}", Kind: model.KindSnippet, Detail: "Function statement", DeclLine: -1},
	{Label: "fori", InsertText: "for (let i = 0; i < length; i++) {\n}", Kind: model.KindSnippet, Detail: "Indexed for loop", DeclLine: -1},
	{Label: "forof", InsertText: "for (const item of items) {\n}", Kind: model.KindSnippet, Detail: "for-of loop", DeclLine: -1},
	{Label: "afun", InsertText: "async function name() {\n}", Kind: model.KindSnippet, Detail: "Async function statement", DeclLine: -1},
}
