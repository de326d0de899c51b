// Package builtins carries the analyzer's static knowledge of the
// JavaScript host environment: global bindings, prototype members of
// primitive values, and documentation for reserved words. The tables in
// builtins_gen.go are produced from builtins.toml; edit the TOML and
// regenerate instead of touching the tables.
package builtins

//go:generate go run github.com/cmmoran/jsls generate

import (
	"strings"

	"github.com/cmmoran/jsls/internal/types"
)

// Keyword documents one reserved word for hover and completion.
type Keyword struct {
	Name string
	Doc  string
}

// Member is one property or method of a builtin value. Ret names its
// type in the table vocabulary: a primitive word, a builtin class name,
// a "[]"-suffixed array, or the contextual words "self" and "elem".
type Member struct {
	Name   string
	Call   bool
	Static bool
	Params []string
	Ret    string
	Doc    string
}

// Global is one binding present in every script scope. Kind is object,
// function, or class; Params and Ret describe the signature of function
// globals and the constructor of class globals.
type Global struct {
	Name    string
	Kind    string
	Params  []string
	Ret     string
	Doc     string
	Members []Member
}

var (
	classes     map[string]*types.ClassType
	globalTypes map[string]types.Type
	globalIdx   map[string]Global
	keywordIdx  map[string]string
	docIdx      map[string]string
)

func init() {
	globalIdx = make(map[string]Global, len(globals))
	docIdx = make(map[string]string)
	for _, g := range globals {
		globalIdx[g.Name] = g
		docIdx[g.Name] = g.Doc
		for _, m := range g.Members {
			docIdx[g.Name+"."+m.Name] = m.Doc
		}
	}
	keywordIdx = make(map[string]string, len(keywords))
	for _, k := range keywords {
		keywordIdx[k.Name] = k.Doc
	}

	// Classes are created empty first so member types can refer to any
	// builtin class, including the one being filled.
	classes = map[string]*types.ClassType{}
	for _, g := range globals {
		if g.Kind == "class" {
			classes[g.Name] = types.NewClass(g.Name)
		}
	}
	for _, g := range globals {
		if g.Kind != "class" {
			continue
		}
		c := classes[g.Name]
		self := types.NewInstance(c)
		for _, m := range g.Members {
			if m.Static {
				c.DefineStatic(m.Name, Resolve(m, self))
			} else {
				c.DefineInstance(m.Name, Resolve(m, self))
			}
		}
		c.SetConstructor(&types.FunctionType{Params: params(g.Params), Return: self})
	}

	globalTypes = make(map[string]types.Type, len(globals))
	for _, g := range globals {
		switch g.Kind {
		case "class":
			globalTypes[g.Name] = classes[g.Name]
		case "function":
			globalTypes[g.Name] = &types.FunctionType{Params: params(g.Params), Return: wordType(g.Ret)}
		default:
			obj := types.NewObject(g.Name)
			for _, m := range g.Members {
				obj.Set(m.Name, Resolve(m, obj))
			}
			globalTypes[g.Name] = obj
		}
	}
}

func params(names []string) []types.Param {
	out := make([]types.Param, len(names))
	for i, n := range names {
		out[i] = types.Param{Name: n, Type: types.Any}
	}
	return out
}

// Globals returns the table of global bindings in declaration order.
func Globals() []Global { return globals }

// Lookup returns the global binding with the given name.
func Lookup(name string) (Global, bool) {
	g, ok := globalIdx[name]
	return g, ok
}

// TypeOf resolves the type of a global binding. Class globals resolve
// to a shared *types.ClassType, so repeated calls agree by identity.
func TypeOf(g Global) types.Type {
	if t, ok := globalTypes[g.Name]; ok {
		return t
	}
	return types.Any
}

// ClassOf returns the class type behind a builtin class global.
func ClassOf(name string) (*types.ClassType, bool) {
	c, ok := classes[name]
	return c, ok
}

// Keywords returns the documented reserved words.
func Keywords() []Keyword { return keywords }

// KeywordDoc returns the documentation of a reserved word.
func KeywordDoc(name string) (string, bool) {
	doc, ok := keywordIdx[name]
	return doc, ok
}

// MemberTable returns the builtin prototype members available on values
// of t: string, number, and array methods. Members intrinsic to object,
// class, and instance types live on the types themselves.
func MemberTable(t types.Type) []Member {
	if _, ok := t.(*types.ArrayType); ok {
		return arrayMembers
	}
	switch t {
	case types.Str:
		return stringMembers
	case types.Num:
		return numberMembers
	}
	return nil
}

// TableMember looks up one builtin prototype member of t by name.
func TableMember(t types.Type, name string) (Member, bool) {
	for _, m := range MemberTable(t) {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Resolve maps a table member to its type. self is the owning value's
// type and grounds the contextual words "self" and "elem".
func Resolve(m Member, self types.Type) types.Type {
	ret := resolveWord(m.Ret, self)
	if !m.Call {
		return ret
	}
	return &types.FunctionType{Params: params(m.Params), Return: ret}
}

func resolveWord(word string, self types.Type) types.Type {
	switch word {
	case "self":
		if self != nil {
			return self
		}
		return types.Any
	case "elem":
		if arr, ok := self.(*types.ArrayType); ok && arr.Elem != nil {
			return arr.Elem
		}
		return types.Any
	}
	return wordType(word)
}

func wordType(word string) types.Type {
	if strings.HasSuffix(word, "[]") {
		return &types.ArrayType{Elem: wordType(strings.TrimSuffix(word, "[]"))}
	}
	switch word {
	case "string":
		return types.Str
	case "number":
		return types.Num
	case "boolean":
		return types.Bool
	case "void":
		return types.Void
	case "null":
		return types.Null
	case "undefined":
		return types.Undefined
	case "never":
		return types.Never
	}
	if c, ok := classes[word]; ok {
		return types.NewInstance(c)
	}
	return types.Any
}

// DocFor returns documentation for a bare global such as "parseInt" or
// a dotted member path such as "console.log".
func DocFor(path string) (string, bool) {
	doc, ok := docIdx[path]
	if !ok || doc == "" {
		return "", false
	}
	return doc, true
}

// MemberDoc returns the documentation of a builtin prototype member of t.
func MemberDoc(t types.Type, name string) (string, bool) {
	m, ok := TableMember(t, name)
	if !ok || m.Doc == "" {
		return "", false
	}
	return m.Doc, true
}
