// Package symbols builds the lexical scope tree of a parsed program and
// tracks every declared name: variables, functions, classes and their
// members, parameters, and imports. Types are not computed here; the
// inference engine annotates the symbols afterwards.
package symbols

import (
	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/parser"
	"github.com/cmmoran/jsls/internal/types"
)

// ScopeType classifies where a scope came from.
type ScopeType int

const (
	GlobalScope ScopeType = iota
	FunctionScope
	BlockScope
	ClassScope
)

func (t ScopeType) String() string {
	switch t {
	case GlobalScope:
		return "global"
	case FunctionScope:
		return "function"
	case BlockScope:
		return "block"
	case ClassScope:
		return "class"
	}
	return "unknown"
}

// Symbol is one declared name. Decl points at the declaring node (nil
// for builtins) and Value at the expression that gives the symbol its
// type: a variable initializer, a function node, or the right-hand side
// of a this-assignment.
type Symbol struct {
	Name     string
	Kind     model.SymbolKind
	Type     types.Type
	Decl     parser.Node
	Value    parser.Node
	DeclLine int // zero-based; -1 for builtins
	Static   bool
	Builtin  bool
	Doc      string
	Members  []*Symbol // class symbols: declared and synthesized members
}

// Member returns the class member with the given name, or nil.
func (s *Symbol) Member(name string) *Symbol {
	for _, m := range s.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Scope is one node of the lexical scope tree. Start/End are byte
// offsets into the source; children are nested, never overlapping.
type Scope struct {
	Type     ScopeType
	Parent   *Scope
	Children []*Scope
	Start    int
	End      int
	Owner    *Symbol // the function or class symbol that opened the scope

	symbols map[string]*Symbol
	order   []*Symbol
}

func newScope(t ScopeType, parent *Scope, start, end int) *Scope {
	sc := &Scope{Type: t, Parent: parent, Start: start, End: end, symbols: map[string]*Symbol{}}
	if parent != nil {
		parent.Children = append(parent.Children, sc)
	}
	return sc
}

// Define records a symbol in this scope. Redeclaring a name replaces the
// earlier symbol but keeps its position in declaration order.
func (s *Scope) Define(sym *Symbol) *Symbol {
	if old, ok := s.symbols[sym.Name]; ok {
		for i, o := range s.order {
			if o == old {
				s.order[i] = sym
				break
			}
		}
		s.symbols[sym.Name] = sym
		return sym
	}
	s.symbols[sym.Name] = sym
	s.order = append(s.order, sym)
	return sym
}

// ResolveLocal looks a name up in this scope only.
func (s *Scope) ResolveLocal(name string) *Symbol {
	return s.symbols[name]
}

// Resolve walks the scope chain from here outward.
func (s *Scope) Resolve(name string) *Symbol {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.symbols[name]; ok {
			return sym
		}
	}
	return nil
}

// Symbols returns this scope's symbols in declaration order. The caller
// must not mutate the returned slice.
func (s *Scope) Symbols() []*Symbol { return s.order }

// Visible collects every symbol reachable from this scope, innermost
// first; shadowed outer names are dropped.
func (s *Scope) Visible() []*Symbol {
	var out []*Symbol
	seen := map[string]bool{}
	for sc := s; sc != nil; sc = sc.Parent {
		for _, sym := range sc.order {
			if seen[sym.Name] {
				continue
			}
			seen[sym.Name] = true
			out = append(out, sym)
		}
	}
	return out
}

// EnclosingClass returns the class symbol whose body contains this
// scope, or nil outside any class. Arrow functions and methods between
// the scope and the class do not break the chain.
func (s *Scope) EnclosingClass() *Symbol {
	for sc := s; sc != nil; sc = sc.Parent {
		if sc.Type == ClassScope && sc.Owner != nil {
			return sc.Owner
		}
	}
	return nil
}

// hoistTarget is where a var declaration lands: the nearest enclosing
// function scope, or the global scope.
func (s *Scope) hoistTarget() *Scope {
	sc := s
	for sc.Type != GlobalScope && sc.Type != FunctionScope {
		sc = sc.Parent
	}
	return sc
}
