// Package infer derives best-effort types for the expressions and
// symbols of a bound program. The engine never reports an error:
// anything it cannot see through types as any, and every query
// degrades gracefully on malformed or partial input.
package infer

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/parser"
	"github.com/cmmoran/jsls/internal/symbols"
	"github.com/cmmoran/jsls/internal/types"
)

// Engine computes types over a symbol table. Inferred symbol types are
// memoized on the Symbol, so repeated queries after Annotate are map
// lookups. An Engine is bound to one program revision and is not safe
// for concurrent use.
type Engine struct {
	prog      *parser.Program
	table     *symbols.Table
	classes   *ClassBuilder
	resolving map[*symbols.Symbol]bool
}

// New builds an engine over one parsed and bound revision.
func New(prog *parser.Program, table *symbols.Table) *Engine {
	e := &Engine{
		prog:      prog,
		table:     table,
		resolving: map[*symbols.Symbol]bool{},
	}
	e.classes = newClassBuilder(e)
	return e
}

// Table returns the symbol table the engine is bound to.
func (e *Engine) Table() *symbols.Table { return e.table }

// Annotate types every user-declared symbol in the table, including
// loop variables whose type comes from the iterated expression.
// Builtins keep their seeded types.
func (e *Engine) Annotate() {
	e.annotateScope(e.table.Global)
	if e.prog != nil {
		parser.Walk(e.prog, func(n parser.Node) bool {
			switch f := n.(type) {
			case *parser.ForOfStatement:
				e.typeLoopVars(f.Left, e.elemType(f.Right))
			case *parser.ForInStatement:
				// for-in iterates property names
				e.typeLoopVars(f.Left, types.Str)
			}
			return true
		})
	}
}

func (e *Engine) annotateScope(sc *symbols.Scope) {
	for _, sym := range sc.Symbols() {
		if !sym.Builtin {
			e.SymbolType(sym)
		}
	}
	for _, c := range sc.Children {
		e.annotateScope(c)
	}
}

// SymbolType returns the symbol's type, inferring and memoizing it on
// first use. Cycles between declarations resolve to any.
func (e *Engine) SymbolType(sym *symbols.Symbol) types.Type {
	if sym == nil {
		return types.Any
	}
	if sym.Type != nil {
		return sym.Type
	}
	if cd, ok := sym.Value.(*parser.ClassDeclaration); ok && sym.Kind == model.KindClass {
		// the builder's node cache keeps self-referential classes from
		// recursing, so the cycle guard below must not see them
		t := e.classes.Build(cd)
		sym.Type = t
		return t
	}
	if e.resolving[sym] {
		return types.Any
	}
	e.resolving[sym] = true
	t := e.declaredType(sym)
	delete(e.resolving, sym)
	if t == nil {
		t = types.Any
	}
	sym.Type = t
	return t
}

func (e *Engine) declaredType(sym *symbols.Symbol) types.Type {
	switch sym.Kind {
	case model.KindFunction, model.KindMethod, model.KindSetter:
		switch fn := sym.Value.(type) {
		case *parser.FunctionDeclaration:
			return e.functionType(fn.Params, fn.Body, fn.IsAsync, fn.IsGenerator)
		case *parser.FunctionExpression:
			return e.functionType(fn.Params, fn.Body, fn.IsAsync, fn.IsGenerator)
		}
	case model.KindGetter:
		// a getter reads as a value of its return type
		if fn, ok := sym.Value.(*parser.FunctionExpression); ok {
			return e.returnType(fn.Body)
		}
	case model.KindParameter:
		if def, ok := sym.Value.(parser.Expr); ok && def != nil {
			return e.exprType(def)
		}
	case model.KindVariable, model.KindProperty:
		if v, ok := sym.Value.(parser.Expr); ok && v != nil {
			return e.exprType(v)
		}
	}
	return types.Any
}

// typeLoopVars assigns elem to the names bound by a for-of/for-in head.
// A head that assigns to an existing variable instead of declaring one
// is left alone.
func (e *Engine) typeLoopVars(left parser.Node, elem types.Type) {
	decl, ok := left.(*parser.VariableDeclaration)
	if !ok {
		return
	}
	for _, d := range decl.Decls {
		for _, id := range d.TargetNames() {
			sym := e.table.ScopeAt(id.Pos()).Resolve(id.Name)
			if sym != nil && !sym.Builtin {
				sym.Type = elem
			}
		}
	}
}

// elemType types the elements produced by iterating iter.
func (e *Engine) elemType(iter parser.Expr) types.Type {
	t := e.exprType(iter)
	switch tt := t.(type) {
	case *types.ArrayType:
		if tt.Elem != nil && tt.Elem != types.Any {
			return tt.Elem
		}
		if hint := e.elemHint(iter); hint != nil {
			return hint
		}
		return types.Any
	}
	if t == types.Str {
		return types.Str
	}
	if hint := e.elemHint(iter); hint != nil {
		return hint
	}
	return types.Any
}

func (e *Engine) elemHint(iter parser.Expr) types.Type {
	id, ok := iter.(*parser.Identifier)
	if !ok || id.Name == "" {
		return nil
	}
	return e.ElementHint(id.Name, id.Pos())
}

// ElementHint guesses an element type from a plural receiver name: when
// the singular form names a class visible at pos, `users` is taken to
// hold User instances. Returns nil when no class matches.
func (e *Engine) ElementHint(name string, pos int) types.Type {
	singular := inflection.Singular(name)
	if singular == "" || singular == name {
		return nil
	}
	class := strings.ToUpper(singular[:1]) + singular[1:]
	sym := e.table.ScopeAt(pos).Resolve(class)
	if sym == nil || sym.Kind != model.KindClass {
		return nil
	}
	if ct, ok := e.SymbolType(sym).(*types.ClassType); ok {
		return types.NewInstance(ct)
	}
	return nil
}

// functionType builds the type of a function from its parameters and a
// scan of the return statements in its body.
func (e *Engine) functionType(params []*parser.Parameter, body *parser.BlockStatement, isAsync, isGenerator bool) *types.FunctionType {
	ft := &types.FunctionType{IsAsync: isAsync, IsGenerator: isGenerator}
	for _, p := range params {
		ft.Params = append(ft.Params, types.Param{Name: paramLabel(p), Type: e.paramType(p)})
	}
	ft.Return = e.returnType(body)
	return ft
}

func paramLabel(p *parser.Parameter) string {
	name := "arg"
	if p.Name != nil {
		name = p.Name.Name
	} else if bound := p.BoundNames(); len(bound) > 0 {
		name = bound[0].Name
	}
	if p.Rest {
		return "..." + name
	}
	return name
}

func (e *Engine) paramType(p *parser.Parameter) types.Type {
	if p.Default != nil {
		return e.exprType(p.Default)
	}
	return types.Any
}

// returnType scans body for return statements, skipping nested
// functions and classes. No value returns means void; returns that
// disagree on a single type mean any.
func (e *Engine) returnType(body *parser.BlockStatement) types.Type {
	if body == nil {
		return types.Void
	}
	var args []parser.Expr
	bare := false
	parser.Walk(body, func(n parser.Node) bool {
		switch r := n.(type) {
		case *parser.FunctionDeclaration, *parser.FunctionExpression, *parser.ArrowFunction, *parser.ClassDeclaration:
			return false
		case *parser.ReturnStatement:
			if r.Arg == nil {
				bare = true
			} else {
				args = append(args, r.Arg)
			}
		}
		return true
	})
	if len(args) == 0 {
		return types.Void
	}
	if bare {
		return types.Any
	}
	first := e.exprType(args[0])
	for _, a := range args[1:] {
		if !types.Equal(first, e.exprType(a)) {
			return types.Any
		}
	}
	return first
}

func orAny(t types.Type) types.Type {
	if t == nil {
		return types.Any
	}
	return t
}
