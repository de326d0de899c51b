package infer

import (
	"github.com/cmmoran/jsls/internal/parser"
	"github.com/cmmoran/jsls/internal/symbols"
	"github.com/cmmoran/jsls/internal/types"
)

// ClassBuilder turns class declarations into class types. Build caches
// per AST node and registers the still-empty type before descending
// into the body, so a class whose members mention the class itself
// terminates with a shared identity instead of recursing.
type ClassBuilder struct {
	engine *Engine
	built  map[*parser.ClassDeclaration]*types.ClassType
}

func newClassBuilder(e *Engine) *ClassBuilder {
	return &ClassBuilder{engine: e, built: map[*parser.ClassDeclaration]*types.ClassType{}}
}

// Build returns the class type for a declaration, constructing it on
// first use from the symbol table's member list, which includes the
// instance members synthesized from constructor `this.x` assignments.
func (b *ClassBuilder) Build(node *parser.ClassDeclaration) *types.ClassType {
	if ct, ok := b.built[node]; ok {
		return ct
	}
	name := "(anonymous)"
	if node.Name != nil {
		name = node.Name.Name
	}
	ct := types.NewClass(name)
	b.built[node] = ct

	if node.SuperClass != nil {
		if super, ok := b.engine.exprType(node.SuperClass).(*types.ClassType); ok && super != ct {
			ct.Super = super
		}
	}

	sym := b.classSymbol(node)
	if sym == nil {
		return ct
	}
	for _, m := range sym.Members {
		mt := b.engine.SymbolType(m)
		if m.Name == "constructor" {
			if ft, ok := mt.(*types.FunctionType); ok {
				ct.SetConstructor(ft)
			}
			continue
		}
		if m.Static {
			ct.DefineStatic(m.Name, mt)
		} else {
			ct.DefineInstance(m.Name, mt)
		}
	}
	return ct
}

// classSymbol recovers the symbol carrying the class's member list via
// the class body's scope.
func (b *ClassBuilder) classSymbol(node *parser.ClassDeclaration) *symbols.Symbol {
	sc := b.engine.table.ScopeAt(node.Pos())
	for s := sc; s != nil; s = s.Parent {
		if s.Type == symbols.ClassScope && s.Owner != nil && s.Owner.Value == parser.Node(node) {
			return s.Owner
		}
	}
	return nil
}
