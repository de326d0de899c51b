package symbols

import (
	"sort"

	"github.com/cmmoran/jsls/internal/builtins"
	"github.com/cmmoran/jsls/internal/model"
	"github.com/cmmoran/jsls/internal/parser"
	"github.com/cmmoran/jsls/internal/types"
)

// Table is the symbol table of one document revision.
type Table struct {
	Global *Scope

	src        string
	lineStarts []int
}

// Build constructs the scope tree for a parsed program. Builtin globals
// are seeded into the global scope first, so user declarations of the
// same name shadow them.
func Build(prog *parser.Program, src string) *Table {
	t := &Table{src: src, lineStarts: lineStarts(src)}
	t.Global = newScope(GlobalScope, nil, 0, len(src))

	for _, g := range builtins.Globals() {
		kind := model.KindVariable
		switch g.Kind {
		case "function":
			kind = model.KindFunction
		case "class":
			kind = model.KindClass
		}
		t.Global.Define(&Symbol{
			Name:     g.Name,
			Kind:     kind,
			Type:     builtins.TypeOf(g),
			DeclLine: -1,
			Builtin:  true,
			Doc:      g.Doc,
		})
	}

	if prog != nil {
		t.visitStmts(prog.Body, t.Global)
	}
	return t
}

func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Line converts a byte offset into a zero-based line number.
func (t *Table) Line(off int) int {
	i := sort.Search(len(t.lineStarts), func(i int) bool { return t.lineStarts[i] > off })
	return i - 1
}

// ScopeAt returns the innermost scope containing the offset. On a
// boundary shared by siblings the later scope wins.
func (t *Table) ScopeAt(off int) *Scope {
	sc := t.Global
	for {
		var next *Scope
		for _, c := range sc.Children {
			if off >= c.Start && off <= c.End {
				next = c
			}
		}
		if next == nil {
			return sc
		}
		sc = next
	}
}

// DocumentSymbols flattens the table into outline entries ordered by
// position. Parameters and builtins are omitted; class members appear
// with dotted names.
func (t *Table) DocumentSymbols() []model.DocumentSymbol {
	var out []model.DocumentSymbol
	add := func(name string, sym *Symbol) {
		out = append(out, model.DocumentSymbol{
			Name:   name,
			Kind:   sym.Kind,
			Detail: symbolDetail(sym),
			Range:  model.Range{Start: sym.Decl.Pos(), End: sym.Decl.End()},
		})
	}
	var walk func(sc *Scope)
	walk = func(sc *Scope) {
		for _, sym := range sc.order {
			if sym.Builtin || sym.Decl == nil || sym.Kind == model.KindParameter {
				continue
			}
			add(sym.Name, sym)
			if sym.Kind == model.KindClass {
				for _, m := range sym.Members {
					if m.Decl != nil {
						add(sym.Name+"."+m.Name, m)
					}
				}
			}
		}
		for _, c := range sc.Children {
			walk(c)
		}
	}
	walk(t.Global)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Range.Start < out[j].Range.Start })
	return out
}

func symbolDetail(sym *Symbol) string {
	if sym.Type == nil || sym.Type == types.Any {
		return ""
	}
	return sym.Type.String()
}

func (t *Table) define(sc *Scope, sym *Symbol) *Symbol {
	if sym.Decl != nil {
		sym.DeclLine = t.Line(sym.Decl.Pos())
	}
	return sc.Define(sym)
}

func (t *Table) visitStmts(stmts []parser.Stmt, sc *Scope) {
	for _, s := range stmts {
		t.visitStmt(s, sc)
	}
}

func (t *Table) visitStmt(s parser.Stmt, sc *Scope) {
	switch st := s.(type) {
	case *parser.VariableDeclaration:
		t.visitVarDecl(st, sc)
	case *parser.FunctionDeclaration:
		t.visitFuncDecl(st, sc)
	case *parser.ClassDeclaration:
		t.visitClass(st, sc)
	case *parser.IfStatement:
		t.visitExpr(st.Test, sc)
		t.visitStmt(st.Consequent, sc)
		if st.Alternate != nil {
			t.visitStmt(st.Alternate, sc)
		}
	case *parser.ForStatement:
		head := newScope(BlockScope, sc, st.Pos(), st.End())
		switch init := st.Init.(type) {
		case *parser.VariableDeclaration:
			t.visitVarDecl(init, head)
		case parser.Expr:
			t.visitExpr(init, head)
		}
		t.visitExpr(st.Test, head)
		t.visitExpr(st.Update, head)
		t.visitStmt(st.Body, head)
	case *parser.ForInStatement:
		t.visitForHead(st.Left, st.Right, st.Body, sc, st.Pos(), st.End())
	case *parser.ForOfStatement:
		t.visitForHead(st.Left, st.Right, st.Body, sc, st.Pos(), st.End())
	case *parser.WhileStatement:
		t.visitExpr(st.Test, sc)
		t.visitStmt(st.Body, sc)
	case *parser.DoWhileStatement:
		t.visitStmt(st.Body, sc)
		t.visitExpr(st.Test, sc)
	case *parser.SwitchStatement:
		t.visitExpr(st.Disc, sc)
		body := newScope(BlockScope, sc, st.Pos(), st.End())
		for _, c := range st.Cases {
			t.visitExpr(c.Test, body)
			t.visitStmts(c.Body, body)
		}
	case *parser.TryStatement:
		if st.Block != nil {
			t.visitStmt(st.Block, sc)
		}
		if h := st.Handler; h != nil {
			cs := newScope(BlockScope, sc, h.Pos(), h.End())
			if h.Param != nil {
				t.define(cs, &Symbol{Name: h.Param.Name, Kind: model.KindVariable, Decl: h.Param})
			}
			if h.Body != nil {
				t.visitStmts(h.Body.Body, cs)
			}
		}
		if st.Finalizer != nil {
			t.visitStmt(st.Finalizer, sc)
		}
	case *parser.ThrowStatement:
		t.visitExpr(st.Arg, sc)
	case *parser.ReturnStatement:
		t.visitExpr(st.Arg, sc)
	case *parser.BlockStatement:
		bs := newScope(BlockScope, sc, st.Pos(), st.End())
		t.visitStmts(st.Body, bs)
	case *parser.ExpressionStatement:
		t.visitExpr(st.X, sc)
	case *parser.ImportDeclaration:
		t.visitImport(st, sc)
	case *parser.ExportDeclaration:
		if st.Decl != nil {
			t.visitStmt(st.Decl, sc)
		}
	}
}

// visitForHead covers for-in and for-of, which share their scope shape:
// the loop binding lives in a scope spanning the whole statement.
func (t *Table) visitForHead(left parser.Node, right parser.Expr, body parser.Stmt, sc *Scope, start, end int) {
	head := newScope(BlockScope, sc, start, end)
	switch l := left.(type) {
	case *parser.VariableDeclaration:
		t.visitVarDecl(l, head)
	case parser.Expr:
		t.visitExpr(l, head)
	}
	t.visitExpr(right, head)
	t.visitStmt(body, head)
}

func (t *Table) visitVarDecl(d *parser.VariableDeclaration, sc *Scope) {
	target := sc
	if d.DeclKind == "var" {
		target = sc.hoistTarget()
	}
	for _, decl := range d.Decls {
		for _, id := range decl.TargetNames() {
			t.define(target, &Symbol{
				Name:  id.Name,
				Kind:  model.KindVariable,
				Decl:  id,
				Value: decl.Init,
			})
		}
		t.visitExpr(decl.Init, sc)
	}
}

func (t *Table) visitFuncDecl(fn *parser.FunctionDeclaration, sc *Scope) {
	var sym *Symbol
	if fn.Name != nil {
		sym = t.define(sc, &Symbol{
			Name:  fn.Name.Name,
			Kind:  model.KindFunction,
			Decl:  fn.Name,
			Value: fn,
		})
	}
	fs := newScope(FunctionScope, sc, fn.Pos(), fn.End())
	fs.Owner = sym
	t.defineParams(fn.Params, fs)
	if fn.Body != nil {
		t.visitStmts(fn.Body.Body, fs)
	}
}

func (t *Table) defineParams(params []*parser.Parameter, fs *Scope) {
	for _, p := range params {
		for _, id := range p.BoundNames() {
			t.define(fs, &Symbol{
				Name:  id.Name,
				Kind:  model.KindParameter,
				Decl:  id,
				Value: p.Default,
			})
		}
		t.visitExpr(p.Default, fs)
	}
}

// visitExpr walks an expression subtree, opening scopes for any function
// or class expressions it contains.
func (t *Table) visitExpr(e parser.Expr, sc *Scope) {
	if e == nil {
		return
	}
	parser.Walk(e, func(n parser.Node) bool {
		switch nn := n.(type) {
		case *parser.FunctionExpression:
			t.visitFuncExpr(nn, sc)
			return false
		case *parser.ArrowFunction:
			t.visitArrow(nn, sc)
			return false
		case *parser.ClassDeclaration:
			t.visitClassExpr(nn, sc)
			return false
		}
		return true
	})
}

func (t *Table) visitFuncExpr(fn *parser.FunctionExpression, sc *Scope) {
	fs := newScope(FunctionScope, sc, fn.Pos(), fn.End())
	if fn.Name != nil {
		// A named function expression binds its own name inside itself only.
		fs.Owner = t.define(fs, &Symbol{
			Name:  fn.Name.Name,
			Kind:  model.KindFunction,
			Decl:  fn.Name,
			Value: fn,
		})
	}
	t.defineParams(fn.Params, fs)
	if fn.Body != nil {
		t.visitStmts(fn.Body.Body, fs)
	}
}

func (t *Table) visitArrow(fn *parser.ArrowFunction, sc *Scope) {
	fs := newScope(FunctionScope, sc, fn.Pos(), fn.End())
	t.defineParams(fn.Params, fs)
	switch body := fn.Body.(type) {
	case *parser.BlockStatement:
		t.visitStmts(body.Body, fs)
	case parser.Expr:
		t.visitExpr(body, fs)
	}
}

func (t *Table) visitClass(c *parser.ClassDeclaration, sc *Scope) {
	t.classScopes(c, sc, false)
}

// visitClassExpr scopes a class in expression position. Like a named
// function expression, the name binds inside the class body only.
func (t *Table) visitClassExpr(c *parser.ClassDeclaration, sc *Scope) {
	t.classScopes(c, sc, true)
}

func (t *Table) classScopes(c *parser.ClassDeclaration, sc *Scope, exprForm bool) {
	sym := &Symbol{Kind: model.KindClass, Decl: c, Value: c, DeclLine: t.Line(c.Pos())}
	if c.Name != nil {
		sym.Name = c.Name.Name
		sym.Decl = c.Name
	}
	t.visitExpr(c.SuperClass, sc)

	cs := newScope(ClassScope, sc, c.Pos(), c.End())
	cs.Owner = sym
	if c.Name != nil {
		if exprForm {
			t.define(cs, sym)
		} else {
			t.define(sc, sym)
		}
	}

	// Phase one: declared members, in source order.
	memberSyms := map[parser.ClassElement]*Symbol{}
	for _, el := range c.Body {
		switch m := el.(type) {
		case *parser.MethodDefinition:
			if m.Key == nil || m.Key.Name == "" {
				continue
			}
			kind := model.KindMethod
			switch m.MethodKind {
			case "get":
				kind = model.KindGetter
			case "set":
				kind = model.KindSetter
			}
			ms := &Symbol{
				Name:     m.Key.Name,
				Kind:     kind,
				Decl:     m.Key,
				Value:    m.Value,
				DeclLine: t.Line(m.Key.Pos()),
				Static:   m.Static,
			}
			if sym.Member(ms.Name) == nil {
				sym.Members = append(sym.Members, ms)
			}
			memberSyms[el] = ms
		case *parser.PropertyDefinition:
			if m.Key == nil || m.Key.Name == "" {
				continue
			}
			ps := &Symbol{
				Name:     m.Key.Name,
				Kind:     model.KindProperty,
				Decl:     m.Key,
				Value:    m.Value,
				DeclLine: t.Line(m.Key.Pos()),
				Static:   m.Static,
			}
			if sym.Member(ps.Name) == nil {
				sym.Members = append(sym.Members, ps)
			}
		}
	}

	// Phase two: properties assigned on this, constructor first so its
	// view of the instance wins over later methods.
	for pass := 0; pass < 2; pass++ {
		for _, el := range c.Body {
			m, ok := el.(*parser.MethodDefinition)
			if !ok || m.Value == nil || m.Value.Body == nil {
				continue
			}
			if (m.MethodKind == "constructor") != (pass == 0) {
				continue
			}
			t.scanThisAssignments(m.Value.Body, sym)
		}
	}

	// Phase three: member bodies and initializers.
	for _, el := range c.Body {
		switch m := el.(type) {
		case *parser.MethodDefinition:
			if m.Value == nil {
				continue
			}
			fs := newScope(FunctionScope, cs, m.Value.Pos(), m.Value.End())
			fs.Owner = memberSyms[el]
			t.defineParams(m.Value.Params, fs)
			if m.Value.Body != nil {
				t.visitStmts(m.Value.Body.Body, fs)
			}
		case *parser.PropertyDefinition:
			t.visitExpr(m.Value, cs)
		}
	}
}

// scanThisAssignments synthesizes property members from `this.x = ...`
// writes. Declared members always win; among writes, the first one seen
// fixes the member. Nested functions get their own this and are skipped,
// arrows inherit it and are scanned.
func (t *Table) scanThisAssignments(body *parser.BlockStatement, class *Symbol) {
	parser.Walk(body, func(n parser.Node) bool {
		switch nn := n.(type) {
		case *parser.FunctionExpression, *parser.FunctionDeclaration, *parser.ClassDeclaration:
			return false
		case *parser.AssignmentExpression:
			if nn.Op != "=" {
				return true
			}
			mem, ok := nn.Left.(*parser.MemberExpression)
			if !ok || mem.Property == nil || mem.Property.Name == "" {
				return true
			}
			if _, isThis := mem.Object.(*parser.ThisExpression); !isThis {
				return true
			}
			if class.Member(mem.Property.Name) == nil {
				class.Members = append(class.Members, &Symbol{
					Name:     mem.Property.Name,
					Kind:     model.KindProperty,
					Decl:     mem.Property,
					Value:    nn.Right,
					DeclLine: t.Line(mem.Property.Pos()),
				})
			}
		}
		return true
	})
}

func (t *Table) visitImport(imp *parser.ImportDeclaration, sc *Scope) {
	def := func(id *parser.Identifier) {
		if id != nil && id.Name != "" {
			t.define(sc, &Symbol{Name: id.Name, Kind: model.KindImport, Decl: id})
		}
	}
	def(imp.Default)
	def(imp.Namespace)
	for _, spec := range imp.Names {
		if spec.Alias != nil {
			def(spec.Alias)
		} else {
			def(spec.Name)
		}
	}
}
