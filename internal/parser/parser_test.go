package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/jsls/internal/lexer"
)

func parseSrc(t *testing.T, src string) (*Program, []*ParseError) {
	t.Helper()
	toks := lexer.TokenizeDocument(strings.Split(src, "\n"), nil)
	return Parse(src, toks)
}

func parseClean(t *testing.T, src string) *Program {
	t.Helper()
	prog, errs := parseSrc(t, src)
	require.Empty(t, errs, "expected a clean parse")
	return prog
}

func firstExpr(t *testing.T, src string) Expr {
	t.Helper()
	prog := parseClean(t, src)
	require.NotEmpty(t, prog.Body)
	es, ok := prog.Body[0].(*ExpressionStatement)
	require.True(t, ok, "statement is %T, want expression", prog.Body[0])
	return es.X
}

func TestParseVariableDeclarations(t *testing.T) {
	prog := parseClean(t, `const x = 42, y = 'hi';`)
	require.Len(t, prog.Body, 1)

	decl, ok := prog.Body[0].(*VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "const", decl.DeclKind)
	require.Len(t, decl.Decls, 2)

	assert.Equal(t, "x", decl.Decls[0].Target.(*Identifier).Name)
	num, ok := decl.Decls[0].Init.(*NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, 42.0, num.Value)

	str, ok := decl.Decls[1].Init.(*StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hi", str.Value)

	prog = parseClean(t, `var n;`)
	decl = prog.Body[0].(*VariableDeclaration)
	assert.Nil(t, decl.Decls[0].Init)
}

func TestParseDestructuringBindsShallowNames(t *testing.T) {
	prog := parseClean(t, `let {a, b} = obj;`)
	decl := prog.Body[0].(*VariableDeclaration)
	require.Len(t, decl.Decls, 1)

	names := decl.Decls[0].TargetNames()
	require.Len(t, names, 2)
	assert.Equal(t, "a", names[0].Name)
	assert.Equal(t, "b", names[1].Name)

	prog = parseClean(t, `const [first, second] = pair;`)
	names = prog.Body[0].(*VariableDeclaration).Decls[0].TargetNames()
	require.Len(t, names, 2)
	assert.Equal(t, "first", names[0].Name)
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog := parseClean(t, `function add(a, b = 1, ...rest) { return a + b; }`)
	require.Len(t, prog.Body, 1)

	fn, ok := prog.Body[0].(*FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Name)
	require.Len(t, fn.Params, 3)
	assert.Equal(t, "a", fn.Params[0].Name.Name)
	assert.NotNil(t, fn.Params[1].Default)
	assert.True(t, fn.Params[2].Rest)

	require.Len(t, fn.Body.Body, 1)
	ret := fn.Body.Body[0].(*ReturnStatement)
	bin, ok := ret.Arg.(*BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParseArrowFunctions(t *testing.T) {
	t.Run("single param", func(t *testing.T) {
		prog := parseClean(t, `const g = items => items.length;`)
		arrow := prog.Body[0].(*VariableDeclaration).Decls[0].Init.(*ArrowFunction)
		require.Len(t, arrow.Params, 1)
		assert.Equal(t, "items", arrow.Params[0].Name.Name)
		_, ok := arrow.Body.(*MemberExpression)
		assert.True(t, ok)
	})

	t.Run("async with parens", func(t *testing.T) {
		prog := parseClean(t, `const f = async (x) => x * 2;`)
		arrow := prog.Body[0].(*VariableDeclaration).Decls[0].Init.(*ArrowFunction)
		assert.True(t, arrow.IsAsync)
		require.Len(t, arrow.Params, 1)
	})

	t.Run("block body", func(t *testing.T) {
		prog := parseClean(t, `const h = (a, b) => { return a; };`)
		arrow := prog.Body[0].(*VariableDeclaration).Decls[0].Init.(*ArrowFunction)
		require.Len(t, arrow.Params, 2)
		_, ok := arrow.Body.(*BlockStatement)
		assert.True(t, ok)
	})

	t.Run("parenthesized group is not an arrow", func(t *testing.T) {
		prog := parseClean(t, `const z = (a + b) * c;`)
		bin := prog.Body[0].(*VariableDeclaration).Decls[0].Init.(*BinaryExpression)
		assert.Equal(t, "*", bin.Op)
	})
}

func TestParseClassDeclaration(t *testing.T) {
	src := `class Point extends Base {
  constructor(x, y) {
    this.x = x;
  }
  get size() { return 2; }
  static origin() { return new Point(0, 0); }
  #secret = 1;
  label = 'pt';
}`
	prog := parseClean(t, src)
	cls, ok := prog.Body[0].(*ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Point", cls.Name.Name)
	assert.Equal(t, "Base", cls.SuperClass.(*Identifier).Name)
	require.Len(t, cls.Body, 5)

	ctor := cls.Body[0].(*MethodDefinition)
	assert.Equal(t, "constructor", ctor.MethodKind)
	require.Len(t, ctor.Value.Params, 2)

	getter := cls.Body[1].(*MethodDefinition)
	assert.Equal(t, "get", getter.MethodKind)
	assert.Equal(t, "size", getter.Key.Name)

	origin := cls.Body[2].(*MethodDefinition)
	assert.True(t, origin.Static)
	assert.Equal(t, "method", origin.MethodKind)

	secret := cls.Body[3].(*PropertyDefinition)
	assert.Equal(t, "#secret", secret.Key.Name)

	label := cls.Body[4].(*PropertyDefinition)
	assert.Equal(t, "label", label.Key.Name)
	_, ok = label.Value.(*StringLiteral)
	assert.True(t, ok)
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, x Expr)
	}{
		{"multiplication binds tighter", `1 + 2 * 3;`, func(t *testing.T, x Expr) {
			bin := x.(*BinaryExpression)
			assert.Equal(t, "+", bin.Op)
			assert.Equal(t, "*", bin.Right.(*BinaryExpression).Op)
		}},
		{"parens override", `(1 + 2) * 3;`, func(t *testing.T, x Expr) {
			bin := x.(*BinaryExpression)
			assert.Equal(t, "*", bin.Op)
			assert.Equal(t, "+", bin.Left.(*BinaryExpression).Op)
		}},
		{"exponent is right associative", `2 ** 3 ** 2;`, func(t *testing.T, x Expr) {
			bin := x.(*BinaryExpression)
			assert.Equal(t, "**", bin.Op)
			assert.Equal(t, "**", bin.Right.(*BinaryExpression).Op)
		}},
		{"assignment is right associative", `a = b = c;`, func(t *testing.T, x Expr) {
			outer := x.(*AssignmentExpression)
			_, ok := outer.Right.(*AssignmentExpression)
			assert.True(t, ok)
		}},
		{"and binds tighter than or", `a && b || c;`, func(t *testing.T, x Expr) {
			or := x.(*LogicalExpression)
			assert.Equal(t, "||", or.Op)
			assert.Equal(t, "&&", or.Left.(*LogicalExpression).Op)
		}},
		{"nullish coalescing", `a ?? b;`, func(t *testing.T, x Expr) {
			assert.Equal(t, "??", x.(*LogicalExpression).Op)
		}},
		{"relational above equality", `x < 5 === true;`, func(t *testing.T, x Expr) {
			eq := x.(*BinaryExpression)
			assert.Equal(t, "===", eq.Op)
			assert.Equal(t, "<", eq.Left.(*BinaryExpression).Op)
		}},
		{"conditional", `cond ? x : y;`, func(t *testing.T, x Expr) {
			_, ok := x.(*ConditionalExpression)
			assert.True(t, ok)
		}},
		{"typeof under equality", `typeof x === 'string';`, func(t *testing.T, x Expr) {
			eq := x.(*BinaryExpression)
			assert.Equal(t, "===", eq.Op)
			assert.Equal(t, "typeof", eq.Left.(*UnaryExpression).Op)
		}},
		{"instanceof", `a instanceof B;`, func(t *testing.T, x Expr) {
			assert.Equal(t, "instanceof", x.(*BinaryExpression).Op)
		}},
		{"postfix update", `i++;`, func(t *testing.T, x Expr) {
			upd := x.(*UpdateExpression)
			assert.Equal(t, "++", upd.Op)
			assert.False(t, upd.Prefix)
		}},
		{"sequence", `a, b, c;`, func(t *testing.T, x Expr) {
			seq := x.(*SequenceExpression)
			assert.Len(t, seq.Exprs, 3)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, firstExpr(t, tt.src))
		})
	}
}

func TestParseMemberChains(t *testing.T) {
	t.Run("dot chain", func(t *testing.T) {
		x := firstExpr(t, `a.b.c;`)
		outer := x.(*MemberExpression)
		assert.Equal(t, "c", outer.Property.Name)
		inner := outer.Object.(*MemberExpression)
		assert.Equal(t, "b", inner.Property.Name)
		assert.Equal(t, "a", inner.Object.(*Identifier).Name)
	})

	t.Run("computed access", func(t *testing.T) {
		x := firstExpr(t, `arr[0].length;`)
		outer := x.(*MemberExpression)
		assert.Equal(t, "length", outer.Property.Name)
		inner := outer.Object.(*MemberExpression)
		assert.True(t, inner.Computed())
	})

	t.Run("optional chaining", func(t *testing.T) {
		x := firstExpr(t, `obj?.foo?.();`)
		call := x.(*CallExpression)
		assert.True(t, call.Optional)
		member := call.Callee.(*MemberExpression)
		assert.True(t, member.Optional)
		assert.Equal(t, "foo", member.Property.Name)
	})

	t.Run("new with chained call", func(t *testing.T) {
		x := firstExpr(t, `new Date().getTime();`)
		call := x.(*CallExpression)
		member := call.Callee.(*MemberExpression)
		assert.Equal(t, "getTime", member.Property.Name)
		nw := member.Object.(*NewExpression)
		assert.Equal(t, "Date", nw.Callee.(*Identifier).Name)
	})

	t.Run("keyword as property name", func(t *testing.T) {
		x := firstExpr(t, `config.default;`)
		member := x.(*MemberExpression)
		assert.Equal(t, "default", member.Property.Name)
	})
}

func TestParseControlFlow(t *testing.T) {
	src := `
if (ready) { go(); } else stop();
for (let i = 0; i < 10; i++) sum += i;
for (const item of list) use(item);
for (k in obj) visit(k);
while (busy) wait();
do { tick(); } while (alive);
switch (mode) {
  case 1:
    one();
    break;
  default:
    rest();
}
try { risky(); } catch (err) { log(err); } finally { done(); }
throw new Error('boom');
`
	prog := parseClean(t, src)
	require.Len(t, prog.Body, 9)

	ifs := prog.Body[0].(*IfStatement)
	assert.NotNil(t, ifs.Alternate)

	fors := prog.Body[1].(*ForStatement)
	_, ok := fors.Init.(*VariableDeclaration)
	assert.True(t, ok)
	assert.NotNil(t, fors.Update)

	forOf := prog.Body[2].(*ForOfStatement)
	left := forOf.Left.(*VariableDeclaration)
	assert.Equal(t, "item", left.Decls[0].Target.(*Identifier).Name)

	forIn := prog.Body[3].(*ForInStatement)
	assert.Equal(t, "k", forIn.Left.(*Identifier).Name)

	sw := prog.Body[6].(*SwitchStatement)
	require.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Cases[0].Test)
	assert.Nil(t, sw.Cases[1].Test)

	try := prog.Body[7].(*TryStatement)
	require.NotNil(t, try.Handler)
	assert.Equal(t, "err", try.Handler.Param.Name)
	assert.NotNil(t, try.Finalizer)

	throw := prog.Body[8].(*ThrowStatement)
	_, ok = throw.Arg.(*NewExpression)
	assert.True(t, ok)
}

func TestParseImports(t *testing.T) {
	src := `
import def, { a as b, c } from 'mod';
import * as NS from "ns-mod";
import 'side-effect';
`
	prog := parseClean(t, src)
	require.Len(t, prog.Body, 3)

	imp := prog.Body[0].(*ImportDeclaration)
	assert.Equal(t, "def", imp.Default.Name)
	require.Len(t, imp.Names, 2)
	assert.Equal(t, "a", imp.Names[0].Name.Name)
	assert.Equal(t, "b", imp.Names[0].Alias.Name)
	assert.Nil(t, imp.Names[1].Alias)
	assert.Equal(t, "mod", imp.Source)

	ns := prog.Body[1].(*ImportDeclaration)
	assert.Equal(t, "NS", ns.Namespace.Name)

	side := prog.Body[2].(*ImportDeclaration)
	assert.Equal(t, "side-effect", side.Source)
	assert.Nil(t, side.Default)
}

func TestParseTemplateLiteral(t *testing.T) {
	prog := parseClean(t, "const s = `a${1 + 2}b`;")
	tpl := prog.Body[0].(*VariableDeclaration).Decls[0].Init.(*TemplateLiteral)
	require.Len(t, tpl.Exprs, 1)
	require.Len(t, tpl.Quasis, 2)
	assert.Equal(t, "a", tpl.Quasis[0])
	assert.Equal(t, "b", tpl.Quasis[1])
	_, ok := tpl.Exprs[0].(*BinaryExpression)
	assert.True(t, ok)
}

func TestReturnRespectsLineBreak(t *testing.T) {
	src := "function f() {\n  return\n  42;\n}"
	prog := parseClean(t, src)
	fn := prog.Body[0].(*FunctionDeclaration)
	require.Len(t, fn.Body.Body, 2)
	ret := fn.Body.Body[0].(*ReturnStatement)
	assert.Nil(t, ret.Arg)
}

func TestParseRecovery(t *testing.T) {
	t.Run("error does not stop later statements", func(t *testing.T) {
		prog, errs := parseSrc(t, "let = 5;\nconst y = 2;")
		require.NotEmpty(t, errs)
		require.Len(t, prog.Body, 1)
		decl := prog.Body[0].(*VariableDeclaration)
		assert.Equal(t, "y", decl.Decls[0].Target.(*Identifier).Name)
	})

	t.Run("unclosed function keeps its body", func(t *testing.T) {
		prog, errs := parseSrc(t, "function outer() {\n  let a = 1;\n  let b = 2;\n")
		require.NotEmpty(t, errs)
		require.Len(t, prog.Body, 1)
		fn := prog.Body[0].(*FunctionDeclaration)
		assert.Equal(t, "outer", fn.Name.Name)
		assert.Len(t, fn.Body.Body, 2)
	})

	t.Run("dangling dot does not eat the next line", func(t *testing.T) {
		prog, errs := parseSrc(t, "foo.\nlet x = 1;\n")
		require.NotEmpty(t, errs)
		require.Len(t, prog.Body, 2)
		member := prog.Body[0].(*ExpressionStatement).X.(*MemberExpression)
		assert.Equal(t, "", member.Property.Name)
		decl := prog.Body[1].(*VariableDeclaration)
		assert.Equal(t, "x", decl.Decls[0].Target.(*Identifier).Name)
	})

	t.Run("never panics on junk", func(t *testing.T) {
		inputs := []string{
			"} ) ] ;;; , => !",
			"class {",
			"if (((",
			"const = = =",
			"function (((",
			"`unterminated ${ template",
			"a.b.(",
		}
		for _, src := range inputs {
			prog, _ := parseSrc(t, src)
			require.NotNil(t, prog, "input %q", src)
		}
	})
}

func TestNodeAtFindsInnermost(t *testing.T) {
	src := `let x = foo.bar;`
	prog := parseClean(t, src)

	off := strings.Index(src, "bar") + 1
	n := NodeAt(prog, off)
	require.NotNil(t, n)
	id, ok := n.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "bar", id.Name)

	path := PathAt(prog, off)
	require.NotEmpty(t, path)
	assert.Equal(t, KindProgram, path[0].Kind())
	assert.Equal(t, KindIdentifier, path[len(path)-1].Kind())

	var sawMember bool
	for _, pn := range path {
		if pn.Kind() == KindMemberExpression {
			sawMember = true
		}
	}
	assert.True(t, sawMember)
}

func TestWalkVisitsAllIdentifiers(t *testing.T) {
	prog := parseClean(t, `function f(a) { return a + b; }`)
	var names []string
	Walk(prog, func(n Node) bool {
		if id, ok := n.(*Identifier); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"f", "a", "a", "b"}, names)
}
