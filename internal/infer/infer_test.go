package infer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/jsls/internal/lexer"
	"github.com/cmmoran/jsls/internal/parser"
	"github.com/cmmoran/jsls/internal/symbols"
	"github.com/cmmoran/jsls/internal/types"
)

func analyze(t *testing.T, src string) *Engine {
	t.Helper()
	toks := lexer.TokenizeDocument(strings.Split(src, "\n"), nil)
	prog, _ := parser.Parse(src, toks)
	e := New(prog, symbols.Build(prog, src))
	e.Annotate()
	return e
}

// typeOf resolves a global name and returns its inferred type.
func typeOf(t *testing.T, e *Engine, name string) types.Type {
	t.Helper()
	sym := e.Table().Global.Resolve(name)
	require.NotNil(t, sym, "no symbol %q", name)
	return e.SymbolType(sym)
}

func TestLiteralAndOperatorTypes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"let v = 'hi';", "string"},
		{"let v = `n=${1}`;", "string"},
		{"let v = 42;", "number"},
		{"let v = true;", "boolean"},
		{"let v = null;", "null"},
		{"let v = undefined;", "undefined"},
		{"let v = 1 + 2;", "number"},
		{"let v = 'n: ' + 1;", "string"},
		{"let v = 1 + {};", "any"},
		{"let v = 2 * 3;", "number"},
		{"let v = 1 < 2;", "boolean"},
		{"let v = typeof x;", "string"},
		{"let v = !x;", "boolean"},
		{"let v = -x;", "number"},
		{"let v = void 0;", "undefined"},
		{"let v = i++;", "number"},
		{"let v = x ? 'a' : 1;", "string | number"},
		{"let a = 1; let v = a || 'd';", "number | string"},
		{"let n = null; let v = n ?? 'd';", "string"},
		{"let v = (1, 'two');", "string"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			e := analyze(t, tc.src)
			assert.Equal(t, tc.want, typeOf(t, e, "v").String())
		})
	}
}

func TestArrayAndObjectLiterals(t *testing.T) {
	e := analyze(t, strings.Join([]string{
		"let nums = [1, 2, 3];",
		"let mixed = [1, 'a'];",
		"let empty = [];",
		"let spread = [...nums, 4];",
		"let first = nums[0];",
		"let cfg = {name: 'dev', port: 8080};",
		"let port = cfg['port'];",
		"let ch = 'abc'[0];",
	}, "\n"))

	assert.Equal(t, "number[]", typeOf(t, e, "nums").String())
	assert.Equal(t, "(number | string)[]", typeOf(t, e, "mixed").String())
	assert.Equal(t, "any[]", typeOf(t, e, "empty").String())
	assert.Equal(t, "number[]", typeOf(t, e, "spread").String())
	assert.Same(t, types.Num, typeOf(t, e, "first"))
	assert.Same(t, types.Num, typeOf(t, e, "port"))
	assert.Same(t, types.Str, typeOf(t, e, "ch"))

	cfg := typeOf(t, e, "cfg")
	assert.Equal(t, "object", cfg.String())
	assert.Same(t, types.Str, e.MemberType(cfg, "name"))
	assert.Same(t, types.Num, e.MemberType(cfg, "port"))
	assert.Same(t, types.Any, e.MemberType(cfg, "missing"))
}

func TestFunctionReturnScan(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"consistent", "function f(a, b) { return a + 'x'; }", "function(a, b): string"},
		{"no return", "function f() { let x = 1; }", "function(): void"},
		{"disagreeing returns", "function f(c) { if (c) return 1; return 'x'; }", "function(c): any"},
		{"bare and value", "function f(c) { if (c) return; return 1; }", "function(c): any"},
		{"nested does not leak", "function f() { function g() { return 1; } }", "function(): void"},
		{"default param flows", "function f(n = 10) { return n; }", "function(n): number"},
		{"rest label", "function f(...parts) { return parts.length; }", "function(...parts): number"},
		{"generator", "function* f() { return 1; }", "function*(): number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := analyze(t, tc.src)
			assert.Equal(t, tc.want, typeOf(t, e, "f").String())
		})
	}
}

func TestArrowFunctions(t *testing.T) {
	e := analyze(t, strings.Join([]string{
		"const shout = (s) => s + '!';",
		"const block = (a) => { return [a]; };",
	}, "\n"))

	assert.Equal(t, "function(s): string", typeOf(t, e, "shout").String())
	assert.Equal(t, "function(a): any[]", typeOf(t, e, "block").String())
}

func TestAsyncAndAwait(t *testing.T) {
	src := strings.Join([]string{
		"async function load() { return 42; }",
		"let pending = load();",
		"async function run() {",
		"  let value = await load();",
		"  let res = await fetch('/api');",
		"  return value;",
		"}",
	}, "\n")
	e := analyze(t, src)

	assert.Equal(t, "async function(): number", typeOf(t, e, "load").String())
	assert.Equal(t, "Promise", typeOf(t, e, "pending").String())

	body := e.Table().ScopeAt(strings.Index(src, "let value"))
	value := body.Resolve("value")
	require.NotNil(t, value)
	assert.Same(t, types.Num, value.Type, "await sees through a direct async call")

	res := body.Resolve("res")
	require.NotNil(t, res)
	assert.Same(t, types.Any, res.Type, "a bare promise loses its payload")

	assert.Equal(t, "async function(): number", typeOf(t, e, "run").String())
}

func TestClassInference(t *testing.T) {
	e := analyze(t, strings.Join([]string{
		"class P {",
		"  constructor(n) { this.name = n; }",
		"  greet() { return 'hi ' + this.name; }",
		"}",
	}, "\n"))

	ct, ok := typeOf(t, e, "P").(*types.ClassType)
	require.True(t, ok)
	assert.Equal(t, "P", ct.Name)

	greet, ok := ct.LookupInstance("greet")
	require.True(t, ok)
	assert.Equal(t, "function(): string", greet.String())

	name, ok := ct.LookupInstance("name")
	require.True(t, ok)
	assert.Equal(t, types.KindAny, name.Kind())

	ctor := ct.Constructor()
	require.NotNil(t, ctor)
	require.Len(t, ctor.Params, 1)
	assert.Equal(t, "n", ctor.Params[0].Name)

	_, hasCtorMember := ct.LookupInstance("constructor")
	assert.False(t, hasCtorMember, "constructor is not an instance member")

	var names []string
	for _, m := range ct.InstanceMembers() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"greet", "name"}, names)
}

func TestClassHierarchy(t *testing.T) {
	e := analyze(t, strings.Join([]string{
		"class Animal {",
		"  constructor(name) { this.name = name; }",
		"  speak() { return this.name + ' makes a sound'; }",
		"}",
		"class Dog extends Animal {",
		"  speak() { return 'woof'; }",
		"  fetch() { return this; }",
		"}",
		"let d = new Dog('rex');",
		"let sound = d.speak();",
		"let same = d.fetch();",
	}, "\n"))

	animal := typeOf(t, e, "Animal").(*types.ClassType)
	dog := typeOf(t, e, "Dog").(*types.ClassType)
	require.Same(t, animal, dog.Super)

	d, ok := typeOf(t, e, "d").(*types.InstanceType)
	require.True(t, ok)
	require.Same(t, dog, d.Of)

	assert.Same(t, types.Str, typeOf(t, e, "sound"))

	// name is inherited through the super chain
	nameType, ok := dog.LookupInstance("name")
	require.True(t, ok)
	assert.Equal(t, types.KindAny, nameType.Kind())

	same, ok := typeOf(t, e, "same").(*types.InstanceType)
	require.True(t, ok)
	require.Same(t, dog, same.Of)
}

func TestSelfReferentialClass(t *testing.T) {
	e := analyze(t, strings.Join([]string{
		"class Chain {",
		"  grow() { return new Chain(); }",
		"}",
		"let c = new Chain().grow();",
	}, "\n"))

	chain := typeOf(t, e, "Chain").(*types.ClassType)
	grow, ok := chain.LookupInstance("grow")
	require.True(t, ok)
	ret := grow.(*types.FunctionType).Return
	inst, ok := ret.(*types.InstanceType)
	require.True(t, ok)
	require.Same(t, chain, inst.Of)

	c, ok := typeOf(t, e, "c").(*types.InstanceType)
	require.True(t, ok)
	require.Same(t, chain, c.Of)
}

func TestGettersAndSetters(t *testing.T) {
	e := analyze(t, strings.Join([]string{
		"class Box {",
		"  get size() { return 3; }",
		"  set label(v) { this.tag = v; }",
		"}",
	}, "\n"))

	box := typeOf(t, e, "Box").(*types.ClassType)

	size, ok := box.LookupInstance("size")
	require.True(t, ok)
	assert.Same(t, types.Num, size)

	label, ok := box.LookupInstance("label")
	require.True(t, ok)
	assert.Equal(t, "function(v): void", label.String())
}

func TestForOfTyping(t *testing.T) {
	src := strings.Join([]string{
		"class User {",
		"  constructor(id) { this.id = id; }",
		"}",
		"let users = [];",
		"let names = ['ada', 'brin'];",
		"for (const u of users) {",
		"  u;",
		"}",
		"for (const nm of names) {",
		"  nm;",
		"}",
		"for (const key in {a: 1}) {",
		"  key;",
		"}",
		"let one = users[0];",
	}, "\n")
	e := analyze(t, src)

	u := e.Table().ScopeAt(strings.Index(src, "u;")).Resolve("u")
	require.NotNil(t, u)
	assert.Equal(t, "User", u.Type.String(), "plural name singularizes to a known class")

	nm := e.Table().ScopeAt(strings.Index(src, "nm;")).Resolve("nm")
	require.NotNil(t, nm)
	assert.Same(t, types.Str, nm.Type)

	key := e.Table().ScopeAt(strings.Index(src, "key;")).Resolve("key")
	require.NotNil(t, key)
	assert.Same(t, types.Str, key.Type)

	one, ok := typeOf(t, e, "one").(*types.InstanceType)
	require.True(t, ok, "index access shares the element hint")
	assert.Equal(t, "User", one.Of.Name)
}

func TestMemberChains(t *testing.T) {
	e := analyze(t, strings.Join([]string{
		"let el = document.getElementById('app');",
		"let txt = el.textContent;",
		"let parts = 'a,b,c'.split(',');",
		"let mapped = parts.map(x => x);",
		"let count = 'abc'.length;",
		"let has = [1, 2].includes(2);",
		"let rounded = Math.round(1.5);",
		"let loose = mystery.split(',');",
	}, "\n"))

	el, ok := typeOf(t, e, "el").(*types.InstanceType)
	require.True(t, ok)
	assert.Equal(t, "HTMLElement", el.Of.Name)

	assert.Same(t, types.Str, typeOf(t, e, "txt"))
	assert.Equal(t, "string[]", typeOf(t, e, "parts").String())
	assert.Equal(t, "any[]", typeOf(t, e, "mapped").String())
	assert.Same(t, types.Num, typeOf(t, e, "count"))
	assert.Same(t, types.Bool, typeOf(t, e, "has"))
	assert.Same(t, types.Num, typeOf(t, e, "rounded"))

	// unknown receiver falls back to the string method hint set
	assert.Equal(t, "string[]", typeOf(t, e, "loose").String())
}

func TestUnionsSkipBuiltinLayer(t *testing.T) {
	e := analyze(t, "")

	un := types.Union(types.Str, types.Num)
	assert.Same(t, types.Any, e.MemberType(un, "toFixed"))
	assert.Same(t, types.Any, e.MemberType(types.Str, "nope"))

	// the generic hints still serve unknown receivers
	trim := e.MemberType(types.Any, "trim")
	require.IsType(t, &types.FunctionType{}, trim)
	assert.Same(t, types.Str, trim.(*types.FunctionType).Return)
}

func TestAnnotateMemoizesOnSymbols(t *testing.T) {
	e := analyze(t, "let answer = 6 * 7;")

	sym := e.Table().Global.Resolve("answer")
	require.NotNil(t, sym)
	require.NotNil(t, sym.Type, "Annotate fills symbol types eagerly")
	assert.Same(t, types.Num, sym.Type)

	console := e.Table().Global.Resolve("console")
	require.NotNil(t, console)
	assert.NotNil(t, console.Type, "builtins keep their seeded types")
}
