package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionSimplification(t *testing.T) {
	tests := []struct {
		name  string
		parts []Type
		want  string
	}{
		{"flattens nested unions", []Type{Str, Union(Num, Str)}, "string | number"},
		{"keeps first-seen order", []Type{Num, Str, Num, Bool}, "number | string | boolean"},
		{"drops never", []Type{Str, Never, Num}, "string | number"},
		{"any absorbs", []Type{Str, Any, Num}, "any"},
		{"empty is never", nil, "never"},
		{"all never is never", []Type{Never, Never}, "never"},
		{"single constituent collapses", []Type{Str, Str}, "string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Union(tt.parts...).String())
		})
	}
}

func TestUnionCollapsesToConstituent(t *testing.T) {
	arr := &ArrayType{Elem: Str}
	got := Union(arr, &ArrayType{Elem: Str}, Never)
	require.Same(t, arr, got, "structural duplicates collapse to the first occurrence")
}

func TestEqual(t *testing.T) {
	classA := NewClass("A")
	classB := NewClass("B")

	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same primitive", Str, Str, true},
		{"different primitives", Str, Num, false},
		{"equal arrays", &ArrayType{Elem: Num}, &ArrayType{Elem: Num}, true},
		{"unequal arrays", &ArrayType{Elem: Num}, &ArrayType{Elem: Str}, false},
		{"array vs primitive", &ArrayType{Elem: Num}, Num, false},
		{
			"equal functions",
			&FunctionType{Params: []Param{{Name: "a"}}, Return: Num},
			&FunctionType{Params: []Param{{Name: "b"}}, Return: Num},
			true,
		},
		{
			"functions differ by arity",
			&FunctionType{Params: []Param{{Name: "a"}}, Return: Num},
			&FunctionType{Return: Num},
			false,
		},
		{
			"functions differ by async",
			&FunctionType{Return: Num, IsAsync: true},
			&FunctionType{Return: Num},
			false,
		},
		{"same class pointer", classA, classA, true},
		{"distinct classes never equal", classA, classB, false},
		{"instances of same class", NewInstance(classA), NewInstance(classA), true},
		{"instances of distinct classes", NewInstance(classA), NewInstance(classB), false},
		{"unions ignore order", Union(Str, Num), Union(Num, Str), true},
		{"unions differ by membership", Union(Str, Num), Union(Str, Bool), false},
		{"nil vs type", nil, Str, false},
		{"nil vs nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualObjects(t *testing.T) {
	mk := func(sizeType Type) *ObjectType {
		o := NewObject("")
		o.Set("name", Str)
		o.Set("size", sizeType)
		return o
	}
	assert.True(t, Equal(mk(Num), mk(Num)))
	assert.False(t, Equal(mk(Num), mk(Str)))

	extra := mk(Num)
	extra.Set("flag", Bool)
	assert.False(t, Equal(mk(Num), extra))
}

func TestUnionMembersIntersect(t *testing.T) {
	a := NewObject("")
	a.Set("name", Str)
	a.Set("size", Num)
	a.Set("onlyA", Bool)

	b := NewObject("")
	b.Set("size", Str)
	b.Set("name", Str)

	u, ok := Union(a, b).(*UnionType)
	require.True(t, ok)

	members := u.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "name", members[0].Name, "order follows the first constituent")
	assert.Equal(t, Str, members[0].Type)
	assert.Equal(t, "size", members[1].Name)
	assert.Equal(t, Any, members[1].Type, "disagreeing member types degrade to any")

	got, ok := LookupMember(u, "size")
	require.True(t, ok)
	assert.Equal(t, Any, got)
	_, ok = LookupMember(u, "onlyA")
	assert.False(t, ok)
}

func TestAssignableTo(t *testing.T) {
	base := NewClass("Animal")
	sub := NewClass("Dog")
	sub.Super = base
	other := NewClass("Rock")

	tests := []struct {
		name     string
		src, dst Type
		want     bool
	}{
		{"identical", Str, Str, true},
		{"into any", Str, Any, true},
		{"from any", Any, Str, true},
		{"unrelated primitives", Str, Num, false},
		{"into matching union", Str, Union(Str, Num), true},
		{"into non-matching union", Bool, Union(Str, Num), false},
		{"union into superset union", Union(Str, Num), Union(Num, Str, Bool), true},
		{"union into narrower type", Union(Str, Num), Str, false},
		{"subclass instance widens", NewInstance(sub), NewInstance(base), true},
		{"superclass does not narrow", NewInstance(base), NewInstance(sub), false},
		{"unrelated instances", NewInstance(other), NewInstance(base), false},
		{"array covariance", &ArrayType{Elem: NewInstance(sub)}, &ArrayType{Elem: NewInstance(base)}, true},
		{"unknown src passes", nil, Str, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssignableTo(tt.src, tt.dst))
		})
	}
}

func TestStringForms(t *testing.T) {
	cls := NewClass("Point")
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"primitive", Num, "number"},
		{"array", &ArrayType{Elem: Num}, "number[]"},
		{"array of unknown", &ArrayType{}, "any[]"},
		{"array of union parenthesized", &ArrayType{Elem: Union(Str, Num)}, "(string | number)[]"},
		{"anonymous object", NewObject(""), "object"},
		{"named object", NewObject("console"), "console"},
		{"function", &FunctionType{Params: []Param{{Name: "a"}, {Name: "b"}}, Return: Num}, "function(a, b): number"},
		{"function without known return", &FunctionType{Params: []Param{{Name: "x"}}}, "function(x)"},
		{"async function", &FunctionType{IsAsync: true, Return: Any}, "async function(): any"},
		{"generator", &FunctionType{IsGenerator: true, Return: Void}, "function*(): void"},
		{"class", cls, "class Point"},
		{"instance", NewInstance(cls), "Point"},
		{"union", Union(Str, Null), "string | null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestClassMemberChain(t *testing.T) {
	base := NewClass("Animal")
	base.DefineInstance("name", Str)
	base.DefineInstance("speak", &FunctionType{Return: Void})
	base.DefineStatic("kingdom", Str)

	sub := NewClass("Dog")
	sub.Super = base
	sub.DefineInstance("fetch", &FunctionType{Return: Void})
	sub.DefineInstance("speak", &FunctionType{Return: Str})

	members := sub.InstanceMembers()
	require.Len(t, members, 3)
	assert.Equal(t, "fetch", members[0].Name, "own members come first")
	assert.Equal(t, "speak", members[1].Name)
	assert.Equal(t, "name", members[2].Name)

	speak, ok := sub.LookupInstance("speak")
	require.True(t, ok)
	assert.Equal(t, Str, speak.(*FunctionType).Return, "subclass shadows the inherited member")

	name, ok := sub.LookupInstance("name")
	require.True(t, ok)
	assert.Equal(t, Str, name)

	kingdom, ok := sub.LookupStatic("kingdom")
	require.True(t, ok)
	assert.Equal(t, Str, kingdom, "statics inherit through the chain")

	_, ok = sub.LookupInstance("missing")
	assert.False(t, ok)

	inst := NewInstance(sub)
	assert.Len(t, MembersOf(inst), 3)
	got, ok := LookupMember(inst, "fetch")
	require.True(t, ok)
	assert.Equal(t, KindFunction, got.Kind())
}
