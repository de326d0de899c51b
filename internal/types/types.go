// Package types defines the closed algebra of inferred JavaScript types:
// primitives, arrays, structural objects, functions, classes and their
// instances, and unions. It has no dependencies on the rest of the
// analyzer, so any layer can hold a Type without import cycles.
package types

import "strings"

// Kind discriminates the Type implementations.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
	KindVoid
	KindNever
	KindArray
	KindObject
	KindFunction
	KindClass
	KindInstance
	KindUnion
)

// Type is an inferred type. The set of implementations is closed; code
// outside this package composes types but never adds new kinds.
type Type interface {
	Kind() Kind
	String() string
	typ()
}

type primitive struct {
	kind Kind
	name string
}

func (p *primitive) Kind() Kind     { return p.kind }
func (p *primitive) String() string { return p.name }
func (p *primitive) typ()           {}

// Primitive singletons. Compare against these with ==; the package never
// allocates a second value for any of them.
var (
	Any       Type = &primitive{KindAny, "any"}
	Str       Type = &primitive{KindString, "string"}
	Num       Type = &primitive{KindNumber, "number"}
	Bool      Type = &primitive{KindBoolean, "boolean"}
	Null      Type = &primitive{KindNull, "null"}
	Undefined Type = &primitive{KindUndefined, "undefined"}
	Void      Type = &primitive{KindVoid, "void"}
	Never     Type = &primitive{KindNever, "never"}
)

// Member is one named property of an object, class, or instance.
type Member struct {
	Name string
	Type Type
}

// ArrayType is a homogeneous array. Elem may be Any when the element
// type is unknown.
type ArrayType struct {
	Elem Type
}

func (a *ArrayType) Kind() Kind { return KindArray }
func (a *ArrayType) typ()       {}

func (a *ArrayType) String() string {
	elem := a.Elem
	if elem == nil {
		elem = Any
	}
	if elem.Kind() == KindUnion || elem.Kind() == KindFunction {
		return "(" + elem.String() + ")[]"
	}
	return elem.String() + "[]"
}

// ObjectType is a structural record of named members in declaration
// order. Name, when set, is used for display instead of the member list.
type ObjectType struct {
	Name string

	members []Member
	index   map[string]int
}

// NewObject returns an empty object type. name may be "" for anonymous
// literals.
func NewObject(name string) *ObjectType {
	return &ObjectType{Name: name, index: map[string]int{}}
}

func (o *ObjectType) Kind() Kind { return KindObject }
func (o *ObjectType) typ()       {}

func (o *ObjectType) String() string {
	if o.Name != "" {
		return o.Name
	}
	return "object"
}

// Set adds or replaces a member, keeping the position of an existing one.
func (o *ObjectType) Set(name string, t Type) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[name]; ok {
		o.members[i].Type = t
		return
	}
	o.index[name] = len(o.members)
	o.members = append(o.members, Member{Name: name, Type: t})
}

// Lookup returns the member type by name.
func (o *ObjectType) Lookup(name string) (Type, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.members[i].Type, true
}

// Members returns the members in declaration order. The caller must not
// mutate the returned slice.
func (o *ObjectType) Members() []Member { return o.members }

func (o *ObjectType) Len() int { return len(o.members) }

// Param is a single function parameter.
type Param struct {
	Name string
	Type Type
}

// FunctionType carries a signature: parameter names, a return type, and
// the async/generator flags that change the call-site result.
type FunctionType struct {
	Params      []Param
	Return      Type
	IsAsync     bool
	IsGenerator bool
}

func (f *FunctionType) Kind() Kind { return KindFunction }
func (f *FunctionType) typ()       {}

func (f *FunctionType) String() string {
	var b strings.Builder
	if f.IsAsync {
		b.WriteString("async ")
	}
	b.WriteString("function")
	if f.IsGenerator {
		b.WriteString("*")
	}
	b.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(")")
	if f.Return != nil {
		b.WriteString(": ")
		b.WriteString(f.Return.String())
	}
	return b.String()
}

// ClassType describes one class declaration. Two ClassTypes are the same
// type only when they are the same pointer; a re-declared class is a new
// type.
type ClassType struct {
	Name  string
	Super *ClassType

	ctor     *FunctionType
	instance []Member
	static   []Member
	instIdx  map[string]int
	statIdx  map[string]int
}

// NewClass returns an empty class type with no members.
func NewClass(name string) *ClassType {
	return &ClassType{
		Name:    name,
		instIdx: map[string]int{},
		statIdx: map[string]int{},
	}
}

func (c *ClassType) Kind() Kind     { return KindClass }
func (c *ClassType) typ()           {}
func (c *ClassType) String() string { return "class " + c.Name }

// SetConstructor records the constructor signature.
func (c *ClassType) SetConstructor(f *FunctionType) { c.ctor = f }

// Constructor returns the recorded constructor signature, or nil.
func (c *ClassType) Constructor() *FunctionType { return c.ctor }

// DefineInstance adds or replaces an instance member.
func (c *ClassType) DefineInstance(name string, t Type) {
	c.instance, c.instIdx = define(c.instance, c.instIdx, name, t)
}

// DefineStatic adds or replaces a static member.
func (c *ClassType) DefineStatic(name string, t Type) {
	c.static, c.statIdx = define(c.static, c.statIdx, name, t)
}

func define(members []Member, index map[string]int, name string, t Type) ([]Member, map[string]int) {
	if index == nil {
		index = map[string]int{}
	}
	if i, ok := index[name]; ok {
		members[i].Type = t
		return members, index
	}
	index[name] = len(members)
	return append(members, Member{Name: name, Type: t}), index
}

// LookupInstance resolves an instance member, walking the superclass
// chain when the class does not declare it itself.
func (c *ClassType) LookupInstance(name string) (Type, bool) {
	for cur := c; cur != nil; cur = cur.Super {
		if i, ok := cur.instIdx[name]; ok {
			return cur.instance[i].Type, true
		}
	}
	return nil, false
}

// LookupStatic resolves a static member, walking the superclass chain.
func (c *ClassType) LookupStatic(name string) (Type, bool) {
	for cur := c; cur != nil; cur = cur.Super {
		if i, ok := cur.statIdx[name]; ok {
			return cur.static[i].Type, true
		}
	}
	return nil, false
}

// OwnInstance returns the members declared on this class only.
func (c *ClassType) OwnInstance() []Member { return c.instance }

// OwnStatic returns the static members declared on this class only.
func (c *ClassType) OwnStatic() []Member { return c.static }

// InstanceMembers returns instance members in declaration order, own
// members first, then inherited ones not shadowed by a subclass.
func (c *ClassType) InstanceMembers() []Member {
	return inherited(c, (*ClassType).OwnInstance)
}

// StaticMembers returns static members in declaration order, including
// inherited statics.
func (c *ClassType) StaticMembers() []Member {
	return inherited(c, (*ClassType).OwnStatic)
}

func inherited(c *ClassType, own func(*ClassType) []Member) []Member {
	var out []Member
	seen := map[string]bool{}
	for cur := c; cur != nil; cur = cur.Super {
		for _, m := range own(cur) {
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			out = append(out, m)
		}
	}
	return out
}

// InstanceType is a value created from a class, typically by new.
type InstanceType struct {
	Of *ClassType
}

// NewInstance returns the instance type of a class.
func NewInstance(of *ClassType) *InstanceType { return &InstanceType{Of: of} }

func (i *InstanceType) Kind() Kind     { return KindInstance }
func (i *InstanceType) typ()           {}
func (i *InstanceType) String() string { return i.Of.Name }

// UnionType is a set of alternative types. Construct one through Union,
// which normalizes; a hand-built UnionType skips simplification.
type UnionType struct {
	Constituents []Type
}

func (u *UnionType) Kind() Kind { return KindUnion }
func (u *UnionType) typ()       {}

func (u *UnionType) String() string {
	parts := make([]string, len(u.Constituents))
	for i, c := range u.Constituents {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}
