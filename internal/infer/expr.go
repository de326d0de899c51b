package infer

import (
	"strings"

	"github.com/cmmoran/jsls/internal/builtins"
	"github.com/cmmoran/jsls/internal/parser"
	"github.com/cmmoran/jsls/internal/types"
)

// TypeOf infers the type of any node of the engine's program. Nodes
// that are not expressions, and expressions the engine cannot see
// through, type as any.
func (e *Engine) TypeOf(n parser.Node) types.Type {
	return e.exprType(n)
}

func (e *Engine) exprType(n parser.Node) types.Type {
	switch x := n.(type) {
	case nil:
		return types.Any
	case *parser.StringLiteral, *parser.TemplateLiteral:
		return types.Str
	case *parser.NumberLiteral:
		return types.Num
	case *parser.BooleanLiteral:
		return types.Bool
	case *parser.NullLiteral:
		return types.Null
	case *parser.UndefinedLiteral:
		return types.Undefined
	case *parser.Identifier:
		return e.identType(x)
	case *parser.ThisExpression:
		return e.thisType(x)
	case *parser.SuperExpression:
		return e.superType(x)
	case *parser.ArrayLiteral:
		return e.arrayType(x)
	case *parser.ObjectLiteral:
		return e.objectType(x)
	case *parser.FunctionExpression:
		return e.functionType(x.Params, x.Body, x.IsAsync, x.IsGenerator)
	case *parser.ArrowFunction:
		return e.arrowType(x)
	case *parser.ClassDeclaration:
		return e.classes.Build(x)
	case *parser.UnaryExpression:
		return e.unaryType(x)
	case *parser.UpdateExpression:
		return types.Num
	case *parser.BinaryExpression:
		return e.operatorType(x.Op, x.Left, x.Right)
	case *parser.LogicalExpression:
		return e.operatorType(x.Op, x.Left, x.Right)
	case *parser.ConditionalExpression:
		return types.Union(e.exprType(x.Consequent), e.exprType(x.Alternate))
	case *parser.AssignmentExpression:
		if op := strings.TrimSuffix(x.Op, "="); op != "" {
			return e.operatorType(op, x.Left, x.Right)
		}
		return e.exprType(x.Right)
	case *parser.SequenceExpression:
		if len(x.Exprs) == 0 {
			return types.Any
		}
		return e.exprType(x.Exprs[len(x.Exprs)-1])
	case *parser.CallExpression:
		return e.callType(x)
	case *parser.NewExpression:
		return e.newType(x)
	case *parser.MemberExpression:
		return e.memberExprType(x)
	case *parser.SpreadElement:
		return e.exprType(x.Arg)
	}
	return types.Any
}

func (e *Engine) identType(id *parser.Identifier) types.Type {
	sym := e.table.ScopeAt(id.Pos()).Resolve(id.Name)
	if sym == nil {
		return types.Any
	}
	return e.SymbolType(sym)
}

func (e *Engine) thisType(n parser.Node) types.Type {
	cls := e.table.ScopeAt(n.Pos()).EnclosingClass()
	if cls == nil {
		return types.Any
	}
	if cd, ok := cls.Value.(*parser.ClassDeclaration); ok {
		return types.NewInstance(e.classes.Build(cd))
	}
	if ct, ok := cls.Type.(*types.ClassType); ok {
		return types.NewInstance(ct)
	}
	return types.Any
}

func (e *Engine) superType(n parser.Node) types.Type {
	if inst, ok := e.thisType(n).(*types.InstanceType); ok && inst.Of != nil && inst.Of.Super != nil {
		return types.NewInstance(inst.Of.Super)
	}
	return types.Any
}

func (e *Engine) arrayType(a *parser.ArrayLiteral) types.Type {
	var parts []types.Type
	for _, el := range a.Elements {
		if el == nil {
			continue
		}
		if sp, ok := el.(*parser.SpreadElement); ok {
			if arr, ok := e.exprType(sp.Arg).(*types.ArrayType); ok {
				parts = append(parts, orAny(arr.Elem))
			} else {
				parts = append(parts, types.Any)
			}
			continue
		}
		parts = append(parts, e.exprType(el))
	}
	if len(parts) == 0 {
		return &types.ArrayType{}
	}
	return &types.ArrayType{Elem: types.Union(parts...)}
}

func (e *Engine) objectType(o *parser.ObjectLiteral) types.Type {
	obj := types.NewObject("")
	for _, p := range o.Props {
		if p.Key == "" {
			continue
		}
		obj.Set(p.Key, e.exprType(p.Value))
	}
	return obj
}

func (e *Engine) arrowType(fn *parser.ArrowFunction) types.Type {
	if body, ok := fn.Body.(*parser.BlockStatement); ok {
		return e.functionType(fn.Params, body, fn.IsAsync, false)
	}
	ft := &types.FunctionType{IsAsync: fn.IsAsync}
	for _, p := range fn.Params {
		ft.Params = append(ft.Params, types.Param{Name: paramLabel(p), Type: e.paramType(p)})
	}
	ft.Return = e.exprType(fn.Body)
	return ft
}

func (e *Engine) unaryType(u *parser.UnaryExpression) types.Type {
	switch u.Op {
	case "!", "delete":
		return types.Bool
	case "typeof":
		return types.Str
	case "void":
		return types.Undefined
	case "-", "+", "~":
		return types.Num
	case "await":
		return e.awaitType(u.Arg)
	}
	return types.Any
}

// awaitType sees through a direct call of an async function to its
// declared return type; any other promise loses its payload type.
func (e *Engine) awaitType(arg parser.Expr) types.Type {
	if call, ok := arg.(*parser.CallExpression); ok {
		if ft, ok := e.exprType(call.Callee).(*types.FunctionType); ok && ft.IsAsync {
			return orAny(ft.Return)
		}
	}
	t := e.exprType(arg)
	if inst, ok := t.(*types.InstanceType); ok && inst.Of != nil && inst.Of.Name == "Promise" {
		return types.Any
	}
	return t
}

func (e *Engine) operatorType(op string, left, right parser.Expr) types.Type {
	switch op {
	case "+":
		lt, rt := e.exprType(left), e.exprType(right)
		if lt == types.Str || rt == types.Str {
			return types.Str
		}
		if lt == types.Num && rt == types.Num {
			return types.Num
		}
		return types.Any
	case "-", "*", "/", "%", "**", "&", "|", "^", "<<", ">>", ">>>":
		return types.Num
	case "==", "!=", "===", "!==", "<", ">", "<=", ">=", "instanceof", "in":
		return types.Bool
	case "&&", "||":
		return types.Union(e.exprType(left), e.exprType(right))
	case "??":
		return types.Union(nonNullish(e.exprType(left)), e.exprType(right))
	}
	return types.Any
}

// nonNullish strips null and undefined from a type, as `??` does from
// its left operand.
func nonNullish(t types.Type) types.Type {
	switch tt := t.(type) {
	case nil:
		return types.Never
	case *types.UnionType:
		var kept []types.Type
		for _, c := range tt.Constituents {
			if c != types.Null && c != types.Undefined {
				kept = append(kept, c)
			}
		}
		return types.Union(kept...)
	}
	if t == types.Null || t == types.Undefined {
		return types.Never
	}
	return t
}

func (e *Engine) callType(c *parser.CallExpression) types.Type {
	return e.CallResult(e.exprType(c.Callee))
}

// CallResult types the value produced by calling a callee of type t:
// the declared return for plain functions, a Promise for async ones,
// an instance when a class is called.
func (e *Engine) CallResult(t types.Type) types.Type {
	switch tt := t.(type) {
	case *types.FunctionType:
		if tt.IsGenerator {
			return types.Any
		}
		if tt.IsAsync {
			if promise, ok := builtins.ClassOf("Promise"); ok {
				return types.NewInstance(promise)
			}
			return types.Any
		}
		return orAny(tt.Return)
	case *types.ClassType:
		// calling a class without new still produces an instance here
		return types.NewInstance(tt)
	}
	return types.Any
}

func (e *Engine) newType(n *parser.NewExpression) types.Type {
	if ct, ok := e.exprType(n.Callee).(*types.ClassType); ok {
		return types.NewInstance(ct)
	}
	return types.Any
}

func (e *Engine) memberExprType(m *parser.MemberExpression) types.Type {
	if m.Computed() {
		return e.indexType(m)
	}
	if m.Property == nil {
		return types.Any
	}
	return e.MemberType(e.exprType(m.Object), m.Property.Name)
}

// indexType types `obj[index]` accesses: element types for arrays and
// strings, looked-up members for objects indexed by a string literal.
func (e *Engine) indexType(m *parser.MemberExpression) types.Type {
	switch ot := e.exprType(m.Object).(type) {
	case *types.ArrayType:
		if ot.Elem != nil && ot.Elem != types.Any {
			return ot.Elem
		}
		if hint := e.elemHint(m.Object); hint != nil {
			return hint
		}
		return orAny(ot.Elem)
	case *types.ObjectType:
		if key, ok := m.Index.(*parser.StringLiteral); ok {
			if mt, ok := ot.Lookup(key.Value); ok {
				return mt
			}
		}
		return types.Any
	default:
		if ot == types.Str {
			return types.Str
		}
	}
	return types.Any
}

// MemberType resolves one step of a member chain. Known types consult
// their intrinsic members first and the builtin method tables second;
// an unknown receiver falls back to the shared array/string hint set,
// so chains like `data.split(",").map(f)` stay useful without a type
// for data. Unions expose only their intersection members.
func (e *Engine) MemberType(t types.Type, name string) types.Type {
	if t == nil || t.Kind() == types.KindAny {
		return e.hintMember(name)
	}
	if mt, ok := types.LookupMember(t, name); ok {
		return orAny(mt)
	}
	if _, isUnion := t.(*types.UnionType); !isUnion {
		if m, ok := builtins.TableMember(t, name); ok {
			return builtins.Resolve(m, t)
		}
	}
	return types.Any
}

// hintMember resolves a member name against the generic array and
// string tables when the receiver type is unknown.
func (e *Engine) hintMember(name string) types.Type {
	if m, ok := builtins.TableMember(&types.ArrayType{}, name); ok {
		return builtins.Resolve(m, &types.ArrayType{})
	}
	if m, ok := builtins.TableMember(types.Str, name); ok {
		return builtins.Resolve(m, types.Str)
	}
	return types.Any
}
