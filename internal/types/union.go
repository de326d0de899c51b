package types

// Union combines the given types into one. Nested unions are flattened,
// never is dropped, any absorbs everything, and structural duplicates
// collapse to their first occurrence. Zero surviving constituents yield
// Never; a single survivor is returned as-is.
func Union(parts ...Type) Type {
	var flat []Type
	var add func(t Type)
	add = func(t Type) {
		switch tt := t.(type) {
		case nil:
			return
		case *UnionType:
			for _, c := range tt.Constituents {
				add(c)
			}
		default:
			if t == Never {
				return
			}
			flat = append(flat, t)
		}
	}
	for _, p := range parts {
		add(p)
	}
	for _, t := range flat {
		if t == Any {
			return Any
		}
	}
	var uniq []Type
	for _, t := range flat {
		dup := false
		for _, u := range uniq {
			if Equal(t, u) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, t)
		}
	}
	switch len(uniq) {
	case 0:
		return Never
	case 1:
		return uniq[0]
	}
	return &UnionType{Constituents: uniq}
}

// Equal reports structural equality. Primitives are singletons, classes
// compare by identity, instances by class identity, and unions without
// regard to constituent order.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	switch at := a.(type) {
	case *ArrayType:
		return Equal(at.Elem, b.(*ArrayType).Elem)
	case *ObjectType:
		bo := b.(*ObjectType)
		if at.Len() != bo.Len() {
			return false
		}
		for _, m := range at.Members() {
			bt, ok := bo.Lookup(m.Name)
			if !ok || !Equal(m.Type, bt) {
				return false
			}
		}
		return true
	case *FunctionType:
		bf := b.(*FunctionType)
		if len(at.Params) != len(bf.Params) || at.IsAsync != bf.IsAsync || at.IsGenerator != bf.IsGenerator {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i].Type, bf.Params[i].Type) {
				return false
			}
		}
		return Equal(at.Return, bf.Return)
	case *InstanceType:
		return at.Of == b.(*InstanceType).Of
	case *UnionType:
		bu := b.(*UnionType)
		if len(at.Constituents) != len(bu.Constituents) {
			return false
		}
		for _, c := range at.Constituents {
			found := false
			for _, d := range bu.Constituents {
				if Equal(c, d) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
	// Primitives and classes are identity types; a == b above is the
	// only way they match.
	return false
}

// MembersOf returns the members intrinsic to t: object properties,
// class statics, instance members, or the union intersection. Builtin
// prototype members such as string and array methods are not part of
// the algebra; the inference engine layers those on separately.
func MembersOf(t Type) []Member {
	switch tt := t.(type) {
	case *ObjectType:
		return tt.Members()
	case *ClassType:
		return tt.StaticMembers()
	case *InstanceType:
		return tt.Of.InstanceMembers()
	case *UnionType:
		return tt.Members()
	}
	return nil
}

// LookupMember resolves one named member of t, mirroring MembersOf.
func LookupMember(t Type, name string) (Type, bool) {
	switch tt := t.(type) {
	case *ObjectType:
		return tt.Lookup(name)
	case *ClassType:
		return tt.LookupStatic(name)
	case *InstanceType:
		return tt.Of.LookupInstance(name)
	case *UnionType:
		for _, m := range tt.Members() {
			if m.Name == name {
				return m.Type, true
			}
		}
	}
	return nil, false
}

// Members returns the properties present on every constituent, ordered
// as they appear on the first one. A member keeps its type when all
// constituents agree and degrades to any otherwise; agreement is a
// plain equality check, nothing deeper.
func (u *UnionType) Members() []Member {
	if len(u.Constituents) == 0 {
		return nil
	}
	var out []Member
	for _, m := range MembersOf(u.Constituents[0]) {
		shared, agreed := true, true
		for _, c := range u.Constituents[1:] {
			ct, ok := LookupMember(c, m.Name)
			if !ok {
				shared = false
				break
			}
			if !Equal(m.Type, ct) {
				agreed = false
			}
		}
		if !shared {
			continue
		}
		mt := m.Type
		if !agreed {
			mt = Any
		}
		out = append(out, Member{Name: m.Name, Type: mt})
	}
	return out
}

// AssignableTo reports whether a value of type src can stand where dst
// is expected. any is compatible in both directions, a union source
// must match constituent by constituent, a union target accepts any
// single match, and instances widen along their superclass chain.
// Unknown (nil) types are treated as compatible.
func AssignableTo(src, dst Type) bool {
	if src == nil || dst == nil {
		return true
	}
	if src == Any || dst == Any {
		return true
	}
	if Equal(src, dst) {
		return true
	}
	if su, ok := src.(*UnionType); ok {
		for _, c := range su.Constituents {
			if !AssignableTo(c, dst) {
				return false
			}
		}
		return true
	}
	if du, ok := dst.(*UnionType); ok {
		for _, c := range du.Constituents {
			if AssignableTo(src, c) {
				return true
			}
		}
		return false
	}
	switch s := src.(type) {
	case *InstanceType:
		if d, ok := dst.(*InstanceType); ok {
			for c := s.Of; c != nil; c = c.Super {
				if c == d.Of {
					return true
				}
			}
		}
	case *ArrayType:
		if d, ok := dst.(*ArrayType); ok {
			return AssignableTo(s.Elem, d.Elem)
		}
	}
	return false
}
