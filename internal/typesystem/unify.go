package typesystem

import (
	"fmt"

	"github.com/cnlforge/corelang/internal/coreir"
)

// MismatchError reports two types that do not unify.
type MismatchError struct {
	Left, Right coreir.Type
	Reason      string
}

func (e *MismatchError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot unify %s with %s: %s", Describe(e.Left), Describe(e.Right), e.Reason)
	}
	return fmt.Sprintf("cannot unify %s with %s", Describe(e.Left), Describe(e.Right))
}

// Unify finds the most general substitution making t1 and t2 equal,
// following spec.md §4.6's structural rules: same variant recurses on
// components; a free type variable unifies with any non-variable type
// by binding (occurs-checked); two variables unify by binding one to
// the other. Callers are expected to have already expanded type
// aliases in t1/t2 (spec.md §4.6 step 2) via symbols.ResolveTypeAlias.
func Unify(t1, t2 coreir.Type) (Subst, error) {
	if t1 == nil || t2 == nil {
		if t1 == nil && t2 == nil {
			return Subst{}, nil
		}
		return nil, &MismatchError{Left: t1, Right: t2}
	}

	if tv1, ok := t1.(*coreir.TypeVar); ok {
		return bind(tv1.Name, t2)
	}
	if tv2, ok := t2.(*coreir.TypeVar); ok {
		return bind(tv2.Name, t1)
	}

	switch n1 := t1.(type) {
	case *coreir.TypeName:
		n2, ok := t2.(*coreir.TypeName)
		if !ok || n1.Name != n2.Name {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		return Subst{}, nil

	case *coreir.TypeApp:
		n2, ok := t2.(*coreir.TypeApp)
		if !ok || n1.Name != n2.Name || len(n1.Args) != len(n2.Args) {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		return unifyAll(n1.Args, n2.Args)

	case *coreir.ResultType:
		n2, ok := t2.(*coreir.ResultType)
		if !ok {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		return unifyAll([]coreir.Type{n1.Ok, n1.Err}, []coreir.Type{n2.Ok, n2.Err})

	case *coreir.MaybeType:
		n2, ok := t2.(*coreir.MaybeType)
		if !ok {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		return Unify(n1.Elem, n2.Elem)

	case *coreir.OptionType:
		n2, ok := t2.(*coreir.OptionType)
		if !ok {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		return Unify(n1.Elem, n2.Elem)

	case *coreir.ListType:
		n2, ok := t2.(*coreir.ListType)
		if !ok {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		return Unify(n1.Elem, n2.Elem)

	case *coreir.MapType:
		n2, ok := t2.(*coreir.MapType)
		if !ok {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		return unifyAll([]coreir.Type{n1.Key, n1.Value}, []coreir.Type{n2.Key, n2.Value})

	case *coreir.FuncType:
		n2, ok := t2.(*coreir.FuncType)
		if !ok || len(n1.Params) != len(n2.Params) {
			return nil, &MismatchError{Left: t1, Right: t2}
		}
		s, err := unifyAll(n1.Params, n2.Params)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(Apply(n1.ReturnType, s), Apply(n2.ReturnType, s))
		if err != nil {
			return nil, err
		}
		return Compose(s2, s), nil

	case *coreir.PiiType:
		// The base type checker compares underlying types only; PII
		// sensitivity/category metadata is the taint-flow checker's
		// concern (spec.md §4.8), not base-type equality.
		if n2, ok := t2.(*coreir.PiiType); ok {
			return Unify(n1.Base, n2.Base)
		}
		return Unify(n1.Base, t2)
	}

	if n2, ok := t2.(*coreir.PiiType); ok {
		return Unify(t1, n2.Base)
	}

	return nil, &MismatchError{Left: t1, Right: t2}
}

// unifyAll unifies corresponding elements left-to-right, threading the
// accumulated substitution through each subsequent pair.
func unifyAll(ts1, ts2 []coreir.Type) (Subst, error) {
	s := Subst{}
	for i := range ts1 {
		a := Apply(ts1[i], s)
		b := Apply(ts2[i], s)
		next, err := Unify(a, b)
		if err != nil {
			return nil, err
		}
		s = Compose(next, s)
	}
	return s, nil
}

func bind(name string, t coreir.Type) (Subst, error) {
	if tv, ok := t.(*coreir.TypeVar); ok && tv.Name == name {
		return Subst{}, nil
	}
	if occurs(name, t) {
		return nil, &MismatchError{
			Left:   &coreir.TypeVar{Name: name},
			Right:  t,
			Reason: "infinite type",
		}
	}
	return Subst{name: t}, nil
}

// occurs reports whether name appears free in t (the occurs-check
// spec.md §4.6 requires before binding a type variable).
func occurs(name string, t coreir.Type) bool {
	for _, v := range FreeVars(t) {
		if v == name {
			return true
		}
	}
	return false
}

// Describe renders a coreir.Type for diagnostic messages.
func Describe(t coreir.Type) string {
	switch n := t.(type) {
	case nil:
		return "<nil>"
	case *coreir.TypeVar:
		return n.Name
	case *coreir.TypeName:
		return n.Name
	case *coreir.TypeApp:
		s := n.Name + "<"
		for i, a := range n.Args {
			if i > 0 {
				s += ", "
			}
			s += Describe(a)
		}
		return s + ">"
	case *coreir.ResultType:
		return fmt.Sprintf("Result<%s,%s>", Describe(n.Ok), Describe(n.Err))
	case *coreir.MaybeType:
		return fmt.Sprintf("Maybe<%s>", Describe(n.Elem))
	case *coreir.OptionType:
		return fmt.Sprintf("Option<%s>", Describe(n.Elem))
	case *coreir.ListType:
		return fmt.Sprintf("List<%s>", Describe(n.Elem))
	case *coreir.MapType:
		return fmt.Sprintf("Map<%s,%s>", Describe(n.Key), Describe(n.Value))
	case *coreir.FuncType:
		s := "Func<"
		for _, p := range n.Params {
			s += Describe(p) + ","
		}
		return s + Describe(n.ReturnType) + ">"
	case *coreir.PiiType:
		return Describe(n.Base)
	default:
		return "?"
	}
}

// Equal reports whether t1 and t2 are structurally identical up to
// alias expansion already performed by the caller (no free variables
// involved — used where the checker needs plain equality rather than
// unification, e.g. comparing If-branch value types).
func Equal(t1, t2 coreir.Type) bool {
	return Describe(t1) == Describe(t2)
}
