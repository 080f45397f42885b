// Package typesystem implements the Hindley-Milner-style unifier
// spec.md §4.6 names for generic call typing. It operates directly on
// coreir.Type rather than introducing a parallel type representation:
// the Core IR's type family already covers every variant the base
// type checker needs to compare (TypeName, TypeVar, TypeApp, FuncType,
// ResultType, MaybeType, OptionType, ListType, MapType, PiiType), so a
// second Type interface would just be a duplicate encoding to keep in
// sync. Grounded on the teacher's internal/typesystem package (Subst,
// Apply-with-cycle-check, Bind/OccursCheck, structural Unify), trimmed
// to drop the teacher's TRecord/TUnion/TForall/Kind machinery — this
// spec's type grammar has no records, unions, or higher-kinded types.
package typesystem

import "github.com/cnlforge/corelang/internal/coreir"

// Subst maps a TypeVar's name to the type it stands for.
type Subst map[string]coreir.Type

// Compose merges two substitutions: every binding of s2 is kept, and
// every binding of s1 is added with s2 applied to its right-hand side,
// replacing s2's binding where both bind the same variable.
func Compose(s1, s2 Subst) Subst {
	out := make(Subst, len(s1)+len(s2))
	for k, v := range s2 {
		out[k] = v
	}
	for k, v := range s1 {
		out[k] = Apply(v, s2)
	}
	return out
}

// Apply substitutes every TypeVar in t according to s, cycle-safely:
// a substitution that (through a chain of bindings) would revisit a
// variable it's already expanding returns that variable unexpanded
// rather than recursing forever.
func Apply(t coreir.Type, s Subst) coreir.Type {
	return applyVisited(t, s, map[string]bool{})
}

func applyVisited(t coreir.Type, s Subst, visited map[string]bool) coreir.Type {
	switch n := t.(type) {
	case nil:
		return nil
	case *coreir.TypeVar:
		if visited[n.Name] {
			return n
		}
		repl, ok := s[n.Name]
		if !ok {
			return n
		}
		if tv, ok := repl.(*coreir.TypeVar); ok && tv.Name == n.Name {
			return n
		}
		visited[n.Name] = true
		defer delete(visited, n.Name)
		return applyVisited(repl, s, visited)
	case *coreir.TypeName:
		return n
	case *coreir.TypeApp:
		args := make([]coreir.Type, len(n.Args))
		for i, a := range n.Args {
			args[i] = applyVisited(a, s, visited)
		}
		return &coreir.TypeApp{TypeSpan: n.TypeSpan, Name: n.Name, Args: args}
	case *coreir.ResultType:
		return &coreir.ResultType{
			TypeSpan: n.TypeSpan,
			Ok:       applyVisited(n.Ok, s, visited),
			Err:      applyVisited(n.Err, s, visited),
		}
	case *coreir.MaybeType:
		return &coreir.MaybeType{TypeSpan: n.TypeSpan, Elem: applyVisited(n.Elem, s, visited)}
	case *coreir.OptionType:
		return &coreir.OptionType{TypeSpan: n.TypeSpan, Elem: applyVisited(n.Elem, s, visited)}
	case *coreir.ListType:
		return &coreir.ListType{TypeSpan: n.TypeSpan, Elem: applyVisited(n.Elem, s, visited)}
	case *coreir.MapType:
		return &coreir.MapType{
			TypeSpan: n.TypeSpan,
			Key:      applyVisited(n.Key, s, visited),
			Value:    applyVisited(n.Value, s, visited),
		}
	case *coreir.FuncType:
		params := make([]coreir.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = applyVisited(p, s, visited)
		}
		return &coreir.FuncType{
			TypeSpan:   n.TypeSpan,
			Params:     params,
			ReturnType: applyVisited(n.ReturnType, s, visited),
		}
	case *coreir.PiiType:
		return &coreir.PiiType{
			TypeSpan:   n.TypeSpan,
			Base:       applyVisited(n.Base, s, visited),
			Level:      n.Level,
			Categories: n.Categories,
		}
	default:
		return t
	}
}

// FreeVars collects the distinct TypeVar names that occur free in t, in
// first-occurrence order.
func FreeVars(t coreir.Type) []string {
	var order []string
	seen := map[string]bool{}
	collectFreeVars(t, seen, &order)
	return order
}

func collectFreeVars(t coreir.Type, seen map[string]bool, order *[]string) {
	switch n := t.(type) {
	case nil:
		return
	case *coreir.TypeVar:
		if !seen[n.Name] {
			seen[n.Name] = true
			*order = append(*order, n.Name)
		}
	case *coreir.TypeName:
		return
	case *coreir.TypeApp:
		for _, a := range n.Args {
			collectFreeVars(a, seen, order)
		}
	case *coreir.ResultType:
		collectFreeVars(n.Ok, seen, order)
		collectFreeVars(n.Err, seen, order)
	case *coreir.MaybeType:
		collectFreeVars(n.Elem, seen, order)
	case *coreir.OptionType:
		collectFreeVars(n.Elem, seen, order)
	case *coreir.ListType:
		collectFreeVars(n.Elem, seen, order)
	case *coreir.MapType:
		collectFreeVars(n.Key, seen, order)
		collectFreeVars(n.Value, seen, order)
	case *coreir.FuncType:
		for _, p := range n.Params {
			collectFreeVars(p, seen, order)
		}
		collectFreeVars(n.ReturnType, seen, order)
	case *coreir.PiiType:
		collectFreeVars(n.Base, seen, order)
	}
}
