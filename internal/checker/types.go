// Package checker implements spec.md §4.6's base type checker with
// generics, orchestrating it together with the effect, capability,
// PII, and async checkers (§4.7-§4.10) into one diagnostic buffer per
// module. Grounded on the teacher's internal/analyzer package: an
// Analyzer/walker split that threads one diagnostic slice through a
// tree walk, generalized here from the teacher's dynamic-typing walk
// to a statically-typed one built on internal/symbols and
// internal/typesystem.
package checker

import "github.com/cnlforge/corelang/internal/coreir"

var (
	boolType   = &coreir.TypeName{Name: "Bool"}
	intType    = &coreir.TypeName{Name: "Int"}
	longType   = &coreir.TypeName{Name: "Long"}
	doubleType = &coreir.TypeName{Name: "Double"}
	stringType = &coreir.TypeName{Name: "String"}
	nullType   = &coreir.TypeName{Name: "Null"}
	unknownType = &coreir.TypeName{Name: "Unknown"}
)

// expandAliases replaces every TypeName in t with its alias expansion
// (a no-op for a name that isn't a registered alias, since
// Scope.ResolveTypeAlias returns the name unchanged in that case),
// recursing through the full coreir.Type family the way
// symbols.resolveWithCycleCheck does internally for a single alias.
func expandAliases(t coreir.Type, scope scopeResolver) coreir.Type {
	switch n := t.(type) {
	case nil:
		return nil
	case *coreir.TypeName:
		return scope.ResolveTypeAlias(n.Name)
	case *coreir.TypeApp:
		args := make([]coreir.Type, len(n.Args))
		for i, a := range n.Args {
			args[i] = expandAliases(a, scope)
		}
		return &coreir.TypeApp{TypeSpan: n.TypeSpan, Name: n.Name, Args: args}
	case *coreir.ResultType:
		return &coreir.ResultType{TypeSpan: n.TypeSpan, Ok: expandAliases(n.Ok, scope), Err: expandAliases(n.Err, scope)}
	case *coreir.MaybeType:
		return &coreir.MaybeType{TypeSpan: n.TypeSpan, Elem: expandAliases(n.Elem, scope)}
	case *coreir.OptionType:
		return &coreir.OptionType{TypeSpan: n.TypeSpan, Elem: expandAliases(n.Elem, scope)}
	case *coreir.ListType:
		return &coreir.ListType{TypeSpan: n.TypeSpan, Elem: expandAliases(n.Elem, scope)}
	case *coreir.MapType:
		return &coreir.MapType{TypeSpan: n.TypeSpan, Key: expandAliases(n.Key, scope), Value: expandAliases(n.Value, scope)}
	case *coreir.FuncType:
		params := make([]coreir.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = expandAliases(p, scope)
		}
		return &coreir.FuncType{TypeSpan: n.TypeSpan, Params: params, ReturnType: expandAliases(n.ReturnType, scope)}
	case *coreir.PiiType:
		return &coreir.PiiType{TypeSpan: n.TypeSpan, Base: expandAliases(n.Base, scope), Level: n.Level, Categories: n.Categories}
	default:
		return t
	}
}

// scopeResolver is the one symbols.Scope method expandAliases needs,
// narrowed to an interface.
type scopeResolver interface {
	ResolveTypeAlias(name string) coreir.Type
}
