package pii

import (
	"github.com/cnlforge/corelang/internal/config"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
)

// Signatures looks up a callee's declared per-parameter and return PII
// metas by name, so Call propagation never needs to reconstruct a
// coreir.FuncType from scratch.
type Signatures map[string]*coreir.FuncDecl

// ParamMeta returns the declared meta of a callee's i'th parameter.
func (s Signatures) ParamMeta(callee string, i int) (Meta, bool) {
	fn, ok := s[callee]
	if !ok || i >= len(fn.Params) {
		return Meta{}, false
	}
	return MetaOfType(fn.Params[i].Type), true
}

// ReturnMeta returns the declared meta of a callee's return type.
func (s Signatures) ReturnMeta(callee string) (Meta, bool) {
	fn, ok := s[callee]
	if !ok {
		return Meta{}, false
	}
	return MetaOfType(fn.ReturnType), true
}

// Propagate computes an expression's PII meta (spec.md §4.8
// "Propagation" and "Calls"), recording any call-argument-compatibility
// violation it finds along the way.
func Propagate(e coreir.Expr, env Env, sigs Signatures, cache *Cache, diags *[]*diagnostics.Diagnostic) Meta {
	switch n := e.(type) {
	case nil:
		return UnsetMeta()
	case *coreir.BoolExpr, *coreir.IntExpr, *coreir.LongExpr, *coreir.DoubleExpr, *coreir.StringExpr, *coreir.NullExpr:
		return UnsetMeta()
	case *coreir.NameExpr:
		if m, ok := env.Lookup(n.Value); ok {
			return m
		}
		return UnsetMeta()
	case *coreir.OkExpr:
		return Propagate(n.Value, env, sigs, cache, diags)
	case *coreir.ErrExpr:
		return Propagate(n.Value, env, sigs, cache, diags)
	case *coreir.SomeExpr:
		return Propagate(n.Value, env, sigs, cache, diags)
	case *coreir.NoneExpr:
		return UnsetMeta()
	case *coreir.ConstructExpr:
		metas := make([]Meta, len(n.FieldVals))
		for i, f := range n.FieldVals {
			metas[i] = Propagate(f, env, sigs, cache, diags)
		}
		return MergeAll(metas)
	case *coreir.LambdaExpr:
		inner := NewEnv()
		for _, p := range n.Params {
			inner[p.Name] = MetaOfType(p.Type)
		}
		for _, c := range n.Captures {
			if m, ok := env.Lookup(c); ok {
				inner[c] = m
			}
		}
		CheckBlock(n.Body, inner, sigs, cache, diags)
		return UnsetMeta()
	case *coreir.AwaitExpr:
		return UnsetMeta()
	case *coreir.CallExpr:
		return propagateCall(n, env, sigs, cache, diags)
	default:
		return UnsetMeta()
	}
}

func propagateCall(call *coreir.CallExpr, env Env, sigs Signatures, cache *Cache, diags *[]*diagnostics.Diagnostic) Meta {
	name, ok := calleeName(call.Callee)
	argMetas := make([]Meta, len(call.Args))
	for i, a := range call.Args {
		argMetas[i] = Propagate(a, env, sigs, cache, diags)
	}

	if ok && config.SanitizerFunctions[name] {
		return Sanitize(MergeAll(argMetas))
	}

	if !ok {
		return MergeAll(argMetas)
	}

	for i, m := range argMetas {
		paramMeta, found := sigs.ParamMeta(name, i)
		if !found {
			continue
		}
		if d := cache.Classify(m, paramMeta); d != DecisionOK {
			*diags = append(*diags, diagnostics.NewError(diagnostics.PiiArgViolation, call.Span(), name))
		}
	}

	if retMeta, found := sigs.ReturnMeta(name); found {
		return retMeta
	}
	return MergeAll(argMetas)
}

func calleeName(e coreir.Expr) (string, bool) {
	if n, ok := e.(*coreir.NameExpr); ok {
		return n.Value, true
	}
	return "", false
}
