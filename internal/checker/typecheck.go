package checker

import (
	"fmt"

	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/symbols"
	"github.com/cnlforge/corelang/internal/typesystem"
)

// ctx threads the diagnostic sink and a fresh-type-variable counter
// through one function's base type check (spec.md §4.6).
type ctx struct {
	diags   *[]*diagnostics.Diagnostic
	counter *int
}

// newCtx builds a checking context that appends into diags, the
// shared per-module diagnostic buffer.
func newCtx(diags *[]*diagnostics.Diagnostic) *ctx {
	n := 0
	return &ctx{diags: diags, counter: &n}
}

func (c *ctx) fresh() string {
	*c.counter++
	return fmt.Sprintf("T%d", *c.counter)
}

// TypeExpr computes an expression's base type, emitting diagnostics
// for undefined names, arity mismatches, and unification failures
// along the way (spec.md §4.6 "Expression typing").
func TypeExpr(e coreir.Expr, scope *symbols.Scope, c *ctx) coreir.Type {
	switch n := e.(type) {
	case nil:
		return nullType
	case *coreir.BoolExpr:
		return boolType
	case *coreir.IntExpr:
		return intType
	case *coreir.LongExpr:
		return longType
	case *coreir.DoubleExpr:
		return doubleType
	case *coreir.StringExpr:
		return stringType
	case *coreir.NullExpr:
		return nullType
	case *coreir.NameExpr:
		sym, ok := scope.Lookup(n.Value)
		if !ok {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.UndefinedVariable, n.Span(), n.Value))
			return unknownType
		}
		return sym.Type
	case *coreir.OkExpr:
		return &coreir.ResultType{Ok: TypeExpr(n.Value, scope, c), Err: unknownType}
	case *coreir.ErrExpr:
		return &coreir.ResultType{Ok: unknownType, Err: TypeExpr(n.Value, scope, c)}
	case *coreir.SomeExpr:
		return &coreir.OptionType{Elem: TypeExpr(n.Value, scope, c)}
	case *coreir.NoneExpr:
		return &coreir.OptionType{Elem: unknownType}
	case *coreir.ConstructExpr:
		for _, f := range n.FieldVals {
			TypeExpr(f, scope, c)
		}
		return &coreir.TypeName{Name: n.TypeName}
	case *coreir.LambdaExpr:
		return typeLambda(n, scope, c)
	case *coreir.AwaitExpr:
		sym, ok := scope.Lookup(n.Task)
		if !ok {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.UndefinedVariable, n.Span(), n.Task))
			return unknownType
		}
		if sym.Kind != symbols.SymTask {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.AwaitType, n.Span(), typesystem.Describe(sym.Type)))
		}
		return sym.Type
	case *coreir.CallExpr:
		return typeCall(n, scope, c)
	default:
		return unknownType
	}
}

func typeLambda(n *coreir.LambdaExpr, scope *symbols.Scope, c *ctx) coreir.Type {
	inner := scope.EnterScope(symbols.ScopeFunction)
	paramTypes := make([]coreir.Type, len(n.Params))
	for i, p := range n.Params {
		inner.Define(p.Name, p.Type, symbols.SymParam, symbols.DefineOptions{Mutable: false, Span: p.Span()})
		paramTypes[i] = p.Type
	}
	bodyType, hasValue := typeBlockValue(n.Body.Statements, inner, c)
	declared := expandAliases(n.ReturnType, inner)
	if hasValue && !typesystem.Equal(expandAliases(bodyType, inner), declared) {
		*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.ReturnTypeMismatch, n.Span(),
			typesystem.Describe(declared), typesystem.Describe(bodyType)))
	}
	return &coreir.FuncType{Params: paramTypes, ReturnType: n.ReturnType}
}

// typeCall implements spec.md §4.6's four-step Call rule.
func typeCall(call *coreir.CallExpr, scope *symbols.Scope, c *ctx) coreir.Type {
	argTypes := make([]coreir.Type, len(call.Args))
	for i, a := range call.Args {
		argTypes[i] = TypeExpr(a, scope, c)
	}

	name, isName := calleeName(call.Callee)
	if isName && name == "not" {
		if len(call.Args) != 1 {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.NotCallArity, call.Span(), len(call.Args)))
		}
		return boolType
	}

	var fnType *coreir.FuncType
	if isName && typesystem.IsOperatorName(name) {
		fnType, _ = typesystem.BuiltinSignature(name, c.fresh)
	} else if isName {
		sym, ok := scope.Lookup(name)
		if !ok {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.UndefinedVariable, call.Span(), name))
			return unknownType
		}
		ft, ok := sym.Type.(*coreir.FuncType)
		if !ok {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.TypeMismatch, call.Span(), "function", typesystem.Describe(sym.Type)))
			return unknownType
		}
		fnType = ft
	} else {
		calleeType := TypeExpr(call.Callee, scope, c)
		ft, ok := calleeType.(*coreir.FuncType)
		if !ok {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.TypeMismatch, call.Span(), "function", typesystem.Describe(calleeType)))
			return unknownType
		}
		fnType = ft
	}

	params := make([]coreir.Type, len(fnType.Params))
	for i, p := range fnType.Params {
		params[i] = expandAliases(p, scope)
	}
	returnType := expandAliases(fnType.ReturnType, scope)
	expandedArgs := make([]coreir.Type, len(argTypes))
	for i, a := range argTypes {
		expandedArgs[i] = expandAliases(a, scope)
	}

	if containsTypeVar(params) || containsTypeVar([]coreir.Type{returnType}) {
		subst := typesystem.Subst{}
		n := len(params)
		if len(expandedArgs) < n {
			n = len(expandedArgs)
		}
		for i := 0; i < n; i++ {
			p := typesystem.Apply(params[i], subst)
			s, err := typesystem.Unify(p, expandedArgs[i])
			if err != nil {
				*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.TypevarInconsistent, call.Span(),
					describeParam(params[i]), typesystem.Describe(p), typesystem.Describe(expandedArgs[i])))
				continue
			}
			subst = typesystem.Compose(subst, s)
		}
		return typesystem.Apply(returnType, subst)
	}

	for i, p := range params {
		if i >= len(expandedArgs) {
			break
		}
		if !typesystem.Equal(p, expandedArgs[i]) {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.TypeMismatch, call.Span(),
				typesystem.Describe(p), typesystem.Describe(expandedArgs[i])))
		}
	}
	return returnType
}

func describeParam(t coreir.Type) string {
	if tv, ok := t.(*coreir.TypeVar); ok {
		return tv.Name
	}
	return typesystem.Describe(t)
}

func containsTypeVar(ts []coreir.Type) bool {
	for _, t := range ts {
		if hasTypeVar(t) {
			return true
		}
	}
	return false
}

func hasTypeVar(t coreir.Type) bool {
	switch n := t.(type) {
	case nil:
		return false
	case *coreir.TypeVar:
		return true
	case *coreir.TypeApp:
		for _, a := range n.Args {
			if hasTypeVar(a) {
				return true
			}
		}
		return false
	case *coreir.ResultType:
		return hasTypeVar(n.Ok) || hasTypeVar(n.Err)
	case *coreir.MaybeType:
		return hasTypeVar(n.Elem)
	case *coreir.OptionType:
		return hasTypeVar(n.Elem)
	case *coreir.ListType:
		return hasTypeVar(n.Elem)
	case *coreir.MapType:
		return hasTypeVar(n.Key) || hasTypeVar(n.Value)
	case *coreir.FuncType:
		for _, p := range n.Params {
			if hasTypeVar(p) {
				return true
			}
		}
		return hasTypeVar(n.ReturnType)
	case *coreir.PiiType:
		return hasTypeVar(n.Base)
	default:
		return false
	}
}

func calleeName(e coreir.Expr) (string, bool) {
	if n, ok := e.(*coreir.NameExpr); ok {
		return n.Value, true
	}
	return "", false
}
