package effects

import (
	"github.com/cnlforge/corelang/internal/config"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/symbols"
	"github.com/cnlforge/corelang/internal/token"
)

// CallSite records one call that triggered a capability, for the
// "sample of calls" spec.md §4.7 wants in CAPABILITY_INFER_MISSING_IO.
type CallSite struct {
	Callee string
	Span   token.Span
}

// Capabilities maps a capability name to every call site that used it.
type Capabilities map[string][]CallSite

func (c Capabilities) record(name string, site CallSite) {
	c[name] = append(c[name], site)
}

// Names returns the capability names present, in a stable order.
func (c Capabilities) Names() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	return sortedStrings(out)
}

func sortedStrings(ss []string) []string {
	out := append([]string{}, ss...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// InferBody walks every statement/expression reachable from body and
// returns the joined effect, recording capability usage into caps
// along the way (spec.md §4.7's "inference walks the function body and
// records, per capability, the calls that triggered it"). scope is the
// function's own scope, used to resolve a callee's declaredEffect.
func InferBody(body *coreir.Block, scope *symbols.Scope, caps Capabilities) Effect {
	if body == nil {
		return Pure
	}
	eff := Pure
	for _, s := range body.Statements {
		eff = Join(eff, inferStmt(s, scope, caps))
	}
	return eff
}

// InferStmt infers the effect of a single statement (including the
// Step.Body/Compensate shape, which is a bare Stmt rather than a
// *Block), recording capability usage into caps.
func InferStmt(s coreir.Stmt, scope *symbols.Scope, caps Capabilities) Effect {
	return inferStmt(s, scope, caps)
}

func inferStmt(s coreir.Stmt, scope *symbols.Scope, caps Capabilities) Effect {
	switch n := s.(type) {
	case nil:
		return Pure
	case *coreir.Block:
		return InferBody(n, scope, caps)
	case *coreir.Scope:
		if n == nil {
			return Pure
		}
		eff := Pure
		for _, st := range n.Statements {
			eff = Join(eff, inferStmt(st, scope, caps))
		}
		return eff
	case *coreir.LetStmt:
		return inferExpr(n.Value, scope, caps)
	case *coreir.SetStmt:
		return inferExpr(n.Value, scope, caps)
	case *coreir.ReturnStmt:
		return inferExpr(n.Value, scope, caps)
	case *coreir.IfStmt:
		eff := inferExpr(n.Cond, scope, caps)
		eff = Join(eff, inferStmt(n.Then, scope, caps))
		eff = Join(eff, inferStmt(n.Else, scope, caps))
		return eff
	case *coreir.MatchStmt:
		eff := inferExpr(n.Subject, scope, caps)
		for _, arm := range n.Arms {
			eff = Join(eff, inferStmt(arm.Body, scope, caps))
		}
		return eff
	case *coreir.StartStmt:
		return Join(Async, inferExpr(n.Call, scope, caps))
	case *coreir.WaitStmt:
		return Async
	case *coreir.WorkflowStmt:
		eff := IO
		for _, step := range n.Steps {
			eff = Join(eff, inferStmt(step.Body, scope, caps))
			eff = Join(eff, inferStmt(step.Compensate, scope, caps))
		}
		return eff
	default:
		return Pure
	}
}

func inferExpr(e coreir.Expr, scope *symbols.Scope, caps Capabilities) Effect {
	switch n := e.(type) {
	case nil:
		return Pure
	case *coreir.NameExpr, *coreir.BoolExpr, *coreir.IntExpr, *coreir.LongExpr,
		*coreir.DoubleExpr, *coreir.StringExpr, *coreir.NullExpr:
		return Pure
	case *coreir.CallExpr:
		return inferCall(n, scope, caps)
	case *coreir.ConstructExpr:
		eff := Pure
		for _, v := range n.FieldVals {
			eff = Join(eff, inferExpr(v, scope, caps))
		}
		return eff
	case *coreir.OkExpr:
		return inferExpr(n.Value, scope, caps)
	case *coreir.ErrExpr:
		return inferExpr(n.Value, scope, caps)
	case *coreir.SomeExpr:
		return inferExpr(n.Value, scope, caps)
	case *coreir.NoneExpr:
		return Pure
	case *coreir.LambdaExpr:
		return InferBody(n.Body, scope, caps)
	case *coreir.AwaitExpr:
		return Async
	default:
		return Pure
	}
}

// inferCall implements spec.md §4.7's three-step rule: declared effect
// of a symbol first, then configured io/cpu prefix match, else
// propagate the arguments' effects. It also records the capability
// this call implies, if any.
func inferCall(call *coreir.CallExpr, scope *symbols.Scope, caps Capabilities) Effect {
	argsEffect := Pure
	for _, a := range call.Args {
		argsEffect = Join(argsEffect, inferExpr(a, scope, caps))
	}

	name, ok := call.Callee.(*coreir.NameExpr)
	if !ok {
		return argsEffect
	}

	if scope != nil {
		if sym, found := scope.Lookup(name.Value); found && sym.DeclaredEffect != "" {
			if cap, ok := config.CapabilityForCallee(name.Value); ok {
				caps.record(cap, CallSite{Callee: name.Value, Span: call.Span()})
			}
			return Join(ParseEffect(sym.DeclaredEffect), argsEffect)
		}
	}

	if cap, ok := config.CapabilityForCallee(name.Value); ok {
		caps.record(cap, CallSite{Callee: name.Value, Span: call.Span()})
		if cap == "Cpu" {
			return Join(Cpu, argsEffect)
		}
		return Join(IO, argsEffect)
	}

	return argsEffect
}
