package pii

import (
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
)

// CheckFunc runs the PII taint-flow checker over a function's body,
// seeding the environment with each parameter's declared label (spec.md
// §4.8).
func CheckFunc(fn *coreir.FuncDecl, sigs Signatures) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic
	env := NewEnv()
	for _, p := range fn.Params {
		env[p.Name] = MetaOfType(p.Type)
	}
	cache := NewCache()
	CheckBlock(fn.Body, env, sigs, cache, &diags)
	return diags
}

// CheckBlock walks a function's top-level Block, threading one
// environment through its statements in order.
func CheckBlock(b *coreir.Block, env Env, sigs Signatures, cache *Cache, diags *[]*diagnostics.Diagnostic) Env {
	if b == nil {
		return env
	}
	for _, s := range b.Statements {
		env = checkStmt(s, env, sigs, cache, diags)
	}
	return env
}

func checkScope(s *coreir.Scope, env Env, sigs Signatures, cache *Cache, diags *[]*diagnostics.Diagnostic) Env {
	if s == nil {
		return env
	}
	inner := env.Clone()
	for _, st := range s.Statements {
		inner = checkStmt(st, inner, sigs, cache, diags)
	}
	return inner
}

func checkStmt(s coreir.Stmt, env Env, sigs Signatures, cache *Cache, diags *[]*diagnostics.Diagnostic) Env {
	switch n := s.(type) {
	case nil:
		return env
	case *coreir.Block:
		return CheckBlock(n, env, sigs, cache, diags)
	case *coreir.Scope:
		return checkScope(n, env, sigs, cache, diags)
	case *coreir.LetStmt:
		valueMeta := Propagate(n.Value, env, sigs, cache, diags)
		out := env.Clone()
		if n.Type != nil {
			target := MetaOfType(n.Type)
			if d := cache.Classify(valueMeta, target); d == DecisionDowngrade {
				*diags = append(*diags, diagnostics.NewError(diagnostics.PiiAssignDowngrade, n.Span(), n.Name))
			} else if d == DecisionUplevel {
				*diags = append(*diags, diagnostics.NewError(diagnostics.PiiImplicitUplevel, n.Span(), n.Name))
			}
			out[n.Name] = target
		} else {
			out[n.Name] = valueMeta
		}
		return out
	case *coreir.SetStmt:
		valueMeta := Propagate(n.Value, env, sigs, cache, diags)
		out := env.Clone()
		if target, tracked := env.Lookup(n.Name); tracked {
			if d := cache.Classify(valueMeta, target); d == DecisionDowngrade {
				*diags = append(*diags, diagnostics.NewError(diagnostics.PiiAssignDowngrade, n.Span(), n.Name))
			} else if d == DecisionUplevel {
				*diags = append(*diags, diagnostics.NewError(diagnostics.PiiImplicitUplevel, n.Span(), n.Name))
			}
			out[n.Name] = Merge(target, valueMeta)
		} else {
			out[n.Name] = valueMeta
		}
		return out
	case *coreir.ReturnStmt:
		checkExprSinks(n.Value, env, sigs, cache, diags)
		Propagate(n.Value, env, sigs, cache, diags)
		return env
	case *coreir.IfStmt:
		checkExprSinks(n.Cond, env, sigs, cache, diags)
		thenEnv := checkScope(n.Then, env, sigs, cache, diags)
		elseEnv := env
		if n.Else != nil {
			elseEnv = checkScope(n.Else, env, sigs, cache, diags)
		}
		return MergeEnvs(thenEnv, elseEnv)
	case *coreir.MatchStmt:
		checkExprSinks(n.Subject, env, sigs, cache, diags)
		merged := env
		first := true
		for _, arm := range n.Arms {
			armEnv := checkScope(arm.Body, env, sigs, cache, diags)
			if first {
				merged = armEnv
				first = false
			} else {
				merged = MergeEnvs(merged, armEnv)
			}
		}
		return merged
	case *coreir.StartStmt:
		checkExprSinks(n.Call, env, sigs, cache, diags)
		Propagate(n.Call, env, sigs, cache, diags)
		return env
	case *coreir.WaitStmt:
		return env
	case *coreir.WorkflowStmt:
		for _, step := range n.Steps {
			env = checkStmt(step.Body, env, sigs, cache, diags)
			env = checkStmt(step.Compensate, env, sigs, cache, diags)
		}
		return env
	default:
		return env
	}
}

// checkExprSinks walks an expression tree for any direct sink call,
// applying the three sink rules (spec.md §4.8 "Sinks"). Nested calls
// inside arguments are also visited so a sink buried in an argument
// expression is still caught.
func checkExprSinks(e coreir.Expr, env Env, sigs Signatures, cache *Cache, diags *[]*diagnostics.Diagnostic) {
	call, ok := e.(*coreir.CallExpr)
	if !ok {
		return
	}
	if name, ok := calleeName(call.Callee); ok {
		CheckSinkCall(ClassifySink(name), call, env, sigs, cache, diags)
	}
	for _, a := range call.Args {
		checkExprSinks(a, env, sigs, cache, diags)
	}
}
