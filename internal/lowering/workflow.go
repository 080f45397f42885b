package lowering

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/config"
	"github.com/cnlforge/corelang/internal/coreir"
)

// lowerWorkflow lowers a Workflow and its Steps, defaulting each
// step's dependency to its textual predecessor when none is written
// and aggregating observed capabilities bottom-up (spec.md §4.4).
func lowerWorkflow(n *ast.WorkflowStmt) *coreir.WorkflowStmt {
	steps := make([]*coreir.Step, 0, len(n.Steps))
	var all []string
	seen := map[string]bool{}

	for i, s := range n.Steps {
		body := lowerStmt(s.Body)
		compensate := lowerStmt(s.Compensate)

		dependsOn := s.DependsOn
		if len(dependsOn) == 0 && i > 0 {
			dependsOn = []string{n.Steps[i-1].Name}
		}

		caps := map[string]bool{}
		collectCapabilities(body, caps)
		collectCapabilities(compensate, caps)
		capList := sortedKeys(caps)

		for _, c := range capList {
			if !seen[c] {
				seen[c] = true
				all = append(all, c)
			}
		}

		var retry *coreir.RetryPolicy
		if s.Retry != nil {
			retry = &coreir.RetryPolicy{MaxAttempts: s.Retry.MaxAttempts, Backoff: s.Retry.Backoff}
		}

		steps = append(steps, &coreir.Step{
			StepSpan:     s.StepSpan,
			Name:         s.Name,
			Body:         body,
			Compensate:   compensate,
			Retry:        retry,
			Timeout:      s.Timeout,
			DependsOn:    dependsOn,
			Capabilities: capList,
		})
	}

	return &coreir.WorkflowStmt{
		StmtSpan:             n.StmtSpan,
		Name:                 n.Name,
		Steps:                steps,
		Effect:               n.Effect,
		Capabilities:         n.Capabilities,
		InferredCapabilities: sortedKeys(seen),
	}
}

// collectCapabilities walks a lowered statement tree and records every
// capability config.CapabilityForCallee recognizes among its Call
// expressions (spec.md §4.7 rule 2, reused here per §4.4's Step
// aggregation requirement).
func collectCapabilities(s coreir.Stmt, out map[string]bool) {
	switch n := s.(type) {
	case nil:
		return
	case *coreir.Block:
		for _, st := range n.Statements {
			collectCapabilities(st, out)
		}
	case *coreir.Scope:
		for _, st := range n.Statements {
			collectCapabilities(st, out)
		}
	case *coreir.LetStmt:
		collectExprCapabilities(n.Value, out)
	case *coreir.SetStmt:
		collectExprCapabilities(n.Value, out)
	case *coreir.ReturnStmt:
		collectExprCapabilities(n.Value, out)
	case *coreir.IfStmt:
		collectExprCapabilities(n.Cond, out)
		collectCapabilities(n.Then, out)
		collectCapabilities(n.Else, out)
	case *coreir.MatchStmt:
		collectExprCapabilities(n.Subject, out)
		for _, arm := range n.Arms {
			collectCapabilities(arm.Body, out)
		}
	case *coreir.StartStmt:
		collectExprCapabilities(n.Call, out)
	case *coreir.WaitStmt:
		// no expression to walk
	case *coreir.WorkflowStmt:
		for _, st := range n.Steps {
			collectCapabilities(st.Body, out)
			collectCapabilities(st.Compensate, out)
		}
	}
}

func collectExprCapabilities(e coreir.Expr, out map[string]bool) {
	switch n := e.(type) {
	case nil:
		return
	case *coreir.CallExpr:
		if name, ok := n.Callee.(*coreir.NameExpr); ok {
			if cap, ok := config.CapabilityForCallee(name.Value); ok {
				out[cap] = true
			}
		}
		collectExprCapabilities(n.Callee, out)
		for _, a := range n.Args {
			collectExprCapabilities(a, out)
		}
	case *coreir.ConstructExpr:
		for _, v := range n.FieldVals {
			collectExprCapabilities(v, out)
		}
	case *coreir.OkExpr:
		collectExprCapabilities(n.Value, out)
	case *coreir.ErrExpr:
		collectExprCapabilities(n.Value, out)
	case *coreir.SomeExpr:
		collectExprCapabilities(n.Value, out)
	case *coreir.LambdaExpr:
		collectCapabilities(n.Body, out)
	}
}
