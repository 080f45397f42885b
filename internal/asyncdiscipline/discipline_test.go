package asyncdiscipline_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/asyncdiscipline"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
)

func block(stmts ...coreir.Stmt) *coreir.Block {
	return &coreir.Block{Statements: stmts}
}

func TestStartWithoutWait(t *testing.T) {
	body := block(&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}})
	diags := asyncdiscipline.Check(body)
	if !has(diags, "ASYNC_START_NOT_WAITED") {
		t.Fatalf("expected ASYNC_START_NOT_WAITED, got %v", codesOf(diags))
	}
}

func TestWaitWithoutStart(t *testing.T) {
	body := block(&coreir.WaitStmt{Task: "t1", Name: "result"})
	diags := asyncdiscipline.Check(body)
	if !has(diags, "ASYNC_WAIT_NOT_STARTED") {
		t.Fatalf("expected ASYNC_WAIT_NOT_STARTED, got %v", codesOf(diags))
	}
}

func TestMatchedStartWaitIsClean(t *testing.T) {
	body := block(
		&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}},
		&coreir.WaitStmt{Task: "t1", Name: "result"},
	)
	diags := asyncdiscipline.Check(body)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics for matched start/wait, got %v", codesOf(diags))
	}
}

func TestDuplicateStart(t *testing.T) {
	body := block(
		&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}},
		&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}},
		&coreir.WaitStmt{Task: "t1", Name: "result"},
	)
	diags := asyncdiscipline.Check(body)
	if !has(diags, "ASYNC_DUPLICATE_START") {
		t.Fatalf("expected ASYNC_DUPLICATE_START, got %v", codesOf(diags))
	}
}

func TestDuplicateWaitIsWarning(t *testing.T) {
	body := block(
		&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}},
		&coreir.WaitStmt{Task: "t1", Name: "result"},
		&coreir.WaitStmt{Task: "t1", Name: "result2"},
	)
	diags := asyncdiscipline.Check(body)
	for _, d := range diags {
		if string(d.Code) == "ASYNC_DUPLICATE_WAIT" {
			if d.Severity != diagnostics.Warning {
				t.Fatalf("expected ASYNC_DUPLICATE_WAIT to default to warning severity, got %v", d.Severity)
			}
			return
		}
	}
	t.Fatalf("expected ASYNC_DUPLICATE_WAIT, got %v", codesOf(diags))
}

func TestIfBranchDivergenceWarns(t *testing.T) {
	then := &coreir.Scope{Statements: []coreir.Stmt{
		&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}},
		&coreir.WaitStmt{Task: "t1", Name: "r"},
	}}
	els := &coreir.Scope{}
	body := block(&coreir.IfStmt{Cond: &coreir.BoolExpr{Value: true}, Then: then, Else: els})
	diags := asyncdiscipline.Check(body)
	if !has(diags, "ASYNC_BRANCH_DIVERGENT") {
		t.Fatalf("expected ASYNC_BRANCH_DIVERGENT, got %v", codesOf(diags))
	}
}

func TestIfBranchesMatchingTasksIsClean(t *testing.T) {
	mkBranch := func() *coreir.Scope {
		return &coreir.Scope{Statements: []coreir.Stmt{
			&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}},
			&coreir.WaitStmt{Task: "t1", Name: "r"},
		}}
	}
	body := block(&coreir.IfStmt{Cond: &coreir.BoolExpr{Value: true}, Then: mkBranch(), Else: mkBranch()})
	diags := asyncdiscipline.Check(body)
	if has(diags, "ASYNC_BRANCH_DIVERGENT") {
		t.Fatalf("did not expect divergence for identical branches, got %v", codesOf(diags))
	}
}

func TestWalksIntoWorkflowSteps(t *testing.T) {
	wf := &coreir.WorkflowStmt{
		Name: "wf",
		Steps: []*coreir.Step{
			{Name: "s1", Body: &coreir.Scope{Statements: []coreir.Stmt{
				&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "compute"}}},
			}}},
		},
	}
	diags := asyncdiscipline.Check(block(wf))
	if !has(diags, "ASYNC_START_NOT_WAITED") {
		t.Fatalf("expected ASYNC_START_NOT_WAITED from inside workflow step, got %v", codesOf(diags))
	}
}

func has(diags []*diagnostics.Diagnostic, code string) bool {
	for _, d := range diags {
		if string(d.Code) == code {
			return true
		}
	}
	return false
}

func codesOf(diags []*diagnostics.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, string(d.Code))
	}
	return out
}
