package checker_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/checker"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
)

func strParam(name string) *coreir.Param {
	return &coreir.Param{Name: name, Type: &coreir.TypeName{Name: "String"}}
}

func TestCheckModuleUndefinedVariable(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "greet",
		ReturnType: &coreir.TypeName{Name: "String"},
		Effect:     "",
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: &coreir.NameExpr{Value: "missing"}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "UNDEFINED_VARIABLE") {
		t.Fatalf("expected UNDEFINED_VARIABLE, got %v", codesOf(diags))
	}
}

func TestCheckModuleReturnTypeMismatch(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "bad",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: &coreir.StringExpr{Value: "wrong"}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "RETURN_TYPE_MISMATCH") {
		t.Fatalf("expected RETURN_TYPE_MISMATCH, got %v", codesOf(diags))
	}
}

func TestCheckModuleGoodReturnTypeIsClean(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "ok",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: &coreir.IntExpr{Value: 1}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if hasCode(diags, "RETURN_TYPE_MISMATCH") {
		t.Fatalf("did not expect RETURN_TYPE_MISMATCH, got %v", codesOf(diags))
	}
}

func TestCheckModuleSetToImmutableErrors(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "setter",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.LetStmt{Name: "x", Type: &coreir.TypeName{Name: "Int"}, Value: &coreir.IntExpr{Value: 1}},
			&coreir.SetStmt{Name: "x", Value: &coreir.IntExpr{Value: 2}},
			&coreir.ReturnStmt{Value: &coreir.NameExpr{Value: "x"}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "ASSIGN_TO_IMMUTABLE") {
		t.Fatalf("expected ASSIGN_TO_IMMUTABLE, got %v", codesOf(diags))
	}
}

func TestCheckModuleNotArity(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "badNot",
		ReturnType: &coreir.TypeName{Name: "Bool"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: &coreir.CallExpr{
				Callee: &coreir.NameExpr{Value: "not"},
				Args:   []coreir.Expr{&coreir.BoolExpr{Value: true}, &coreir.BoolExpr{Value: false}},
			}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "NOT_CALL_ARITY") {
		t.Fatalf("expected NOT_CALL_ARITY, got %v", codesOf(diags))
	}
}

func TestCheckModuleDuplicateSymbol(t *testing.T) {
	fn1 := &coreir.FuncDecl{Name: "dup", ReturnType: &coreir.TypeName{Name: "Int"}, Body: &coreir.Block{
		Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.IntExpr{Value: 1}}},
	}}
	fn2 := &coreir.FuncDecl{Name: "dup", ReturnType: &coreir.TypeName{Name: "Int"}, Body: &coreir.Block{
		Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.IntExpr{Value: 2}}},
	}}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn1, fn2}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "DUPLICATE_SYMBOL") {
		t.Fatalf("expected DUPLICATE_SYMBOL, got %v", codesOf(diags))
	}
}

func TestCheckModuleCallsAnotherFunction(t *testing.T) {
	helper := &coreir.FuncDecl{
		Name:       "helper",
		Params:     []*coreir.Param{strParam("name")},
		ReturnType: &coreir.TypeName{Name: "String"},
		Body:       &coreir.Block{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.NameExpr{Value: "name"}}}},
	}
	caller := &coreir.FuncDecl{
		Name:       "caller",
		ReturnType: &coreir.TypeName{Name: "String"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: &coreir.CallExpr{
				Callee: &coreir.NameExpr{Value: "helper"},
				Args:   []coreir.Expr{&coreir.StringExpr{Value: "x"}},
			}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{helper, caller}}
	diags := checker.CheckModule(mod, nil)
	if hasCode(diags, "UNDEFINED_VARIABLE") || hasCode(diags, "TYPE_MISMATCH") {
		t.Fatalf("expected clean cross-function call, got %v", codesOf(diags))
	}
}

func TestCheckModuleStartWaitDiscipline(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "fetcher",
		Effect:     "async",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.StartStmt{Task: "t1", Call: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "not"}, Args: []coreir.Expr{&coreir.BoolExpr{Value: true}}}},
			&coreir.ReturnStmt{Value: &coreir.IntExpr{Value: 1}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "ASYNC_START_NOT_WAITED") {
		t.Fatalf("expected ASYNC_START_NOT_WAITED, got %v", codesOf(diags))
	}
}

func TestCheckModuleIfBranchMismatch(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "pick",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.IfStmt{
				Cond: &coreir.BoolExpr{Value: true},
				Then: &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.IntExpr{Value: 1}}}},
				Else: &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.StringExpr{Value: "x"}}}},
			},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "IF_BRANCH_MISMATCH") {
		t.Fatalf("expected IF_BRANCH_MISMATCH, got %v", codesOf(diags))
	}
}

func TestCheckModuleMatchBranchMismatch(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "pick",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.MatchStmt{
				Subject: &coreir.IntExpr{Value: 1},
				Arms: []*coreir.MatchArm{
					{
						Pattern: &coreir.PatternInt{Value: 0},
						Body:    &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.IntExpr{Value: 1}}}},
					},
					{
						Pattern: &coreir.PatternName{Name: "_"},
						Body:    &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.StringExpr{Value: "x"}}}},
					},
				},
			},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "MATCH_BRANCH_MISMATCH") {
		t.Fatalf("expected MATCH_BRANCH_MISMATCH, got %v", codesOf(diags))
	}
}

func TestCheckModuleAwaitTypeOnNonTask(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "waiter",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.LetStmt{Name: "x", Type: &coreir.TypeName{Name: "Int"}, Value: &coreir.IntExpr{Value: 1}},
			&coreir.ReturnStmt{Value: &coreir.AwaitExpr{Task: "x"}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{fn}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "AWAIT_TYPE") {
		t.Fatalf("expected AWAIT_TYPE, got %v", codesOf(diags))
	}
}

func TestCheckModuleTypevarInconsistent(t *testing.T) {
	identity := &coreir.FuncDecl{
		Name: "identity",
		Params: []*coreir.Param{
			{Name: "x", Type: &coreir.TypeVar{Name: "T"}},
			{Name: "y", Type: &coreir.TypeVar{Name: "T"}},
		},
		ReturnType: &coreir.TypeVar{Name: "T"},
		Body:       &coreir.Block{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.NameExpr{Value: "x"}}}},
	}
	caller := &coreir.FuncDecl{
		Name:       "caller",
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: &coreir.CallExpr{
				Callee: &coreir.NameExpr{Value: "identity"},
				Args:   []coreir.Expr{&coreir.IntExpr{Value: 1}, &coreir.StringExpr{Value: "x"}},
			}},
		}},
	}
	mod := &coreir.Module{Name: "m", Decls: []coreir.Decl{identity, caller}}
	diags := checker.CheckModule(mod, nil)
	if !hasCode(diags, "TYPEVAR_INCONSISTENT") {
		t.Fatalf("expected TYPEVAR_INCONSISTENT, got %v", codesOf(diags))
	}
}

func hasCode(diags []*diagnostics.Diagnostic, code string) bool {
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
