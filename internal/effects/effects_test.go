package effects_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/effects"
	"github.com/cnlforge/corelang/internal/symbols"
)

func TestJoinLattice(t *testing.T) {
	if effects.Join(effects.Pure, effects.Cpu) != effects.Cpu {
		t.Error("pure join cpu must be cpu")
	}
	if effects.Join(effects.Cpu, effects.IO) != effects.IO {
		t.Error("cpu join io must be io")
	}
	if effects.Join(effects.IO, effects.Async) != effects.Async {
		t.Error("async must absorb io")
	}
	if effects.Join(effects.Cpu, effects.Async) != effects.Async {
		t.Error("async must absorb cpu")
	}
}

func TestExceeds(t *testing.T) {
	if !effects.IO.Exceeds(effects.Pure) {
		t.Error("io must exceed pure")
	}
	if effects.Cpu.Exceeds(effects.IO) {
		t.Error("cpu must not exceed io")
	}
}

func httpCall(name string) *coreir.CallExpr {
	return &coreir.CallExpr{Callee: &coreir.NameExpr{Value: name}}
}

func TestInferBodyPrefixMatchesIO(t *testing.T) {
	body := &coreir.Block{Statements: []coreir.Stmt{
		&coreir.ReturnStmt{Value: httpCall("Http.get")},
	}}
	caps := effects.Capabilities{}
	eff := effects.InferBody(body, nil, caps)
	if eff != effects.IO {
		t.Fatalf("expected IO effect, got %v", eff)
	}
	if _, ok := caps["Http"]; !ok {
		t.Fatalf("expected Http capability recorded, got %v", caps)
	}
}

func TestInferBodyUsesDeclaredSymbolEffect(t *testing.T) {
	scope := symbols.NewModuleScope()
	scope.Define("helper", &coreir.FuncType{}, symbols.SymFunc, symbols.DefineOptions{DeclaredEffect: "cpu"})
	body := &coreir.Block{Statements: []coreir.Stmt{
		&coreir.ReturnStmt{Value: &coreir.CallExpr{Callee: &coreir.NameExpr{Value: "helper"}}},
	}}
	caps := effects.Capabilities{}
	eff := effects.InferBody(body, scope, caps)
	if eff != effects.Cpu {
		t.Fatalf("expected Cpu effect from declared symbol, got %v", eff)
	}
}

func TestCheckFuncMissingIODiagnostic(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:   "fetch",
		Effect: "",
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: httpCall("Http.get")},
		}},
	}
	diags := effects.CheckFunc(fn, nil, nil)
	found := false
	for _, d := range diags {
		if d.Code == "EFF_MISSING_IO" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected EFF_MISSING_IO, got %v", diags)
	}
}

func TestCheckFuncDeclaredIOSatisfiesBody(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:   "fetch",
		Effect: "io",
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: httpCall("Http.get")},
		}},
	}
	diags := effects.CheckFunc(fn, nil, nil)
	for _, d := range diags {
		if d.Code == "EFF_MISSING_IO" {
			t.Fatalf("did not expect EFF_MISSING_IO when io is declared: %v", diags)
		}
	}
}

func TestCheckFuncExplicitCapabilitiesSuperfluous(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:         "fetch",
		Effect:       "io",
		Capabilities: []string{"Http", "Sql"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: httpCall("Http.get")},
		}},
	}
	diags := effects.CheckFunc(fn, nil, nil)
	found := false
	for _, d := range diags {
		if d.Code == "EFF_CAP_SUPERFLUOUS" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected EFF_CAP_SUPERFLUOUS for unused Sql, got %v", diags)
	}
}

func TestCheckWorkflowCompensateNewCapability(t *testing.T) {
	wf := &coreir.WorkflowStmt{
		Name: "placeOrder",
		Steps: []*coreir.Step{
			{
				Name:         "charge",
				Body:         &coreir.Scope{},
				Compensate:   &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: httpCall("Payment.refund")}}},
				Capabilities: []string{"Payment"},
			},
		},
	}
	diags := effects.CheckWorkflow(wf, effects.IO, nil, nil)
	found := false
	for _, d := range diags {
		if d.Code == "COMPENSATE_NEW_CAPABILITY" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected COMPENSATE_NEW_CAPABILITY, got %v", diags)
	}
}

func TestCheckWorkflowMissingIO(t *testing.T) {
	wf := &coreir.WorkflowStmt{Name: "placeOrder"}
	diags := effects.CheckWorkflow(wf, effects.Pure, nil, nil)
	found := false
	for _, d := range diags {
		if d.Code == "WORKFLOW_MISSING_IO_EFFECT" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected WORKFLOW_MISSING_IO_EFFECT, got %v", diags)
	}
}

func TestCheckWorkflowUndeclaredCapability(t *testing.T) {
	wf := &coreir.WorkflowStmt{
		Name: "placeOrder",
		Steps: []*coreir.Step{
			{
				Name:         "charge",
				Body:         &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: httpCall("Payment.charge")}}},
				Capabilities: []string{"Payment"},
			},
		},
	}
	// The enclosing function declares a non-empty capability list that
	// does not include Payment, so the step's own Payment capability
	// must be reported as undeclared (spec.md §4.7).
	diags := effects.CheckWorkflow(wf, effects.IO, []string{"Http"}, nil)
	found := false
	for _, d := range diags {
		if d.Code == "WORKFLOW_UNDECLARED_CAPABILITY" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected WORKFLOW_UNDECLARED_CAPABILITY, got %v", diags)
	}
}

func TestCheckWorkflowDeclaredCapabilitySilencesUndeclared(t *testing.T) {
	wf := &coreir.WorkflowStmt{
		Name: "placeOrder",
		Steps: []*coreir.Step{
			{
				Name:         "charge",
				Body:         &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: httpCall("Payment.charge")}}},
				Capabilities: []string{"Payment"},
			},
		},
	}
	diags := effects.CheckWorkflow(wf, effects.IO, []string{"Http", "Payment"}, nil)
	for _, d := range diags {
		if d.Code == "WORKFLOW_UNDECLARED_CAPABILITY" {
			t.Fatalf("did not expect WORKFLOW_UNDECLARED_CAPABILITY when Payment is declared: %v", diags)
		}
	}
}

func TestCheckFuncCapabilityInferMissingIODiagnostic(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:   "fetch",
		Effect: "", // no declared effect: inference alone must flag the missing io
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: httpCall("Http.get")},
		}},
	}
	diags := effects.CheckFunc(fn, nil, nil)
	found := false
	for _, d := range diags {
		if d.Code == "CAPABILITY_INFER_MISSING_IO" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CAPABILITY_INFER_MISSING_IO, got %v", diags)
	}
}

func TestCheckFuncCapabilityInferMissingCPUDiagnostic(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:   "crunch",
		Effect: "",
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: httpCall("Cpu.hash")},
		}},
	}
	diags := effects.CheckFunc(fn, nil, nil)
	found := false
	for _, d := range diags {
		if d.Code == "CAPABILITY_INFER_MISSING_CPU" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CAPABILITY_INFER_MISSING_CPU, got %v", diags)
	}
}

func TestCheckFuncEffCapMissingDiagnostic(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:         "fetch",
		Effect:       "io",
		Capabilities: []string{"Sql"}, // declares Sql but the body calls Http
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: httpCall("Http.get")},
		}},
	}
	diags := effects.CheckFunc(fn, nil, nil)
	found := false
	for _, d := range diags {
		if d.Code == "EFF_CAP_MISSING" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected EFF_CAP_MISSING for undeclared Http usage, got %v", diags)
	}
}
