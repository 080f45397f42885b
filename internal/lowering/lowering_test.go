package lowering_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/lexer"
	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/lowering"
	"github.com/cnlforge/corelang/internal/parser"
)

func parseSource(t *testing.T, src string) *ast.Module {
	t.Helper()
	lx, ok := lexicon.Get("en-US")
	if !ok {
		t.Fatal("en-US lexicon not registered")
	}
	toks, comments, diags := lexer.Lex(src, lx)
	if len(diags) != 0 {
		t.Fatalf("lex error: %v", diags)
	}
	mod, pdiags := parser.Parse(toks, comments)
	if len(pdiags) != 0 {
		t.Fatalf("parse error: %v", pdiags)
	}
	return mod
}

func TestLowerListLiteralBecomesConstruct(t *testing.T) {
	mod := parseSource(t, "To pair, produce List<Int>:\n  Return [1, 2].\n")
	ir := lowering.Lower(mod)
	fn := ir.Decls[0].(*coreir.FuncDecl)
	ret := fn.Body.Statements[0].(*coreir.ReturnStmt)
	ctor, ok := ret.Value.(*coreir.ConstructExpr)
	if !ok {
		t.Fatalf("expected ConstructExpr, got %T", ret.Value)
	}
	if ctor.TypeName != "List" {
		t.Errorf("TypeName = %q, want List", ctor.TypeName)
	}
	if len(ctor.FieldNames) != 2 || ctor.FieldNames[0] != "0" || ctor.FieldNames[1] != "1" {
		t.Errorf("unexpected field names: %v", ctor.FieldNames)
	}
}

func TestLowerPiiAggregatesOntoFunc(t *testing.T) {
	mod := parseSource(t, "To store(email: Text @pii(level=L2, category=\"email\")), produce Bool:\n  Return true.\n")
	ir := lowering.Lower(mod)
	fn := ir.Decls[0].(*coreir.FuncDecl)
	if fn.PiiLevel != coreir.PiiL2 {
		t.Errorf("PiiLevel = %v, want L2", fn.PiiLevel)
	}
	if len(fn.PiiCategories) != 1 || fn.PiiCategories[0] != "email" {
		t.Errorf("PiiCategories = %v, want [email]", fn.PiiCategories)
	}
	pt, ok := fn.Params[0].Type.(*coreir.PiiType)
	if !ok {
		t.Fatalf("expected param type to be PiiType, got %T", fn.Params[0].Type)
	}
	if pt.Level != coreir.PiiL2 {
		t.Errorf("param PiiType level = %v, want L2", pt.Level)
	}
}

func TestLowerNestedBlockBecomesScope(t *testing.T) {
	mod := parseSource(t, "To classify(n: Int), produce Text:\n  If n > 0 then\n    Return \"positive\".\n  Return \"other\".\n")
	ir := lowering.Lower(mod)
	fn := ir.Decls[0].(*coreir.FuncDecl)
	ifStmt := fn.Body.Statements[0].(*coreir.IfStmt)
	if ifStmt.Then == nil {
		t.Fatal("expected Then branch")
	}
	// fn.Body itself must remain a *coreir.Block, never a Scope.
	if _, ok := interface{}(fn.Body).(*coreir.Block); !ok {
		t.Fatal("top-level function body must stay a Block")
	}
}

func TestLowerLambdaComputesCaptures(t *testing.T) {
	mod := parseSource(t,
		"To makeAdder(base: Int), produce Func<Int,Int>:\n"+
			"  Let addend be base.\n"+
			"  Let bump be (x: Int) produce Int:\n"+
			"    Return x + addend.\n"+
			"  Return bump.\n")
	ir := lowering.Lower(mod)
	fn := ir.Decls[0].(*coreir.FuncDecl)
	let := fn.Body.Statements[1].(*coreir.LetStmt)
	lam, ok := let.Value.(*coreir.LambdaExpr)
	if !ok {
		t.Fatalf("expected LambdaExpr, got %T", let.Value)
	}
	found := false
	for _, c := range lam.Captures {
		if c == "addend" {
			found = true
		}
		if c == "x" {
			t.Fatal("lambda's own parameter must not be captured")
		}
	}
	if !found {
		t.Fatalf("expected addend to be captured, got %v", lam.Captures)
	}
}

func TestLowerWorkflowDefaultsDependsOnToPredecessor(t *testing.T) {
	src := "To checkout, produce Text:\n" +
		"  Workflow placeOrder:\n" +
		"    Step checkInventory:\n" +
		"      Let ok be Inventory.reserve().\n" +
		"    Step chargeCard:\n" +
		"      Let r be Payment.charge().\n" +
		"  Return \"done\".\n"
	mod := parseSource(t, src)
	ir := lowering.Lower(mod)
	fn := ir.Decls[0].(*coreir.FuncDecl)
	wf := fn.Body.Statements[0].(*coreir.WorkflowStmt)
	if len(wf.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(wf.Steps))
	}
	second := wf.Steps[1]
	if len(second.DependsOn) != 1 || second.DependsOn[0] != "checkInventory" {
		t.Errorf("expected implicit dependency on checkInventory, got %v", second.DependsOn)
	}
	foundInventory, foundPayment := false, false
	for _, c := range wf.InferredCapabilities {
		if c == "Inventory" {
			foundInventory = true
		}
		if c == "Payment" {
			foundPayment = true
		}
	}
	if !foundInventory || !foundPayment {
		t.Errorf("expected Inventory and Payment in InferredCapabilities, got %v", wf.InferredCapabilities)
	}
}

func TestLowerTypeAliasDroppedFromDeclsKeptOnModule(t *testing.T) {
	mod := parseSource(t, "Type Money is Float.\nTo price, produce Float:\n  Return 1.0.\n")
	ir := lowering.Lower(mod)
	for _, d := range ir.Decls {
		if _, ok := d.(*coreir.FuncDecl); !ok {
			t.Fatalf("expected only FuncDecl in Decls, found %T", d)
		}
	}
	if _, ok := ir.TypeAliases["Money"]; !ok {
		t.Fatal("expected Money to survive in Module.TypeAliases")
	}
}
