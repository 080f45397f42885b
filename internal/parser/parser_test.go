package parser_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/lexer"
	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/parser"
)

func enUS(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lx, ok := lexicon.Get("en-US")
	if !ok {
		t.Fatal("en-US lexicon not registered")
	}
	return lx
}

func parseSource(t *testing.T, src string) *ast.Module {
	t.Helper()
	toks, comments, diags := lexer.Lex(src, enUS(t))
	if len(diags) != 0 {
		t.Fatalf("lex error: %v", diags)
	}
	mod, pdiags := parser.Parse(toks, comments)
	if len(pdiags) != 0 {
		t.Fatalf("parse error: %v", pdiags)
	}
	return mod
}

func TestParseSimpleFunction(t *testing.T) {
	mod := parseSource(t, "To greet, produce Text:\n  Return \"hi\".\n")
	if len(mod.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(mod.Decls))
	}
	fn, ok := mod.Decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", mod.Decls[0])
	}
	if fn.Name != "greet" {
		t.Fatalf("name: got %q, want %q", fn.Name, "greet")
	}
	retType, ok := fn.ReturnType.(*ast.TypeName)
	if !ok || retType.Name != "Text" {
		t.Fatalf("return type: got %#v", fn.ReturnType)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(fn.Body.Statements))
	}
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Statements[0])
	}
	str, ok := ret.Value.(*ast.StringExpr)
	if !ok || str.Value != "hi" {
		t.Fatalf("return value: got %#v", ret.Value)
	}
}

func TestParseFuncWithParamsAndBody(t *testing.T) {
	src := "To addTax(price: Float, rate: Float), produce Float:\n" +
		"  Let total be price + price * rate.\n" +
		"  Return total.\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[0].Name != "price" || fn.Params[1].Name != "rate" {
		t.Fatalf("param names: got %q, %q", fn.Params[0].Name, fn.Params[1].Name)
	}
	let, ok := fn.Body.Statements[0].(*ast.LetStmt)
	if !ok {
		t.Fatalf("expected *ast.LetStmt, got %T", fn.Body.Statements[0])
	}
	// "price + price * rate" desugars to a nested call-as-operator tree:
	// +(price, *(price, rate)), with "*" binding tighter than "+".
	add, ok := let.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", let.Value)
	}
	addCallee, ok := add.Callee.(*ast.NameExpr)
	if !ok || addCallee.Value != "+" {
		t.Fatalf("outer op: got %#v", add.Callee)
	}
	mul, ok := add.Args[1].(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected nested *ast.CallExpr for rhs, got %T", add.Args[1])
	}
	mulCallee, ok := mul.Callee.(*ast.NameExpr)
	if !ok || mulCallee.Value != "*" {
		t.Fatalf("inner op: got %#v", mul.Callee)
	}
}

func TestParseImplicitParamAndReturnTypes(t *testing.T) {
	src := "To calculateTotal(isActive, orderId, customerName), produce Text:\n" +
		"  Return customerName.\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	want := map[string]string{"isActive": "Bool", "orderId": "Text", "customerName": "Text"}
	for _, prm := range fn.Params {
		tn, ok := prm.Type.(*ast.TypeName)
		if !ok {
			t.Fatalf("param %s: expected *ast.TypeName, got %#v", prm.Name, prm.Type)
		}
		if tn.Name != want[prm.Name] {
			t.Errorf("param %s: got type %s, want %s", prm.Name, tn.Name, want[prm.Name])
		}
	}
}

func TestParseImplicitReturnTypeFromName(t *testing.T) {
	mod := parseSource(t, "To generateInvoice:\n  Return \"x\".\n")
	fn := mod.Decls[0].(*ast.FuncDecl)
	tn, ok := fn.ReturnType.(*ast.TypeName)
	if !ok || tn.Name != "Invoice" {
		t.Fatalf("expected inferred return type Invoice, got %#v", fn.ReturnType)
	}
}

func TestParseExplicitReturnTypeWinsOverInference(t *testing.T) {
	mod := parseSource(t, "To generateInvoice, produce Text:\n  Return \"x\".\n")
	fn := mod.Decls[0].(*ast.FuncDecl)
	tn, ok := fn.ReturnType.(*ast.TypeName)
	if !ok || tn.Name != "Text" {
		t.Fatalf("declared return type should win over inference: got %#v", fn.ReturnType)
	}
}

func TestParseInferredTypeParams(t *testing.T) {
	mod := parseSource(t, "To first(items: List<T>), produce T:\n  Return items.\n")
	fn := mod.Decls[0].(*ast.FuncDecl)
	if len(fn.TypeParams) != 1 || fn.TypeParams[0] != "T" {
		t.Fatalf("expected inferred type param [T], got %v", fn.TypeParams)
	}
}

func TestParseDataDecl(t *testing.T) {
	src := "Data Quote:\n" +
		"  amount: Float.\n" +
		"  email: Text @pii(level=L2, category=\"contact\").\n"
	mod := parseSource(t, src)
	data, ok := mod.Decls[0].(*ast.DataDecl)
	if !ok {
		t.Fatalf("expected *ast.DataDecl, got %T", mod.Decls[0])
	}
	if data.Name != "Quote" || len(data.Fields) != 2 {
		t.Fatalf("got name %q with %d fields", data.Name, len(data.Fields))
	}
	f := data.Fields[1]
	if len(f.Annotations) != 1 || f.Annotations[0].Name != "pii" {
		t.Fatalf("expected a pii annotation, got %#v", f.Annotations)
	}
	level, ok := f.Annotations[0].Get("level")
	if !ok {
		t.Fatalf("expected annotation param \"level\"")
	}
	levelName, ok := level.(*ast.NameExpr)
	if !ok || levelName.Value != "L2" {
		t.Fatalf("level value: got %#v", level)
	}
}

func TestParseEnumDecl(t *testing.T) {
	src := "Enum Shape:\n" +
		"  Circle(radius: Float).\n" +
		"  Square(side: Float).\n" +
		"  Empty.\n"
	mod := parseSource(t, src)
	en, ok := mod.Decls[0].(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected *ast.EnumDecl, got %T", mod.Decls[0])
	}
	if len(en.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(en.Variants))
	}
	if en.Variants[0].Name != "Circle" || len(en.Variants[0].Fields) != 1 {
		t.Fatalf("Circle variant: got %#v", en.Variants[0])
	}
	if en.Variants[2].Name != "Empty" || len(en.Variants[2].Fields) != 0 {
		t.Fatalf("Empty variant: got %#v", en.Variants[2])
	}
}

func TestParseIfElse(t *testing.T) {
	src := "To classify(x: Int), produce Text:\n" +
		"  If x then\n" +
		"    Return \"pos\".\n" +
		"  Else\n" +
		"    Return \"neg\".\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	ifStmt, ok := fn.Body.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", fn.Body.Statements[0])
	}
	if ifStmt.Else == nil || ifStmt.ElseIsIf {
		t.Fatalf("expected a plain else block, got %#v", ifStmt)
	}
	if len(ifStmt.Then.Statements) != 1 || len(ifStmt.Else.Statements) != 1 {
		t.Fatalf("expected one statement per branch")
	}
}

func TestParseElseIfChain(t *testing.T) {
	src := "To classify(x: Int), produce Text:\n" +
		"  If x then\n" +
		"    Return \"a\".\n" +
		"  Else If x then\n" +
		"    Return \"b\".\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	ifStmt := fn.Body.Statements[0].(*ast.IfStmt)
	if !ifStmt.ElseIsIf {
		t.Fatalf("expected ElseIsIf, got %#v", ifStmt)
	}
	if len(ifStmt.Else.Statements) != 1 {
		t.Fatalf("expected the else branch to hold exactly the nested if")
	}
	if _, ok := ifStmt.Else.Statements[0].(*ast.IfStmt); !ok {
		t.Fatalf("expected a nested *ast.IfStmt, got %T", ifStmt.Else.Statements[0])
	}
}

func TestParseMatch(t *testing.T) {
	src := "To describe(r: Shape), produce Text:\n" +
		"  Match r:\n" +
		"    When Circle(radius):\n" +
		"      Return \"circle\".\n" +
		"    When other:\n" +
		"      Return \"other\".\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	m, ok := fn.Body.Statements[0].(*ast.MatchStmt)
	if !ok {
		t.Fatalf("expected *ast.MatchStmt, got %T", fn.Body.Statements[0])
	}
	if len(m.Arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(m.Arms))
	}
	ctor, ok := m.Arms[0].Pattern.(*ast.PatternCtor)
	if !ok || ctor.Name != "Circle" || len(ctor.Args) != 1 {
		t.Fatalf("arm 0 pattern: got %#v", m.Arms[0].Pattern)
	}
	name, ok := m.Arms[1].Pattern.(*ast.PatternName)
	if !ok || name.Name != "other" {
		t.Fatalf("arm 1 pattern: got %#v", m.Arms[1].Pattern)
	}
}

func TestParseStartWait(t *testing.T) {
	src := "To fetchBoth, produce Text:\n" +
		"  Start a as getPrice(1).\n" +
		"  Wait a as price.\n" +
		"  Return price.\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	start, ok := fn.Body.Statements[0].(*ast.StartStmt)
	if !ok || start.Task != "a" {
		t.Fatalf("start stmt: got %#v", fn.Body.Statements[0])
	}
	wait, ok := fn.Body.Statements[1].(*ast.WaitStmt)
	if !ok || wait.Task != "a" || wait.Name != "price" {
		t.Fatalf("wait stmt: got %#v", fn.Body.Statements[1])
	}
}

func TestParsePostfixMethodCallDesugaring(t *testing.T) {
	mod := parseSource(t, "To run, produce Text:\n  Return order.total(1).\n")
	fn := mod.Decls[0].(*ast.FuncDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)
	call, ok := ret.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", ret.Value)
	}
	callee, ok := call.Callee.(*ast.NameExpr)
	if !ok || callee.Value != "total" {
		t.Fatalf("callee: got %#v", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected [order, 1] args, got %v", call.Args)
	}
	recv, ok := call.Args[0].(*ast.NameExpr)
	if !ok || recv.Value != "order" {
		t.Fatalf("first arg should be the receiver, got %#v", call.Args[0])
	}
}

func TestParseQualifiedCallCollapse(t *testing.T) {
	mod := parseSource(t, "To run, produce Text:\n  Return Http.get(\"x\").\n")
	fn := mod.Decls[0].(*ast.FuncDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)
	call, ok := ret.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", ret.Value)
	}
	callee, ok := call.Callee.(*ast.NameExpr)
	if !ok || callee.Value != "Http.get" {
		t.Fatalf("expected qualified callee Http.get, got %#v", call.Callee)
	}
}

func TestParseLambdaExpr(t *testing.T) {
	src := "To run, produce Int:\n" +
		"  Let inc be (x: Int) produce Int:\n" +
		"    Return x + 1.\n" +
		"  Return 1.\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	let := fn.Body.Statements[0].(*ast.LetStmt)
	lam, ok := let.Value.(*ast.LambdaExpr)
	if !ok {
		t.Fatalf("expected *ast.LambdaExpr, got %T", let.Value)
	}
	if len(lam.Params) != 1 || lam.Params[0].Name != "x" {
		t.Fatalf("lambda params: got %#v", lam.Params)
	}
	if len(lam.Body.Statements) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(lam.Body.Statements))
	}
}

func TestParseListLiteral(t *testing.T) {
	mod := parseSource(t, "To run, produce List<Int>:\n  Return [1, 2, 3].\n")
	fn := mod.Decls[0].(*ast.FuncDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)
	lst, ok := ret.Value.(*ast.ListLiteralExpr)
	if !ok || len(lst.Elements) != 3 {
		t.Fatalf("expected a 3-element list literal, got %#v", ret.Value)
	}
}

func TestParseWorkflowWithCompensateAndDependsOn(t *testing.T) {
	src := "To run, produce Text:\n" +
		"  Workflow checkout:\n" +
		"    Step reserve:\n" +
		"      Let x be 1.\n" +
		"    Step charge depends on reserve:\n" +
		"      Let y be 2.\n" +
		"      Compensate:\n" +
		"        Let z be 3.\n" +
		"  Return \"ok\".\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	wf, ok := fn.Body.Statements[0].(*ast.WorkflowStmt)
	if !ok {
		t.Fatalf("expected *ast.WorkflowStmt, got %T", fn.Body.Statements[0])
	}
	if wf.Name != "checkout" || len(wf.Steps) != 2 {
		t.Fatalf("workflow: got %#v", wf)
	}
	charge := wf.Steps[1]
	if len(charge.DependsOn) != 1 || charge.DependsOn[0] != "reserve" {
		t.Fatalf("depends on: got %v", charge.DependsOn)
	}
	if charge.Compensate == nil {
		t.Fatalf("expected a compensate block")
	}
	compBlock, ok := charge.Compensate.(*ast.Block)
	if !ok || len(compBlock.Statements) != 1 {
		t.Fatalf("compensate block: got %#v", charge.Compensate)
	}
}

func TestParseTypeAliasDecl(t *testing.T) {
	mod := parseSource(t, "Type Money is Float.\n")
	alias, ok := mod.Decls[0].(*ast.TypeAliasDecl)
	if !ok {
		t.Fatalf("expected *ast.TypeAliasDecl, got %T", mod.Decls[0])
	}
	tn, ok := alias.Type.(*ast.TypeName)
	if !ok || tn.Name != "Float" {
		t.Fatalf("alias target: got %#v", alias.Type)
	}
}

func TestParseImportDecl(t *testing.T) {
	mod := parseSource(t, "Import \"billing\" as Billing.\n")
	imp, ok := mod.Decls[0].(*ast.ImportDecl)
	if !ok {
		t.Fatalf("expected *ast.ImportDecl, got %T", mod.Decls[0])
	}
	if imp.Path != "billing" || imp.Alias != "Billing" {
		t.Fatalf("import: got %#v", imp)
	}
}

func TestParseFuncWithEffectClause(t *testing.T) {
	src := "To fetchQuote, produce Text:\n" +
		"  It performs io [Http, Sql].\n" +
		"  Return \"ok\".\n"
	mod := parseSource(t, src)
	fn := mod.Decls[0].(*ast.FuncDecl)
	if fn.Effect != "io" {
		t.Fatalf("effect: got %q", fn.Effect)
	}
	if len(fn.Capabilities) != 2 || fn.Capabilities[0] != "Http" || fn.Capabilities[1] != "Sql" {
		t.Fatalf("capabilities: got %v", fn.Capabilities)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected the effect clause to be consumed, not left as a body statement: got %d statements", len(fn.Body.Statements))
	}
}

func TestParseModuleHeader(t *testing.T) {
	src := "this module is Billing.\n" +
		"To run, produce Text:\n" +
		"  Return \"ok\".\n"
	mod := parseSource(t, src)
	if mod.Name != "Billing" {
		t.Fatalf("module name: got %q", mod.Name)
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(mod.Decls))
	}
}

func TestParseWithClauseAppendsArgs(t *testing.T) {
	mod := parseSource(t, "To run, produce Text:\n  Return notify(user) with subject and body.\n")
	fn := mod.Decls[0].(*ast.FuncDecl)
	ret := fn.Body.Statements[0].(*ast.ReturnStmt)
	call, ok := ret.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", ret.Value)
	}
	if len(call.Args) != 3 {
		t.Fatalf("expected [user, subject, body], got %v", call.Args)
	}
}

func TestParseUnexpectedTokenStopsAtFirstError(t *testing.T) {
	src := "To run produce Text:\n  Return \"x\".\n"
	toks, comments, diags := lexer.Lex(src, enUS(t))
	if len(diags) != 0 {
		t.Fatalf("unexpected lex diagnostics: %v", diags)
	}
	_, pdiags := parser.Parse(toks, comments)
	if len(pdiags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(pdiags), pdiags)
	}
}
