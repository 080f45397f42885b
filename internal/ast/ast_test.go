package ast_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/token"
)

// countingVisitor records which Visit method fired, confirming Accept
// dispatches to the concrete node's own method rather than a sibling.
type countingVisitor struct {
	ast.BaseVisitor
	seen []string
}

func (c *countingVisitor) VisitLetStmt(n *ast.LetStmt)     { c.seen = append(c.seen, "Let") }
func (c *countingVisitor) VisitIfStmt(n *ast.IfStmt)       { c.seen = append(c.seen, "If") }
func (c *countingVisitor) VisitCallExpr(n *ast.CallExpr)   { c.seen = append(c.seen, "Call") }
func (c *countingVisitor) VisitIntExpr(n *ast.IntExpr)     { c.seen = append(c.seen, "Int") }

func TestAcceptDispatchesToConcreteVisitMethod(t *testing.T) {
	v := &countingVisitor{}

	var stmt ast.Stmt = &ast.LetStmt{Name: "total"}
	stmt.Accept(v)

	var expr ast.Expr = &ast.CallExpr{
		Callee: &ast.NameExpr{Value: "double"},
		Args:   []ast.Expr{&ast.IntExpr{Value: 2}},
	}
	expr.Accept(v)

	want := []string{"Let", "Call"}
	if len(v.seen) != len(want) {
		t.Fatalf("got %v, want %v", v.seen, want)
	}
	for i := range want {
		if v.seen[i] != want[i] {
			t.Fatalf("got %v, want %v", v.seen, want)
		}
	}
}

func TestNilNodeSpanIsZeroNotPanic(t *testing.T) {
	var (
		decl  *ast.FuncDecl
		stmt  *ast.IfStmt
		expr  *ast.NameExpr
		typ   *ast.TypeName
		patt  *ast.PatternName
	)
	for _, span := range []token.Span{
		decl.Span(), stmt.Span(), expr.Span(), typ.Span(), patt.Span(),
	} {
		if span != (token.Span{}) {
			t.Fatalf("expected zero span from nil receiver, got %+v", span)
		}
	}
}

func TestAnnotationGetReturnsFalseWhenMissing(t *testing.T) {
	ann := &ast.Annotation{
		Name: "pii",
		Params: []ast.AnnotationParam{
			{Key: "level", Value: &ast.StringExpr{Value: "L2"}},
			{Key: "category", Value: &ast.StringExpr{Value: "email"}},
		},
	}
	v, ok := ann.Get("level")
	if !ok {
		t.Fatal("expected level param to be present")
	}
	if s, ok := v.(*ast.StringExpr); !ok || s.Value != "L2" {
		t.Fatalf("got %v", v)
	}
	if _, ok := ann.Get("category2"); ok {
		t.Fatal("expected missing key to report not found")
	}
}

func TestModuleAcceptVisitsModule(t *testing.T) {
	mod := &ast.Module{
		Name: "quoting",
		Decls: []ast.Decl{
			&ast.FuncDecl{Name: "greet"},
		},
	}
	var got *ast.Module
	visitor := moduleCaptureVisitor{capture: &got}
	mod.Accept(visitor)
	if got != mod {
		t.Fatal("expected VisitModule to receive the same Module pointer")
	}
}

type moduleCaptureVisitor struct {
	ast.BaseVisitor
	capture **ast.Module
}

func (m moduleCaptureVisitor) VisitModule(n *ast.Module) { *m.capture = n }
