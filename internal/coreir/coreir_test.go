package coreir_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/coreir"
)

func TestPiiLevelOrdering(t *testing.T) {
	if !(coreir.PiiNone < coreir.PiiL1 && coreir.PiiL1 < coreir.PiiL2 && coreir.PiiL2 < coreir.PiiL3) {
		t.Fatal("PII lattice must order PiiNone < L1 < L2 < L3")
	}
}

func TestParsePiiLevel(t *testing.T) {
	cases := map[string]coreir.PiiLevel{
		"L1":      coreir.PiiL1,
		"L2":      coreir.PiiL2,
		"L3":      coreir.PiiL3,
		"bogus":   coreir.PiiNone,
		"":        coreir.PiiNone,
	}
	for in, want := range cases {
		if got := coreir.ParsePiiLevel(in); got != want {
			t.Errorf("ParsePiiLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPiiLevelString(t *testing.T) {
	if coreir.PiiL2.String() != "L2" {
		t.Errorf("PiiL2.String() = %q, want L2", coreir.PiiL2.String())
	}
	if coreir.PiiNone.String() != "none" {
		t.Errorf("PiiNone.String() = %q, want none", coreir.PiiNone.String())
	}
}

func TestNilNodesAreSpanSafe(t *testing.T) {
	var (
		mod  *coreir.Module
		fn   *coreir.FuncDecl
		blk  *coreir.Block
		pii  *coreir.PiiType
		name *coreir.NameExpr
	)
	for _, n := range []coreir.Node{mod, fn, blk, pii, name} {
		_ = n.Span() // must not panic on a nil concrete receiver
	}
}

func TestListLiteralHasNoCoreIRCounterpart(t *testing.T) {
	// Construct is how a lowered list literal is represented; there is
	// no coreir.ListLiteralExpr type (spec.md §4.4).
	var e coreir.Expr = &coreir.ConstructExpr{TypeName: "List", FieldNames: []string{"0", "1"}}
	if _, ok := e.(*coreir.ConstructExpr); !ok {
		t.Fatal("expected ConstructExpr")
	}
}

type captureVisitor struct {
	coreir.BaseVisitor
	seenLambda bool
	captures   []string
}

func (c *captureVisitor) VisitLambdaExpr(n *coreir.LambdaExpr) {
	c.seenLambda = true
	c.captures = n.Captures
}

func TestLambdaCapturesFieldIsVisitable(t *testing.T) {
	lam := &coreir.LambdaExpr{Captures: []string{"total"}}
	v := &captureVisitor{}
	lam.Accept(v)
	if !v.seenLambda {
		t.Fatal("expected VisitLambdaExpr to be called")
	}
	if len(v.captures) != 1 || v.captures[0] != "total" {
		t.Fatalf("unexpected captures: %v", v.captures)
	}
}
