package corelang_test

import (
	"testing"

	"github.com/cnlforge/corelang"
	"github.com/cnlforge/corelang/internal/lexicon"
)

func TestCompileProducesIRForSimpleFunction(t *testing.T) {
	lx, ok := lexicon.Get("en-US")
	if !ok {
		t.Fatal("expected en-US lexicon to be registered")
	}
	src := "To double(n: Int), produce Int:\n  Return n.\n"
	result := corelang.Compile("double.cnl", src, lx, nil, nil)

	if result.Canonical == "" {
		t.Error("expected non-empty canonical source")
	}
	if len(result.Tokens) == 0 {
		t.Error("expected at least one token")
	}
	if result.Module == nil {
		t.Fatal("expected a parsed module")
	}
	if result.IR == nil {
		t.Fatal("expected a lowered module")
	}
}

func TestCompileStopsGracefullyOnEmptySource(t *testing.T) {
	lx, _ := lexicon.Get("en-US")
	result := corelang.Compile("empty.cnl", "", lx, nil, nil)
	if result == nil {
		t.Fatal("expected a non-nil result even for empty input")
	}
	if result.Module != nil {
		t.Error("did not expect a module to be parsed from empty source")
	}
	if result.IR != nil {
		t.Error("did not expect IR from empty source")
	}
}

func TestIndividualStagesCompose(t *testing.T) {
	lx, _ := lexicon.Get("en-US")
	canonical := corelang.Canonicalize("To id(n: Int), produce Int:\n  Return n.\n", lx, nil)
	tokens, comments, diags := corelang.Lex(canonical, lx)
	if len(diags) != 0 {
		t.Fatalf("unexpected lex diagnostics: %v", diags)
	}
	mod, diags := corelang.Parse(tokens, comments)
	if len(diags) != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	ir := corelang.Lower(mod)
	if ir == nil {
		t.Fatal("expected a lowered module")
	}
	checkDiags := corelang.Check(ir, nil)
	if len(checkDiags) != 0 {
		t.Fatalf("expected a clean identity function, got %v", checkDiags)
	}
}
