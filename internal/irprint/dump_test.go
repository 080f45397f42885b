package irprint_test

import (
	"strings"
	"testing"

	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/irprint"
)

func TestDumpFuncDeclShowsSignatureAndBody(t *testing.T) {
	fn := &coreir.FuncDecl{
		Name:       "double",
		Effect:     "",
		Params:     []*coreir.Param{{Name: "n", Type: &coreir.TypeName{Name: "Int"}}},
		ReturnType: &coreir.TypeName{Name: "Int"},
		Body: &coreir.Block{Statements: []coreir.Stmt{
			&coreir.ReturnStmt{Value: &coreir.NameExpr{Value: "n"}},
		}},
	}
	out := irprint.Dump(fn)
	for _, want := range []string{"Func double", "param n", "TypeName Int", "Return", "Name n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDumpModuleListsDecls(t *testing.T) {
	mod := &coreir.Module{
		Name: "m",
		Decls: []coreir.Decl{
			&coreir.DataDecl{Name: "Point", Fields: []*coreir.Field{
				{Name: "x", Type: &coreir.TypeName{Name: "Int"}},
			}},
		},
	}
	out := irprint.Dump(mod)
	if !strings.Contains(out, "Module m") || !strings.Contains(out, "Data Point") {
		t.Fatalf("expected module+data in dump, got:\n%s", out)
	}
}

func TestDumpNilNodeIsStable(t *testing.T) {
	if got := irprint.Dump(nil); got != "<nil>" {
		t.Fatalf("expected <nil>, got %q", got)
	}
}

func TestDumpMatchStmtWalksArms(t *testing.T) {
	m := &coreir.MatchStmt{
		Subject: &coreir.NameExpr{Value: "r"},
		Arms: []*coreir.MatchArm{
			{
				Pattern: &coreir.PatternCtor{Name: "Ok", Args: []coreir.Pattern{&coreir.PatternName{Name: "v"}}},
				Body:    &coreir.Scope{Statements: []coreir.Stmt{&coreir.ReturnStmt{Value: &coreir.NameExpr{Value: "v"}}}},
			},
		},
	}
	out := irprint.Dump(m)
	for _, want := range []string{"Match", "PatternCtor Ok", "PatternName v", "Scope"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dump, got:\n%s", want, out)
		}
	}
}
