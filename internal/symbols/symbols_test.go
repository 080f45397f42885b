package symbols_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/symbols"
)

func TestDefineAndLookup(t *testing.T) {
	root := symbols.NewModuleScope()
	fn := root.EnterScope(symbols.ScopeFunction)
	if _, diag := fn.Define("x", &coreir.TypeName{Name: "Int"}, symbols.SymVar, symbols.DefineOptions{}); diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	if _, ok := fn.LookupLocal("x"); !ok {
		t.Fatal("expected x defined locally")
	}
	if _, ok := root.LookupLocal("x"); ok {
		t.Fatal("x must not leak into the parent scope")
	}
	if _, ok := fn.Lookup("x"); !ok {
		t.Fatal("expected Lookup to find x")
	}
}

func TestDefineDuplicateInSameScopeFails(t *testing.T) {
	root := symbols.NewModuleScope()
	if _, diag := root.Define("x", &coreir.TypeName{Name: "Int"}, symbols.SymVar, symbols.DefineOptions{}); diag != nil {
		t.Fatalf("unexpected diagnostic on first define: %v", diag)
	}
	_, diag := root.Define("x", &coreir.TypeName{Name: "Int"}, symbols.SymVar, symbols.DefineOptions{})
	if diag == nil {
		t.Fatal("expected DuplicateSymbol diagnostic on redefine")
	}
	if diag.Code != "DUPLICATE_SYMBOL" {
		t.Errorf("diag.Code = %v, want DUPLICATE_SYMBOL", diag.Code)
	}
}

func TestDefineShadowFiresCallback(t *testing.T) {
	root := symbols.NewModuleScope()
	root.Define("x", &coreir.TypeName{Name: "Int"}, symbols.SymVar, symbols.DefineOptions{})
	inner := root.EnterScope(symbols.ScopeBlock)

	var shadowedName string
	_, diag := inner.Define("x", &coreir.TypeName{Name: "Text"}, symbols.SymVar, symbols.DefineOptions{
		OnShadow: func(newSym, shadowed *symbols.SymbolInfo) {
			shadowedName = shadowed.Name
		},
	})
	if diag != nil {
		t.Fatalf("shadowing in a nested scope must not fail: %v", diag)
	}
	if shadowedName != "x" {
		t.Fatalf("expected OnShadow to fire with shadowed name x, got %q", shadowedName)
	}
	sym, _ := inner.LookupLocal("x")
	if sym.ShadowedFrom == nil || sym.ShadowedFrom.Name != "x" {
		t.Fatal("expected ShadowedFrom to be recorded")
	}
}

func TestMarkCapturedFindsDefiningScope(t *testing.T) {
	root := symbols.NewModuleScope()
	fnScope := root.EnterScope(symbols.ScopeFunction)
	fnScope.Define("total", &coreir.TypeName{Name: "Int"}, symbols.SymVar, symbols.DefineOptions{})
	lambdaScope := fnScope.EnterScope(symbols.ScopeBlock)

	if !lambdaScope.MarkCaptured("total") {
		t.Fatal("expected MarkCaptured to find total in an enclosing scope")
	}
	sym, _ := fnScope.LookupLocal("total")
	if !sym.Captured {
		t.Fatal("expected the defining scope's symbol to be marked captured")
	}
}

func TestExitModuleScopePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected ExitScope on the Module scope to panic")
		}
	}()
	symbols.NewModuleScope().ExitScope()
}

func TestResolveTypeAliasExpandsNested(t *testing.T) {
	root := symbols.NewModuleScope()
	root.DefineTypeAlias("UserId", &coreir.TypeName{Name: "Int"}, nil)
	root.DefineTypeAlias("Money", &coreir.ListType{Elem: &coreir.TypeName{Name: "UserId"}}, nil)

	resolved := root.ResolveTypeAlias("Money")
	lt, ok := resolved.(*coreir.ListType)
	if !ok {
		t.Fatalf("expected ListType, got %T", resolved)
	}
	elem, ok := lt.Elem.(*coreir.TypeName)
	if !ok || elem.Name != "Int" {
		t.Fatalf("expected nested alias to expand to Int, got %#v", lt.Elem)
	}
}

func TestResolveTypeAliasCycleDegradesGracefully(t *testing.T) {
	root := symbols.NewModuleScope()
	root.DefineTypeAlias("A", &coreir.TypeName{Name: "B"}, nil)
	root.DefineTypeAlias("B", &coreir.TypeName{Name: "A"}, nil)

	resolved := root.ResolveTypeAlias("A")
	tn, ok := resolved.(*coreir.TypeName)
	if !ok {
		t.Fatalf("expected TypeName on cycle, got %T", resolved)
	}
	if tn.Name != "A" && tn.Name != "B" {
		t.Fatalf("expected the unexpanded cyclic name, got %q", tn.Name)
	}
}

func TestResolveTypeAliasUnknownNameReturnsTypeName(t *testing.T) {
	root := symbols.NewModuleScope()
	resolved := root.ResolveTypeAlias("Nope")
	tn, ok := resolved.(*coreir.TypeName)
	if !ok || tn.Name != "Nope" {
		t.Fatalf("expected unexpanded TypeName(Nope), got %#v", resolved)
	}
}

func TestDefineTypeAliasUniqueOnName(t *testing.T) {
	root := symbols.NewModuleScope()
	if !root.DefineTypeAlias("Money", &coreir.TypeName{Name: "Float"}, nil) {
		t.Fatal("expected first DefineTypeAlias to succeed")
	}
	if root.DefineTypeAlias("Money", &coreir.TypeName{Name: "Int"}, nil) {
		t.Fatal("expected redefining Money to fail")
	}
}
