package typesystem_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/typesystem"
)

func TestUnifyIdenticalNames(t *testing.T) {
	a := &coreir.TypeName{Name: "Int"}
	b := &coreir.TypeName{Name: "Int"}
	if _, err := typesystem.Unify(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnifyMismatchedNames(t *testing.T) {
	a := &coreir.TypeName{Name: "Int"}
	b := &coreir.TypeName{Name: "Text"}
	if _, err := typesystem.Unify(a, b); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestUnifyVariableBinds(t *testing.T) {
	tv := &coreir.TypeVar{Name: "T"}
	concrete := &coreir.TypeName{Name: "Int"}
	s, err := typesystem.Unify(tv, concrete)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := s["T"]; !ok || typesystem.Describe(got) != "Int" {
		t.Fatalf("expected T bound to Int, got %v", s)
	}
}

func TestUnifyOccursCheckRejectsInfiniteType(t *testing.T) {
	tv := &coreir.TypeVar{Name: "T"}
	selfRef := &coreir.ListType{Elem: tv}
	if _, err := typesystem.Unify(tv, selfRef); err == nil {
		t.Fatal("expected occurs-check failure for T = List<T>")
	}
}

func TestUnifyListElementsRecurse(t *testing.T) {
	tv := &coreir.TypeVar{Name: "T"}
	l1 := &coreir.ListType{Elem: tv}
	l2 := &coreir.ListType{Elem: &coreir.TypeName{Name: "Bool"}}
	s, err := typesystem.Unify(l1, l2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s["T"]; typesystem.Describe(got) != "Bool" {
		t.Fatalf("expected T = Bool, got %v", got)
	}
}

func TestUnifyFuncTypeSubstitutesReturnType(t *testing.T) {
	tv := &coreir.TypeVar{Name: "T"}
	generic := &coreir.FuncType{Params: []coreir.Type{tv}, ReturnType: tv}
	concrete := &coreir.FuncType{
		Params:     []coreir.Type{&coreir.TypeName{Name: "Int"}},
		ReturnType: &coreir.TypeName{Name: "Int"},
	}
	s, err := typesystem.Unify(generic, concrete)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ret := typesystem.Apply(tv, s)
	if typesystem.Describe(ret) != "Int" {
		t.Fatalf("expected return type Int, got %s", typesystem.Describe(ret))
	}
}

func TestUnifyPiiTypeUnwrapsToBase(t *testing.T) {
	wrapped := &coreir.PiiType{Base: &coreir.TypeName{Name: "Text"}, Level: coreir.PiiL2}
	plain := &coreir.TypeName{Name: "Text"}
	if _, err := typesystem.Unify(wrapped, plain); err != nil {
		t.Fatalf("expected PII wrapper to unify transparently with its base type: %v", err)
	}
}

func TestBuiltinSignatureArithmeticIsPerCallFresh(t *testing.T) {
	counter := 0
	fresh := func() string { counter++; return "t" + string(rune('0'+counter)) }
	sig1, ok := typesystem.BuiltinSignature("+", fresh)
	if !ok {
		t.Fatal("expected + to be a known operator")
	}
	sig2, _ := typesystem.BuiltinSignature("+", fresh)
	v1 := sig1.Params[0].(*coreir.TypeVar).Name
	v2 := sig2.Params[0].(*coreir.TypeVar).Name
	if v1 == v2 {
		t.Fatal("expected distinct call sites to get distinct fresh type variables")
	}
}

func TestBuiltinSignatureNot(t *testing.T) {
	sig, ok := typesystem.BuiltinSignature("not", func() string { return "unused" })
	if !ok || len(sig.Params) != 1 {
		t.Fatalf("expected not(Bool) -> Bool, got %#v ok=%v", sig, ok)
	}
}

func TestIsOperatorName(t *testing.T) {
	for _, name := range []string{"+", "<=", "and", "not"} {
		if !typesystem.IsOperatorName(name) {
			t.Errorf("expected %q to be recognized as an operator", name)
		}
	}
	if typesystem.IsOperatorName("Http.get") {
		t.Error("Http.get must not be treated as a builtin operator")
	}
}
