package typesystem

import "github.com/cnlforge/corelang/internal/coreir"

// boolType is the one scalar TypeName builtin operator signatures are
// expressed in terms of; the others use fresh type variables.
var boolType = &coreir.TypeName{Name: "Bool"}

// arithmeticOps and comparisonOps name the operator-call callees
// spec.md §4.6 singles out ("a handful of arithmetic/comparison
// operator names ... are treated as ordinary calls whose type is known
// by name"), grounded on the parser's folded operator symbols
// (internal/parser/precedence.go's binaryPrecedence table).
var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true}
var comparisonOps = map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true}
var booleanOps = map[string]bool{"and": true, "or": true}

// BuiltinSignature returns the FuncType for a special-cased operator
// callee, instantiated with a fresh type variable from freshName so
// that unrelated call sites don't spuriously unify with each other.
// Arithmetic operators are (T, T) -> T; comparisons are (T, T) -> Bool;
// "and"/"or" are (Bool, Bool) -> Bool; "not" is (Bool) -> Bool (spec.md
// §4.6 "not(x) returns Bool (arity check 1)").
func BuiltinSignature(name string, freshName func() string) (*coreir.FuncType, bool) {
	switch {
	case name == "not":
		return &coreir.FuncType{Params: []coreir.Type{boolType}, ReturnType: boolType}, true
	case arithmeticOps[name]:
		t := &coreir.TypeVar{Name: freshName()}
		return &coreir.FuncType{Params: []coreir.Type{t, t}, ReturnType: t}, true
	case comparisonOps[name]:
		t := &coreir.TypeVar{Name: freshName()}
		return &coreir.FuncType{Params: []coreir.Type{t, t}, ReturnType: boolType}, true
	case booleanOps[name]:
		return &coreir.FuncType{Params: []coreir.Type{boolType, boolType}, ReturnType: boolType}, true
	}
	return nil, false
}

// IsOperatorName reports whether name is one of the special-cased
// callees BuiltinSignature knows about.
func IsOperatorName(name string) bool {
	return name == "not" || arithmeticOps[name] || comparisonOps[name] || booleanOps[name]
}
