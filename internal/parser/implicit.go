package parser

import (
	"strings"
	"unicode"

	"github.com/cnlforge/corelang/internal/ast"
)

// Name-heuristic tables spec.md §4.3 "Implicit types" requires. Each
// table is tried in order; the first match wins, so list order doubles
// as priority (a boolean prefix beats an id-like suffix because it is
// checked first).
var boolPrefixes = []string{"is", "has", "can", "should", "was", "were", "does", "did"}
var idSuffixes = []string{"Id", "Code", "Key", "Token", "Uuid", "Vin"}
var moneySuffixes = []string{"Amount", "Price", "Cost", "Fee", "Total", "Balance"}
var countSuffixes = []string{"Count", "Number", "Qty", "Quantity", "Days", "Hours", "Minutes", "Seconds"}
var dateSuffixes = []string{"Date", "Time", "At", "Timestamp"}

var generateReturnPrefixes = []string{"generate", "create", "build", "make", "produce", "compose"}
var calculateReturnPrefixes = []string{"calculate", "compute", "count", "sum"}

var builtinTypeNames = map[string]bool{
	"Int": true, "Text": true, "Bool": true, "Float": true, "Long": true, "DateTime": true,
}

// hasCamelPrefix reports whether name begins with prefix at a word
// boundary: either prefix is the whole name, or the next rune starts a
// new capitalized word ("isValid" matches "is"; "island" does not).
func hasCamelPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	rest := name[len(prefix):]
	if rest == "" {
		return true
	}
	return unicode.IsUpper([]rune(rest)[0])
}

func hasCamelSuffix(name, suffix string) bool {
	return strings.HasSuffix(name, suffix) && len(name) >= len(suffix)
}

func mkType(name string) ast.Type {
	return &ast.TypeName{Name: name}
}

// inferParamType implements spec.md §4.3's parameter/field name
// heuristic: boolean prefix > id-like suffix > money-like suffix >
// count-like suffix > date-like suffix > Text.
func inferParamType(name string) ast.Type {
	for _, pre := range boolPrefixes {
		if hasCamelPrefix(name, pre) {
			return mkType("Bool")
		}
	}
	for _, suf := range idSuffixes {
		if hasCamelSuffix(name, suf) {
			return mkType("Text")
		}
	}
	for _, suf := range moneySuffixes {
		if hasCamelSuffix(name, suf) {
			return mkType("Float")
		}
	}
	for _, suf := range countSuffixes {
		if hasCamelSuffix(name, suf) {
			return mkType("Int")
		}
	}
	for _, suf := range dateSuffixes {
		if hasCamelSuffix(name, suf) {
			return mkType("DateTime")
		}
	}
	return mkType("Text")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// inferReturnType implements spec.md §4.3's function-name heuristic
// for an omitted "produce Type" clause: generate/create/build/...
// yields the capitalized remainder of the name; calculate/compute/...
// yields Int; a boolean prefix yields Bool; otherwise Text.
func inferReturnType(funcName string) ast.Type {
	for _, pre := range generateReturnPrefixes {
		if hasCamelPrefix(funcName, pre) {
			rest := funcName[len(pre):]
			if rest != "" {
				return mkType(capitalize(rest))
			}
		}
	}
	for _, pre := range calculateReturnPrefixes {
		if hasCamelPrefix(funcName, pre) {
			return mkType("Int")
		}
	}
	for _, pre := range boolPrefixes {
		if hasCamelPrefix(funcName, pre) {
			return mkType("Bool")
		}
	}
	return mkType("Text")
}

// looksLikeTypeVar reports whether name is shaped like an inferred
// type parameter: a single uppercase letter, optionally followed by
// digits (T, U, T1), and not one of the built-in scalar names.
func looksLikeTypeVar(name string) bool {
	if builtinTypeNames[name] {
		return false
	}
	r := []rune(name)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return false
	}
	for _, c := range r[1:] {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// walkTypeVars collects bare type-variable-shaped TypeName leaves
// inside t, in first-occurrence order, into order/seen.
func walkTypeVars(t ast.Type, seen map[string]bool, order *[]string) {
	switch tt := t.(type) {
	case nil:
		return
	case *ast.TypeName:
		if looksLikeTypeVar(tt.Name) && !seen[tt.Name] {
			seen[tt.Name] = true
			*order = append(*order, tt.Name)
		}
	case *ast.TypeApp:
		for _, a := range tt.Args {
			walkTypeVars(a, seen, order)
		}
	case *ast.ResultType:
		walkTypeVars(tt.Ok, seen, order)
		walkTypeVars(tt.Err, seen, order)
	case *ast.MaybeType:
		walkTypeVars(tt.Elem, seen, order)
	case *ast.OptionType:
		walkTypeVars(tt.Elem, seen, order)
	case *ast.ListType:
		walkTypeVars(tt.Elem, seen, order)
	case *ast.MapType:
		walkTypeVars(tt.Key, seen, order)
		walkTypeVars(tt.Value, seen, order)
	case *ast.FuncType:
		for _, pt := range tt.Params {
			walkTypeVars(pt, seen, order)
		}
		walkTypeVars(tt.ReturnType, seen, order)
	}
}

// applyImplicitTypes fills in whatever spec.md §4.3 lets the writer
// omit: each untyped parameter's type, the function's return type, and
// — when no explicit "of T and U" clause was written — its implicit
// type-parameter list, promoted from the parameter/return types in
// first-occurrence order.
//
// Known limitation: the "not declared at module level" half of the
// type-variable rule (spec.md §4.6) is not applied anywhere. The parser
// builds one function at a time and does not have the enclosing
// module's Data/Enum names in scope, so a single-letter TypeName that
// actually names a module-level type is indistinguishable here from a
// genuine implicit type variable, and no later stage revisits
// fn.TypeParams to correct it. See DESIGN.md's Open Question decisions.
func (p *Parser) applyImplicitTypes(fn *ast.FuncDecl) {
	for _, prm := range fn.Params {
		if prm.Type == nil {
			prm.Type = inferParamType(prm.Name)
		}
	}
	if fn.ReturnType == nil {
		fn.ReturnType = inferReturnType(fn.Name)
	}
	if len(fn.TypeParams) > 0 {
		return
	}
	seen := map[string]bool{}
	var order []string
	for _, prm := range fn.Params {
		walkTypeVars(prm.Type, seen, &order)
	}
	walkTypeVars(fn.ReturnType, seen, &order)
	fn.TypeParams = order
}
