package checker

import (
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/symbols"
	"github.com/cnlforge/corelang/internal/typesystem"
)

// TypeStmt checks one statement and reports whether it yields a value
// and, if so, the value's type (spec.md §4.6 "Statement typing"). Only
// Return (directly, or as the last statement of a value-producing
// Scope/If/Match) yields a value.
func TypeStmt(s coreir.Stmt, scope *symbols.Scope, c *ctx) (coreir.Type, bool) {
	switch n := s.(type) {
	case nil:
		return nil, false
	case *coreir.Block:
		return typeBlockValue(n.Statements, scope, c)
	case *coreir.Scope:
		if n == nil {
			return nil, false
		}
		inner := scope.EnterScope(symbols.ScopeBlock)
		return typeBlockValue(n.Statements, inner, c)
	case *coreir.LetStmt:
		valueType := TypeExpr(n.Value, scope, c)
		declType := n.Type
		if declType == nil {
			declType = valueType
		}
		scope.Define(n.Name, declType, symbols.SymVar, symbols.DefineOptions{Mutable: false, Span: n.Span()})
		return nil, false
	case *coreir.SetStmt:
		valueType := TypeExpr(n.Value, scope, c)
		sym, ok := scope.Lookup(n.Name)
		if !ok {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.UndefinedVariable, n.Span(), n.Name))
			return nil, false
		}
		if !sym.Mutable {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.AssignToImmutable, n.Span(), n.Name))
		}
		if !typesystem.Equal(expandAliases(sym.Type, scope), expandAliases(valueType, scope)) {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.TypeMismatch, n.Span(),
				typesystem.Describe(sym.Type), typesystem.Describe(valueType)))
		}
		return nil, false
	case *coreir.ReturnStmt:
		return TypeExpr(n.Value, scope, c), true
	case *coreir.IfStmt:
		condType := TypeExpr(n.Cond, scope, c)
		if !typesystem.Equal(condType, boolType) {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.TypeMismatch, n.Cond.Span(),
				typesystem.Describe(boolType), typesystem.Describe(condType)))
		}
		thenType, thenHas := TypeStmt(n.Then, scope, c)
		var elseType coreir.Type
		var elseHas bool
		if n.Else != nil {
			elseType, elseHas = TypeStmt(n.Else, scope, c)
		}
		if thenHas && elseHas && !typesystem.Equal(thenType, elseType) {
			*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.IfBranchMismatch, n.Span(),
				typesystem.Describe(thenType), typesystem.Describe(elseType)))
		}
		if thenHas && elseHas {
			return thenType, true
		}
		return nil, false
	case *coreir.MatchStmt:
		subjectType := TypeExpr(n.Subject, scope, c)
		var firstType coreir.Type
		haveFirst := false
		for _, arm := range n.Arms {
			armScope := scope.EnterScope(symbols.ScopeBlock)
			bindPattern(arm.Pattern, subjectType, armScope, c)
			armType, armHas := TypeStmt(arm.Body, armScope, c)
			if !armHas {
				continue
			}
			if !haveFirst {
				firstType, haveFirst = armType, true
				continue
			}
			if !typesystem.Equal(firstType, armType) {
				*c.diags = append(*c.diags, diagnostics.NewError(diagnostics.MatchBranchMismatch, n.Span(),
					typesystem.Describe(firstType), typesystem.Describe(armType)))
			}
		}
		return firstType, haveFirst
	case *coreir.StartStmt:
		callType := TypeExpr(n.Call, scope, c)
		scope.Define(n.Task, callType, symbols.SymTask, symbols.DefineOptions{Mutable: false, Span: n.Span()})
		return nil, false
	case *coreir.WaitStmt:
		return nil, false
	case *coreir.WorkflowStmt:
		for _, step := range n.Steps {
			TypeStmt(step.Body, scope, c)
			TypeStmt(step.Compensate, scope, c)
		}
		return nil, false
	default:
		return nil, false
	}
}

// typeBlockValue checks a statement sequence in order, sharing one
// scope, and returns the last statement's value (spec.md §4.6 "Scope
// ... its value type is the last Return-yielding statement's type").
func typeBlockValue(stmts []coreir.Stmt, scope *symbols.Scope, c *ctx) (coreir.Type, bool) {
	var lastType coreir.Type
	var lastHas bool
	for _, st := range stmts {
		lastType, lastHas = TypeStmt(st, scope, c)
	}
	return lastType, lastHas
}

// bindPattern introduces the names a Match arm's pattern binds, using
// the subject's wrapper structure (Result/Maybe/Option) to recover an
// inner binding's type where possible, and a fresh type variable
// otherwise (spec.md §4.6 "pattern bindings enter a fresh scope per
// branch").
func bindPattern(p coreir.Pattern, subjectType coreir.Type, scope *symbols.Scope, c *ctx) {
	switch n := p.(type) {
	case nil, *coreir.PatternNull, *coreir.PatternInt:
		return
	case *coreir.PatternName:
		t := subjectType
		if t == nil {
			t = &coreir.TypeVar{Name: c.fresh()}
		}
		scope.Define(n.Name, t, symbols.SymVar, symbols.DefineOptions{Mutable: false, Span: n.Span()})
	case *coreir.PatternCtor:
		switch n.Name {
		case "Ok":
			if rt, ok := subjectType.(*coreir.ResultType); ok && len(n.Args) == 1 {
				bindPattern(n.Args[0], rt.Ok, scope, c)
				return
			}
		case "Err":
			if rt, ok := subjectType.(*coreir.ResultType); ok && len(n.Args) == 1 {
				bindPattern(n.Args[0], rt.Err, scope, c)
				return
			}
		case "Some":
			if len(n.Args) == 1 {
				if mt, ok := subjectType.(*coreir.MaybeType); ok {
					bindPattern(n.Args[0], mt.Elem, scope, c)
					return
				}
				if ot, ok := subjectType.(*coreir.OptionType); ok {
					bindPattern(n.Args[0], ot.Elem, scope, c)
					return
				}
			}
		case "None", "Nothing":
			return
		}
		for _, a := range n.Args {
			bindPattern(a, nil, scope, c)
		}
	}
}
