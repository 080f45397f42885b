package checker

import (
	"sort"

	"github.com/cnlforge/corelang/internal/asyncdiscipline"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/effects"
	"github.com/cnlforge/corelang/internal/pii"
	"github.com/cnlforge/corelang/internal/symbols"
	"github.com/cnlforge/corelang/internal/typesystem"
)

// checkerOrdinal fixes the stable sort order spec.md §4.10 wants for
// diagnostics from different checkers: base type checking first, then
// effects/capabilities, then PII, then async. sortDiagnostics uses it as
// the primary key; position only orders diagnostics within one ordinal.
var checkerOrdinal = map[diagnostics.Code]int{
	diagnostics.DuplicateSymbol:      0,
	diagnostics.UndefinedVariable:    1,
	diagnostics.TypeMismatch:         1,
	diagnostics.ReturnTypeMismatch:   1,
	diagnostics.IfBranchMismatch:     1,
	diagnostics.MatchBranchMismatch:  1,
	diagnostics.NotCallArity:         1,
	diagnostics.AwaitType:            1,
	diagnostics.TypevarInconsistent:  1,
	diagnostics.AssignToImmutable:    1,

	diagnostics.EffMissingIO:                 2,
	diagnostics.EffMissingCPU:                2,
	diagnostics.CapabilityInferMissingIO:     2,
	diagnostics.CapabilityInferMissingCPU:    2,
	diagnostics.EffCapMissing:                2,
	diagnostics.EffCapSuperfluous:            2,
	diagnostics.WorkflowMissingIOEffect:      2,
	diagnostics.WorkflowUndeclaredCapability: 2,
	diagnostics.CompensateNewCapability:      2,
	diagnostics.ManifestCapabilityNotAllowed: 2,

	diagnostics.PiiAssignDowngrade: 3,
	diagnostics.PiiImplicitUplevel: 3,
	diagnostics.PiiArgViolation:    3,
	diagnostics.PiiSinkUnknown:     3,
	diagnostics.PiiSinkUnsanitized: 3,

	diagnostics.AsyncStartNotWaited:  4,
	diagnostics.AsyncWaitNotStarted:  4,
	diagnostics.AsyncDuplicateStart:  4,
	diagnostics.AsyncDuplicateWait:   4,
	diagnostics.AsyncBranchDivergent: 4,
}

// CheckModule runs the full checker suite over a lowered module: it
// registers every Data/Enum/Func declaration into one module scope (so
// forward and mutual references resolve), then runs the base type
// checker, effect/capability checker, PII checker, and async discipline
// checker over every function, returning one sorted diagnostic buffer
// (spec.md §4.10).
func CheckModule(mod *coreir.Module, manifest *effects.Manifest) []*diagnostics.Diagnostic {
	moduleScope := symbols.NewModuleScope()
	var diags []*diagnostics.Diagnostic
	sigs := pii.Signatures{}

	funcs := registerDecls(mod, moduleScope, sigs, &diags)

	for _, fn := range funcs {
		diags = append(diags, CheckFunc(fn, moduleScope, sigs, manifest)...)
	}

	sortDiagnostics(diags)
	return diags
}

func registerDecls(mod *coreir.Module, scope *symbols.Scope, sigs pii.Signatures, diags *[]*diagnostics.Diagnostic) []*coreir.FuncDecl {
	var funcs []*coreir.FuncDecl
	for name, alias := range mod.TypeAliases {
		scope.DefineTypeAlias(name, alias.Type, alias.TypeParams)
	}
	for _, d := range mod.Decls {
		switch n := d.(type) {
		case *coreir.DataDecl:
			if _, diag := scope.Define(n.Name, &coreir.TypeName{Name: n.Name}, symbols.SymData,
				symbols.DefineOptions{Span: n.Span()}); diag != nil {
				*diags = append(*diags, diag)
			}
		case *coreir.EnumDecl:
			if _, diag := scope.Define(n.Name, &coreir.TypeName{Name: n.Name}, symbols.SymEnum,
				symbols.DefineOptions{Span: n.Span()}); diag != nil {
				*diags = append(*diags, diag)
			}
		case *coreir.FuncDecl:
			paramTypes := make([]coreir.Type, len(n.Params))
			for i, p := range n.Params {
				paramTypes[i] = p.Type
			}
			ft := &coreir.FuncType{Params: paramTypes, ReturnType: n.ReturnType}
			if _, diag := scope.Define(n.Name, ft, symbols.SymFunc,
				symbols.DefineOptions{Span: n.Span(), DeclaredEffect: n.Effect}); diag != nil {
				*diags = append(*diags, diag)
			}
			sigs[n.Name] = n
			funcs = append(funcs, n)
		}
	}
	return funcs
}

// CheckFunc runs all four checker suites over one function: base type
// checking with generics, effect/capability, PII taint-flow, and async
// discipline.
func CheckFunc(fn *coreir.FuncDecl, moduleScope *symbols.Scope, sigs pii.Signatures, manifest *effects.Manifest) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic

	fnScope := moduleScope.EnterScope(symbols.ScopeFunction)
	for _, p := range fn.Params {
		fnScope.Define(p.Name, p.Type, symbols.SymParam, symbols.DefineOptions{Mutable: false, Span: p.Span()})
	}
	c := newCtx(&diags)
	bodyType, hasValue := typeBlockValue(fn.Body.Statements, fnScope, c)
	if hasValue {
		declared := expandAliases(fn.ReturnType, fnScope)
		if !typesEqualAfterExpand(bodyType, declared, fnScope) {
			diags = append(diags, diagnostics.NewError(diagnostics.ReturnTypeMismatch, fn.Span(),
				describeOrUnknown(declared), describeOrUnknown(bodyType)))
		}
	}

	diags = append(diags, effects.CheckFunc(fn, moduleScope, manifest)...)
	diags = append(diags, asyncdiscipline.Check(fn.Body)...)
	diags = append(diags, pii.CheckFunc(fn, sigs)...)

	return diags
}

func typesEqualAfterExpand(a, b coreir.Type, scope *symbols.Scope) bool {
	return describeOrUnknown(expandAliases(a, scope)) == describeOrUnknown(expandAliases(b, scope))
}

func describeOrUnknown(t coreir.Type) string {
	if t == nil {
		return "Unknown"
	}
	return typesystem.Describe(t)
}

// sortDiagnostics orders diagnostics by (checkerOrdinal, line, column)
// (spec.md §4.10), stable so same-key diagnostics keep discovery order.
func sortDiagnostics(diags []*diagnostics.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		oi, oj := checkerOrdinal[diags[i].Code], checkerOrdinal[diags[j].Code]
		if oi != oj {
			return oi < oj
		}
		si, sj := diags[i].Span.Start, diags[j].Span.Start
		if si.Line != sj.Line {
			return si.Line < sj.Line
		}
		return si.Column < sj.Column
	})
}
