package effects

import (
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/symbols"
	"github.com/cnlforge/corelang/internal/token"
)

// Manifest carries an optional allow-list of capabilities a module's
// declared capabilities must stay within (spec.md §4.7 "Manifest").
type Manifest struct {
	AllowedCapabilities map[string]bool
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

// CheckFunc infers fn's body effect and capability usage and compares
// it against its declared Effect/Capabilities (spec.md §4.7).
func CheckFunc(fn *coreir.FuncDecl, scope *symbols.Scope, manifest *Manifest) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic
	declared := ParseEffect(fn.Effect)
	caps := Capabilities{}
	observed := InferBody(fn.Body, scope, caps)

	if observed.Exceeds(declared) {
		switch {
		case observed == IO || observed == Async:
			diags = append(diags, diagnostics.NewError(diagnostics.EffMissingIO, fn.Span(), fn.Name))
		case observed == Cpu:
			diags = append(diags, diagnostics.NewError(diagnostics.EffMissingCPU, fn.Span(), fn.Name))
		}
	}

	diags = append(diags, checkCapabilities(fn.Name, fn.Span(), declared, fn.Capabilities, caps)...)

	if manifest != nil {
		for _, c := range fn.Capabilities {
			if !manifest.AllowedCapabilities[c] {
				diags = append(diags, diagnostics.NewError(diagnostics.ManifestCapabilityNotAllowed, fn.Span(), c))
			}
		}
	}

	return diags
}

// checkCapabilities implements spec.md §4.7's capability rules shared
// between a plain function and (per step) a workflow: with no explicit
// capability list, only the io/cpu omission checks apply; with an
// explicit list, every used capability must be declared and every
// declared-but-unused one is flagged.
func checkCapabilities(subjectName string, span token.Span, declaredEffect Effect, declaredCaps []string, caps Capabilities) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic
	used := caps.Names()

	if len(declaredCaps) == 0 {
		for _, c := range used {
			if c == "Cpu" {
				continue
			}
			if declaredEffect.rank() < IO.rank() {
				sample := caps[c][0].Callee
				diags = append(diags, diagnostics.NewError(
					diagnostics.CapabilityInferMissingIO, span, subjectName, c, sample))
			}
		}
		if contains(used, "Cpu") && declaredEffect.rank() < Cpu.rank() {
			diags = append(diags, diagnostics.NewError(diagnostics.CapabilityInferMissingCPU, span, subjectName))
		}
		return diags
	}

	for _, c := range used {
		if !contains(declaredCaps, c) {
			diags = append(diags, diagnostics.NewError(diagnostics.EffCapMissing, span, c))
		}
	}
	for _, c := range declaredCaps {
		if !contains(used, c) {
			diags = append(diags, diagnostics.NewError(diagnostics.EffCapSuperfluous, span, c))
		}
	}
	return diags
}

// CheckWorkflow applies spec.md §4.7's workflow rules: the enclosing
// function must declare io; each step's observed capabilities must be
// a subset of the function's declared capabilities; a step's
// compensate block may not introduce a capability its body didn't use.
func CheckWorkflow(wf *coreir.WorkflowStmt, enclosingFuncDeclaredEffect Effect, enclosingFuncCapabilities []string, scope *symbols.Scope) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic

	if enclosingFuncDeclaredEffect.rank() < IO.rank() {
		diags = append(diags, diagnostics.NewError(diagnostics.WorkflowMissingIOEffect, wf.Span(), wf.Name))
	}

	for _, step := range wf.Steps {
		for _, c := range step.Capabilities {
			if len(enclosingFuncCapabilities) > 0 && !contains(enclosingFuncCapabilities, c) {
				diags = append(diags, diagnostics.NewError(
					diagnostics.WorkflowUndeclaredCapability, step.Span(), step.Name, c))
			}
		}

		bodyCaps := Capabilities{}
		InferStmt(step.Body, scope, bodyCaps)
		compCaps := Capabilities{}
		InferStmt(step.Compensate, scope, compCaps)
		for _, c := range compCaps.Names() {
			if _, inBody := bodyCaps[c]; !inBody {
				diags = append(diags, diagnostics.NewError(
					diagnostics.CompensateNewCapability, step.Span(), step.Name, c))
			}
		}
	}

	return diags
}
