// Package asyncdiscipline checks Start/Wait task matching within a
// function body (spec.md §4.9): every started task must be waited on
// exactly once and vice versa, duplicates are flagged, and branches of
// an If/Match are compared for divergent task sets.
package asyncdiscipline

import (
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/token"
)

// taskSites collects every span a task name was started/waited at, in
// occurrence order, so the second entry is always the duplicate span
// spec.md §4.9 wants ("span = second occurrence").
type taskSites map[string][]token.Span

func (m taskSites) record(task string, span token.Span) {
	m[task] = append(m[task], span)
}

// Check walks a function body collecting starts/waits and reports the
// four per-function rules (spec.md §4.9). Branch divergence is checked
// separately as each If/Match is visited, since it needs the sets
// local to each branch rather than the whole-function totals.
func Check(body *coreir.Block) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic
	starts, waits := taskSites{}, taskSites{}
	walkBlock(body, starts, waits, &diags)

	for task, spans := range starts {
		if _, ok := waits[task]; !ok {
			diags = append(diags, diagnostics.NewError(diagnostics.AsyncStartNotWaited, spans[0], task))
		}
		if len(spans) > 1 {
			diags = append(diags, diagnostics.NewError(diagnostics.AsyncDuplicateStart, spans[1], task))
		}
	}
	for task, spans := range waits {
		if _, ok := starts[task]; !ok {
			diags = append(diags, diagnostics.NewError(diagnostics.AsyncWaitNotStarted, spans[0], task))
		}
		if len(spans) > 1 {
			diags = append(diags, diagnostics.NewError(diagnostics.AsyncDuplicateWait, spans[1], task))
		}
	}
	return diags
}

func walkBlock(b *coreir.Block, starts, waits taskSites, diags *[]*diagnostics.Diagnostic) {
	if b == nil {
		return
	}
	for _, s := range b.Statements {
		walkStmt(s, starts, waits, diags)
	}
}

func walkScope(s *coreir.Scope, starts, waits taskSites, diags *[]*diagnostics.Diagnostic) {
	if s == nil {
		return
	}
	for _, st := range s.Statements {
		walkStmt(st, starts, waits, diags)
	}
}

// branchTasks walks a branch in isolation, returning the task names it
// started and waited, for divergence comparison against sibling
// branches (spec.md §4.9's "set of started/waited tasks differs").
func branchTasks(s *coreir.Scope) (startedTasks, waitedTasks map[string]bool) {
	starts, waits := taskSites{}, taskSites{}
	var ignored []*diagnostics.Diagnostic
	walkScope(s, starts, waits, &ignored)
	startedTasks = make(map[string]bool, len(starts))
	for t := range starts {
		startedTasks[t] = true
	}
	waitedTasks = make(map[string]bool, len(waits))
	for t := range waits {
		waitedTasks[t] = true
	}
	return startedTasks, waitedTasks
}

func sameTaskSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func walkStmt(s coreir.Stmt, starts, waits taskSites, diags *[]*diagnostics.Diagnostic) {
	switch n := s.(type) {
	case nil:
		return
	case *coreir.Block:
		walkBlock(n, starts, waits, diags)
	case *coreir.Scope:
		walkScope(n, starts, waits, diags)
	case *coreir.StartStmt:
		starts.record(n.Task, n.Span())
	case *coreir.WaitStmt:
		waits.record(n.Task, n.Span())
	case *coreir.IfStmt:
		walkScope(n.Then, starts, waits, diags)
		walkScope(n.Else, starts, waits, diags)
		if n.Else != nil {
			thenStarted, thenWaited := branchTasks(n.Then)
			elseStarted, elseWaited := branchTasks(n.Else)
			if !sameTaskSet(thenStarted, elseStarted) || !sameTaskSet(thenWaited, elseWaited) {
				*diags = append(*diags, diagnostics.NewError(diagnostics.AsyncBranchDivergent, n.Span(), "if"))
			}
		}
	case *coreir.MatchStmt:
		var armStarted, armWaited []map[string]bool
		for _, arm := range n.Arms {
			walkScope(arm.Body, starts, waits, diags)
			st, wt := branchTasks(arm.Body)
			armStarted = append(armStarted, st)
			armWaited = append(armWaited, wt)
		}
		for i := 1; i < len(armStarted); i++ {
			if !sameTaskSet(armStarted[0], armStarted[i]) || !sameTaskSet(armWaited[0], armWaited[i]) {
				*diags = append(*diags, diagnostics.NewError(diagnostics.AsyncBranchDivergent, n.Span(), "match"))
				break
			}
		}
	case *coreir.WorkflowStmt:
		for _, step := range n.Steps {
			walkStmt(step.Body, starts, waits, diags)
			walkStmt(step.Compensate, starts, waits, diags)
		}
	default:
		return
	}
}
