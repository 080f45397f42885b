package coreir

import (
	"time"

	"github.com/cnlforge/corelang/internal/token"
)

// Stmt is the sealed lowered statement family: Let | Set | Return | If
// | Match | Start | Wait | Workflow | Block | Scope. Scope is the one
// addition over internal/ast's Stmt family: a surface Block nested
// inside another statement lowers to Scope, while a function's
// top-level Block stays a Block (spec.md §4.4).
type Stmt interface {
	Node
	stmtNode()
}

// Block is a function's top-level body.
type Block struct {
	BlockSpan  token.Span
	Statements []Stmt
}

func (s *Block) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.BlockSpan
}
func (s *Block) Accept(v Visitor) { v.VisitBlock(s) }
func (s *Block) stmtNode()        {}

// Scope is a nested lexical block: the If/Match/Step body shape, with
// its own child scope in the symbol table but no value of its own
// beyond its last Return-yielding statement (spec.md §4.6 "Scope enters
// and exits a Block scope").
type Scope struct {
	ScopeSpan  token.Span
	Statements []Stmt
}

func (s *Scope) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.ScopeSpan
}
func (s *Scope) Accept(v Visitor) { v.VisitScope(s) }
func (s *Scope) stmtNode()        {}

type LetStmt struct {
	StmtSpan token.Span
	Name     string
	Type     Type
	Value    Expr
}

func (s *LetStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *LetStmt) Accept(v Visitor) { v.VisitLetStmt(s) }
func (s *LetStmt) stmtNode()        {}

type SetStmt struct {
	StmtSpan token.Span
	Name     string
	Value    Expr
}

func (s *SetStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *SetStmt) Accept(v Visitor) { v.VisitSetStmt(s) }
func (s *SetStmt) stmtNode()        {}

type ReturnStmt struct {
	StmtSpan token.Span
	Value    Expr
}

func (s *ReturnStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(s) }
func (s *ReturnStmt) stmtNode()        {}

type IfStmt struct {
	StmtSpan token.Span
	Cond     Expr
	Then     *Scope
	Else     *Scope
	ElseIsIf bool
}

func (s *IfStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }
func (s *IfStmt) stmtNode()        {}

type MatchArm struct {
	ArmSpan token.Span
	Pattern Pattern
	Body    *Scope
}

func (a *MatchArm) Span() token.Span {
	if a == nil {
		return token.Span{}
	}
	return a.ArmSpan
}

type MatchStmt struct {
	StmtSpan token.Span
	Subject  Expr
	Arms     []*MatchArm
}

func (s *MatchStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *MatchStmt) Accept(v Visitor) { v.VisitMatchStmt(s) }
func (s *MatchStmt) stmtNode()        {}

type StartStmt struct {
	StmtSpan token.Span
	Task     string
	Call     Expr
}

func (s *StartStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *StartStmt) Accept(v Visitor) { v.VisitStartStmt(s) }
func (s *StartStmt) stmtNode()        {}

type WaitStmt struct {
	StmtSpan token.Span
	Task     string
	Name     string
}

func (s *WaitStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *WaitStmt) Accept(v Visitor) { v.VisitWaitStmt(s) }
func (s *WaitStmt) stmtNode()        {}

type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// Step is one stage of a Workflow, with DependsOn defaulted during
// lowering to the textual predecessor when no "depends on" clause was
// written, and Capabilities set to the *observed* union of capabilities
// inferred from its body and compensate block (spec.md §4.4) — not a
// declared list; Steps have no declaration clause of their own.
type Step struct {
	StepSpan     token.Span
	Name         string
	Body         Stmt
	Compensate   Stmt
	Retry        *RetryPolicy
	Timeout      *time.Duration
	DependsOn    []string
	Capabilities []string
}

func (s *Step) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StepSpan
}

// WorkflowStmt sequences Steps. Effect/Capabilities are the declared
// clause, carried through unchanged from the AST. InferredCapabilities
// is the union of every Step's observed Capabilities (spec.md §4.4
// "The workflow's effectCaps is the union over its steps"), computed
// during lowering for the capability checker to compare against
// Capabilities.
type WorkflowStmt struct {
	StmtSpan             token.Span
	Name                 string
	Steps                []*Step
	Effect               string
	Capabilities         []string
	InferredCapabilities []string
}

func (s *WorkflowStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *WorkflowStmt) Accept(v Visitor) { v.VisitWorkflowStmt(s) }
func (s *WorkflowStmt) stmtNode()        {}
