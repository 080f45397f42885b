package ast

import (
	"time"

	"github.com/cnlforge/corelang/internal/token"
)

// Stmt is the sealed statement family: Let | Set | Return | If |
// Match | Start | Wait | Workflow | Block (spec.md §3).
type Stmt interface {
	Node
	stmtNode()
}

// Block groups a sequence of statements under one indentation level.
// Lowering turns a nested Block into a Core IR Scope (spec.md §4.4);
// a function's top-level Block stays a Block.
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

// LetStmt introduces an immutable binding: "Let total be price + tax."
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

// SetStmt reassigns an existing mutable binding: "Set total to 0."
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

// ReturnStmt yields the enclosing function's value: "Return total."
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

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	StmtSpan  token.Span
	Cond      Expr
	Then      *Block
	Else      *Block
	ElseIsIf  bool // true when Else holds a single-statement "else if" chain
}

func (s *IfStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }
func (s *IfStmt) stmtNode()        {}

// MatchArm is one "when <pattern>: <body>" arm of a MatchStmt.
type MatchArm struct {
	ArmSpan token.Span
	Pattern Pattern
	Body    *Block
}

func (a *MatchArm) Span() token.Span {
	if a == nil {
		return token.Span{}
	}
	return a.ArmSpan
}

// MatchStmt branches on the shape of Subject across its Arms.
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

// StartStmt launches an asynchronous task under a name later joined
// by a matching WaitStmt (spec.md §4.9).
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

// WaitStmt joins a task previously launched by a StartStmt, binding
// its result to Name if given.
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

// RetryPolicy configures how many times a workflow step is retried
// and the backoff between attempts (supplemented shape, SPEC_FULL.md
// §6: spec.md names Retry/Timeout on a Step but not their fields).
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// Step is one stage of a Workflow. DependsOn is explicit when written
// ("depends on checkInventory"); when omitted, lowering fills it with
// the step's textual predecessor (spec.md §4.4).
type Step struct {
	StepSpan    token.Span
	Name        string
	Body        Stmt
	Compensate  Stmt
	Retry       *RetryPolicy
	Timeout     *time.Duration
	DependsOn   []string
}

func (s *Step) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StepSpan
}

// WorkflowStmt sequences Steps with compensation and capability rules
// spec.md §4.4/§4.7 describe.
type WorkflowStmt struct {
	StmtSpan     token.Span
	Name         string
	Steps        []*Step
	Effect       string
	Capabilities []string
}

func (s *WorkflowStmt) Span() token.Span {
	if s == nil {
		return token.Span{}
	}
	return s.StmtSpan
}
func (s *WorkflowStmt) Accept(v Visitor) { v.VisitWorkflowStmt(s) }
func (s *WorkflowStmt) stmtNode()        {}
