package ast

import "github.com/cnlforge/corelang/internal/token"

// Expr is the sealed expression family spec.md §3 names: Name | Bool |
// Int | Long | Double | String | Null | Call | Construct | Ok | Err |
// Some | None | ListLiteral | Lambda | Await.
type Expr interface {
	Node
	exprNode()
}

// NameExpr is an identifier reference, a qualified member chain
// ("Http.get"), or a folded operator symbol ("+", "<=") used as a
// callee (spec.md §4.3 "Operator folding").
type NameExpr struct {
	ExprSpan token.Span
	Value    string
}

func (e *NameExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *NameExpr) Accept(v Visitor) { v.VisitNameExpr(e) }
func (e *NameExpr) exprNode()        {}

type BoolExpr struct {
	ExprSpan token.Span
	Value    bool
}

func (e *BoolExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *BoolExpr) Accept(v Visitor) { v.VisitBoolExpr(e) }
func (e *BoolExpr) exprNode()        {}

type IntExpr struct {
	ExprSpan token.Span
	Value    int64
}

func (e *IntExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *IntExpr) Accept(v Visitor) { v.VisitIntExpr(e) }
func (e *IntExpr) exprNode()        {}

type LongExpr struct {
	ExprSpan token.Span
	Value    int64
}

func (e *LongExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *LongExpr) Accept(v Visitor) { v.VisitLongExpr(e) }
func (e *LongExpr) exprNode()        {}

type DoubleExpr struct {
	ExprSpan token.Span
	Value    float64
}

func (e *DoubleExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *DoubleExpr) Accept(v Visitor) { v.VisitDoubleExpr(e) }
func (e *DoubleExpr) exprNode()        {}

type StringExpr struct {
	ExprSpan token.Span
	Value    string
}

func (e *StringExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *StringExpr) Accept(v Visitor) { v.VisitStringExpr(e) }
func (e *StringExpr) exprNode()        {}

type NullExpr struct {
	ExprSpan token.Span
}

func (e *NullExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *NullExpr) Accept(v Visitor) { v.VisitNullExpr(e) }
func (e *NullExpr) exprNode()        {}

// CallExpr invokes Callee with Args. The AST builder has already
// resolved "with"-form calls and member-chain qualification into this
// single shape (spec.md §4.3 "Postfix suffix handling").
type CallExpr struct {
	ExprSpan token.Span
	Callee   Expr
	Args     []Expr
}

func (e *CallExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *CallExpr) Accept(v Visitor) { v.VisitCallExpr(e) }
func (e *CallExpr) exprNode()        {}

// ConstructExpr builds a named aggregate from labeled fields, e.g. a
// Data literal or — after lowering — a desugared list literal with
// fields "0", "1", ... (spec.md §3 Core IR).
type ConstructExpr struct {
	ExprSpan   token.Span
	TypeName   string
	FieldNames []string
	FieldVals  []Expr
}

func (e *ConstructExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *ConstructExpr) Accept(v Visitor) { v.VisitConstructExpr(e) }
func (e *ConstructExpr) exprNode()        {}

// OkExpr / ErrExpr wrap a Result value; SomeExpr / NoneExpr wrap a
// Maybe/Option value (spec.md §4.3 "Wrap/sugar recognition").
type OkExpr struct {
	ExprSpan token.Span
	Value    Expr
}

func (e *OkExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *OkExpr) Accept(v Visitor) { v.VisitOkExpr(e) }
func (e *OkExpr) exprNode()        {}

type ErrExpr struct {
	ExprSpan token.Span
	Value    Expr
}

func (e *ErrExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *ErrExpr) Accept(v Visitor) { v.VisitErrExpr(e) }
func (e *ErrExpr) exprNode()        {}

type SomeExpr struct {
	ExprSpan token.Span
	Value    Expr
}

func (e *SomeExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *SomeExpr) Accept(v Visitor) { v.VisitSomeExpr(e) }
func (e *SomeExpr) exprNode()        {}

type NoneExpr struct {
	ExprSpan token.Span
}

func (e *NoneExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *NoneExpr) Accept(v Visitor) { v.VisitNoneExpr(e) }
func (e *NoneExpr) exprNode()        {}

// ListLiteralExpr is surface "[e1, e2, ...]"; lowering rewrites it to
// a ConstructExpr("List", ...) (spec.md §4.4).
type ListLiteralExpr struct {
	ExprSpan token.Span
	Elements []Expr
}

func (e *ListLiteralExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *ListLiteralExpr) Accept(v Visitor) { v.VisitListLiteralExpr(e) }
func (e *ListLiteralExpr) exprNode()        {}

// LambdaExpr is an anonymous function literal. Captures is nil on the
// AST; lowering computes and fills it on the Core IR counterpart
// (spec.md §4.4 "compute its capture set").
type LambdaExpr struct {
	ExprSpan   token.Span
	Params     []*Param
	ReturnType Type
	Body       *Block
}

func (e *LambdaExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *LambdaExpr) Accept(v Visitor) { v.VisitLambdaExpr(e) }
func (e *LambdaExpr) exprNode()        {}

// AwaitExpr forces a previously started task's value inline, setting
// the enclosing expression's effect to async (spec.md §4.7).
type AwaitExpr struct {
	ExprSpan token.Span
	Task     string
}

func (e *AwaitExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *AwaitExpr) Accept(v Visitor) { v.VisitAwaitExpr(e) }
func (e *AwaitExpr) exprNode()        {}
