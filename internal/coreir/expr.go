package coreir

import "github.com/cnlforge/corelang/internal/token"

// Expr is the sealed lowered expression family spec.md §3 names,
// unchanged from internal/ast except ListLiteral never survives
// lowering (it becomes a ConstructExpr) and Lambda carries an explicit
// Captures list.
type Expr interface {
	Node
	exprNode()
}

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

// ConstructExpr builds a named aggregate from labeled fields. Every
// surface ListLiteralExpr lowers to one of these with TypeName "List"
// and field names "0", "1", ... (spec.md §4.4).
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

// LambdaExpr is an anonymous function literal with its capture set
// already computed (spec.md §4.4: "for every Lambda, compute its
// capture set... collect every free Name that is not locally bound").
type LambdaExpr struct {
	ExprSpan   token.Span
	Params     []*Param
	ReturnType Type
	Body       *Block
	Captures   []string
}

func (e *LambdaExpr) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.ExprSpan
}
func (e *LambdaExpr) Accept(v Visitor) { v.VisitLambdaExpr(e) }
func (e *LambdaExpr) exprNode()        {}

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
