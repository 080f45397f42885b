// Package coreir defines the lowered Core IR spec.md §3 describes: a
// mirror of internal/ast with surface sugar collapsed — nested Block
// becomes Scope, list literals become Construct("List", ...), PII
// annotations are folded into PiiType, Lambda carries an explicit
// capture list, and Func/Workflow carry aggregated PII/capability
// metadata computed during lowering. Grounded on internal/ast's own
// sealed-family-plus-Accept(Visitor) shape (funvibe-funxy's
// internal/ast package), reused here for a tree that is executed by
// checkers instead of a VM.
package coreir

import "github.com/cnlforge/corelang/internal/token"

// Node is the base interface every Core IR node satisfies.
type Node interface {
	Span() token.Span
	Accept(v Visitor)
}

// Module is the root of a lowered compilation unit. TypeAliases holds
// the definitions of every surface TypeAliasDecl, keyed by name: a
// TypeAlias itself never appears in Decls (spec.md §3 "TypeAlias is
// dropped, resolved in-line on demand"), but its target Type must stay
// available for later on-demand resolution by the symbol table and the
// generics checker.
type Module struct {
	ModuleSpan  token.Span
	Name        string
	Decls       []Decl
	TypeAliases map[string]*TypeAliasInfo
}

// TypeAliasInfo is the retained definition of a dropped TypeAliasDecl.
type TypeAliasInfo struct {
	Name       string
	TypeParams []string
	Type       Type
}

func (m *Module) Span() token.Span {
	if m == nil {
		return token.Span{}
	}
	return m.ModuleSpan
}
func (m *Module) Accept(v Visitor) { v.VisitModule(m) }

// AnnotationParam mirrors ast.AnnotationParam but with its value
// already lowered to a Core IR Expr.
type AnnotationParam struct {
	Key   string
	Value Expr
}

// Param is a function/lambda parameter in the lowered tree.
type Param struct {
	ParamSpan token.Span
	Name      string
	Type      Type
}

func (p *Param) Span() token.Span {
	if p == nil {
		return token.Span{}
	}
	return p.ParamSpan
}

// Field is a Data declaration's field, lowered.
type Field struct {
	FieldSpan token.Span
	Name      string
	Type      Type
}

func (f *Field) Span() token.Span {
	if f == nil {
		return token.Span{}
	}
	return f.FieldSpan
}
