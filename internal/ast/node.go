// Package ast defines the sealed AST node families spec.md §3 names:
// Decl, Stmt, Expr, Type, Pattern. Grounded on the teacher's
// internal/ast package (funvibe-funxy): every node is a struct
// implementing a narrow marker interface plus Accept(Visitor), and
// every node's accessor is nil-safe so a partially built node from a
// recovering parser never panics a caller. Unlike the teacher, every
// node here also carries a Span (spec.md invariant 1: "every AST and
// IR node has a span unless it is synthetic").
package ast

import "github.com/cnlforge/corelang/internal/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	Span() token.Span
	Accept(v Visitor)
}

// Module is the root of a parsed CNL source file.
type Module struct {
	ModuleSpan token.Span
	Name       string
	Decls      []Decl
}

func (m *Module) Span() token.Span {
	if m == nil {
		return token.Span{}
	}
	return m.ModuleSpan
}
func (m *Module) Accept(v Visitor) { v.VisitModule(m) }

// Annotation is a type- or decl-level annotation such as
// @pii(level=L2, category="email"). Params preserves source order
// (spec.md §3 "annotations are (name, params: ordered map)");
// positional arguments are keyed "$0", "$1", ... by the builder.
type Annotation struct {
	AnnotationSpan token.Span
	Name           string
	Params         []AnnotationParam
}

type AnnotationParam struct {
	Key   string
	Value Expr
}

func (a *Annotation) Span() token.Span {
	if a == nil {
		return token.Span{}
	}
	return a.AnnotationSpan
}

// Get returns the value bound to key, if present.
func (a *Annotation) Get(key string) (Expr, bool) {
	if a == nil {
		return nil, false
	}
	for _, p := range a.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Param is a function/lambda parameter: a name, its (possibly
// builder-inferred) type, and any annotations attached to it.
type Param struct {
	ParamSpan   token.Span
	Name        string
	Type        Type
	Annotations []*Annotation
}

func (p *Param) Span() token.Span {
	if p == nil {
		return token.Span{}
	}
	return p.ParamSpan
}

// Field is a Data declaration's field, shaped the same as Param.
type Field struct {
	FieldSpan   token.Span
	Name        string
	Type        Type
	Annotations []*Annotation
}

func (f *Field) Span() token.Span {
	if f == nil {
		return token.Span{}
	}
	return f.FieldSpan
}
