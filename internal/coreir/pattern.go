package coreir

import "github.com/cnlforge/corelang/internal/token"

// Pattern mirrors internal/ast's Pattern family unchanged; lowering
// does not rewrite pattern shapes, only the expressions/types inside.
type Pattern interface {
	Node
	patternNode()
}

type PatternNull struct {
	PatternSpan token.Span
}

func (p *PatternNull) Span() token.Span {
	if p == nil {
		return token.Span{}
	}
	return p.PatternSpan
}
func (p *PatternNull) Accept(v Visitor) { v.VisitPatternNull(p) }
func (p *PatternNull) patternNode()     {}

type PatternCtor struct {
	PatternSpan token.Span
	Name        string
	Args        []Pattern
}

func (p *PatternCtor) Span() token.Span {
	if p == nil {
		return token.Span{}
	}
	return p.PatternSpan
}
func (p *PatternCtor) Accept(v Visitor) { v.VisitPatternCtor(p) }
func (p *PatternCtor) patternNode()     {}

type PatternName struct {
	PatternSpan token.Span
	Name        string
}

func (p *PatternName) Span() token.Span {
	if p == nil {
		return token.Span{}
	}
	return p.PatternSpan
}
func (p *PatternName) Accept(v Visitor) { v.VisitPatternName(p) }
func (p *PatternName) patternNode()     {}

type PatternInt struct {
	PatternSpan token.Span
	Value       int64
}

func (p *PatternInt) Span() token.Span {
	if p == nil {
		return token.Span{}
	}
	return p.PatternSpan
}
func (p *PatternInt) Accept(v Visitor) { v.VisitPatternInt(p) }
func (p *PatternInt) patternNode()     {}
