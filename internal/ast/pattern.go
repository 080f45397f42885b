package ast

import "github.com/cnlforge/corelang/internal/token"

// Pattern is the sealed match-arm pattern family: PatternNull |
// PatternCtor | PatternName | PatternInt (spec.md §3).
type Pattern interface {
	Node
	patternNode()
}

// PatternNull matches the null literal.
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

// PatternCtor matches a constructor application (an enum variant,
// Ok/Err, Some/None), binding each sub-pattern to the variant's
// fields in order.
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

// PatternName binds the scrutinee (or a field) to a fresh name,
// always matching.
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

// PatternInt matches an exact integer literal.
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
