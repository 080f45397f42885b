package parser

import (
	"strconv"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/token"
)

// parsePattern parses one Match-arm pattern: null | Ctor(p1, p2, ...) |
// name | intLiteral (spec.md §3's Pattern family).
func (p *Parser) parsePattern() ast.Pattern {
	switch {
	case p.curTokenIs(token.NULL):
		return &ast.PatternNull{PatternSpan: p.curToken.Span()}
	case p.curTokenIs(token.INT):
		v, _ := strconv.ParseInt(p.curToken.Literal, 10, 64)
		return &ast.PatternInt{PatternSpan: p.curToken.Span(), Value: v}
	case p.curTokenIs(token.TYPE_IDENT):
		nameTok := p.curToken
		if !p.peekTokenIs(token.LPAREN) {
			return &ast.PatternCtor{PatternSpan: nameTok.Span(), Name: nameTok.Lexeme}
		}
		p.nextToken() // consume '('
		var args []ast.Pattern
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			return &ast.PatternCtor{PatternSpan: spanFrom(nameTok, p.curToken), Name: nameTok.Lexeme, Args: args}
		}
		p.nextToken()
		first := p.parsePattern()
		if first == nil {
			return nil
		}
		args = append(args, first)
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			a := p.parsePattern()
			if a == nil {
				return nil
			}
			args = append(args, a)
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.PatternCtor{PatternSpan: spanFrom(nameTok, p.curToken), Name: nameTok.Lexeme, Args: args}
	case p.curTokenIs(token.IDENT):
		return &ast.PatternName{PatternSpan: p.curToken.Span(), Name: p.curToken.Lexeme}
	default:
		p.errorAtCur("expected a pattern, got " + q(p.curToken.Lexeme))
		return nil
	}
}
