package parser

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/token"
)

// Precedence tiers, grounded on the teacher's LOWEST/EQUALS/
// LESSGREATER/SUM/PRODUCT/CALL ladder (internal/parser/expressions_core.go),
// trimmed to what this grammar's symbolic and word operators need.
const (
	LOWEST int = iota
	OR_PREC
	AND_PREC
	EQUALS_PREC
	LESSGREATER
	SUM
	PRODUCT
)

// binaryPrecedence reports the binding power of tok as an infix
// operator, or (0, false) if it isn't one. Word operators ("and",
// "or") are recognized by Lexeme since, like every other structural
// keyword, they carry no dedicated token.Kind.
func binaryPrecedence(tok token.Token) (int, bool) {
	switch tok.Kind {
	case token.EQUALS, token.NEQ:
		return EQUALS_PREC, true
	case token.LT, token.GT, token.LTE, token.GTE:
		return LESSGREATER, true
	case token.PLUS, token.MINUS:
		return SUM, true
	case token.STAR, token.SLASH:
		return PRODUCT, true
	}
	if tok.Kind == token.IDENT {
		switch tok.Lexeme {
		case "or":
			return OR_PREC, true
		case "and":
			return AND_PREC, true
		}
	}
	return LOWEST, false
}

func (p *Parser) peekPrecedence() int {
	prec, ok := binaryPrecedence(p.peekToken)
	if !ok {
		return LOWEST
	}
	return prec
}

func (p *Parser) curPrecedence() int {
	prec, ok := binaryPrecedence(p.curToken)
	if !ok {
		return LOWEST
	}
	return prec
}

func (p *Parser) registerExprParseFns() {
	p.prefixParseFns = map[token.Kind]prefixParseFn{
		token.IDENT:      p.parseIdentOrPrefixKeyword,
		token.TYPE_IDENT:  p.parseIdentOrPrefixKeyword,
		token.BOOL:       p.parseBoolExpr,
		token.NULL:       p.parseNullExpr,
		token.INT:        p.parseIntExpr,
		token.LONG:       p.parseLongExpr,
		token.FLOAT:      p.parseDoubleExpr,
		token.STRING:     p.parseStringExpr,
		token.LPAREN:     p.parseGroupedOrLambdaExpr,
		token.LBRACKET:   p.parseListLiteralExpr,
		token.MINUS:      p.parseUnaryMinusExpr,
	}

	p.infixParseFns = map[token.Kind]infixParseFn{
		token.EQUALS: p.parseBinaryExpr,
		token.NEQ:    p.parseBinaryExpr,
		token.LT:     p.parseBinaryExpr,
		token.GT:     p.parseBinaryExpr,
		token.LTE:    p.parseBinaryExpr,
		token.GTE:    p.parseBinaryExpr,
		token.PLUS:   p.parseBinaryExpr,
		token.MINUS:  p.parseBinaryExpr,
		token.STAR:   p.parseBinaryExpr,
		token.SLASH:  p.parseBinaryExpr,
	}
}

// parseExpression is the Pratt core, grounded on the teacher's
// parseExpression(precedence int) (expressions_core.go): dispatch to a
// prefix parser for curToken, then repeatedly fold in infix operators
// whose precedence beats the caller's. "and"/"or" are IDENT-kinded
// words, so their infix step is handled by peeking the lexeme directly
// rather than through the infixParseFns kind table.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.errorAtCur("expected an expression, got " + p.curToken.Kind.String() + " " + q(p.curToken.Lexeme))
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}
	left = p.parsePostfix(left)

	for !p.fatal && precedence < p.peekPrecedence() {
		if _, ok := wordBinaryOp(p.peekToken); ok {
			p.nextToken()
			left = p.parseWordBinaryExpr(left)
			continue
		}
		infix, ok := p.infixParseFns[p.peekToken.Kind]
		if !ok {
			break
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func wordBinaryOp(tok token.Token) (string, bool) {
	if tok.Kind != token.IDENT {
		return "", false
	}
	if tok.Lexeme == "and" || tok.Lexeme == "or" {
		return tok.Lexeme, true
	}
	return "", false
}

func q(s string) string { return "\"" + s + "\"" }
