// Package parser implements the recursive-descent parser and AST
// builder spec.md §4.3 describes: ordinary LL structural parsing with
// a Pratt-style (precedence-climbing) expression core, grounded on
// the teacher's curToken/peekToken parser (funvibe-funxy's
// internal/parser package: expressions_core.go's parseExpression /
// prefixParseFns / infixParseFns, statements.go's module-per-concern
// split). Unlike the teacher's brace-delimited grammar, blocks here
// are bounded by INDENT/DEDENT tokens the lexer already synthesized,
// so the parser never tracks brace depth — only token-kind and
// keyword-lexeme lookahead.
//
// Per spec.md §4.3 "Failure": the first grammar error raises a single
// diagnostic at the faulty token, and the stage stops; there is no
// statement-boundary recovery here (unlike the teacher, which keeps
// parsing after an error to report many at once — this front-end's
// Non-goals explicitly exclude "error recovery beyond continue-and-
// report-multiple", and that multi-diagnostic continuation belongs to
// the checker stage, not the parser).
package parser

import (
	"fmt"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/token"
)

type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	diags []*diagnostics.Diagnostic
	fatal bool

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

type prefixParseFn func() ast.Expr
type infixParseFn func(left ast.Expr) ast.Expr

// Parse builds a Module from a lexed token sequence (spec.md §6
// "parse(tokens) -> (ast, diagnostics)"). comments is accepted for
// symmetry with the lexer's output but the grammar itself never
// consults trivia.
func Parse(tokens []token.Token, comments []token.Comment) (*ast.Module, []*diagnostics.Diagnostic) {
	p := New(tokens)
	mod := p.parseModule()
	return mod, p.diags
}

func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.registerExprParseFns()
	if len(tokens) > 0 {
		p.curToken = tokens[0]
	}
	if len(tokens) > 1 {
		p.peekToken = tokens[1]
	}
	return p
}

func (p *Parser) nextToken() {
	p.pos++
	p.curToken = p.peekToken
	if p.pos+1 < len(p.tokens) {
		p.peekToken = p.tokens[p.pos+1]
	} else if p.pos+1 == len(p.tokens) {
		p.peekToken = token.Token{Kind: token.EOF}
	} else {
		p.peekToken = token.Token{Kind: token.EOF}
	}
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekToken.Kind == k }

// curIs reports whether the current token is the structural keyword kw,
// recognized by Lexeme text (not Kind) since keywords like To/Return/If
// lex as plain IDENT/TYPE_IDENT (internal/lexer's design: only
// TRUE/FALSE/NULL get dedicated token kinds).
func (p *Parser) curIs(lexeme string) bool {
	return (p.curToken.Kind == token.IDENT || p.curToken.Kind == token.TYPE_IDENT) && p.curToken.Lexeme == lexeme
}

func (p *Parser) peekIs(lexeme string) bool {
	return (p.peekToken.Kind == token.IDENT || p.peekToken.Kind == token.TYPE_IDENT) && p.peekToken.Lexeme == lexeme
}

// expectPeek advances past peekToken if it matches k, otherwise raises
// the stage's single fatal diagnostic.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.errorAtPeek(fmt.Sprintf("expected %s, got %s (%q)", k, p.peekToken.Kind, p.peekToken.Lexeme))
	return false
}

// expectPeekKeyword is expectPeek's keyword-lexeme counterpart.
func (p *Parser) expectPeekKeyword(lexeme string) bool {
	if p.peekIs(lexeme) {
		p.nextToken()
		return true
	}
	p.errorAtPeek(fmt.Sprintf("expected %q, got %q", lexeme, p.peekToken.Lexeme))
	return false
}

// errorAtPeek raises the stage's single fatal diagnostic at peekToken's
// span; describe becomes the %s slotted into ParseUnexpectedToken's
// message template.
func (p *Parser) errorAtPeek(describe string) {
	if p.fatal {
		return
	}
	p.diags = append(p.diags, diagnostics.NewError(diagnostics.ParseUnexpectedToken, p.peekToken.Span(), describe))
	p.fatal = true
}

// errorAtCur is errorAtPeek's current-token counterpart, used when the
// unexpected token is curToken itself rather than a required peek.
func (p *Parser) errorAtCur(describe string) {
	if p.fatal {
		return
	}
	p.diags = append(p.diags, diagnostics.NewError(diagnostics.ParseUnexpectedToken, p.curToken.Span(), describe))
	p.fatal = true
}
