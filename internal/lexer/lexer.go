// Package lexer implements the indent-sensitive tokenizer spec.md §4.2
// describes: canonical CNL text in, a flat token sequence (plus a trivia
// comment channel) out. Grounded on the teacher's rune-by-rune scanner
// (internal/lexer/lexer.go in the funvibe-funxy example), generalized
// from its fixed reserved-word switch to lexicon-driven keyword
// classification and extended with the off-side-rule INDENT/DEDENT
// stack spec.md §4.2 requires.
package lexer

import (
	"strings"
	"unicode"

	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/token"
)

type lexer struct {
	runes []rune
	pos   int
	line  uint32
	col   uint32

	lx *lexicon.Lexicon

	indentStack []int
	atLineStart bool

	tokens   []token.Token
	comments []token.Comment
	diags    []*diagnostics.Diagnostic
	fatal    bool

	lastTokenLine uint32
}

// Lex tokenizes source into a flat token sequence plus trivia comments,
// per spec.md §6 "lex(source, lexicon) -> (tokens, diagnostics)". lx
// supplies the quote-delimiter and true/false/null spellings tokens are
// classified against; the canonical pipeline always passes the en-US
// lexicon here, since by lex time canonicalize has already translated
// every other locale's keywords to their English surface form (spec.md
// §4.1). A fatal lex error (spec.md §4.2 "Failure") stops scanning
// early; tokens/comments produced before the failure are still returned
// alongside the single diagnostic.
func Lex(source string, lx *lexicon.Lexicon) ([]token.Token, []token.Comment, []*diagnostics.Diagnostic) {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")

	l := &lexer{
		runes:       []rune(source),
		line:        1,
		col:         1,
		lx:          lx,
		indentStack: []int{0},
		atLineStart: true,
	}
	l.run()
	return l.tokens, l.comments, l.diags
}

func (l *lexer) run() {
	for !l.fatal {
		if l.atLineStart {
			l.handleLineStart()
			l.atLineStart = false
			if l.fatal {
				return
			}
		}
		if l.pos >= len(l.runes) {
			l.emitEOF()
			return
		}
		ch := l.runes[l.pos]
		switch {
		case ch == '\n':
			l.emitNewline()
		case ch == ' ' || ch == '\t':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			l.scanLineComment(2)
		case ch == '#':
			l.scanLineComment(1)
		case isIdentStart(ch):
			l.scanIdentifier()
		case isDigit(ch):
			l.append(l.scanNumber())
		case ch == '"' || ch == '\'':
			if tok, ok := l.scanString(ch); ok {
				l.append(tok)
			}
		case l.lx != nil && ch == l.lx.Quote.Open && ch != '"' && ch != '\'':
			if tok, ok := l.scanString(l.lx.Quote.Close); ok {
				l.append(tok)
			}
		case isChinesePunct(ch):
			l.scanChinesePunct(ch)
		default:
			l.scanSymbol(ch)
		}
	}
}

func (l *lexer) emitNewline() {
	startLine, startCol := l.line, l.col
	l.advance()
	l.emit(token.NEWLINE, "\n", startLine, startCol)
	l.atLineStart = true
}

func (l *lexer) emitEOF() {
	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.emit(token.DEDENT, "", l.line, l.col)
	}
	l.emit(token.EOF, "", l.line, l.col)
}

// advance consumes one rune, updating line/column bookkeeping. Newlines
// are only ever consumed via emitNewline, which is the sole place line
// increments happen.
func (l *lexer) advance() {
	if l.pos >= len(l.runes) {
		return
	}
	if l.runes[l.pos] == '\n' {
		l.line++
		l.col = 1
		l.pos++
		return
	}
	l.pos++
	l.col++
}

func (l *lexer) peek() rune {
	return l.peekAt(0)
}

func (l *lexer) peekAt(offset int) rune {
	i := l.pos + offset
	if i >= len(l.runes) {
		return 0
	}
	return l.runes[i]
}

func (l *lexer) emit(kind token.Kind, lexeme string, line, col uint32) {
	l.append(token.Token{Kind: kind, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col})
}

func (l *lexer) append(tok token.Token) {
	l.tokens = append(l.tokens, tok)
	l.lastTokenLine = tok.Line
}

func (l *lexer) fatalErr(code diagnostics.Code, line, col uint32, args ...any) {
	span := token.Span{Start: token.Position{Line: line, Column: col}, End: token.Position{Line: line, Column: col}}
	l.diags = append(l.diags, diagnostics.NewError(code, span, args...))
	l.fatal = true
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
