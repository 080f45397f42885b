package lexer

import (
	"unicode"

	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/token"
)

// scanIdentifier consumes a maximal identifier run and classifies it.
// Structural keywords (If, Let, Workflow, ...) have no dedicated token
// kind (spec.md §4.2 token list): they come through as plain IDENT and
// the parser recognizes them by their canonical spelling. true/false and
// null are the exception, since BOOL/NULL are real token kinds; both are
// recognized via the lexicon's keyword table rather than a hard-coded
// literal, per spec.md §4.2 ("matched via the lexicon's keyword table,
// not via a hard-coded reserved list").
func (l *lexer) scanIdentifier() {
	startLine, startCol := l.line, l.col
	start := l.pos
	for l.pos < len(l.runes) && isIdentCont(l.runes[l.pos]) {
		l.advance()
	}
	text := string(l.runes[start:l.pos])

	switch {
	case l.lx != nil && text == l.lx.Keywords[lexicon.KwTrue]:
		l.append(token.Token{Kind: token.BOOL, Lexeme: text, Literal: "true", Line: startLine, Column: startCol})
	case l.lx != nil && text == l.lx.Keywords[lexicon.KwFalse]:
		l.append(token.Token{Kind: token.BOOL, Lexeme: text, Literal: "false", Line: startLine, Column: startCol})
	case l.lx != nil && text == l.lx.Keywords[lexicon.KwNull]:
		l.append(token.Token{Kind: token.NULL, Lexeme: text, Literal: text, Line: startLine, Column: startCol})
	case isUpperFirst(text):
		l.emit(token.TYPE_IDENT, text, startLine, startCol)
	default:
		l.emit(token.IDENT, text, startLine, startCol)
	}
}

func isUpperFirst(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return unicode.IsUpper(r)
}
