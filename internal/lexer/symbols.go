package lexer

import (
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/token"
)

// scanSymbol consumes one punctuation token, per spec.md §4.2's token
// list: DOT, COLON, COMMA, LPAREN, RPAREN, LBRACKET, RBRACKET, EQUALS,
// PLUS, STAR, MINUS, SLASH, LT, GT, LTE, GTE, NEQ, QUESTION, AT. An
// unrecognized character is a fatal LEX_UNEXPECTED_CHAR (spec.md §4.2
// "Failure").
func (l *lexer) scanSymbol(ch rune) {
	startLine, startCol := l.line, l.col

	single := func(kind token.Kind, lexeme string) {
		l.advance()
		l.emit(kind, lexeme, startLine, startCol)
	}

	switch ch {
	case '.':
		single(token.DOT, ".")
	case ':':
		single(token.COLON, ":")
	case ',':
		single(token.COMMA, ",")
	case '(':
		single(token.LPAREN, "(")
	case ')':
		single(token.RPAREN, ")")
	case '[':
		single(token.LBRACKET, "[")
	case ']':
		single(token.RBRACKET, "]")
	case '+':
		single(token.PLUS, "+")
	case '*':
		single(token.STAR, "*")
	case '-':
		single(token.MINUS, "-")
	case '/':
		single(token.SLASH, "/")
	case '?':
		single(token.QUESTION, "?")
	case '@':
		single(token.AT, "@")
	case '=':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			l.emit(token.EQUALS, "==", startLine, startCol)
		} else {
			l.emit(token.EQUALS, "=", startLine, startCol)
		}
	case '<':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			l.emit(token.LTE, "<=", startLine, startCol)
		} else {
			l.emit(token.LT, "<", startLine, startCol)
		}
	case '>':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			l.emit(token.GTE, ">=", startLine, startCol)
		} else {
			l.emit(token.GT, ">", startLine, startCol)
		}
	case '!':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			l.emit(token.NEQ, "!=", startLine, startCol)
		} else {
			l.fatalErr(diagnostics.LexUnexpectedChar, startLine, startCol, "!")
		}
	default:
		l.advance()
		l.fatalErr(diagnostics.LexUnexpectedChar, startLine, startCol, string(ch))
	}
}
