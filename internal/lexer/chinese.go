package lexer

import "github.com/cnlforge/corelang/internal/token"

// isChinesePunct reports whether r is a Chinese sentence/list/bracket
// punctuation mark the lexer maps directly to an ASCII delimiter
// (spec.md §4.2 "Chinese punctuation ... is mapped to the matching ASCII
// delimiter"). The normal pipeline already folds 。，、： via the zh-CN
// lexicon's rewrite rules before the lexer ever runs (spec.md §8 S1);
// this is the defensive fallback for source lexed without going through
// the canonicalizer first. 「」 are excluded here since they are always
// handled as the lexicon's configured quote pair instead.
func isChinesePunct(r rune) bool {
	switch r {
	case '。', '，', '、', '：', '【', '】':
		return true
	default:
		return false
	}
}

func (l *lexer) scanChinesePunct(ch rune) {
	startLine, startCol := l.line, l.col
	l.advance()
	switch ch {
	case '。':
		l.emit(token.DOT, ".", startLine, startCol)
	case '，', '、':
		l.emit(token.COMMA, ",", startLine, startCol)
	case '：':
		l.emit(token.COLON, ":", startLine, startCol)
	case '【':
		l.emit(token.LBRACKET, "[", startLine, startCol)
	case '】':
		l.emit(token.RBRACKET, "]", startLine, startCol)
	}
}
