package lexer

import (
	"strings"

	"github.com/cnlforge/corelang/internal/token"
)

// scanLineComment consumes a "//" or "#" comment to end of line and
// records it on the trivia channel (spec.md §4.2). markerLen is 2 for
// "//" and 1 for "#". Placement is inline if the previous real token
// shares this comment's start line, standalone otherwise.
func (l *lexer) scanLineComment(markerLen int) {
	startLine, startCol := l.line, l.col
	for i := 0; i < markerLen; i++ {
		l.advance()
	}
	start := l.pos
	for l.pos < len(l.runes) && l.runes[l.pos] != '\n' {
		l.advance()
	}
	body := strings.TrimSpace(string(l.runes[start:l.pos]))

	placement := token.PlacementStandalone
	if l.lastTokenLine == startLine {
		placement = token.PlacementInline
	}

	marker := "#"
	if markerLen == 2 {
		marker = "//"
	}
	l.comments = append(l.comments, token.Comment{
		Raw:       marker + string(l.runes[start:l.pos]),
		Body:      body,
		Placement: placement,
		Line:      startLine,
		Column:    startCol,
	})
}
