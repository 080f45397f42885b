package lexer

import (
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/token"
)

// handleLineStart implements the off-side rule (spec.md §4.2 "Algorithm"):
// count leading spaces, reject tabs, and compare the new level against
// the indent stack, emitting INDENT/DEDENT as needed. Blank and
// comment-only lines are counted (to reject tabs in their indentation
// too) but never compared against the stack.
func (l *lexer) handleLineStart() {
	startLine, startCol := l.line, l.col
	count := 0
	sawTab := false
	for l.pos < len(l.runes) && (l.runes[l.pos] == ' ' || l.runes[l.pos] == '\t') {
		if l.runes[l.pos] == '\t' {
			sawTab = true
		}
		count++
		l.advance()
	}

	if sawTab {
		l.fatalErr(diagnostics.LexTabInIndent, startLine, startCol)
		return
	}

	if l.pos >= len(l.runes) || l.runes[l.pos] == '\n' {
		return // blank line: no indent-stack comparison
	}
	if (l.runes[l.pos] == '/' && l.peekAt(1) == '/') || l.runes[l.pos] == '#' {
		return // comment-only line: no indent-stack comparison
	}

	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case count == top:
		// same level, nothing to emit
	case count > top:
		diff := count - top
		if diff%2 != 0 {
			l.fatalErr(diagnostics.LexBadIndent, startLine, startCol)
			return
		}
		l.indentStack = append(l.indentStack, count)
		l.emit(token.INDENT, "", startLine, startCol)
	default:
		for len(l.indentStack) > 1 && l.indentStack[len(l.indentStack)-1] > count {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			l.emit(token.DEDENT, "", startLine, startCol)
		}
		if l.indentStack[len(l.indentStack)-1] != count {
			l.fatalErr(diagnostics.LexInconsistentDedent, startLine, startCol)
		}
	}
}
