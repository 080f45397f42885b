package canonicalizer

import "strings"

// collapseWhitespace walks a line-by-line state machine: leading indent
// is preserved untouched, internal runs of spaces/tabs collapse to a
// single space, and a space immediately before punctuation is dropped
// (step 7). Operating per out-of-string segment, split on its own
// newlines, guarantees a string spanning lines is never re-spaced
// internally (spec.md §4.1 step 7).
func collapseWhitespace(s string, seg *Segmenter) string {
	return seg.MapOutOfString(s, func(chunk string) string {
		lines := strings.Split(chunk, "\n")
		for i, line := range lines {
			lines[i] = collapseLine(line)
		}
		return strings.Join(lines, "\n")
	})
}

func collapseLine(line string) string {
	runes := []rune(line)
	indentEnd := 0
	for indentEnd < len(runes) && (runes[indentEnd] == ' ' || runes[indentEnd] == '\t') {
		indentEnd++
	}
	indent := string(runes[:indentEnd])
	rest := runes[indentEnd:]

	var b strings.Builder
	inRun := false
	for i := 0; i < len(rest); i++ {
		r := rest[i]
		if r == ' ' || r == '\t' {
			inRun = true
			continue
		}
		if inRun {
			if !isPunct(r) && b.Len() > 0 {
				b.WriteByte(' ')
			}
			inRun = false
		}
		b.WriteRune(r)
	}
	return indent + b.String()
}

func isPunct(r rune) bool {
	switch r {
	case '.', ',', ':', ';', ')', ']', '?', '!':
		return true
	default:
		return false
	}
}
