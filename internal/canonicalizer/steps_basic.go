package canonicalizer

import "strings"

// stripLineComments removes "//" and "#" line comments outside strings
// (step 3). A comment is removed from its marker through end of line;
// if the whole line was a comment, the line becomes empty, preserving
// line counts (spec.md §4.1 invariant on line-count preservation).
func stripLineComments(s string, seg *Segmenter) string {
	return seg.MapOutOfString(s, func(chunk string) string {
		lines := strings.Split(chunk, "\n")
		for i, line := range lines {
			if idx := firstCommentMarker(line); idx >= 0 {
				lines[i] = line[:idx]
			}
		}
		return strings.Join(lines, "\n")
	})
}

func firstCommentMarker(line string) int {
	slashIdx := strings.Index(line, "//")
	hashIdx := strings.Index(line, "#")
	switch {
	case slashIdx < 0:
		return hashIdx
	case hashIdx < 0:
		return slashIdx
	case slashIdx < hashIdx:
		return slashIdx
	default:
		return hashIdx
	}
}

// foldSmartQuotes converts curly quotes to ASCII quotes (step 4). When a
// segment IS a string delimited by smart quotes, only its opening/closing
// delimiter runes are folded; the payload between them is left untouched
// so string-literal content survives byte-identical (spec.md invariant 2).
// Stray smart quotes in out-of-string segments are folded unconditionally.
func foldSmartQuotes(s string, seg *Segmenter) string {
	var b strings.Builder
	for _, part := range seg.Split(s) {
		if !part.InString {
			b.WriteString(replaceSmartQuoteRunes(part.Text))
			continue
		}
		runes := []rune(part.Text)
		if len(runes) == 0 {
			continue
		}
		if runes[0] == '“' {
			runes[0] = '"'
		} else if runes[0] == '‘' {
			runes[0] = '\''
		}
		last := len(runes) - 1
		if runes[last] == '”' {
			runes[last] = '"'
		} else if runes[last] == '’' {
			runes[last] = '\''
		}
		b.WriteString(string(runes))
	}
	return b.String()
}

func replaceSmartQuoteRunes(s string) string {
	r := strings.NewReplacer("“", "\"", "”", "\"", "‘", "'", "’", "'")
	return r.Replace(s)
}

// foldBracketQuotes converts Chinese bracket-quotes to ASCII double
// quotes (step 13). This runs after all string-segmentation-aware steps
// have completed, so a blanket rune substitution is safe (spec.md §4.1
// step 13, invariant 2's documented exception).
func foldBracketQuotes(s string) string {
	r := strings.NewReplacer("「", "\"", "」", "\"")
	return r.Replace(s)
}

// finalCleanup trims trailing whitespace from every line (step 14).
// Blank lines are never dropped here: line counts must be preserved
// (spec.md §4.1 invariant), and only the comment-stripping step is
// permitted to turn a line blank.
func finalCleanup(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
