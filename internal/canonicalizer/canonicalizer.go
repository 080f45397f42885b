// Package canonicalizer implements the lexicon-driven rewriting of
// arbitrary-locale CNL source into canonical CNL (spec.md §4.1). The
// public entry point is Canonicalize.
package canonicalizer

import (
	"strings"

	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/vocabulary"
)

// Canonicalize runs the full ordered rewrite pipeline over source and
// returns canonical CNL text (spec.md §6 "canonicalize(source, lexicon,
// vocabulary?) -> string"). It never fails: malformed input is left for
// the lexer to diagnose (spec.md §4.1 "Failure").
func Canonicalize(source string, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex) string {
	seg := NewSegmenter(QuotePair{Open: lx.Quote.Open, Close: lx.Quote.Close})

	s := source
	s = normalizeLineEndings(s)           // step 1
	s = expandTabs(s)                     // step 2
	s = stripLineComments(s, seg)         // step 3
	s = foldSmartQuotes(s, seg)           // step 4

	for _, t := range preTransformers {
		s = seg.MapOutOfString(s, t)
	} // step 5

	if lx.FoldFullWidth {
		s = foldFullWidth(s, seg) // step 6
	}

	s = collapseWhitespace(s, seg) // step 7

	s = normalizeMultiWordCase(s, lx, seg) // step 8
	s = applyRewriteRules(s, lx, seg)      // step 9
	s = translateKeywords(s, lx, vocab, seg) // step 10
	if vocab != nil {
		s = translateIdentifiers(s, lx, vocab, seg) // step 11
	}

	for _, t := range postTransformers {
		s = seg.MapOutOfString(s, t)
	} // step 12

	s = foldBracketQuotes(s) // step 13
	s = finalCleanup(s)      // step 14

	return s
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "  ")
}
