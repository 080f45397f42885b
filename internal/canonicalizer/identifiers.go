package canonicalizer

import (
	"strings"

	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/vocabulary"
)

// translateIdentifiers substitutes every localized domain identifier
// (driver, 驾驶员, ...) with its canonical English name, longest-match
// first, using the supplied vocabulary index (step 11). This runs after
// keyword translation so a translated keyword's inserted space never
// splits an identifier run. It applies the same word-boundary check as
// keyword translation (spec.md §4.1 step 11), but not its
// protected-identifier rule.
func translateIdentifiers(s string, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex, seg *Segmenter) string {
	if vocab == nil {
		return s
	}
	return seg.MapOutOfString(s, func(chunk string) string {
		return translateIdentifiersInChunk(chunk, lx, vocab)
	})
}

func translateIdentifiersInChunk(chunk string, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex) string {
	runes := []rune(chunk)
	var b strings.Builder
	i := 0
	for i < len(runes) {
		name, n, ok := longestIdentifierMatch(runes, i, lx, vocab)
		if !ok {
			b.WriteRune(runes[i])
			i++
			continue
		}
		if !isWordBoundaryOK(runes, i, n, lx) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		b.WriteString(name)
		i += n
		if i < len(runes) && endsInWordChar(name) && isWordChar(runes[i]) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// longestIdentifierMatch tries progressively shorter identifier-char runs
// starting at i against the vocabulary's localized index, so a
// multi-rune localized name (驾驶员) is preferred over any shorter
// sub-run that might also resolve.
func longestIdentifierMatch(runes []rune, i int, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex) (string, int, bool) {
	maxEnd := i
	for maxEnd < len(runes) && isWordChar(runes[maxEnd]) {
		maxEnd++
	}
	if maxEnd == i {
		return "", 0, false
	}
	for end := maxEnd; end > i; end-- {
		candidate := string(runes[i:end])
		if m, ok := vocab.LookupLocalized(lx.Locale, candidate); ok {
			return m.Canonical, end - i, true
		}
	}
	return "", 0, false
}
