package canonicalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/vocabulary"
)

var folder = cases.Fold()

// normalizeMultiWordCase canonicalizes the case of any of the lexicon's
// multi-word keyword phrases, regardless of how they were typed (step 8),
// e.g. "THIS MODULE IS" / "This Module Is" -> "this module is".
func normalizeMultiWordCase(s string, lx *lexicon.Lexicon, seg *Segmenter) string {
	if len(lx.MultiWordKeywords) == 0 {
		return s
	}
	return seg.MapOutOfString(s, func(chunk string) string {
		out := chunk
		for _, phrase := range lx.MultiWordKeywords {
			out = replaceCaseInsensitive(out, phrase)
		}
		return out
	})
}

func replaceCaseInsensitive(text, phrase string) string {
	folded := folder.String(text)
	foldedPhrase := folder.String(phrase)
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(folded[i:], foldedPhrase)
		if idx < 0 {
			b.WriteString(text[i:])
			break
		}
		start := i + idx
		end := start + len(foldedPhrase)
		// Guard against fold-length drift by re-slicing the original
		// text at the same byte offsets; the offsets stay aligned only
		// while case folding keeps byte lengths unchanged, as it does
		// for ASCII text.
		if end > len(text) {
			b.WriteString(text[i:])
			break
		}
		b.WriteString(text[i:start])
		b.WriteString(phrase)
		i = end
	}
	return b.String()
}

// applyRewriteRules applies the lexicon's ordered custom (regex,
// replacement) rules outside strings (step 9).
func applyRewriteRules(s string, lx *lexicon.Lexicon, seg *Segmenter) string {
	if len(lx.RewriteRules) == 0 {
		return s
	}
	return seg.MapOutOfString(s, func(chunk string) string {
		out := chunk
		for _, rule := range lx.RewriteRules {
			out = rule.Pattern.ReplaceAllString(out, rule.Replacement)
		}
		return out
	})
}

// translateKeywords substitutes every locale-specific keyword with its
// canonical English form (or operator symbol), longest-match-first, with
// word-boundary detection and CJK identifier protection (step 10).
func translateKeywords(s string, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex, seg *Segmenter) string {
	entries := lx.KeywordList()
	if len(entries) == 0 {
		return s
	}
	return seg.MapOutOfString(s, func(chunk string) string {
		return translateKeywordsInChunk(chunk, lx, entries, vocab)
	})
}

func translateKeywordsInChunk(chunk string, lx *lexicon.Lexicon, entries []lexicon.KeywordEntry, vocab *vocabulary.IdentifierIndex) string {
	runes := []rune(chunk)
	var b strings.Builder
	i := 0
	for i < len(runes) {
		matched := false
		for _, e := range entries {
			localRunes := []rune(e.Localized)
			n := len(localRunes)
			if n == 0 || i+n > len(runes) {
				continue
			}
			if !runesEqual(runes[i:i+n], localRunes) {
				continue
			}
			if !isWordBoundaryOK(runes, i, n, lx) {
				continue
			}
			if isProtectedIdentifier(runes, i, n, lx, vocab) {
				continue
			}
			replacement := canonicalForm(e.Keyword)
			b.WriteString(replacement)
			i += n
			// Space-insertion rule: if the translated keyword ends in a
			// letter/digit and the next source rune is a letter/digit,
			// insert a separating space (step 10).
			if i < len(runes) && endsInWordChar(replacement) && isWordChar(runes[i]) {
				b.WriteByte(' ')
			}
			matched = true
			break
		}
		if matched {
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func canonicalForm(kw lexicon.Keyword) string {
	if sym, ok := lexicon.OperatorSymbol(kw); ok {
		return sym
	}
	if s, ok := lexicon.CanonicalKeyword[kw]; ok {
		return s
	}
	return string(kw)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func endsInWordChar(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return isWordChar(r[len(r)-1])
}

// isWordBoundaryOK rejects a match when the keyword's own edge character
// is a plain word character (letter/digit) and the adjacent source
// character would join into a longer identifier, for space-separated
// locales. Spaceless locales never reject on this basis: the
// space-insertion rule (above) handles the no-space-by-convention case
// instead of rejecting the match outright.
func isWordBoundaryOK(runes []rune, start, n int, lx *lexicon.Lexicon) bool {
	if lx.Whitespace == lexicon.Spaceless {
		return true
	}
	matched := runes[start : start+n]
	if len(matched) == 0 {
		return true
	}
	if start > 0 && isWordChar(matched[0]) && isWordChar(runes[start-1]) {
		return false
	}
	end := start + n
	if end < len(runes) && isWordChar(matched[len(matched)-1]) && isWordChar(runes[end]) {
		return false
	}
	return true
}

// isProtectedIdentifier guards spaceless-script keyword matches against
// swallowing a prefix of a longer, independently-known vocabulary
// identifier (spec.md §4.1 step 10's "identifiers in spaceless scripts
// are protected"). It only fires when a vocabulary is supplied and the
// maximal identifier-character run starting at the match is itself a
// known localized identifier distinct from the keyword.
func isProtectedIdentifier(runes []rune, start, n int, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex) bool {
	if lx.Whitespace != lexicon.Spaceless || vocab == nil {
		return false
	}
	matched := runes[start : start+n]
	if len(matched) == 0 || !isWordChar(matched[len(matched)-1]) {
		// Keyword ends in punctuation/brackets (e.g. module-declaration
		// markers): inherently delimited, never protected.
		return false
	}
	end := start + n
	for end < len(runes) && isWordChar(runes[end]) {
		end++
	}
	if end == start+n {
		return false // nothing identifier-like follows
	}
	run := string(runes[start:end])
	_, ok := vocab.LookupLocalized(lx.Locale, run)
	return ok
}
