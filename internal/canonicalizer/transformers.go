package canonicalizer

import "regexp"

// Transformer rewrites one out-of-string chunk of source text. The
// canonicalizer applies every registered transformer via the segmenter,
// so a Transformer never sees (and must never touch) string-literal
// content (spec.md §4.1 step 5/12).
type Transformer func(string) string

// preTransformers and postTransformers are the process-wide, ordered
// plug-in lists spec.md §4.1 describes for steps 5 and 12. They are
// populated once at package init and are treated as frozen afterward
// (spec.md §5 "syntax-transformer registry"); ResetTransformers exists
// only so tests can restore the defaults after RegisterPre/PostTransformer.
var (
	preTransformers  []Transformer
	postTransformers []Transformer
)

func init() {
	ResetTransformers()
}

// ResetTransformers restores the built-in pre/post transformer lists,
// discarding any registered afterward. Test-only (spec.md §9).
func ResetTransformers() {
	preTransformers = []Transformer{
		possessiveRewrite,
		punctuationCanonicalize,
		operatorWordFold,
		functionFormReorder,
	}
	postTransformers = []Transformer{
		resultIsRewrite,
		setToRewrite,
	}
}

// RegisterPreTransformer appends a plug-in to the pre-translation list
// (step 5). Intended for process-initialization-time use only.
func RegisterPreTransformer(t Transformer) {
	preTransformers = append(preTransformers, t)
}

// RegisterPostTransformer appends a plug-in to the post-translation list
// (step 12).
func RegisterPostTransformer(t Transformer) {
	postTransformers = append(postTransformers, t)
}

var possessiveRe = regexp.MustCompile(`(\p{L}+)'s\b`)

// possessiveRewrite drops the English possessive marker: "driver's
// license" -> "driver license", so later identifier/vocabulary matching
// sees a plain compound noun rather than a possessive phrase.
func possessiveRewrite(s string) string {
	return possessiveRe.ReplaceAllString(s, "$1")
}

var (
	dashRe     = regexp.MustCompile(`[\x{2012}-\x{2015}]`)
	ellipsisRe = regexp.MustCompile(`\x{2026}`)
)

// punctuationCanonicalize folds typographic dash and ellipsis variants
// to their ASCII equivalents, ahead of the per-locale punctuation work
// later steps perform.
func punctuationCanonicalize(s string) string {
	s = dashRe.ReplaceAllString(s, "-")
	s = ellipsisRe.ReplaceAllString(s, "...")
	return s
}

var operatorWordRe = regexp.MustCompile(`\b(is greater than or equal to|is less than or equal to|is greater than|is less than|is at least|is at most|is not equal to)\b`)

var operatorWordSymbols = map[string]string{
	"is greater than or equal to": ">=",
	"is less than or equal to":    "<=",
	"is greater than":             ">",
	"is less than":                "<",
	"is at least":                 ">=",
	"is at most":                  "<=",
	"is not equal to":             "!=",
}

// operatorWordFold folds already-English comparison phrasings to their
// symbolic operator ahead of locale-specific keyword translation, so
// mixed-language source (a common CNL authoring pattern: English
// operators embedded in otherwise-localized prose) still normalizes.
func operatorWordFold(s string) string {
	return operatorWordRe.ReplaceAllStringFunc(s, func(m string) string {
		if sym, ok := operatorWordSymbols[m]; ok {
			return sym
		}
		return m
	})
}

var functionFormRe = regexp.MustCompile(`\b(\p{L}[\p{L}\p{N}_]*)\s+of\s+(\p{L}[\p{L}\p{N}_]*)\s+with\s+(\p{L}[\p{L}\p{N}_]*)\b`)

// functionFormReorder turns the "<method> of <receiver> with <args>"
// possessive-call phrasing into ordinary postfix-call phrasing the
// parser's postfix-suffix handling already recognizes (spec.md §4.3):
// "length of name with nothing" -> "name.length with nothing".
func functionFormReorder(s string) string {
	return functionFormRe.ReplaceAllString(s, "$2.$1 with $3")
}

var resultIsRe = regexp.MustCompile(`\bThe result is\b`)

// resultIsRewrite folds the idiomatic "The result is X." phrasing to
// "Return X." (spec.md §4.1 step 12).
func resultIsRewrite(s string) string {
	return resultIsRe.ReplaceAllString(s, "Return")
}

var setToRe = regexp.MustCompile(`\bSet\s+(\p{L}[\p{L}\p{N}_]*)\s+to\b`)

// setToRewrite folds "Set X to Y" into "Let X be Y" (spec.md §4.1 step
// 12), unifying the two surface idioms for binding a name before the
// parser ever sees them.
func setToRewrite(s string) string {
	return setToRe.ReplaceAllString(s, "Let $1 be")
}
