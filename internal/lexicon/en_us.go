package lexicon

// enUS is the canonical dialect itself: its keywords match
// CanonicalKeyword, so canonicalizing English CNL changes only its word
// operators (replaced by their symbols) beyond the locale-independent
// cleanup steps.
func enUS() *Lexicon {
	lx := &Lexicon{
		Locale: "en-US",
		Keywords: map[Keyword]string{
			KwModuleIs:     "this module is",
			KwTo:           "To",
			KwProduce:      "produce",
			KwReturn:       "Return",
			KwLet:          "Let",
			KwBe:           "be",
			KwSet:          "Set",
			KwSetTo:        "to",
			KwIf:           "If",
			KwThen:         "then",
			KwElse:         "Else",
			KwMatch:        "Match",
			KwWhen:         "When",
			KwStart:        "Start",
			KwAs:           "as",
			KwWait:         "Wait",
			KwWorkflow:     "Workflow",
			KwStep:         "Step",
			KwCompensate:   "Compensate",
			KwImport:       "Import",
			KwData:         "Data",
			KwEnum:         "Enum",
			KwTypeAlias:    "Type",
			KwOk:           "Ok",
			KwErr:          "Err",
			KwSome:         "Some",
			KwNone:         "None",
			KwTrue:         "true",
			KwFalse:        "false",
			KwNull:         "null",
			KwAnd:          "and",
			KwOr:           "or",
			KwNot:          "not",
			KwWith:         "with",
			KwOf:           "of",
			KwPerforms:     "performs",
			KwIO:           "io",
			KwCPU:          "cpu",
			KwAsync:        "async",
			KwAwait:        "Await",
			KwPlus:         "plus",
			KwMinus:        "minus",
			KwTimes:        "times",
			KwDividedBy:    "divided by",
			KwLessThan:     "less than",
			KwGreaterThan:  "greater than",
			KwLessEqual:    "at most",
			KwGreaterEqual: "at least",
			KwNotEqual:     "is not",
			KwEquals:       "equals",
		},
		Quote:         QuotePair{Open: '"', Close: '"'},
		Whitespace:    SpaceSeparated,
		Articles:      []string{"a", "an", "the"},
		RewriteRules:  nil,
		FoldFullWidth: false,
	}
	lx.MultiWordKeywords = multiWordPhrases(lx)
	return lx
}

// multiWordPhrases extracts the lower-cased multi-word keyword phrases
// from a lexicon's keyword table, for case-normalization (§4.1 step 8).
func multiWordPhrases(lx *Lexicon) []string {
	var out []string
	for _, local := range lx.Keywords {
		if containsSpace(local) {
			out = append(out, lowerASCII(local))
		}
	}
	return out
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
