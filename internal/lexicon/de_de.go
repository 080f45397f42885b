package lexicon

import "regexp"

// deDE is the built-in German lexicon. It exercises the lexicon-specific
// custom rewrite-rule hook (spec.md §4.1 step 9: "ue -> ü" and similar).
func deDE() *Lexicon {
	lx := &Lexicon{
		Locale: "de-DE",
		Keywords: map[Keyword]string{
			KwModuleIs:     "dieses modul ist",
			KwTo:           "Um",
			KwProduce:      "erzeuge",
			KwReturn:       "Gib zurück",
			KwLet:          "Sei",
			KwBe:           "sei",
			KwSet:          "Setze",
			KwSetTo:        "auf",
			KwIf:           "Wenn",
			KwThen:         "dann",
			KwElse:         "Sonst",
			KwMatch:        "Passe",
			KwWhen:         "Wenn",
			KwStart:        "Starte",
			KwAs:           "als",
			KwWait:         "Warte",
			KwWorkflow:     "Arbeitsablauf",
			KwStep:         "Schritt",
			KwCompensate:   "Kompensiere",
			KwImport:       "Importiere",
			KwData:         "Daten",
			KwEnum:         "Aufzaehlung",
			KwTypeAlias:    "Typ",
			KwOk:           "Ok",
			KwErr:          "Fehler",
			KwSome:         "Etwas",
			KwNone:         "Nichts",
			KwTrue:         "wahr",
			KwFalse:        "falsch",
			KwNull:         "null",
			KwAnd:          "und",
			KwOr:           "oder",
			KwNot:          "nicht",
			KwWith:         "mit",
			KwOf:           "von",
			KwPerforms:     "fuehrt aus",
			KwIO:           "io",
			KwCPU:          "cpu",
			KwAsync:        "async",
			KwAwait:        "Erwarte",
			KwPlus:         "plus",
			KwMinus:        "minus",
			KwTimes:        "mal",
			KwDividedBy:    "geteilt durch",
			KwLessThan:     "kleiner als",
			KwGreaterThan:  "groesser als",
			KwLessEqual:    "hoechstens",
			KwGreaterEqual: "mindestens",
			KwNotEqual:     "ist nicht",
			KwEquals:       "gleich",
		},
		Quote:      QuotePair{Open: '"', Close: '"'},
		Whitespace: SpaceSeparated,
		Articles:   []string{"der", "die", "das", "ein", "eine"},
		RewriteRules: []RewriteRule{
			// ASCII-transliterated umlauts back to their proper form,
			// the classic German keyboard-layout workaround.
			{Pattern: regexp.MustCompile(`ue`), Replacement: "ü"},
			{Pattern: regexp.MustCompile(`oe`), Replacement: "ö"},
			{Pattern: regexp.MustCompile(`ae`), Replacement: "ä"},
		},
		FoldFullWidth: false,
	}
	lx.MultiWordKeywords = multiWordPhrases(lx)
	return lx
}
