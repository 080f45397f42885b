package lexicon

// CanonicalKeyword gives the fixed canonical English surface text that
// every locale's keyword translation step (spec.md §4.1 step 10)
// substitutes in, regardless of which locale's localized phrase matched.
// A keyword for which OperatorSymbol reports a symbol is substituted by
// that symbol instead, so translating en-US input rewrites its word operators
// and leaves every other keyword as it is.
var CanonicalKeyword = map[Keyword]string{
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
}

// OperatorCanonicalKeywords lists the keywords whose canonical form is a
// symbolic operator, not an English word (spec.md §4.3 operator folding
// folds these straight to their symbol rather than an English word).
var OperatorCanonicalKeywords = map[Keyword]bool{
	KwPlus: true, KwMinus: true, KwTimes: true, KwDividedBy: true,
	KwLessThan: true, KwGreaterThan: true, KwLessEqual: true,
	KwGreaterEqual: true, KwNotEqual: true, KwEquals: true,
}
