package lexicon

import "regexp"

// zhPunctuationRules folds Chinese sentence/list punctuation to its ASCII
// delimiter equivalent (spec.md §4.2 "Chinese punctuation ... is mapped
// to the matching ASCII delimiter"), applied as ordinary lexicon rewrite
// rules (step 9) so it lands in canonical output ahead of the lexer ever
// running (spec.md §8 scenario S1 expects the ASCII period already
// present in canonicalize()'s own output).
func zhPunctuationRules() []RewriteRule {
	return []RewriteRule{
		{Pattern: regexp.MustCompile(`。`), Replacement: "."},
		{Pattern: regexp.MustCompile(`[，、]`), Replacement: ","},
		{Pattern: regexp.MustCompile(`：`), Replacement: ":"},
	}
}

// zhCN is the built-in Simplified Chinese lexicon. Chinese is a spaceless
// script (spec.md §3 "whitespace mode"), so keyword translation must rely
// on longest-match-first scanning and identifier-boundary protection
// rather than surrounding-space delimiters (spec.md §4.1 step 10).
func zhCN() *Lexicon {
	lx := &Lexicon{
		Locale: "zh-CN",
		Keywords: map[Keyword]string{
			KwModuleIs:     "【模块】",
			KwTo:           "要",
			KwProduce:      "产生",
			KwReturn:       "返回",
			KwLet:          "让",
			KwBe:           "为",
			KwSet:          "设置",
			KwSetTo:        "为",
			KwIf:           "如果",
			KwThen:         "那么",
			KwElse:         "否则",
			KwMatch:        "匹配",
			KwWhen:         "当",
			KwStart:        "启动",
			KwAs:           "作为",
			KwWait:         "等待",
			KwWorkflow:     "工作流",
			KwStep:         "步骤",
			KwCompensate:   "补偿",
			KwImport:       "导入",
			KwData:         "数据",
			KwEnum:         "枚举",
			KwTypeAlias:    "类型",
			KwOk:           "正确",
			KwErr:          "错误",
			KwSome:         "某个",
			KwNone:         "无",
			KwTrue:         "真",
			KwFalse:        "假",
			KwNull:         "空",
			KwAnd:          "且",
			KwOr:           "或",
			KwNot:          "非",
			KwWith:         "携带",
			KwOf:           "的",
			KwPerforms:     "执行",
			KwIO:           "输入输出",
			KwCPU:          "计算",
			KwAsync:        "异步",
			KwAwait:        "等候结果",
			KwPlus:         "加",
			KwMinus:        "减",
			KwTimes:        "乘以",
			KwDividedBy:    "除以",
			KwLessThan:     "小于",
			KwGreaterThan:  "大于",
			KwLessEqual:    "不大于",
			KwGreaterEqual: "不小于",
			KwNotEqual:     "不等于",
			KwEquals:       "等于",
		},
		Quote:         QuotePair{Open: '「', Close: '」'},
		Whitespace:    Spaceless,
		Articles:      nil,
		RewriteRules:  zhPunctuationRules(),
		FoldFullWidth: true,
	}
	lx.MultiWordKeywords = nil // spaceless script: no casing ambiguity to fold
	return lx
}
