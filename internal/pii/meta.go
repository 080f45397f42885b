// Package pii implements the PII taint-flow checker spec.md §4.8
// describes: a per-variable sensitivity/category label propagated
// through expressions and statements, with assignment-compatibility
// and sink rules. Grounded on the teacher's per-branch environment
// clone/merge idiom (internal/analyzer's pattern-binding scope
// handling), generalized here from type environments to PII-label
// environments, and on internal/typesystem's general memoization shape
// for the per-pair assignment-compatibility decision cache.
package pii

import "github.com/cnlforge/corelang/internal/coreir"

// Meta is a PII label: either Unset (plain data, no label at all) or
// a (Level, Categories) pair (spec.md §4.8 "Labels").
type Meta struct {
	Unset      bool
	Level      coreir.PiiLevel
	Categories []string
}

// UnsetMeta is the label of a value with no PII sensitivity.
func UnsetMeta() Meta { return Meta{Unset: true} }

// LabeledMeta builds a labeled Meta, normalizing Categories to a sorted,
// deduplicated slice so two metas with the same category set compare
// equal by content regardless of construction order.
func LabeledMeta(level coreir.PiiLevel, categories []string) Meta {
	return Meta{Level: level, Categories: sortedUnique(categories)}
}

func sortedUnique(ss []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// SameCategories reports sorted-set equality (spec.md §4.8 "categories
// must match (sorted equality)").
func SameCategories(a, b []string) bool {
	a, b = sortedUnique(a), sortedUnique(b)
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

// Merge takes the max level and the union of categories (spec.md §4.8
// "merge takes the max level and the union of categories"); merging
// with an unset operand yields the other operand unchanged.
func Merge(a, b Meta) Meta {
	if a.Unset && b.Unset {
		return UnsetMeta()
	}
	if a.Unset {
		return b
	}
	if b.Unset {
		return a
	}
	level := a.Level
	if b.Level > level {
		level = b.Level
	}
	return LabeledMeta(level, append(append([]string{}, a.Categories...), b.Categories...))
}

// MergeAll folds Merge across metas, starting from Unset.
func MergeAll(metas []Meta) Meta {
	out := UnsetMeta()
	for _, m := range metas {
		out = Merge(out, m)
	}
	return out
}

// MetaOfType reads a coreir.Type's PII annotation, if any (spec.md §3,
// §4.4's PiiType wrapper): a *coreir.PiiType yields its carried
// (Level, Categories); any other type yields Unset.
func MetaOfType(t coreir.Type) Meta {
	if pt, ok := t.(*coreir.PiiType); ok {
		return LabeledMeta(pt.Level, pt.Categories)
	}
	return UnsetMeta()
}

// Sanitize downgrades a value's meta to L1 while preserving its
// category set (spec.md §4.8 "redact and tokenize ... downgrade to L1
// while preserving category").
func Sanitize(m Meta) Meta {
	if m.Unset {
		return UnsetMeta()
	}
	return LabeledMeta(coreir.PiiL1, m.Categories)
}
