package pii

import "strings"

// Decision classifies an assignment-compatibility check (spec.md §4.8
// "Assignment compatibility"); the caller picks the diagnostic Code
// appropriate to its context (Let/Set assignment vs. a call argument).
type Decision int

const (
	DecisionOK Decision = iota
	// DecisionDowngrade: an unset target received a labeled value
	// (dropping the label), or a labeled value exceeds a labeled
	// target's level, or the two labeled metas' categories disagree.
	DecisionDowngrade
	// DecisionUplevel: a labeled target received an unset value, or a
	// labeled value is strictly below a labeled target's level.
	DecisionUplevel
)

// decisionKey is the cache key: the two metas' canonical string forms.
type decisionKey string

func metaKey(m Meta) string {
	if m.Unset {
		return "unset"
	}
	var b strings.Builder
	b.WriteString(m.Level.String())
	b.WriteByte('|')
	b.WriteString(strings.Join(sortedUnique(m.Categories), ","))
	return b.String()
}

// Cache memoizes assignment-compatibility decisions per (value, target)
// pair (spec.md §4.8 "A per-pair cache memoizes decisions").
type Cache struct {
	decisions map[decisionKey]Decision
}

// NewCache builds an empty decision cache.
func NewCache() *Cache {
	return &Cache{decisions: map[decisionKey]Decision{}}
}

// Classify decides whether value is assignment-compatible with target,
// memoizing the result (spec.md §4.8's rule ladder):
//   - unset target, labeled value -> Downgrade
//   - labeled target, unset value -> Uplevel
//   - both labeled, categories differ -> Downgrade
//   - both labeled, value level > target level -> Downgrade
//   - both labeled, value level < target level -> Uplevel
//   - otherwise -> OK
func (c *Cache) Classify(value, target Meta) Decision {
	key := decisionKey(metaKey(value) + "=>" + metaKey(target))
	if d, ok := c.decisions[key]; ok {
		return d
	}
	d := classify(value, target)
	c.decisions[key] = d
	return d
}

func classify(value, target Meta) Decision {
	switch {
	case target.Unset && !value.Unset:
		return DecisionDowngrade
	case !target.Unset && value.Unset:
		return DecisionUplevel
	case target.Unset && value.Unset:
		return DecisionOK
	case !SameCategories(value.Categories, target.Categories):
		return DecisionDowngrade
	case value.Level > target.Level:
		return DecisionDowngrade
	case value.Level < target.Level:
		return DecisionUplevel
	default:
		return DecisionOK
	}
}
