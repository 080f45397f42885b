// Package effects implements the effect lattice and capability
// inference/checking spec.md §4.7 describes. Grounded on the teacher's
// effect-tracking shape in internal/analyzer (declared-vs-inferred
// comparison per function) adapted onto this spec's four-point lattice
// and prefix-based capability inference (internal/config's prefix
// tables, shared with internal/lowering via config.CapabilityForCallee).
package effects

// Effect is a point in the pure ⊑ cpu ⊑ io lattice, with async as a
// second top absorbing io/cpu (spec.md §4.7).
type Effect int

const (
	Pure Effect = iota
	Cpu
	IO
	Async
)

func (e Effect) String() string {
	switch e {
	case Cpu:
		return "cpu"
	case IO:
		return "io"
	case Async:
		return "async"
	default:
		return "pure"
	}
}

// ParseEffect maps a declared-effect name to its lattice point.
func ParseEffect(s string) Effect {
	switch s {
	case "cpu":
		return Cpu
	case "io":
		return IO
	case "async":
		return Async
	default:
		return Pure
	}
}

// rank gives pure < cpu < io < async the ordering Join needs. async is
// the top of the lattice and absorbs io/cpu (spec.md §4.7), which falls
// out naturally from giving it the highest rank.
func (e Effect) rank() int {
	switch e {
	case Cpu:
		return 1
	case IO:
		return 2
	case Async:
		return 3
	default:
		return 0
	}
}

// Join computes the least upper bound of two effects.
func Join(a, b Effect) Effect {
	if a.rank() >= b.rank() {
		return a
	}
	return b
}

// JoinAll folds Join across a slice, defaulting to Pure for no effects.
func JoinAll(es []Effect) Effect {
	out := Pure
	for _, e := range es {
		out = Join(out, e)
	}
	return out
}

// Exceeds reports whether observed is not permitted by declared — i.e.
// observed is strictly above declared in the lattice (spec.md §4.7
// "error if it exceeds the declared effect").
func (observed Effect) Exceeds(declared Effect) bool {
	return observed.rank() > declared.rank()
}
