package lexicon

import "sync"

// registry is the process-wide, frozen-after-bootstrap lexicon store
// (spec.md §5 "Process-wide state"). Mutation is guarded by a RWMutex so
// that register-during-init followed by read-only use is safe; reset
// exists only for tests (spec.md §9 "Shared registries").
var (
	mu       sync.RWMutex
	registry = map[string]*Lexicon{}
)

func init() {
	bootstrap()
}

func bootstrap() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]*Lexicon{
		"en-US": enUS(),
		"zh-CN": zhCN(),
		"de-DE": deDE(),
	}
}

// Register adds or replaces a lexicon under its Locale. Intended for use
// during process initialization (by internal/lexiconfile or a caller's
// own bootstrap), not as steady-state runtime API.
func Register(lx *Lexicon) {
	mu.Lock()
	defer mu.Unlock()
	registry[lx.Locale] = lx
}

// Get looks up a registered lexicon by locale tag.
func Get(locale string) (*Lexicon, bool) {
	mu.RLock()
	defer mu.RUnlock()
	lx, ok := registry[locale]
	return lx, ok
}

// Reset restores the built-in en-US/zh-CN/de-DE defaults, discarding any
// lexicons registered afterward. For test isolation only.
func Reset() {
	bootstrap()
}

// Locales returns every currently registered locale tag.
func Locales() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
