package pii

// Env maps a variable name to its PII meta at one program point
// (spec.md §4.8 "Environment"). A name absent from Env is *unknown*
// (no tracked information at all), distinct from a name present with
// an explicit Meta{Unset: true} — the distinction Sinks need for
// PII_SINK_UNKNOWN (spec.md §4.8).
type Env map[string]Meta

// NewEnv builds an empty environment.
func NewEnv() Env { return Env{} }

// Clone makes an independent copy for branching (spec.md §4.8
// "Environments are cloned for branches").
func (e Env) Clone() Env {
	out := make(Env, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// MergeEnvs merges two branch environments point-wise by Merge at a
// control-flow join; a name present in only one branch keeps that
// branch's meta (the other implicitly contributes Unset).
func MergeEnvs(a, b Env) Env {
	out := make(Env, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok {
			out[k] = Merge(existing, v)
		} else {
			out[k] = v
		}
	}
	return out
}

// Lookup reports a name's meta and whether it was tracked at all.
func (e Env) Lookup(name string) (Meta, bool) {
	m, ok := e[name]
	return m, ok
}
