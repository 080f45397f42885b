package pii

import (
	"strings"

	"github.com/cnlforge/corelang/internal/config"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
)

// SinkKind classifies a call as one of spec.md §4.8's four sink kinds.
type SinkKind int

const (
	NotASink SinkKind = iota
	SinkConsole
	SinkEmit
	SinkNetwork
	SinkDatabase
)

// ClassifySink reports which sink kind, if any, a callee name is.
func ClassifySink(name string) SinkKind {
	switch {
	case config.ConsoleSinkNames[name]:
		return SinkConsole
	case config.EmitSinkNames[name]:
		return SinkEmit
	case strings.HasPrefix(name, config.NetworkSinkPrefix):
		return SinkNetwork
	default:
		for _, p := range config.DatabaseSinkPrefixes {
			if strings.HasPrefix(name, p) {
				return SinkDatabase
			}
		}
	}
	return NotASink
}

// CheckSinkCall applies spec.md §4.8's sink rules to a call already
// classified as a sink: an unset-meta argument that is an unknown Name
// (untracked in env) is PII_SINK_UNKNOWN; any L3 meta reaching any
// sink, or an L2 meta reaching the console sink specifically, is
// PII_SINK_UNSANITIZED.
func CheckSinkCall(kind SinkKind, call *coreir.CallExpr, env Env, sigs Signatures, cache *Cache, diags *[]*diagnostics.Diagnostic) {
	if kind == NotASink {
		return
	}
	name, _ := calleeName(call.Callee)

	sensitiveIdx := 0
	if kind == SinkNetwork {
		sensitiveIdx = config.NetworkSinkSensitiveArgIndex
	}
	if sensitiveIdx >= len(call.Args) {
		return
	}
	arg := call.Args[sensitiveIdx]

	if nameExpr, isName := arg.(*coreir.NameExpr); isName {
		if _, tracked := env.Lookup(nameExpr.Value); !tracked {
			*diags = append(*diags, diagnostics.NewError(diagnostics.PiiSinkUnknown, call.Span(), name))
			return
		}
	}

	m := Propagate(arg, env, sigs, cache, diags)
	if m.Unset {
		return
	}
	if m.Level == coreir.PiiL3 || (kind == SinkConsole && m.Level == coreir.PiiL2) {
		*diags = append(*diags, diagnostics.NewError(diagnostics.PiiSinkUnsanitized, call.Span(), name))
	}
}
