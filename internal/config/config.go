// Package config holds ambient, process-wide configuration data: the
// module version, test-mode flags, and the built-in name tables the
// effect/capability/PII checkers are driven by. It carries no framework,
// matching the teacher's own config package.
package config

import "strings"

// CapabilityForCallee matches a (possibly qualified) callee name against
// IOCapabilityPrefixes then CPUCapabilityPrefixes (spec.md §4.7 rule 2),
// returning the implied capability and whether any prefix matched. Shared
// between internal/lowering (Step/Workflow capability aggregation, spec.md
// §4.4) and internal/effects (the full inference/check pass).
func CapabilityForCallee(name string) (string, bool) {
	for prefix, cap := range IOCapabilityPrefixes {
		if strings.HasPrefix(name, prefix) {
			return cap, true
		}
	}
	for prefix, cap := range CPUCapabilityPrefixes {
		if strings.HasPrefix(name, prefix) {
			return cap, true
		}
	}
	return "", false
}

// Version is the current corelang version.
var Version = "0.1.0"

// IsTestMode is a flag for test harnesses; the library never sets it.
// Nothing in this module reads it: type names printed by
// typesystem.Describe, type-variable names included, are never normalized.
var IsTestMode = false

// IOCapabilityPrefixes maps a call-site name prefix to the capability it
// implies (spec.md §4.7). Order doesn't matter; prefixes are checked by
// strings.HasPrefix against the full (possibly qualified) callee name.
//
// "Db." shares the "Sql" capability rather than getting its own: spec.md
// §4.8 groups Sql. and Db. together as one "database" sink kind (see
// DatabaseSinkPrefixes below) with no mention of a separate capability
// name, so a function declared "It performs io [Sql]" must cover calls
// through either prefix.
var IOCapabilityPrefixes = map[string]string{
	"Http.":      "Http",
	"Sql.":       "Sql",
	"Db.":        "Sql",
	"Time.":      "Time",
	"Files.":     "Files",
	"Secrets.":   "Secrets",
	"Ai.":        "AiModel",
	"Payment.":   "Payment",
	"Inventory.": "Inventory",
}

// CPUCapabilityPrefixes maps a call-site name prefix to the Cpu capability.
var CPUCapabilityPrefixes = map[string]string{
	"Cpu.": "Cpu",
}

// SanitizerFunctions are calls that downgrade a PII label to L1 while
// preserving its category set (spec.md §4.8).
var SanitizerFunctions = map[string]bool{
	"redact":  true,
	"tokenize": true,
}

// ConsoleSinkNames classifies calls as the "console" sink.
var ConsoleSinkNames = map[string]bool{
	"print": true,
	"log":   true,
	"debug": true,
	"trace": true,
}

// EmitSinkNames classifies calls as the "emit" (workflow emit) sink.
var EmitSinkNames = map[string]bool{
	"emit": true,
}

// NetworkSinkPrefix classifies calls starting with this prefix as the
// "network" sink; SensitiveArgIndex is the 0-based argument index the
// spec treats as the externally-visible one (spec.md §4.8's "sensitive
// arg index 1" is 1-based, i.e. the first/sole argument — see scenario
// S4, Http.post(user) with a single argument).
const NetworkSinkPrefix = "Http."
const NetworkSinkSensitiveArgIndex = 0

// DatabaseSinkPrefixes classifies calls as the "database" sink.
var DatabaseSinkPrefixes = []string{"Sql.", "Db."}
