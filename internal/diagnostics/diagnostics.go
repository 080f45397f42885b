// Package diagnostics defines the Diagnostic value every pipeline stage
// accumulates into, plus the fixed Code enumeration of spec.md §6.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cnlforge/corelang/internal/token"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Code is a stable diagnostic code name. Code uniquely determines a
// diagnostic's message template and default severity (spec invariant 4).
type Code string

const (
	// Lexer
	LexTabInIndent          Code = "LEX_TAB_IN_INDENT"
	LexBadIndent            Code = "LEX_BAD_INDENT"
	LexInconsistentDedent   Code = "LEX_INCONSISTENT_DEDENT"
	LexUnterminatedString   Code = "LEX_UNTERMINATED_STRING"
	LexBadEscape            Code = "LEX_BAD_ESCAPE"
	LexUnexpectedChar       Code = "LEX_UNEXPECTED_CHAR"

	// Parser
	ParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"

	// Symbols
	DuplicateSymbol Code = "DUPLICATE_SYMBOL"

	// Base type checker / generics (spec.md §6)
	UndefinedVariable    Code = "UNDEFINED_VARIABLE"
	TypeMismatch         Code = "TYPE_MISMATCH"
	ReturnTypeMismatch   Code = "RETURN_TYPE_MISMATCH"
	IfBranchMismatch     Code = "IF_BRANCH_MISMATCH"
	MatchBranchMismatch  Code = "MATCH_BRANCH_MISMATCH"
	NotCallArity         Code = "NOT_CALL_ARITY"
	AwaitType            Code = "AWAIT_TYPE"
	TypevarInconsistent  Code = "TYPEVAR_INCONSISTENT"
	AssignToImmutable    Code = "ASSIGN_TO_IMMUTABLE"

	// Effects & capabilities
	EffMissingIO                  Code = "EFF_MISSING_IO"
	EffMissingCPU                 Code = "EFF_MISSING_CPU"
	CapabilityInferMissingIO      Code = "CAPABILITY_INFER_MISSING_IO"
	CapabilityInferMissingCPU     Code = "CAPABILITY_INFER_MISSING_CPU"
	EffCapMissing                 Code = "EFF_CAP_MISSING"
	EffCapSuperfluous             Code = "EFF_CAP_SUPERFLUOUS"
	WorkflowMissingIOEffect       Code = "WORKFLOW_MISSING_IO_EFFECT"
	WorkflowUndeclaredCapability  Code = "WORKFLOW_UNDECLARED_CAPABILITY"
	CompensateNewCapability       Code = "COMPENSATE_NEW_CAPABILITY"
	ManifestCapabilityNotAllowed  Code = "MANIFEST_CAPABILITY_NOT_ALLOWED"

	// PII
	PiiAssignDowngrade  Code = "PII_ASSIGN_DOWNGRADE"
	PiiImplicitUplevel  Code = "PII_IMPLICIT_UPLEVEL"
	PiiArgViolation     Code = "PII_ARG_VIOLATION"
	PiiSinkUnknown      Code = "PII_SINK_UNKNOWN"
	PiiSinkUnsanitized  Code = "PII_SINK_UNSANITIZED"

	// Async discipline
	AsyncStartNotWaited  Code = "ASYNC_START_NOT_WAITED"
	AsyncWaitNotStarted  Code = "ASYNC_WAIT_NOT_STARTED"
	AsyncDuplicateStart  Code = "ASYNC_DUPLICATE_START"
	AsyncDuplicateWait   Code = "ASYNC_DUPLICATE_WAIT"
	AsyncBranchDivergent Code = "ASYNC_BRANCH_DIVERGENT"
)

// defaultSeverity is the severity a Code carries unless NewErrorWithSeverity
// overrides it. Most codes are errors; a handful are warnings by design.
var defaultSeverity = map[Code]Severity{
	AsyncDuplicateWait:   Warning,
	PiiImplicitUplevel:   Warning,
	AsyncBranchDivergent: Warning,
}

// Diagnostic is the uniform value every checker appends to the shared
// diagnostic buffer (spec.md §3, §7).
type Diagnostic struct {
	ID       uuid.UUID
	Severity Severity
	Code     Code
	Message  string
	Span     token.Span
	Help     string
	Data     map[string]any
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: [%s] %s (%s)", d.Severity, d.Code, d.Message, d.Span)
}

// StageError is a fatal, single-value error a stage (lexer/parser/
// symbol definition) returns when it must abort (spec.md §7).
type StageError struct {
	Diagnostic *Diagnostic
}

func (e *StageError) Error() string {
	return e.Diagnostic.Error()
}

func (e *StageError) Unwrap() error {
	return nil
}

// templates holds the human-readable message template per code. Templates
// are fmt.Sprintf-style; args supplied to New/NewError are applied in order.
var templates = map[Code]string{
	LexTabInIndent:                "tab characters are not permitted in leading indentation",
	LexBadIndent:                  "indentation increased by an odd number of spaces",
	LexInconsistentDedent:         "dedent does not match any enclosing indentation level",
	LexUnterminatedString:         "unterminated string literal",
	LexBadEscape:                  "invalid escape sequence %q",
	LexUnexpectedChar:             "unexpected character %q",
	ParseUnexpectedToken:          "unexpected token %s",
	DuplicateSymbol:               "%q is already defined in this scope",
	UndefinedVariable:             "undefined variable %q",
	TypeMismatch:                  "type mismatch: expected %s, got %s",
	ReturnTypeMismatch:            "return type mismatch: expected %s, got %s",
	IfBranchMismatch:              "if-branches have different types: %s vs %s",
	MatchBranchMismatch:           "match branches have different types: %s vs %s",
	NotCallArity:                  "not() takes exactly one argument, got %d",
	AwaitType:                     "await requires an async-typed expression, got %s",
	TypevarInconsistent:           "type variable %s unifies inconsistently: %s vs %s",
	AssignToImmutable:             "cannot assign to immutable binding %q",
	EffMissingIO:                  "function %q performs io but does not declare it",
	EffMissingCPU:                 "function %q performs cpu work but does not declare it",
	CapabilityInferMissingIO:      "function %q uses capability %s but does not declare io (e.g. %s)",
	CapabilityInferMissingCPU:     "function %q uses cpu capability but declares neither cpu nor io",
	EffCapMissing:                 "capability %s is used but not declared",
	EffCapSuperfluous:             "capability %s is declared but never used",
	WorkflowMissingIOEffect:       "workflow %q must declare io",
	WorkflowUndeclaredCapability:  "step %q uses capability %s, which its function does not declare",
	CompensateNewCapability:       "compensate block for step %q introduces capability %s not used in its body",
	ManifestCapabilityNotAllowed:  "capability %s is not in the manifest's allow-list",
	PiiAssignDowngrade:            "assigning labeled value to unlabeled target %q drops its PII label",
	PiiImplicitUplevel:            "assigning unlabeled value to labeled target %q implicitly upgrades its level",
	PiiArgViolation:               "argument PII label is not assignable to parameter %q",
	PiiSinkUnknown:                "value of unknown PII status reaches sink %q",
	PiiSinkUnsanitized:            "unsanitized PII value reaches sink %q",
	AsyncStartNotWaited:           "task %q is started but never waited",
	AsyncWaitNotStarted:           "task %q is waited but never started",
	AsyncDuplicateStart:           "task %q is started more than once",
	AsyncDuplicateWait:            "task %q is waited more than once",
	AsyncBranchDivergent:          "branches of this %s start/wait a different set of tasks",
}

// New builds a Diagnostic at the given severity.
func New(severity Severity, code Code, span token.Span, args ...any) *Diagnostic {
	tmpl, ok := templates[code]
	if !ok {
		tmpl = string(code)
	}
	return &Diagnostic{
		ID:       uuid.New(),
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(tmpl, args...),
		Span:     span,
		Data:     map[string]any{},
	}
}

// NewError builds an Error-severity Diagnostic, or the code's configured
// default severity if it differs from Error (e.g. ASYNC_DUPLICATE_WAIT is
// a warning by design).
func NewError(code Code, span token.Span, args ...any) *Diagnostic {
	sev := Error
	if s, ok := defaultSeverity[code]; ok {
		sev = s
	}
	return New(sev, code, span, args...)
}

// WithHelp sets the Help string and returns the diagnostic for chaining.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// WithData merges a key/value pair into Data and returns the diagnostic.
func (d *Diagnostic) WithData(key string, value any) *Diagnostic {
	d.Data[key] = value
	return d
}
