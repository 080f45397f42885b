// Package symbols implements the scope tree and type-alias registry
// spec.md §4.5 describes: enterScope/exitScope, define/lookup with
// shadow-capture tracking, and a cycle-safe resolveTypeAlias. Grounded
// on the teacher's internal/symbols package (funvibe-funxy): a
// SymbolTable-per-scope chain linked by an Outer()/Parent() pointer,
// rather than one flat table with an explicit stack.
package symbols

import (
	"github.com/google/uuid"

	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/token"
)

// ScopeKind classifies a Scope the way spec.md's enterScope(kind) does.
type ScopeKind int

const (
	ScopeModule ScopeKind = iota
	ScopeFunction
	ScopeBlock
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "module"
	}
}

// SymbolKind classifies what a SymbolInfo names.
type SymbolKind int

const (
	SymVar SymbolKind = iota
	SymParam
	SymFunc
	SymData
	SymEnum
	SymTask
)

// SymbolInfo is one entry in a Scope (spec.md §4.5).
type SymbolInfo struct {
	Name           string
	Type           coreir.Type
	Kind           SymbolKind
	Mutable        bool
	Span           token.Span
	Captured       bool
	ShadowedFrom   *SymbolInfo
	DeclaredEffect string
}

// aliasEntry is a registered type alias, plus a memoized expansion.
type aliasEntry struct {
	name       string
	typeParams []string
	typ        coreir.Type
	expanded   coreir.Type // cached resolution, filled by the first ResolveTypeAlias
}

// Scope is one lexical scope in the chain rooted at the module scope.
// A function/block scope is built by EnterScope and discarded by
// ExitScope; the module scope is never exited (spec.md §4.5 "cannot
// exit Module").
type Scope struct {
	ID      uuid.UUID
	Kind    ScopeKind
	Parent  *Scope
	symbols map[string]*SymbolInfo
	aliases map[string]*aliasEntry
}

// NewModuleScope creates the root scope a compilation unit's checking
// pass begins in.
func NewModuleScope() *Scope {
	return &Scope{
		ID:      uuid.New(),
		Kind:    ScopeModule,
		symbols: map[string]*SymbolInfo{},
		aliases: map[string]*aliasEntry{},
	}
}

// EnterScope opens a new child scope of the given kind.
func (s *Scope) EnterScope(kind ScopeKind) *Scope {
	return &Scope{
		ID:      uuid.New(),
		Kind:    kind,
		Parent:  s,
		symbols: map[string]*SymbolInfo{},
		aliases: map[string]*aliasEntry{},
	}
}

// ExitScope returns the parent scope. Exiting the module scope is a
// caller error (spec.md §4.5); callers that correctly track nesting
// never call it at the root, so this panics rather than returning an
// error a caller would have to remember to check.
func (s *Scope) ExitScope() *Scope {
	if s.Parent == nil {
		panic("symbols: cannot exit the Module scope")
	}
	return s.Parent
}

// DefineOptions configures Define's optional behavior.
type DefineOptions struct {
	Mutable        bool
	Span           token.Span
	DeclaredEffect string
	// OnShadow fires when name already exists in an enclosing scope;
	// it receives the new symbol and the one it shadows (spec.md §4.5).
	OnShadow func(newSym, shadowed *SymbolInfo)
}

// Define adds name to the current scope only. It fails with
// DuplicateSymbol if name already exists in this scope (spec.md §4.5
// "fails ... if the name already exists in the current scope only").
func (s *Scope) Define(name string, typ coreir.Type, kind SymbolKind, opts DefineOptions) (*SymbolInfo, *diagnostics.Diagnostic) {
	if _, exists := s.symbols[name]; exists {
		return nil, diagnostics.NewError(diagnostics.DuplicateSymbol, opts.Span, name)
	}
	sym := &SymbolInfo{
		Name:           name,
		Type:           typ,
		Kind:           kind,
		Mutable:        opts.Mutable,
		Span:           opts.Span,
		DeclaredEffect: opts.DeclaredEffect,
	}
	if shadowed, ok := s.lookupEnclosing(name); ok {
		sym.ShadowedFrom = shadowed
		if opts.OnShadow != nil {
			opts.OnShadow(sym, shadowed)
		}
	}
	s.symbols[name] = sym
	return sym, nil
}

// lookupEnclosing searches the parent chain only, skipping the
// current scope, for the shadow-detection check Define performs.
func (s *Scope) lookupEnclosing(name string) (*SymbolInfo, bool) {
	if s.Parent == nil {
		return nil, false
	}
	return s.Parent.Lookup(name)
}

// Lookup walks current -> root.
func (s *Scope) Lookup(name string) (*SymbolInfo, bool) {
	if sym, ok := s.symbols[name]; ok {
		return sym, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// LookupLocal checks the current scope only.
func (s *Scope) LookupLocal(name string) (*SymbolInfo, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// MarkCaptured flips the captured flag on whichever enclosing scope
// actually defines name (spec.md §4.5 "recursively searches for the
// scope that defines the name ... not the current scope").
func (s *Scope) MarkCaptured(name string) bool {
	sym, ok := s.Lookup(name)
	if !ok {
		return false
	}
	sym.Captured = true
	return true
}
