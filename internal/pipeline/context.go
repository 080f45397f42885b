package pipeline

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/effects"
	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/token"
	"github.com/cnlforge/corelang/internal/vocabulary"
)

// Context carries one compilation unit's state through the pipeline's
// five stages (spec.md §2: Canonicalizer -> Lexer -> Parser -> Lowering
// -> Checker). Each stage reads the previous stage's output field(s)
// and fills in its own, appending to the shared Diagnostics buffer
// rather than replacing it, so a later stage's diagnostics never erase
// an earlier stage's.
type Context struct {
	FilePath string
	Source   string

	Lexicon    *lexicon.Lexicon
	Vocabulary *vocabulary.IdentifierIndex
	Manifest   *effects.Manifest

	Canonical string
	Tokens    []token.Token
	Comments  []token.Comment
	Module    *ast.Module
	IR        *coreir.Module

	Diagnostics []*diagnostics.Diagnostic
}

// NewContext builds the Context a fresh compilation unit begins with.
func NewContext(filePath, source string, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex) *Context {
	return &Context{FilePath: filePath, Source: source, Lexicon: lx, Vocabulary: vocab}
}
