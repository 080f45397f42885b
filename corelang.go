// Package corelang is the public face of the CNL compiler front end:
// Canonicalizer -> Lexer -> Parser -> Core-IR Lowering -> Checker
// (spec.md §2, §6). Each stage is also exposed standalone for callers
// that only need part of the pipeline (an editor wanting just tokens,
// a test wanting just the lowered IR); Compile runs all five in order
// and is the one most callers want.
package corelang

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/canonicalizer"
	"github.com/cnlforge/corelang/internal/checker"
	"github.com/cnlforge/corelang/internal/coreir"
	"github.com/cnlforge/corelang/internal/diagnostics"
	"github.com/cnlforge/corelang/internal/effects"
	"github.com/cnlforge/corelang/internal/lexer"
	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/lowering"
	"github.com/cnlforge/corelang/internal/parser"
	"github.com/cnlforge/corelang/internal/pipeline"
	"github.com/cnlforge/corelang/internal/token"
	"github.com/cnlforge/corelang/internal/vocabulary"
)

// Canonicalize runs spec.md §4.1's locale-normalization pass.
func Canonicalize(source string, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex) string {
	return canonicalizer.Canonicalize(source, lx, vocab)
}

// Lex runs spec.md §4.2's indent-sensitive tokenizer over already
// canonicalized source.
func Lex(canonical string, lx *lexicon.Lexicon) ([]token.Token, []token.Comment, []*diagnostics.Diagnostic) {
	return lexer.Lex(canonical, lx)
}

// Parse runs spec.md §4.3's recursive-descent AST builder over a
// token stream.
func Parse(tokens []token.Token, comments []token.Comment) (*ast.Module, []*diagnostics.Diagnostic) {
	return parser.Parse(tokens, comments)
}

// Lower runs spec.md §4.4's Core-IR lowering pass.
func Lower(mod *ast.Module) *coreir.Module {
	return lowering.Lower(mod)
}

// Check runs the full §4.5-§4.10 semantic checker suite over a
// lowered module.
func Check(mod *coreir.Module, manifest *effects.Manifest) []*diagnostics.Diagnostic {
	return checker.CheckModule(mod, manifest)
}

// Result is everything Compile produces for one source file.
type Result struct {
	Canonical   string
	Tokens      []token.Token
	Comments    []token.Comment
	Module      *ast.Module
	IR          *coreir.Module
	Diagnostics []*diagnostics.Diagnostic
}

// Compile runs all five stages over one source file in order, via
// internal/pipeline.Default, stopping gracefully (not panicking) at
// whichever stage first produces no usable output — each stage's
// diagnostics are still returned regardless of how far compilation got.
func Compile(filePath, source string, lx *lexicon.Lexicon, vocab *vocabulary.IdentifierIndex, manifest *effects.Manifest) *Result {
	ctx := pipeline.NewContext(filePath, source, lx, vocab)
	ctx.Manifest = manifest
	out := pipeline.Default().Run(ctx)
	return &Result{
		Canonical:   out.Canonical,
		Tokens:      out.Tokens,
		Comments:    out.Comments,
		Module:      out.Module,
		IR:          out.IR,
		Diagnostics: out.Diagnostics,
	}
}
