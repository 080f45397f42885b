package pipeline

import (
	"github.com/cnlforge/corelang/internal/canonicalizer"
	"github.com/cnlforge/corelang/internal/checker"
	"github.com/cnlforge/corelang/internal/lexer"
	"github.com/cnlforge/corelang/internal/lowering"
	"github.com/cnlforge/corelang/internal/parser"
	"github.com/cnlforge/corelang/internal/token"
)

// CanonicalizerProcessor runs spec.md §4.1's locale-normalization pass.
type CanonicalizerProcessor struct{}

func (CanonicalizerProcessor) Process(ctx *Context) *Context {
	ctx.Canonical = canonicalizer.Canonicalize(ctx.Source, ctx.Lexicon, ctx.Vocabulary)
	return ctx
}

// LexerProcessor runs spec.md §4.2's indent-sensitive tokenizer.
type LexerProcessor struct{}

func (LexerProcessor) Process(ctx *Context) *Context {
	tokens, comments, diags := lexer.Lex(ctx.Canonical, ctx.Lexicon)
	ctx.Tokens = tokens
	ctx.Comments = comments
	ctx.Diagnostics = append(ctx.Diagnostics, diags...)
	return ctx
}

// ParserProcessor runs spec.md §4.3's recursive-descent AST builder.
// A token stream holding nothing but EOF yields no Module.
type ParserProcessor struct{}

func (ParserProcessor) Process(ctx *Context) *Context {
	if len(ctx.Tokens) == 0 || (len(ctx.Tokens) == 1 && ctx.Tokens[0].Kind == token.EOF) {
		return ctx
	}
	mod, diags := parser.Parse(ctx.Tokens, ctx.Comments)
	ctx.Module = mod
	ctx.Diagnostics = append(ctx.Diagnostics, diags...)
	return ctx
}

// LoweringProcessor runs spec.md §4.4's Core-IR lowering pass. Lowering
// itself never fails (it only transforms a successfully parsed tree),
// so it appends no diagnostics of its own.
type LoweringProcessor struct{}

func (LoweringProcessor) Process(ctx *Context) *Context {
	if ctx.Module == nil {
		return ctx
	}
	ctx.IR = lowering.Lower(ctx.Module)
	return ctx
}

// CheckerProcessor runs the full §4.5-§4.10 checker suite.
type CheckerProcessor struct{}

func (CheckerProcessor) Process(ctx *Context) *Context {
	if ctx.IR == nil {
		return ctx
	}
	ctx.Diagnostics = append(ctx.Diagnostics, checker.CheckModule(ctx.IR, ctx.Manifest)...)
	return ctx
}

// Default builds the standard five-stage pipeline spec.md §2 names.
func Default() *Pipeline {
	return New(
		CanonicalizerProcessor{},
		LexerProcessor{},
		ParserProcessor{},
		LoweringProcessor{},
		CheckerProcessor{},
	)
}
