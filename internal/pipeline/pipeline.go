// Package pipeline sequences the five stages spec.md §2 names behind
// a single Processor interface, adapted near-verbatim from the
// teacher's internal/pipeline/pipeline.go (funvibe-funxy): a Pipeline
// is an ordered list of Processors, and Run feeds one PipelineContext
// through all of them, continuing past a stage that reported errors
// so later stages (and callers like an LSP) still see whatever partial
// result is available.
package pipeline

// Processor is one stage of the front-end pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline is a fixed sequence of Processors.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, always returning the final
// context even if an earlier stage appended diagnostics.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
