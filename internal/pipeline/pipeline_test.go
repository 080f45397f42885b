package pipeline_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/pipeline"
)

func TestDefaultPipelineRunsAllStages(t *testing.T) {
	lx, ok := lexicon.Get("en-US")
	if !ok {
		t.Fatal("expected en-US lexicon to be registered")
	}
	ctx := pipeline.NewContext("test.cnl", "Function double takes Int n produces Int.\n    Return n.\n", lx, nil)
	out := pipeline.Default().Run(ctx)

	if out.Canonical == "" {
		t.Error("expected canonicalizer to produce output")
	}
	if len(out.Tokens) == 0 {
		t.Error("expected lexer to produce tokens")
	}
}

func TestPipelineStopsGracefullyWithoutModule(t *testing.T) {
	lx, _ := lexicon.Get("en-US")
	ctx := pipeline.NewContext("empty.cnl", "", lx, nil)
	out := pipeline.Default().Run(ctx)
	if out == nil {
		t.Fatal("expected a non-nil context even for empty input")
	}
}
