package lowering

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/coreir"
)

// lowerTopBlock lowers a function/lambda's own body: it stays a Block,
// never a Scope, even though its statements are lowered the same way a
// nested block's would be (spec.md §4.4 "a function's top-level Block
// stays a Block").
func lowerTopBlock(b *ast.Block) *coreir.Block {
	if b == nil {
		return nil
	}
	return &coreir.Block{BlockSpan: b.BlockSpan, Statements: lowerStmts(b.Statements)}
}

// lowerNestedScope lowers a Block that appears nested inside another
// statement (an If branch, a Match arm) into a Scope (spec.md §4.4).
func lowerNestedScope(b *ast.Block) *coreir.Scope {
	if b == nil {
		return nil
	}
	return &coreir.Scope{ScopeSpan: b.BlockSpan, Statements: lowerStmts(b.Statements)}
}

func lowerStmts(stmts []ast.Stmt) []coreir.Stmt {
	if len(stmts) == 0 {
		return nil
	}
	out := make([]coreir.Stmt, 0, len(stmts))
	for _, s := range stmts {
		if lowered := lowerStmt(s); lowered != nil {
			out = append(out, lowered)
		}
	}
	return out
}

func lowerStmt(s ast.Stmt) coreir.Stmt {
	switch n := s.(type) {
	case nil:
		return nil
	case *ast.Block:
		return lowerNestedScope(n)
	case *ast.LetStmt:
		return &coreir.LetStmt{StmtSpan: n.StmtSpan, Name: n.Name, Type: lowerType(n.Type), Value: lowerExpr(n.Value)}
	case *ast.SetStmt:
		return &coreir.SetStmt{StmtSpan: n.StmtSpan, Name: n.Name, Value: lowerExpr(n.Value)}
	case *ast.ReturnStmt:
		return &coreir.ReturnStmt{StmtSpan: n.StmtSpan, Value: lowerExpr(n.Value)}
	case *ast.IfStmt:
		return &coreir.IfStmt{
			StmtSpan: n.StmtSpan,
			Cond:     lowerExpr(n.Cond),
			Then:     lowerNestedScope(n.Then),
			Else:     lowerNestedScope(n.Else),
			ElseIsIf: n.ElseIsIf,
		}
	case *ast.MatchStmt:
		arms := make([]*coreir.MatchArm, 0, len(n.Arms))
		for _, a := range n.Arms {
			arms = append(arms, &coreir.MatchArm{ArmSpan: a.ArmSpan, Pattern: lowerPattern(a.Pattern), Body: lowerNestedScope(a.Body)})
		}
		return &coreir.MatchStmt{StmtSpan: n.StmtSpan, Subject: lowerExpr(n.Subject), Arms: arms}
	case *ast.StartStmt:
		return &coreir.StartStmt{StmtSpan: n.StmtSpan, Task: n.Task, Call: lowerExpr(n.Call)}
	case *ast.WaitStmt:
		return &coreir.WaitStmt{StmtSpan: n.StmtSpan, Task: n.Task, Name: n.Name}
	case *ast.WorkflowStmt:
		return lowerWorkflow(n)
	}
	return nil
}

func lowerPattern(p ast.Pattern) coreir.Pattern {
	switch n := p.(type) {
	case nil:
		return nil
	case *ast.PatternNull:
		return &coreir.PatternNull{PatternSpan: n.PatternSpan}
	case *ast.PatternCtor:
		args := make([]coreir.Pattern, 0, len(n.Args))
		for _, a := range n.Args {
			args = append(args, lowerPattern(a))
		}
		return &coreir.PatternCtor{PatternSpan: n.PatternSpan, Name: n.Name, Args: args}
	case *ast.PatternName:
		return &coreir.PatternName{PatternSpan: n.PatternSpan, Name: n.Name}
	case *ast.PatternInt:
		return &coreir.PatternInt{PatternSpan: n.PatternSpan, Value: n.Value}
	}
	return nil
}
