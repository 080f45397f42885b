package lowering

import (
	"strings"

	"github.com/cnlforge/corelang/internal/coreir"
)

// capCtx tracks a stack of bound-name scopes while walking a lowered
// body, accumulating every free Name into found/order (spec.md §4.4
// "walk the body with a scope stack seeded by its parameters, and
// collect every free Name that is not locally bound").
type capCtx struct {
	scopes []map[string]bool
	found  map[string]bool
	order  []string
}

func (c *capCtx) push() { c.scopes = append(c.scopes, map[string]bool{}) }
func (c *capCtx) pop()  { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *capCtx) bind(name string) {
	c.scopes[len(c.scopes)-1][name] = true
}

func (c *capCtx) isBound(name string) bool {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i][name] {
			return true
		}
	}
	return false
}

func (c *capCtx) use(name string) {
	if name == "" || strings.Contains(name, ".") {
		return
	}
	if c.isBound(name) {
		return
	}
	if !c.found[name] {
		c.found[name] = true
		c.order = append(c.order, name)
	}
}

// computeCaptures returns, in first-occurrence order, every free name
// a lambda's body references that isn't bound by bound (its own
// parameters) or a binding introduced within the body itself.
func computeCaptures(bound map[string]bool, body *coreir.Block) []string {
	c := &capCtx{found: map[string]bool{}}
	c.push()
	for name := range bound {
		c.bind(name)
	}
	if body != nil {
		for _, st := range body.Statements {
			walkStmtCaptures(st, c)
		}
	}
	c.pop()
	return c.order
}

func walkStmtCaptures(s coreir.Stmt, c *capCtx) {
	switch n := s.(type) {
	case nil:
		return
	case *coreir.Block:
		c.push()
		for _, st := range n.Statements {
			walkStmtCaptures(st, c)
		}
		c.pop()
	case *coreir.Scope:
		c.push()
		for _, st := range n.Statements {
			walkStmtCaptures(st, c)
		}
		c.pop()
	case *coreir.LetStmt:
		walkExprCaptures(n.Value, c)
		c.bind(n.Name)
	case *coreir.SetStmt:
		c.use(n.Name)
		walkExprCaptures(n.Value, c)
	case *coreir.ReturnStmt:
		walkExprCaptures(n.Value, c)
	case *coreir.IfStmt:
		walkExprCaptures(n.Cond, c)
		walkStmtCaptures(n.Then, c)
		walkStmtCaptures(n.Else, c)
	case *coreir.MatchStmt:
		walkExprCaptures(n.Subject, c)
		for _, arm := range n.Arms {
			c.push()
			bindPatternCaptures(arm.Pattern, c)
			walkStmtCaptures(arm.Body, c)
			c.pop()
		}
	case *coreir.StartStmt:
		walkExprCaptures(n.Call, c)
		c.bind(n.Task)
	case *coreir.WaitStmt:
		c.use(n.Task)
		if n.Name != "" {
			c.bind(n.Name)
		}
	case *coreir.WorkflowStmt:
		for _, st := range n.Steps {
			walkStmtCaptures(st.Body, c)
			walkStmtCaptures(st.Compensate, c)
		}
	}
}

func bindPatternCaptures(p coreir.Pattern, c *capCtx) {
	switch n := p.(type) {
	case *coreir.PatternCtor:
		for _, a := range n.Args {
			bindPatternCaptures(a, c)
		}
	case *coreir.PatternName:
		c.bind(n.Name)
	}
}

func walkExprCaptures(e coreir.Expr, c *capCtx) {
	switch n := e.(type) {
	case nil:
		return
	case *coreir.NameExpr:
		c.use(n.Value)
	case *coreir.CallExpr:
		walkExprCaptures(n.Callee, c)
		for _, a := range n.Args {
			walkExprCaptures(a, c)
		}
	case *coreir.ConstructExpr:
		for _, v := range n.FieldVals {
			walkExprCaptures(v, c)
		}
	case *coreir.OkExpr:
		walkExprCaptures(n.Value, c)
	case *coreir.ErrExpr:
		walkExprCaptures(n.Value, c)
	case *coreir.SomeExpr:
		walkExprCaptures(n.Value, c)
	case *coreir.AwaitExpr:
		c.use(n.Task)
	case *coreir.LambdaExpr:
		c.push()
		for _, p := range n.Params {
			c.bind(p.Name)
		}
		if n.Body != nil {
			for _, st := range n.Body.Statements {
				walkStmtCaptures(st, c)
			}
		}
		c.pop()
	}
}
