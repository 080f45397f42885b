// Package irprint dumps a Core IR tree as an indented listing for
// tests and debugging. It renders tree shape, not re-parseable CNL:
// adapted from funvibe-funxy's internal/prettyprinter.CodePrinter
// (same indent/write bookkeeping, same Visitor walk) but every
// VisitX method writes "NodeKind field=value" lines instead of
// surface syntax, since spec.md Non-goals exclude code generation
// beyond the IR.
package irprint

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/cnlforge/corelang/internal/coreir"
)

// Dumper walks a Core IR tree and renders it as an indented node
// listing. The zero value is ready to use.
type Dumper struct {
	buf    bytes.Buffer
	indent int
}

var _ coreir.Visitor = (*Dumper)(nil)

// Dump renders n's subtree as a string.
func Dump(n coreir.Node) string {
	if n == nil {
		return "<nil>"
	}
	d := &Dumper{}
	n.Accept(d)
	return d.buf.String()
}

func (d *Dumper) line(format string, args ...any) {
	d.buf.WriteString(strings.Repeat("  ", d.indent))
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteString("\n")
}

func (d *Dumper) child(n coreir.Node) {
	d.indent++
	if n == nil {
		d.line("<nil>")
	} else {
		n.Accept(d)
	}
	d.indent--
}

func (d *Dumper) childList(label string, nodes []coreir.Node) {
	d.line("%s:", label)
	d.indent++
	for _, n := range nodes {
		d.child(n)
	}
	d.indent--
}

func (d *Dumper) VisitModule(n *coreir.Module) {
	d.line("Module %s", n.Name)
	d.indent++
	if len(n.TypeAliases) > 0 {
		names := make([]string, 0, len(n.TypeAliases))
		for name := range n.TypeAliases {
			names = append(names, name)
		}
		sort.Strings(names)
		d.line("TypeAliases: %s", strings.Join(names, ", "))
	}
	nodes := make([]coreir.Node, len(n.Decls))
	for i, decl := range n.Decls {
		nodes[i] = decl
	}
	d.indent--
	d.childList("Decls", nodes)
}

func (d *Dumper) VisitImportDecl(n *coreir.ImportDecl) {
	d.line("Import path=%q alias=%q", n.Path, n.Alias)
}

func (d *Dumper) VisitDataDecl(n *coreir.DataDecl) {
	d.line("Data %s typeParams=%v", n.Name, n.TypeParams)
	d.indent++
	for _, f := range n.Fields {
		d.line("field %s:", f.Name)
		d.child(f.Type)
	}
	d.indent--
}

func (d *Dumper) VisitEnumDecl(n *coreir.EnumDecl) {
	d.line("Enum %s typeParams=%v", n.Name, n.TypeParams)
	d.indent++
	for _, variant := range n.Variants {
		d.line("variant %s:", variant.Name)
		d.indent++
		for _, f := range variant.Fields {
			d.line("field %s:", f.Name)
			d.child(f.Type)
		}
		d.indent--
	}
	d.indent--
}

func (d *Dumper) VisitFuncDecl(n *coreir.FuncDecl) {
	d.line("Func %s effect=%s capabilities=%v pii=%s/%v", n.Name, n.Effect, n.Capabilities, n.PiiLevel, n.PiiCategories)
	d.indent++
	for _, p := range n.Params {
		d.line("param %s:", p.Name)
		d.child(p.Type)
	}
	d.line("returns:")
	d.child(n.ReturnType)
	d.line("body:")
	d.child(n.Body)
	d.indent--
}

func (d *Dumper) VisitBlock(n *coreir.Block) {
	d.line("Block")
	d.indent++
	for _, s := range n.Statements {
		d.child(s)
	}
	d.indent--
}

func (d *Dumper) VisitScope(n *coreir.Scope) {
	d.line("Scope")
	d.indent++
	for _, s := range n.Statements {
		d.child(s)
	}
	d.indent--
}

func (d *Dumper) VisitLetStmt(n *coreir.LetStmt) {
	d.line("Let %s", n.Name)
	d.indent++
	if n.Type != nil {
		d.line("type:")
		d.child(n.Type)
	}
	d.line("value:")
	d.child(n.Value)
	d.indent--
}

func (d *Dumper) VisitSetStmt(n *coreir.SetStmt) {
	d.line("Set %s", n.Name)
	d.child(n.Value)
}

func (d *Dumper) VisitReturnStmt(n *coreir.ReturnStmt) {
	d.line("Return")
	d.child(n.Value)
}

func (d *Dumper) VisitIfStmt(n *coreir.IfStmt) {
	d.line("If")
	d.indent++
	d.line("cond:")
	d.child(n.Cond)
	d.line("then:")
	d.child(n.Then)
	if n.Else != nil {
		d.line("else: (elseIsIf=%v)", n.ElseIsIf)
		d.child(n.Else)
	}
	d.indent--
}

func (d *Dumper) VisitMatchStmt(n *coreir.MatchStmt) {
	d.line("Match")
	d.indent++
	d.line("subject:")
	d.child(n.Subject)
	for _, arm := range n.Arms {
		d.line("arm:")
		d.indent++
		d.line("pattern:")
		d.child(arm.Pattern)
		d.line("body:")
		d.child(arm.Body)
		d.indent--
	}
	d.indent--
}

func (d *Dumper) VisitStartStmt(n *coreir.StartStmt) {
	d.line("Start %s", n.Task)
	d.child(n.Call)
}

func (d *Dumper) VisitWaitStmt(n *coreir.WaitStmt) {
	d.line("Wait task=%s as=%s", n.Task, n.Name)
}

func (d *Dumper) VisitWorkflowStmt(n *coreir.WorkflowStmt) {
	d.line("Workflow %s effect=%s capabilities=%v inferredCapabilities=%v", n.Name, n.Effect, n.Capabilities, n.InferredCapabilities)
	d.indent++
	for _, step := range n.Steps {
		d.line("step %s dependsOn=%v capabilities=%v", step.Name, step.DependsOn, step.Capabilities)
		d.indent++
		d.line("body:")
		d.child(step.Body)
		if step.Compensate != nil {
			d.line("compensate:")
			d.child(step.Compensate)
		}
		d.indent--
	}
	d.indent--
}

func (d *Dumper) VisitNameExpr(n *coreir.NameExpr)     { d.line("Name %s", n.Value) }
func (d *Dumper) VisitBoolExpr(n *coreir.BoolExpr)     { d.line("Bool %v", n.Value) }
func (d *Dumper) VisitIntExpr(n *coreir.IntExpr)       { d.line("Int %d", n.Value) }
func (d *Dumper) VisitLongExpr(n *coreir.LongExpr)     { d.line("Long %d", n.Value) }
func (d *Dumper) VisitDoubleExpr(n *coreir.DoubleExpr) { d.line("Double %v", n.Value) }
func (d *Dumper) VisitStringExpr(n *coreir.StringExpr) { d.line("String %q", n.Value) }
func (d *Dumper) VisitNullExpr(n *coreir.NullExpr)     { d.line("Null") }

func (d *Dumper) VisitCallExpr(n *coreir.CallExpr) {
	d.line("Call")
	d.indent++
	d.line("callee:")
	d.child(n.Callee)
	for i, a := range n.Args {
		d.line("arg[%d]:", i)
		d.child(a)
	}
	d.indent--
}

func (d *Dumper) VisitConstructExpr(n *coreir.ConstructExpr) {
	d.line("Construct %s", n.TypeName)
	d.indent++
	for i, name := range n.FieldNames {
		d.line("field %s:", name)
		var val coreir.Expr
		if i < len(n.FieldVals) {
			val = n.FieldVals[i]
		}
		d.child(val)
	}
	d.indent--
}

func (d *Dumper) VisitOkExpr(n *coreir.OkExpr) {
	d.line("Ok")
	d.child(n.Value)
}

func (d *Dumper) VisitErrExpr(n *coreir.ErrExpr) {
	d.line("Err")
	d.child(n.Value)
}

func (d *Dumper) VisitSomeExpr(n *coreir.SomeExpr) {
	d.line("Some")
	d.child(n.Value)
}

func (d *Dumper) VisitNoneExpr(n *coreir.NoneExpr) { d.line("None") }

func (d *Dumper) VisitLambdaExpr(n *coreir.LambdaExpr) {
	d.line("Lambda captures=%v", n.Captures)
	d.indent++
	for _, p := range n.Params {
		d.line("param %s:", p.Name)
		d.child(p.Type)
	}
	if n.ReturnType != nil {
		d.line("returns:")
		d.child(n.ReturnType)
	}
	d.line("body:")
	d.child(n.Body)
	d.indent--
}

func (d *Dumper) VisitAwaitExpr(n *coreir.AwaitExpr) { d.line("Await %s", n.Task) }

func (d *Dumper) VisitTypeName(n *coreir.TypeName) { d.line("TypeName %s", n.Name) }
func (d *Dumper) VisitTypeVar(n *coreir.TypeVar)   { d.line("TypeVar %s", n.Name) }

func (d *Dumper) VisitTypeApp(n *coreir.TypeApp) {
	d.line("TypeApp %s", n.Name)
	d.indent++
	for _, arg := range n.Args {
		d.child(arg)
	}
	d.indent--
}

func (d *Dumper) VisitResultType(n *coreir.ResultType) {
	d.line("Result")
	d.indent++
	d.line("ok:")
	d.child(n.Ok)
	d.line("err:")
	d.child(n.Err)
	d.indent--
}

func (d *Dumper) VisitMaybeType(n *coreir.MaybeType) {
	d.line("Maybe")
	d.child(n.Elem)
}

func (d *Dumper) VisitOptionType(n *coreir.OptionType) {
	d.line("Option")
	d.child(n.Elem)
}

func (d *Dumper) VisitListType(n *coreir.ListType) {
	d.line("List")
	d.child(n.Elem)
}

func (d *Dumper) VisitMapType(n *coreir.MapType) {
	d.line("Map")
	d.indent++
	d.line("key:")
	d.child(n.Key)
	d.line("value:")
	d.child(n.Value)
	d.indent--
}

func (d *Dumper) VisitFuncType(n *coreir.FuncType) {
	d.line("FuncType")
	d.indent++
	for i, p := range n.Params {
		d.line("param[%d]:", i)
		d.child(p)
	}
	d.line("returns:")
	d.child(n.ReturnType)
	d.indent--
}

func (d *Dumper) VisitPiiType(n *coreir.PiiType) {
	d.line("Pii level=%s categories=%v", n.Level, n.Categories)
	d.child(n.Base)
}

func (d *Dumper) VisitPatternNull(n *coreir.PatternNull) { d.line("PatternNull") }

func (d *Dumper) VisitPatternCtor(n *coreir.PatternCtor) {
	d.line("PatternCtor %s", n.Name)
	d.indent++
	for _, a := range n.Args {
		d.child(a)
	}
	d.indent--
}

func (d *Dumper) VisitPatternName(n *coreir.PatternName) { d.line("PatternName %s", n.Name) }
func (d *Dumper) VisitPatternInt(n *coreir.PatternInt)   { d.line("PatternInt %d", n.Value) }
