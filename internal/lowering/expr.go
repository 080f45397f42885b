package lowering

import (
	"strconv"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/coreir"
)

func lowerExpr(e ast.Expr) coreir.Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *ast.NameExpr:
		return &coreir.NameExpr{ExprSpan: n.ExprSpan, Value: n.Value}
	case *ast.BoolExpr:
		return &coreir.BoolExpr{ExprSpan: n.ExprSpan, Value: n.Value}
	case *ast.IntExpr:
		return &coreir.IntExpr{ExprSpan: n.ExprSpan, Value: n.Value}
	case *ast.LongExpr:
		return &coreir.LongExpr{ExprSpan: n.ExprSpan, Value: n.Value}
	case *ast.DoubleExpr:
		return &coreir.DoubleExpr{ExprSpan: n.ExprSpan, Value: n.Value}
	case *ast.StringExpr:
		return &coreir.StringExpr{ExprSpan: n.ExprSpan, Value: n.Value}
	case *ast.NullExpr:
		return &coreir.NullExpr{ExprSpan: n.ExprSpan}
	case *ast.CallExpr:
		return &coreir.CallExpr{ExprSpan: n.ExprSpan, Callee: lowerExpr(n.Callee), Args: lowerExprs(n.Args)}
	case *ast.ConstructExpr:
		return &coreir.ConstructExpr{
			ExprSpan:   n.ExprSpan,
			TypeName:   n.TypeName,
			FieldNames: n.FieldNames,
			FieldVals:  lowerExprs(n.FieldVals),
		}
	case *ast.OkExpr:
		return &coreir.OkExpr{ExprSpan: n.ExprSpan, Value: lowerExpr(n.Value)}
	case *ast.ErrExpr:
		return &coreir.ErrExpr{ExprSpan: n.ExprSpan, Value: lowerExpr(n.Value)}
	case *ast.SomeExpr:
		return &coreir.SomeExpr{ExprSpan: n.ExprSpan, Value: lowerExpr(n.Value)}
	case *ast.NoneExpr:
		return &coreir.NoneExpr{ExprSpan: n.ExprSpan}
	case *ast.ListLiteralExpr:
		return lowerListLiteral(n)
	case *ast.LambdaExpr:
		return lowerLambda(n)
	case *ast.AwaitExpr:
		return &coreir.AwaitExpr{ExprSpan: n.ExprSpan, Task: n.Task}
	}
	return nil
}

func lowerExprs(es []ast.Expr) []coreir.Expr {
	if len(es) == 0 {
		return nil
	}
	out := make([]coreir.Expr, 0, len(es))
	for _, e := range es {
		out = append(out, lowerExpr(e))
	}
	return out
}

// lowerListLiteral desugars a surface "[e1, e2, ...]" into
// Construct("List", {"0": e1, "1": e2, ...}) (spec.md §4.4).
func lowerListLiteral(n *ast.ListLiteralExpr) coreir.Expr {
	names := make([]string, len(n.Elements))
	vals := make([]coreir.Expr, len(n.Elements))
	for i, el := range n.Elements {
		names[i] = strconv.Itoa(i)
		vals[i] = lowerExpr(el)
	}
	return &coreir.ConstructExpr{ExprSpan: n.ExprSpan, TypeName: "List", FieldNames: names, FieldVals: vals}
}

func lowerLambda(n *ast.LambdaExpr) coreir.Expr {
	params := make([]*coreir.Param, 0, len(n.Params))
	bound := map[string]bool{}
	for _, p := range n.Params {
		params = append(params, &coreir.Param{ParamSpan: p.ParamSpan, Name: p.Name, Type: lowerType(p.Type)})
		bound[p.Name] = true
	}
	body := lowerTopBlock(n.Body)
	return &coreir.LambdaExpr{
		ExprSpan:   n.ExprSpan,
		Params:     params,
		ReturnType: lowerType(n.ReturnType),
		Body:       body,
		Captures:   computeCaptures(bound, body),
	}
}
