package lowering

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/coreir"
)

func lowerType(t ast.Type) coreir.Type {
	switch n := t.(type) {
	case nil:
		return nil
	case *ast.TypeName:
		return &coreir.TypeName{TypeSpan: n.TypeSpan, Name: n.Name}
	case *ast.TypeVar:
		return &coreir.TypeVar{TypeSpan: n.TypeSpan, Name: n.Name}
	case *ast.TypeApp:
		return &coreir.TypeApp{TypeSpan: n.TypeSpan, Name: n.Name, Args: lowerTypes(n.Args)}
	case *ast.ResultType:
		return &coreir.ResultType{TypeSpan: n.TypeSpan, Ok: lowerType(n.Ok), Err: lowerType(n.Err)}
	case *ast.MaybeType:
		return &coreir.MaybeType{TypeSpan: n.TypeSpan, Elem: lowerType(n.Elem)}
	case *ast.OptionType:
		return &coreir.OptionType{TypeSpan: n.TypeSpan, Elem: lowerType(n.Elem)}
	case *ast.ListType:
		return &coreir.ListType{TypeSpan: n.TypeSpan, Elem: lowerType(n.Elem)}
	case *ast.MapType:
		return &coreir.MapType{TypeSpan: n.TypeSpan, Key: lowerType(n.Key), Value: lowerType(n.Value)}
	case *ast.FuncType:
		return &coreir.FuncType{TypeSpan: n.TypeSpan, Params: lowerTypes(n.Params), ReturnType: lowerType(n.ReturnType)}
	}
	return nil
}

func lowerTypes(ts []ast.Type) []coreir.Type {
	if len(ts) == 0 {
		return nil
	}
	out := make([]coreir.Type, 0, len(ts))
	for _, t := range ts {
		out = append(out, lowerType(t))
	}
	return out
}

// lowerAnnotatedType lowers t and, if anns carries a "pii" annotation,
// wraps the result in a PiiType (spec.md §4.4 "Type annotated with
// @pii(level=Lx, category=c) is wrapped in PiiType"). A Param/Field/
// return-type site with no pii annotation lowers to a bare Type, same
// as the AST shape.
func lowerAnnotatedType(t ast.Type, anns []*ast.Annotation) coreir.Type {
	base := lowerType(t)
	if base == nil {
		return nil
	}
	for _, ann := range anns {
		if ann.Name != "pii" {
			continue
		}
		level := coreir.PiiL1
		if v, ok := ann.Get("level"); ok {
			if name, ok := v.(*ast.NameExpr); ok {
				level = coreir.ParsePiiLevel(name.Value)
			}
		}
		var categories []string
		if v, ok := ann.Get("category"); ok {
			if s, ok := v.(*ast.StringExpr); ok {
				categories = []string{s.Value}
			}
		}
		return &coreir.PiiType{TypeSpan: base.Span(), Base: base, Level: level, Categories: categories}
	}
	return base
}
