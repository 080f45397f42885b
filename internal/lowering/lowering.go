// Package lowering translates a parsed internal/ast.Module into the
// internal/coreir.Module spec.md §4.4 describes. Grounded on
// internal/ast's own node shapes — since the transform produces a
// parallel tree rather than threading state through a double-dispatch
// Visitor, it is written as a family of plain recursive lowerX
// functions keyed by Go type switches, the shape funvibe-funxy itself
// reaches for in its own interp/eval.go tree-walk (a type-switch
// dispatch table, not an Accept(Visitor) chain) whenever a pass needs
// to return a value rather than mutate shared state.
package lowering

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/coreir"
)

// Lower rewrites an entire parsed module into its Core IR.
func Lower(mod *ast.Module) *coreir.Module {
	if mod == nil {
		return nil
	}
	out := &coreir.Module{
		ModuleSpan:  mod.ModuleSpan,
		Name:        mod.Name,
		TypeAliases: map[string]*coreir.TypeAliasInfo{},
	}
	for _, d := range mod.Decls {
		if alias, ok := d.(*ast.TypeAliasDecl); ok {
			out.TypeAliases[alias.Name] = &coreir.TypeAliasInfo{
				Name:       alias.Name,
				TypeParams: alias.TypeParams,
				Type:       lowerType(alias.Type),
			}
			continue
		}
		if lowered := lowerDecl(d); lowered != nil {
			out.Decls = append(out.Decls, lowered)
		}
	}
	return out
}

func lowerDecl(d ast.Decl) coreir.Decl {
	switch n := d.(type) {
	case *ast.ImportDecl:
		return &coreir.ImportDecl{DeclSpan: n.DeclSpan, Path: n.Path, Alias: n.Alias}
	case *ast.DataDecl:
		return &coreir.DataDecl{
			DeclSpan:   n.DeclSpan,
			Name:       n.Name,
			TypeParams: n.TypeParams,
			Fields:     lowerFields(n.Fields),
		}
	case *ast.EnumDecl:
		variants := make([]*coreir.EnumVariant, 0, len(n.Variants))
		for _, ev := range n.Variants {
			variants = append(variants, &coreir.EnumVariant{
				VariantSpan: ev.VariantSpan,
				Name:        ev.Name,
				Fields:      lowerFields(ev.Fields),
			})
		}
		return &coreir.EnumDecl{DeclSpan: n.DeclSpan, Name: n.Name, TypeParams: n.TypeParams, Variants: variants}
	case *ast.FuncDecl:
		return lowerFuncDecl(n)
	}
	return nil
}

func lowerFields(fields []*ast.Field) []*coreir.Field {
	out := make([]*coreir.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, &coreir.Field{
			FieldSpan: f.FieldSpan,
			Name:      f.Name,
			Type:      lowerAnnotatedType(f.Type, f.Annotations),
		})
	}
	return out
}

func lowerFuncDecl(n *ast.FuncDecl) *coreir.FuncDecl {
	params := make([]*coreir.Param, 0, len(n.Params))
	level := coreir.PiiNone
	categorySet := map[string]bool{}

	for _, p := range n.Params {
		lt := lowerAnnotatedType(p.Type, p.Annotations)
		params = append(params, &coreir.Param{ParamSpan: p.ParamSpan, Name: p.Name, Type: lt})
		accumulatePii(lt, &level, categorySet)
	}
	retType := lowerAnnotatedType(n.ReturnType, n.Annotations)
	accumulatePii(retType, &level, categorySet)

	return &coreir.FuncDecl{
		DeclSpan:      n.DeclSpan,
		Name:          n.Name,
		TypeParams:    n.TypeParams,
		Params:        params,
		ReturnType:    retType,
		Body:          lowerTopBlock(n.Body),
		Effect:        n.Effect,
		Capabilities:  n.Capabilities,
		PiiLevel:      level,
		PiiCategories: sortedKeys(categorySet),
	}
}

// accumulatePii folds a lowered Type's own PII metadata (if it is a
// PiiType) into the running aggregate using the L1<L2<L3 lattice for
// the level and set union for categories (spec.md §4.4).
func accumulatePii(t coreir.Type, level *coreir.PiiLevel, categories map[string]bool) {
	pii, ok := t.(*coreir.PiiType)
	if !ok {
		return
	}
	if pii.Level > *level {
		*level = pii.Level
	}
	for _, c := range pii.Categories {
		categories[c] = true
	}
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
