package coreir

import "github.com/cnlforge/corelang/internal/token"

// Decl is the sealed lowered declaration family: Import | Data | Enum |
// Func. TypeAliasDecl is deliberately absent — its definition survives
// only in Module.TypeAliases (spec.md §3).
type Decl interface {
	Node
	declNode()
}

type ImportDecl struct {
	DeclSpan token.Span
	Path     string
	Alias    string
}

func (d *ImportDecl) Span() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.DeclSpan
}
func (d *ImportDecl) Accept(v Visitor) { v.VisitImportDecl(d) }
func (d *ImportDecl) declNode()        {}

type DataDecl struct {
	DeclSpan   token.Span
	Name       string
	TypeParams []string
	Fields     []*Field
}

func (d *DataDecl) Span() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.DeclSpan
}
func (d *DataDecl) Accept(v Visitor) { v.VisitDataDecl(d) }
func (d *DataDecl) declNode()        {}

type EnumVariant struct {
	VariantSpan token.Span
	Name        string
	Fields      []*Field
}

func (v *EnumVariant) Span() token.Span {
	if v == nil {
		return token.Span{}
	}
	return v.VariantSpan
}

type EnumDecl struct {
	DeclSpan   token.Span
	Name       string
	TypeParams []string
	Variants   []*EnumVariant
}

func (d *EnumDecl) Span() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.DeclSpan
}
func (d *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(d) }
func (d *EnumDecl) declNode()        {}

// FuncDecl carries PiiLevel/PiiCategories aggregated during lowering
// from every @pii-annotated parameter and return type reachable from
// its signature (spec.md §4.4: "each Func carries aggregated piiLevel
// and piiCategories computed from its signature"). Effect/Capabilities
// are the declared clause, carried through unchanged from the AST; the
// effects/capability checker (internal/effects) is what compares them
// against what the body actually uses.
type FuncDecl struct {
	DeclSpan      token.Span
	Name          string
	TypeParams    []string
	Params        []*Param
	ReturnType    Type
	Body          *Block
	Effect        string
	Capabilities  []string
	PiiLevel      PiiLevel
	PiiCategories []string
}

func (d *FuncDecl) Span() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.DeclSpan
}
func (d *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(d) }
func (d *FuncDecl) declNode()        {}
