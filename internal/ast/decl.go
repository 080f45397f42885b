package ast

import "github.com/cnlforge/corelang/internal/token"

// Decl is the sealed top-level declaration family: Import | Data |
// Enum | TypeAlias | Func (spec.md §3).
type Decl interface {
	Node
	declNode()
}

// ImportDecl brings another module's exports into scope. Cross-file
// resolution itself is out of scope (spec.md §1 Non-goals); the AST
// only records what was written.
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

// DataDecl declares a product type: "Quote has amount: Float and id: Text."
type DataDecl struct {
	DeclSpan    token.Span
	Name        string
	TypeParams  []string
	Fields      []*Field
	Annotations []*Annotation
}

func (d *DataDecl) Span() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.DeclSpan
}
func (d *DataDecl) Accept(v Visitor) { v.VisitDataDecl(d) }
func (d *DataDecl) declNode()        {}

// EnumVariant is one constructor of an EnumDecl. Fields is empty for a
// bare tag variant.
type EnumVariant struct {
	VariantSpan token.Span
	Name        string
	Fields      []*Field
}

func (e *EnumVariant) Span() token.Span {
	if e == nil {
		return token.Span{}
	}
	return e.VariantSpan
}

// EnumDecl declares a sum type.
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

// TypeAliasDecl binds a name to an existing type expression. Dropped
// during lowering (spec.md §3 Core IR: "TypeAlias is dropped, resolved
// in-line on demand") but kept on the AST for diagnostics that point
// at the alias site itself.
type TypeAliasDecl struct {
	DeclSpan   token.Span
	Name       string
	TypeParams []string
	Type       Type
}

func (d *TypeAliasDecl) Span() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.DeclSpan
}
func (d *TypeAliasDecl) Accept(v Visitor) { v.VisitTypeAliasDecl(d) }
func (d *TypeAliasDecl) declNode()        {}

// FuncDecl declares a function: "To greet, produce Text: ...". Params
// may be builder-inferred (spec.md §4.3 "Implicit types"); TypeParams
// may likewise be builder-inferred when no explicit "of T and U"
// clause is present. Effect and Capabilities reflect an explicit "It
// performs io [Http, Sql]" clause, if any.
type FuncDecl struct {
	DeclSpan     token.Span
	Name         string
	TypeParams   []string
	Params       []*Param
	ReturnType   Type
	Body         *Block
	Effect       string   // "", "cpu", "io", or "async"; "" means undeclared
	Capabilities []string // explicit capability list, if declared
	Annotations  []*Annotation
}

func (d *FuncDecl) Span() token.Span {
	if d == nil {
		return token.Span{}
	}
	return d.DeclSpan
}
func (d *FuncDecl) Accept(v Visitor) { v.VisitFuncDecl(d) }
func (d *FuncDecl) declNode()        {}
