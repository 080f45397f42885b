package ast

import "github.com/cnlforge/corelang/internal/token"

// Type is the sealed type-expression family: TypeName | TypeVar |
// TypeApp | Result | Maybe | Option | List | Map | FuncType (spec.md
// §3). Annotations (e.g. @pii(...)) attach to the declaration site
// (Param/Field), not the Type node itself, mirroring how the teacher
// keeps type nodes free of metadata that only matters to one caller.
type Type interface {
	Node
	typeNode()
}

// TypeName is a simple named type: Int, Text, Quote, or a type alias
// name awaiting resolution.
type TypeName struct {
	TypeSpan token.Span
	Name     string
}

func (t *TypeName) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *TypeName) Accept(v Visitor) { v.VisitTypeName(t) }
func (t *TypeName) typeNode()        {}

// TypeVar is an inferred or explicit generic type parameter, e.g. the
// "T" in "of T and U" or a single-uppercase-letter name the builder
// promoted (spec.md §4.3 "Inferred type parameters").
type TypeVar struct {
	TypeSpan token.Span
	Name     string
}

func (t *TypeVar) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *TypeVar) Accept(v Visitor) { v.VisitTypeVar(t) }
func (t *TypeVar) typeNode()        {}

// TypeApp applies type arguments to a named constructor, e.g.
// Pair<T, U> or a data type with explicit type parameters.
type TypeApp struct {
	TypeSpan token.Span
	Name     string
	Args     []Type
}

func (t *TypeApp) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *TypeApp) Accept(v Visitor) { v.VisitTypeApp(t) }
func (t *TypeApp) typeNode()        {}

// ResultType is Result<Ok, Err>.
type ResultType struct {
	TypeSpan token.Span
	Ok       Type
	Err      Type
}

func (t *ResultType) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *ResultType) Accept(v Visitor) { v.VisitResultType(t) }
func (t *ResultType) typeNode()        {}

// MaybeType is Maybe<T>, a possibly-null value.
type MaybeType struct {
	TypeSpan token.Span
	Elem     Type
}

func (t *MaybeType) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *MaybeType) Accept(v Visitor) { v.VisitMaybeType(t) }
func (t *MaybeType) typeNode()        {}

// OptionType is Option<T>, the Some/None wrapper.
type OptionType struct {
	TypeSpan token.Span
	Elem     Type
}

func (t *OptionType) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *OptionType) Accept(v Visitor) { v.VisitOptionType(t) }
func (t *OptionType) typeNode()        {}

// ListType is List<T>.
type ListType struct {
	TypeSpan token.Span
	Elem     Type
}

func (t *ListType) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *ListType) Accept(v Visitor) { v.VisitListType(t) }
func (t *ListType) typeNode()        {}

// MapType is Map<K, V>.
type MapType struct {
	TypeSpan token.Span
	Key      Type
	Value    Type
}

func (t *MapType) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *MapType) Accept(v Visitor) { v.VisitMapType(t) }
func (t *MapType) typeNode()        {}

// FuncType is a function signature type, used for lambda expression
// typing (spec.md §4.6 "Lambda ... Return a FuncType built from the
// parameters and declared return").
type FuncType struct {
	TypeSpan   token.Span
	Params     []Type
	ReturnType Type
}

func (t *FuncType) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *FuncType) Accept(v Visitor) { v.VisitFuncType(t) }
func (t *FuncType) typeNode()        {}
