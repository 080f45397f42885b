package coreir

import "github.com/cnlforge/corelang/internal/token"

// Type is the sealed lowered type family: TypeName | TypeVar | TypeApp
// | Result | Maybe | Option | List | Map | FuncType | PiiType. PiiType
// is the one addition over internal/ast's Type family: a surface
// "@pii(level, category)" annotation is folded into a wrapper around
// its base type during lowering (spec.md §3 Core IR).
type Type interface {
	Node
	typeNode()
}

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

// PiiLevel is the three-point sensitivity lattice spec.md §4.8 fixes:
// L1 < L2 < L3.
type PiiLevel int

const (
	PiiNone PiiLevel = iota
	PiiL1
	PiiL2
	PiiL3
)

func (l PiiLevel) String() string {
	switch l {
	case PiiL1:
		return "L1"
	case PiiL2:
		return "L2"
	case PiiL3:
		return "L3"
	default:
		return "none"
	}
}

// ParsePiiLevel maps a surface annotation value ("L1"/"L2"/"L3") to its
// lattice point; unrecognized text lowers to PiiNone.
func ParsePiiLevel(s string) PiiLevel {
	switch s {
	case "L1":
		return PiiL1
	case "L2":
		return PiiL2
	case "L3":
		return PiiL3
	default:
		return PiiNone
	}
}

// PiiType wraps a base type with the sensitivity/category metadata a
// surface "@pii(level=Lx, category=c)" annotation carried (spec.md §3,
// §4.4). Multiple categories may accumulate once aggregated onto a
// Func (set union, spec.md §4.4).
type PiiType struct {
	TypeSpan   token.Span
	Base       Type
	Level      PiiLevel
	Categories []string
}

func (t *PiiType) Span() token.Span {
	if t == nil {
		return token.Span{}
	}
	return t.TypeSpan
}
func (t *PiiType) Accept(v Visitor) { v.VisitPiiType(t) }
func (t *PiiType) typeNode()        {}
