package coreir

// Visitor dispatches over every concrete Core IR node. Its shape follows
// internal/ast/visitor.go, with PiiType/Scope methods added and no
// methods for TypeAliasDecl or ListLiteralExpr.
type Visitor interface {
	VisitModule(n *Module)

	VisitImportDecl(n *ImportDecl)
	VisitDataDecl(n *DataDecl)
	VisitEnumDecl(n *EnumDecl)
	VisitFuncDecl(n *FuncDecl)

	VisitBlock(n *Block)
	VisitScope(n *Scope)
	VisitLetStmt(n *LetStmt)
	VisitSetStmt(n *SetStmt)
	VisitReturnStmt(n *ReturnStmt)
	VisitIfStmt(n *IfStmt)
	VisitMatchStmt(n *MatchStmt)
	VisitStartStmt(n *StartStmt)
	VisitWaitStmt(n *WaitStmt)
	VisitWorkflowStmt(n *WorkflowStmt)

	VisitNameExpr(n *NameExpr)
	VisitBoolExpr(n *BoolExpr)
	VisitIntExpr(n *IntExpr)
	VisitLongExpr(n *LongExpr)
	VisitDoubleExpr(n *DoubleExpr)
	VisitStringExpr(n *StringExpr)
	VisitNullExpr(n *NullExpr)
	VisitCallExpr(n *CallExpr)
	VisitConstructExpr(n *ConstructExpr)
	VisitOkExpr(n *OkExpr)
	VisitErrExpr(n *ErrExpr)
	VisitSomeExpr(n *SomeExpr)
	VisitNoneExpr(n *NoneExpr)
	VisitLambdaExpr(n *LambdaExpr)
	VisitAwaitExpr(n *AwaitExpr)

	VisitTypeName(n *TypeName)
	VisitTypeVar(n *TypeVar)
	VisitTypeApp(n *TypeApp)
	VisitResultType(n *ResultType)
	VisitMaybeType(n *MaybeType)
	VisitOptionType(n *OptionType)
	VisitListType(n *ListType)
	VisitMapType(n *MapType)
	VisitFuncType(n *FuncType)
	VisitPiiType(n *PiiType)

	VisitPatternNull(n *PatternNull)
	VisitPatternCtor(n *PatternCtor)
	VisitPatternName(n *PatternName)
	VisitPatternInt(n *PatternInt)
}

// BaseVisitor is a no-op Visitor embeddable by callers that only care
// about a handful of node kinds (internal/ast/visitor.go's pattern).
type BaseVisitor struct{}

func (BaseVisitor) VisitModule(n *Module)         {}
func (BaseVisitor) VisitImportDecl(n *ImportDecl) {}
func (BaseVisitor) VisitDataDecl(n *DataDecl)     {}
func (BaseVisitor) VisitEnumDecl(n *EnumDecl)     {}
func (BaseVisitor) VisitFuncDecl(n *FuncDecl)     {}

func (BaseVisitor) VisitBlock(n *Block)             {}
func (BaseVisitor) VisitScope(n *Scope)             {}
func (BaseVisitor) VisitLetStmt(n *LetStmt)         {}
func (BaseVisitor) VisitSetStmt(n *SetStmt)         {}
func (BaseVisitor) VisitReturnStmt(n *ReturnStmt)   {}
func (BaseVisitor) VisitIfStmt(n *IfStmt)           {}
func (BaseVisitor) VisitMatchStmt(n *MatchStmt)     {}
func (BaseVisitor) VisitStartStmt(n *StartStmt)     {}
func (BaseVisitor) VisitWaitStmt(n *WaitStmt)       {}
func (BaseVisitor) VisitWorkflowStmt(n *WorkflowStmt) {}

func (BaseVisitor) VisitNameExpr(n *NameExpr)         {}
func (BaseVisitor) VisitBoolExpr(n *BoolExpr)         {}
func (BaseVisitor) VisitIntExpr(n *IntExpr)           {}
func (BaseVisitor) VisitLongExpr(n *LongExpr)         {}
func (BaseVisitor) VisitDoubleExpr(n *DoubleExpr)     {}
func (BaseVisitor) VisitStringExpr(n *StringExpr)     {}
func (BaseVisitor) VisitNullExpr(n *NullExpr)         {}
func (BaseVisitor) VisitCallExpr(n *CallExpr)         {}
func (BaseVisitor) VisitConstructExpr(n *ConstructExpr) {}
func (BaseVisitor) VisitOkExpr(n *OkExpr)             {}
func (BaseVisitor) VisitErrExpr(n *ErrExpr)           {}
func (BaseVisitor) VisitSomeExpr(n *SomeExpr)         {}
func (BaseVisitor) VisitNoneExpr(n *NoneExpr)         {}
func (BaseVisitor) VisitLambdaExpr(n *LambdaExpr)     {}
func (BaseVisitor) VisitAwaitExpr(n *AwaitExpr)       {}

func (BaseVisitor) VisitTypeName(n *TypeName)     {}
func (BaseVisitor) VisitTypeVar(n *TypeVar)       {}
func (BaseVisitor) VisitTypeApp(n *TypeApp)       {}
func (BaseVisitor) VisitResultType(n *ResultType) {}
func (BaseVisitor) VisitMaybeType(n *MaybeType)   {}
func (BaseVisitor) VisitOptionType(n *OptionType) {}
func (BaseVisitor) VisitListType(n *ListType)     {}
func (BaseVisitor) VisitMapType(n *MapType)       {}
func (BaseVisitor) VisitFuncType(n *FuncType)     {}
func (BaseVisitor) VisitPiiType(n *PiiType)       {}

func (BaseVisitor) VisitPatternNull(n *PatternNull) {}
func (BaseVisitor) VisitPatternCtor(n *PatternCtor) {}
func (BaseVisitor) VisitPatternName(n *PatternName) {}
func (BaseVisitor) VisitPatternInt(n *PatternInt)   {}
