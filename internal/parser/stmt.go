package parser

import (
	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/token"
)

// parseIndentedBlock parses an indented block. By convention every
// caller has just consumed the header's trailing NEWLINE, so curToken
// is NEWLINE and the next real token must be INDENT. Statements are
// collected until the matching DEDENT; curToken is left on that DEDENT
// so the caller's own enclosing loop can simply call nextToken() to
// move past it.
func (p *Parser) parseIndentedBlock() *ast.Block {
	if !p.expectPeek(token.INDENT) {
		return nil
	}
	startTok := p.curToken
	var stmts []ast.Stmt
	p.nextToken()
	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) && !p.fatal {
		s := p.parseStmt()
		if s == nil {
			return nil
		}
		stmts = append(stmts, s)
		p.nextToken()
	}
	if !p.curTokenIs(token.DEDENT) {
		p.errorAtCur("expected dedent to close block")
		return nil
	}
	return &ast.Block{BlockSpan: spanFrom(startTok, p.curToken), Statements: stmts}
}

// parseStmt dispatches on the leading keyword's lexeme (spec.md §4.3:
// structural keywords carry no dedicated token.Kind, so the parser
// recognizes them by Lexeme). On return curToken is the statement's
// own terminating token: NEWLINE for a simple statement, or the DEDENT
// of the last nested block a compound statement parsed.
func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.curIs("Let"):
		return p.parseLetStmt()
	case p.curIs("Set"):
		return p.parseSetStmt()
	case p.curIs("Return"):
		return p.parseReturnStmt()
	case p.curIs("If"):
		return p.parseIfStmt()
	case p.curIs("Match"):
		return p.parseMatchStmt()
	case p.curIs("Start"):
		return p.parseStartStmt()
	case p.curIs("Wait"):
		return p.parseWaitStmt()
	case p.curIs("Workflow"):
		return p.parseWorkflowStmt()
	default:
		p.errorAtCur("expected a statement, got " + q(p.curToken.Lexeme))
		return nil
	}
}

// parseLetStmt parses "Let name [: Type] be expr."
func (p *Parser) parseLetStmt() ast.Stmt {
	startTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	var typ ast.Type
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		typ = p.parseType()
		if typ == nil {
			return nil
		}
	}
	if !p.expectPeekKeyword("be") {
		return nil
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	// A lambda value ends on its own block's DEDENT, with no trailing period.
	if _, ok := val.(*ast.LambdaExpr); ok && p.curTokenIs(token.DEDENT) {
		return &ast.LetStmt{StmtSpan: spanFrom(startTok, p.curToken), Name: name, Type: typ, Value: val}
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.LetStmt{StmtSpan: spanFrom(startTok, p.curToken), Name: name, Type: typ, Value: val}
}

// parseSetStmt parses "Set name to expr."
func (p *Parser) parseSetStmt() ast.Stmt {
	startTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeekKeyword("to") {
		return nil
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.SetStmt{StmtSpan: spanFrom(startTok, p.curToken), Name: name, Value: val}
}

// parseReturnStmt parses "Return expr."
func (p *Parser) parseReturnStmt() ast.Stmt {
	startTok := p.curToken
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.ReturnStmt{StmtSpan: spanFrom(startTok, p.curToken), Value: val}
}

// parseIfStmt parses "If cond then" NEWLINE block ["Else" ["If" ...] |
// NEWLINE block]. "Else If" chains recursively into a nested IfStmt.
func (p *Parser) parseIfStmt() ast.Stmt {
	startTok := p.curToken
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeekKeyword("then") || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	thenBlock := p.parseIndentedBlock()
	if thenBlock == nil {
		return nil
	}
	stmt := &ast.IfStmt{Cond: cond, Then: thenBlock}

	if p.peekIs("Else") {
		p.nextToken()
		if p.peekIs("If") {
			p.nextToken()
			nested := p.parseIfStmt()
			if nested == nil {
				return nil
			}
			stmt.ElseIsIf = true
			stmt.Else = &ast.Block{BlockSpan: nested.Span(), Statements: []ast.Stmt{nested}}
			stmt.StmtSpan = spanFrom(startTok, p.curToken)
			return stmt
		}
		if !p.expectPeek(token.NEWLINE) {
			return nil
		}
		elseBlock := p.parseIndentedBlock()
		if elseBlock == nil {
			return nil
		}
		stmt.Else = elseBlock
	}
	stmt.StmtSpan = spanFrom(startTok, p.curToken)
	return stmt
}

// parseMatchStmt parses "Match expr:" NEWLINE INDENT ("When" pattern
// ":" NEWLINE block)* DEDENT.
func (p *Parser) parseMatchStmt() ast.Stmt {
	startTok := p.curToken
	p.nextToken()
	subject := p.parseExpression(LOWEST)
	if subject == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) || !p.expectPeek(token.INDENT) {
		return nil
	}
	var arms []*ast.MatchArm
	p.nextToken()
	for !p.curTokenIs(token.DEDENT) && !p.fatal && !p.curTokenIs(token.EOF) {
		if !p.curIs("When") {
			p.errorAtCur("expected \"When\", got " + q(p.curToken.Lexeme))
			return nil
		}
		armStart := p.curToken
		p.nextToken()
		patt := p.parsePattern()
		if patt == nil {
			return nil
		}
		if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) {
			return nil
		}
		body := p.parseIndentedBlock()
		if body == nil {
			return nil
		}
		arms = append(arms, &ast.MatchArm{ArmSpan: spanFrom(armStart, p.curToken), Pattern: patt, Body: body})
		p.nextToken()
	}
	if !p.curTokenIs(token.DEDENT) {
		p.errorAtCur("expected dedent to close match")
		return nil
	}
	return &ast.MatchStmt{StmtSpan: spanFrom(startTok, p.curToken), Subject: subject, Arms: arms}
}

// parseStartStmt parses "Start name as expr."
func (p *Parser) parseStartStmt() ast.Stmt {
	startTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	task := p.curToken.Lexeme
	if !p.expectPeekKeyword("as") {
		return nil
	}
	p.nextToken()
	call := p.parseExpression(LOWEST)
	if call == nil {
		return nil
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.StartStmt{StmtSpan: spanFrom(startTok, p.curToken), Task: task, Call: call}
}

// parseWaitStmt parses "Wait task [as name]."
func (p *Parser) parseWaitStmt() ast.Stmt {
	startTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	task := p.curToken.Lexeme
	name := ""
	if p.peekIs("as") {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name = p.curToken.Lexeme
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.WaitStmt{StmtSpan: spanFrom(startTok, p.curToken), Task: task, Name: name}
}

// parseWorkflowStmt parses "Workflow name:" NEWLINE INDENT (Step)* DEDENT.
func (p *Parser) parseWorkflowStmt() ast.Stmt {
	startTok := p.curToken
	if !p.expectPeekName() {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) || !p.expectPeek(token.INDENT) {
		return nil
	}
	var steps []*ast.Step
	p.nextToken()
	for !p.curTokenIs(token.DEDENT) && !p.fatal && !p.curTokenIs(token.EOF) {
		if !p.curIs("Step") {
			p.errorAtCur("expected \"Step\", got " + q(p.curToken.Lexeme))
			return nil
		}
		st := p.parseStep()
		if st == nil {
			return nil
		}
		steps = append(steps, st)
		p.nextToken()
	}
	if !p.curTokenIs(token.DEDENT) {
		p.errorAtCur("expected dedent to close workflow")
		return nil
	}
	return &ast.WorkflowStmt{StmtSpan: spanFrom(startTok, p.curToken), Name: name, Steps: steps}
}

// parseStep parses "Step name [depends on a and b]:" NEWLINE INDENT
// statement* ["Compensate:" NEWLINE block] DEDENT.
func (p *Parser) parseStep() *ast.Step {
	startTok := p.curToken
	if !p.expectPeekName() {
		return nil
	}
	name := p.curToken.Lexeme

	var deps []string
	if p.peekIs("depends") {
		p.nextToken()
		if !p.expectPeekKeyword("on") {
			return nil
		}
		if !p.expectPeekName() {
			return nil
		}
		deps = append(deps, p.curToken.Lexeme)
		for p.peekIs("and") {
			p.nextToken()
			if !p.expectPeekName() {
				return nil
			}
			deps = append(deps, p.curToken.Lexeme)
		}
	}

	if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) || !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()
	var stmts []ast.Stmt
	for !p.curTokenIs(token.DEDENT) && !p.curIs("Compensate") && !p.fatal && !p.curTokenIs(token.EOF) {
		s := p.parseStmt()
		if s == nil {
			return nil
		}
		stmts = append(stmts, s)
		p.nextToken()
	}
	body := &ast.Block{Statements: stmts}

	var compensate ast.Stmt
	if p.curIs("Compensate") {
		if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) {
			return nil
		}
		cBlock := p.parseIndentedBlock()
		if cBlock == nil {
			return nil
		}
		compensate = cBlock
		p.nextToken()
	}

	if !p.curTokenIs(token.DEDENT) {
		p.errorAtCur("expected dedent to close step")
		return nil
	}
	return &ast.Step{StepSpan: spanFrom(startTok, p.curToken), Name: name, Body: body, Compensate: compensate, DependsOn: deps}
}
