package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/token"
)

func spanFrom(start, end token.Token) token.Span {
	s := start.Span()
	e := end.Span()
	s.End = e.End
	return s
}

func (p *Parser) parseIdentOrPrefixKeyword() ast.Expr {
	tok := p.curToken
	switch tok.Lexeme {
	case "not":
		p.nextToken()
		operand := p.parseExpression(PRODUCT)
		if operand == nil {
			return nil
		}
		return &ast.CallExpr{
			ExprSpan: spanFrom(tok, p.curToken),
			Callee:   &ast.NameExpr{ExprSpan: tok.Span(), Value: "not"},
			Args:     []ast.Expr{operand},
		}
	case "Ok":
		p.nextToken()
		v := p.parseExpression(CALL_PREC())
		if v == nil {
			return nil
		}
		return &ast.OkExpr{ExprSpan: spanFrom(tok, p.curToken), Value: v}
	case "Err":
		p.nextToken()
		v := p.parseExpression(CALL_PREC())
		if v == nil {
			return nil
		}
		return &ast.ErrExpr{ExprSpan: spanFrom(tok, p.curToken), Value: v}
	case "Some":
		p.nextToken()
		v := p.parseExpression(CALL_PREC())
		if v == nil {
			return nil
		}
		return &ast.SomeExpr{ExprSpan: spanFrom(tok, p.curToken), Value: v}
	case "None":
		return &ast.NoneExpr{ExprSpan: tok.Span()}
	case "Await":
		if !p.expectPeek(token.IDENT) && !p.expectPeek(token.TYPE_IDENT) {
			return nil
		}
		task := p.curToken.Lexeme
		return &ast.AwaitExpr{ExprSpan: spanFrom(tok, p.curToken), Task: task}
	}
	return &ast.NameExpr{ExprSpan: tok.Span(), Value: tok.Lexeme}
}

// CALL_PREC is the precedence a wrap keyword (Ok/Err/Some) parses its
// operand at: tight enough to bind a single primary-plus-postfix
// expression, not a whole binary chain ("Ok x + 1" is "Ok(x) + 1", not
// "Ok(x + 1)").
func CALL_PREC() int { return PRODUCT }

func (p *Parser) parseBoolExpr() ast.Expr {
	return &ast.BoolExpr{ExprSpan: p.curToken.Span(), Value: p.curToken.Lexeme == "true"}
}

func (p *Parser) parseNullExpr() ast.Expr {
	return &ast.NullExpr{ExprSpan: p.curToken.Span()}
}

func (p *Parser) parseIntExpr() ast.Expr {
	v, _ := strconv.ParseInt(p.curToken.Literal, 10, 64)
	return &ast.IntExpr{ExprSpan: p.curToken.Span(), Value: v}
}

func (p *Parser) parseLongExpr() ast.Expr {
	v, _ := strconv.ParseInt(p.curToken.Literal, 10, 64)
	return &ast.LongExpr{ExprSpan: p.curToken.Span(), Value: v}
}

func (p *Parser) parseDoubleExpr() ast.Expr {
	v, _ := strconv.ParseFloat(p.curToken.Literal, 64)
	return &ast.DoubleExpr{ExprSpan: p.curToken.Span(), Value: v}
}

func (p *Parser) parseStringExpr() ast.Expr {
	return &ast.StringExpr{ExprSpan: p.curToken.Span(), Value: p.curToken.Literal}
}

func (p *Parser) parseUnaryMinusExpr() ast.Expr {
	tok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PRODUCT)
	if operand == nil {
		return nil
	}
	return &ast.CallExpr{
		ExprSpan: spanFrom(tok, p.curToken),
		Callee:   &ast.NameExpr{ExprSpan: tok.Span(), Value: "-"},
		Args:     []ast.Expr{operand},
	}
}

func (p *Parser) parseBinaryExpr(left ast.Expr) ast.Expr {
	opTok := p.curToken
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.CallExpr{
		ExprSpan: spanFrom(opTok, p.curToken),
		Callee:   &ast.NameExpr{ExprSpan: opTok.Span(), Value: opTok.Lexeme},
		Args:     []ast.Expr{left, right},
	}
}

func (p *Parser) parseWordBinaryExpr(left ast.Expr) ast.Expr {
	opTok := p.curToken
	prec, _ := binaryPrecedence(opTok)
	p.nextToken()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.CallExpr{
		ExprSpan: spanFrom(opTok, p.curToken),
		Callee:   &ast.NameExpr{ExprSpan: opTok.Span(), Value: opTok.Lexeme},
		Args:     []ast.Expr{left, right},
	}
}

// parseListLiteralExpr parses "[e1, e2, ...]" (spec.md §4.3 "Wrap/sugar
// recognition"); lowering later rewrites it to Construct("List", ...).
func (p *Parser) parseListLiteralExpr() ast.Expr {
	startTok := p.curToken
	elems := []ast.Expr{}
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.ListLiteralExpr{ExprSpan: spanFrom(startTok, p.curToken), Elements: elems}
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	elems = append(elems, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		e := p.parseExpression(LOWEST)
		if e == nil {
			return nil
		}
		elems = append(elems, e)
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ListLiteralExpr{ExprSpan: spanFrom(startTok, p.curToken), Elements: elems}
}

// parseGroupedOrLambdaExpr disambiguates "(" by lookahead: a
// parenthesized parameter list followed by "produce" is a lambda
// literal; anything else is an ordinary grouped expression.
func (p *Parser) parseGroupedOrLambdaExpr() ast.Expr {
	if p.looksLikeLambdaHeader() {
		return p.parseLambdaExpr()
	}
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// looksLikeLambdaHeader scans forward from the current "(" to its
// matching ")" without consuming tokens, then checks whether "produce"
// immediately follows.
func (p *Parser) looksLikeLambdaHeader() bool {
	depth := 0
	closeIdx := -1
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Kind {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				closeIdx = i
			}
		}
		if closeIdx >= 0 {
			break
		}
	}
	if closeIdx < 0 || closeIdx+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[closeIdx+1].Lexeme == "produce"
}

func (p *Parser) parseLambdaExpr() ast.Expr {
	startTok := p.curToken
	params, ok := p.parseParamList()
	if !ok {
		return nil
	}
	if !p.expectPeekKeyword("produce") {
		return nil
	}
	p.nextToken()
	retType := p.parseType()
	if retType == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectPeek(token.NEWLINE) {
		return nil
	}
	body := p.parseIndentedBlock()
	if body == nil {
		return nil
	}
	return &ast.LambdaExpr{
		ExprSpan:   spanFrom(startTok, p.curToken),
		Params:     params,
		ReturnType: retType,
		Body:       body,
	}
}

// parsePostfix applies any mixture of ".member", "(args)", and "with
// args" to root, left to right (spec.md §4.3 "Postfix suffix
// handling"). A member chain rooted at a capitalized name becomes one
// qualified name: a call when arguments follow, and a plain NameExpr
// when none do. Any other chain becomes nested calls, each member called
// with the previous result as its first argument; arguments that follow
// go to the last member. A "." not followed by a name is left for the
// caller as the statement terminator.
func (p *Parser) parsePostfix(root ast.Expr) ast.Expr {
	var members []string
	for p.peekTokenIs(token.DOT) && p.pos+2 < len(p.tokens) &&
		(p.tokens[p.pos+2].Kind == token.IDENT || p.tokens[p.pos+2].Kind == token.TYPE_IDENT) {
		p.nextToken()
		if !p.expectPeekName() {
			return nil
		}
		members = append(members, p.curToken.Lexeme)
	}

	var args []ast.Expr
	hasCall := false
	if p.peekTokenIs(token.LPAREN) {
		hasCall = true
		p.nextToken()
		var ok bool
		args, ok = p.parseCallArgs()
		if !ok {
			return nil
		}
	}

	result := p.buildPostfixChain(root, members, args, hasCall)

	for p.peekIs("with") {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(AND_PREC)
		if arg == nil {
			return nil
		}
		call, ok := result.(*ast.CallExpr)
		if !ok {
			call = &ast.CallExpr{ExprSpan: result.Span(), Callee: result, Args: nil}
		}
		call.Args = append(call.Args, arg)
		result = call
		for p.peekIs("and") {
			p.nextToken()
			p.nextToken()
			more := p.parseExpression(AND_PREC)
			if more == nil {
				return nil
			}
			call.Args = append(call.Args, more)
		}
	}
	return result
}

func (p *Parser) buildPostfixChain(root ast.Expr, members []string, args []ast.Expr, hasCall bool) ast.Expr {
	if len(members) == 0 {
		if hasCall {
			return &ast.CallExpr{ExprSpan: root.Span(), Callee: root, Args: args}
		}
		return root
	}

	rootName, rootIsName := root.(*ast.NameExpr)
	if rootIsName && isUpperFirst(rootName.Value) {
		qualified := rootName.Value + "." + strings.Join(members, ".")
		callee := &ast.NameExpr{ExprSpan: root.Span(), Value: qualified}
		if hasCall {
			return &ast.CallExpr{ExprSpan: root.Span(), Callee: callee, Args: args}
		}
		return callee
	}

	cur := root
	for i, m := range members {
		callArgs := []ast.Expr{cur}
		if i == len(members)-1 && hasCall {
			callArgs = append(callArgs, args...)
		}
		cur = &ast.CallExpr{ExprSpan: cur.Span(), Callee: &ast.NameExpr{Value: m}, Args: callArgs}
	}
	return cur
}

func (p *Parser) parseCallArgs() ([]ast.Expr, bool) {
	args := []ast.Expr{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil, false
	}
	args = append(args, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		e := p.parseExpression(LOWEST)
		if e == nil {
			return nil, false
		}
		args = append(args, e)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return args, true
}

func isUpperFirst(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsUpper([]rune(s)[0])
}
