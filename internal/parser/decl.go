package parser

import (
	"fmt"

	"github.com/cnlforge/corelang/internal/ast"
	"github.com/cnlforge/corelang/internal/token"
)

// expectPeekName advances past peekToken if it is an identifier of
// either case (IDENT or TYPE_IDENT) — used for any name position
// (task, step, parameter, field, type-parameter) where either casing
// is grammatically legal.
func (p *Parser) expectPeekName() bool {
	if p.peekTokenIs(token.IDENT) || p.peekTokenIs(token.TYPE_IDENT) {
		p.nextToken()
		return true
	}
	p.errorAtPeek(fmt.Sprintf("expected a name, got %q", p.peekToken.Lexeme))
	return false
}

// parseModule is the grammar's entry point: an optional "this module
// is <Name>." header (spec.md §8 scenario S1's own canonical form)
// followed by a sequence of top-level declarations.
func (p *Parser) parseModule() *ast.Module {
	mod := &ast.Module{}
	startTok := p.curToken

	if p.curIs("this") && p.peekIs("module") {
		p.nextToken() // "module"
		if !p.expectPeekKeyword("is") {
			return mod
		}
		if !p.expectPeekName() {
			return mod
		}
		mod.Name = p.curToken.Lexeme
		if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
			return mod
		}
		p.nextToken()
	}

	for !p.curTokenIs(token.EOF) && !p.fatal {
		d := p.parseDecl()
		if d == nil {
			break
		}
		mod.Decls = append(mod.Decls, d)
		p.nextToken()
	}
	mod.ModuleSpan = spanFrom(startTok, p.curToken)
	return mod
}

func (p *Parser) parseDecl() ast.Decl {
	switch {
	case p.curIs("Import"):
		return p.parseImportDecl()
	case p.curIs("Data"):
		return p.parseDataDecl()
	case p.curIs("Enum"):
		return p.parseEnumDecl()
	case p.curIs("Type"):
		return p.parseTypeAliasDecl()
	case p.curIs("To"):
		return p.parseFuncDecl()
	default:
		p.errorAtCur("expected a declaration (Import/Data/Enum/Type/To), got " + q(p.curToken.Lexeme))
		return nil
	}
}

func (p *Parser) parseImportDecl() ast.Decl {
	startTok := p.curToken
	if !p.expectPeek(token.STRING) {
		return nil
	}
	path := p.curToken.Literal
	alias := ""
	if p.peekIs("as") {
		p.nextToken()
		if !p.expectPeekName() {
			return nil
		}
		alias = p.curToken.Lexeme
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.ImportDecl{DeclSpan: spanFrom(startTok, p.curToken), Path: path, Alias: alias}
}

// parseTypeParamClause parses an optional "of T and U and ..." clause,
// used by Data, Enum and TypeAlias declarations alike.
func (p *Parser) parseTypeParamClause() ([]string, bool) {
	if !p.peekIs("of") {
		return nil, true
	}
	p.nextToken()
	if !p.expectPeekName() {
		return nil, false
	}
	names := []string{p.curToken.Lexeme}
	for p.peekIs("and") {
		p.nextToken()
		if !p.expectPeekName() {
			return nil, false
		}
		names = append(names, p.curToken.Lexeme)
	}
	return names, true
}

func (p *Parser) parseAnnotationList() ([]*ast.Annotation, bool) {
	var anns []*ast.Annotation
	for p.peekTokenIs(token.AT) {
		p.nextToken()
		a := p.parseAnnotation()
		if a == nil {
			return nil, false
		}
		anns = append(anns, a)
	}
	return anns, true
}

// parseAnnotation parses "@name(key=value, key2=value2, ...)"; curToken
// must be the leading AT on entry (spec.md §3 "annotations are (name,
// params: ordered map)"). A param without "key=" gets the positional
// key "$<index>".
func (p *Parser) parseAnnotation() *ast.Annotation {
	startTok := p.curToken
	if !p.expectPeekName() {
		return nil
	}
	name := p.curToken.Lexeme
	var params []ast.AnnotationParam
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		if !p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			key, val, ok := p.parseAnnotationParam(0)
			if !ok {
				return nil
			}
			params = append(params, ast.AnnotationParam{Key: key, Value: val})
			for p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				key, val, ok := p.parseAnnotationParam(len(params))
				if !ok {
					return nil
				}
				params = append(params, ast.AnnotationParam{Key: key, Value: val})
			}
		} else {
			p.nextToken()
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}
	return &ast.Annotation{AnnotationSpan: spanFrom(startTok, p.curToken), Name: name, Params: params}
}

func (p *Parser) parseAnnotationParam(index int) (string, ast.Expr, bool) {
	if (p.curTokenIs(token.IDENT) || p.curTokenIs(token.TYPE_IDENT)) && p.peekTokenIs(token.EQUALS) {
		key := p.curToken.Lexeme
		p.nextToken() // consume '='
		p.nextToken() // move to value
		val := p.parseExpression(LOWEST)
		if val == nil {
			return "", nil, false
		}
		return key, val, true
	}
	val := p.parseExpression(LOWEST)
	if val == nil {
		return "", nil, false
	}
	return fmt.Sprintf("$%d", index), val, true
}

func (p *Parser) parseDataDecl() ast.Decl {
	startTok := p.curToken
	if !p.expectPeek(token.TYPE_IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	typeParams, ok := p.parseTypeParamClause()
	if !ok {
		return nil
	}
	anns, ok := p.parseAnnotationList()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) || !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()
	var fields []*ast.Field
	for !p.curTokenIs(token.DEDENT) && !p.fatal && !p.curTokenIs(token.EOF) {
		f := p.parseField()
		if f == nil {
			return nil
		}
		fields = append(fields, f)
		p.nextToken()
	}
	if !p.curTokenIs(token.DEDENT) {
		p.errorAtCur("expected dedent to close data declaration")
		return nil
	}
	return &ast.DataDecl{DeclSpan: spanFrom(startTok, p.curToken), Name: name, TypeParams: typeParams, Fields: fields, Annotations: anns}
}

func (p *Parser) parseField() *ast.Field {
	if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.TYPE_IDENT) {
		p.errorAtCur("expected a field name, got " + q(p.curToken.Lexeme))
		return nil
	}
	startTok := p.curToken
	name := p.curToken.Lexeme
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	typ := p.parseType()
	if typ == nil {
		return nil
	}
	anns, ok := p.parseAnnotationList()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.Field{FieldSpan: spanFrom(startTok, p.curToken), Name: name, Type: typ, Annotations: anns}
}

func (p *Parser) parseEnumDecl() ast.Decl {
	startTok := p.curToken
	if !p.expectPeek(token.TYPE_IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	typeParams, ok := p.parseTypeParamClause()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) || !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()
	var variants []*ast.EnumVariant
	for !p.curTokenIs(token.DEDENT) && !p.fatal && !p.curTokenIs(token.EOF) {
		v := p.parseEnumVariant()
		if v == nil {
			return nil
		}
		variants = append(variants, v)
		p.nextToken()
	}
	if !p.curTokenIs(token.DEDENT) {
		p.errorAtCur("expected dedent to close enum declaration")
		return nil
	}
	return &ast.EnumDecl{DeclSpan: spanFrom(startTok, p.curToken), Name: name, TypeParams: typeParams, Variants: variants}
}

func (p *Parser) parseEnumVariant() *ast.EnumVariant {
	if !p.curTokenIs(token.TYPE_IDENT) {
		p.errorAtCur("expected a variant name, got " + q(p.curToken.Lexeme))
		return nil
	}
	startTok := p.curToken
	name := p.curToken.Lexeme
	var fields []*ast.Field
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		if !p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			f, ok := p.parseVariantField()
			if !ok {
				return nil
			}
			fields = append(fields, f)
			for p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				f, ok := p.parseVariantField()
				if !ok {
					return nil
				}
				fields = append(fields, f)
			}
		} else {
			p.nextToken()
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.EnumVariant{VariantSpan: spanFrom(startTok, p.curToken), Name: name, Fields: fields}
}

func (p *Parser) parseVariantField() (*ast.Field, bool) {
	if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.TYPE_IDENT) {
		p.errorAtCur("expected a field name, got " + q(p.curToken.Lexeme))
		return nil, false
	}
	startTok := p.curToken
	name := p.curToken.Lexeme
	if !p.expectPeek(token.COLON) {
		return nil, false
	}
	p.nextToken()
	typ := p.parseType()
	if typ == nil {
		return nil, false
	}
	return &ast.Field{FieldSpan: spanFrom(startTok, p.curToken), Name: name, Type: typ}, true
}

func (p *Parser) parseTypeAliasDecl() ast.Decl {
	startTok := p.curToken
	if !p.expectPeek(token.TYPE_IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	typeParams, ok := p.parseTypeParamClause()
	if !ok {
		return nil
	}
	if !p.expectPeekKeyword("is") {
		return nil
	}
	p.nextToken()
	typ := p.parseType()
	if typ == nil {
		return nil
	}
	if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
		return nil
	}
	return &ast.TypeAliasDecl{DeclSpan: spanFrom(startTok, p.curToken), Name: name, TypeParams: typeParams, Type: typ}
}

func (p *Parser) parseParamList() ([]*ast.Param, bool) {
	var params []*ast.Param
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}
	p.nextToken()
	prm, ok := p.parseParam()
	if !ok {
		return nil, false
	}
	params = append(params, prm)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		prm, ok := p.parseParam()
		if !ok {
			return nil, false
		}
		params = append(params, prm)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseParam() (*ast.Param, bool) {
	if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.TYPE_IDENT) {
		p.errorAtCur("expected a parameter name, got " + q(p.curToken.Lexeme))
		return nil, false
	}
	startTok := p.curToken
	name := p.curToken.Lexeme
	var typ ast.Type
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		typ = p.parseType()
		if typ == nil {
			return nil, false
		}
	}
	anns, ok := p.parseAnnotationList()
	if !ok {
		return nil, false
	}
	return &ast.Param{ParamSpan: spanFrom(startTok, p.curToken), Name: name, Type: typ, Annotations: anns}, true
}

func (p *Parser) parseCapList() ([]string, bool) {
	var caps []string
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return caps, true
	}
	if !p.expectPeekName() {
		return nil, false
	}
	caps = append(caps, p.curToken.Lexeme)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeekName() {
			return nil, false
		}
		caps = append(caps, p.curToken.Lexeme)
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil, false
	}
	return caps, true
}

// parseFuncDecl parses "To <name>[(params)] [of T and U], produce
// <Type>: " followed by an optional "It performs io|cpu [Cap, ...]."
// effect clause and the function body (spec.md §4.3/§4.7).
func (p *Parser) parseFuncDecl() ast.Decl {
	startTok := p.curToken
	if !p.expectPeekName() {
		return nil
	}
	name := p.curToken.Lexeme

	var params []*ast.Param
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		var ok bool
		params, ok = p.parseParamList()
		if !ok {
			return nil
		}
	}

	typeParams, ok := p.parseTypeParamClause()
	if !ok {
		return nil
	}

	// The ", produce Type" clause is itself optional: when the writer
	// omits it, the return type is left nil here and filled in below by
	// applyImplicitTypes's name-based inference (spec.md §4.3 "Implicit
	// return-type inference").
	var retType ast.Type
	var anns []*ast.Annotation
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeekKeyword("produce") {
			return nil
		}
		p.nextToken()
		retType = p.parseType()
		if retType == nil {
			return nil
		}
		var ok bool
		anns, ok = p.parseAnnotationList()
		if !ok {
			return nil
		}
	}
	if !p.expectPeek(token.COLON) || !p.expectPeek(token.NEWLINE) || !p.expectPeek(token.INDENT) {
		return nil
	}
	p.nextToken()

	var effect string
	var caps []string
	if p.curIs("It") && p.peekIs("performs") {
		p.nextToken() // "performs"
		if !p.peekIs("io") && !p.peekIs("cpu") {
			p.errorAtPeek("expected \"io\" or \"cpu\"")
			return nil
		}
		p.nextToken()
		effect = p.curToken.Lexeme
		if p.peekTokenIs(token.LBRACKET) {
			p.nextToken()
			var ok bool
			caps, ok = p.parseCapList()
			if !ok {
				return nil
			}
		}
		if !p.expectPeek(token.DOT) || !p.expectPeek(token.NEWLINE) {
			return nil
		}
		p.nextToken()
	}

	var stmts []ast.Stmt
	for !p.curTokenIs(token.DEDENT) && !p.fatal && !p.curTokenIs(token.EOF) {
		s := p.parseStmt()
		if s == nil {
			return nil
		}
		stmts = append(stmts, s)
		p.nextToken()
	}
	if !p.curTokenIs(token.DEDENT) {
		p.errorAtCur("expected dedent to close function body")
		return nil
	}

	fn := &ast.FuncDecl{
		DeclSpan:     spanFrom(startTok, p.curToken),
		Name:         name,
		TypeParams:   typeParams,
		Params:       params,
		ReturnType:   retType,
		Body:         &ast.Block{Statements: stmts},
		Effect:       effect,
		Capabilities: caps,
		Annotations:  anns,
	}
	p.applyImplicitTypes(fn)
	return fn
}
