package parser

import "github.com/cnlforge/corelang/internal/ast"
import "github.com/cnlforge/corelang/internal/token"

// parseType parses a type expression. Generic application reuses the
// LT/GT comparison-operator tokens as angle brackets ("List<Int>",
// "Map<Text, Int>") since the token set spec.md §3 fixes has no
// dedicated bracket pair for this; curToken must be positioned on the
// type's leading name token on entry, and is left on the type's last
// token on return. Result/Maybe/Option/List/Map get their own AST
// node per spec.md §3; any other "<...>" application is a TypeApp;
// "Func<P1, ..., R>" is the reserved spelling for a function type
// (spec.md's Type family includes FuncType but gives the surface
// grammar for it separately, so this is the builder's own choice).
func (p *Parser) parseType() ast.Type {
	if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.TYPE_IDENT) {
		p.errorAtCur("expected a type name, got " + q(p.curToken.Lexeme))
		return nil
	}
	nameTok := p.curToken
	name := nameTok.Lexeme

	if !p.peekTokenIs(token.LT) {
		return &ast.TypeName{TypeSpan: nameTok.Span(), Name: name}
	}

	p.nextToken() // consume name, curToken now LT
	args, ok := p.parseTypeArgList()
	if !ok {
		return nil
	}

	span := spanFrom(nameTok, p.curToken)
	switch name {
	case "Result":
		if len(args) != 2 {
			p.errorAtCur("Result requires exactly two type arguments")
			return nil
		}
		return &ast.ResultType{TypeSpan: span, Ok: args[0], Err: args[1]}
	case "Maybe":
		if len(args) != 1 {
			p.errorAtCur("Maybe requires exactly one type argument")
			return nil
		}
		return &ast.MaybeType{TypeSpan: span, Elem: args[0]}
	case "Option":
		if len(args) != 1 {
			p.errorAtCur("Option requires exactly one type argument")
			return nil
		}
		return &ast.OptionType{TypeSpan: span, Elem: args[0]}
	case "List":
		if len(args) != 1 {
			p.errorAtCur("List requires exactly one type argument")
			return nil
		}
		return &ast.ListType{TypeSpan: span, Elem: args[0]}
	case "Map":
		if len(args) != 2 {
			p.errorAtCur("Map requires exactly two type arguments")
			return nil
		}
		return &ast.MapType{TypeSpan: span, Key: args[0], Value: args[1]}
	case "Func":
		if len(args) < 1 {
			p.errorAtCur("Func requires a return type argument")
			return nil
		}
		return &ast.FuncType{TypeSpan: span, Params: args[:len(args)-1], ReturnType: args[len(args)-1]}
	default:
		return &ast.TypeApp{TypeSpan: span, Name: name, Args: args}
	}
}

// parseTypeArgList parses "<T, U, ...>"; curToken must be LT on entry
// and is left on GT on return.
func (p *Parser) parseTypeArgList() ([]ast.Type, bool) {
	var args []ast.Type
	p.nextToken() // consume '<'
	t := p.parseType()
	if t == nil {
		return nil, false
	}
	args = append(args, t)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		t := p.parseType()
		if t == nil {
			return nil, false
		}
		args = append(args, t)
	}
	if !p.expectPeek(token.GT) {
		return nil, false
	}
	return args, true
}
