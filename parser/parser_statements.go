/*
File    : psl/parser/parser_statements.go

Top-level statement dispatch, per §4.2's grammar:

	statement := assignment | call | if | repeat | foreach | proc_decl
	           | return | display | display_inline | try_catch
	           | import | class_decl | expression

grounded on go-mix/parser/parser_statements.go's statement-dispatch
switch over the current token, adapted to PSL's keyword set.
*/
package parser

import "github.com/pslstudio/psl/lexer"

func (p *Parser) parseStatement() (Node, error) {
	switch p.CurrToken.Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.REPEAT:
		return p.parseRepeat()
	case lexer.FOR:
		return p.parseForEach()
	case lexer.PROCEDURE:
		return p.parseProcDecl()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.TRY:
		return p.parseTryCatch()
	case lexer.IMPORT:
		return p.parseImport()
	case lexer.CLASS:
		return p.parseClassDecl()
	case lexer.DISPLAY, lexer.DISPLAY_INLINE:
		return p.parseDisplayCall()
	case lexer.IDENTIFIER:
		if p.NextToken.Type == lexer.ASSIGN || p.NextToken.Type == lexer.OPEN_BRACKET {
			savedCurr, savedNext, savedLex := p.CurrToken, p.NextToken, p.lex
			if assign, ok, err := p.tryParseAssignment(); ok || err != nil {
				return assign, err
			}
			p.CurrToken, p.NextToken, p.lex = savedCurr, savedNext, savedLex
		}
		return p.parseExpression(PrecedenceLowest)
	default:
		return p.parseExpression(PrecedenceLowest)
	}
}

// tryParseAssignment attempts to parse `Ident ('[' expr ']')* '<-' expr`
// starting at an IDENTIFIER token. It returns ok=false (with no error)
// if the identifier turns out to merely start an indexing expression
// used as a value (e.g. `DISPLAY(x[1])` never reaches here, but
// `x[1]` as a bare expression statement should fall through to
// parseExpression instead of demanding an ASSIGN token).
func (p *Parser) tryParseAssignment() (Node, bool, error) {
	start := p.pos()
	identTok := p.CurrToken
	var target Node = &Identifier{Position: Position{Line: identTok.Line, Column: identTok.Column}, Name: identTok.Literal}
	p.advance()

	for p.CurrToken.Type == lexer.OPEN_BRACKET {
		p.advance()
		idx, err := p.parseExpression(PrecedenceLowest)
		if err != nil {
			return nil, true, err
		}
		if _, err := p.expect(lexer.CLOSE_BRACKET); err != nil {
			return nil, true, err
		}
		target = &IndexExpr{Position: start, Target: target, Index: idx}
	}

	if p.CurrToken.Type != lexer.ASSIGN {
		return nil, false, nil
	}
	p.advance()
	value, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, true, err
	}
	return &Assignment{Position: start, Target: target, Value: value}, true, nil
}

// parseDisplayCall handles both the `DISPLAY"inline"` lexer shortcut
// (the token already carries the string) and the ordinary
// `DISPLAY(expr)`/`DISPLAYINLINE(expr)` call form.
func (p *Parser) parseDisplayCall() (Node, error) {
	tok := p.CurrToken
	name := "DISPLAY"
	if tok.Type == lexer.DISPLAY_INLINE {
		name = "DISPLAYINLINE"
	}
	pos := Position{Line: tok.Line, Column: tok.Column}
	if tok.HasInline {
		p.advance()
		return &Call{Position: pos, Name: name, Args: []Node{&StringLiteral{Position: pos, Value: tok.InlineString}}}, nil
	}
	p.advance()
	if _, err := p.expect(lexer.OPEN_PAREN); err != nil {
		return nil, err
	}
	arg, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
		return nil, err
	}
	return &Call{Position: pos, Name: name, Args: []Node{arg}}, nil
}

// parseClassDecl handles `CLASS Name { block }`.
func (p *Parser) parseClassDecl() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance() // CLASS
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ClassDecl{Position: pos, Name: name.Literal, Body: body}, nil
}

// parseImport handles `IMPORT "path"`.
func (p *Parser) parseImport() (Node, error) {
	tok := p.CurrToken
	p.advance()
	pathTok, err := p.expect(lexer.STRING)
	if err != nil {
		return nil, err
	}
	return &Import{Position: Position{Line: tok.Line, Column: tok.Column}, Path: pathTok.Literal}, nil
}
