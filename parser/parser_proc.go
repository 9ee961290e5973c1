/*
File    : psl/parser/parser_proc.go

Procedure declaration and RETURN, grounded on
go-mix/parser/parser_functions.go's function-declaration parsing,
adapted to §4.2's grammar:

	proc_decl := 'PROCEDURE' Ident '(' params? ')' block
	return     := 'RETURN' ( '(' expr? ')' | expr | ε )
*/
package parser

import "github.com/pslstudio/psl/lexer"

func (p *Parser) parseProcDecl() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance() // PROCEDURE
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.OPEN_PAREN); err != nil {
		return nil, err
	}
	var params []string
	for p.CurrToken.Type != lexer.CLOSE_PAREN {
		param, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		params = append(params, param.Literal)
		if p.CurrToken.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ProcDecl{Position: pos, Name: name.Literal, Params: params, Body: body}, nil
}

// parseReturn handles the three surface forms §4.2 allows: `RETURN`,
// `RETURN(expr)` (including the empty `RETURN()`), and bare `RETURN
// expr`.
func (p *Parser) parseReturn() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance() // RETURN

	if p.atStatementEnd() {
		return &ReturnStmt{Position: pos}, nil
	}

	if p.CurrToken.Type == lexer.OPEN_PAREN {
		p.advance()
		if p.CurrToken.Type == lexer.CLOSE_PAREN {
			p.advance()
			return &ReturnStmt{Position: pos}, nil
		}
		value, err := p.parseExpression(PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return &ReturnStmt{Position: pos, Value: value}, nil
	}

	value, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{Position: pos, Value: value}, nil
}

// atStatementEnd reports whether the parser has reached a point where a
// bare RETURN with no expression is the only valid reading: end of
// block, end of program, or a newline that separates it from the next
// statement.
func (p *Parser) atStatementEnd() bool {
	switch p.CurrToken.Type {
	case lexer.NEWLINE, lexer.CLOSE_BRACE, lexer.EOF:
		return true
	default:
		return false
	}
}
