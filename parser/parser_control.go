/*
File    : psl/parser/parser_control.go

Control-flow statement parsing: IF/ELSE, REPEAT (both forms), FOR EACH,
TRY/CATCH — grounded on go-mix/parser/parser_conditionals.go and
parser_loops.go's per-construct parse functions, adapted to §4.2's
grammar where parentheses around conditions are optional:

	if      := 'IF' ('(' expr ')' | expr) block ('ELSE' (if | block))?
	repeat  := 'REPEAT' ( 'UNTIL' ('(' expr ')' | expr) block
	                    | expr 'TIMES' block )
	foreach := 'FOR' 'EACH' Ident 'IN' expr block
*/
package parser

import "github.com/pslstudio/psl/lexer"

// parseOptionallyParenthesized parses either `(expr)` or a bare `expr`,
// per §4.2's "Parentheses around control-flow conditions are optional".
func (p *Parser) parseOptionallyParenthesized() (Node, error) {
	if p.CurrToken.Type == lexer.OPEN_PAREN {
		p.advance()
		expr, err := p.parseExpression(PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return p.parseExpression(PrecedenceLowest)
}

func (p *Parser) parseIf() (Node, error) {
	tok := p.CurrToken
	p.advance() // IF
	cond, err := p.parseOptionallyParenthesized()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &IfStmt{Position: Position{Line: tok.Line, Column: tok.Column}, Condition: cond, Then: then}

	savedCurr, savedNext, savedLex := p.CurrToken, p.NextToken, p.lex
	p.skipNewlines()
	if p.CurrToken.Type != lexer.ELSE {
		p.CurrToken, p.NextToken, p.lex = savedCurr, savedNext, savedLex
		return node, nil
	}
	p.advance() // ELSE
	p.skipNewlines()
	if p.CurrToken.Type == lexer.IF {
		elseIf, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		node.Else = elseIf
		return node, nil
	}
	elseBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Else = elseBlock
	return node, nil
}

// parseRepeat dispatches between `REPEAT UNTIL ...` and `REPEAT n
// TIMES ...`, per §4.2.
func (p *Parser) parseRepeat() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance() // REPEAT

	if p.CurrToken.Type == lexer.UNTIL {
		p.advance()
		cond, err := p.parseOptionallyParenthesized()
		if err != nil {
			return nil, err
		}
		p.skipNewlines()
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &RepeatUntil{Position: pos, Condition: cond, Body: body}, nil
	}

	count, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TIMES); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &RepeatTimes{Position: pos, Count: count, Body: body}, nil
}

func (p *Parser) parseForEach() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance() // FOR
	if _, err := p.expect(lexer.EACH); err != nil {
		return nil, err
	}
	ident, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	seq, err := p.parseExpression(PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForEach{Position: pos, VarName: ident.Literal, Seq: seq, Body: body}, nil
}

// parseTryCatch parses `TRY block CATCH ('(' Ident ')')? block`.
func (p *Parser) parseTryCatch() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance() // TRY
	p.skipNewlines()
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(lexer.CATCH); err != nil {
		return nil, err
	}
	errVar := ""
	if p.CurrToken.Type == lexer.OPEN_PAREN {
		p.advance()
		ident, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		errVar = ident.Literal
		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}
	}
	p.skipNewlines()
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &TryCatch{Position: pos, Try: tryBlock, ErrVar: errVar, Catch: catchBlock}, nil
}
