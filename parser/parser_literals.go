/*
File    : psl/parser/parser_literals.go

List literals and formatted-string hole expansion. Grounded on
go-mix/parser/parser_collections.go's array-literal parsing for the
`[e, e, ...]` shape; the formatted-string handling has no go-mix
analogue (go-mix has no f-strings) and is instead grounded directly on
§4.2's "the parser re-lexes and parses each hole into an expression
AST", reusing this same Parser type recursively over each hole's raw
text.
*/
package parser

import "github.com/pslstudio/psl/lexer"

func (p *Parser) parseListLiteral() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance() // '['
	var elems []Node
	for p.CurrToken.Type != lexer.CLOSE_BRACKET {
		elem, err := p.parseExpression(PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.CurrToken.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.CLOSE_BRACKET); err != nil {
		return nil, err
	}
	return &ListLiteral{Position: pos, Elements: elems}, nil
}

// parseFormattedString re-parses each hole the lexer extracted from an
// f-string into its own expression AST, per §4.2.
func (p *Parser) parseFormattedString(tok lexer.Token) (Node, error) {
	pos := Position{Line: tok.Line, Column: tok.Column}
	holes := make([]Node, 0, len(tok.Holes))
	for _, raw := range tok.Holes {
		holeParser := NewParser(raw)
		expr, err := holeParser.parseExpression(PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		holes = append(holes, expr)
	}
	p.advance()
	return &FormattedString{Position: pos, Template: tok.Literal, Holes: holes}, nil
}
