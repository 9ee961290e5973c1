/*
File    : psl/parser/parser_expr.go

Expression parsing by precedence climbing, implementing §4.2's ladder
(low to high): OR, AND, equality (`=`, `NOT=`), comparison (`<`, `<=`,
`>`, `>=`), additive (`+`, `-`), multiplicative (`*`, `/`, `MOD`), unary
(`NOT`, unary `-`), primary. Grounded on go-mix/parser/parser_precedence.go's
precedence levels but implemented as one parse function per level calling
the next rather than go-mix's Pratt binding-power table, matching how
§4.2 spells out the ladder directly.
*/
package parser

import (
	"strconv"

	"github.com/pslstudio/psl/lexer"
)

// Precedence is unused as a numeric binding power here (each level has
// its own function); it exists only as a named constant passed to
// parseExpression for readability at call sites that want "parse a full
// expression from the top of the ladder".
type Precedence int

const PrecedenceLowest Precedence = 0

func (p *Parser) parseExpression(_ Precedence) (Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.CurrToken.Type == lexer.OR {
		tok := p.CurrToken
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Position: Position{Line: tok.Line, Column: tok.Column}, Op: "OR", Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.CurrToken.Type == lexer.AND {
		tok := p.CurrToken
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Position: Position{Line: tok.Line, Column: tok.Column}, Op: "AND", Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.CurrToken.Type == lexer.EQ || p.CurrToken.Type == lexer.NOT_EQ {
		tok := p.CurrToken
		op := "="
		if tok.Type == lexer.NOT_EQ {
			op = "NOT="
		}
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Position: Position{Line: tok.Line, Column: tok.Column}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.CurrToken.Type) {
		tok := p.CurrToken
		op := comparisonOpLiteral(tok.Type)
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Position: Position{Line: tok.Line, Column: tok.Column}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func isComparisonOp(t lexer.TokenType) bool {
	return t == lexer.LT || t == lexer.LT_EQ || t == lexer.GT || t == lexer.GT_EQ
}

func comparisonOpLiteral(t lexer.TokenType) string {
	switch t {
	case lexer.LT:
		return "<"
	case lexer.LT_EQ:
		return "<="
	case lexer.GT:
		return ">"
	default:
		return ">="
	}
}

func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.CurrToken.Type == lexer.PLUS || p.CurrToken.Type == lexer.MINUS {
		tok := p.CurrToken
		op := "+"
		if tok.Type == lexer.MINUS {
			op = "-"
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Position: Position{Line: tok.Line, Column: tok.Column}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.CurrToken.Type == lexer.STAR || p.CurrToken.Type == lexer.SLASH || p.CurrToken.Type == lexer.MOD {
		tok := p.CurrToken
		op := map[lexer.TokenType]string{lexer.STAR: "*", lexer.SLASH: "/", lexer.MOD: "MOD"}[tok.Type]
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Position: Position{Line: tok.Line, Column: tok.Column}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Node, error) {
	if p.CurrToken.Type == lexer.NOT || p.CurrToken.Type == lexer.MINUS {
		tok := p.CurrToken
		op := "NOT"
		if tok.Type == lexer.MINUS {
			op = "-"
		}
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Position: Position{Line: tok.Line, Column: tok.Column}, Op: op, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles literals, identifiers (optionally followed by
// one or more `[index]` and optionally a call `(args)`), parenthesized
// expressions, list literals, built-in calls, and formatted-string
// expansion, per §4.2.
func (p *Parser) parsePrimary() (Node, error) {
	tok := p.CurrToken
	pos := Position{Line: tok.Line, Column: tok.Column}

	switch tok.Type {
	case lexer.INTEGER:
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", tok.Literal)
		}
		return &IntegerLiteral{Position: pos, Value: n}, nil

	case lexer.FLOAT:
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorf("invalid float literal %q", tok.Literal)
		}
		return &FloatLiteral{Position: pos, Value: f}, nil

	case lexer.STRING, lexer.RAW_STRING, lexer.MULTILINE_STRING:
		p.advance()
		return &StringLiteral{Position: pos, Value: tok.Literal}, nil

	case lexer.FORMATTED_STRING:
		return p.parseFormattedString(tok)

	case lexer.BOOLEAN:
		p.advance()
		return &BooleanLiteral{Position: pos, Value: tok.Literal == "TRUE"}, nil

	case lexer.NULL:
		p.advance()
		return &NullLiteral{Position: pos}, nil

	case lexer.NAN:
		p.advance()
		return &NaNLiteral{Position: pos}, nil

	case lexer.OPEN_BRACKET:
		return p.parseListLiteral()

	case lexer.OPEN_PAREN:
		p.advance()
		expr, err := p.parseExpression(PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.IF:
		return p.parseIfExpression()

	case lexer.NEW:
		return p.parseNewExpr(tok)

	case lexer.DISPLAY, lexer.DISPLAY_INLINE, lexer.INPUT, lexer.INSERT, lexer.APPEND,
		lexer.REMOVE, lexer.LENGTH, lexer.CONCAT, lexer.SUBSTRING, lexer.TOSTRING,
		lexer.TONUM, lexer.RANDOM, lexer.SORT, lexer.EVAL, lexer.EXIT:
		return p.parseBuiltinCall(tok)

	case lexer.IDENTIFIER:
		return p.parseIdentifierOrCall(tok)

	default:
		return nil, p.errorf("unexpected token %s (%q) in expression", tok.Type, tok.Literal)
	}
}

// parseIfExpression lets `IF (...) {...} ELSE {...}` be used as a
// statement (parseStatement routes IF here anyway through parseIf);
// this entry point exists so IF can also appear wherever parsePrimary
// is reached from a statement-as-expression context.
func (p *Parser) parseIfExpression() (Node, error) {
	return p.parseIf()
}

func (p *Parser) parseIdentifierOrCall(tok lexer.Token) (Node, error) {
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance()

	if p.CurrToken.Type == lexer.OPEN_PAREN {
		return p.parseCallArgs(pos, tok.Literal)
	}

	var node Node = &Identifier{Position: pos, Name: tok.Literal}
	return p.parsePostfix(node, pos)
}

// parsePostfix consumes any mix of `[index]` and `.Name`/`.Name(args)`
// suffixes following a primary expression, in source order, so chains
// like `shapes[0].area()` parse left to right.
func (p *Parser) parsePostfix(node Node, pos Position) (Node, error) {
	for {
		switch p.CurrToken.Type {
		case lexer.OPEN_BRACKET:
			p.advance()
			idx, err := p.parseExpression(PrecedenceLowest)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.CLOSE_BRACKET); err != nil {
				return nil, err
			}
			node = &IndexExpr{Position: pos, Target: node, Index: idx}

		case lexer.DOT:
			p.advance()
			name, err := p.expect(lexer.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			if p.CurrToken.Type == lexer.OPEN_PAREN {
				args, err := p.parseArgList()
				if err != nil {
					return nil, err
				}
				node = &MethodCall{Position: pos, Target: node, Name: name.Literal, Args: args}
			} else {
				node = &MemberExpr{Position: pos, Target: node, Name: name.Literal}
			}

		default:
			return node, nil
		}
	}
}

// parseNewExpr handles `NEW ClassName(args)`.
func (p *Parser) parseNewExpr(tok lexer.Token) (Node, error) {
	pos := Position{Line: tok.Line, Column: tok.Column}
	p.advance()
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return &NewExpr{Position: pos, ClassName: name.Literal, Args: args}, nil
}

// parseArgList consumes `(arg, arg, ...)`, factored out of
// parseCallArgs so NewExpr/MethodCall can reuse it without going through
// the Call node's name-carrying shape.
func (p *Parser) parseArgList() ([]Node, error) {
	if _, err := p.expect(lexer.OPEN_PAREN); err != nil {
		return nil, err
	}
	var args []Node
	for p.CurrToken.Type != lexer.CLOSE_PAREN {
		arg, err := p.parseExpression(PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.CurrToken.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.CLOSE_PAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseBuiltinCall parses a call to a built-in whose name the lexer
// promoted to its own keyword token (INSERT, APPEND, LENGTH, ...).
func (p *Parser) parseBuiltinCall(tok lexer.Token) (Node, error) {
	pos := Position{Line: tok.Line, Column: tok.Column}
	name := tok.Literal
	p.advance()
	if name == "EXIT" && p.CurrToken.Type != lexer.OPEN_PAREN {
		return &Call{Position: pos, Name: name}, nil
	}
	return p.parseCallArgs(pos, name)
}

// parseCallArgs consumes `(arg, arg, ...)` after the callee name has
// already been consumed.
func (p *Parser) parseCallArgs(pos Position, name string) (Node, error) {
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return &Call{Position: pos, Name: name, Args: args}, nil
}
