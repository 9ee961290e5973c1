/*
File    : psl/parser/parser.go

Package parser implements a recursive-descent parser with precedence
climbing for PSL, grounded on go-mix/parser/parser.go's Parser struct
shape (CurrToken/NextToken two-token lookahead, a NewParser(src)
constructor that owns its own Lexer) but trading go-mix's Pratt
UnaryFuncs/BinaryFuncs registration maps for a direct precedence-ladder
of parse functions, since PSL's grammar (§4.2) is specified exactly that
way: OR, AND, equality, comparison, additive, multiplicative, unary,
primary. go-mix also collects errors and keeps parsing past them; PSL's
spec requires abort-on-first-error (§4.2: "Parse errors are not
recovered; the first error aborts parsing"), so ParseError is returned
immediately rather than accumulated.
*/
package parser

import (
	"fmt"

	"github.com/pslstudio/psl/lexer"
)

// ParseError carries the offending token's position, per §4.2.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Line %d, Column %d: %s", e.Line, e.Column, e.Message)
}

// Parser holds two-token lookahead over a Lexer, mirroring go-mix's
// CurrToken/NextToken fields.
type Parser struct {
	lex       lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token
}

// NewParser creates a parser positioned at the first token of src.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.CurrToken = p.NextToken
	p.NextToken = p.lex.NextToken()
}

// skipNewlines consumes any run of NEWLINE tokens. Per §4.2, "Newlines
// are skipped between statements and inside blocks; they never
// terminate expressions" — callers invoke this between statements and
// after every token that can legally be followed by a line break.
func (p *Parser) skipNewlines() {
	for p.CurrToken.Type == lexer.NEWLINE {
		p.advance()
	}
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    p.CurrToken.Line,
		Column:  p.CurrToken.Column,
	}
}

// expect consumes CurrToken if it matches typ, advancing past it, or
// returns a ParseError naming what was expected.
func (p *Parser) expect(typ lexer.TokenType) (lexer.Token, error) {
	if p.CurrToken.Type != typ {
		return lexer.Token{}, p.errorf("expected %s, got %s (%q)", typ, p.CurrToken.Type, p.CurrToken.Literal)
	}
	tok := p.CurrToken
	p.advance()
	return tok, nil
}

func (p *Parser) pos() Position {
	return Position{Line: p.CurrToken.Line, Column: p.CurrToken.Column}
}

// Parse runs the parser to completion, returning a *Program or the
// first ParseError encountered.
func Parse(src string) (*Program, error) {
	p := NewParser(src)
	return p.ParseProgram()
}

// ParseExpression parses src as a single expression, the entry point
// EVAL uses (§4.4: "lex and parse `s` as a single expression, then
// evaluate it in the current environment").
func ParseExpression(src string) (Node, error) {
	p := NewParser(src)
	return p.parseExpression(PrecedenceLowest)
}

// ParseProgram consumes statement* until EOF, per §4.2's `program :=
// statement*`.
func (p *Parser) ParseProgram() (*Program, error) {
	prog := &Program{Position: p.pos()}
	p.skipNewlines()
	for p.CurrToken.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		p.skipNewlines()
	}
	return prog, nil
}

// parseBlock consumes `{ statement* }`, per §4.2's `block := '{'
// statement* '}'`.
func (p *Parser) parseBlock() (*Block, error) {
	open, err := p.expect(lexer.OPEN_BRACE)
	if err != nil {
		return nil, err
	}
	block := &Block{Position: Position{Line: open.Line, Column: open.Column}}
	p.skipNewlines()
	for p.CurrToken.Type != lexer.CLOSE_BRACE {
		if p.CurrToken.Type == lexer.EOF {
			return nil, p.errorf("unterminated block, expected %s", lexer.CLOSE_BRACE)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.skipNewlines()
	}
	p.advance() // consume '}'
	return block, nil
}
