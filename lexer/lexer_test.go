/*
File    : psl/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typesOf(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestLexerAssignmentAndArithmetic(t *testing.T) {
	lex := NewLexer("x <- 1 + 2 * 3")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, []TokenType{IDENTIFIER, ASSIGN, INTEGER, PLUS, INTEGER, STAR, INTEGER}, typesOf(tokens))
}

func TestLexerNotEqual(t *testing.T) {
	lex := NewLexer("x NOT= y")
	tokens := lex.ConsumeTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, NOT_EQ, tokens[1].Type)
	assert.Equal(t, "NOT=", tokens[1].Literal)
}

func TestLexerUnaryNot(t *testing.T) {
	lex := NewLexer("NOT TRUE")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, []TokenType{NOT, BOOLEAN}, typesOf(tokens))
}

func TestLexerRepeatUntil(t *testing.T) {
	lex := NewLexer("REPEAT UNTIL (x = 3) { x <- x + 1 }")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, REPEAT, tokens[0].Type)
	assert.Equal(t, UNTIL, tokens[1].Type)
}

func TestLexerDisplayInline(t *testing.T) {
	lex := NewLexer(`DISPLAY"hello"`)
	tok := lex.NextToken()
	assert.Equal(t, DISPLAY, tok.Type)
	assert.True(t, tok.HasInline)
	assert.Equal(t, "hello", tok.InlineString)
}

func TestLexerFormattedString(t *testing.T) {
	lex := NewLexer(`f"Hello {name}!"`)
	tok := lex.NextToken()
	assert.Equal(t, FORMATTED_STRING, tok.Type)
	assert.Equal(t, "Hello {}!", tok.Literal)
	require.Len(t, tok.Holes, 1)
	assert.Equal(t, "name", tok.Holes[0])
}

func TestLexerRawString(t *testing.T) {
	lex := NewLexer(`r"a\nb"`)
	tok := lex.NextToken()
	assert.Equal(t, RAW_STRING, tok.Type)
	assert.Equal(t, `a\nb`, tok.Literal)
}

func TestLexerMultilineString(t *testing.T) {
	lex := NewLexer("\"\"\"line one\nline two\"\"\"")
	tok := lex.NextToken()
	assert.Equal(t, MULTILINE_STRING, tok.Type)
	assert.Equal(t, "line one\nline two", tok.Literal)
}

func TestLexerCommentBlock(t *testing.T) {
	lex := NewLexer("x <- 1\nCOMMENTBLOCK\nthis is ignored\nCOMMENTBLOCK\ny <- 2")
	tokens := lex.ConsumeTokens()
	// newlines are preserved as tokens; the block comment contributes none.
	var kinds []TokenType
	for _, tok := range tokens {
		if tok.Type != NEWLINE {
			kinds = append(kinds, tok.Type)
		}
	}
	assert.Equal(t, []TokenType{IDENTIFIER, ASSIGN, INTEGER, IDENTIFIER, ASSIGN, INTEGER}, kinds)
}

func TestLexerLineComment(t *testing.T) {
	lex := NewLexer("x <- 1 // trailing comment\ny <- 2")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, INTEGER, tokens[2].Type)
	assert.Equal(t, NEWLINE, tokens[3].Type)
}

func TestLexerUnknownByteBecomesIdentifier(t *testing.T) {
	lex := NewLexer("x <- @")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, IDENTIFIER, tokens[2].Type)
	assert.Equal(t, "@", tokens[2].Literal)
}

func TestLexerPositions(t *testing.T) {
	lex := NewLexer("x <- 1\ny <- 2")
	tok := lex.NextToken() // x
	assert.Equal(t, 1, tok.Line)
	assert.Equal(t, 1, tok.Column)
	lex.NextToken() // <-
	lex.NextToken() // 1
	lex.NextToken() // newline
	tok = lex.NextToken() // y
	assert.Equal(t, 2, tok.Line)
}
