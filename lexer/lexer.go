/*
File    : psl/lexer/lexer.go

Lexer performs lexical analysis of PSL source code. It scans the source
byte by byte, producing a stream of Tokens. Per spec.md §4.1 the lexer
never fails: any byte it cannot otherwise classify becomes a one-rune
IDENTIFIER token, so the parser — not the lexer — is the layer that
raises a diagnosable error with a useful message.
*/
package lexer

// Lexer holds the scanning state for a single source file: the full
// source text, the byte currently under the cursor, and 1-based
// line/column counters for diagnostics.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// Peek returns the next byte without consuming it, or 0 at end of input.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the cursor one byte forward, tracking line/column. It
// does not special-case '\n' itself (callers that skip whitespace do
// that); it just moves Current/Position/Column.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespaceAndComments skips spaces/tabs/carriage-returns (but
// not '\n', which is itself a token), `COMMENT` line comments, `//` line
// comments, and `COMMENTBLOCK ... COMMENTBLOCK` block comments.
func (lex *Lexer) IgnoreWhitespaceAndComments() {
	for {
		switch {
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r':
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			lex.skipLineComment()
		case lex.matchesKeywordAhead("COMMENTBLOCK"):
			lex.skipCommentBlock()
		case lex.matchesKeywordAhead("COMMENT") && !lex.matchesKeywordAhead("COMMENTBLOCK"):
			lex.skipLineComment()
		default:
			return
		}
	}
}

// matchesKeywordAhead reports whether word appears at the cursor as a
// whole word (not a prefix of a longer identifier).
func (lex *Lexer) matchesKeywordAhead(word string) bool {
	n := len(word)
	if lex.Position+n > lex.SrcLength {
		return false
	}
	if lex.Src[lex.Position:lex.Position+n] != word {
		return false
	}
	end := lex.Position + n
	if end < lex.SrcLength && (isAlphanumeric(lex.Src[end]) || lex.Src[end] == '_') {
		return false
	}
	return true
}

// skipLineComment discards everything up to (not including) the next
// newline or end of input.
func (lex *Lexer) skipLineComment() {
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// skipCommentBlock discards everything up to and including the next
// literal "COMMENTBLOCK" marker found ahead in the source, per spec.md
// §4.1 ("the marker is matched as a literal substring against the
// remaining input at each advance").
func (lex *Lexer) skipCommentBlock() {
	for i := 0; i < len("COMMENTBLOCK"); i++ {
		lex.Advance()
	}
	for lex.Current != 0 {
		if lex.Position+len("COMMENTBLOCK") <= lex.SrcLength && lex.Src[lex.Position:lex.Position+len("COMMENTBLOCK")] == "COMMENTBLOCK" {
			for i := 0; i < len("COMMENTBLOCK"); i++ {
				lex.Advance()
			}
			return
		}
		if lex.Current == '\n' {
			lex.Line++
		}
		lex.Advance()
	}
}

// NextToken scans and returns the next token, advancing past it.
func (lex *Lexer) NextToken() Token {
	lex.IgnoreWhitespaceAndComments()

	line, column := lex.Line, lex.Column

	switch lex.Current {
	case 0:
		return NewTokenWithMetadata(EOF, "EOF", line, column)
	case '\n':
		lex.Line++
		lex.Column = 0 // Advance() below brings it to 1
		lex.Advance()
		return NewTokenWithMetadata(NEWLINE, "\\n", line, column)
	case '<':
		if lex.Peek() == '-' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithMetadata(ASSIGN, "<-", line, column)
		}
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithMetadata(LT_EQ, "<=", line, column)
		}
		lex.Advance()
		return NewTokenWithMetadata(LT, "<", line, column)
	case '>':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return NewTokenWithMetadata(GT_EQ, ">=", line, column)
		}
		lex.Advance()
		return NewTokenWithMetadata(GT, ">", line, column)
	case '=':
		lex.Advance()
		return NewTokenWithMetadata(EQ, "=", line, column)
	case '+':
		lex.Advance()
		return NewTokenWithMetadata(PLUS, "+", line, column)
	case '-':
		lex.Advance()
		return NewTokenWithMetadata(MINUS, "-", line, column)
	case '*':
		lex.Advance()
		return NewTokenWithMetadata(STAR, "*", line, column)
	case '/':
		lex.Advance()
		return NewTokenWithMetadata(SLASH, "/", line, column)
	case '(':
		lex.Advance()
		return NewTokenWithMetadata(OPEN_PAREN, "(", line, column)
	case ')':
		lex.Advance()
		return NewTokenWithMetadata(CLOSE_PAREN, ")", line, column)
	case '[':
		lex.Advance()
		return NewTokenWithMetadata(OPEN_BRACKET, "[", line, column)
	case ']':
		lex.Advance()
		return NewTokenWithMetadata(CLOSE_BRACKET, "]", line, column)
	case '{':
		lex.Advance()
		return NewTokenWithMetadata(OPEN_BRACE, "{", line, column)
	case '}':
		lex.Advance()
		return NewTokenWithMetadata(CLOSE_BRACE, "}", line, column)
	case ',':
		lex.Advance()
		return NewTokenWithMetadata(COMMA, ",", line, column)
	case '.':
		// A leading digit already consumes its own decimal point inside
		// readNumber, so reaching here means this '.' stands on its own,
		// i.e. member access (`record.field`).
		lex.Advance()
		return NewTokenWithMetadata(DOT, ".", line, column)
	case '"':
		if lex.Peek() == '"' && lex.Position+2 < lex.SrcLength && lex.Src[lex.Position+2] == '"' {
			return readMultilineString(lex, line, column)
		}
		return readStringLiteral(lex, line, column)
	default:
		if lex.Current == 'r' && lex.Peek() == '"' {
			return readRawString(lex, line, column)
		}
		if lex.Current == 'f' && lex.Peek() == '"' {
			return readFormattedString(lex, line, column)
		}
		if isDigit(lex.Current) {
			return readNumber(lex, line, column)
		}
		if isAlpha(lex.Current) || lex.Current == '_' {
			return readIdentifierOrKeyword(lex, line, column)
		}
		// Unknown byte: per spec.md §4.1, "unknown characters become
		// Identifier tokens of length one so the parser can raise a
		// meaningful error with position".
		literal := string(lex.Current)
		lex.Advance()
		return NewTokenWithMetadata(IDENTIFIER, literal, line, column)
	}
}

// ConsumeTokens tokenizes the entire source, returning every token up to
// (not including) EOF.
func (lex *Lexer) ConsumeTokens() []Token {
	tokens := make([]Token, 0)
	for {
		tok := lex.NextToken()
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
