/*
File    : psl/lexer/lexer_utils.go

Character classification and the scanners for each literal kind: string
(plain, raw, multiline, formatted), number, and identifier/keyword.
*/
package lexer

import (
	"strings"
	"unicode"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c))
}

func isAlphanumeric(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

// readStringLiteral scans a double-quoted string, honoring the escape
// sequences spec.md §4.1 names (\n \t \r \b \\ \") and passing any other
// escaped character through literally.
func readStringLiteral(lex *Lexer, line, column int) Token {
	lex.Advance() // opening quote
	var b strings.Builder
	for lex.Current != '"' && lex.Current != 0 {
		if lex.Current == '\\' {
			lex.Advance()
			b.WriteByte(escapeByte(lex.Current))
			lex.Advance()
			continue
		}
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // closing quote
	return NewTokenWithMetadata(STRING, b.String(), line, column)
}

// escapeByte resolves the character following a backslash inside a
// string literal. Any character not in the named escape set is passed
// through unchanged, per spec.md §4.1 ("any other escaped character is
// passed through").
func escapeByte(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	case '\\':
		return '\\'
	case '"':
		return '"'
	default:
		return c
	}
}

// readRawString scans r"..." — the body is taken verbatim, with no
// escape processing.
func readRawString(lex *Lexer, line, column int) Token {
	lex.Advance() // 'r'
	lex.Advance() // opening quote
	start := lex.Position
	for lex.Current != '"' && lex.Current != 0 {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	lex.Advance() // closing quote
	return NewTokenWithMetadata(RAW_STRING, literal, line, column)
}

// readMultilineString scans a triple-quoted string, preserving embedded
// newlines verbatim.
func readMultilineString(lex *Lexer, line, column int) Token {
	lex.Advance()
	lex.Advance()
	lex.Advance() // consume opening """
	var b strings.Builder
	for lex.Current != 0 {
		if lex.Current == '"' && lex.Peek() == '"' && lex.Position+2 < lex.SrcLength && lex.Src[lex.Position+2] == '"' {
			lex.Advance()
			lex.Advance()
			lex.Advance()
			break
		}
		if lex.Current == '\n' {
			lex.Line++
		}
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	return NewTokenWithMetadata(MULTILINE_STRING, b.String(), line, column)
}

// readFormattedString scans f"...{expr}..." — producing a template with
// each `{...}` hole replaced by a bare `{}` placeholder, plus the raw
// text of each hole for the parser to re-lex as an expression. Nesting
// is counted by brace depth so a hole may itself contain a list literal
// or nested call.
func readFormattedString(lex *Lexer, line, column int) Token {
	lex.Advance() // 'f'
	lex.Advance() // opening quote
	var template strings.Builder
	var holes []string
	for lex.Current != '"' && lex.Current != 0 {
		if lex.Current == '{' {
			depth := 1
			lex.Advance()
			var hole strings.Builder
			for depth > 0 && lex.Current != 0 {
				if lex.Current == '{' {
					depth++
				} else if lex.Current == '}' {
					depth--
					if depth == 0 {
						lex.Advance()
						break
					}
				}
				hole.WriteByte(lex.Current)
				lex.Advance()
			}
			holes = append(holes, hole.String())
			template.WriteString("{}")
			continue
		}
		if lex.Current == '\\' {
			lex.Advance()
			template.WriteByte(escapeByte(lex.Current))
			lex.Advance()
			continue
		}
		template.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // closing quote
	tok := NewTokenWithMetadata(FORMATTED_STRING, template.String(), line, column)
	tok.Holes = holes
	return tok
}

// readNumber scans a digit sequence, classifying it as INTEGER unless it
// contains exactly one '.', in which case it is FLOAT. Per spec.md §4.1,
// no sign is lexed here (unary minus is a separate operator token).
func readNumber(lex *Lexer, line, column int) Token {
	start := lex.Position
	dots := 0
	for isDigit(lex.Current) || (lex.Current == '.' && isDigit(lex.Peek())) {
		if lex.Current == '.' {
			dots++
		}
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	if dots == 1 {
		return NewTokenWithMetadata(FLOAT, literal, line, column)
	}
	return NewTokenWithMetadata(INTEGER, literal, line, column)
}

// readIdentifierOrKeyword scans a word and classifies it against the
// keyword table. It special-cases three lexer-level combinations named
// by spec.md §4.1/§4.3:
//
//   - DISPLAY immediately followed by a '"' greedily consumes the string
//     literal and attaches it to the token as InlineString.
//   - NOT immediately followed by '=' (no intervening space) becomes the
//     NOT_EQ operator rather than the NOT keyword.
//   - a bare '"""' run recognized while scanning is routed to the
//     multiline-string scanner instead (handled by the caller via Peek
//     before this function is invoked — see NextToken's '"' case).
func readIdentifierOrKeyword(lex *Lexer, line, column int) Token {
	start := lex.Position
	lex.Advance()
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	typ := lookupIdent(literal)

	if typ == NOT && lex.Current == '=' {
		lex.Advance()
		return NewTokenWithMetadata(NOT_EQ, "NOT=", line, column)
	}

	tok := NewTokenWithMetadata(typ, literal, line, column)
	if typ == BOOLEAN {
		tok.Literal = literal // keep TRUE/FALSE spelling; parser checks case
	}
	if typ == DISPLAY && lex.Current == '"' {
		inline := readStringLiteral(lex, lex.Line, lex.Column)
		tok.HasInline = true
		tok.InlineString = inline.Literal
	}
	return tok
}
