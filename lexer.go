package packet

import (
	"fmt"
	"math"
)

type TokenKind uint8

const (
	TokenOpen TokenKind = iota
	TokenClose
	TokenComma
	TokenInteger
)

func (k TokenKind) String() string {
	switch k {
	case TokenOpen:
		return "'['"
	case TokenClose:
		return "']'"
	case TokenComma:
		return "','"
	case TokenInteger:
		return "integer"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// Token is a lexical unit of a packet line. Value is only meaningful for
// TokenInteger; Offset is the byte offset of the token's first character.
type Token struct {
	Kind   TokenKind
	Value  int64
	Offset int
}

// LexError reports a character outside the packet alphabet.
type LexError struct {
	Char   rune
	Offset int
	Err    error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex: offset %d: %v %q", e.Offset, e.Err, e.Char)
}

func (e *LexError) Unwrap() error { return e.Err }

// Lex splits a single packet line into tokens in one left-to-right pass.
// Consecutive digits coalesce into a single TokenInteger which is flushed
// as soon as a delimiter (or the end of the line) is seen.
func Lex(line string) (tokens []Token, err error) {
	tokens = make([]Token, 0, len(line))

	var value int64
	start := -1
	flush := func() {
		if start < 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenInteger, Value: value, Offset: start})
		value, start = 0, -1
	}

	for i, r := range line {
		if isDigit(r) {
			d := int64(r - '0')
			if value > (math.MaxInt64-d)/10 {
				return nil, &LexError{Char: r, Offset: i, Err: ErrIntegerOverflow}
			}
			if start < 0 {
				start = i
			}
			value = value*10 + d
			continue
		}

		flush()
		switch r {
		case '[':
			tokens = append(tokens, Token{Kind: TokenOpen, Offset: i})
		case ']':
			tokens = append(tokens, Token{Kind: TokenClose, Offset: i})
		case ',':
			tokens = append(tokens, Token{Kind: TokenComma, Offset: i})
		default:
			return nil, &LexError{Char: r, Offset: i, Err: ErrUnexpectedChar}
		}
	}
	flush()

	return
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
