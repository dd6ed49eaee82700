package packet

import (
	"fmt"
)

type Parser interface {
	Parse(text string) (n *Node, err error)
	ParseItem(c *Cursor) (n *Node, err error)
	ParseList(c *Cursor) (n *Node, err error)
}

// MaxDepth is the list nesting limit enforced by LimitedParser.
const MaxDepth = 256

// ParseError reports a grammar violation at a byte offset of the line.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cursor walks an immutable token slice strictly forward.
type Cursor struct {
	tokens []Token
	pos    int
	end    int
}

// NewCursor creates a cursor over tokens. end is the offset reported for
// errors found after the last token, normally the length of the line.
func NewCursor(tokens []Token, end int) *Cursor {
	return &Cursor{tokens: tokens, end: end}
}

func (c *Cursor) Peek() (t Token, ok bool) {
	if c.pos >= len(c.tokens) {
		return
	}
	return c.tokens[c.pos], true
}

func (c *Cursor) Advance() (t Token, ok bool) {
	t, ok = c.Peek()
	if ok {
		c.pos++
	}
	return
}

func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// Offset is the byte offset of the next token, or end when exhausted.
func (c *Cursor) Offset() int {
	if t, ok := c.Peek(); ok {
		return t.Offset
	}
	return c.end
}

type parser struct {
	maxDepth int
}

var LimitedParser = parser{maxDepth: MaxDepth}
var FullParser = parser{maxDepth: 0}

var _ Parser = FullParser

// Parse parses a single packet line with LimitedParser.
func Parse(text string) (n *Node, err error) {
	return LimitedParser.Parse(text)
}

func (e parser) Parse(text string) (n *Node, err error) {
	var tokens []Token
	tokens, err = Lex(text)
	if err != nil {
		return
	}

	c := NewCursor(tokens, len(text))
	n, err = e.ParseItem(c)
	if err != nil {
		return nil, err
	}
	if !c.Done() {
		return nil, &ParseError{Offset: c.Offset(), Err: ErrTrailingTokens}
	}

	return
}

// ParseItem parses `'[' list ']' | integer` starting at the cursor.
func (e parser) ParseItem(c *Cursor) (n *Node, err error) {
	return e.parseItem(c, 0)
}

// ParseList parses the possibly empty, comma separated contents of a list.
// The closing bracket is left for the caller.
func (e parser) ParseList(c *Cursor) (n *Node, err error) {
	return e.parseList(c, 0)
}

func (e parser) parseItem(c *Cursor, depth int) (n *Node, err error) {
	offset := c.Offset()
	t, ok := c.Advance()
	if !ok {
		return nil, &ParseError{Offset: offset, Err: ErrUnexpectedEnd}
	}

	switch t.Kind {
	case TokenInteger:
		return &Node{Kind: KindInteger, Value: t.Value}, nil
	case TokenOpen:
		if e.maxDepth > 0 && depth >= e.maxDepth {
			return nil, &ParseError{Offset: t.Offset, Err: ErrTooDeep}
		}

		n, err = e.parseList(c, depth+1)
		if err != nil {
			return nil, err
		}

		offset = c.Offset()
		t, ok = c.Advance()
		if !ok {
			return nil, &ParseError{Offset: offset, Err: ErrUnbalanced}
		}
		if t.Kind != TokenClose {
			return nil, &ParseError{Offset: offset, Err: fmt.Errorf("%w: found %v", ErrUnbalanced, t.Kind)}
		}
		return n, nil
	default:
		return nil, &ParseError{Offset: t.Offset, Err: fmt.Errorf("%w %v, expected '[' or integer", ErrUnexpectedToken, t.Kind)}
	}
}

func (e parser) parseList(c *Cursor, depth int) (n *Node, err error) {
	n = &Node{
		Kind: KindList,
		List: make([]*Node, 0, 10),
	}

	// only an item can start a non-empty list; anything else is left for
	// the caller's closing bracket check:
	t, ok := c.Peek()
	if !ok || (t.Kind != TokenOpen && t.Kind != TokenInteger) {
		return
	}

	var child *Node
	child, err = e.parseItem(c, depth)
	if err != nil {
		return nil, err
	}
	n.List = append(n.List, child)

	n.List, err = e.parseListTail(c, depth, n.List)
	if err != nil {
		return nil, err
	}

	return
}

func (e parser) parseListTail(c *Cursor, depth int, items []*Node) ([]*Node, error) {
	for {
		t, ok := c.Peek()
		if !ok || t.Kind != TokenComma {
			return items, nil
		}
		c.Advance()

		child, err := e.parseItem(c, depth)
		if err != nil {
			return nil, err
		}
		items = append(items, child)
	}
}
