package packet

import (
	"errors"
	"strconv"
	"strings"
)

type Kind int

var (
	ErrUnexpectedChar  = errors.New("unexpected character")
	ErrIntegerOverflow = errors.New("integer overflows int64")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of packet")
	ErrUnbalanced      = errors.New("unbalanced brackets")
	ErrTrailingTokens  = errors.New("trailing tokens after packet")
	ErrTooDeep         = errors.New("packet nesting too deep")
)

const (
	KindList Kind = iota
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindInteger:
		return "integer"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one element of a parsed packet. Lists own their children
// exclusively and are never mutated after parsing.
type Node struct {
	Kind
	Value int64
	List  []*Node
}

func (n *Node) String() string {
	var sb strings.Builder
	n.appendToBuilder(&sb)
	return sb.String()
}

func (n *Node) appendToBuilder(sb *strings.Builder) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindList:
		sb.WriteByte('[')
		for i, c := range n.List {
			if i > 0 {
				sb.WriteByte(',')
			}
			c.appendToBuilder(sb)
		}
		sb.WriteByte(']')
	case KindInteger:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
	}
}
