package packet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrIncompletePair = errors.New("pair must hold exactly two packets")

// maxLineSize bounds a single packet line.
const maxLineSize = 1 << 20

// ReadPairs reads blank line separated pairs of packets from r, parsing
// each line with Parse. The first malformed line aborts the read.
func ReadPairs(r io.Reader) ([]Pair, error) {
	return readPairs(r, Parse)
}

func readPairs(r io.Reader, parse func(string) (*Node, error)) (pairs []Pair, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)

	var (
		group     []*Node
		groupLine int
		lineNum   int
	)
	closeGroup := func() error {
		if len(group) == 0 {
			return nil
		}
		if len(group) != 2 {
			return fmt.Errorf("line %d: %w, got %d", groupLine, ErrIncompletePair, len(group))
		}
		pairs = append(pairs, Pair{Left: group[0], Right: group[1]})
		group = group[:0]
		return nil
	}

	for s.Scan() {
		lineNum++
		line := strings.TrimRight(s.Text(), "\r")
		if line == "" {
			if err = closeGroup(); err != nil {
				return nil, err
			}
			continue
		}

		if len(group) == 0 {
			groupLine = lineNum
		}

		var n *Node
		n, err = parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		group = append(group, n)
	}
	if err = s.Err(); err != nil {
		return nil, err
	}
	if err = closeGroup(); err != nil {
		return nil, err
	}

	return pairs, nil
}
