package packet

type Verdict int

const (
	Less    Verdict = -1
	Equal   Verdict = 0
	Greater Verdict = 1
)

func (v Verdict) String() string {
	switch {
	case v < 0:
		return "less"
	case v > 0:
		return "greater"
	default:
		return "equal"
	}
}

// Compare orders two packets. Equal from a nested comparison means
// undecided: the enclosing list moves on to its next element.
func Compare(a, b *Node) Verdict {
	if a.Kind == KindInteger && b.Kind == KindInteger {
		switch {
		case a.Value < b.Value:
			return Less
		case a.Value > b.Value:
			return Greater
		default:
			return Equal
		}
	}

	return compareLists(promote(a), promote(b))
}

// Less reports whether a is ordered strictly before b.
func (a *Node) Less(b *Node) bool {
	return Compare(a, b) == Less
}

// promote wraps a lone integer in a new singleton list; lists are returned
// as is.
func promote(n *Node) []*Node {
	if n.Kind == KindInteger {
		return []*Node{n}
	}
	return n.List
}

func compareLists(a, b []*Node) Verdict {
	for i := 0; ; i++ {
		switch {
		case i >= len(a) && i >= len(b):
			return Equal
		case i >= len(a):
			return Less
		case i >= len(b):
			return Greater
		}

		if v := Compare(a[i], b[i]); v != Equal {
			return v
		}
	}
}
