package packet

// Pair is two packets read one after the other; Left is expected to be
// ordered before Right.
type Pair struct {
	Left  *Node
	Right *Node
}

func (p Pair) Verdict() Verdict {
	return Compare(p.Left, p.Right)
}

// Ordered reports whether the pair is in the right order. An undecided
// (Equal) pair is not.
func (p Pair) Ordered() bool {
	return p.Verdict() == Less
}

// SumOrdered returns the sum of the 1-based indices of all ordered pairs.
func SumOrdered(pairs []Pair) (sum int) {
	for i, p := range pairs {
		if p.Ordered() {
			sum += i + 1
		}
	}
	return
}
