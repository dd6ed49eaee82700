package packet

import (
	"sort"
)

// Dividers are the two packets inserted among all others to compute the
// decoder key.
var Dividers = [2]*Node{
	MustParse("[[2]]"),
	MustParse("[[6]]"),
}

// Sort orders packets in place, keeping the input order of equal packets.
func Sort(packets []*Node) {
	sort.SliceStable(packets, func(i, j int) bool {
		return packets[i].Less(packets[j])
	})
}

// DecoderKey sorts every packet of pairs together with the divider packets
// and returns the product of the dividers' 1-based positions.
func DecoderKey(pairs []Pair) int {
	packets := make([]*Node, 0, len(pairs)*2+len(Dividers))
	for _, p := range pairs {
		packets = append(packets, p.Left, p.Right)
	}
	for _, d := range Dividers {
		packets = append(packets, d)
	}
	Sort(packets)

	key := 1
	for i, n := range packets {
		for _, d := range Dividers {
			if n == d {
				key *= i + 1
			}
		}
	}
	return key
}
