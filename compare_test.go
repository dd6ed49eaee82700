package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want Verdict
	}{
		{"[1,1,3,1,1]", "[1,1,5,1,1]", Less},
		{"[[1],[2,3,4]]", "[[1],4]", Less},
		{"[9]", "[[8,7,6]]", Greater},
		{"[[4,4],4,4]", "[[4,4],4,4,4]", Less},
		{"[7,7,7,7]", "[7,7,7]", Greater},
		{"[]", "[3]", Less},
		{"[[[]]]", "[[]]", Greater},
		{"[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", Greater},
		{"[]", "[]", Equal},
		{"[[]]", "[]", Greater},
		{"3", "[3]", Equal},
		{"[3]", "[[[3]]]", Equal},
		{"[3,1]", "[[[3]],0]", Greater},
		{"[[],1]", "[[],2]", Less},
		{"[10]", "[9]", Greater},
		{"[1,2]", "[1,2,[]]", Less},
		{"[]", "[[]]", Less},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, Compare(b, a), "anti-symmetry")
			assert.Equal(t, tt.want == Less, a.Less(b))
		})
	}
}

func TestCompare_ShortCircuit(t *testing.T) {
	// the first deciding element wins even when later elements disagree
	assert.Equal(t, Less, Compare(MustParse("[1,9,9]"), MustParse("[2,0,0]")))
	assert.Equal(t, Greater, Compare(MustParse("[[2],0]"), MustParse("[1,100]")))
}

func TestCompare_Reflexive(t *testing.T) {
	for _, p := range canonicalPairs(t) {
		assert.Equal(t, Equal, Compare(p.Left, p.Left), p.Left.String())
		assert.Equal(t, Equal, Compare(p.Right, p.Right), p.Right.String())
	}
}

func TestCompare_PrefixRule(t *testing.T) {
	for _, p := range canonicalPairs(t) {
		for _, n := range []*Node{p.Left, p.Right} {
			if n.Kind != KindList {
				continue
			}
			longer := List(append(append([]*Node{}, n.List...), Int(0))...)
			assert.Equal(t, Less, Compare(n, longer), n.String())
			assert.Equal(t, Greater, Compare(longer, n), n.String())
		}
	}
}

func TestCompare_PromotionEquivalence(t *testing.T) {
	for _, v := range []int64{0, 1, 7, 10, 9223372036854775807} {
		assert.Equal(t, Equal, Compare(Int(v), List(Int(v))))
		assert.Equal(t, Equal, Compare(List(Int(v)), Int(v)))
	}
}

func TestCompare_DoesNotMutate(t *testing.T) {
	a, b := MustParse("[4,[5]]"), MustParse("[[4],5]")
	Compare(a, b)
	assert.Equal(t, "[4,[5]]", a.String())
	assert.Equal(t, "[[4],5]", b.String())
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "greater", Greater.String())
}
