package packet

func Int(v int64) (n *Node) {
	return &Node{
		Kind:  KindInteger,
		Value: v,
	}
}

func List(children ...*Node) (n *Node) {
	if children == nil {
		children = make([]*Node, 0, 0)
	}
	return &Node{
		Kind: KindList,
		List: children,
	}
}

// MustParse is like Parse but panics on malformed input. Intended for
// literals such as divider packets and test fixtures.
func MustParse(text string) (n *Node) {
	var err error
	n, err = Parse(text)
	if err != nil {
		panic(err)
	}
	return
}
