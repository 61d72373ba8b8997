package builder

import "strings"

// Node is anything that can be placed in a builder tree.
type Node interface {
	NodeName() string
	Children() NodeList
	String() string
}

// NodeList holds child nodes in insertion order.
type NodeList []Node

func (l NodeList) Len() int {
	return len(l)
}

// String concatenates the serialization of every node in order.
func (l NodeList) String() string {
	var b strings.Builder
	for _, n := range l {
		b.WriteString(n.String())
	}
	return b.String()
}

var (
	_ Node = &Element{}
	_ Node = &Section{}
	_ Node = &Document{}
)
