/*
Package builderdbg implements helpers to debug a builder tree.

Dump prints a tree as an indented diagram, one line per node:

	html
	├── head
	│   └── <title> "hello"
	└── body
	    └── <img src="/icon.png"/>
*/
package builderdbg

import (
	"strconv"

	"github.com/heathj/gomarkup/builder"
	tp "github.com/xlab/treeprint"
)

// Dump returns a tree diagram of node and its descendants.
func Dump(node builder.Node) string {
	if node == nil {
		return ""
	}
	p := tp.New()
	p.SetValue(label(node))
	for _, ch := range node.Children() {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, node builder.Node) {
	if len(node.Children()) == 0 {
		p.AddNode(label(node))
		return
	}
	branch := p.AddBranch(label(node))
	for _, ch := range node.Children() {
		ppt(branch, ch)
	}
}

func label(node builder.Node) string {
	e, ok := node.(*builder.Element)
	if !ok {
		return node.NodeName()
	}

	s := "<" + e.Tag
	if e.Attributes.Len() > 0 {
		s += " " + e.Attributes.String()
	}
	if e.SelfClosing && !e.HasChildNodes() {
		s += "/"
	}
	s += ">"
	if e.Text != "" {
		s += " " + strconv.Quote(e.Text)
	}
	return s
}
