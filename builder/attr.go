package builder

import (
	"fmt"
	"strings"
)

// Attr is a single name/value pair on an element. The value is converted to
// text only when the element is rendered.
type Attr struct {
	Name  string
	Value interface{}
}

func (a *Attr) String() string {
	return a.Name + "=\"" + fmt.Sprint(a.Value) + "\""
}

// NormalizeAttrName turns identifier-friendly names into markup names,
// e.g. data_id becomes data-id.
func NormalizeAttrName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// NewNamedNodeMap returns an empty attribute map.
func NewNamedNodeMap() *NamedNodeMap {
	return &NamedNodeMap{
		Attrs: map[string]*Attr{},
	}
}

// NamedNodeMap is an attribute mapping that remembers insertion order.
type NamedNodeMap struct {
	Attrs map[string]*Attr
	order []string
}

func (n *NamedNodeMap) Len() int {
	return len(n.order)
}

func (n *NamedNodeMap) GetNamedItem(name string) *Attr {
	if v, ok := n.Attrs[name]; ok {
		return v
	}

	return nil
}

// SetNamedItem adds s to the map. An attribute with the same name keeps its
// position and gets the new value; the replaced attribute is returned.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}

	oldAttr := n.GetNamedItem(s.Name)
	if oldAttr == nil {
		n.Attrs[s.Name] = s
		n.order = append(n.order, s.Name)
		return nil
	}

	n.Attrs[s.Name] = s
	return oldAttr
}

// Items returns the attributes in insertion order.
func (n *NamedNodeMap) Items() []*Attr {
	items := make([]*Attr, 0, len(n.order))
	for _, name := range n.order {
		items = append(items, n.Attrs[name])
	}
	return items
}

// String renders the attributes space separated, in insertion order.
func (n *NamedNodeMap) String() string {
	if n == nil {
		return ""
	}
	rendered := make([]string, 0, len(n.order))
	for _, a := range n.Items() {
		rendered = append(rendered, a.String())
	}
	return strings.Join(rendered, " ")
}
