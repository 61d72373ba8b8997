package builder

import "strings"

// Element is a single markup node with a tag, ordered attributes, optional
// text and children.
type Element struct {
	Tag         string
	Text        string
	SelfClosing bool
	Attributes  *NamedNodeMap
	ChildNodes  NodeList
}

type elementConfig struct {
	classes     []string
	attrs       []*Attr
	text        string
	selfClosing bool
}

// ElementOption configures an element at construction time.
type ElementOption func(*elementConfig)

// WithClass adds class names. Repeated calls accumulate.
func WithClass(names ...string) ElementOption {
	return func(c *elementConfig) {
		c.classes = append(c.classes, names...)
	}
}

// WithAttr adds a named attribute. Underscores in name become hyphens.
func WithAttr(name string, value interface{}) ElementOption {
	return func(c *elementConfig) {
		c.attrs = append(c.attrs, &Attr{Name: NormalizeAttrName(name), Value: value})
	}
}

func WithText(text string) ElementOption {
	return func(c *elementConfig) {
		c.text = text
	}
}

// WithSelfClosing renders the element as a void tag when it has no children.
func WithSelfClosing() ElementOption {
	return func(c *elementConfig) {
		c.selfClosing = true
	}
}

// NewElement creates an element. The class attribute, when any class is
// given, always comes first; the remaining attributes follow in the order
// they were supplied.
func NewElement(tag string, opts ...ElementOption) *Element {
	cfg := &elementConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	attrs := NewNamedNodeMap()
	if len(cfg.classes) > 0 {
		attrs.SetNamedItem(&Attr{Name: "class", Value: strings.Join(cfg.classes, " ")})
	}
	for _, a := range cfg.attrs {
		attrs.SetNamedItem(a)
	}

	return &Element{
		Tag:         tag,
		Text:        cfg.text,
		SelfClosing: cfg.selfClosing,
		Attributes:  attrs,
	}
}

func (e *Element) NodeName() string {
	return e.Tag
}

func (e *Element) Children() NodeList {
	return e.ChildNodes
}

func (e *Element) HasChildNodes() bool {
	return len(e.ChildNodes) > 0
}

// SetText replaces the element text and returns the element.
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// AppendChild adds on as the last child and returns the element itself so
// calls can be chained.
func (e *Element) AppendChild(on Node) *Element {
	e.ChildNodes = append(e.ChildNodes, on)
	return e
}

// String serializes the element. Children take precedence over the
// self-closing flag; an element without either renders its text on a line
// of its own, even when the text is empty.
func (e *Element) String() string {
	open := "<" + e.Tag + " " + e.Attributes.String()

	if e.HasChildNodes() {
		return open + ">\n" + e.Text + e.ChildNodes.String() + "\n</" + e.Tag + ">\n"
	}
	if e.SelfClosing {
		return open + "/>"
	}
	return open + ">\n" + e.Text + "\n</" + e.Tag + ">\n"
}
