package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type elementRenderTestcase struct {
	name     string
	elem     func() *Element
	expected string
}

var elementRenderTests = []elementRenderTestcase{
	{"plain leaf without text", func() *Element {
		return NewElement("p")
	}, "<p >\n\n</p>\n"},
	{"leaf with text", func() *Element {
		e := NewElement("title")
		e.Text = "hello"
		return e
	}, "<title >\nhello\n</title>\n"},
	{"leaf with text option", func() *Element {
		return NewElement("h1", WithClass("main-text"), WithText("Test"))
	}, "<h1 class=\"main-text\">\nTest\n</h1>\n"},
	{"self closing leaf", func() *Element {
		return NewElement("img", WithSelfClosing(), WithAttr("src", "/icon.png"))
	}, "<img src=\"/icon.png\"/>"},
	{"self closing leaf without attributes", func() *Element {
		return NewElement("br", WithSelfClosing())
	}, "<br />"},
	{"self closing leaf ignores text", func() *Element {
		return NewElement("hr", WithSelfClosing(), WithText("ignored"))
	}, "<hr />"},
	{"children", func() *Element {
		return NewElement("ul").
			AppendChild(NewElement("li", WithText("a"))).
			AppendChild(NewElement("li", WithText("b")))
	}, "<ul >\n<li >\na\n</li>\n<li >\nb\n</li>\n\n</ul>\n"},
	{"text before children", func() *Element {
		return NewElement("div", WithText("intro")).
			AppendChild(NewElement("br", WithSelfClosing()))
	}, "<div >\nintro<br />\n</div>\n"},
	{"children override self closing", func() *Element {
		return NewElement("div", WithSelfClosing(), WithAttr("id", "x")).
			AppendChild(NewElement("img", WithSelfClosing(), WithAttr("src", "/a.png")))
	}, "<div id=\"x\">\n<img src=\"/a.png\"/>\n</div>\n"},
	{"non string attribute value", func() *Element {
		return NewElement("td", WithAttr("colspan", 2), WithText("x"))
	}, "<td colspan=\"2\">\nx\n</td>\n"},
}

func TestElementRender(t *testing.T) {
	for _, tt := range elementRenderTests {
		runElementRenderTest(tt, t)
	}
}

func runElementRenderTest(tt elementRenderTestcase, t *testing.T) {
	t.Run(tt.name, func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, tt.expected, tt.elem().String())
	})
}

func TestElementAttributeOrder(t *testing.T) {
	e := NewElement("div",
		WithClass("a", "b"),
		WithAttr("id", "x"),
		WithAttr("data_foo", "y"),
	)
	assert.Equal(t, `class="a b" id="x" data-foo="y"`, e.Attributes.String())
	assert.Equal(t, "<div class=\"a b\" id=\"x\" data-foo=\"y\">\n\n</div>\n", e.String())
}

func TestElementClassComesFirst(t *testing.T) {
	e := NewElement("span",
		WithAttr("id", "x"),
		WithClass("a"),
		WithAttr("title", "t"),
		WithClass("b"),
	)
	assert.Equal(t, `class="a b" id="x" title="t"`, e.Attributes.String())
}

func TestElementNoClassEntryWithoutClasses(t *testing.T) {
	e := NewElement("a", WithClass(), WithAttr("href", "/"))
	assert.Nil(t, e.Attributes.GetNamedItem("class"))
	assert.Equal(t, 1, e.Attributes.Len())
}

func TestElementRenderIsIdempotent(t *testing.T) {
	e := NewElement("div", WithClass("c")).
		AppendChild(NewElement("p", WithText("x"))).
		AppendChild(NewElement("img", WithSelfClosing()))
	first := e.String()
	assert.Equal(t, first, e.String())
	assert.Len(t, e.ChildNodes, 2)
}

func TestElementSetTextOverwrites(t *testing.T) {
	e := NewElement("p", WithText("first"))
	assert.Same(t, e, e.SetText("second"))
	assert.Equal(t, "second", e.Text)
	assert.Equal(t, "<p >\nsecond\n</p>\n", e.String())
}

func TestElementTextIsNotEscaped(t *testing.T) {
	e := NewElement("p", WithText("a < b & c"), WithAttr("title", `say "hi"`))
	assert.Equal(t, "<p title=\"say \"hi\"\">\na < b & c\n</p>\n", e.String())
}

func TestElementAppendChildReturnsReceiver(t *testing.T) {
	parent := NewElement("div")
	child := NewElement("p")
	assert.Same(t, parent, parent.AppendChild(child))
	assert.Equal(t, NodeList{child}, parent.Children())
	assert.Equal(t, "div", parent.NodeName())
}
