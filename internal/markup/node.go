package markup

import (
	"html"
	"strings"
)

// Node is any renderable fragment of markup. Implementations serialize
// themselves into the supplied builder; callers treat node content as opaque
// and pass it through without inspection.
type Node interface {
	WriteHTML(b *strings.Builder)
}

// Text is character data. It is escaped on serialization.
type Text string

// WriteHTML writes the escaped text content.
func (t Text) WriteHTML(b *strings.Builder) {
	b.WriteString(html.EscapeString(string(t)))
}

// Raw is pre-rendered markup emitted verbatim. The caller is responsible for
// its well-formedness.
type Raw string

// WriteHTML writes the raw content without escaping.
func (r Raw) WriteHTML(b *strings.Builder) {
	b.WriteString(string(r))
}

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// voidElements lists tags serialized without a closing tag. Children appended
// to a void element are ignored at render time.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {}, "track": {},
	"wbr": {},
}

// Element is a markup element with an ordered attribute list and child nodes.
// Attribute insertion order is preserved; setting an existing key overwrites
// its value in place without changing its position.
type Element struct {
	tag      string
	attrs    []Attr
	children []Node
}

// NewElement creates an element with the given tag and children.
func NewElement(tag string, children ...Node) *Element {
	return &Element{tag: tag, children: children}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// SetAttr sets an attribute, overwriting in place when the key already exists.
func (e *Element) SetAttr(key, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
	return e
}

// Attr returns the value of the named attribute and whether it is set.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attribute list in insertion order.
func (e *Element) Attrs() []Attr {
	return e.attrs
}

// SetClasses sets the class attribute from the supplied class list. An empty
// list leaves the attribute unset.
func (e *Element) SetClasses(classes ClassList) *Element {
	if len(classes) == 0 {
		return e
	}
	return e.SetAttr("class", classes.String())
}

// Append adds child nodes after the existing children.
func (e *Element) Append(children ...Node) *Element {
	e.children = append(e.children, children...)
	return e
}

// Children returns the child nodes in order.
func (e *Element) Children() []Node {
	return e.children
}

// WriteHTML serializes the element, its attributes and its children.
func (e *Element) WriteHTML(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if _, void := voidElements[e.tag]; void {
		return
	}

	for _, child := range e.children {
		child.WriteHTML(b)
	}

	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

// Render serializes a node to its HTML string form.
func Render(node Node) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	node.WriteHTML(&b)
	return b.String()
}

// RenderAll serializes a sequence of nodes back to back.
func RenderAll(nodes ...Node) string {
	var b strings.Builder
	for _, node := range nodes {
		if node == nil {
			continue
		}
		node.WriteHTML(&b)
	}
	return b.String()
}
