package card

import "github.com/cardkit/cardkit/internal/markup"

// ContainerProps defines the configuration options shared by the container
// components (Card, Body, Header, Footer).
type ContainerProps struct {
	// Children is the nested content, passed through unmodified.
	Children []markup.Node
	// Class holds extra style classes appended after the fixed class.
	Class markup.ClassList
}

// TextProps defines the configuration options for the text components.
type TextProps struct {
	// Text is the character data. It is escaped on serialization.
	Text string
	// Class holds extra style classes appended after the fixed class.
	Class markup.ClassList
}

// LinkProps defines the configuration options for a Link.
type LinkProps struct {
	// Href is the link target, passed through verbatim.
	Href string
	// Text is the link label.
	Text string
	// Class holds extra style classes appended after the fixed class.
	Class markup.ClassList
}

// container builds a div carrying a fixed class token plus caller classes.
func container(token string, props ContainerProps) *markup.Element {
	classes := markup.Merge(markup.Classes(token), props.Class)
	return markup.NewElement("div", props.Children...).SetClasses(classes)
}

// Card renders the outer card container.
func Card(props ContainerProps) *markup.Element {
	return container("card", props)
}

// Body renders the padded content region of a card.
func Body(props ContainerProps) *markup.Element {
	return container("card-body", props)
}

// Header renders the header strip of a card.
func Header(props ContainerProps) *markup.Element {
	return container("card-header", props)
}

// Footer renders the footer strip of a card.
func Footer(props ContainerProps) *markup.Element {
	return container("card-footer", props)
}

// Title renders the card's main heading.
func Title(props TextProps) *markup.Element {
	classes := markup.Merge(markup.Classes("card-title"), props.Class)
	return markup.NewElement("h5", markup.Text(props.Text)).SetClasses(classes)
}

// Subtitle renders a secondary heading below the title.
func Subtitle(props TextProps) *markup.Element {
	classes := markup.Merge(markup.Classes("card-subtitle"), props.Class)
	return markup.NewElement("h6", markup.Text(props.Text)).SetClasses(classes)
}

// Text renders a paragraph of body copy.
func Text(props TextProps) *markup.Element {
	classes := markup.Merge(markup.Classes("card-text"), props.Class)
	return markup.NewElement("p", markup.Text(props.Text)).SetClasses(classes)
}

// Link renders an anchor styled as a card link.
func Link(props LinkProps) *markup.Element {
	classes := markup.Merge(markup.Classes("card-link"), props.Class)
	return markup.NewElement("a", markup.Text(props.Text)).
		SetClasses(classes).
		SetAttr("href", props.Href)
}

// Group renders a set of cards as a single attached unit.
func Group(props ContainerProps) *markup.Element {
	return container("card-group", props)
}
