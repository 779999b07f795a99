package deck

import (
	"strings"

	"github.com/cardkit/cardkit/internal/card"
	"github.com/cardkit/cardkit/internal/markup"
)

// DefaultStylesheet is linked by full-page output unless the deck overrides it.
const DefaultStylesheet = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"

// BuildCard translates a card definition into its markup node.
func BuildCard(c Card) *markup.Element {
	root := card.Card(card.ContainerProps{Class: markup.Classes(c.Class...)})

	if c.Header != "" {
		root.Append(card.Header(card.ContainerProps{
			Children: []markup.Node{markup.Text(c.Header)},
		}))
	}

	var img markup.Node
	variant := card.VariantDefault
	if c.Image != nil {
		// The variant string is validated upstream; unknown values fall
		// back to the default variant.
		variant, _ = card.ParseImageVariant(c.Image.Variant)
		img = card.Image(card.ImageProps{
			Variant: variant,
			Class:   markup.Classes(c.Image.Class...),
			Src:     c.Image.Src,
			Alt:     c.Image.Alt,
		})
	}

	if img != nil && variant != card.VariantBottom {
		root.Append(img)
	}

	if c.Overlay != nil {
		root.Append(buildOverlay(*c.Overlay))
	}

	if body := buildBody(c); body != nil {
		root.Append(body)
	}

	if img != nil && variant == card.VariantBottom {
		root.Append(img)
	}

	if c.Footer != "" {
		root.Append(card.Footer(card.ContainerProps{
			Children: []markup.Node{markup.Text(c.Footer)},
		}))
	}

	return root
}

func buildOverlay(o Overlay) *markup.Element {
	var children []markup.Node
	if o.Text != "" {
		children = append(children, markup.Text(o.Text))
	}
	if o.HTML != "" {
		children = append(children, markup.Raw(o.HTML))
	}

	return card.ImageOverlay(card.ImageOverlayProps{
		Children: children,
		Class:    markup.Classes(o.Class...),
	})
}

func buildBody(c Card) *markup.Element {
	var children []markup.Node

	if c.Title != "" {
		children = append(children, card.Title(card.TextProps{Text: c.Title}))
	}
	if c.Subtitle != "" {
		children = append(children, card.Subtitle(card.TextProps{Text: c.Subtitle}))
	}
	if c.Text != "" {
		children = append(children, card.Text(card.TextProps{Text: c.Text}))
	}
	for _, link := range c.Links {
		children = append(children, card.Link(card.LinkProps{Href: link.Href, Text: link.Text}))
	}

	if len(children) == 0 {
		return nil
	}

	return card.Body(card.ContainerProps{Children: children})
}

// BuildDeck translates a deck into its top-level markup nodes.
func BuildDeck(d *Deck) []markup.Node {
	cards := make([]markup.Node, 0, len(d.Cards))
	for _, c := range d.Cards {
		cards = append(cards, BuildCard(c))
	}

	if d.Settings.Group {
		return []markup.Node{card.Group(card.ContainerProps{Children: cards})}
	}
	return cards
}

// RenderDeck renders the deck as an HTML fragment, one top-level node per line.
func RenderDeck(d *Deck) string {
	nodes := BuildDeck(d)
	rendered := make([]string, 0, len(nodes))
	for _, node := range nodes {
		rendered = append(rendered, markup.Render(node))
	}
	return strings.Join(rendered, "\n")
}

// RenderPage renders the deck wrapped in a minimal HTML5 document linking the
// configured stylesheet.
func RenderPage(d *Deck) string {
	stylesheet := d.Settings.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}

	head := markup.NewElement("head",
		markup.NewElement("meta").SetAttr("charset", "utf-8"),
		markup.NewElement("meta").
			SetAttr("name", "viewport").
			SetAttr("content", "width=device-width, initial-scale=1"),
		markup.NewElement("title", markup.Text(d.Name)),
		markup.NewElement("link").
			SetAttr("rel", "stylesheet").
			SetAttr("href", stylesheet),
	)

	body := markup.NewElement("body", BuildDeck(d)...)

	page := markup.NewElement("html", head, body).SetAttr("lang", "en")

	return "<!doctype html>\n" + markup.Render(page) + "\n"
}
