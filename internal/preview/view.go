package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardkit/cardkit/internal/card"
	"github.com/cardkit/cardkit/internal/deck"
	"github.com/cardkit/cardkit/internal/markup"
)

// CardPanel renders a single card definition as a bordered terminal panel.
func CardPanel(c deck.Card, width int) string {
	var lines []string

	title := c.Title
	if title == "" {
		title = c.ID
	}
	lines = append(lines, panelTitleStyle.Render(title))

	if c.Subtitle != "" {
		lines = append(lines, sectionLabelStyle.Render(c.Subtitle))
	}
	if c.Header != "" {
		lines = append(lines, fmt.Sprintf("%s %s", sectionLabelStyle.Render("header:"), c.Header))
	}
	if c.Text != "" {
		lines = append(lines, c.Text)
	}

	if c.Image != nil {
		variant, _ := card.ParseImageVariant(c.Image.Variant)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			sectionLabelStyle.Render("image:"),
			classTokenStyle.Render(variant.ClassName()),
			c.Image.Src,
		))
	}

	if c.Overlay != nil {
		label := c.Overlay.Text
		if label == "" {
			label = "(markup)"
		}
		lines = append(lines, fmt.Sprintf("%s %s", sectionLabelStyle.Render("overlay:"), label))
	}

	for _, link := range c.Links {
		lines = append(lines, fmt.Sprintf("%s %s -> %s", sectionLabelStyle.Render("link:"), link.Text, link.Href))
	}

	if c.Footer != "" {
		lines = append(lines, sectionLabelStyle.Render(c.Footer))
	}

	if len(c.Class) > 0 {
		lines = append(lines, classTokenStyle.Render(strings.Join(c.Class, " ")))
	}

	panel := panelStyle
	if width > 0 {
		panel = panel.Width(width)
	}
	return panel.Render(strings.Join(lines, "\n"))
}

// DeckView renders every card of a deck as stacked panels. It is used when
// stdout is not a terminal and an interactive session cannot start.
func DeckView(d *deck.Deck, width int) string {
	sections := make([]string, 0, len(d.Cards)+1)
	sections = append(sections, titleStyle.Render(d.Name))

	for _, c := range d.Cards {
		sections = append(sections, CardPanel(c, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// cardHTML returns the serialized markup of a single card for the viewport.
func cardHTML(c deck.Card) string {
	return markup.Render(deck.BuildCard(c))
}
