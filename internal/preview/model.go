package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardkit/cardkit/internal/deck"
)

const (
	headerHeight = 3
	footerHeight = 3
)

// Model is the interactive deck preview: a card selector on top of a
// viewport showing the selected card's rendered markup.
type Model struct {
	deck     *deck.Deck
	cursor   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel creates a preview model for the given deck.
func NewModel(d *deck.Deck) Model {
	return Model{deck: d}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		listHeight := len(m.deck.Cards)
		viewportHeight := m.height - headerHeight - footerHeight - listHeight
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshContent()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.deck.Cards)-1 {
				m.cursor++
				m.refreshContent()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the current model state.
func (m Model) View() string {
	if !m.ready {
		return "Loading deck..."
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render(m.deck.Name))
	content.WriteString("\n")
	content.WriteString(m.renderCardList())
	content.WriteString("\n")
	content.WriteString(m.viewport.View())
	content.WriteString("\n")
	content.WriteString(footerStyle.Render("↑/↓ select card • scroll viewport • q quit"))

	return content.String()
}

func (m Model) renderCardList() string {
	var lines []string
	for i, c := range m.deck.Cards {
		label := c.ID
		if c.Title != "" {
			label += " — " + c.Title
		}
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(label))
		} else {
			lines = append(lines, itemStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) refreshContent() {
	if !m.ready || len(m.deck.Cards) == 0 {
		return
	}
	m.viewport.SetContent(cardHTML(m.deck.Cards[m.cursor]))
}
