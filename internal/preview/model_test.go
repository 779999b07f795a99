package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedModel(t *testing.T) Model {
	t.Helper()

	m := NewModel(sampleDeck())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	model, ok := updated.(Model)
	require.True(t, ok)
	require.True(t, model.ready)
	return model
}

func TestModelViewBeforeSizing(t *testing.T) {
	m := NewModel(sampleDeck())

	assert.Contains(t, m.View(), "Loading deck...")
}

func TestModelViewAfterSizing(t *testing.T) {
	m := sizedModel(t)

	view := m.View()

	assert.Contains(t, view, "landing")
	assert.Contains(t, view, "hero")
	assert.Contains(t, view, "details")
	assert.Contains(t, view, "card-img-top")
}

func TestModelCursorMovement(t *testing.T) {
	m := sizedModel(t)
	require.Equal(t, 0, m.cursor)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	// cursor stops at the last card
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModelQuitKeys(t *testing.T) {
	m := sizedModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
