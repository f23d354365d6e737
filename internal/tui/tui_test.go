package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	session := game.NewSession(poker.NewRuleSet(),
		game.WithRandom(func() float64 { return 0.9999999 }),
		game.WithLogger(logger))
	return NewModel(session, logger)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestModelBeforeDeal(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Draw Poker")
	assert.Contains(t, view, "Press n to deal a hand")
	assert.Contains(t, view, "Discards: 1 | Play Hand Size: 5 | Deck Cards: 52/52")

	press(m, runes("e"))
	assert.Equal(t, game.ErrNoHand.Error(), m.Message())
}

func TestModelPlaysAHand(t *testing.T) {
	m := newTestModel(t)

	press(m, runes("n"))
	view := m.View()
	assert.Contains(t, view, "6♥")
	assert.Contains(t, view, "Deck Cards: 47/52")

	for range 5 {
		press(m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 4, m.Cursor(), "cursor stops on the last card")

	press(m, runes("e"))
	assert.Equal(t, "Your Hand: Straight Flush", m.Message())
	assert.Contains(t, m.View(), "Your Hand: Straight Flush")

	press(m, runes("d"))
	assert.Equal(t, game.ErrHandPlayed.Error(), m.Message())
}

func TestModelDraw(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("n"), runes("x"), runes("d"))

	assert.Empty(t, m.Message())
	assert.True(t, m.newCards[0])
	assert.Contains(t, m.View(), "Discards: 0")

	press(m, runes("x"), runes("d"))
	assert.Equal(t, game.ErrNoRedraws.Error(), m.Message())
}

func TestModelCursor(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("n"))

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Cursor())

	press(m, runes("l"), runes("l"), runes("h"))
	assert.Equal(t, 1, m.Cursor())

	press(m, runes("n"))
	assert.Equal(t, 0, m.Cursor(), "a new deal resets the cursor")
}

func TestModelCheat(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("c"))
	assert.Contains(t, m.Message(), "14 cards")

	press(m, runes("n"))
	assert.Len(t, m.session.Hand(), 14)
	assert.Contains(t, m.View(), "Play Hand Size: 10")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestRenderCard(t *testing.T) {
	assert.Equal(t, "A♠", renderCard(poker.NewCard(poker.Ace, poker.Spades)))
	assert.Equal(t, "T♦", renderCard(poker.NewCard(poker.Ten, poker.Diamonds)))
	assert.Equal(t, "7(star)", renderCard(poker.NewCard(poker.Seven, "star")))
}
