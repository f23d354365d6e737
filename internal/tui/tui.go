// Package tui is a Bubble Tea front end for a draw poker session.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

var suitSymbols = map[poker.Suit]string{
	poker.Hearts:   "♥",
	poker.Clubs:    "♣",
	poker.Diamonds: "♦",
	poker.Spades:   "♠",
}

// Model is the Bubble Tea model for a session
type Model struct {
	session *game.Session
	logger  *log.Logger
	keys    keyMap
	help    help.Model

	cursor   int
	newCards map[int]bool // Indices dealt by the last draw
	message  string
	isError  bool
	width    int
	quitting bool
}

// NewModel creates a model driving session
func NewModel(session *game.Session, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		session:  session,
		logger:   logger.WithPrefix("tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		newCards: make(map[int]bool),
	}
}

// Run starts the program and blocks until the player quits
func Run(session *game.Session, logger *log.Logger) error {
	_, err := tea.NewProgram(NewModel(session, logger), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.session.Hand())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.session.Toggle(m.cursor)
		case key.Matches(msg, m.keys.Deal):
			m.deal()
		case key.Matches(msg, m.keys.Draw):
			m.draw()
		case key.Matches(msg, m.keys.Evaluate):
			m.evaluate()
		case key.Matches(msg, m.keys.Sort):
			m.sort()
		case key.Matches(msg, m.keys.Cheat):
			m.session.Cheat()
			m.setMessage(fmt.Sprintf("Cheat enabled: next deal has %d cards", m.session.Rules().HandSize()), false)
		}
	}
	return m, nil
}

func (m *Model) deal() {
	m.session.DealNewHand()
	m.cursor = 0
	m.newCards = make(map[int]bool)
	m.setMessage("", false)
}

func (m *Model) draw() {
	replaced, err := m.session.Draw()
	if err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.newCards = make(map[int]bool, len(replaced))
	for _, i := range replaced {
		m.newCards[i] = true
	}
	m.setMessage("", false)
}

func (m *Model) evaluate() {
	result, err := m.session.Evaluate()
	if err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.setMessage(fmt.Sprintf("Your Hand: %s", result.Category), false)
}

func (m *Model) sort() {
	if err := m.session.Sort(); err != nil {
		m.setMessage(err.Error(), true)
		return
	}
	m.newCards = make(map[int]bool)
}

func (m *Model) setMessage(msg string, isError bool) {
	if isError {
		m.logger.Debug("Action rejected", "reason", msg)
	}
	m.message = msg
	m.isError = isError
}

// Message returns the text shown under the hand
func (m *Model) Message() string {
	return m.message
}

// Cursor returns the index of the highlighted card
func (m *Model) Cursor() int {
	return m.cursor
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("♠ ♥ Draw Poker ♦ ♣"))
	b.WriteString("\n\n")

	hand := m.session.Hand()
	if len(hand) == 0 {
		b.WriteString(InfoStyle.Render("Press n to deal a hand"))
	} else {
		b.WriteString(m.renderHand(hand))
	}
	b.WriteString("\n\n")

	b.WriteString(StatusStyle.Render(m.session.Status().String()))
	b.WriteString("\n")

	if m.message != "" {
		style := SuccessStyle
		if m.isError {
			style = ErrorStyle
		}
		b.WriteString(style.Render(m.message))
	}
	b.WriteString("\n\n")

	m.keys.Draw.SetEnabled(m.session.CanDraw())
	m.keys.Evaluate.SetEnabled(m.session.CanEvaluate())
	m.keys.Sort.SetEnabled(m.session.CanSort())
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderHand(hand []poker.Card) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		style := BlackCardStyle
		if card.Suit() == poker.Hearts || card.Suit() == poker.Diamonds {
			style = RedCardStyle
		}
		if m.session.IsSelected(i) {
			style = style.Inherit(SelectedCardStyle)
		}
		if m.newCards[i] {
			style = style.Inherit(NewCardStyle)
		}

		text := renderCard(card)
		if i == m.cursor {
			text = "[" + text + "]"
		} else {
			text = " " + text + " "
		}
		cards[i] = style.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderCard(card poker.Card) string {
	symbol, ok := suitSymbols[card.Suit()]
	if !ok {
		return card.String()
	}
	return strings.TrimSuffix(card.String(), string(card.Suit()[0])) + symbol
}
