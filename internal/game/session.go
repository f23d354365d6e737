package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/poker"
)

// Result is the outcome of playing the selected cards
type Result struct {
	HandNumber int
	Category   poker.Category
	Cards      []poker.Card  // Played cards, sorted by rank descending
	Elapsed    time.Duration // From deal to evaluation
}

// Status summarises the counters a front end displays
type Status struct {
	HandNumber    int
	Redraws       int
	PlayHandSize  int
	DeckRemaining int
	DeckSize      int
	Played        bool
}

func (s Status) String() string {
	return fmt.Sprintf("Discards: %d | Play Hand Size: %d | Deck Cards: %d/%d",
		s.Redraws, s.PlayHandSize, s.DeckRemaining, s.DeckSize)
}

// Session runs consecutive draw poker hands for a single player. It is not
// safe for concurrent use.
type Session struct {
	rules  *poker.RuleSet
	random func() float64
	logger *log.Logger
	clock  quartz.Clock

	deck       *poker.Deck
	hand       []poker.Card
	selected   map[int]bool
	redraws    int
	played     bool
	handNumber int
	startedAt  time.Time
}

// NewSession creates a session over rules with a freshly shuffled deck and
// no hand dealt.
func NewSession(rules *poker.RuleSet, opts ...SessionOption) *Session {
	if rules == nil {
		panic("rules are required for a session")
	}

	cfg := defaultSessionConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Session{
		rules:    rules,
		random:   cfg.random,
		logger:   cfg.logger.WithPrefix("session"),
		clock:    cfg.clock,
		selected: make(map[int]bool),
	}
	s.reset()
	return s
}

// reset starts a new hand: new shuffled deck, empty hand, full redraws
func (s *Session) reset() {
	s.deck = poker.NewDeck(s.rules, s.random)
	s.deck.Shuffle()
	s.hand = nil
	clear(s.selected)
	s.redraws = s.rules.RedrawsAvailable()
	s.played = false
}

// Rules returns the rule set the session plays under
func (s *Session) Rules() *poker.RuleSet {
	return s.rules
}

// DealNewHand discards the current hand and deals HandSize cards, sorted by
// rank descending.
func (s *Session) DealNewHand() []poker.Card {
	s.reset()
	s.handNumber++
	s.startedAt = s.clock.Now()
	s.hand = s.deck.Deal(s.rules.HandSize())
	poker.SortByRank(s.hand)

	s.logger.Debug("Dealt hand",
		"hand", s.handNumber,
		"cards", poker.FormatCards(s.hand),
		"remaining", s.deck.Remaining())
	return s.Hand()
}

// Hand returns a copy of the player's hand
func (s *Session) Hand() []poker.Card {
	return slices.Clone(s.hand)
}

// Toggle flips the selection of the card at index. Out of range indices and
// an empty hand are ignored.
func (s *Session) Toggle(index int) {
	if index < 0 || index >= len(s.hand) {
		return
	}
	if s.selected[index] {
		delete(s.selected, index)
	} else {
		s.selected[index] = true
	}
}

// IsSelected reports whether the card at index is selected
func (s *Session) IsSelected(index int) bool {
	return s.selected[index]
}

// Selected returns the selected indices in ascending order
func (s *Session) Selected() []int {
	indices := make([]int, 0, len(s.selected))
	for i := range s.selected {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	return indices
}

// ClearSelection deselects every card
func (s *Session) ClearSelection() {
	clear(s.selected)
}

// Draw replaces every selected card with a card from the deck, in hand
// order, and uses up one redraw. It returns the replaced indices.
func (s *Session) Draw() ([]int, error) {
	if err := s.drawErr(); err != nil {
		return nil, err
	}

	indices := s.Selected()
	newCards := s.deck.Deal(len(indices))
	for i, idx := range indices {
		s.hand[idx] = newCards[i]
	}

	clear(s.selected)
	s.redraws--

	s.logger.Debug("Redrew cards",
		"count", len(indices),
		"cards", poker.FormatCards(s.hand),
		"redraws", s.redraws)
	return indices, nil
}

// Evaluate plays the selected cards and classifies them. The hand cannot be
// changed afterwards.
func (s *Session) Evaluate() (Result, error) {
	if err := s.evaluateErr(); err != nil {
		return Result{}, err
	}
	s.played = true

	played := make([]poker.Card, 0, len(s.selected))
	for _, idx := range s.Selected() {
		played = append(played, s.hand[idx])
	}

	category := poker.Classify(played, s.rules)
	s.logger.Debug("Played hand", "cards", poker.FormatCards(played))
	s.logger.Debug("Frequencies", "freq", poker.RankFrequencies(played))
	s.logger.Info("Hand evaluated", "hand", s.handNumber, "category", category)

	return Result{
		HandNumber: s.handNumber,
		Category:   category,
		Cards:      played,
		Elapsed:    s.clock.Since(s.startedAt),
	}, nil
}

// Sort orders the hand by rank descending and clears the selection
func (s *Session) Sort() error {
	if err := s.sortErr(); err != nil {
		return err
	}
	poker.SortByRank(s.hand)
	clear(s.selected)
	return nil
}

// Cheat switches the rules to the oversized cheat preset. It takes effect
// from the next deal.
func (s *Session) Cheat() {
	s.rules.Cheat()
	s.logger.Warn("Cheat enabled",
		"hand_size", s.rules.HandSize(),
		"play_hand_size", s.rules.PlayHandSize(),
		"redraws", s.rules.RedrawsAvailable())
}

// CanDraw reports whether Draw would succeed
func (s *Session) CanDraw() bool { return s.drawErr() == nil }

// CanEvaluate reports whether Evaluate would succeed
func (s *Session) CanEvaluate() bool { return s.evaluateErr() == nil }

// CanSort reports whether Sort would succeed
func (s *Session) CanSort() bool { return s.sortErr() == nil }

// Status returns the current counters
func (s *Session) Status() Status {
	return Status{
		HandNumber:    s.handNumber,
		Redraws:       s.redraws,
		PlayHandSize:  s.rules.PlayHandSize(),
		DeckRemaining: s.deck.Remaining(),
		DeckSize:      s.rules.DeckSize(),
		Played:        s.played,
	}
}

func (s *Session) drawErr() error {
	switch {
	case len(s.hand) == 0:
		return ErrNoHand
	case s.played:
		return ErrHandPlayed
	case len(s.selected) == 0:
		return ErrNoSelection
	case s.redraws <= 0:
		return ErrNoRedraws
	case s.deck.Remaining() < len(s.selected):
		return ErrDeckExhausted
	}
	return nil
}

func (s *Session) evaluateErr() error {
	switch {
	case len(s.hand) == 0:
		return ErrNoHand
	case s.played:
		return ErrHandPlayed
	case len(s.selected) == 0:
		return ErrNoSelection
	case len(s.selected) > s.rules.PlayHandSize():
		return ErrTooManySelected
	}
	return nil
}

func (s *Session) sortErr() error {
	switch {
	case len(s.hand) == 0:
		return ErrNoHand
	case s.played:
		return ErrHandPlayed
	}
	return nil
}
