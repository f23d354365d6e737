package poker

import (
	"math/rand"

	"github.com/lox/drawpoker/internal/randutil"
)

// CardSource provides the card population a deck is built from.
// *RuleSet is the production implementation.
type CardSource interface {
	DeckCards() []Card
}

// Deck is an ordered pile of cards copied from a CardSource
type Deck struct {
	cards  []Card
	source CardSource
	random func() float64 // Returns values in [0, 1)
}

// NewDeck creates a deck bound to source and fills it in source order.
// random drives Shuffle; nil uses the global math/rand source.
func NewDeck(source CardSource, random func() float64) *Deck {
	if random == nil {
		random = rand.Float64
	}

	d := &Deck{
		source: source,
		random: random,
	}
	d.Reset()
	return d
}

// NewSeededDeck creates a deck whose shuffles are reproducible from seed
func NewSeededDeck(source CardSource, seed int64) *Deck {
	return NewDeck(source, randutil.Float64(seed))
}

// Reset refills the deck from its source in the order the source returns.
// It does not shuffle.
func (d *Deck) Reset() {
	d.cards = append(d.cards[:0], d.source.DeckCards()...)
}

// Shuffle shuffles the deck in place using Fisher-Yates. The same sequence
// of random values always produces the same order.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(d.random() * float64(i+1))
		if j > i {
			j = i
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the first n cards. When fewer than n cards
// remain, all of them are returned.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}

	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the cards left in the deck, top first
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
