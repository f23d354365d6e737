package poker

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Suit names the suit of a card. The standard deck uses the four constants
// below, but custom decks may use any name.
type Suit string

const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// StandardSuits lists the suits of the standard deck in deck order.
var StandardSuits = []Suit{Hearts, Clubs, Diamonds, Spades}

// Rank constants for the standard deck (2-14)
const (
	Two   = 2
	Three = 3
	Four  = 4
	Five  = 5
	Six   = 6
	Seven = 7
	Eight = 8
	Nine  = 9
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

const rankChars = "23456789TJQKA"

// Card is an immutable rank and suit pair. Two cards with the same rank and
// suit are still distinct cards when a custom deck contains duplicates.
type Card struct {
	rank int
	suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank int, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the rank of the card
func (c Card) Rank() int {
	return c.rank
}

// Suit returns the suit of the card
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the short notation for the card, e.g. "As" or "Th".
// Ranks outside 2-14 are bracketed ("[1]s") and unknown suits are printed
// in full inside parentheses.
func (c Card) String() string {
	var rank string
	if c.rank >= Two && c.rank <= Ace {
		rank = string(rankChars[c.rank-Two])
	} else {
		rank = "[" + strconv.Itoa(c.rank) + "]"
	}

	switch c.suit {
	case Hearts, Clubs, Diamonds, Spades:
		return rank + string(c.suit[0])
	default:
		return rank + "(" + string(c.suit) + ")"
	}
}

// ParseCard parses a string like "As", "Td" or "10h" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1]

	var rank int
	switch strings.ToUpper(rankPart) {
	case "10":
		rank = Ten
	default:
		if len(rankPart) != 1 {
			return Card{}, fmt.Errorf("invalid rank: %q", rankPart)
		}
		idx := strings.IndexByte(rankChars, strings.ToUpper(rankPart)[0])
		if idx < 0 {
			return Card{}, fmt.Errorf("invalid rank: %q", rankPart)
		}
		rank = idx + Two
	}

	var suit Suit
	switch suitPart {
	case 'h', 'H':
		suit = Hearts
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit: %c", suitPart)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a list of cards separated by spaces or commas,
// e.g. "As Kd Qh" or "As,Kd,Qh".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	cards := make([]Card, 0, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// FormatCards joins the short notation of each card with spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// SortByRank sorts cards by rank, highest first, in place. Cards of equal
// rank keep their relative order.
func SortByRank(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		return cmp.Compare(b.rank, a.rank)
	})
}

// RankFrequencies counts how many cards share each distinct rank and returns
// the counts sorted descending. The result always has at least two entries,
// padded with zeros, so the two largest groups can be read without bounds
// checks.
func RankFrequencies(cards []Card) []int {
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		counts[c.rank]++
	}

	freq := make([]int, 0, len(counts)+1)
	for _, n := range counts {
		freq = append(freq, n)
	}
	slices.SortFunc(freq, func(a, b int) int {
		return cmp.Compare(b, a)
	})

	for len(freq) < 2 {
		freq = append(freq, 0)
	}
	return freq
}
