package poker

const (
	DefaultHandSize     = 5
	DefaultPlayHandSize = 5
	DefaultRedraws      = 1
)

// Cheat preset values
const (
	CheatHandSize     = 14
	CheatPlayHandSize = 10
	CheatRedraws      = 12
)

// Config holds the tunable parts of a rule set
type Config struct {
	HandSize         int
	PlayHandSize     int
	RedrawsAvailable int
	DeckCards        []Card
}

// DefaultConfig returns five card draw with one redraw and a standard deck
func DefaultConfig() Config {
	return Config{
		HandSize:         DefaultHandSize,
		PlayHandSize:     DefaultPlayHandSize,
		RedrawsAvailable: DefaultRedraws,
		DeckCards:        StandardDeck(),
	}
}

// StandardDeck returns the 52 standard cards, suit by suit, ranks ascending
func StandardDeck() []Card {
	cards := make([]Card, 0, len(StandardSuits)*13)
	for _, suit := range StandardSuits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// RuleSet owns the game configuration and the pattern predicates that
// depend on it. Configuration changes apply to every later predicate call
// and every later Deck.Reset; nothing is snapshotted.
//
// Every predicate takes the hand sorted by rank descending and its rank
// frequencies sorted descending (see RankFrequencies).
type RuleSet struct {
	cfg Config
}

// NewRuleSet creates a rule set with DefaultConfig
func NewRuleSet() *RuleSet {
	return NewRuleSetWithConfig(DefaultConfig())
}

// NewRuleSetWithConfig creates a rule set from cfg. The deck cards are copied.
func NewRuleSetWithConfig(cfg Config) *RuleSet {
	r := &RuleSet{}
	r.Apply(cfg)
	return r
}

// Config returns a copy of the current configuration
func (r *RuleSet) Config() Config {
	cfg := r.cfg
	cfg.DeckCards = r.DeckCards()
	return cfg
}

// Apply replaces the whole configuration
func (r *RuleSet) Apply(cfg Config) {
	r.cfg = cfg
	r.cfg.DeckCards = append([]Card(nil), cfg.DeckCards...)
}

func (r *RuleSet) HandSize() int         { return r.cfg.HandSize }
func (r *RuleSet) SetHandSize(n int)     { r.cfg.HandSize = n }
func (r *RuleSet) PlayHandSize() int     { return r.cfg.PlayHandSize }
func (r *RuleSet) SetPlayHandSize(n int) { r.cfg.PlayHandSize = n }
func (r *RuleSet) RedrawsAvailable() int { return r.cfg.RedrawsAvailable }

func (r *RuleSet) SetRedrawsAvailable(n int) { r.cfg.RedrawsAvailable = n }

// Cheat switches to the oversized cheat preset
func (r *RuleSet) Cheat() {
	r.cfg.HandSize = CheatHandSize
	r.cfg.PlayHandSize = CheatPlayHandSize
	r.cfg.RedrawsAvailable = CheatRedraws
}

// DeckCards returns a fresh copy of the configured card population
func (r *RuleSet) DeckCards() []Card {
	return append([]Card(nil), r.cfg.DeckCards...)
}

// DeckSize returns the number of configured cards
func (r *RuleSet) DeckSize() int {
	return len(r.cfg.DeckCards)
}

// AddCards appends cards to the deck population. Duplicates are allowed.
func (r *RuleSet) AddCards(cards ...Card) {
	r.cfg.DeckCards = append(r.cfg.DeckCards, cards...)
}

// IsFlush matches a hand of exactly PlayHandSize cards that all share the
// suit of the first card.
func (r *RuleSet) IsFlush(sorted []Card, freq []int) HandRank {
	if len(sorted) != r.cfg.PlayHandSize {
		return noMatch
	}
	for _, c := range sorted {
		if c.suit != sorted[0].suit {
			return noMatch
		}
	}
	return matched(sumTopRanks(sorted, len(sorted)), len(sorted))
}

// IsStraight matches a hand of exactly PlayHandSize cards whose ranks step
// down by one. Aces are never low and ranks do not wrap.
func (r *RuleSet) IsStraight(sorted []Card, freq []int) HandRank {
	if len(sorted) != r.cfg.PlayHandSize {
		return noMatch
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].rank != sorted[i-1].rank-1 {
			return noMatch
		}
	}
	return matched(sumTopRanks(sorted, len(sorted)), len(sorted))
}

// IsFullHouse matches two groups that together fill the play hand: 3+2 for
// five cards, 3+3 for six, 4+3 for seven and so on. For even sizes the two
// groups must be equal, for odd sizes the first is one larger.
func (r *RuleSet) IsFullHouse(sorted []Card, freq []int) HandRank {
	size := r.cfg.PlayHandSize
	first, second := freqAt(freq, 0), freqAt(freq, 1)

	want := second
	if size%2 != 0 {
		want = second + 1
	}
	if first < (size+1)/2 || second < size/2 || first != want {
		return noMatch
	}

	value := first + second
	return matched(sumTopRanks(sorted, value), value)
}

// NOfAKind matches when the group at frequencyIndex holds more than one card.
// Rank sums the top Value cards of the hand, which are the group's cards only
// when the group holds the highest ranks.
func (r *RuleSet) NOfAKind(sorted []Card, freq []int, frequencyIndex int) HandRank {
	n := freqAt(freq, frequencyIndex)
	if n <= 1 {
		return noMatch
	}
	return matched(sumTopRanks(sorted, n), n)
}

// NTuples reports pairs: Value 2 for two pairs (rank over the top four
// cards) and Value 1 for any single group (rank over the top two).
// More than two pairs are reported as two.
func (r *RuleSet) NTuples(sorted []Card, freq []int) HandRank {
	primary := r.NOfAKind(sorted, freq, 0)
	if !primary.Matches {
		return noMatch
	}

	if primary.Value == 2 && r.NOfAKind(sorted, freq, 1).Value == 2 {
		return matched(sumTopRanks(sorted, 4), 2)
	}
	return matched(sumTopRanks(sorted, 2), 1)
}

// sumTopRanks adds the ranks of the first n cards, clamped to the hand
func sumTopRanks(sorted []Card, n int) int {
	n = min(max(n, 0), len(sorted))

	sum := 0
	for _, c := range sorted[:n] {
		sum += c.rank
	}
	return sum
}

func freqAt(freq []int, i int) int {
	if i < 0 || i >= len(freq) {
		return 0
	}
	return freq[i]
}
