package poker

import "strconv"

// Category is the display name of a classified hand
type Category string

const (
	CategoryStraightFlush Category = "Straight Flush"
	CategoryFourOfAKind   Category = "Four of a Kind"
	CategoryFullHouse     Category = "Full House"
	CategoryFlush         Category = "Flush"
	CategoryStraight      Category = "Straight"
	CategoryThreeOfAKind  Category = "Three of a Kind"
	CategoryTwoPair       Category = "Two Pair"
	CategoryPair          Category = "Pair"
	CategoryHighCard      Category = "High Card"
)

// Classify names the best category of cards under rules.
//
// cards is sorted by rank descending in place before evaluation, so callers
// that need their original order must pass a copy. Categories are checked in
// a fixed order: straight flush, four of a kind, full house, flush, straight,
// three of a kind, pairs, high card.
func Classify(cards []Card, rules *RuleSet) Category {
	SortByRank(cards)
	freq := RankFrequencies(cards)

	flush := rules.IsFlush(cards, freq)
	straight := rules.IsStraight(cards, freq)
	fullHouse := rules.IsFullHouse(cards, freq)
	nOfAKind := rules.NOfAKind(cards, freq, 0)
	pairs := rules.NTuples(cards, freq)

	switch {
	case flush.Matches && straight.Matches:
		return CategoryStraightFlush
	case nOfAKind.Matches && nOfAKind.Value == 4:
		return Category(NOfAKindLabel(nOfAKind.Value))
	case fullHouse.Matches:
		return CategoryFullHouse
	case flush.Matches:
		return CategoryFlush
	case straight.Matches:
		return CategoryStraight
	case nOfAKind.Matches && nOfAKind.Value == 3:
		return Category(NOfAKindLabel(nOfAKind.Value))
	case pairs.Matches:
		if pairs.Value >= 2 {
			return Category(TuplesLabel(pairs.Value) + " Pair")
		}
		return Category(NOfAKindLabel(nOfAKind.Value))
	default:
		return CategoryHighCard
	}
}

var numberWords = map[int]string{
	2:  "Two",
	3:  "Three",
	4:  "Four",
	5:  "Five",
	6:  "Six",
	7:  "Seven",
	8:  "Eight",
	9:  "Nine",
	10: "Ten",
	11: "Eleven",
	12: "Twelve",
}

// NOfAKindLabel names a group of n equal ranks: "Pair" for two,
// "Three of a Kind" and up otherwise.
func NOfAKindLabel(n int) string {
	if n == 2 {
		return string(CategoryPair)
	}
	return numberWord(n, 12) + " of a Kind"
}

// TuplesLabel names a count of tuples ("Two" for two pairs)
func TuplesLabel(n int) string {
	return numberWord(n, 9)
}

// numberWord spells n when 2 <= n <= limit, otherwise falls back to digits
func numberWord(n, limit int) string {
	if word, ok := numberWords[n]; ok && n <= limit {
		return word
	}
	return strconv.Itoa(n)
}
