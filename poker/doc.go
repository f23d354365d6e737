// Package poker implements the hand ranking and deck management engine for
// draw poker with tunable rules.
//
// A RuleSet holds the hand size, play hand size, redraw count and the card
// population, along with the pattern predicates that depend on them. A Deck
// copies its cards from a RuleSet, shuffles them with an injected random
// source and deals from the top. Classify sorts a played hand and resolves
// the predicates into a single Category:
//
//	rules := poker.NewRuleSet()
//	deck := poker.NewSeededDeck(rules, 42)
//	deck.Shuffle()
//	hand := deck.Deal(rules.HandSize())
//	category := poker.Classify(hand, rules)
//
// # Deterministic Testing
//
// Deck.Shuffle is a Fisher-Yates shuffle driven by a func() float64 in
// [0, 1). Passing a fixed function makes every shuffle reproducible:
//
//	deck := poker.NewDeck(rules, func() float64 { return 0 })
package poker
