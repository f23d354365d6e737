// Package game runs single player draw poker hands on top of the poker
// engine.
//
// The main type is Session, which owns the deck for the current hand, the
// player's cards, the selection, and the redraw counter.
//
// # Basic Usage
//
//	s := game.NewSession(poker.NewRuleSet(), game.WithLogger(logger))
//	s.DealNewHand()
//	s.Toggle(0)
//	s.Toggle(3)
//	if s.CanDraw() {
//	    s.Draw()
//	}
//	result, err := s.Evaluate()
//
// # Deterministic Testing
//
// Shuffles are driven by an injected random source and hand timing by an
// injected clock:
//
//	s := game.NewSession(rules,
//	    game.WithSeed(42),
//	    game.WithClock(quartz.NewMock(t)))
//
// Controls that cannot currently act are reported by CanDraw, CanEvaluate
// and CanSort; calling the action anyway returns one of the Err values.
package game
