package simulator

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNew(t *testing.T) {
	simulator := New(poker.NewRuleSet(), Config{Hands: 100, Seed: 12345})
	if simulator == nil {
		t.Fatal("New() returned nil")
	}
	if simulator.config.Workers <= 0 {
		t.Errorf("Expected default workers, got %d", simulator.config.Workers)
	}
	if simulator.config.Logger == nil || simulator.config.Clock == nil {
		t.Error("Expected default logger and clock")
	}
}

func TestRunCountsEveryHand(t *testing.T) {
	report, err := New(poker.NewRuleSet(), Config{
		Hands:   5000,
		Workers: 4,
		Seed:    1,
		Logger:  quietLogger(),
		Clock:   quartz.NewMock(t),
	}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5000, report.Hands)
	assert.Equal(t, 5, report.PlayHandSize)

	total := 0
	for _, n := range report.Counts {
		total += n
	}
	assert.Equal(t, 5000, total)

	// High card and pair dominate five card hands.
	rows := report.Sorted()
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, poker.CategoryHighCard, rows[0].Category)
	assert.Equal(t, poker.CategoryPair, rows[1].Category)
	assert.InDelta(t, 0.50, report.Frequency(poker.CategoryHighCard), 0.05)
	assert.InDelta(t, 0.42, report.Frequency(poker.CategoryPair), 0.05)
}

func TestRunIsReproducible(t *testing.T) {
	run := func() *Report {
		report, err := New(poker.NewRuleSet(), Config{
			Hands:   2000,
			Workers: 3,
			Seed:    99,
			Logger:  quietLogger(),
		}).Run(context.Background())
		require.NoError(t, err)
		return report
	}

	assert.Equal(t, run().Counts, run().Counts)
}

func TestRunUsesPlayHandSize(t *testing.T) {
	rules := poker.NewRuleSet()
	rules.SetPlayHandSize(1)

	report, err := RunSimulation(context.Background(), rules, 500, 3, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, map[poker.Category]int{poker.CategoryStraightFlush: 500}, report.Counts,
		"a single card is both a one card flush and a one card straight")
}

func TestRunCustomDeck(t *testing.T) {
	cfg := poker.DefaultConfig()
	cfg.PlayHandSize = 2
	cfg.DeckCards = nil
	for i := range 10 {
		cfg.DeckCards = append(cfg.DeckCards, poker.NewCard(poker.Seven, poker.Suit(fmt.Sprintf("suit-%d", i))))
	}

	report, err := RunSimulation(context.Background(), poker.NewRuleSetWithConfig(cfg), 100, 5, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 1.0, report.Frequency(poker.CategoryPair))
}

func TestRunSnapshotsRules(t *testing.T) {
	rules := poker.NewRuleSet()
	sim := New(rules, Config{Hands: 10, Workers: 1, Seed: 1, Logger: quietLogger()})

	rules.SetPlayHandSize(2)
	report, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.PlayHandSize, "rules are read when Run starts")
}

func TestRunErrors(t *testing.T) {
	t.Run("no hands", func(t *testing.T) {
		_, err := New(poker.NewRuleSet(), Config{Hands: 0}).Run(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(poker.NewRuleSet(), Config{Hands: 100, Workers: 2}).Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReportSorted(t *testing.T) {
	report := &Report{
		Hands: 10,
		Counts: map[poker.Category]int{
			poker.CategoryPair:     3,
			poker.CategoryFlush:    3,
			poker.CategoryHighCard: 4,
		},
	}

	rows := report.Sorted()
	require.Len(t, rows, 3)
	assert.Equal(t, poker.CategoryHighCard, rows[0].Category)
	assert.Equal(t, poker.CategoryFlush, rows[1].Category)
	assert.Equal(t, poker.CategoryPair, rows[2].Category)
	assert.InDelta(t, 40.0, rows[0].Percent, 1e-9)

	assert.Zero(t, (&Report{}).Frequency(poker.CategoryPair))
}
