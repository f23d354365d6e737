// Package simulator estimates how often each hand category is dealt under a
// rule set by sampling random hands.
package simulator

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

// cancelCheckInterval is how many hands a worker deals between context checks
const cancelCheckInterval = 1024

// Config holds configuration for running simulations
type Config struct {
	Hands   int
	Workers int // Defaults to runtime.NumCPU()
	Seed    int64
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Simulator deals and classifies random hands
type Simulator struct {
	config Config
	rules  *poker.RuleSet
}

// New creates a simulator over rules. The rules are snapshotted when Run
// starts, so later changes do not affect a running simulation.
func New(rules *poker.RuleSet, config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config, rules: rules}
}

// workerResult holds the category counts from a single worker
type workerResult struct {
	counts map[poker.Category]int
	hands  int
}

// Run deals Config.Hands hands of PlayHandSize cards each and counts their
// categories. Results are reproducible for a given seed and worker count.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", s.config.Hands)
	}

	rules := poker.NewRuleSetWithConfig(s.rules.Config())
	logger := s.config.Logger.WithPrefix("simulator")
	start := s.config.Clock.Now()

	workers := min(s.config.Workers, s.config.Hands)
	handsPerWorker := s.config.Hands / workers
	remainder := s.config.Hands % workers

	logger.Debug("Starting simulation",
		"hands", s.config.Hands,
		"workers", workers,
		"play_hand_size", rules.PlayHandSize(),
		"deck_size", rules.DeckSize())

	// Seeded up front so results do not depend on scheduling
	seeds := randutil.Seeds(s.config.Seed, workers)
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan workerResult, workers)

	for w := range workers {
		workerHands := handsPerWorker
		if w < remainder {
			workerHands++
		}
		workerSeed := seeds[w]

		g.Go(func() error {
			result, err := runWorker(ctx, rules, workerHands, workerSeed)
			if err != nil {
				return err
			}
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	report := &Report{
		PlayHandSize: rules.PlayHandSize(),
		Counts:       make(map[poker.Category]int),
	}
	for result := range results {
		report.Hands += result.hands
		for category, n := range result.counts {
			report.Counts[category] += n
		}
	}
	report.Elapsed = s.config.Clock.Since(start)

	logger.Info("Simulation complete", "hands", report.Hands, "elapsed", report.Elapsed)
	return report, nil
}

func runWorker(ctx context.Context, rules *poker.RuleSet, hands int, seed int64) (workerResult, error) {
	result := workerResult{counts: make(map[poker.Category]int)}
	deck := poker.NewSeededDeck(rules, seed)
	size := rules.PlayHandSize()

	for i := range hands {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return result, err
			}
		}

		deck.Reset()
		deck.Shuffle()
		result.counts[poker.Classify(deck.Deal(size), rules)]++
		result.hands++
	}
	return result, nil
}

// RunSimulation is a convenience wrapper around New and Run
func RunSimulation(ctx context.Context, rules *poker.RuleSet, hands int, seed int64, logger *log.Logger) (*Report, error) {
	return New(rules, Config{Hands: hands, Seed: seed, Logger: logger}).Run(ctx)
}

// Report holds the category counts of a simulation
type Report struct {
	Hands        int
	PlayHandSize int
	Counts       map[poker.Category]int
	Elapsed      time.Duration
}

// CategoryCount is one row of a report
type CategoryCount struct {
	Category poker.Category
	Count    int
	Percent  float64
}

// Frequency returns the share of hands in category, from 0 to 1
func (r *Report) Frequency(category poker.Category) float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Counts[category]) / float64(r.Hands)
}

// Sorted returns the categories by descending count, ties by name
func (r *Report) Sorted() []CategoryCount {
	rows := make([]CategoryCount, 0, len(r.Counts))
	for category, n := range r.Counts {
		rows = append(rows, CategoryCount{
			Category: category,
			Count:    n,
			Percent:  100 * r.Frequency(category),
		})
	}
	slices.SortFunc(rows, func(a, b CategoryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return rows
}
