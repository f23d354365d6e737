package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/simulator"
	"github.com/lox/drawpoker/poker"
)

// SimulateCmd deals random hands and tabulates their categories
type SimulateCmd struct {
	Hands   int `default:"100000" help:"Number of hands to deal"`
	Workers int `default:"0" help:"Worker goroutines (0 for one per CPU)"`
}

func (cmd *SimulateCmd) Run(globals *Globals) error {
	cfg, rules, err := globals.loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg, "simulate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulator.New(rules, simulator.Config{
		Hands:   cmd.Hands,
		Workers: cmd.Workers,
		Seed:    randutil.Resolve(globals.Seed),
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	printTitle(os.Stdout, " ♠ ♥ Draw Poker Simulation ♦ ♣ ")
	return printReport(os.Stdout, rules, report)
}

func printReport(out io.Writer, rules *poker.RuleSet, report *simulator.Report) error {
	fmt.Fprintf(out, "%d hands of %d cards from a %d card deck in %s\n\n",
		report.Hands, report.PlayHandSize, rules.DeckSize(), report.Elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("hands"),
		headerStyle.Render("freq"))
	for _, row := range report.Sorted() {
		fmt.Fprintf(w, "%s\t%d\t%.3f%%\n", row.Category, row.Count, row.Percent)
	}
	return w.Flush()
}
