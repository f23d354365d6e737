package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/drawpoker/poker"
)

// ClassifyCmd names the category of one or more hands
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands to classify, e.g. 'Ah Kh Qh Jh Th' (quote each hand)"`
}

func (cmd *ClassifyCmd) Run(globals *Globals) error {
	_, rules, err := globals.loadConfig()
	if err != nil {
		return err
	}
	return cmd.run(os.Stdout, rules)
}

func (cmd *ClassifyCmd) run(w io.Writer, rules *poker.RuleSet) error {
	for _, hand := range cmd.Hands {
		cards, err := poker.ParseCards(hand)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", hand, err)
		}
		if len(cards) > rules.PlayHandSize() {
			return fmt.Errorf("%q has %d cards, play hand size is %d", hand, len(cards), rules.PlayHandSize())
		}

		category := poker.Classify(cards, rules)
		fmt.Fprintf(w, "%s  %s\n", poker.FormatCards(cards), categoryStyle.Render(string(category)))
	}
	return nil
}
