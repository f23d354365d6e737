// Package config loads draw poker rule files written in HCL.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/drawpoker/poker"
)

// DefaultFile is the rules file looked up when none is given
const DefaultFile = "drawpoker.hcl"

// Config represents a complete rules file
type Config struct {
	LogLevel string      `hcl:"log_level,optional"`
	Rules    *RulesBlock `hcl:"rules,block"`
	Cards    []CardBlock `hcl:"card,block"`
}

// RulesBlock overrides the default sizes. Absent attributes keep their
// defaults, so an explicit zero is distinguishable from a missing value.
type RulesBlock struct {
	HandSize     *int  `hcl:"hand_size,optional"`
	PlayHandSize *int  `hcl:"play_hand_size,optional"`
	Redraws      *int  `hcl:"redraws,optional"`
	StandardDeck *bool `hcl:"standard_deck,optional"`
}

// CardBlock appends Count copies of a card to the deck
type CardBlock struct {
	Name  string `hcl:"name,label"`
	Rank  int    `hcl:"rank"`
	Suit  string `hcl:"suit"`
	Count *int   `hcl:"count,optional"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Rules: &RulesBlock{
			HandSize:     intPtr(poker.DefaultHandSize),
			PlayHandSize: intPtr(poker.DefaultPlayHandSize),
			Redraws:      intPtr(poker.DefaultRedraws),
			StandardDeck: boolPtr(true),
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// DefaultConfig.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// ParseConfig parses configuration from HCL source held in memory
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.Rules == nil {
		config.Rules = defaults.Rules
	}
	if config.Rules.HandSize == nil {
		config.Rules.HandSize = defaults.Rules.HandSize
	}
	if config.Rules.PlayHandSize == nil {
		config.Rules.PlayHandSize = defaults.Rules.PlayHandSize
	}
	if config.Rules.Redraws == nil {
		config.Rules.Redraws = defaults.Rules.Redraws
	}
	if config.Rules.StandardDeck == nil {
		config.Rules.StandardDeck = defaults.Rules.StandardDeck
	}
	for i := range config.Cards {
		if config.Cards[i].Count == nil {
			config.Cards[i].Count = intPtr(1)
		}
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.Rules != nil {
		if c.Rules.HandSize != nil && *c.Rules.HandSize < 1 {
			return fmt.Errorf("hand size must be positive")
		}
		if c.Rules.PlayHandSize != nil && *c.Rules.PlayHandSize < 1 {
			return fmt.Errorf("play hand size must be positive")
		}
		if c.Rules.Redraws != nil && *c.Rules.Redraws < 0 {
			return fmt.Errorf("redraws cannot be negative")
		}
	}

	for _, card := range c.Cards {
		if card.Suit == "" {
			return fmt.Errorf("card %q: suit is required", card.Name)
		}
		if card.Count != nil && *card.Count < 0 {
			return fmt.Errorf("card %q: count cannot be negative", card.Name)
		}
	}

	if c.deckSize() == 0 {
		return fmt.Errorf("deck has no cards")
	}

	return nil
}

// GetLogLevel returns the parsed log level, falling back to info
func (c *Config) GetLogLevel() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// RuleConfig converts the file into a poker.Config
func (c *Config) RuleConfig() poker.Config {
	cfg := poker.DefaultConfig()
	if c.Rules != nil {
		if c.Rules.HandSize != nil {
			cfg.HandSize = *c.Rules.HandSize
		}
		if c.Rules.PlayHandSize != nil {
			cfg.PlayHandSize = *c.Rules.PlayHandSize
		}
		if c.Rules.Redraws != nil {
			cfg.RedrawsAvailable = *c.Rules.Redraws
		}
		if c.Rules.StandardDeck != nil && !*c.Rules.StandardDeck {
			cfg.DeckCards = nil
		}
	}

	for _, card := range c.Cards {
		for range cardCount(card) {
			cfg.DeckCards = append(cfg.DeckCards, poker.NewCard(card.Rank, poker.Suit(card.Suit)))
		}
	}
	return cfg
}

// Apply replaces the configuration of rules with this file's
func (c *Config) Apply(rules *poker.RuleSet) {
	rules.Apply(c.RuleConfig())
}

// RuleSet builds a new rule set from this file
func (c *Config) RuleSet() *poker.RuleSet {
	return poker.NewRuleSetWithConfig(c.RuleConfig())
}

func (c *Config) deckSize() int {
	size := 0
	if c.Rules == nil || c.Rules.StandardDeck == nil || *c.Rules.StandardDeck {
		size = len(poker.StandardDeck())
	}
	for _, card := range c.Cards {
		size += max(cardCount(card), 0)
	}
	return size
}

func cardCount(card CardBlock) int {
	if card.Count == nil {
		return 1
	}
	return *card.Count
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
