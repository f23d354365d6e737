package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/poker"
)

// version is set by ldflags during build
var version = "dev"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Rules file (HCL), ignored if missing"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides the rules file"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Cheat    bool   `help:"Play with the oversized cheat rules"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play draw poker in the terminal"`
	Classify ClassifyCmd      `cmd:"" help:"Classify cards given on the command line"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random hands and report category frequencies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Draw poker with configurable hand sizes and decks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the rules file and returns the rule set it describes
func (g *Globals) loadConfig() (*config.Config, *poker.RuleSet, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", g.Config, err)
	}

	rules := cfg.RuleSet()
	if g.Cheat {
		rules.Cheat()
	}
	return cfg, rules, nil
}

func newLogger(w io.Writer, cfg *config.Config, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.GetLogLevel(),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w)
}

func closeLogged(c io.Closer, logger *log.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("Failed to close", "error", err)
	}
}
