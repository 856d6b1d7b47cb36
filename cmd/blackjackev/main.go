// Command blackjackev computes and prints blackjack expected values for a
// standard shoe.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/deckshoe/blackjackev"
	"github.com/deckshoe/blackjackev/dealerprob"
)

// config is the optional file-based override for the command-line
// defaults, loaded from -config with github.com/BurntSushi/toml.
type config struct {
	Decks   int      `toml:"decks"`
	Samples []string `toml:"sample_hands"`
}

var defaultSamples = []string{"T,T", "A,8", "9,9", "A,T"}

func main() {
	decks := flag.Int("decks", 1, "number of 52-card decks in the shoe")
	configPath := flag.String("config", "", "optional TOML config file (decks, sample_hands)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg := config{Decks: *decks, Samples: defaultSamples}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to read config")
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "decks" {
			cfg.Decks = *decks
		}
	})

	shoe := blackjackev.GenerateShoe(cfg.Decks)
	logger.Info().Int("decks", cfg.Decks).Int("cards", shoe.Total()).Msg("generated shoe")

	start := time.Now()
	table, err := blackjackev.ComputeAllHandEV(shoe, dealerprob.New())
	if err != nil {
		logger.Fatal().Err(err).Msg("compute failed")
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Int("hands", len(table)).Msg("hand table computed")

	p := message.NewPrinter(message.MatchLanguage("en"))

	fmt.Println("Sample hand EVs:")
	for _, spec := range cfg.Samples {
		hand, value, ok := parseHand(spec)
		if !ok {
			logger.Warn().Str("hand", spec).Msg("skipping unparsable sample hand")
			continue
		}
		hev, ok := table[hand]
		if !ok {
			logger.Warn().Str("hand", spec).Msg("hand not found in table")
			continue
		}
		printHand(p, spec, value, hev)
	}

	edge := blackjackev.ComputeOverallProb(shoe, table)
	logger.Info().Float64("edge", edge).Msg("computed overall edge")
	p.Printf("\nOverall player expectation: %s per unit wagered\n", number.Decimal(edge, number.MaxFractionDigits(5)))
}

// parseHand parses a comma-separated hand spec like "A,T" into a Hand and
// its HandValue.
func parseHand(spec string) (blackjackev.Hand, blackjackev.HandValue, bool) {
	var hand blackjackev.Hand
	value := blackjackev.HardZero
	start := 0
	for i := 0; i <= len(spec); i++ {
		if i < len(spec) && spec[i] != ',' {
			continue
		}
		tok := spec[start:i]
		start = i + 1
		if tok == "" {
			continue
		}
		c := blackjackev.FromRune(rune(tok[0]))
		if !c.Valid() {
			return blackjackev.Hand{}, value, false
		}
		hand = hand.PlusCard(c)
		value = value.Add(c)
	}
	return hand, value, true
}

// printHand prints one sample hand's best-action EV against every up-card.
func printHand(p *message.Printer, spec string, value blackjackev.HandValue, hev *blackjackev.HandEV) {
	p.Printf("  %-6s (%s):\n", spec, value)
	for c := blackjackev.Ace; c <= blackjackev.Ten; c++ {
		best, ok := hev.Best(c)
		if !ok {
			continue
		}
		p.Printf("    vs %s: %s\n", c, number.Decimal(best, number.MaxFractionDigits(4)))
	}
}
