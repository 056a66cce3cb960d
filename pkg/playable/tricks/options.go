package tricks

import (
	"errors"
	"fmt"
	"time"

	"tricktaker-server/internal/rng"
	"tricktaker-server/pkg/bot"
	"tricktaker-server/pkg/deck"
	"tricktaker-server/pkg/ruleset"
)

// table defaults
const (
	DefaultSeatCount = 4
	DefaultHandSize  = 7
	DefaultMaxRounds = 5
	DefaultBotDelay  = time.Second
)

// Options are options for creating a new game
// They are fixed for the life of the Game
type Options struct {
	SeatCount int
	HandSize  int
	MaxRounds int

	// RuleSet is used when StartGame is not given a rule set id
	RuleSet ruleset.RuleSet

	BotLevel bot.Level
	// BotDelay is how long an automated seat waits before it plays
	BotDelay time.Duration

	// Generator shuffles the deck. If nil, crypto/rand is used.
	Generator rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		SeatCount: DefaultSeatCount,
		HandSize:  DefaultHandSize,
		MaxRounds: DefaultMaxRounds,
		RuleSet:   ruleset.Default,
		BotLevel:  bot.LevelStandard,
		BotDelay:  DefaultBotDelay,
	}
}

func (o Options) validate() error {
	if o.SeatCount < 2 {
		return fmt.Errorf("%w: expected at least 2 seats, got %d", ErrSeatCount, o.SeatCount)
	}

	if err := deck.ValidateDeal(deck.Size, o.SeatCount, o.HandSize); err != nil {
		return err
	}

	if o.MaxRounds < 1 {
		return fmt.Errorf("max rounds must be at least 1, got %d", o.MaxRounds)
	}

	if o.BotDelay < 0 {
		return errors.New("bot delay cannot be negative")
	}

	if o.RuleSet < ruleset.HighestCard || o.RuleSet > ruleset.SpadesTrump {
		return fmt.Errorf("unknown rule set: %d", o.RuleSet)
	}

	return nil
}
