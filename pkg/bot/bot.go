package bot

import (
	"errors"
	"fmt"
	"strings"

	"tricktaker-server/pkg/deck"
	"tricktaker-server/pkg/ruleset"
)

// ErrEmptyHand is returned when a card is requested from a seat with nothing left to play
var ErrEmptyHand = errors.New("no cards left to play")

// View is what an automated seat can see when it is asked to play
type View struct {
	SeatID  string
	Hand    deck.Hand
	Trick   ruleset.Trick
	RuleSet ruleset.RuleSet
}

// Brain picks the card an automated seat plays
type Brain interface {
	ChooseCard(view View) (deck.Card, error)
}

// Level is the difficulty of an automated seat
type Level int

// Level constants
const (
	LevelEasy Level = iota
	LevelStandard
	LevelSmart
)

// String returns the level name
func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelStandard:
		return "standard"
	case LevelSmart:
		return "smart"
	}

	panic(fmt.Sprintf("unknown bot level: %d", l))
}

// GetLevel returns the Level based on the string
func GetLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "easy":
		return LevelEasy, nil
	case "", "standard":
		return LevelStandard, nil
	case "smart":
		return LevelSmart, nil
	}

	return -1, fmt.Errorf("unknown bot level: %s", s)
}

// NewBrain creates a new brain based on the specified level
func NewBrain(level Level) (Brain, error) {
	switch level {
	case LevelEasy:
		return FirstCard{}, nil
	case LevelStandard:
		return HighestCard{}, nil
	case LevelSmart:
		return Smart{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
