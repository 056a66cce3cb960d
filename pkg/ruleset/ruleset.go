package ruleset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTrick is returned when a winner is requested for a trick with no cards
var ErrEmptyTrick = errors.New("cannot evaluate an empty trick")

// RuleSet decides who wins a trick
type RuleSet int

// RuleSet constants
const (
	HighestCard RuleSet = iota
	SuitFollows
	SpadesTrump
)

// Default is the rule set used when none is requested
const Default = HighestCard

// ID returns the stable identifier of the rule set
func (r RuleSet) ID() string {
	switch r {
	case HighestCard:
		return "highest-card"
	case SuitFollows:
		return "suit-follows"
	case SpadesTrump:
		return "spades-trump"
	}

	panic(fmt.Sprintf("unknown rule set: %d", r))
}

// Name returns the display name of the rule set
func (r RuleSet) Name() string {
	switch r {
	case HighestCard:
		return "Highest Card"
	case SuitFollows:
		return "Suit Follows"
	case SpadesTrump:
		return "Spades Trump"
	}

	panic(fmt.Sprintf("unknown rule set: %d", r))
}

// Description returns a short explanation of the rule set
func (r RuleSet) Description() string {
	switch r {
	case HighestCard:
		return "The highest card wins the trick. Suits do not matter."
	case SuitFollows:
		return "The highest card of the suit that was led wins the trick."
	case SpadesTrump:
		return "Spades beat every other suit. Without a spade, the highest card of the suit that was led wins."
	}

	panic(fmt.Sprintf("unknown rule set: %d", r))
}

func (r RuleSet) String() string {
	return r.ID()
}

// MarshalText encodes the rule set as its id
func (r RuleSet) MarshalText() ([]byte, error) {
	return []byte(r.ID()), nil
}

// UnmarshalText decodes a rule set id
func (r *RuleSet) UnmarshalText(b []byte) error {
	rs, err := Get(string(b))
	if err != nil {
		return err
	}

	*r = rs
	return nil
}

// Get returns the RuleSet based on the id
func Get(id string) (RuleSet, error) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "highest-card":
		return HighestCard, nil
	case "suit-follows":
		return SuitFollows, nil
	case "spades-trump":
		return SpadesTrump, nil
	}

	return -1, fmt.Errorf("unknown rule set: %s", id)
}

// All returns every rule set in display order
func All() []RuleSet {
	return []RuleSet{HighestCard, SuitFollows, SpadesTrump}
}

// Info is the display metadata for a rule set
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Info returns the display metadata for the rule set
func (r RuleSet) Info() Info {
	return Info{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
	}
}
