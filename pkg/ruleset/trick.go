package ruleset

import (
	"fmt"

	"tricktaker-server/pkg/deck"
)

// Play is a card played by a seat
type Play struct {
	SeatID string    `json:"seatId"`
	Card   deck.Card `json:"card"`
}

// Trick holds the cards played so far, in the order they were played
// The first play is the lead
type Trick []Play

// LeadSuit returns the suit of the first card played, and false if the trick is empty
func (t Trick) LeadSuit() (deck.Suit, bool) {
	if len(t) == 0 {
		return "", false
	}

	return t[0].Card.Suit, true
}

// Has returns true if the seat has played in this trick
func (t Trick) Has(seatID string) bool {
	for _, p := range t {
		if p.SeatID == seatID {
			return true
		}
	}

	return false
}

// Clone returns a copy of the trick
func (t Trick) Clone() Trick {
	if t == nil {
		return nil
	}

	t2 := make(Trick, len(t))
	copy(t2, t)
	return t2
}

// Evaluate returns the seat id that wins the trick
// When cards tie, the seat that played first wins
func (r RuleSet) Evaluate(trick Trick) (string, error) {
	if len(trick) == 0 {
		return "", ErrEmptyTrick
	}

	switch r {
	case HighestCard:
		return highest(trick, func(deck.Card) bool { return true }), nil
	case SuitFollows:
		return followSuit(trick), nil
	case SpadesTrump:
		if winner := highest(trick, isSuit(deck.Spades)); winner != "" {
			return winner, nil
		}

		return followSuit(trick), nil
	}

	return "", fmt.Errorf("unknown rule set: %d", r)
}

// followSuit returns the highest card of the lead suit
// The lead card always matches its own suit, so the lead wins if nobody follows
func followSuit(trick Trick) string {
	lead, ok := trick.LeadSuit()
	if !ok {
		return ""
	}

	return highest(trick, isSuit(lead))
}

func isSuit(suit deck.Suit) func(deck.Card) bool {
	return func(c deck.Card) bool {
		return c.Suit == suit
	}
}

// highest returns the seat with the highest value among eligible cards, or "" if none are eligible
func highest(trick Trick, eligible func(deck.Card) bool) string {
	winner := ""
	best := 0
	for _, p := range trick {
		if !eligible(p.Card) {
			continue
		}

		// strictly greater, so the earliest play keeps a tie
		if winner == "" || p.Card.Value() > best {
			winner = p.SeatID
			best = p.Card.Value()
		}
	}

	return winner
}
