package tricks

import (
	"tricktaker-server/pkg/bot"
	"tricktaker-server/pkg/deck"
)

// Seat is a player slot at the table
// Seat index 0 is always the human
type Seat struct {
	ID    string
	Name  string
	hand  deck.Hand
	score int

	// brain is nil for the human seat
	brain bot.Brain
}

func newSeat(id, name string, brain bot.Brain) *Seat {
	return &Seat{
		ID:    id,
		Name:  name,
		hand:  deck.Hand{},
		brain: brain,
	}
}

// IsHuman returns true if the seat is controlled by a person
func (s *Seat) IsHuman() bool {
	return s.brain == nil
}

// Hand returns a shallow clone of the seat's hand
func (s *Seat) Hand() deck.Hand {
	return s.hand.Clone()
}

// Score returns the number of tricks the seat won this game
func (s *Seat) Score() int {
	return s.score
}
