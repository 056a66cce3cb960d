package deck

import (
	"errors"
	"fmt"
)

// ErrNotEnoughCards happens when the deck cannot cover every seat's hand
var ErrNotEnoughCards = errors.New("not enough cards in the deck")

// ValidateDeal checks that seatCount hands of handSize cards can be dealt from a deck of deckSize cards
func ValidateDeal(deckSize, seatCount, handSize int) error {
	if seatCount < 1 {
		return fmt.Errorf("seat count must be at least 1, got %d", seatCount)
	}

	if handSize < 1 {
		return fmt.Errorf("hand size must be at least 1, got %d", handSize)
	}

	if seatCount*handSize > deckSize {
		return fmt.Errorf("%w: %d seats × %d cards exceeds %d", ErrNotEnoughCards, seatCount, handSize, deckSize)
	}

	return nil
}

// Deal hands out the cards block-wise: the first handSize cards go to seat 0, the next handSize cards to seat 1, etc.
// Any cards beyond seatCount × handSize are not dealt.
func Deal(cards []Card, seatCount, handSize int) ([]Hand, error) {
	if len(cards) < seatCount*handSize {
		return nil, ErrEndOfDeck
	}

	hands := make([]Hand, seatCount)
	for seat := 0; seat < seatCount; seat++ {
		start := seat * handSize
		hands[seat] = Hand(cards[start : start+handSize]).Clone()
	}

	return hands, nil
}
