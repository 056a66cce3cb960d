package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if cmp := strings.Compare(string(h[i].Suit), string(h[j].Suit)); cmp != 0 {
		return cmp < 0
	}

	return h[i].Value() < h[j].Value()
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// IndexOf returns the position of the card in the hand, or -1
func (h Hand) IndexOf(card Card) int {
	for i, c := range h {
		if c.Equal(card) {
			return i
		}
	}

	return -1
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	return h.IndexOf(card) >= 0
}

// Discard removes the specified card and returns true if it was found
func (h *Hand) Discard(card Card) bool {
	i := h.IndexOf(card)
	if i < 0 {
		return false
	}

	newHand := make(Hand, 0, len(*h)-1)
	newHand = append(newHand, (*h)[:i]...)
	newHand = append(newHand, (*h)[i+1:]...)

	*h = newHand
	return true
}

// FirstCard returns the first card in the hand and false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
