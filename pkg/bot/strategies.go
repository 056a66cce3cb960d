package bot

import (
	"tricktaker-server/pkg/deck"
	"tricktaker-server/pkg/ruleset"
)

// FirstCard always plays the first card in its hand
type FirstCard struct{}

// ChooseCard returns the first card in the hand
func (FirstCard) ChooseCard(view View) (deck.Card, error) {
	card, ok := view.Hand.FirstCard()
	if !ok {
		return deck.Card{}, ErrEmptyHand
	}

	return card, nil
}

// HighestCard always plays its highest value card
type HighestCard struct{}

// ChooseCard returns the highest value card, the first one on ties
func (HighestCard) ChooseCard(view View) (deck.Card, error) {
	if len(view.Hand) == 0 {
		return deck.Card{}, ErrEmptyHand
	}

	best := view.Hand[0]
	for _, c := range view.Hand[1:] {
		if c.Value() > best.Value() {
			best = c
		}
	}

	return best, nil
}

// Smart plays the cheapest card that currently takes the trick.
// If nothing can take it, it throws away its lowest card.
type Smart struct{}

// ChooseCard returns the chosen card
func (Smart) ChooseCard(view View) (deck.Card, error) {
	if len(view.Hand) == 0 {
		return deck.Card{}, ErrEmptyHand
	}

	var lowestWinner, lowest *deck.Card
	for i := range view.Hand {
		c := view.Hand[i]
		if lowest == nil || c.Value() < lowest.Value() {
			lowest = &c
		}

		// leading: every card "wins" so far, which just means we lead low
		if len(view.Trick) == 0 {
			continue
		}

		trick := append(view.Trick.Clone(), ruleset.Play{SeatID: view.SeatID, Card: c})
		winner, err := view.RuleSet.Evaluate(trick)
		if err != nil {
			return deck.Card{}, err
		}

		if winner == view.SeatID && (lowestWinner == nil || c.Value() < lowestWinner.Value()) {
			lowestWinner = &c
		}
	}

	if lowestWinner != nil {
		return *lowestWinner, nil
	}

	return *lowest, nil
}
