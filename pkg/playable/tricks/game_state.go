package tricks

import (
	"tricktaker-server/pkg/deck"
	"tricktaker-server/pkg/ruleset"
)

// GameState is a read-only snapshot of the game
// Nothing in a snapshot is shared with the live game, so callers may keep or modify it freely
type GameState struct {
	Phase         Phase           `json:"phase"`
	RuleSet       *ruleset.Info   `json:"ruleSet"`
	Seats         []SeatState     `json:"seats"`
	CurrentPlayer int             `json:"currentPlayer"`
	PlayedCards   ruleset.Trick   `json:"playedCards"`
	Scores        []int           `json:"scores"`
	Round         int             `json:"round"`
	MaxRounds     int             `json:"maxRounds"`
	HandSize      int             `json:"handSize"`
	LastTrick     *CompletedTrick `json:"lastTrick"`
	// PendingBotSeat is the seat id of the automated seat that is about to play
	PendingBotSeat string `json:"pendingBotSeat,omitempty"`
}

// SeatState is the state of an individual seat
type SeatState struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Hand     []deck.Card `json:"hand"`
	Score    int         `json:"score"`
	IsActive bool        `json:"isActive"`
	IsHuman  bool        `json:"isHuman"`
}

// GetState returns a snapshot of the game
func (g *Game) GetState() *GameState {
	seats := make([]SeatState, len(g.seats))
	for i, seat := range g.seats {
		seats[i] = SeatState{
			ID:       seat.ID,
			Name:     seat.Name,
			Hand:     seat.Hand(),
			Score:    seat.Score(),
			IsActive: g.phase == PhasePlaying && i == g.currentPlayer,
			IsHuman:  seat.IsHuman(),
		}
	}

	scores := make([]int, len(g.scores))
	copy(scores, g.scores)

	playedCards := g.trick.Clone()
	if playedCards == nil {
		playedCards = ruleset.Trick{}
	}

	var rs *ruleset.Info
	if g.phase != PhaseWaiting {
		info := g.ruleSet.Info()
		rs = &info
	}

	var lastTrick *CompletedTrick
	if g.lastTrick != nil {
		lastTrick = &CompletedTrick{
			Round:    g.lastTrick.Round,
			Plays:    g.lastTrick.Plays.Clone(),
			WinnerID: g.lastTrick.WinnerID,
		}
	}

	var pendingBotSeat string
	if g.pendingBotMove != nil {
		pendingBotSeat = g.seats[g.pendingBotMove.SeatIndex].ID
	}

	return &GameState{
		Phase:          g.phase,
		RuleSet:        rs,
		Seats:          seats,
		CurrentPlayer:  g.currentPlayer,
		PlayedCards:    playedCards,
		Scores:         scores,
		Round:          g.round,
		MaxRounds:      g.options.MaxRounds,
		HandSize:       g.options.HandSize,
		LastTrick:      lastTrick,
		PendingBotSeat: pendingBotSeat,
	}
}
