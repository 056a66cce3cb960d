package tricks

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"tricktaker-server/pkg/deck"
	"tricktaker-server/pkg/playable"
	"tricktaker-server/pkg/ruleset"
)

// CompletedTrick is a trick after its winner was decided
type CompletedTrick struct {
	Round    int           `json:"round"`
	Plays    ruleset.Trick `json:"plays"`
	WinnerID string        `json:"winnerId"`
}

// dealRound deals a fresh hand to every seat and gives the lead to the human seat
func (g *Game) dealRound() {
	g.phase = PhaseDealing

	cards := deck.BuildShuffledDeck(g.rng)
	hands, err := deck.Deal(cards, len(g.seats), g.options.HandSize)
	if err != nil {
		// NewGame already checked the table fits in the deck
		panic(fmt.Sprintf("could not deal round %d: %v", g.round, err))
	}

	for i, seat := range g.seats {
		sort.Sort(hands[i])
		seat.hand = hands[i]
	}

	g.logger.WithField("round", g.round).Debug("dealt round")
	g.sendLogMessages(playable.SimpleLogMessage("", "Round %d of %d has been dealt", g.round, g.options.MaxRounds))

	g.phase = PhasePlaying
	g.setCurrentPlayer(humanSeat)
}

// evaluateTrick is called as soon as the last card of a trick is played
// It awards the trick, then moves on to the next trick, the next round, or the end of the game
func (g *Game) evaluateTrick() {
	g.phase = PhaseEvaluating

	winnerID, err := g.ruleSet.Evaluate(g.trick)
	if err != nil {
		// the trick always has one card per seat at this point
		panic(fmt.Sprintf("could not evaluate trick: %v", err))
	}

	winner := g.seatIndex(winnerID)
	g.scores[winner]++
	g.seats[winner].score = g.scores[winner]

	g.lastTrick = &CompletedTrick{
		Round:    g.round,
		Plays:    g.trick,
		WinnerID: winnerID,
	}
	g.trick = nil

	g.logger.WithFields(logrus.Fields{
		"winner": winnerID,
		"round":  g.round,
		"scores": g.scores,
	}).Debug("trick evaluated")
	g.sendLogMessages(playable.SimpleLogMessage(winnerID, "{} won the trick"))

	if !g.handsEmpty() {
		g.phase = PhasePlaying
		g.setCurrentPlayer(winner)
		return
	}

	g.round++
	if g.round > g.options.MaxRounds {
		g.endGame()
		return
	}

	g.dealRound()
}

func (g *Game) handsEmpty() bool {
	for _, seat := range g.seats {
		if len(seat.hand) > 0 {
			return false
		}
	}

	return true
}

func (g *Game) endGame() {
	g.phase = PhaseGameOver
	g.pendingBotMove = nil
	g.turn++

	standings := g.winners()
	seatIDs := make([]string, len(standings))
	for i, s := range standings {
		seatIDs[i] = s.SeatID
	}

	g.logger.WithField("winners", seatIDs).Info("game over")

	msg := playable.SimpleLogMessage("", "{} won with %d tricks", standings[0].Score)
	if len(standings) > 1 {
		msg = playable.SimpleLogMessage("", "{} tied for most tricks with %d", standings[0].Score)
	}
	msg.SeatIDs = seatIDs
	g.sendLogMessages(msg)
}

// Standing is a seat's final result
type Standing struct {
	SeatID string `json:"seatId"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// GetWinner returns every seat that finished with the most tricks
// More than one standing is returned on a tie
func (g *Game) GetWinner() ([]Standing, error) {
	if g.phase != PhaseGameOver {
		return nil, illegalMove(ErrGameNotOver)
	}

	return g.winners(), nil
}

func (g *Game) winners() []Standing {
	best := 0
	for _, score := range g.scores {
		if score > best {
			best = score
		}
	}

	standings := make([]Standing, 0)
	for i, score := range g.scores {
		if score == best {
			standings = append(standings, Standing{
				SeatID: g.seats[i].ID,
				Name:   g.seats[i].Name,
				Score:  score,
			})
		}
	}

	return standings
}
