package tricks

import (
	"time"

	"github.com/sirupsen/logrus"
	"tricktaker-server/pkg/bot"
	"tricktaker-server/pkg/playable"
)

var _ playable.Tickable = &Game{}

// tickInterval is how often the owner should call Tick()
const tickInterval = 100 * time.Millisecond

// pendingBotMove is the one automated move waiting to fire
// Replacing or clearing it cancels the previous move
type pendingBotMove struct {
	SeatIndex    int
	Turn         int
	ExecuteAfter time.Time
}

// scheduleBotMove replaces any pending move with one for the current seat, if it is automated
func (g *Game) scheduleBotMove() {
	g.pendingBotMove = nil

	if g.phase != PhasePlaying {
		return
	}

	seat := g.seats[g.currentPlayer]
	if seat.IsHuman() {
		return
	}

	g.pendingBotMove = &pendingBotMove{
		SeatIndex:    g.currentPlayer,
		Turn:         g.turn,
		ExecuteAfter: g.now().Add(g.options.BotDelay),
	}
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return tickInterval
}

// Tick plays the pending automated move once it is due
// Returns true if the game state changed
func (g *Game) Tick() (bool, error) {
	move := g.pendingBotMove
	if move == nil {
		return false, nil
	}

	if g.now().Before(move.ExecuteAfter) {
		return false, nil
	}

	g.pendingBotMove = nil

	// the state may have moved on since the move was scheduled
	if !g.isBotMoveCurrent(move) {
		g.logger.WithField("seat", move.SeatIndex).Debug("ignoring stale automated move")
		return false, nil
	}

	seat := g.seats[move.SeatIndex]
	card, err := seat.brain.ChooseCard(bot.View{
		SeatID:  seat.ID,
		Hand:    seat.Hand(),
		Trick:   g.trick.Clone(),
		RuleSet: g.ruleSet,
	})
	if err != nil {
		g.scheduleBotMove()
		return false, err
	}

	g.logger.WithFields(logrus.Fields{
		"seatID": seat.ID,
		"card":   card.String(),
	}).Debug("automated seat plays")

	if err := g.PlayCard(seat.ID, card.ID()); err != nil {
		// the turn is still this seat's, so try again after another delay
		g.scheduleBotMove()
		return false, err
	}

	return true, nil
}

func (g *Game) isBotMoveCurrent(move *pendingBotMove) bool {
	if g.phase != PhasePlaying || move.Turn != g.turn || move.SeatIndex != g.currentPlayer {
		return false
	}

	seat := g.seats[move.SeatIndex]
	return !seat.IsHuman() && len(seat.hand) > 0 && !g.trick.Has(seat.ID)
}
