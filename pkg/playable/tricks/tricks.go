package tricks

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"tricktaker-server/internal/rng"
	"tricktaker-server/internal/util"
	"tricktaker-server/pkg/bot"
	"tricktaker-server/pkg/deck"
	"tricktaker-server/pkg/playable"
	"tricktaker-server/pkg/ruleset"
)

// humanSeat is the index of the seat controlled by the person at the keyboard
const humanSeat = 0

const defaultHumanName = "Player"

// Game is a four-seat game of tricks against automated seats
// A Game is not safe for concurrent use. It must be owned by a single goroutine, see room.Dealer.
type Game struct {
	options Options
	rng     rng.Generator
	brain   bot.Brain
	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	// now is swapped out by tests
	now func() time.Time

	phase         Phase
	ruleSet       ruleset.RuleSet
	seats         []*Seat
	scores        []int
	currentPlayer int
	round         int

	// trick data
	trick     ruleset.Trick
	lastTrick *CompletedTrick

	// turn is bumped every time the turn changes hands or the game is reset.
	// a pending bot move is only valid for the turn it was scheduled on
	turn           int
	pendingBotMove *pendingBotMove
}

// NewGame returns a new game in the waiting phase
// The options are checked once here; a game that was created can always be dealt
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, configurationError(err)
	}

	brain, err := bot.NewBrain(opts.BotLevel)
	if err != nil {
		return nil, configurationError(err)
	}

	gen := opts.Generator
	if gen == nil {
		gen = rng.Crypto{}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Game{
		options: opts,
		rng:     gen,
		brain:   brain,
		logger:  logger,
		logChan: make(chan []*playable.LogMessage, 256),
		now:     time.Now,
		phase:   PhaseWaiting,
		ruleSet: opts.RuleSet,
	}, nil
}

// LogChan returns a channel for receiving log messages
// Messages are dropped if nobody drains the channel
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// StartGame seats the players, deals the first round and hands the lead to the human seat.
// Any game in progress is thrown away. On error the game is left untouched.
func (g *Game) StartGame(seatNames []string, ruleSetID string) error {
	if len(seatNames) != g.options.SeatCount {
		return configurationError(fmt.Errorf("%w: expected %d seat names, got %d", ErrSeatCount, g.options.SeatCount, len(seatNames)))
	}

	rs := g.options.RuleSet
	if ruleSetID != "" {
		var err error
		if rs, err = ruleset.Get(ruleSetID); err != nil {
			return configurationError(err)
		}
	}

	g.reset()

	g.ruleSet = rs
	g.seats = make([]*Seat, len(seatNames))
	g.scores = make([]int, len(seatNames))
	for i, name := range seatNames {
		name = strings.TrimSpace(name)
		var brain bot.Brain
		if i == humanSeat {
			if name == "" {
				name = defaultHumanName
			}
		} else {
			brain = g.brain
			if name == "" {
				name = util.GetRandomName()
			}
		}

		g.seats[i] = newSeat(SeatID(i), name, brain)
	}

	g.round = 1
	g.logger.WithFields(logrus.Fields{
		"ruleSet": rs.ID(),
		"seats":   seatNames,
	}).Info("starting game")

	g.sendLogMessages(playable.SimpleLogMessage("", "New game of %s started", rs.Name()))
	g.dealRound()
	return nil
}

// ResetGame throws away the game in progress, including any pending automated move
func (g *Game) ResetGame() {
	g.reset()
	g.logger.Info("game reset")
	g.sendLogMessages(playable.SimpleLogMessage("", "The game was reset"))
}

func (g *Game) reset() {
	g.pendingBotMove = nil
	g.turn++

	g.phase = PhaseWaiting
	g.ruleSet = g.options.RuleSet
	g.seats = nil
	g.scores = nil
	g.currentPlayer = 0
	g.round = 0
	g.trick = nil
	g.lastTrick = nil
}

// PlayCard plays the card for the seat.
// Errors are always an *IllegalMoveError and leave the game as it was.
func (g *Game) PlayCard(seatID, cardID string) error {
	if g.phase != PhasePlaying {
		return illegalMove(ErrWrongPhase)
	}

	index := g.seatIndex(seatID)
	if index < 0 {
		return illegalMove(ErrUnknownSeat)
	}

	if index != g.currentPlayer {
		return illegalMove(ErrNotSeatsTurn)
	}

	card, err := deck.ParseCardID(cardID)
	if err != nil {
		return illegalMove(fmt.Errorf("%w: %s", ErrUnknownCard, cardID))
	}

	seat := g.seats[index]
	if !seat.hand.HasCard(card) {
		return illegalMove(ErrCardNotInHand)
	}

	// nothing below can fail
	seat.hand.Discard(card)
	g.trick = append(g.trick, ruleset.Play{SeatID: seat.ID, Card: card})

	g.logger.WithFields(logrus.Fields{
		"seatID": seat.ID,
		"card":   card.String(),
		"round":  g.round,
	}).Debug("play card")
	g.sendLogMessages(playable.CardLogMessage(seat.ID, card, "{} played a card"))

	if len(g.trick) == len(g.seats) {
		g.evaluateTrick()
		return nil
	}

	g.setCurrentPlayer((g.currentPlayer + 1) % len(g.seats))
	return nil
}

// setCurrentPlayer hands the turn to a seat and schedules its move if it's automated
func (g *Game) setCurrentPlayer(index int) {
	g.currentPlayer = index
	g.turn++
	g.scheduleBotMove()
}

func (g *Game) seatIndex(seatID string) int {
	for i, seat := range g.seats {
		if seat.ID == seatID {
			return i
		}
	}

	return -1
}

// SeatID returns the id for the seat at the index
func SeatID(index int) string {
	return fmt.Sprintf("p%d", index+1)
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	select {
	case g.logChan <- msg:
	default:
		g.logger.WithField("messages", len(msg)).Warn("log channel is full, dropping messages")
	}
}
