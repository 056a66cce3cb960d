package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"tricktaker-server/pkg/playable"
	"tricktaker-server/pkg/playable/tricks"
)

// ErrDealerClosed is returned when an operation is sent to a dealer whose shift has ended
var ErrDealerClosed = errors.New("the dealer is no longer running")

// ErrNotHumanSeat happens when a client tries to play for an automated seat
var ErrNotHumanSeat = errors.New("only the human seat can be played by a client")

// Dealer owns the game and is the only goroutine that touches it
// Every operation, tick and client broadcast happens in the run loop, so the game never needs a lock
type Dealer struct {
	ID string

	game   *tricks.Game
	logger logrus.FieldLogger

	clients     map[*Client]bool
	lock        sync.RWMutex
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
func NewDealer(logger logrus.FieldLogger, game *tricks.Game) *Dealer {
	id := uuid.New().String()
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Dealer{
		ID:            id,
		game:          game,
		logger:        logger.WithField("session", id),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop. It is safe to call more than once.
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")

	ticker := time.NewTicker(d.game.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			changed, err := d.game.Tick()
			if err != nil {
				d.logger.WithError(err).Error("could not advance the game")
			}

			if changed {
				d.sendGameData()
			}
		case messages := <-d.game.LogChan():
			d.addLogMessages(messages)
			d.broadcast(&playable.Response{
				Key:  "log",
				Data: messages,
			})
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// exec runs fn inside the run loop and waits for it to finish
func (d *Dealer) exec(ctx context.Context, fn func() error) error {
	select {
	case <-d.close:
		return ErrDealerClosed
	default:
	}

	done := make(chan error, 1)
	select {
	case d.execInRunLoop <- func() { done <- fn() }:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StartGame starts a new game, replacing any game in progress
func (d *Dealer) StartGame(ctx context.Context, seatNames []string, ruleSetID string) error {
	return d.exec(ctx, func() error {
		if err := d.game.StartGame(seatNames, ruleSetID); err != nil {
			return err
		}

		d.logMessages = nil
		d.sendGameData()
		return nil
	})
}

// PlayCard plays a card for the human seat
func (d *Dealer) PlayCard(ctx context.Context, seatID, cardID string) error {
	if seatID == "" {
		seatID = HumanSeatID()
	}

	if seatID != HumanSeatID() {
		return &tricks.IllegalMoveError{Err: ErrNotHumanSeat}
	}

	return d.exec(ctx, func() error {
		if err := d.game.PlayCard(seatID, cardID); err != nil {
			return err
		}

		d.sendGameData()
		return nil
	})
}

// ResetGame returns the game to the waiting phase
func (d *Dealer) ResetGame(ctx context.Context) error {
	return d.exec(ctx, func() error {
		d.game.ResetGame()
		d.sendGameData()
		return nil
	})
}

// State returns a snapshot of the game
func (d *Dealer) State(ctx context.Context) (*tricks.GameState, error) {
	var state *tricks.GameState
	err := d.exec(ctx, func() error {
		state = d.game.GetState()
		return nil
	})

	return state, err
}

// Winner returns the winning seats of a finished game
func (d *Dealer) Winner(ctx context.Context) ([]tricks.Standing, error) {
	var standings []tricks.Standing
	err := d.exec(ctx, func() error {
		var err error
		standings, err = d.game.GetWinner()
		return err
	})

	return standings, err
}

// HumanSeatID is the seat id clients play for
func HumanSeatID() string {
	return tricks.SeatID(0)
}

// AddClient adds a client and sends it the current state
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	fn := func() {
		client.Send(newGameResponse(d.game.GetState()))
		if res := d.logBacklogResponse(); res != nil {
			client.Send(res)
		}
	}

	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
		d.logger.WithField("client", client.String()).Debug("client added after the shift ended")
	}
}

// RemoveClient removes a client
// Returns true if it was the last client
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	return nClients == 0
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	d.broadcast(newGameResponse(d.game.GetState()))
}

func (d *Dealer) broadcast(res *playable.Response) {
	for _, client := range d.Clients() {
		if !client.Send(res) {
			d.logger.WithField("client", client.String()).Warn("client send buffer is full")
		}
	}
}
