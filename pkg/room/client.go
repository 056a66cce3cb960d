package room

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"tricktaker-server/pkg/playable"
	"tricktaker-server/pkg/playable/tricks"
)

// actionTimeout bounds how long a websocket action waits for the run loop
const actionTimeout = 5 * time.Second

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	id     string
	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		Conn:  conn,
		id:    uuid.New().String(),
	}
}

// Send send a message to the web client
// Returns false if the client's buffer is full
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if c.Conn == nil {
		return c.id
	}

	return fmt.Sprintf("%s:%s", c.Conn.RemoteAddr(), c.id)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}

// ReceivedMessage handles a message from a client
// The reply is sent back to that client only; state changes are broadcast by the run loop
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	var err error
	switch msg.Action {
	case "startGame":
		seatNames, _ := msg.AdditionalData.GetStringSlice("seatNames")
		ruleSetID, _ := msg.AdditionalData.GetString("ruleSet")
		err = d.StartGame(ctx, seatNames, ruleSetID)
	case "playCard":
		cardID, _ := msg.AdditionalData.GetString("cardId")
		err = d.PlayCard(ctx, msg.Subject, cardID)
	case "resetGame":
		err = d.ResetGame(ctx)
	case "getState":
		var state *tricks.GameState
		if state, err = d.State(ctx); err == nil {
			res := newGameResponse(state)
			res.Context = msg.Context
			c.Send(res)
			return
		}
	default:
		d.logger.WithField("action", msg.Action).Warn("unknown message")
		c.Send(newErrorResponse(msg.Context, fmt.Errorf("unknown action: %s", msg.Action)))
		return
	}

	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Info("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(playable.OK(msg.Context))
}
