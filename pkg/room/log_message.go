package room

import (
	"tricktaker-server/pkg/playable"
)

// logBacklogSize is how many log messages a client receives when it connects mid-game
const logBacklogSize = 25

// addLogMessages appends to the backlog, dropping the oldest messages past logBacklogSize
// NOTE: must only be called from the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	backlog := append(d.logMessages, messages...)
	if overflow := len(backlog) - logBacklogSize; overflow > 0 {
		backlog = backlog[overflow:]
	}

	d.logMessages = backlog
}

// logBacklogResponse returns a copy of the backlog as a "log" response
// Returns nil if nothing has been logged since the game started
// NOTE: must only be called from the run loop
func (d *Dealer) logBacklogResponse() *playable.Response {
	if len(d.logMessages) == 0 {
		return nil
	}

	return &playable.Response{
		Key:  "log",
		Data: append([]*playable.LogMessage{}, d.logMessages...),
	}
}
