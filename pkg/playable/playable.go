package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"tricktaker-server/pkg/deck"
)

// LogMessage is the format a game should send log messages in
// If SeatIDs is empty, assume it's a general statement, otherwise the message will be rendered like "{seat} did X, Y, Z"
type LogMessage struct {
	UUID    string      `json:"uuid"`
	SeatIDs []string    `json:"seatIds"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// Response is the envelope for every message pushed to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetStringSlice returns a slice of strings
func (a AdditionalData) GetStringSlice(key string) ([]string, bool) {
	switch slice := a[key].(type) {
	case []string:
		return slice, true
	case []interface{}:
		strs := make([]string, len(slice))
		for i, val := range slice {
			s, ok := val.(string)
			if !ok {
				return nil, false
			}

			strs[i] = s
		}
		return strs, true
	}

	return nil, false
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(seatID string, format string, a ...interface{}) *LogMessage {
	var seatIDs []string
	if seatID != "" {
		seatIDs = []string{seatID}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		SeatIDs: seatIDs,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardLogMessage returns a new LogMessage that shows a card
func CardLogMessage(seatID string, card deck.Card, format string, a ...interface{}) *LogMessage {
	msg := SimpleLogMessage(seatID, format, a...)
	msg.Cards = []deck.Card{card}
	return msg
}
