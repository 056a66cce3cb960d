package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"tricktaker-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	dealer  *room.Dealer
}

// NewMux returns a new HTTP mux
// The dealer must already be on shift
func NewMux(version string, dealer *room.Dealer) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		dealer:  dealer,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/rulesets").Handler(this.getRuleSets())

	r.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())
	r.Methods(http.MethodDelete).Path("/game").Handler(this.deleteGame())
	r.Methods(http.MethodPost).Path("/game/play").Handler(this.postGamePlay())
	r.Methods(http.MethodGet).Path("/game/winner").Handler(this.getGameWinner())
	r.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())

	return this
}
