package mux

import (
	"net/http"

	"tricktaker-server/pkg/playable/tricks"
	"tricktaker-server/pkg/ruleset"
)

func (m *Mux) getRuleSets() http.HandlerFunc {
	all := ruleset.All()
	infos := make([]ruleset.Info, len(all))
	for i, rs := range all {
		infos[i] = rs.Info()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, infos)
	}
}

// writeState responds with the latest snapshot
func (m *Mux) writeState(w http.ResponseWriter, r *http.Request, statusCode int) {
	state, err := m.dealer.State(r.Context())
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, statusCode, state)
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.writeState(w, r, http.StatusOK)
	}
}

type postGamePayload struct {
	SeatNames []string `json:"seatNames"`
	RuleSet   string   `json:"ruleSet"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGamePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if err := m.dealer.StartGame(r.Context(), payload.SeatNames, payload.RuleSet); err != nil {
			writeGameError(w, err)
			return
		}

		m.writeState(w, r, http.StatusCreated)
	}
}

func (m *Mux) deleteGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.dealer.ResetGame(r.Context()); err != nil {
			writeGameError(w, err)
			return
		}

		m.writeState(w, r, http.StatusOK)
	}
}

type postGamePlayPayload struct {
	SeatID string `json:"seatId"`
	CardID string `json:"cardId"`
}

func (m *Mux) postGamePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGamePlayPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if err := m.dealer.PlayCard(r.Context(), payload.SeatID, payload.CardID); err != nil {
			writeGameError(w, err)
			return
		}

		m.writeState(w, r, http.StatusOK)
	}
}

type winnerResponse struct {
	Winners []tricks.Standing `json:"winners"`
}

func (m *Mux) getGameWinner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := m.dealer.Winner(r.Context())
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, winnerResponse{Winners: standings})
	}
}
