package mux

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Session string `json:"session"`
	Clients int    `json:"clients"`
}

// getHealth reports the build version along with the session the dealer is running
func (m *Mux) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "OK",
			Version: m.version,
			Session: m.dealer.ID,
			Clients: len(m.dealer.Clients()),
		})
	}
}
