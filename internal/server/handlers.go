package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpatodia/tickettriage/internal/ticket"
)

// analyzeRequest is the analyze endpoint's body. Callers send either a raw
// text blob or a subject/body pair.
type analyzeRequest struct {
	Text          string `json:"text"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	CustomerEmail string `json:"customer_email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body := req.Body
	if body == "" {
		body = req.Text
	}
	t := ticket.New(req.Subject, body, req.CustomerEmail)

	result, err := s.pipeline.Process(r.Context(), t)
	if err != nil {
		if errors.Is(err, ticket.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
