package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jonkmatsumo/resume-parser/internal/ingestion"
	"github.com/jonkmatsumo/resume-parser/internal/parsing"
)

// maxRequestBytes caps the request body; the parse boundary has its own
// document cap, this one only protects the decoder.
const maxRequestBytes = 4 << 20

// parseRequest is the POST /v1/parse payload. Exactly one of text or html
// must be set.
type parseRequest struct {
	Text string `json:"text" validate:"required_without=HTML,excluded_with=HTML"`
	HTML string `json:"html" validate:"required_without=Text"`
}

// handleParse decodes the request, optionally strips HTML, runs the parse
// pipeline, and returns the record plus its confidence report.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes+1))
	if err != nil {
		s.writeError(w, r, &ErrUnsupportedBody{Message: "failed to read request body"})
		return
	}
	if len(body) > maxRequestBytes {
		s.writeError(w, r, &parsing.InputError{Message: "request body too large"})
		return
	}

	var req parseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, &ErrUnsupportedBody{Message: "invalid JSON"})
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "text", Message: "exactly one of 'text' or 'html' is required"})
		return
	}

	text := req.Text
	if req.HTML != "" {
		text, err = ingestion.ExtractText(req.HTML)
		if err != nil {
			s.writeError(w, r, &ErrUnsupportedBody{Message: "failed to extract text from html"})
			return
		}
	} else {
		text = ingestion.CleanText(text)
	}

	result, err := parsing.Parse(text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	log.Debug().
		Str("request_id", requestIDFrom(r.Context())).
		Int("overall_confidence", result.Confidence.Overall).
		Msg("parsed resume")

	s.writeJSON(w, http.StatusOK, result)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", requestIDFrom(r.Context())).Msg("request failed")
	}
	s.writeJSON(w, status, errorEnvelope{Error: errorBody{
		Message:   err.Error(),
		RequestID: requestIDFrom(r.Context()),
	}})
}
