package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/ats-scanner/internal/types"
)

// HistoryEntryResponse is one retained scan as returned by GET /history.
type HistoryEntryResponse struct {
	ID        string           `json:"id"`
	CreatedAt string           `json:"created_at"`
	Result    *types.ATSResult `json:"result"`
}

// HistoryResponse is the response for GET /history.
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

// handleScan validates the request, runs the engine, and records the result
// in the session history. Validation failures never reach the engine;
// anything unexpected inside the engine surfaces as a generic failure with
// the cause attached for diagnostics.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req types.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "resumeText", Message: "resume text is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	result, err := s.engine.Scan(&req)
	if err != nil {
		log.Printf("Scan failed: %v", err)
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error":  "failed to analyze resume",
			"detail": err.Error(),
		})
		return
	}

	s.tracker.Record(req.ResumeText, result)

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHistory returns the scans retained for this session, oldest first.
func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	entries := s.tracker.Entries()

	resp := HistoryResponse{Entries: make([]HistoryEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryEntryResponse{
			ID:        e.ID.String(),
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
			Result:    e.Result,
		})
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHistoryCompare reports the delta between the two most recent scans.
func (s *Server) handleHistoryCompare(w http.ResponseWriter, _ *http.Request) {
	comparison, ok := s.tracker.Compare()
	if !ok {
		nerr := &ErrNotEnoughScans{}
		s.errorResponse(w, HTTPStatus(nerr), nerr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, comparison)
}
