package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/kmatsu/story-checker/internal/types"
)

// ReviewRequest represents the request body for /api/review
type ReviewRequest struct {
	Title      string   `json:"title"`
	FullText   string   `json:"full_text"`
	Summary    string   `json:"summary"`
	Paragraphs []string `json:"paragraphs"`
}

// handleReview evaluates a document and returns the report. Validation
// failures surface inside the report's error field with status 200; only
// undecodable bodies and canceled runs map to error statuses.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Cause: err})
		return
	}

	ctx := r.Context()
	if s.reviewTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.reviewTimeout)
		defer cancel()
	}

	doc := &types.Document{
		Title:      req.Title,
		FullText:   req.FullText,
		Summary:    req.Summary,
		Paragraphs: req.Paragraphs,
	}

	log.Printf("Reviewing document %q", req.Title)
	report, err := s.pipeline.Evaluate(ctx, doc)
	if err != nil {
		s.errorResponse(w, &ErrEvaluation{Cause: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
