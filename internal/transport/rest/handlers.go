package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helpbase/faqdex/internal/domain"
	"github.com/helpbase/faqdex/internal/metrics"
	chatuc "github.com/helpbase/faqdex/internal/usecase/chat"
	recorduc "github.com/helpbase/faqdex/internal/usecase/record"
)

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer   string   `json:"answer"`
	Outcome  string   `json:"outcome"`
	Score    int      `json:"score,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type recordPayload struct {
	ID       string   `json:"id,omitempty"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords,omitempty"`
}

type importRequest struct {
	Records []recordPayload `json:"records"`
}

type importItemResult struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
	Error   string `json:"error,omitempty"`
}

type importResponse struct {
	Results []importItemResult `json:"results"`
}

type listResponse struct {
	Items []recordPayload `json:"items"`
	Total int             `json:"total"`
}

// handleChat handles POST /chat. Recovered failure outcomes still return
// 200 with the fixed trouble message so the widget renders it in the
// transcript; only a rejected concurrent turn is an HTTP error.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	// Cap the body well before JSON decoding; the question limit plus
	// room for the JSON envelope.
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.maxQuestionSize)+1024)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	if len(req.Question) > s.maxQuestionSize {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("question exceeds %d bytes", s.maxQuestionSize))
		return
	}

	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		sessionID = "anon"
	}

	reply, err := s.chat.Ask(r.Context(), sessionID, req.Question)
	if err != nil {
		metrics.ChatTurnsTotal.WithLabelValues("rejected").Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.ChatTurnsTotal.WithLabelValues(string(reply.Outcome)).Inc()
	if reply.Outcome == chatuc.OutcomeAnswered {
		metrics.ChatBestScore.Observe(float64(reply.Score))
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Answer:   reply.Answer,
		Outcome:  string(reply.Outcome),
		Score:    reply.Score,
		Keywords: reply.Keywords,
	})
}

// handleCreateRecord handles POST /records.
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var req recordPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	rec, created, err := s.records.Create(r.Context(), recorduc.Input{
		ID:       req.ID,
		Question: req.Question,
		Answer:   req.Answer,
		Keywords: req.Keywords,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, recordToPayload(rec))
}

// handleImportRecords handles POST /records/import.
func (s *Server) handleImportRecords(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Records) == 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "records is required")
		return
	}

	items := make([]recorduc.Input, len(req.Records))
	for i, p := range req.Records {
		items[i] = recorduc.Input{ID: p.ID, Question: p.Question, Answer: p.Answer, Keywords: p.Keywords}
	}

	results, err := s.records.Import(r.Context(), items)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := importResponse{Results: make([]importItemResult, len(results))}
	for i, res := range results {
		item := importItemResult{ID: res.ID, Created: res.Created}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		resp.Results[i] = item
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleListRecords handles GET /records.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := s.records.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]recordPayload, len(recs))
	for i := range recs {
		items[i] = recordToPayload(recs[i])
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: len(items)})
}

// handleGetRecord handles GET /records/{id}.
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToPayload(rec))
}

// handleDeleteRecord handles DELETE /records/{id}.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.records.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func recordToPayload(rec domain.QARecord) recordPayload {
	return recordPayload{
		ID:       rec.ID(),
		Question: rec.Question(),
		Answer:   rec.Answer(),
		Keywords: rec.Keywords(),
	}
}
