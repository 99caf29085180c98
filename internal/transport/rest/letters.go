package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/letter"
)

type letterService interface {
	List(ctx context.Context, input letter.ListInput) ([]domain.Letter, error)
	Get(ctx context.Context, id int64) (*domain.LetterWithRequests, error)
	Update(ctx context.Context, input letter.UpdateInput) (*domain.Letter, error)
	Submit(ctx context.Context, id int64) (*domain.Letter, error)
	Sign(ctx context.Context, input letter.SignInput) (*domain.Letter, error)
	Reject(ctx context.Context, input letter.RejectInput) (*domain.Letter, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.LetterStats, error)
	History(ctx context.Context, id int64, limit int) ([]domain.LetterEvent, error)
	Combine(ctx context.Context, input letter.CombineInput) (*letter.CombineResult, error)
}

// LetterHandler serves /api/letters and the combine endpoint.
type LetterHandler struct {
	letters letterService
	log     *slog.Logger
}

// NewLetterHandler creates a LetterHandler.
func NewLetterHandler(letters letterService, logger *slog.Logger) *LetterHandler {
	return &LetterHandler{letters: letters, log: logger.With("handler", "letters")}
}

// Routes registers the letter endpoints. Sign and reject are open to
// managers; every other mutation is admin-only.
func (h *LetterHandler) Routes(mux *http.ServeMux, g Guards) {
	handle(mux, "GET /api/letters", h.List, g.Staff)
	handle(mux, "GET /api/letters/stats/overview", h.Stats, g.Staff)
	handle(mux, "GET /api/letters/{id}", h.Get, g.Staff)
	handle(mux, "GET /api/letters/{id}/history", h.History, g.Staff)
	handle(mux, "PUT /api/letters/{id}", h.Update, g.Admin)
	handle(mux, "DELETE /api/letters/{id}", h.Delete, g.Admin)
	handle(mux, "POST /api/letters/{id}/submit", h.Submit, g.Admin)
	handle(mux, "POST /api/letters/{id}/sign", h.Sign, g.Staff)
	handle(mux, "POST /api/letters/{id}/reject", h.Reject, g.Staff)
	handle(mux, "POST /api/gemini/combine", h.Combine, g.Admin, g.Limit)
}

// List returns letters, newest first.
// GET /api/letters?status=draft&limit=20&offset=0
func (h *LetterHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	letters, err := h.letters.List(r.Context(), letter.ListInput{
		Status: queryString(r, "status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]letterJSON, 0, len(letters))
	for _, l := range letters {
		out = append(out, toLetterJSON(l))
	}
	writeData(w, http.StatusOK, out)
}

// Get returns a letter with its requests.
// GET /api/letters/{id}
func (h *LetterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	l, err := h.letters.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toLetterWithRequestsJSON(*l))
}

// History returns the audit trail of a letter, newest first.
// GET /api/letters/{id}/history?limit=50
func (h *LetterHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	events, err := h.letters.History(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toLetterEventsJSON(events))
}

type updateLetterBody struct {
	Title          *string `json:"title"`
	Content        *string `json:"content"`
	ManagerComment *string `json:"manager_comment"`
	RecipientEmail *string `json:"recipient_email"`
}

// Update edits a draft or pending letter.
// PUT /api/letters/{id}
func (h *LetterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body updateLetterBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	l, err := h.letters.Update(r.Context(), letter.UpdateInput{
		ID:             id,
		Title:          body.Title,
		Content:        body.Content,
		ManagerComment: body.ManagerComment,
		RecipientEmail: body.RecipientEmail,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toLetterJSON(*l))
}

// Submit sends a draft for approval.
// POST /api/letters/{id}/submit
func (h *LetterHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	l, err := h.letters.Submit(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toLetterJSON(*l))
}

type signBody struct {
	Comment *string `json:"comment"`
}

// Sign approves a pending letter.
// POST /api/letters/{id}/sign
func (h *LetterHandler) Sign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body signBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	l, err := h.letters.Sign(r.Context(), letter.SignInput{ID: id, Comment: body.Comment})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toLetterJSON(*l))
}

type rejectBody struct {
	Reason *string `json:"reason"`
}

// Reject returns a letter to draft.
// POST /api/letters/{id}/reject
func (h *LetterHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body rejectBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	l, err := h.letters.Reject(r.Context(), letter.RejectInput{ID: id, Reason: body.Reason})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toLetterJSON(*l))
}

// Delete removes a draft letter and releases its requests.
// DELETE /api/letters/{id}
func (h *LetterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.letters.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"id": id})
}

// Stats returns the letter overview.
// GET /api/letters/stats/overview
func (h *LetterHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.letters.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toLetterStatsJSON(stats))
}

type combineBody struct {
	RequestIDs []int64 `json:"request_ids"`
	Title      *string `json:"title"`
}

// Combine drafts a letter from approved requests.
// POST /api/gemini/combine
func (h *LetterHandler) Combine(w http.ResponseWriter, r *http.Request) {
	var body combineBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	res, err := h.letters.Combine(r.Context(), letter.CombineInput{
		RequestIDs: body.RequestIDs,
		Title:      body.Title,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toCombineJSON(res))
}
