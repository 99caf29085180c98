package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/request"
)

type requestService interface {
	Create(ctx context.Context, input request.CreateInput) (*domain.Request, error)
	Get(ctx context.Context, id int64) (*domain.Request, error)
	List(ctx context.Context, input request.ListInput) ([]domain.Request, error)
	Update(ctx context.Context, input request.UpdateInput) (*domain.Request, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.RequestStats, error)
}

// RequestHandler serves /api/requests.
type RequestHandler struct {
	requests requestService
	log      *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(requests requestService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{requests: requests, log: logger.With("handler", "requests")}
}

// Routes registers the request endpoints.
func (h *RequestHandler) Routes(mux *http.ServeMux, g Guards) {
	handle(mux, "GET /api/requests", h.List, g.Staff)
	handle(mux, "GET /api/requests/stats/overview", h.Stats, g.Staff)
	handle(mux, "GET /api/requests/{id}", h.Get, g.Staff)
	handle(mux, "POST /api/requests", h.Create, g.Admin)
	handle(mux, "PUT /api/requests/{id}", h.Update, g.Admin)
	handle(mux, "DELETE /api/requests/{id}", h.Delete, g.Admin)
}

type createRequestBody struct {
	TelegramUserID   flexID  `json:"telegram_user_id"`
	TelegramUsername *string `json:"telegram_username"`
	UserName         string  `json:"user_name"`
	MessageText      string  `json:"message_text"`
	AudioFileURL     *string `json:"audio_file_url"`
	TranscribedText  *string `json:"transcribed_text"`
	Category         *string `json:"category"`
	UrgencyLevel     *int    `json:"urgency_level"`
	ChangeType       *string `json:"change_type"`
	DocSection       *string `json:"doc_section"`
}

// Create stores a new request.
// POST /api/requests
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	req, err := h.requests.Create(r.Context(), request.CreateInput{
		TelegramUserID:   string(body.TelegramUserID),
		TelegramUsername: body.TelegramUsername,
		UserName:         body.UserName,
		MessageText:      body.MessageText,
		AudioFileURL:     body.AudioFileURL,
		TranscribedText:  body.TranscribedText,
		Category:         body.Category,
		UrgencyLevel:     body.UrgencyLevel,
		ChangeType:       body.ChangeType,
		DocSection:       body.DocSection,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toRequestJSON(*req))
}

// Get returns one request.
// GET /api/requests/{id}
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	req, err := h.requests.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toRequestJSON(*req))
}

// List returns requests, newest first.
// GET /api/requests?status=new&category=other&limit=50&offset=0
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
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

	reqs, err := h.requests.List(r.Context(), request.ListInput{
		Status:   queryString(r, "status"),
		Category: queryString(r, "category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toRequestsJSON(reqs))
}

type updateRequestBody struct {
	Status       *string `json:"status"`
	IsApproved   *bool   `json:"is_approved"`
	AdminComment *string `json:"admin_comment"`
	Category     *string `json:"category"`
	UrgencyLevel *int    `json:"urgency_level"`
	ChangeType   *string `json:"change_type"`
	DocSection   *string `json:"doc_section"`
}

// Update applies a partial update.
// PUT /api/requests/{id}
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body updateRequestBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	req, err := h.requests.Update(r.Context(), request.UpdateInput{
		ID:           id,
		Status:       body.Status,
		IsApproved:   body.IsApproved,
		AdminComment: body.AdminComment,
		Category:     body.Category,
		UrgencyLevel: body.UrgencyLevel,
		ChangeType:   body.ChangeType,
		DocSection:   body.DocSection,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toRequestJSON(*req))
}

// Delete removes a request.
// DELETE /api/requests/{id}
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.requests.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"id": id})
}

// Stats returns the request overview.
// GET /api/requests/stats/overview
func (h *RequestHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.requests.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toRequestStatsJSON(stats))
}
