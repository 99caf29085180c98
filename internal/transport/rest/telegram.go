package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/telegram"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

type intakeService interface {
	HandleUpdate(ctx context.Context, msg *domain.InboundMessage) error
	SetWebhook(ctx context.Context, url string) (string, error)
	WebhookInfo(ctx context.Context) (domain.WebhookInfo, error)
}

// TelegramHandler serves the bot webhook and its administration.
type TelegramHandler struct {
	intake intakeService
	log    *slog.Logger
}

// NewTelegramHandler creates a TelegramHandler.
func NewTelegramHandler(intake intakeService, logger *slog.Logger) *TelegramHandler {
	return &TelegramHandler{intake: intake, log: logger.With("handler", "telegram")}
}

// Routes registers the Telegram endpoints. The webhook carries no auth.
func (h *TelegramHandler) Routes(mux *http.ServeMux, g Guards) {
	handle(mux, "POST /api/telegram/webhook", h.Webhook, g.Limit)
	handle(mux, "POST /api/telegram/set-webhook", h.SetWebhook, g.Admin)
	handle(mux, "GET /api/telegram/webhook-info", h.WebhookInfo, g.Admin)
}

// Webhook receives a bot update. Processing failures are logged and still
// acknowledged so Telegram does not redeliver the update.
// POST /api/telegram/webhook
func (h *TelegramHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read body")
		return
	}
	msg, err := telegram.ParseUpdate(body)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.intake.HandleUpdate(r.Context(), msg); err != nil {
		h.log.ErrorContext(r.Context(), "handle telegram update", slog.String("error", err.Error()))
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

type setWebhookBody struct {
	URL string `json:"url"`
}

// SetWebhook registers the webhook URL with Telegram. An empty URL uses the
// configured one.
// POST /api/telegram/set-webhook
func (h *TelegramHandler) SetWebhook(w http.ResponseWriter, r *http.Request) {
	var body setWebhookBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	desc, err := h.intake.SetWebhook(r.Context(), body.URL)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"description": desc})
}

// WebhookInfo reports the current webhook registration.
// GET /api/telegram/webhook-info
func (h *TelegramHandler) WebhookInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.intake.WebhookInfo(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toWebhookInfoJSON(info))
}
