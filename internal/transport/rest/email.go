package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/mailer"
)

type mailerService interface {
	SendLetter(ctx context.Context, input mailer.SendLetterInput) (*mailer.SendResult, error)
	SendTest(ctx context.Context, input mailer.SendTestInput) (*mailer.SendResult, error)
	Logs(ctx context.Context, input mailer.LogsInput) ([]domain.EmailLog, error)
	Stats(ctx context.Context) (domain.EmailStats, error)
	ConfigStatus() mailer.ConfigStatus
}

// EmailHandler serves /api/email.
type EmailHandler struct {
	mailer mailerService
	log    *slog.Logger
}

// NewEmailHandler creates an EmailHandler.
func NewEmailHandler(m mailerService, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{mailer: m, log: logger.With("handler", "email")}
}

// Routes registers the e-mail endpoints. All of them are admin-only.
func (h *EmailHandler) Routes(mux *http.ServeMux, g Guards) {
	handle(mux, "POST /api/email/send-letter", h.SendLetter, g.Admin, g.Limit)
	handle(mux, "POST /api/email/send-test", h.SendTest, g.Admin, g.Limit)
	handle(mux, "GET /api/email/logs", h.Logs, g.Admin)
	handle(mux, "GET /api/email/stats", h.Stats, g.Admin)
	handle(mux, "GET /api/email/config/test", h.ConfigTest, g.Admin)
}

type sendLetterBody struct {
	LetterID       int64   `json:"letter_id"`
	RecipientEmail string  `json:"recipient_email"`
	Subject        *string `json:"subject"`
}

// SendLetter e-mails a signed letter.
// POST /api/email/send-letter
func (h *EmailHandler) SendLetter(w http.ResponseWriter, r *http.Request) {
	var body sendLetterBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	res, err := h.mailer.SendLetter(r.Context(), mailer.SendLetterInput{
		LetterID:       body.LetterID,
		RecipientEmail: body.RecipientEmail,
		Subject:        body.Subject,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toSendResultJSON(res))
}

type sendTestBody struct {
	RecipientEmail string  `json:"recipient_email"`
	Subject        *string `json:"subject"`
	Content        *string `json:"content"`
}

// SendTest sends a fixed test message.
// POST /api/email/send-test
func (h *EmailHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	var body sendTestBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	res, err := h.mailer.SendTest(r.Context(), mailer.SendTestInput{
		RecipientEmail: body.RecipientEmail,
		Subject:        body.Subject,
		Content:        body.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toSendResultJSON(res))
}

// Logs lists send attempts, newest first.
// GET /api/email/logs?status=error&limit=50
func (h *EmailHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	logs, err := h.mailer.Logs(r.Context(), mailer.LogsInput{
		Status: queryString(r, "status"),
		Limit:  limit,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toEmailLogsJSON(logs))
}

// Stats returns send statistics.
// GET /api/email/stats
func (h *EmailHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.mailer.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toEmailStatsJSON(stats))
}

// ConfigTest reports whether e-mail delivery is configured.
// GET /api/email/config/test
func (h *EmailHandler) ConfigTest(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, toConfigStatusJSON(h.mailer.ConfigStatus()))
}
