package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/ai"
)

type aiService interface {
	AnalyzeRequest(ctx context.Context, input ai.AnalyzeInput) (domain.Classification, error)
	Transcribe(ctx context.Context, input ai.TranscribeInput) (ai.Transcription, error)
	ImproveText(ctx context.Context, input ai.ImproveInput) (ai.Improvement, error)
}

// AIHandler serves the model-backed helper endpoints.
type AIHandler struct {
	ai  aiService
	log *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(svc aiService, logger *slog.Logger) *AIHandler {
	return &AIHandler{ai: svc, log: logger.With("handler", "ai")}
}

// Routes registers the AI endpoints.
func (h *AIHandler) Routes(mux *http.ServeMux, g Guards) {
	handle(mux, "POST /api/gemini/analyze", h.Analyze, g.Staff, g.Limit)
	handle(mux, "POST /api/gemini/transcribe", h.Transcribe, g.Staff, g.Limit)
	handle(mux, "POST /api/gemini/improve-text", h.ImproveText, g.Staff, g.Limit)
}

type analyzeBody struct {
	Text      string `json:"text"`
	RequestID *int64 `json:"request_id"`
}

// Analyze classifies text and optionally stores the result on a request.
// POST /api/gemini/analyze
func (h *AIHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var body analyzeBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.ai.AnalyzeRequest(r.Context(), ai.AnalyzeInput{Text: body.Text, RequestID: body.RequestID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toClassificationJSON(c))
}

type transcribeBody struct {
	AudioURL  string `json:"audio_url"`
	RequestID *int64 `json:"request_id"`
}

// Transcribe converts a voice message to text.
// POST /api/gemini/transcribe
func (h *AIHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var body transcribeBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	t, err := h.ai.Transcribe(r.Context(), ai.TranscribeInput{AudioURL: body.AudioURL, RequestID: body.RequestID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTranscriptionJSON(t))
}

type improveBody struct {
	Text    string  `json:"text"`
	Context *string `json:"context"`
}

// ImproveText polishes letter text.
// POST /api/gemini/improve-text
func (h *AIHandler) ImproveText(w http.ResponseWriter, r *http.Request) {
	var body improveBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	res, err := h.ai.ImproveText(r.Context(), ai.ImproveInput{Text: body.Text, Context: body.Context})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toImprovementJSON(res))
}
