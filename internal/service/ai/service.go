// Package ai implements best-effort text classification, letter composition
// and text improvement on top of an LLM provider. Every operation has a local
// fallback so that upstream failures never reach the caller, except
// ClassifyRequest, which reports them so a queued task can be retried.
package ai

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const (
	analyzeTemperature = 0.2
	composeTemperature = 0.3
	improveTemperature = 0.4

	summaryRunes = 100
)

type completer interface {
	Complete(ctx context.Context, p llm.Prompt) (string, error)
}

type requestRepo interface {
	ApplyClassification(ctx context.Context, id int64, c domain.Classification) error
	ApplyTranscription(ctx context.Context, id int64, text string) error
}

// Service wraps the LLM with fallbacks. A nil completer is valid: every
// operation then takes its fallback path.
type Service struct {
	log      *slog.Logger
	llm      completer
	requests requestRepo
	md       goldmark.Markdown
	now      func() time.Time

	transcribeAudio func(ctx context.Context, audioURL string) Transcription
}

// NewService creates a new AI service.
func NewService(log *slog.Logger, model completer, requests requestRepo) *Service {
	s := &Service{
		log:      log.With("service", "ai"),
		llm:      model,
		requests: requests,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		now:      time.Now,
	}
	s.transcribeAudio = s.placeholderTranscription
	return s
}

// Enabled reports whether an upstream model is configured.
func (s *Service) Enabled() bool {
	return s.llm != nil
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// toHTML renders markdown to HTML unless s already looks like HTML.
func (s *Service) toHTML(src string) string {
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, "</") {
		return trimmed
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(trimmed), &buf); err != nil {
		return trimmed
	}
	return strings.TrimSpace(buf.String())
}
