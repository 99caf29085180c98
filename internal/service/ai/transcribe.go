package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// TranscriptionPlaceholder is returned while no speech-to-text backend exists.
const TranscriptionPlaceholder = "[Transcription unavailable]"

// minAnalyzeRunes is the shortest transcription worth classifying.
const minAnalyzeRunes = 10

// Transcription is the result of converting a voice message to text.
type Transcription struct {
	Text       string
	Confidence float64
	Language   string
}

// Usable reports whether the text is a real transcription.
func (t Transcription) Usable() bool {
	text := strings.TrimSpace(t.Text)
	return text != "" && text != TranscriptionPlaceholder
}

// TranscribeInput holds the parameters for transcription.
type TranscribeInput struct {
	AudioURL  string
	RequestID *int64
}

// Validate checks all fields and collects all errors.
func (i TranscribeInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.AudioURL) == "" {
		errs = append(errs, domain.FieldError{Field: "audio_url", Message: "required"})
	}
	if i.RequestID != nil && *i.RequestID <= 0 {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// placeholderTranscription is the speech-to-text backend used while none is
// wired: it always reports unavailability.
func (s *Service) placeholderTranscription(ctx context.Context, audioURL string) Transcription {
	s.log.DebugContext(ctx, "transcription unavailable", slog.String("audio_url", audioURL))
	return Transcription{Text: TranscriptionPlaceholder, Confidence: 0, Language: "ru"}
}

// Transcribe converts a voice message. When a request id is given and the
// transcription is usable it replaces the request text, and texts longer
// than ten runes are classified as well.
func (s *Service) Transcribe(ctx context.Context, input TranscribeInput) (Transcription, error) {
	if err := input.Validate(); err != nil {
		return Transcription{}, err
	}

	t := s.transcribeAudio(ctx, input.AudioURL)
	if input.RequestID == nil || !t.Usable() {
		return t, nil
	}

	id := *input.RequestID
	if err := s.requests.ApplyTranscription(ctx, id, t.Text); err != nil {
		return Transcription{}, fmt.Errorf("store transcription: %w", err)
	}

	if utf8.RuneCountInString(t.Text) > minAnalyzeRunes {
		c := s.Analyze(ctx, t.Text)
		if err := s.requests.ApplyClassification(ctx, id, c); err != nil {
			return Transcription{}, fmt.Errorf("store classification: %w", err)
		}
	}
	return t, nil
}
