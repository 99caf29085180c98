package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

type analysisResponse struct {
	Category     string `json:"category" jsonschema:"enum=technical_error,enum=documentation_addition,enum=regulatory_change,enum=economic_justification,enum=other"`
	UrgencyLevel int    `json:"urgency_level" jsonschema:"minimum=1,maximum=3"`
	ChangeType   string `json:"change_type" jsonschema:"enum=error_fix,enum=addition,enum=correction,enum=new_section,enum=other"`
	DocSection   string `json:"doc_section" jsonschema:"enum=foundations,enum=walls,enum=roof,enum=power_supply,enum=water_supply,enum=heating,enum=explanatory_note,enum=other"`
	Summary      string `json:"summary"`
}

var analysisSchema = llm.SchemaJSON(&analysisResponse{})

const analyzeSystemPrompt = `You classify change requests for construction project documentation.
Answer with a single JSON object and nothing else.

Urgency: 1 = urgent, 2 = normal, 3 = low priority.
Treat words like "urgent", "critical", "blocks work" as urgency 1.
Use technical terms to pick the documentation section.
Pick the change type from what the author asks for (fix, addition, correction, new section).

JSON schema of the answer:
`

// DefaultClassification is returned whenever the model cannot be used.
func DefaultClassification(text string) domain.Classification {
	return domain.Classification{
		Category:   domain.CategoryOther,
		Urgency:    domain.DefaultUrgency,
		ChangeType: domain.ChangeTypeOther,
		DocSection: domain.DocSectionOther,
		Summary:    truncateRunes(text, summaryRunes),
	}
}

// Analyze classifies text. It never fails: any upstream problem yields
// DefaultClassification, and invalid fields fall back one by one.
func (s *Service) Analyze(ctx context.Context, text string) domain.Classification {
	c, err := s.classify(ctx, text)
	if err != nil {
		s.log.WarnContext(ctx, "analyze: using defaults", slog.String("error", err.Error()))
	}
	return c
}

// classify asks the model for a classification. On failure it returns the
// defaults together with an error wrapping domain.ErrUpstream. Without a
// configured model the defaults are the answer and no error is reported.
func (s *Service) classify(ctx context.Context, text string) (domain.Classification, error) {
	def := DefaultClassification(text)
	if s.llm == nil {
		return def, nil
	}

	out, err := s.llm.Complete(ctx, llm.Prompt{
		System:      analyzeSystemPrompt + analysisSchema,
		User:        fmt.Sprintf("Request text:\n%q", text),
		Temperature: analyzeTemperature,
		JSON:        true,
	})
	if err != nil {
		return def, fmt.Errorf("analyze completion: %w: %w", domain.ErrUpstream, err)
	}

	resp, err := llm.DecodeJSON[analysisResponse](out)
	if err != nil {
		return def, fmt.Errorf("analyze: bad model output: %w: %w", domain.ErrUpstream, err)
	}

	c := def
	if v := domain.Category(resp.Category); v.IsValid() {
		c.Category = v
	}
	if domain.ValidUrgency(resp.UrgencyLevel) {
		c.Urgency = resp.UrgencyLevel
	}
	if v := domain.ChangeType(resp.ChangeType); v.IsValid() {
		c.ChangeType = v
	}
	if v := domain.DocSection(resp.DocSection); v.IsValid() {
		c.DocSection = v
	}
	if summary := strings.TrimSpace(resp.Summary); summary != "" {
		c.Summary = summary
	}
	return c, nil
}

// AnalyzeInput holds the parameters for the HTTP analyze operation.
type AnalyzeInput struct {
	Text      string
	RequestID *int64
}

// Validate checks all fields and collects all errors.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.RequestID != nil && *i.RequestID <= 0 {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnalyzeRequest classifies text and, when a request id is given, stores the
// result on that request. Storing is an idempotent overwrite.
func (s *Service) AnalyzeRequest(ctx context.Context, input AnalyzeInput) (domain.Classification, error) {
	if err := input.Validate(); err != nil {
		return domain.Classification{}, err
	}

	c := s.Analyze(ctx, input.Text)

	if input.RequestID != nil {
		if err := s.storeClassification(ctx, *input.RequestID, c); err != nil {
			return domain.Classification{}, err
		}
	}
	return c, nil
}

// ClassifyInput holds the parameters of a queued classification.
type ClassifyInput struct {
	RequestID int64
	Text      string
	// Fallback stores the defaults when the model fails. The worker sets it
	// on the last attempt only.
	Fallback bool
}

// ClassifyRequest classifies a stored request for the queue worker. Unlike
// AnalyzeRequest an upstream failure is returned as domain.ErrUpstream and
// the request is left untouched, so the task can be retried.
func (s *Service) ClassifyRequest(ctx context.Context, input ClassifyInput) (domain.Classification, error) {
	if err := (AnalyzeInput{Text: input.Text, RequestID: &input.RequestID}).Validate(); err != nil {
		return domain.Classification{}, err
	}

	c, err := s.classify(ctx, input.Text)
	if err != nil {
		if !input.Fallback {
			return domain.Classification{}, err
		}
		s.log.WarnContext(ctx, "classify: attempts exhausted, storing defaults",
			slog.Int64("request_id", input.RequestID),
			slog.String("error", err.Error()))
	}

	if err := s.storeClassification(ctx, input.RequestID, c); err != nil {
		return domain.Classification{}, err
	}
	return c, nil
}

func (s *Service) storeClassification(ctx context.Context, requestID int64, c domain.Classification) error {
	if err := s.requests.ApplyClassification(ctx, requestID, c); err != nil {
		return fmt.Errorf("store classification: %w", err)
	}
	s.log.InfoContext(ctx, "request classified",
		slog.Int64("request_id", requestID),
		slog.String("category", c.Category.String()),
		slog.Int("urgency", c.Urgency),
	)
	return nil
}
