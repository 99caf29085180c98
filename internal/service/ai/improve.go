package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const defaultImproveContext = "Official correspondence about project documentation"

type improveResponse struct {
	Content      string   `json:"content"`
	Improvements []string `json:"improvements"`
}

var improveSchema = llm.SchemaJSON(&improveResponse{})

const improveSystemPrompt = `You edit official business letters about construction project documentation.
Make the text more professional and better structured:
formal business style, clear structure and logic, correct terminology,
convincing argumentation, proper formatting.
Answer with a single JSON object and nothing else. "content" may use markdown.

JSON schema of the answer:
`

// ImproveInput holds the parameters for text improvement.
type ImproveInput struct {
	Text    string
	Context *string
}

// Validate checks all fields and collects all errors.
func (i ImproveInput) Validate() error {
	if strings.TrimSpace(i.Text) == "" {
		return domain.NewValidationError("text", "required")
	}
	return nil
}

// Improvement is the result of ImproveText.
type Improvement struct {
	OriginalText string
	ImprovedText string
	ImprovedHTML string
	Improvements []string
}

// ImproveText asks the model to polish a letter. On any failure it returns
// the original text with no improvements.
func (s *Service) ImproveText(ctx context.Context, input ImproveInput) (Improvement, error) {
	if err := input.Validate(); err != nil {
		return Improvement{}, err
	}

	res := Improvement{
		OriginalText: input.Text,
		ImprovedText: input.Text,
		Improvements: []string{},
	}

	resp, err := s.improve(ctx, input)
	if err != nil {
		s.log.WarnContext(ctx, "improve text: using original", slog.String("error", err.Error()))
		res.ImprovedHTML = s.toHTML(input.Text)
		return res, nil
	}

	res.ImprovedText = resp.Content
	res.ImprovedHTML = s.toHTML(resp.Content)
	if resp.Improvements != nil {
		res.Improvements = resp.Improvements
	}
	return res, nil
}

func (s *Service) improve(ctx context.Context, input ImproveInput) (improveResponse, error) {
	if s.llm == nil {
		return improveResponse{}, domain.ErrNotConfigured
	}

	extra := defaultImproveContext
	if input.Context != nil && strings.TrimSpace(*input.Context) != "" {
		extra = strings.TrimSpace(*input.Context)
	}

	out, err := s.llm.Complete(ctx, llm.Prompt{
		System:      improveSystemPrompt + improveSchema,
		User:        fmt.Sprintf("Context: %s\n\nOriginal text:\n%s", extra, input.Text),
		Temperature: improveTemperature,
		MaxTokens:   8192,
		JSON:        true,
	})
	if err != nil {
		return improveResponse{}, err
	}

	resp, err := llm.DecodeJSON[improveResponse](out)
	if err != nil {
		return improveResponse{}, err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return improveResponse{}, fmt.Errorf("model returned empty content")
	}
	return resp, nil
}
