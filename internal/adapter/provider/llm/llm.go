// Package llm provides text-completion clients for the supported AI providers
// behind a single Completer interface.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/heartmarshall/docflow-backend/internal/config"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Provider names accepted in config.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

const defaultMaxTokens = 2048

// Prompt is one single-turn completion request.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	// JSON asks the provider for a JSON-only answer when it supports that.
	JSON bool
}

// Completer turns a prompt into free-form model output.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
	Model() string
}

// New builds the Completer selected by cfg.Provider.
// Returns domain.ErrNotConfigured when no API key is set.
func New(ctx context.Context, cfg config.AIConfig) (Completer, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("ai provider %s: %w", cfg.Provider, domain.ErrNotConfigured)
	}

	var (
		c   Completer
		err error
	)
	switch cfg.Provider {
	case ProviderGemini, "":
		c, err = newGeminiClient(ctx, cfg)
	case ProviderAnthropic:
		c, err = newAnthropicClient(cfg)
	case ProviderOpenAI:
		c, err = newOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Timeout > 0 {
		c = &timeoutCompleter{next: c, timeout: cfg.Timeout}
	}
	return c, nil
}

type timeoutCompleter struct {
	next    Completer
	timeout time.Duration
}

func (t *timeoutCompleter) Complete(ctx context.Context, p Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Complete(ctx, p)
}

func (t *timeoutCompleter) Model() string { return t.next.Model() }

// ExtractJSON returns the text between the first "{" and the last "}".
// Models often wrap JSON in prose or code fences.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// DecodeJSON extracts the JSON object from s and unmarshals it into T.
func DecodeJSON[T any](s string) (T, error) {
	var out T
	raw, err := ExtractJSON(s)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, fmt.Errorf("decode model JSON: %w", err)
	}
	return out, nil
}

// SchemaJSON renders the JSON schema of v for embedding into prompts.
func SchemaJSON(v any) string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	b, err := json.MarshalIndent(reflector.Reflect(v), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func maxTokens(p Prompt) int {
	if p.MaxTokens > 0 {
		return p.MaxTokens
	}
	return defaultMaxTokens
}
