package ai

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const dateLayout = "02.01.2006"

type composeResponse struct {
	Title        string   `json:"title,omitempty"`
	Content      string   `json:"content"`
	Sections     []string `json:"sections"`
	TotalChanges int      `json:"totalChanges"`
	Priority     string   `json:"priority" jsonschema:"enum=high,enum=medium,enum=low"`
}

var composeSchema = llm.SchemaJSON(&composeResponse{})

const composeSystemPrompt = `You write official letters to a client about changes in construction project documentation.
Requirements:
1. Formal business style.
2. Structure by documentation section.
3. Number the changes inside each section.
4. Name the author and the date of every request.
5. Justify why each change is needed.
6. Close with a request for approval.
"content" is the full letter body in HTML.
Answer with a single JSON object and nothing else.

JSON schema of the answer:
`

// ComposeLetter drafts a letter from requests (already ordered). It never
// fails: on any upstream problem it returns FallbackLetter.
func (s *Service) ComposeLetter(ctx context.Context, title string, reqs []domain.Request) domain.LetterDraft {
	if s.llm != nil {
		c, err := s.compose(ctx, title, reqs)
		if err == nil {
			return c
		}
		s.log.WarnContext(ctx, "compose letter: using fallback",
			slog.Int("requests", len(reqs)),
			slog.String("error", err.Error()),
		)
	}
	return FallbackLetter(title, reqs)
}

func (s *Service) compose(ctx context.Context, title string, reqs []domain.Request) (domain.LetterDraft, error) {
	var b strings.Builder
	for i, r := range reqs {
		fmt.Fprintf(&b, "%d. Request #%d from %s (%s)\n", i+1, r.ID, r.UserName, r.CreatedAt.Format(dateLayout))
		fmt.Fprintf(&b, "   Category: %s\n", enumOrEmpty(r.Category))
		fmt.Fprintf(&b, "   Change type: %s\n", enumOrEmpty(r.ChangeType))
		fmt.Fprintf(&b, "   Section: %s\n", r.SectionOrOther().Label())
		fmt.Fprintf(&b, "   Urgency: %d\n", r.UrgencyLevel)
		fmt.Fprintf(&b, "   Text: %s\n\n", requestText(r))
	}
	fmt.Fprintf(&b, "Letter title: %q\n", title)

	out, err := s.llm.Complete(ctx, llm.Prompt{
		System:      composeSystemPrompt + composeSchema,
		User:        b.String(),
		Temperature: composeTemperature,
		MaxTokens:   8192,
		JSON:        true,
	})
	if err != nil {
		return domain.LetterDraft{}, err
	}

	resp, err := llm.DecodeJSON[composeResponse](out)
	if err != nil {
		return domain.LetterDraft{}, err
	}
	if strings.TrimSpace(resp.Content) == "" {
		return domain.LetterDraft{}, fmt.Errorf("model returned empty content")
	}

	priority := resp.Priority
	switch priority {
	case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
	default:
		priority = domain.PriorityMedium
	}

	sections := resp.Sections
	if sections == nil {
		sections = []string{}
	}

	return domain.LetterDraft{
		Title:    title,
		Content:  s.toHTML(resp.Content),
		Sections: sections,
		Priority: priority,
	}, nil
}

// FallbackLetter builds the deterministic letter body: requests grouped by
// section in first-appearance order, items numbered "{item}.{section}".
func FallbackLetter(title string, reqs []domain.Request) domain.LetterDraft {
	type group struct {
		label string
		items []domain.Request
	}
	var groups []*group
	index := make(map[domain.DocSection]*group)
	for _, r := range reqs {
		sec := r.SectionOrOther()
		g, ok := index[sec]
		if !ok {
			g = &group{label: sec.Label()}
			index[sec] = g
			groups = append(groups, g)
		}
		g.items = append(g.items, r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(title))
	b.WriteString("<p>Based on the change requests received for the project documentation, " +
		"we ask you to consider the following corrections:</p>\n")

	sections := make([]string, 0, len(groups))
	for si, g := range groups {
		sections = append(sections, g.label)
		fmt.Fprintf(&b, "<h3>%d. Section \"%s\"</h3><ul>", si+1, html.EscapeString(g.label))
		for ii, r := range g.items {
			fmt.Fprintf(&b, "<li>%d.%d. %s<br><small>Author: %s, date: %s</small></li>",
				ii+1, si+1,
				html.EscapeString(requestText(r)),
				html.EscapeString(r.UserName),
				r.CreatedAt.Format(dateLayout),
			)
		}
		b.WriteString("</ul>\n")
	}

	fmt.Fprintf(&b, "<p><strong>Total changes: %d</strong></p>\n", len(reqs))
	b.WriteString("<p>Please review the proposed changes and approve the corrections " +
		"to the project documentation.</p>")

	return domain.LetterDraft{
		Title:        title,
		Content:      b.String(),
		Sections:     sections,
		Priority:     domain.PriorityMedium,
		UsedFallback: true,
	}
}

// requestText prefers the transcription over the stored message.
func requestText(r domain.Request) string {
	if r.TranscribedText != nil && strings.TrimSpace(*r.TranscribedText) != "" {
		return *r.TranscribedText
	}
	return r.MessageText
}

func enumOrEmpty[T ~string](v *T) string {
	if v == nil {
		return "-"
	}
	return string(*v)
}
