package letter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/pkg/ctxutil"
)

// CombineResult describes the letter created by Combine.
type CombineResult struct {
	LetterID     int64
	Title        string
	Content      string
	RequestCount int
	Sections     []string
	Priority     string
	UsedFallback bool
}

// Combine drafts a letter from the approved requests among input.RequestIDs.
// The letter is stored as a draft and every referenced request moves to
// in_progress in one transaction, whether or not the model composed the body.
// A request that already belongs to another letter aborts with a conflict.
func (s *Service) Combine(ctx context.Context, input CombineInput) (*CombineResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ids := dedupe(input.RequestIDs)

	approved, err := s.requests.ListApprovedByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load approved requests: %w", err)
	}
	if len(approved) == 0 {
		return nil, fmt.Errorf("no approved requests among %v: %w", ids, domain.ErrNotFound)
	}

	title := domain.DefaultLetterTitle
	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		title = strings.TrimSpace(*input.Title)
	}

	// Composition may take seconds; keep it outside the transaction.
	draft := s.composer.ComposeLetter(ctx, title, approved)

	var created *domain.Letter
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		locked, err := s.requests.LockByIDs(ctx, ids)
		if err != nil {
			return err
		}
		for _, r := range locked {
			if r.LetterID != nil {
				return domain.NewConflictError("request", r.ID,
					fmt.Sprintf("already included in letter %d", *r.LetterID))
			}
		}

		var createdBy *string
		if actor := ctxutil.ActorIDOrEmpty(ctx); actor != "" {
			createdBy = &actor
		}

		created, err = s.letters.Create(ctx, domain.Letter{
			Title:      title,
			Content:    draft.Content,
			RequestIDs: ids,
			Status:     domain.LetterStatusDraft,
			CreatedBy:  createdBy,
		})
		if err != nil {
			return err
		}

		inProgress := domain.RequestStatusInProgress
		n, err := s.requests.AttachToLetter(ctx, ids, created.ID, &inProgress)
		if err != nil {
			return err
		}
		if n != int64(len(locked)) {
			return domain.NewConflictError("letter", created.ID,
				fmt.Sprintf("attached %d of %d requests", n, len(locked)))
		}
		return s.record(ctx, created.ID, domain.LetterActionCreated, "", created.Status, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("combine requests: %w", err)
	}

	s.log.InfoContext(ctx, "letter combined",
		slog.Int64("letter_id", created.ID),
		slog.Int("requests", len(ids)),
		slog.Int("approved", len(approved)),
		slog.Bool("fallback", draft.UsedFallback),
	)

	return &CombineResult{
		LetterID:     created.ID,
		Title:        created.Title,
		Content:      created.Content,
		RequestCount: len(ids),
		Sections:     draft.Sections,
		Priority:     draft.Priority,
		UsedFallback: draft.UsedFallback,
	}, nil
}

// dedupe drops repeated ids, keeping first-occurrence order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
