package letter

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Submit moves a draft to pending_approval and notifies active managers.
// Notification is best effort and never fails the submission.
func (s *Service) Submit(ctx context.Context, id int64) (*domain.Letter, error) {
	var l *domain.Letter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		l, err = s.letters.Transition(ctx, id, domain.LetterTransition{
			From: []domain.LetterStatus{domain.LetterStatusDraft},
			To:   domain.LetterStatusPendingApproval,
		})
		if err != nil {
			return err
		}
		return s.record(ctx, l.ID, domain.LetterActionSubmitted, domain.LetterStatusDraft, l.Status, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("submit letter: %w", err)
	}

	s.log.InfoContext(ctx, "letter submitted", slog.Int64("letter_id", l.ID))

	sent, failed := s.notifier.NotifyRoles(ctx, s.approvalMessage(l), domain.RoleManager)
	s.log.InfoContext(ctx, "managers notified",
		slog.Int64("letter_id", l.ID),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)
	return l, nil
}

func (s *Service) approvalMessage(l *domain.Letter) string {
	var b strings.Builder
	b.WriteString("📋 <b>New letter awaiting approval</b>\n\n")
	fmt.Fprintf(&b, "📝 Title: %s\n", html.EscapeString(l.Title))
	fmt.Fprintf(&b, "📊 Requests included: %d\n", len(l.RequestIDs))
	fmt.Fprintf(&b, "📅 Created: %s\n\n", l.CreatedAt.Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, "🔗 Review: %s", html.EscapeString(s.adminURL))
	return b.String()
}

// Sign moves a pending letter to signed and records the manager's comment.
func (s *Service) Sign(ctx context.Context, input SignInput) (*domain.Letter, error) {
	now := s.now().UTC()

	var l *domain.Letter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		l, err = s.letters.Transition(ctx, input.ID, domain.LetterTransition{
			From:           []domain.LetterStatus{domain.LetterStatusPendingApproval},
			To:             domain.LetterStatusSigned,
			ManagerComment: input.Comment,
			SignedAt:       &now,
		})
		if err != nil {
			return err
		}
		return s.record(ctx, l.ID, domain.LetterActionSigned, domain.LetterStatusPendingApproval, l.Status, input.Comment)
	})
	if err != nil {
		return nil, fmt.Errorf("sign letter: %w", err)
	}

	s.log.InfoContext(ctx, "letter signed", slog.Int64("letter_id", l.ID))
	return l, nil
}

// Reject returns any unsent letter to draft with the reason as manager
// comment, and moves its requests back to approved. The requests stay
// attached to the draft.
func (s *Service) Reject(ctx context.Context, input RejectInput) (*domain.Letter, error) {
	reason := domain.DefaultRejectReason
	if input.Reason != nil && strings.TrimSpace(*input.Reason) != "" {
		reason = strings.TrimSpace(*input.Reason)
	}

	var rejected *domain.Letter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.letters.GetForUpdate(ctx, input.ID)
		if err != nil {
			return err
		}
		if l.Status == domain.LetterStatusSent {
			return domain.NewConflictError("letter", l.ID, "sent letters cannot be rejected")
		}

		rejected, err = s.letters.Transition(ctx, l.ID, domain.LetterTransition{
			From: []domain.LetterStatus{
				domain.LetterStatusDraft,
				domain.LetterStatusPendingApproval,
				domain.LetterStatusSigned,
			},
			To:             domain.LetterStatusDraft,
			ManagerComment: &reason,
			ClearSignedAt:  true,
		})
		if err != nil {
			return err
		}

		if _, err := s.requests.SetStatusByIDs(ctx, l.RequestIDs, domain.RequestStatusApproved, false); err != nil {
			return err
		}
		return s.record(ctx, l.ID, domain.LetterActionRejected, l.Status, rejected.Status, &reason)
	})
	if err != nil {
		return nil, fmt.Errorf("reject letter: %w", err)
	}

	s.log.InfoContext(ctx, "letter rejected",
		slog.Int64("letter_id", rejected.ID),
		slog.String("reason", reason),
	)
	return rejected, nil
}

// MarkSent moves a signed letter to sent and completes its requests.
// Callers may wrap it in their own transaction.
func (s *Service) MarkSent(ctx context.Context, id int64, recipient string) (*domain.Letter, error) {
	now := s.now().UTC()

	var sent *domain.Letter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		sent, err = s.letters.Transition(ctx, id, domain.LetterTransition{
			From:           []domain.LetterStatus{domain.LetterStatusSigned},
			To:             domain.LetterStatusSent,
			SentAt:         &now,
			RecipientEmail: &recipient,
		})
		if err != nil {
			return err
		}

		if _, err := s.requests.SetStatusByIDs(ctx, sent.RequestIDs, domain.RequestStatusCompleted, false); err != nil {
			return err
		}
		note := "to " + recipient
		return s.record(ctx, sent.ID, domain.LetterActionSent, domain.LetterStatusSigned, sent.Status, &note)
	})
	if err != nil {
		return nil, fmt.Errorf("mark letter sent: %w", err)
	}

	s.log.InfoContext(ctx, "letter sent", slog.Int64("letter_id", sent.ID))
	return sent, nil
}

// Delete removes a draft letter. Its requests return to approved and are
// detached so they can be combined again.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.letters.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if l.Status != domain.LetterStatusDraft {
			return domain.NewConflictError("letter", l.ID, "only draft letters can be deleted")
		}

		if _, err := s.requests.SetStatusByIDs(ctx, l.RequestIDs, domain.RequestStatusApproved, true); err != nil {
			return err
		}
		if err := s.letters.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, id, domain.LetterActionDeleted, l.Status, "", nil)
	})
	if err != nil {
		return fmt.Errorf("delete letter: %w", err)
	}

	s.log.InfoContext(ctx, "letter deleted", slog.Int64("letter_id", id))
	return nil
}
