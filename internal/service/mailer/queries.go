package mailer

import (
	"context"
	"fmt"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// ConfigStatus reports whether e-mail delivery is configured.
type ConfigStatus struct {
	APIKeyConfigured    bool
	FromEmailConfigured bool
	Ready               bool
	Provider            string
	FromEmail           *string
}

// Logs returns the latest send attempts.
func (s *Service) Logs(ctx context.Context, input LogsInput) ([]domain.EmailLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLogLimit
	}
	var status *domain.EmailStatus
	if input.Status != nil {
		st := domain.EmailStatus(*input.Status)
		status = &st
	}

	logs, err := s.logs.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("email logs: %w", err)
	}
	return logs, nil
}

// Stats returns send attempt statistics.
func (s *Service) Stats(ctx context.Context) (domain.EmailStats, error) {
	st, err := s.logs.Stats(ctx)
	if err != nil {
		return domain.EmailStats{}, fmt.Errorf("email stats: %w", err)
	}
	return st, nil
}

// ConfigStatus inspects the e-mail settings without contacting the provider.
func (s *Service) ConfigStatus() ConfigStatus {
	st := ConfigStatus{
		APIKeyConfigured:    s.cfg.APIKey != "",
		FromEmailConfigured: s.cfg.FromEmail != "",
		Ready:               s.cfg.Configured() && s.sender != nil,
	}
	if st.APIKeyConfigured {
		st.Provider = s.cfg.ResolvedProvider()
	}
	if st.FromEmailConfigured {
		from := s.cfg.FromEmail
		st.FromEmail = &from
	}
	return st
}
