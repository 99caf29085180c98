package rest

import (
	"time"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/ai"
	"github.com/heartmarshall/docflow-backend/internal/service/letter"
	"github.com/heartmarshall/docflow-backend/internal/service/mailer"
)

type requestJSON struct {
	ID               int64                `json:"id"`
	TelegramUserID   string               `json:"telegram_user_id"`
	TelegramUsername *string              `json:"telegram_username"`
	UserName         string               `json:"user_name"`
	MessageText      string               `json:"message_text"`
	AudioFileURL     *string              `json:"audio_file_url"`
	TranscribedText  *string              `json:"transcribed_text"`
	Category         *domain.Category     `json:"category"`
	UrgencyLevel     int                  `json:"urgency_level"`
	ChangeType       *domain.ChangeType   `json:"change_type"`
	DocSection       *domain.DocSection   `json:"doc_section"`
	AISummary        *string              `json:"ai_summary"`
	Status           domain.RequestStatus `json:"status"`
	IsApproved       bool                 `json:"is_approved"`
	AdminComment     *string              `json:"admin_comment"`
	LetterID         *int64               `json:"letter_id"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func toRequestJSON(r domain.Request) requestJSON {
	return requestJSON{
		ID:               r.ID,
		TelegramUserID:   r.TelegramUserID,
		TelegramUsername: r.TelegramUsername,
		UserName:         r.UserName,
		MessageText:      r.MessageText,
		AudioFileURL:     r.AudioFileURL,
		TranscribedText:  r.TranscribedText,
		Category:         r.Category,
		UrgencyLevel:     r.UrgencyLevel,
		ChangeType:       r.ChangeType,
		DocSection:       r.DocSection,
		AISummary:        r.AISummary,
		Status:           r.Status,
		IsApproved:       r.IsApproved,
		AdminComment:     r.AdminComment,
		LetterID:         r.LetterID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toRequestsJSON(rs []domain.Request) []requestJSON {
	out := make([]requestJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRequestJSON(r))
	}
	return out
}

type letterJSON struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Content        string              `json:"content"`
	RequestIDs     []int64             `json:"request_ids"`
	Status         domain.LetterStatus `json:"status"`
	ManagerComment *string             `json:"manager_comment"`
	SignedAt       *time.Time          `json:"signed_at"`
	SentAt         *time.Time          `json:"sent_at"`
	RecipientEmail *string             `json:"recipient_email"`
	CreatedBy      *string             `json:"created_by"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Requests       []requestJSON       `json:"requests,omitempty"`
}

func toLetterJSON(l domain.Letter) letterJSON {
	ids := l.RequestIDs
	if ids == nil {
		ids = []int64{}
	}
	return letterJSON{
		ID:             l.ID,
		Title:          l.Title,
		Content:        l.Content,
		RequestIDs:     ids,
		Status:         l.Status,
		ManagerComment: l.ManagerComment,
		SignedAt:       l.SignedAt,
		SentAt:         l.SentAt,
		RecipientEmail: l.RecipientEmail,
		CreatedBy:      l.CreatedBy,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toLetterWithRequestsJSON(l domain.LetterWithRequests) letterJSON {
	out := toLetterJSON(l.Letter)
	out.Requests = toRequestsJSON(l.Requests)
	return out
}

type letterEventJSON struct {
	ID         int64                `json:"id"`
	LetterID   int64                `json:"letter_id"`
	Action     domain.LetterAction  `json:"action"`
	FromStatus *domain.LetterStatus `json:"from_status"`
	ToStatus   *domain.LetterStatus `json:"to_status"`
	Actor      *string              `json:"actor"`
	Comment    *string              `json:"comment"`
	CreatedAt  time.Time            `json:"created_at"`
}

func toLetterEventsJSON(events []domain.LetterEvent) []letterEventJSON {
	out := make([]letterEventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, letterEventJSON(e))
	}
	return out
}

type requestStatusStatJSON struct {
	Status     domain.RequestStatus `json:"status"`
	Count      int                  `json:"count"`
	AvgUrgency float64              `json:"avg_urgency"`
}

type requestCategoryStatJSON struct {
	Category *domain.Category `json:"category"`
	Count    int              `json:"count"`
}

type requestStatsJSON struct {
	ByStatus   []requestStatusStatJSON   `json:"by_status"`
	ByCategory []requestCategoryStatJSON `json:"by_category"`
}

func toRequestStatsJSON(s domain.RequestStats) requestStatsJSON {
	out := requestStatsJSON{
		ByStatus:   make([]requestStatusStatJSON, 0, len(s.ByStatus)),
		ByCategory: make([]requestCategoryStatJSON, 0, len(s.ByCategory)),
	}
	for _, st := range s.ByStatus {
		out.ByStatus = append(out.ByStatus, requestStatusStatJSON{st.Status, st.Count, st.AvgUrgency})
	}
	for _, c := range s.ByCategory {
		out.ByCategory = append(out.ByCategory, requestCategoryStatJSON{c.Category, c.Count})
	}
	return out
}

type letterStatusStatJSON struct {
	Status domain.LetterStatus `json:"status"`
	Count  int                 `json:"count"`
}

type letterMonthStatJSON struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type letterStatsJSON struct {
	ByStatus []letterStatusStatJSON `json:"by_status"`
	ByMonth  []letterMonthStatJSON  `json:"by_month"`
}

func toLetterStatsJSON(s domain.LetterStats) letterStatsJSON {
	out := letterStatsJSON{
		ByStatus: make([]letterStatusStatJSON, 0, len(s.ByStatus)),
		ByMonth:  make([]letterMonthStatJSON, 0, len(s.ByMonth)),
	}
	for _, st := range s.ByStatus {
		out.ByStatus = append(out.ByStatus, letterStatusStatJSON{st.Status, st.Count})
	}
	for _, m := range s.ByMonth {
		out.ByMonth = append(out.ByMonth, letterMonthStatJSON{m.Month, m.Count})
	}
	return out
}

type classificationJSON struct {
	Category   domain.Category   `json:"category"`
	Urgency    int               `json:"urgency"`
	ChangeType domain.ChangeType `json:"change_type"`
	DocSection domain.DocSection `json:"doc_section"`
	Summary    string            `json:"summary"`
}

func toClassificationJSON(c domain.Classification) classificationJSON {
	return classificationJSON{
		Category:   c.Category,
		Urgency:    c.Urgency,
		ChangeType: c.ChangeType,
		DocSection: c.DocSection,
		Summary:    c.Summary,
	}
}

type transcriptionJSON struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

func toTranscriptionJSON(t ai.Transcription) transcriptionJSON {
	return transcriptionJSON{Text: t.Text, Confidence: t.Confidence, Language: t.Language}
}

type improvementJSON struct {
	OriginalText string   `json:"original_text"`
	ImprovedText string   `json:"improved_text"`
	ImprovedHTML string   `json:"improved_html,omitempty"`
	Improvements []string `json:"improvements"`
}

func toImprovementJSON(i ai.Improvement) improvementJSON {
	imps := i.Improvements
	if imps == nil {
		imps = []string{}
	}
	return improvementJSON{
		OriginalText: i.OriginalText,
		ImprovedText: i.ImprovedText,
		ImprovedHTML: i.ImprovedHTML,
		Improvements: imps,
	}
}

type combineJSON struct {
	LetterID     int64    `json:"letter_id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	RequestCount int      `json:"request_count"`
	Sections     []string `json:"sections"`
	Priority     string   `json:"priority"`
	UsedFallback bool     `json:"used_fallback"`
}

func toCombineJSON(c *letter.CombineResult) combineJSON {
	return combineJSON{
		LetterID:     c.LetterID,
		Title:        c.Title,
		Content:      c.Content,
		RequestCount: c.RequestCount,
		Sections:     c.Sections,
		Priority:     c.Priority,
		UsedFallback: c.UsedFallback,
	}
}

type sendResultJSON struct {
	MessageID string `json:"message_id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Provider  string `json:"provider"`
}

func toSendResultJSON(r *mailer.SendResult) sendResultJSON {
	return sendResultJSON{
		MessageID: r.MessageID,
		Recipient: r.Recipient,
		Subject:   r.Subject,
		Provider:  r.Provider,
	}
}

type emailLogJSON struct {
	ID                int64              `json:"id"`
	LetterID          *int64             `json:"letter_id"`
	RecipientEmail    string             `json:"recipient_email"`
	Subject           string             `json:"subject"`
	Status            domain.EmailStatus `json:"status"`
	ErrorMessage      *string            `json:"error_message"`
	ProviderMessageID *string            `json:"provider_message_id"`
	SentAt            time.Time          `json:"sent_at"`
}

func toEmailLogsJSON(logs []domain.EmailLog) []emailLogJSON {
	out := make([]emailLogJSON, 0, len(logs))
	for _, l := range logs {
		out = append(out, emailLogJSON{
			ID:                l.ID,
			LetterID:          l.LetterID,
			RecipientEmail:    l.RecipientEmail,
			Subject:           l.Subject,
			Status:            l.Status,
			ErrorMessage:      l.ErrorMessage,
			ProviderMessageID: l.ProviderMessageID,
			SentAt:            l.SentAt,
		})
	}
	return out
}

type emailStatusStatJSON struct {
	Status domain.EmailStatus `json:"status"`
	Count  int                `json:"count"`
}

type emailDailyStatJSON struct {
	Date       string `json:"date"`
	Total      int    `json:"total"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
}

type emailStatsJSON struct {
	ByStatus []emailStatusStatJSON `json:"by_status"`
	Daily    []emailDailyStatJSON  `json:"daily"`
}

func toEmailStatsJSON(s domain.EmailStats) emailStatsJSON {
	out := emailStatsJSON{
		ByStatus: make([]emailStatusStatJSON, 0, len(s.ByStatus)),
		Daily:    make([]emailDailyStatJSON, 0, len(s.Daily)),
	}
	for _, st := range s.ByStatus {
		out.ByStatus = append(out.ByStatus, emailStatusStatJSON{st.Status, st.Count})
	}
	for _, d := range s.Daily {
		out.Daily = append(out.Daily, emailDailyStatJSON{d.Date, d.Total, d.Successful, d.Failed})
	}
	return out
}

type configStatusJSON struct {
	APIKeyConfigured    bool    `json:"api_key_configured"`
	FromEmailConfigured bool    `json:"from_email_configured"`
	Ready               bool    `json:"ready"`
	Provider            string  `json:"provider"`
	FromEmail           *string `json:"from_email"`
}

func toConfigStatusJSON(c mailer.ConfigStatus) configStatusJSON {
	return configStatusJSON{
		APIKeyConfigured:    c.APIKeyConfigured,
		FromEmailConfigured: c.FromEmailConfigured,
		Ready:               c.Ready,
		Provider:            c.Provider,
		FromEmail:           c.FromEmail,
	}
}

type webhookInfoJSON struct {
	URL                  string     `json:"url"`
	HasCustomCertificate bool       `json:"has_custom_certificate"`
	PendingUpdateCount   int        `json:"pending_update_count"`
	LastErrorDate        *time.Time `json:"last_error_date,omitempty"`
	LastErrorMessage     string     `json:"last_error_message,omitempty"`
	MaxConnections       int        `json:"max_connections,omitempty"`
	AllowedUpdates       []string   `json:"allowed_updates,omitempty"`
}

func toWebhookInfoJSON(i domain.WebhookInfo) webhookInfoJSON {
	return webhookInfoJSON{
		URL:                  i.URL,
		HasCustomCertificate: i.HasCustomCertificate,
		PendingUpdateCount:   i.PendingUpdateCount,
		LastErrorDate:        i.LastErrorDate,
		LastErrorMessage:     i.LastErrorMessage,
		MaxConnections:       i.MaxConnections,
		AllowedUpdates:       i.AllowedUpdates,
	}
}
