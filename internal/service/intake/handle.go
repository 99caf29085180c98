package intake

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// HandleUpdate processes one inbound message. A nil message is ignored.
// Only storage failures are returned; reply and notification failures are
// logged so the webhook still acknowledges the update.
func (s *Service) HandleUpdate(ctx context.Context, msg *domain.InboundMessage) error {
	if msg == nil {
		return nil
	}

	user, err := s.contacts.RegisterContact(ctx, msg)
	if err != nil {
		return fmt.Errorf("register contact: %w", err)
	}

	switch {
	case isCommand(msg):
		s.handleCommand(ctx, msg, user)
		return nil
	case msg.HasVoice():
		return s.handleVoice(ctx, msg)
	case strings.TrimSpace(msg.Text) != "":
		return s.handleText(ctx, msg)
	}
	return nil
}

func isCommand(msg *domain.InboundMessage) bool {
	return msg.Command != "" || strings.HasPrefix(msg.Text, "/")
}

func (s *Service) handleText(ctx context.Context, msg *domain.InboundMessage) error {
	text := strings.TrimSpace(msg.Text)

	req, err := s.store(ctx, msg, text, nil, domain.TaskKindAnalyze)
	if err != nil {
		s.reply(ctx, msg.ChatID, "❌ Could not process your request. Please try again later.")
		return fmt.Errorf("store text request: %w", err)
	}

	s.reply(ctx, msg.ChatID, fmt.Sprintf(
		"✅ Request #%d accepted for review.\n\nYour text: \"%s\"\n\n"+
			"The request will be analyzed automatically and passed to an administrator.",
		req.ID, html.EscapeString(text)))

	s.notifyStaff(ctx, req, false)
	return nil
}

func (s *Service) handleVoice(ctx context.Context, msg *domain.InboundMessage) error {
	if s.bot == nil {
		s.log.WarnContext(ctx, "voice message ignored, telegram not configured")
		return nil
	}

	audioURL, err := s.bot.FileURL(ctx, msg.VoiceFileID)
	if err != nil {
		s.log.WarnContext(ctx, "resolve voice file",
			slog.String("file_id", msg.VoiceFileID),
			slog.String("error", err.Error()))
		s.reply(ctx, msg.ChatID, "❌ Could not process the voice message. Please send your request as text.")
		return nil
	}

	req, err := s.store(ctx, msg, domain.VoicePlaceholder, &audioURL, domain.TaskKindTranscribe)
	if err != nil {
		s.reply(ctx, msg.ChatID, "❌ Could not process the voice message. Please send your request as text.")
		return fmt.Errorf("store voice request: %w", err)
	}

	s.reply(ctx, msg.ChatID, fmt.Sprintf(
		"🎤 Voice request #%d received.\n\n"+
			"The message will be transcribed and passed to an administrator for review.", req.ID))

	s.notifyStaff(ctx, req, true)
	return nil
}

// store inserts the request and its enrichment task in one transaction.
func (s *Service) store(
	ctx context.Context,
	msg *domain.InboundMessage,
	text string,
	audioURL *string,
	kind domain.TaskKind,
) (*domain.Request, error) {
	var username *string
	if msg.Username != "" {
		username = &msg.Username
	}

	var created *domain.Request
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.requests.Create(ctx, domain.Request{
			TelegramUserID:   strconv.FormatInt(msg.UserID, 10),
			TelegramUsername: username,
			UserName:         msg.DisplayName(),
			MessageText:      text,
			AudioFileURL:     audioURL,
			UrgencyLevel:     domain.DefaultUrgency,
			Status:           domain.RequestStatusNew,
		})
		if err != nil {
			return err
		}
		return s.queue.Enqueue(ctx, created.ID, kind)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "request received",
		slog.Int64("request_id", created.ID),
		slog.String("telegram_user_id", created.TelegramUserID),
		slog.String("task", string(kind)),
	)
	return created, nil
}

func (s *Service) notifyStaff(ctx context.Context, req *domain.Request, hasAudio bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 New request #%d\n\n", req.ID)
	fmt.Fprintf(&b, "👤 From: %s\n", html.EscapeString(req.UserName))
	fmt.Fprintf(&b, "💬 Text: %s\n", html.EscapeString(req.MessageText))
	if hasAudio {
		b.WriteString("🎤 Contains a voice message\n")
	}
	fmt.Fprintf(&b, "\n🔗 Review: %s", html.EscapeString(s.adminURL))

	sent, failed := s.notifier.NotifyRoles(ctx, b.String(), domain.RoleAdmin, domain.RoleManager)
	s.log.InfoContext(ctx, "staff notified",
		slog.Int64("request_id", req.ID),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)
}
