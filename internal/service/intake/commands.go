package intake

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const previewRunes = 100

const helpText = "📋 How to submit a request:\n\n" +
	"1. Describe the changes needed in the documentation\n" +
	"2. Name the document section if you know it\n" +
	"3. Mention how urgent the request is\n\n" +
	"💡 Examples:\n" +
	"• \"Fix the error in the Foundations section: wrong concrete grade\"\n" +
	"• \"Add a description of the drainage system to the Roof section\"\n" +
	"• \"Update the power supply diagram to the new regulations\"\n\n" +
	"🎤 You can also send a voice message."

const infoText = "🏢 Request management system\n" +
	"Project documentation changes\n\n" +
	"🤖 Features:\n" +
	"• Automatic AI analysis of requests\n" +
	"• Classification by urgency and type\n" +
	"• Processing status notifications\n" +
	"• Voice message support"

var statusEmoji = map[domain.RequestStatus]string{
	domain.RequestStatusNew:         "🆕",
	domain.RequestStatusUnderReview: "👀",
	domain.RequestStatusApproved:    "✅",
	domain.RequestStatusRejected:    "❌",
	domain.RequestStatusInProgress:  "🔄",
	domain.RequestStatusCompleted:   "🏁",
}

func (s *Service) handleCommand(ctx context.Context, msg *domain.InboundMessage, user *domain.User) {
	switch commandName(msg) {
	case "start":
		s.reply(ctx, msg.ChatID, startText(user.Name))
	case "help":
		s.reply(ctx, msg.ChatID, helpText)
	case "status":
		s.reply(ctx, msg.ChatID, s.statusText(ctx, user.TelegramUserID))
	case "info":
		s.reply(ctx, msg.ChatID, infoText)
	default:
		s.reply(ctx, msg.ChatID, "❓ Unknown command.\n\nUse /help for instructions.")
	}
}

// commandName returns the command without the slash or bot suffix.
func commandName(msg *domain.InboundMessage) string {
	if msg.Command != "" {
		return strings.ToLower(msg.Command)
	}
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return ""
	}
	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name)
}

func startText(name string) string {
	return fmt.Sprintf("👋 Welcome, %s!\n\n", html.EscapeString(name)) +
		"This bot accepts requests to change the project documentation.\n\n" +
		"📝 Just describe your request in a message or send a voice message.\n" +
		"🤖 The request is analyzed automatically and passed to an administrator.\n\n" +
		"Commands:\n" +
		"/help - how to submit a request\n" +
		"/status - status of your requests\n" +
		"/info - about the system"
}

func (s *Service) statusText(ctx context.Context, telegramUserID string) string {
	reqs, err := s.requests.ListByTelegramUser(ctx, telegramUserID, statusHistoryLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "list user requests",
			slog.String("telegram_user_id", telegramUserID),
			slog.String("error", err.Error()))
		return "⚠️ Could not load your requests, please try again later."
	}
	if len(reqs) == 0 {
		return "📝 You have not submitted any requests yet.\n\n" +
			"Send a message describing the documentation changes you need."
	}

	var b strings.Builder
	b.WriteString("📊 Your latest requests:\n\n")
	for _, r := range reqs {
		emoji, ok := statusEmoji[r.Status]
		if !ok {
			emoji = "📝"
		}
		fmt.Fprintf(&b, "%s Request #%d\n", emoji, r.ID)
		fmt.Fprintf(&b, "📅 %s\n", r.CreatedAt.In(s.loc).Format("02.01.2006 15:04"))
		fmt.Fprintf(&b, "💬 %s\n\n", html.EscapeString(preview(r.MessageText, previewRunes)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// preview truncates s to n runes, adding an ellipsis when cut.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
