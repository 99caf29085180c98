package domain

import "time"

// InboundMessage is a chat message received by the intake bot.
type InboundMessage struct {
	ChatID        int64
	UserID        int64
	Username      string
	FirstName     string
	LastName      string
	Text          string
	Command       string
	VoiceFileID   string
	VoiceDuration int
}

// DisplayName returns "First Last", falling back to the username.
func (m InboundMessage) DisplayName() string {
	name := m.FirstName
	if m.LastName != "" {
		if name != "" {
			name += " "
		}
		name += m.LastName
	}
	if name == "" {
		name = m.Username
	}
	return name
}

// HasVoice reports whether the message carries a voice note.
func (m InboundMessage) HasVoice() bool {
	return m.VoiceFileID != ""
}

// WebhookInfo describes the bot's current webhook registration.
type WebhookInfo struct {
	URL                  string
	HasCustomCertificate bool
	PendingUpdateCount   int
	LastErrorDate        *time.Time
	LastErrorMessage     string
	MaxConnections       int
	AllowedUpdates       []string
}
