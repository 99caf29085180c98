package ctxutil

import (
	"context"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// Actor identifies the caller of an API operation.
type Actor struct {
	TelegramUserID string
	Role           string
}

// WithActor stores the authenticated caller in the context.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromCtx extracts the caller from the context.
// Returns false if the value is missing or has no Telegram id.
func ActorFromCtx(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	if !ok || a.TelegramUserID == "" {
		return Actor{}, false
	}
	return a, true
}

// ActorIDOrEmpty returns the caller's Telegram id, or "" when anonymous.
func ActorIDOrEmpty(ctx context.Context) string {
	a, _ := ActorFromCtx(ctx)
	return a.TelegramUserID
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
