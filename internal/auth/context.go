package auth

import "context"

type ctxKey string

const (
	ctxKeySession ctxKey = "session"
	ctxKeyAdmin   ctxKey = "admin"
)

func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeySession, id)
}

func SessionFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySession); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyAdmin, true)
}

func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyAdmin).(bool)
	return v
}
