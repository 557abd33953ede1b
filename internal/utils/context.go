package utils

import "context"

// context key
type ctxKey string

const CtxUserIDKey ctxKey = "user_id"

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, CtxUserIDKey, id)
}

// UserID returns the authenticated user id put there by the auth middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxUserIDKey).(int64)
	return id, ok && id > 0
}
