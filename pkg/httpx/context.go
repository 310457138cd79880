package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
)

// UserFromContext returns the authenticated user id and email placed in the
// context by AuthMiddleware. ok is false on unauthenticated requests.
func UserFromContext(ctx context.Context) (userID int64, email string, ok bool) {
	userID, ok = ctx.Value(CtxKeyUserID).(int64)
	if !ok {
		return 0, "", false
	}
	email, _ = ctx.Value(CtxKeyEmail).(string)
	return userID, email, true
}
