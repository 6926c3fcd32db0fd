package auth

import (
	"context"
	"errors"
)

type contextKey string

const userIDContextKey contextKey = "user-id"

var ErrNoUserInContext = errors.New("no authenticated user in context")

func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func UserIDFromContext(ctx context.Context) (int, error) {
	userID, ok := ctx.Value(userIDContextKey).(int)
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
