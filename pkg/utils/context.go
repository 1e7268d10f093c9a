package utils

import (
	"context"

	"tailorshop/pkg/contextkeys"
	apperrors "tailorshop/pkg/errors"
)

// ActorFromContext extracts the authenticated user's id and role names placed
// into the context by the auth middleware.
func ActorFromContext(ctx context.Context) (uint64, []string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return 0, nil, apperrors.ErrUserIDNotFoundInContext
	}
	roles, _ := ctx.Value(contextkeys.UserRolesKey).([]string)
	return userID, roles, nil
}

func WithActor(ctx context.Context, userID uint64, roles []string) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserRolesKey, roles)
}
