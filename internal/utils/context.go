package utils

import (
	"context"

	"github.com/google/uuid"

	"STAYNEST_BACK-END/internal/policy"
)

// Context keys populated by the auth middleware.
const (
	ContextKeyUserID  = "user_id"
	ContextKeyEmail   = "email"
	ContextKeyIsStaff = "is_staff"
)

// WithCaller stores the authenticated identity on the context.
func WithCaller(ctx context.Context, userID uuid.UUID, email string, isStaff bool) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, ContextKeyEmail, email)
	return context.WithValue(ctx, ContextKeyIsStaff, isStaff)
}

// GetUserIDFromContext returns the authenticated user id, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

// GetCallerFromContext builds the policy caller for the request.
// Requests without credentials yield the anonymous caller.
func GetCallerFromContext(ctx context.Context) policy.Caller {
	id, ok := GetUserIDFromContext(ctx)
	if !ok {
		return policy.Anonymous
	}
	isStaff, _ := ctx.Value(ContextKeyIsStaff).(bool)
	return policy.Caller{ID: id, IsStaff: isStaff, Authenticated: true}
}
