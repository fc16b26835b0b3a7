package appctx

import (
	"context"
)

// Context key for storing the authenticated owner
type contextKey string

const OwnerContextKey contextKey = "owner"

// SetOwnerID adds the authenticated owner's ID to the request context
func SetOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerContextKey, ownerID)
}

// GetOwnerID extracts the authenticated owner's ID from the request context
func GetOwnerID(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerContextKey).(string)
	return ownerID, ok && ownerID != ""
}
