package utils

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
)

// CallerIdentityFromContext returns the authenticated caller attached by the
// auth middleware, or nil on an unauthenticated request.
func CallerIdentityFromContext(ctx context.Context) *models.CallerIdentity {
	caller, _ := ctx.Value(constvars.CONTEXT_CALLER_IDENTITY_KEY).(*models.CallerIdentity)
	return caller
}
