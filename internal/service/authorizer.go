package service

import (
	"context"

	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/apperror"
)

// ContextAuthorizer implements ports.Authorizer against the principal the
// HTTP layer authenticated into the request context. The host environment
// owns authentication itself; this only checks that the authenticated caller
// matches the named principal.
type ContextAuthorizer struct{}

// NewContextAuthorizer creates a context-based authorizer.
func NewContextAuthorizer() *ContextAuthorizer {
	return &ContextAuthorizer{}
}

// RequireAuth fails unless the context carries an authorization for the
// named principal.
func (ContextAuthorizer) RequireAuth(ctx context.Context, principal domain.Address) error {
	if !ports.ContextAuthorizes(ctx, principal) {
		return apperror.ErrUnauthorized(string(principal))
	}
	return nil
}
