package ports

import (
	"context"

	"savings-ledger/internal/core/domain"
)

// Authorizer is the host's caller-authentication primitive: it verifies that
// the named principal authorized the current call. Implementations fail with
// apperror.ErrUnauthorized when the caller cannot act as the principal.
type Authorizer interface {
	RequireAuth(ctx context.Context, principal domain.Address) error
}

// Clock is the host's notion of current time, in unix seconds.
type Clock interface {
	Now() uint64
}

type principalCtxKey struct{}

// ContextWithPrincipal adds an authenticated principal to the context. A
// call may carry more than one authorization (admin rotation requires both
// the current and the incoming admin); the first added is the primary caller.
func ContextWithPrincipal(ctx context.Context, principal domain.Address) context.Context {
	existing, _ := ctx.Value(principalCtxKey{}).([]domain.Address)
	principals := make([]domain.Address, 0, len(existing)+1)
	principals = append(principals, existing...)
	principals = append(principals, principal)
	return context.WithValue(ctx, principalCtxKey{}, principals)
}

// PrincipalFromContext returns the primary authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (domain.Address, bool) {
	principals, _ := ctx.Value(principalCtxKey{}).([]domain.Address)
	if len(principals) == 0 {
		return "", false
	}
	return principals[0], true
}

// ContextAuthorizes reports whether the context carries an authorization for
// the given principal.
func ContextAuthorizes(ctx context.Context, principal domain.Address) bool {
	principals, _ := ctx.Value(principalCtxKey{}).([]domain.Address)
	for _, p := range principals {
		if p == principal {
			return true
		}
	}
	return false
}
