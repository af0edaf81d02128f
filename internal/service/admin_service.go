package service

import (
	"context"
	"crypto/ed25519"

	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService over the persistent store.
type AdminServiceImpl struct {
	store ports.Store
	authz ports.Authorizer
	log   zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(store ports.Store, authz ports.Authorizer, log zerolog.Logger) *AdminServiceImpl {
	return &AdminServiceImpl{store: store, authz: authz, log: log}
}

// Initialize stores the admin record. One-time: a second call fails with
// AlreadyInitialized.
func (s *AdminServiceImpl) Initialize(ctx context.Context, admin domain.Admin) error {
	exists, err := s.store.Has(ctx, domain.KeyAdmin)
	if err != nil {
		return apperror.InternalError(err)
	}
	if exists {
		return apperror.ErrAlreadyInitialized()
	}

	if err := setRecord(ctx, s.store, domain.KeyAdmin, admin); err != nil {
		return err
	}

	s.log.Info().Str("admin", admin.Address.String()).Msg("admin registry initialized")
	return nil
}

// IsInitialized reports whether an admin record exists.
func (s *AdminServiceImpl) IsInitialized(ctx context.Context) (bool, error) {
	exists, err := s.store.Has(ctx, domain.KeyAdmin)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	return exists, nil
}

// GetAdmin returns the stored admin record.
func (s *AdminServiceImpl) GetAdmin(ctx context.Context) (domain.Admin, error) {
	var admin domain.Admin
	found, err := getRecord(ctx, s.store, domain.KeyAdmin, &admin)
	if err != nil {
		return domain.Admin{}, err
	}
	if !found {
		return domain.Admin{}, apperror.ErrNotInitialized()
	}
	return admin, nil
}

// GetAdminPublicKey returns the stored Ed25519 verification key.
func (s *AdminServiceImpl) GetAdminPublicKey(ctx context.Context) (ed25519.PublicKey, error) {
	admin, err := s.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}
	return admin.PublicKey, nil
}

// UpdateAdmin rotates the admin record. The current admin must authorize the
// handover and the incoming admin must authorize accepting it, so control is
// never assigned to an address that cannot act.
func (s *AdminServiceImpl) UpdateAdmin(ctx context.Context, newAdmin domain.Admin) error {
	current, err := s.GetAdmin(ctx)
	if err != nil {
		return err
	}

	if err := s.authz.RequireAuth(ctx, current.Address); err != nil {
		return err
	}
	if newAdmin.Address != current.Address {
		if err := s.authz.RequireAuth(ctx, newAdmin.Address); err != nil {
			return err
		}
	}

	if err := setRecord(ctx, s.store, domain.KeyAdmin, newAdmin); err != nil {
		return err
	}

	s.log.Info().
		Str("previous", current.Address.String()).
		Str("admin", newAdmin.Address.String()).
		Msg("admin rotated")
	return nil
}
