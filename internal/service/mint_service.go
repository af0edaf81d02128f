package service

import (
	"context"
	"crypto/ed25519"

	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/amount"
	"savings-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// MintServiceImpl implements ports.MintService: Ed25519 verification of an
// admin-signed, time-bounded mint instruction. The protocol holds no state
// of its own beyond the admin's verification key; in particular there is no
// replay tracking — identical payload+signature redeems again before expiry,
// and single-use semantics are the caller's to enforce.
type MintServiceImpl struct {
	admin ports.AdminService
	clock ports.Clock
	log   zerolog.Logger
}

// NewMintService creates a new MintServiceImpl.
func NewMintService(admin ports.AdminService, clock ports.Clock, log zerolog.Logger) *MintServiceImpl {
	return &MintServiceImpl{admin: admin, clock: clock, log: log}
}

// VerifySignature checks the payload against the stored admin key and the
// expiry window. Pure: no state is mutated. The expiry boundary is
// inclusive — now == timestamp+expiry_duration is still valid.
func (s *MintServiceImpl) VerifySignature(ctx context.Context, payload domain.MintPayload, signature []byte) (bool, error) {
	if err := s.verify(ctx, payload, signature); err != nil {
		return false, err
	}
	return true, nil
}

// Mint verifies the instruction and returns the authorized amount. It does
// not credit the ledger; callers apply the credit through the account
// service's checked-arithmetic path.
func (s *MintServiceImpl) Mint(ctx context.Context, payload domain.MintPayload, signature []byte) (amount.Amount, error) {
	if err := s.verify(ctx, payload, signature); err != nil {
		return amount.Amount{}, err
	}

	s.log.Info().
		Str("user", payload.User.String()).
		Str("amount", payload.Amount.String()).
		Uint64("signed_at", payload.Timestamp).
		Msg("mint authorized")
	return payload.Amount, nil
}

func (s *MintServiceImpl) verify(ctx context.Context, payload domain.MintPayload, signature []byte) error {
	publicKey, err := s.admin.GetAdminPublicKey(ctx)
	if err != nil {
		return err
	}

	// Zero mints are legal; a negative amount is never a meaningful
	// instruction, signed or not.
	if payload.Amount.Sign() < 0 {
		return apperror.ErrInvalidAmount()
	}

	if len(signature) != ed25519.SignatureSize ||
		!ed25519.Verify(publicKey, payload.Encode(), signature) {
		return apperror.ErrSignatureInvalid()
	}

	expiry, ok := payload.Expiry()
	if !ok {
		// Wrapped expiry arithmetic: treat as expired rather than open-ended.
		return apperror.ErrSignatureExpired()
	}
	if s.clock.Now() > expiry {
		return apperror.ErrSignatureExpired()
	}
	return nil
}
