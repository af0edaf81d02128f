package service

import (
	"context"

	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/amount"
	"savings-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService. Flexi deposits and
// withdrawals move the implicit per-user bucket, i.e. total_balance only;
// plan-targeted movement goes through the plan service.
type AccountServiceImpl struct {
	store ports.Store
	authz ports.Authorizer
	log   zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(store ports.Store, authz ports.Authorizer, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{store: store, authz: authz, log: log}
}

// InitializeUser creates the account record with zero balance.
func (s *AccountServiceImpl) InitializeUser(ctx context.Context, user domain.Address) error {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return err
	}

	exists, err := s.store.Has(ctx, domain.UserKey(user))
	if err != nil {
		return apperror.InternalError(err)
	}
	if exists {
		return apperror.ErrUserAlreadyExists()
	}

	if err := setRecord(ctx, s.store, domain.UserKey(user), domain.User{}); err != nil {
		return err
	}

	s.log.Info().Str("user", user.String()).Msg("user initialized")
	return nil
}

// UserExists is a pure existence check; no authorization required.
func (s *AccountServiceImpl) UserExists(ctx context.Context, user domain.Address) (bool, error) {
	exists, err := s.store.Has(ctx, domain.UserKey(user))
	if err != nil {
		return false, apperror.InternalError(err)
	}
	return exists, nil
}

// GetUser returns the account record.
func (s *AccountServiceImpl) GetUser(ctx context.Context, user domain.Address) (domain.User, error) {
	var record domain.User
	found, err := getRecord(ctx, s.store, domain.UserKey(user), &record)
	if err != nil {
		return domain.User{}, err
	}
	if !found {
		return domain.User{}, apperror.ErrUserNotFound()
	}
	return record, nil
}

// DepositFlexi credits the user's implicit Flexi bucket.
func (s *AccountServiceImpl) DepositFlexi(ctx context.Context, user domain.Address, amt amount.Amount) error {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return err
	}
	if amt.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	record, err := s.GetUser(ctx, user)
	if err != nil {
		return err
	}

	newBalance, ok := record.TotalBalance.Add(amt)
	if !ok {
		return apperror.ErrOverflow()
	}
	record.TotalBalance = newBalance

	if err := setRecord(ctx, s.store, domain.UserKey(user), record); err != nil {
		return err
	}

	s.log.Info().
		Str("user", user.String()).
		Str("amount", amt.String()).
		Str("total_balance", record.TotalBalance.String()).
		Msg("flexi deposit")
	return nil
}

// WithdrawFlexi debits the user's implicit Flexi bucket. The balance can
// never go negative: withdrawing more than total_balance fails with
// InsufficientBalance and leaves the record untouched.
func (s *AccountServiceImpl) WithdrawFlexi(ctx context.Context, user domain.Address, amt amount.Amount) error {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return err
	}
	if amt.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	record, err := s.GetUser(ctx, user)
	if err != nil {
		return err
	}

	if amt.Cmp(record.TotalBalance) > 0 {
		return apperror.ErrInsufficientBalance()
	}

	newBalance, ok := record.TotalBalance.Sub(amt)
	if !ok {
		return apperror.ErrUnderflow()
	}
	record.TotalBalance = newBalance

	if err := setRecord(ctx, s.store, domain.UserKey(user), record); err != nil {
		return err
	}

	s.log.Info().
		Str("user", user.String()).
		Str("amount", amt.String()).
		Str("total_balance", record.TotalBalance.String()).
		Msg("flexi withdraw")
	return nil
}

// CreditMint applies a mint-authorized amount. The admin signature verified
// by the mint protocol is the authorization, so no principal check here; the
// arithmetic discipline is the same as every other balance mutation. Minting
// to an unknown address creates the account.
func (s *AccountServiceImpl) CreditMint(ctx context.Context, user domain.Address, amt amount.Amount) error {
	if amt.Sign() < 0 {
		return apperror.ErrInvalidAmount()
	}

	var record domain.User
	if _, err := getRecord(ctx, s.store, domain.UserKey(user), &record); err != nil {
		return err
	}

	newBalance, ok := record.TotalBalance.Add(amt)
	if !ok {
		return apperror.ErrOverflow()
	}
	record.TotalBalance = newBalance

	if err := setRecord(ctx, s.store, domain.UserKey(user), record); err != nil {
		return err
	}

	s.log.Info().
		Str("user", user.String()).
		Str("amount", amt.String()).
		Msg("mint credited")
	return nil
}
