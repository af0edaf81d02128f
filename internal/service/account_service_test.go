package service

import (
	"testing"

	"savings-ledger/pkg/amount"
	"savings-ledger/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_InitializeUser(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))

	exists, err := f.accounts.UserExists(as(alice), alice)
	require.NoError(t, err)
	assert.True(t, exists)

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.True(t, user.TotalBalance.IsZero())
	assert.Equal(t, uint32(0), user.SavingsCount)
}

func TestAccountService_InitializeUser_Twice(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))

	err := f.accounts.InitializeUser(as(alice), alice)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeUserAlreadyExists, apperror.CodeOf(err))
}

func TestAccountService_InitializeUser_Unauthorized(t *testing.T) {
	f := newFixture()

	err := f.accounts.InitializeUser(as(bob), alice)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeUnauthorized, apperror.CodeOf(err))
}

func TestAccountService_GetUser_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.accounts.GetUser(as(alice), alice)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeUserNotFound, apperror.CodeOf(err))
}

func TestAccountService_DepositFlexi(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))

	require.NoError(t, f.accounts.DepositFlexi(as(alice), alice, amount.New(1000)))
	require.NoError(t, f.accounts.DepositFlexi(as(alice), alice, amount.New(250)))

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.Equal(t, "1250", user.TotalBalance.String())
}

func TestAccountService_DepositFlexi_Validation(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))

	// Amount check precedes the account lookup.
	err := f.accounts.DepositFlexi(as(bob), bob, amount.Zero())
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))

	err = f.accounts.DepositFlexi(as(alice), alice, amount.New(-5))
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))

	err = f.accounts.DepositFlexi(as(bob), bob, amount.New(100))
	assert.Equal(t, apperror.CodeUserNotFound, apperror.CodeOf(err))
}

func TestAccountService_DepositFlexi_Overflow(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))

	maxI128 := amount.MustParse("170141183460469231731687303715884105727")
	require.NoError(t, f.accounts.DepositFlexi(as(alice), alice, maxI128))

	err := f.accounts.DepositFlexi(as(alice), alice, amount.New(1))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeOverflow, apperror.CodeOf(err))

	// Balance unchanged by the failed deposit.
	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.True(t, user.TotalBalance.Equal(maxI128))
}

func TestAccountService_WithdrawFlexi(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))
	require.NoError(t, f.accounts.DepositFlexi(as(alice), alice, amount.New(1000)))

	require.NoError(t, f.accounts.WithdrawFlexi(as(alice), alice, amount.New(400)))

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.Equal(t, "600", user.TotalBalance.String())

	// Draining to exactly zero is allowed.
	require.NoError(t, f.accounts.WithdrawFlexi(as(alice), alice, amount.New(600)))
	user, err = f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.True(t, user.TotalBalance.IsZero())
}

func TestAccountService_WithdrawFlexi_Insufficient(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))
	require.NoError(t, f.accounts.DepositFlexi(as(alice), alice, amount.New(100)))

	err := f.accounts.WithdrawFlexi(as(alice), alice, amount.New(101))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInsufficientBalance, apperror.CodeOf(err))

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.Equal(t, "100", user.TotalBalance.String())
}

func TestAccountService_WithdrawFlexi_Validation(t *testing.T) {
	f := newFixture()

	err := f.accounts.WithdrawFlexi(as(alice), alice, amount.Zero())
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))

	err = f.accounts.WithdrawFlexi(as(alice), alice, amount.New(10))
	assert.Equal(t, apperror.CodeUserNotFound, apperror.CodeOf(err))
}

func TestAccountService_CreditMint(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))

	require.NoError(t, f.accounts.CreditMint(as(), alice, amount.New(5000)))

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.Equal(t, "5000", user.TotalBalance.String())
}

func TestAccountService_CreditMint_CreatesAccount(t *testing.T) {
	f := newFixture()

	// Minting to an address with no account record creates it.
	require.NoError(t, f.accounts.CreditMint(as(), bob, amount.New(42)))

	user, err := f.accounts.GetUser(as(bob), bob)
	require.NoError(t, err)
	assert.Equal(t, "42", user.TotalBalance.String())
}

func TestAccountService_CreditMint_ZeroAndNegative(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.accounts.InitializeUser(as(alice), alice))

	// Zero is a legal no-op credit.
	require.NoError(t, f.accounts.CreditMint(as(), alice, amount.Zero()))

	err := f.accounts.CreditMint(as(), alice, amount.New(-1))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))
}
