package ports

import (
	"context"
	"crypto/ed25519"
	"time"

	"savings-ledger/internal/core/domain"
	"savings-ledger/pkg/amount"
)

// AdminService manages the single admin record.
type AdminService interface {
	// Initialize stores the admin exactly once.
	Initialize(ctx context.Context, admin domain.Admin) error
	// IsInitialized reports whether an admin record exists. Never mutates.
	IsInitialized(ctx context.Context) (bool, error)
	// GetAdmin returns the stored admin record.
	GetAdmin(ctx context.Context) (domain.Admin, error)
	// GetAdminPublicKey returns the stored verification key.
	GetAdminPublicKey(ctx context.Context) (ed25519.PublicKey, error)
	// UpdateAdmin rotates the admin. Both the current and the incoming
	// admin must have authorized the call.
	UpdateAdmin(ctx context.Context, newAdmin domain.Admin) error
}

// MintService is the signed mint-authorization protocol. It determines the
// authorized amount; crediting is the caller's responsibility.
type MintService interface {
	// VerifySignature checks the payload signature and expiry window
	// without mutating any state.
	VerifySignature(ctx context.Context, payload domain.MintPayload, signature []byte) (bool, error)
	// Mint performs the same verification and returns the authorized
	// amount on success.
	Mint(ctx context.Context, payload domain.MintPayload, signature []byte) (amount.Amount, error)
}

// AccountService owns per-user aggregate balances.
type AccountService interface {
	InitializeUser(ctx context.Context, user domain.Address) error
	// UserExists never mutates state.
	UserExists(ctx context.Context, user domain.Address) (bool, error)
	GetUser(ctx context.Context, user domain.Address) (domain.User, error)
	// DepositFlexi and WithdrawFlexi move the implicit per-user Flexi
	// bucket, i.e. total_balance only.
	DepositFlexi(ctx context.Context, user domain.Address, amt amount.Amount) error
	WithdrawFlexi(ctx context.Context, user domain.Address, amt amount.Amount) error
	// CreditMint applies a mint-authorized amount to the user's balance
	// through the same checked-arithmetic path. No principal auth: the
	// admin signature is the authorization.
	CreditMint(ctx context.Context, user domain.Address, amt amount.Amount) error
}

// PlanService owns individual savings plan records and their lifecycle.
type PlanService interface {
	CreatePlan(ctx context.Context, user domain.Address, planType domain.PlanType, initialDeposit amount.Amount) (uint64, error)
	GetPlan(ctx context.Context, user domain.Address, planID uint64) (domain.SavingsPlan, error)
	// ListPlans returns the user's plans in insertion order.
	ListPlans(ctx context.Context, user domain.Address) ([]domain.SavingsPlan, error)
	Deposit(ctx context.Context, user domain.Address, planID uint64, amt amount.Amount) error
	Withdraw(ctx context.Context, user domain.Address, planID uint64, amt amount.Amount) error
}

// GroupService owns pooled group saves, membership and contributions.
type GroupService interface {
	CreateGroupSave(ctx context.Context, creator domain.Address, isPublic bool, target amount.Amount, maxMembers uint32, cadence domain.Cadence) (uint64, error)
	JoinGroupSave(ctx context.Context, user domain.Address, groupID uint64) error
	ContributeToGroupSave(ctx context.Context, user domain.Address, groupID uint64, amt amount.Amount) error
	GetGroup(ctx context.Context, groupID uint64) (domain.GroupSave, error)
	// GetMemberContribution returns 0 for users that never contributed.
	GetMemberContribution(ctx context.Context, groupID uint64, user domain.Address) (amount.Amount, error)
	// IsGroupMember never mutates state.
	IsGroupMember(ctx context.Context, user domain.Address, groupID uint64) (bool, error)
}

// TokenService issues and validates principal bearer tokens for the HTTP
// host binding.
type TokenService interface {
	Generate(principal domain.Address) (string, time.Time, error)
	Validate(token string) (domain.Address, error)
}
