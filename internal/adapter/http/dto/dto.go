package dto

import (
	"savings-ledger/internal/core/domain"
	"savings-ledger/pkg/amount"
)

// TokenRequest is the request body for principal token issuance.
type TokenRequest struct {
	Address string `json:"address" binding:"required,min=1,max=128"`
}

// TokenResponse is the response body for token issuance.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AdminRequest carries an admin record; the public key is base64-encoded
// raw Ed25519 bytes.
type AdminRequest struct {
	Address   string `json:"address" binding:"required,min=1,max=128"`
	PublicKey string `json:"public_key" binding:"required"`
}

// AdminResponse is the response body for admin reads.
type AdminResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
}

// InitializedResponse reports whether the admin registry is initialized.
type InitializedResponse struct {
	Initialized bool `json:"initialized"`
}

// UserResponse is the response body for account reads.
type UserResponse struct {
	Address      string        `json:"address"`
	TotalBalance amount.Amount `json:"total_balance"`
	SavingsCount uint32        `json:"savings_count"`
}

// ExistsResponse reports record existence.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// MoveRequest is the request body for deposits, withdrawals and
// contributions.
type MoveRequest struct {
	Amount amount.Amount `json:"amount"`
}

// PlanTypeRequest selects a plan variant. Kind is one of FLEXI, LOCK, GOAL,
// GROUP; the remaining fields apply per variant.
type PlanTypeRequest struct {
	Kind         string        `json:"kind" binding:"required"`
	UnlockTime   uint64        `json:"unlock_time,omitempty"`
	Category     string        `json:"category,omitempty"`
	TargetAmount amount.Amount `json:"target_amount"`
	Cadence      uint32        `json:"cadence,omitempty"`
	GroupID      uint64        `json:"group_id,omitempty"`
	IsPublic     bool          `json:"is_public,omitempty"`
}

// CreatePlanRequest is the request body for plan creation.
type CreatePlanRequest struct {
	PlanType       PlanTypeRequest `json:"plan_type" binding:"required"`
	InitialDeposit amount.Amount   `json:"initial_deposit"`
}

// CreatePlanResponse returns the allocated plan id.
type CreatePlanResponse struct {
	PlanID uint64 `json:"plan_id"`
}

// PlanResponse is the response body for plan reads.
type PlanResponse struct {
	PlanID       uint64        `json:"plan_id"`
	Kind         string        `json:"kind"`
	UnlockTime   uint64        `json:"unlock_time,omitempty"`
	Category     string        `json:"category,omitempty"`
	TargetAmount amount.Amount `json:"target_amount"`
	Cadence      uint32        `json:"cadence,omitempty"`
	GroupID      uint64        `json:"group_id,omitempty"`
	IsPublic     bool          `json:"is_public,omitempty"`
	Balance      amount.Amount `json:"balance"`
	StartTime    uint64        `json:"start_time"`
	LastDeposit  uint64        `json:"last_deposit"`
	LastWithdraw uint64        `json:"last_withdraw"`
	InterestRate uint32        `json:"interest_rate"`
	IsCompleted  bool          `json:"is_completed"`
	IsWithdrawn  bool          `json:"is_withdrawn"`
}

// PlanListResponse wraps a user's plans in insertion order.
type PlanListResponse struct {
	Items []PlanResponse `json:"items"`
	Total int            `json:"total"`
}

// CreateGroupRequest is the request body for group-save creation.
type CreateGroupRequest struct {
	IsPublic     bool          `json:"is_public"`
	TargetAmount amount.Amount `json:"target_amount"`
	MaxMembers   uint32        `json:"max_members" binding:"required,gt=0"`
	Cadence      uint32        `json:"cadence"`
}

// CreateGroupResponse returns the allocated group id.
type CreateGroupResponse struct {
	GroupID uint64 `json:"group_id"`
}

// GroupResponse is the response body for group reads.
type GroupResponse struct {
	GroupID       uint64        `json:"group_id"`
	IsPublic      bool          `json:"is_public"`
	TargetAmount  amount.Amount `json:"target_amount"`
	CurrentAmount amount.Amount `json:"current_amount"`
	MemberCount   uint32        `json:"member_count"`
	MaxMembers    uint32        `json:"max_members"`
	Cadence       uint32        `json:"contribution_type"`
	Creator       string        `json:"creator"`
	IsCompleted   bool          `json:"is_completed"`
	CreatedAt     uint64        `json:"created_at"`
}

// ContributionResponse is the response for per-member contribution reads.
type ContributionResponse struct {
	GroupID      uint64        `json:"group_id"`
	Member       string        `json:"member"`
	Contribution amount.Amount `json:"contribution"`
}

// MembershipResponse reports group membership.
type MembershipResponse struct {
	GroupID  uint64 `json:"group_id"`
	Member   string `json:"member"`
	IsMember bool   `json:"is_member"`
}

// MintRequest is the admin-signed mint instruction; the signature is
// base64-encoded raw Ed25519 bytes over the deterministic payload encoding.
type MintRequest struct {
	User           string        `json:"user" binding:"required,min=1,max=128"`
	Amount         amount.Amount `json:"amount"`
	Timestamp      uint64        `json:"timestamp"`
	ExpiryDuration uint64        `json:"expiry_duration"`
	Signature      string        `json:"signature" binding:"required"`
}

// MintResponse reports the credited amount and resulting balance.
type MintResponse struct {
	User         string        `json:"user"`
	Minted       amount.Amount `json:"minted"`
	TotalBalance amount.Amount `json:"total_balance"`
}

// VerifyResponse reports the outcome of a signature check.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ToPlanResponse flattens a domain plan for the wire.
func ToPlanResponse(p domain.SavingsPlan) PlanResponse {
	return PlanResponse{
		PlanID:       p.PlanID,
		Kind:         string(p.PlanType.Kind),
		UnlockTime:   p.PlanType.UnlockTime,
		Category:     p.PlanType.Category,
		TargetAmount: p.PlanType.TargetAmount,
		Cadence:      uint32(p.PlanType.Cadence),
		GroupID:      p.PlanType.GroupID,
		IsPublic:     p.PlanType.IsPublic,
		Balance:      p.Balance,
		StartTime:    p.StartTime,
		LastDeposit:  p.LastDeposit,
		LastWithdraw: p.LastWithdraw,
		InterestRate: p.InterestRate,
		IsCompleted:  p.IsCompleted,
		IsWithdrawn:  p.IsWithdrawn,
	}
}

// ToGroupResponse flattens a domain group for the wire.
func ToGroupResponse(g domain.GroupSave) GroupResponse {
	return GroupResponse{
		GroupID:       g.GroupID,
		IsPublic:      g.IsPublic,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		MemberCount:   g.MemberCount,
		MaxMembers:    g.MaxMembers,
		Cadence:       uint32(g.Cadence),
		Creator:       g.Creator.String(),
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
	}
}
