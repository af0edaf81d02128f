package domain

import "savings-ledger/pkg/amount"

// PlanKind discriminates the closed set of savings plan variants.
type PlanKind string

const (
	PlanKindFlexi PlanKind = "FLEXI"
	PlanKindLock  PlanKind = "LOCK"
	PlanKindGoal  PlanKind = "GOAL"
	PlanKindGroup PlanKind = "GROUP"
)

// Cadence tags a contribution schedule.
type Cadence uint32

const (
	CadenceNone    Cadence = 0
	CadenceWeekly  Cadence = 1
	CadenceMonthly Cadence = 2
)

// PlanType is the tagged variant payload of a savings plan. Kind selects
// which fields are meaningful:
//
//	FLEXI — no extra fields
//	LOCK  — UnlockTime
//	GOAL  — Category, TargetAmount, Cadence
//	GROUP — GroupID, IsPublic, Cadence, TargetAmount
type PlanType struct {
	Kind         PlanKind      `json:"kind"`
	UnlockTime   uint64        `json:"unlock_time,omitempty"`
	Category     string        `json:"category,omitempty"`
	TargetAmount amount.Amount `json:"target_amount"`
	Cadence      Cadence       `json:"cadence,omitempty"`
	GroupID      uint64        `json:"group_id,omitempty"`
	IsPublic     bool          `json:"is_public,omitempty"`
}

// Flexi returns the Flexi plan type.
func Flexi() PlanType {
	return PlanType{Kind: PlanKindFlexi}
}

// Lock returns a time-locked plan type; funds are withdrawable at or after
// unlockTime.
func Lock(unlockTime uint64) PlanType {
	return PlanType{Kind: PlanKindLock, UnlockTime: unlockTime}
}

// Goal returns a single-user goal plan type.
func Goal(category string, target amount.Amount, cadence Cadence) PlanType {
	return PlanType{Kind: PlanKindGoal, Category: category, TargetAmount: target, Cadence: cadence}
}

// Group returns the plan-side shadow of a group save.
func Group(groupID uint64, isPublic bool, cadence Cadence, target amount.Amount) PlanType {
	return PlanType{Kind: PlanKindGroup, GroupID: groupID, IsPublic: isPublic, Cadence: cadence, TargetAmount: target}
}

// Valid reports whether the kind is one of the closed variant set.
func (t PlanType) Valid() bool {
	switch t.Kind {
	case PlanKindFlexi, PlanKindLock, PlanKindGoal, PlanKindGroup:
		return true
	}
	return false
}

// DefaultInterestRate returns the informational APY in basis points assigned
// to new plans of this kind.
func (t PlanType) DefaultInterestRate() uint32 {
	switch t.Kind {
	case PlanKindLock:
		return 800
	case PlanKindGoal:
		return 600
	case PlanKindGroup:
		return 700
	default:
		return 500
	}
}

// SavingsPlan is one savings instrument owned by a single user.
// Balance never goes negative. IsWithdrawn is terminal: a withdrawn plan
// accepts no further deposits.
type SavingsPlan struct {
	PlanID       uint64        `json:"plan_id"`
	PlanType     PlanType      `json:"plan_type"`
	Balance      amount.Amount `json:"balance"`
	StartTime    uint64        `json:"start_time"`
	LastDeposit  uint64        `json:"last_deposit"`
	LastWithdraw uint64        `json:"last_withdraw"`
	InterestRate uint32        `json:"interest_rate"` // basis points, informational
	IsCompleted  bool          `json:"is_completed"`
	IsWithdrawn  bool          `json:"is_withdrawn"`
}

// Locked reports whether withdrawal is blocked at the given time.
func (p *SavingsPlan) Locked(now uint64) bool {
	return p.PlanType.Kind == PlanKindLock && now < p.PlanType.UnlockTime
}
