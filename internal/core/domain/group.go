package domain

import "savings-ledger/pkg/amount"

// GroupSave is a pooled, multi-party savings instrument. CurrentAmount and
// MemberCount only increase; IsCompleted is sticky once CurrentAmount reaches
// TargetAmount. Pooled funds live here, not in the members' plan records.
type GroupSave struct {
	GroupID       uint64        `json:"group_id"`
	IsPublic      bool          `json:"is_public"`
	TargetAmount  amount.Amount `json:"target_amount"`
	CurrentAmount amount.Amount `json:"current_amount"`
	MemberCount   uint32        `json:"member_count"`
	MaxMembers    uint32        `json:"max_members"`
	Cadence       Cadence       `json:"contribution_type"`
	Creator       Address       `json:"creator"`
	IsCompleted   bool          `json:"is_completed"`
	CreatedAt     uint64        `json:"created_at"`
}

// Full reports whether the group has no capacity left.
func (g *GroupSave) Full() bool {
	return g.MemberCount >= g.MaxMembers
}
