package domain

import "fmt"

// Key space of the persistent store. Every record the ledger owns lives
// under one of these keys; the layout keeps per-member group lookups O(1)
// instead of embedding member lists in the group record.
const (
	KeyAdmin        = "admin"
	KeyPlanCounter  = "plan_id_counter"
	KeyGroupCounter = "group_id_counter"
)

// UserKey addresses the aggregate account record.
func UserKey(user Address) string {
	return "user:" + string(user)
}

// PlanKey addresses one savings plan, scoped to its owner.
func PlanKey(owner Address, planID uint64) string {
	return fmt.Sprintf("plan:%s:%d", owner, planID)
}

// UserPlansKey addresses the owner's plan-id index, insertion order.
func UserPlansKey(owner Address) string {
	return "user_plans:" + string(owner)
}

// GroupKey addresses a group save record.
func GroupKey(groupID uint64) string {
	return fmt.Sprintf("group:%d", groupID)
}

// MembershipKey addresses the per-(group, user) membership flag. Existence
// of the key is the membership claim.
func MembershipKey(user Address, groupID uint64) string {
	return fmt.Sprintf("group_member:%d:%s", groupID, user)
}

// ContributionKey addresses the per-(group, user) contribution accumulator.
func ContributionKey(groupID uint64, user Address) string {
	return fmt.Sprintf("group_contrib:%d:%s", groupID, user)
}
