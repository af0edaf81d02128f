package domain

import (
	"testing"

	"savings-ledger/pkg/amount"

	"github.com/stretchr/testify/assert"
)

func TestPlanType_Variants(t *testing.T) {
	flexi := Flexi()
	assert.Equal(t, PlanKindFlexi, flexi.Kind)
	assert.True(t, flexi.Valid())

	lock := Lock(2000000)
	assert.Equal(t, PlanKindLock, lock.Kind)
	assert.Equal(t, uint64(2000000), lock.UnlockTime)

	goal := Goal("education", amount.New(5_000_000), CadenceWeekly)
	assert.Equal(t, PlanKindGoal, goal.Kind)
	assert.Equal(t, "education", goal.Category)
	assert.Equal(t, "5000000", goal.TargetAmount.String())
	assert.Equal(t, CadenceWeekly, goal.Cadence)

	group := Group(101, true, CadenceMonthly, amount.New(10_000_000))
	assert.Equal(t, PlanKindGroup, group.Kind)
	assert.Equal(t, uint64(101), group.GroupID)
	assert.True(t, group.IsPublic)

	assert.False(t, PlanType{Kind: "BOGUS"}.Valid())
}

func TestPlanType_DefaultInterestRate(t *testing.T) {
	assert.Equal(t, uint32(500), Flexi().DefaultInterestRate())
	assert.Equal(t, uint32(800), Lock(1).DefaultInterestRate())
	assert.Equal(t, uint32(600), Goal("x", amount.New(1), CadenceWeekly).DefaultInterestRate())
	assert.Equal(t, uint32(700), Group(1, true, CadenceWeekly, amount.New(1)).DefaultInterestRate())
}

func TestSavingsPlan_Locked(t *testing.T) {
	plan := SavingsPlan{PlanID: 2, PlanType: Lock(2000)}
	assert.True(t, plan.Locked(1999))
	assert.False(t, plan.Locked(2000), "unlock time itself is withdrawable")

	flexi := SavingsPlan{PlanID: 1, PlanType: Flexi()}
	assert.False(t, flexi.Locked(0))
}

func TestGroupSave_Full(t *testing.T) {
	g := GroupSave{MemberCount: 1, MaxMembers: 2}
	assert.False(t, g.Full())
	g.MemberCount = 2
	assert.True(t, g.Full())
}

func TestMintPayload_Encode_Deterministic(t *testing.T) {
	p := MintPayload{User: "GUSER", Amount: amount.New(100), Timestamp: 1000, ExpiryDuration: 3600}

	assert.Equal(t, p.Encode(), p.Encode())
	assert.Len(t, p.Encode(), 4+5+16+8+8)

	// Every field participates in the encoding.
	tampered := p
	tampered.Amount = amount.New(1000)
	assert.NotEqual(t, p.Encode(), tampered.Encode())

	tampered = p
	tampered.User = "GOTHER"
	assert.NotEqual(t, p.Encode(), tampered.Encode())

	tampered = p
	tampered.Timestamp = 1001
	assert.NotEqual(t, p.Encode(), tampered.Encode())

	tampered = p
	tampered.ExpiryDuration = 3601
	assert.NotEqual(t, p.Encode(), tampered.Encode())
}

func TestMintPayload_Expiry(t *testing.T) {
	p := MintPayload{Timestamp: 1000, ExpiryDuration: 3600}
	exp, ok := p.Expiry()
	assert.True(t, ok)
	assert.Equal(t, uint64(4600), exp)

	wrapped := MintPayload{Timestamp: ^uint64(0), ExpiryDuration: 1}
	_, ok = wrapped.Expiry()
	assert.False(t, ok, "wrapping expiry must be reported")
}

func TestKeySpace_Disjoint(t *testing.T) {
	// Membership and contribution records for the same (group, user) pair
	// must live under distinct keys, as must the two id counters.
	assert.NotEqual(t, MembershipKey("GA", 7), ContributionKey(7, "GA"))
	assert.NotEqual(t, KeyPlanCounter, KeyGroupCounter)
	assert.NotEqual(t, UserKey("GA"), UserPlansKey("GA"))
	assert.Equal(t, "plan:GA:3", PlanKey("GA", 3))
	assert.Equal(t, "group:9", GroupKey(9))
}
