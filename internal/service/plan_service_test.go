package service

import (
	"testing"

	"savings-ledger/internal/core/domain"
	"savings-ledger/pkg/amount"
	"savings-ledger/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_CreatePlan(t *testing.T) {
	f := newFixture()

	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(500))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), planID)

	plan, err := f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanKindFlexi, plan.PlanType.Kind)
	assert.Equal(t, "500", plan.Balance.String())
	assert.Equal(t, f.clock.Time, plan.StartTime)
	assert.Equal(t, f.clock.Time, plan.LastDeposit)
	assert.Equal(t, uint32(500), plan.InterestRate)
	assert.False(t, plan.IsCompleted)
	assert.False(t, plan.IsWithdrawn)
}

func TestPlanService_CreatePlan_AutoCreatesUser(t *testing.T) {
	f := newFixture()

	// No InitializeUser call first: the plan creation stands up the account.
	_, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(100))
	require.NoError(t, err)

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.Equal(t, "100", user.TotalBalance.String())
	assert.Equal(t, uint32(1), user.SavingsCount)
}

func TestPlanService_CreatePlan_CounterIsGlobal(t *testing.T) {
	f := newFixture()

	id1, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.Zero())
	require.NoError(t, err)
	id2, err := f.plans.CreatePlan(as(bob), bob, domain.Flexi(), amount.Zero())
	require.NoError(t, err)
	id3, err := f.plans.CreatePlan(as(alice), alice, domain.Lock(f.clock.Time+3600), amount.Zero())
	require.NoError(t, err)

	// Ids come from one counter shared across all users.
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, uint64(3), id3)
}

func TestPlanService_CreatePlan_ZeroDeposit(t *testing.T) {
	f := newFixture()

	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Goal("laptop", amount.New(9999), domain.CadenceWeekly), amount.Zero())
	require.NoError(t, err)

	plan, err := f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.True(t, plan.Balance.IsZero())
	// No deposit happened, so no deposit timestamp.
	assert.Equal(t, uint64(0), plan.LastDeposit)
	assert.Equal(t, uint32(600), plan.InterestRate)
}

func TestPlanService_CreatePlan_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.plans.CreatePlan(as(bob), alice, domain.Flexi(), amount.New(1))
	assert.Equal(t, apperror.CodeUnauthorized, apperror.CodeOf(err))

	_, err = f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(-1))
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))

	_, err = f.plans.CreatePlan(as(alice), alice, domain.PlanType{Kind: "BOGUS"}, amount.New(1))
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))
}

func TestPlanService_GetPlan_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.plans.GetPlan(as(alice), alice, 7)
	require.Error(t, err)
	assert.Equal(t, apperror.CodePlanNotFound, apperror.CodeOf(err))
}

func TestPlanService_GetPlan_ScopedToOwner(t *testing.T) {
	f := newFixture()

	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(10))
	require.NoError(t, err)

	// Bob cannot read Alice's plan by id.
	_, err = f.plans.GetPlan(as(bob), bob, planID)
	assert.Equal(t, apperror.CodePlanNotFound, apperror.CodeOf(err))
}

func TestPlanService_ListPlans(t *testing.T) {
	f := newFixture()

	first, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(1))
	require.NoError(t, err)
	_, err = f.plans.CreatePlan(as(bob), bob, domain.Flexi(), amount.New(2))
	require.NoError(t, err)
	third, err := f.plans.CreatePlan(as(alice), alice, domain.Lock(f.clock.Time+60), amount.New(3))
	require.NoError(t, err)

	plans, err := f.plans.ListPlans(as(alice), alice)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, first, plans[0].PlanID)
	assert.Equal(t, third, plans[1].PlanID)

	empty, err := f.plans.ListPlans(as(carol), carol)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPlanService_Deposit(t *testing.T) {
	f := newFixture()
	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(100))
	require.NoError(t, err)

	f.clock.Time += 50
	require.NoError(t, f.plans.Deposit(as(alice), alice, planID, amount.New(400)))

	plan, err := f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.Equal(t, "500", plan.Balance.String())
	assert.Equal(t, f.clock.Time, plan.LastDeposit)

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.Equal(t, "500", user.TotalBalance.String())
}

func TestPlanService_Deposit_Validation(t *testing.T) {
	f := newFixture()
	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(100))
	require.NoError(t, err)

	// Fixed check order: amount, then user, then plan.
	err = f.plans.Deposit(as(bob), bob, planID, amount.Zero())
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))

	err = f.plans.Deposit(as(bob), bob, planID, amount.New(10))
	assert.Equal(t, apperror.CodeUserNotFound, apperror.CodeOf(err))

	err = f.plans.Deposit(as(alice), alice, 99, amount.New(10))
	assert.Equal(t, apperror.CodePlanNotFound, apperror.CodeOf(err))
}

func TestPlanService_Deposit_GoalCompletion(t *testing.T) {
	f := newFixture()
	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Goal("car", amount.New(1000), domain.CadenceMonthly), amount.New(300))
	require.NoError(t, err)

	require.NoError(t, f.plans.Deposit(as(alice), alice, planID, amount.New(699)))
	plan, err := f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.False(t, plan.IsCompleted, "999 of 1000 is not complete")

	require.NoError(t, f.plans.Deposit(as(alice), alice, planID, amount.New(1)))
	plan, err = f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.True(t, plan.IsCompleted, "reaching the target completes the goal")

	// Completion is sticky; further deposits are still accepted.
	require.NoError(t, f.plans.Deposit(as(alice), alice, planID, amount.New(500)))
	plan, err = f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.True(t, plan.IsCompleted)
	assert.Equal(t, "1500", plan.Balance.String())
}

func TestPlanService_Withdraw(t *testing.T) {
	f := newFixture()
	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(500))
	require.NoError(t, err)

	f.clock.Time += 10
	require.NoError(t, f.plans.Withdraw(as(alice), alice, planID, amount.New(200)))

	plan, err := f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.Equal(t, "300", plan.Balance.String())
	assert.Equal(t, f.clock.Time, plan.LastWithdraw)
	assert.False(t, plan.IsWithdrawn)

	user, err := f.accounts.GetUser(as(alice), alice)
	require.NoError(t, err)
	assert.Equal(t, "300", user.TotalBalance.String())
}

func TestPlanService_Withdraw_EmptyingMarksWithdrawn(t *testing.T) {
	f := newFixture()
	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(500))
	require.NoError(t, err)

	require.NoError(t, f.plans.Withdraw(as(alice), alice, planID, amount.New(500)))

	plan, err := f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.True(t, plan.Balance.IsZero())
	assert.True(t, plan.IsWithdrawn)

	// Withdrawn is terminal: no further deposits or withdrawals.
	err = f.plans.Deposit(as(alice), alice, planID, amount.New(1))
	assert.Equal(t, apperror.CodePlanAlreadyWithdrawn, apperror.CodeOf(err))
	err = f.plans.Withdraw(as(alice), alice, planID, amount.New(1))
	assert.Equal(t, apperror.CodePlanAlreadyWithdrawn, apperror.CodeOf(err))
}

func TestPlanService_Withdraw_Locked(t *testing.T) {
	f := newFixture()
	unlockAt := f.clock.Time + 3600
	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Lock(unlockAt), amount.New(500))
	require.NoError(t, err)

	err = f.plans.Withdraw(as(alice), alice, planID, amount.New(100))
	assert.Equal(t, apperror.CodePlanLocked, apperror.CodeOf(err))

	// One second before the boundary: still locked.
	f.clock.Time = unlockAt - 1
	err = f.plans.Withdraw(as(alice), alice, planID, amount.New(100))
	assert.Equal(t, apperror.CodePlanLocked, apperror.CodeOf(err))

	// At the unlock time, withdrawal goes through.
	f.clock.Time = unlockAt
	require.NoError(t, f.plans.Withdraw(as(alice), alice, planID, amount.New(100)))
}

func TestPlanService_Withdraw_Insufficient(t *testing.T) {
	f := newFixture()
	planID, err := f.plans.CreatePlan(as(alice), alice, domain.Flexi(), amount.New(100))
	require.NoError(t, err)

	err = f.plans.Withdraw(as(alice), alice, planID, amount.New(101))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInsufficientBalance, apperror.CodeOf(err))

	plan, err := f.plans.GetPlan(as(alice), alice, planID)
	require.NoError(t, err)
	assert.Equal(t, "100", plan.Balance.String())
}
