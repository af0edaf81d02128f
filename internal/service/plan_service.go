package service

import (
	"context"

	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/amount"
	"savings-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// PlanServiceImpl implements ports.PlanService. Plan ids come from one
// global monotonic counter; records are keyed (owner, plan_id) with a
// per-user insertion-order index for listing.
type PlanServiceImpl struct {
	store ports.Store
	authz ports.Authorizer
	clock ports.Clock
	log   zerolog.Logger
}

// NewPlanService creates a new PlanServiceImpl.
func NewPlanService(store ports.Store, authz ports.Authorizer, clock ports.Clock, log zerolog.Logger) *PlanServiceImpl {
	return &PlanServiceImpl{store: store, authz: authz, clock: clock, log: log}
}

// CreatePlan allocates the next plan id and stores the plan with the initial
// deposit as its balance. A first plan auto-creates the account record; the
// deposit is counted into total_balance either way.
func (s *PlanServiceImpl) CreatePlan(ctx context.Context, user domain.Address, planType domain.PlanType, initialDeposit amount.Amount) (uint64, error) {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return 0, err
	}
	if initialDeposit.Sign() < 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	if !planType.Valid() {
		return 0, apperror.Validation("unknown plan kind")
	}

	var record domain.User
	if _, err := getRecord(ctx, s.store, domain.UserKey(user), &record); err != nil {
		return 0, err
	}

	newBalance, ok := record.TotalBalance.Add(initialDeposit)
	if !ok {
		return 0, apperror.ErrOverflow()
	}
	record.TotalBalance = newBalance
	record.SavingsCount++

	planID, err := nextID(ctx, s.store, domain.KeyPlanCounter)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	plan := domain.SavingsPlan{
		PlanID:       planID,
		PlanType:     planType,
		Balance:      initialDeposit,
		StartTime:    now,
		InterestRate: planType.DefaultInterestRate(),
	}
	if initialDeposit.Sign() > 0 {
		plan.LastDeposit = now
	}

	if err := setRecord(ctx, s.store, domain.PlanKey(user, planID), plan); err != nil {
		return 0, err
	}
	if err := s.appendPlanIndex(ctx, user, planID); err != nil {
		return 0, err
	}
	// Authoritative account record last (see write-ordering note in DESIGN).
	if err := setRecord(ctx, s.store, domain.UserKey(user), record); err != nil {
		return 0, err
	}

	s.log.Info().
		Str("user", user.String()).
		Uint64("plan_id", planID).
		Str("kind", string(planType.Kind)).
		Str("initial_deposit", initialDeposit.String()).
		Msg("savings plan created")
	return planID, nil
}

// GetPlan returns the plan owned by user with the given id.
func (s *PlanServiceImpl) GetPlan(ctx context.Context, user domain.Address, planID uint64) (domain.SavingsPlan, error) {
	var plan domain.SavingsPlan
	found, err := getRecord(ctx, s.store, domain.PlanKey(user, planID), &plan)
	if err != nil {
		return domain.SavingsPlan{}, err
	}
	if !found {
		return domain.SavingsPlan{}, apperror.ErrPlanNotFound()
	}
	return plan, nil
}

// ListPlans returns all plans owned by user in insertion order.
func (s *PlanServiceImpl) ListPlans(ctx context.Context, user domain.Address) ([]domain.SavingsPlan, error) {
	var ids []uint64
	if _, err := getRecord(ctx, s.store, domain.UserPlansKey(user), &ids); err != nil {
		return nil, err
	}

	plans := make([]domain.SavingsPlan, 0, len(ids))
	for _, id := range ids {
		plan, err := s.GetPlan(ctx, user, id)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Deposit credits a specific plan and the owner's total_balance.
func (s *PlanServiceImpl) Deposit(ctx context.Context, user domain.Address, planID uint64, amt amount.Amount) error {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return err
	}
	if amt.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	var record domain.User
	found, err := getRecord(ctx, s.store, domain.UserKey(user), &record)
	if err != nil {
		return err
	}
	if !found {
		return apperror.ErrUserNotFound()
	}

	plan, err := s.GetPlan(ctx, user, planID)
	if err != nil {
		return err
	}
	if plan.IsWithdrawn {
		return apperror.ErrPlanAlreadyWithdrawn()
	}

	newPlanBalance, ok := plan.Balance.Add(amt)
	if !ok {
		return apperror.ErrOverflow()
	}
	newTotal, ok := record.TotalBalance.Add(amt)
	if !ok {
		return apperror.ErrOverflow()
	}

	plan.Balance = newPlanBalance
	plan.LastDeposit = s.clock.Now()
	if plan.PlanType.Kind == domain.PlanKindGoal && !plan.IsCompleted &&
		plan.Balance.Cmp(plan.PlanType.TargetAmount) >= 0 {
		plan.IsCompleted = true
	}
	record.TotalBalance = newTotal

	if err := setRecord(ctx, s.store, domain.PlanKey(user, planID), plan); err != nil {
		return err
	}
	if err := setRecord(ctx, s.store, domain.UserKey(user), record); err != nil {
		return err
	}

	s.log.Info().
		Str("user", user.String()).
		Uint64("plan_id", planID).
		Str("amount", amt.String()).
		Bool("completed", plan.IsCompleted).
		Msg("plan deposit")
	return nil
}

// Withdraw debits a specific plan and the owner's total_balance. Emptying
// the plan marks it withdrawn, which is terminal.
func (s *PlanServiceImpl) Withdraw(ctx context.Context, user domain.Address, planID uint64, amt amount.Amount) error {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return err
	}
	if amt.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	var record domain.User
	found, err := getRecord(ctx, s.store, domain.UserKey(user), &record)
	if err != nil {
		return err
	}
	if !found {
		return apperror.ErrUserNotFound()
	}

	plan, err := s.GetPlan(ctx, user, planID)
	if err != nil {
		return err
	}
	if plan.IsWithdrawn {
		return apperror.ErrPlanAlreadyWithdrawn()
	}
	if plan.Locked(s.clock.Now()) {
		return apperror.ErrPlanLocked()
	}
	if amt.Cmp(plan.Balance) > 0 {
		return apperror.ErrInsufficientBalance()
	}

	newPlanBalance, ok := plan.Balance.Sub(amt)
	if !ok {
		return apperror.ErrUnderflow()
	}
	newTotal, ok := record.TotalBalance.Sub(amt)
	if !ok {
		return apperror.ErrUnderflow()
	}

	plan.Balance = newPlanBalance
	plan.LastWithdraw = s.clock.Now()
	if plan.Balance.IsZero() {
		plan.IsWithdrawn = true
	}
	record.TotalBalance = newTotal

	if err := setRecord(ctx, s.store, domain.PlanKey(user, planID), plan); err != nil {
		return err
	}
	if err := setRecord(ctx, s.store, domain.UserKey(user), record); err != nil {
		return err
	}

	s.log.Info().
		Str("user", user.String()).
		Uint64("plan_id", planID).
		Str("amount", amt.String()).
		Bool("withdrawn", plan.IsWithdrawn).
		Msg("plan withdraw")
	return nil
}

func (s *PlanServiceImpl) appendPlanIndex(ctx context.Context, user domain.Address, planID uint64) error {
	var ids []uint64
	if _, err := getRecord(ctx, s.store, domain.UserPlansKey(user), &ids); err != nil {
		return err
	}
	ids = append(ids, planID)
	return setRecord(ctx, s.store, domain.UserPlansKey(user), ids)
}
