package service

import (
	"context"

	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/amount"
	"savings-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// GroupServiceImpl implements ports.GroupService. Membership and
// contribution live as separate keyed records so per-member lookups stay
// O(1) and the group record stays bounded.
type GroupServiceImpl struct {
	store ports.Store
	authz ports.Authorizer
	clock ports.Clock
	log   zerolog.Logger
}

// NewGroupService creates a new GroupServiceImpl.
func NewGroupService(store ports.Store, authz ports.Authorizer, clock ports.Clock, log zerolog.Logger) *GroupServiceImpl {
	return &GroupServiceImpl{store: store, authz: authz, clock: clock, log: log}
}

// CreateGroupSave allocates the next group id from the dedicated counter and
// stores the group with the creator as its first member.
func (s *GroupServiceImpl) CreateGroupSave(ctx context.Context, creator domain.Address, isPublic bool, target amount.Amount, maxMembers uint32, cadence domain.Cadence) (uint64, error) {
	if err := s.authz.RequireAuth(ctx, creator); err != nil {
		return 0, err
	}
	if target.Sign() <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	if maxMembers == 0 {
		return 0, apperror.ErrInvalidGroupConfig()
	}

	exists, err := s.store.Has(ctx, domain.UserKey(creator))
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	if !exists {
		return 0, apperror.ErrUserNotFound()
	}

	groupID, err := nextID(ctx, s.store, domain.KeyGroupCounter)
	if err != nil {
		return 0, err
	}

	group := domain.GroupSave{
		GroupID:      groupID,
		IsPublic:     isPublic,
		TargetAmount: target,
		MemberCount:  1, // creator is the first member
		MaxMembers:   maxMembers,
		Cadence:      cadence,
		Creator:      creator,
		CreatedAt:    s.clock.Now(),
	}

	if err := setAmount(ctx, s.store, domain.ContributionKey(groupID, creator), amount.Zero()); err != nil {
		return 0, err
	}
	if err := setRecord(ctx, s.store, domain.MembershipKey(creator, groupID), true); err != nil {
		return 0, err
	}
	if err := setRecord(ctx, s.store, domain.GroupKey(groupID), group); err != nil {
		return 0, err
	}

	s.log.Info().
		Str("creator", creator.String()).
		Uint64("group_id", groupID).
		Bool("public", isPublic).
		Str("target", target.String()).
		Uint32("max_members", maxMembers).
		Msg("group save created")
	return groupID, nil
}

// JoinGroupSave adds a registered user to a public group. Check order is
// fixed: unregistered user, missing group, private group, full group,
// duplicate membership.
func (s *GroupServiceImpl) JoinGroupSave(ctx context.Context, user domain.Address, groupID uint64) error {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return err
	}

	exists, err := s.store.Has(ctx, domain.UserKey(user))
	if err != nil {
		return apperror.InternalError(err)
	}
	if !exists {
		return apperror.ErrUserNotFound()
	}

	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	// Private-group invitations are not a thing yet: every join to a
	// private group fails as a non-member.
	if !group.IsPublic {
		return apperror.ErrNotGroupMember()
	}
	if group.Full() {
		return apperror.ErrGroupFull()
	}

	isMember, err := s.store.Has(ctx, domain.MembershipKey(user, groupID))
	if err != nil {
		return apperror.InternalError(err)
	}
	if isMember {
		return apperror.ErrUserAlreadyExists()
	}

	group.MemberCount++

	if err := setAmount(ctx, s.store, domain.ContributionKey(groupID, user), amount.Zero()); err != nil {
		return err
	}
	if err := setRecord(ctx, s.store, domain.MembershipKey(user, groupID), true); err != nil {
		return err
	}
	// Group record last: subsidiary keys without a member-count bump are
	// harmless, the reverse is not.
	if err := setRecord(ctx, s.store, domain.GroupKey(groupID), group); err != nil {
		return err
	}

	s.log.Info().
		Str("user", user.String()).
		Uint64("group_id", groupID).
		Uint32("member_count", group.MemberCount).
		Msg("joined group save")
	return nil
}

// ContributeToGroupSave adds amt to the pool and the member's accumulator.
// Contributions may exceed the target; completion is sticky and never caps.
func (s *GroupServiceImpl) ContributeToGroupSave(ctx context.Context, user domain.Address, groupID uint64, amt amount.Amount) error {
	if err := s.authz.RequireAuth(ctx, user); err != nil {
		return err
	}
	if amt.Sign() <= 0 {
		return apperror.ErrInvalidAmount()
	}

	exists, err := s.store.Has(ctx, domain.UserKey(user))
	if err != nil {
		return apperror.InternalError(err)
	}
	if !exists {
		return apperror.ErrUserNotFound()
	}

	isMember, err := s.store.Has(ctx, domain.MembershipKey(user, groupID))
	if err != nil {
		return apperror.InternalError(err)
	}
	if !isMember {
		return apperror.ErrNotGroupMember()
	}

	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	newPool, ok := group.CurrentAmount.Add(amt)
	if !ok {
		return apperror.ErrOverflow()
	}

	contribution, err := s.GetMemberContribution(ctx, groupID, user)
	if err != nil {
		return err
	}
	newContribution, ok := contribution.Add(amt)
	if !ok {
		return apperror.ErrOverflow()
	}

	group.CurrentAmount = newPool
	if group.CurrentAmount.Cmp(group.TargetAmount) >= 0 {
		group.IsCompleted = true
	}

	if err := setAmount(ctx, s.store, domain.ContributionKey(groupID, user), newContribution); err != nil {
		return err
	}
	if err := setRecord(ctx, s.store, domain.GroupKey(groupID), group); err != nil {
		return err
	}

	s.log.Info().
		Str("user", user.String()).
		Uint64("group_id", groupID).
		Str("amount", amt.String()).
		Str("current_amount", group.CurrentAmount.String()).
		Bool("completed", group.IsCompleted).
		Msg("group contribution")
	return nil
}

// GetGroup returns the group record.
func (s *GroupServiceImpl) GetGroup(ctx context.Context, groupID uint64) (domain.GroupSave, error) {
	var group domain.GroupSave
	found, err := getRecord(ctx, s.store, domain.GroupKey(groupID), &group)
	if err != nil {
		return domain.GroupSave{}, err
	}
	if !found {
		return domain.GroupSave{}, apperror.ErrPlanNotFound()
	}
	return group, nil
}

// GetMemberContribution returns the member's accumulated contribution, or 0
// for a user that never contributed.
func (s *GroupServiceImpl) GetMemberContribution(ctx context.Context, groupID uint64, user domain.Address) (amount.Amount, error) {
	return getAmount(ctx, s.store, domain.ContributionKey(groupID, user))
}

// IsGroupMember checks the membership key. Never mutates.
func (s *GroupServiceImpl) IsGroupMember(ctx context.Context, user domain.Address, groupID uint64) (bool, error) {
	isMember, err := s.store.Has(ctx, domain.MembershipKey(user, groupID))
	if err != nil {
		return false, apperror.InternalError(err)
	}
	return isMember, nil
}
