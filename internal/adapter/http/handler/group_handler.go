package handler

import (
	"strconv"

	"savings-ledger/internal/adapter/http/dto"
	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/apperror"
	"savings-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// GroupHandler exposes group saves.
type GroupHandler struct {
	groupSvc ports.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupSvc ports.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

func groupIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.Validation("group id must be a positive integer")
	}
	return id, nil
}

// Create handles POST /api/v1/groups.
func (h *GroupHandler) Create(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	groupID, err := h.groupSvc.CreateGroupSave(c.Request.Context(), principal,
		req.IsPublic, req.TargetAmount, req.MaxMembers, domain.Cadence(req.Cadence))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateGroupResponse{GroupID: groupID})
}

// Get handles GET /api/v1/groups/:id.
func (h *GroupHandler) Get(c *gin.Context) {
	groupID, err := groupIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	group, err := h.groupSvc.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToGroupResponse(group))
}

// Join handles POST /api/v1/groups/:id/join.
func (h *GroupHandler) Join(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	groupID, err := groupIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.groupSvc.JoinGroupSave(c.Request.Context(), principal, groupID); err != nil {
		response.Error(c, err)
		return
	}

	group, err := h.groupSvc.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToGroupResponse(group))
}

// Contribute handles POST /api/v1/groups/:id/contribute.
func (h *GroupHandler) Contribute(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	groupID, err := groupIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.groupSvc.ContributeToGroupSave(c.Request.Context(), principal, groupID, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	group, err := h.groupSvc.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToGroupResponse(group))
}

// MemberContribution handles GET /api/v1/groups/:id/members/:address/contribution.
func (h *GroupHandler) MemberContribution(c *gin.Context) {
	groupID, err := groupIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	member := domain.Address(c.Param("address"))

	contribution, err := h.groupSvc.GetMemberContribution(c.Request.Context(), groupID, member)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ContributionResponse{
		GroupID:      groupID,
		Member:       member.String(),
		Contribution: contribution,
	})
}

// Membership handles GET /api/v1/groups/:id/members/:address.
func (h *GroupHandler) Membership(c *gin.Context) {
	groupID, err := groupIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	member := domain.Address(c.Param("address"))

	isMember, err := h.groupSvc.IsGroupMember(c.Request.Context(), member, groupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MembershipResponse{
		GroupID:  groupID,
		Member:   member.String(),
		IsMember: isMember,
	})
}
