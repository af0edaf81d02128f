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

// PlanHandler exposes savings plans.
type PlanHandler struct {
	planSvc ports.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planSvc ports.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

func planIDParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.Validation("plan id must be a positive integer")
	}
	return id, nil
}

// Create handles POST /api/v1/plans.
func (h *PlanHandler) Create(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	planType := domain.PlanType{
		Kind:         domain.PlanKind(req.PlanType.Kind),
		UnlockTime:   req.PlanType.UnlockTime,
		Category:     req.PlanType.Category,
		TargetAmount: req.PlanType.TargetAmount,
		Cadence:      domain.Cadence(req.PlanType.Cadence),
		GroupID:      req.PlanType.GroupID,
		IsPublic:     req.PlanType.IsPublic,
	}

	planID, err := h.planSvc.CreatePlan(c.Request.Context(), principal, planType, req.InitialDeposit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatePlanResponse{PlanID: planID})
}

// Get handles GET /api/v1/plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	planID, err := planIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	plan, err := h.planSvc.GetPlan(c.Request.Context(), principal, planID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToPlanResponse(plan))
}

// List handles GET /api/v1/plans.
func (h *PlanHandler) List(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	plans, err := h.planSvc.ListPlans(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, dto.ToPlanResponse(p))
	}

	response.OK(c, dto.PlanListResponse{Items: items, Total: len(items)})
}

// Deposit handles POST /api/v1/plans/:id/deposit.
func (h *PlanHandler) Deposit(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	planID, err := planIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.planSvc.Deposit(c.Request.Context(), principal, planID, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	plan, err := h.planSvc.GetPlan(c.Request.Context(), principal, planID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToPlanResponse(plan))
}

// Withdraw handles POST /api/v1/plans/:id/withdraw.
func (h *PlanHandler) Withdraw(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	planID, err := planIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.planSvc.Withdraw(c.Request.Context(), principal, planID, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	plan, err := h.planSvc.GetPlan(c.Request.Context(), principal, planID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToPlanResponse(plan))
}
