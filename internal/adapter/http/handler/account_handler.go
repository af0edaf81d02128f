package handler

import (
	"savings-ledger/internal/adapter/http/dto"
	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/apperror"
	"savings-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes the account ledger.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// Register handles POST /api/v1/users; it creates the caller's account.
func (h *AccountHandler) Register(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.accountSvc.InitializeUser(c.Request.Context(), principal); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.UserResponse{Address: principal.String()})
}

// GetUser handles GET /api/v1/users/:address.
func (h *AccountHandler) GetUser(c *gin.Context) {
	address := domain.Address(c.Param("address"))

	user, err := h.accountSvc.GetUser(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UserResponse{
		Address:      address.String(),
		TotalBalance: user.TotalBalance,
		SavingsCount: user.SavingsCount,
	})
}

// UserExists handles GET /api/v1/users/:address/exists.
func (h *AccountHandler) UserExists(c *gin.Context) {
	exists, err := h.accountSvc.UserExists(c.Request.Context(), domain.Address(c.Param("address")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExistsResponse{Exists: exists})
}

// Deposit handles POST /api/v1/users/deposit; it credits the caller's
// implicit Flexi bucket.
func (h *AccountHandler) Deposit(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.accountSvc.DepositFlexi(c.Request.Context(), principal, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.accountSvc.GetUser(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UserResponse{
		Address:      principal.String(),
		TotalBalance: user.TotalBalance,
		SavingsCount: user.SavingsCount,
	})
}

// Withdraw handles POST /api/v1/users/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.accountSvc.WithdrawFlexi(c.Request.Context(), principal, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.accountSvc.GetUser(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UserResponse{
		Address:      principal.String(),
		TotalBalance: user.TotalBalance,
		SavingsCount: user.SavingsCount,
	})
}
