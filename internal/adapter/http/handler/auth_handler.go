package handler

import (
	"net/http"

	"savings-ledger/internal/adapter/http/dto"
	"savings-ledger/internal/adapter/http/middleware"
	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/apperror"
	"savings-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues principal bearer tokens. This is a thin host binding:
// the deployment environment in front of this service owns actual identity
// verification.
type AuthHandler struct {
	tokenSvc ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{tokenSvc: tokenSvc}
}

// IssueToken handles POST /api/v1/auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate(domain.Address(req.Address))
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiresAt.Unix(),
	})
}

// principalFrom returns the JWT-authenticated caller.
func principalFrom(c *gin.Context) (domain.Address, bool) {
	v, ok := c.Get(middleware.CtxPrincipal)
	if !ok {
		return "", false
	}
	principal, ok := v.(domain.Address)
	return principal, ok
}

// HealthCheck returns a deep health endpoint verifying each dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
