package handler

import (
	"crypto/ed25519"
	"encoding/base64"

	"savings-ledger/internal/adapter/http/dto"
	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/apperror"
	"savings-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin registry.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func decodeAdmin(req dto.AdminRequest) (domain.Admin, error) {
	key, err := base64.StdEncoding.DecodeString(req.PublicKey)
	if err != nil {
		return domain.Admin{}, apperror.Validation("public_key must be base64")
	}
	if len(key) != ed25519.PublicKeySize {
		return domain.Admin{}, apperror.Validation("public_key must be 32 raw Ed25519 bytes")
	}
	return domain.Admin{
		Address:   domain.Address(req.Address),
		PublicKey: ed25519.PublicKey(key),
	}, nil
}

// Initialize handles POST /api/v1/admin.
func (h *AdminHandler) Initialize(c *gin.Context) {
	var req dto.AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, err := decodeAdmin(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.adminSvc.Initialize(c.Request.Context(), admin); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.AdminResponse{
		Address:   req.Address,
		PublicKey: req.PublicKey,
	})
}

// GetAdmin handles GET /api/v1/admin.
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	admin, err := h.adminSvc.GetAdmin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AdminResponse{
		Address:   admin.Address.String(),
		PublicKey: base64.StdEncoding.EncodeToString(admin.PublicKey),
	})
}

// IsInitialized handles GET /api/v1/admin/initialized.
func (h *AdminHandler) IsInitialized(c *gin.Context) {
	initialized, err := h.adminSvc.IsInitialized(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.InitializedResponse{Initialized: initialized})
}

// UpdateAdmin handles PUT /api/v1/admin. The caller must be the current
// admin; the incoming admin co-signs through the co-signer token header.
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	var req dto.AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	admin, err := decodeAdmin(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.adminSvc.UpdateAdmin(c.Request.Context(), admin); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AdminResponse{
		Address:   req.Address,
		PublicKey: req.PublicKey,
	})
}
