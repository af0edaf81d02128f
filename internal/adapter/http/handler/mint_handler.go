package handler

import (
	"encoding/base64"

	"savings-ledger/internal/adapter/http/dto"
	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/apperror"
	"savings-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// MintHandler exposes the mint authorization protocol. Routes are public:
// the admin's Ed25519 signature on the payload is the authorization, not the
// transport principal.
type MintHandler struct {
	mintSvc    ports.MintService
	accountSvc ports.AccountService
}

// NewMintHandler creates a new MintHandler.
func NewMintHandler(mintSvc ports.MintService, accountSvc ports.AccountService) *MintHandler {
	return &MintHandler{mintSvc: mintSvc, accountSvc: accountSvc}
}

func decodeMint(req dto.MintRequest) (domain.MintPayload, []byte, error) {
	sig, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		return domain.MintPayload{}, nil, apperror.Validation("signature must be base64")
	}
	payload := domain.MintPayload{
		User:           domain.Address(req.User),
		Amount:         req.Amount,
		Timestamp:      req.Timestamp,
		ExpiryDuration: req.ExpiryDuration,
	}
	return payload, sig, nil
}

// Mint handles POST /api/v1/mint: verify the signed instruction, then apply
// the credit through the account ledger.
func (h *MintHandler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payload, sig, err := decodeMint(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	minted, err := h.mintSvc.Mint(c.Request.Context(), payload, sig)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.accountSvc.CreditMint(c.Request.Context(), payload.User, minted); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.accountSvc.GetUser(c.Request.Context(), payload.User)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MintResponse{
		User:         payload.User.String(),
		Minted:       minted,
		TotalBalance: user.TotalBalance,
	})
}

// Verify handles POST /api/v1/mint/verify; it checks the instruction without
// touching any balance.
func (h *MintHandler) Verify(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payload, sig, err := decodeMint(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	valid, err := h.mintSvc.VerifySignature(c.Request.Context(), payload, sig)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VerifyResponse{Valid: valid})
}
