package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
)

// BankHandler serves the withdrawal bank list
type BankHandler struct{}

// NewBankHandler creates a new bank handler
func NewBankHandler() *BankHandler {
	return &BankHandler{}
}

// ListBanks returns the supported banks with their transfer fee
// @Summary List banks
// @Description Bank codes accepted for withdrawals with the transfer fee each charges
// @Tags banks
// @Produce json
// @Param fee_free query bool false "Only banks without a transfer fee"
// @Success 200 {object} model.BanksResponse "Banks"
// @Router /v1/banks [get]
func (h *BankHandler) ListBanks(c *gin.Context) {
	banks := domain.Banks
	if getQueryBool(c, "fee_free") {
		banks = domain.FeeFreeBanks()
	}

	respondOK(c, model.BanksResponse{
		Banks:              banks,
		DefaultTransferFee: domain.DefaultTransferFee,
	})
}

// GetBank returns one bank by code, with the default fee for unknown codes
// @Summary Get bank
// @Tags banks
// @Produce json
// @Param code path string true "Three-digit bank code"
// @Success 200 {object} domain.Bank "Bank"
// @Router /v1/banks/{code} [get]
func (h *BankHandler) GetBank(c *gin.Context) {
	code := c.Param("code")
	if bank, ok := domain.BankByCode(code); ok {
		respondOK(c, bank)
		return
	}
	respondOK(c, domain.Bank{Code: code, Fee: domain.TransferFee(code)})
}

// RegisterRoutes registers the bank routes
func (h *BankHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/banks", h.ListBanks)
	router.GET("/banks/:code", h.GetBank)
}
