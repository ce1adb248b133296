package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loyalty/internal/models/request_models"
	"loyalty/internal/services"
	"loyalty/pkg/utils"
)

type ScanController struct {
	scanService services.ScanServiceInterface
}

func NewScanController(scanService services.ScanServiceInterface) *ScanController {
	return &ScanController{
		scanService: scanService,
	}
}

// Scan godoc
// @Summary Award a manual QR scan
// @Description Evaluates the customer's reward policy and commits the scan
// @Tags Scan
// @Accept json
// @Produce json
// @Param request body request_models.ScanRequest true "Scan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /scan [post]
func (s *ScanController) Scan(c *gin.Context) {
	var req request_models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	var businessID *uuid.UUID
	if req.BusinessID != "" {
		parsed, err := uuid.Parse(req.BusinessID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid business id")
			return
		}
		businessID = &parsed
	}

	result, err := s.scanService.ScanByCustomerID(c.Request.Context(), customerID, businessID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Scan success")
}

// ScanWallet godoc
// @Summary Award a wallet pass scan
// @Description Looks up the customer by pass serial, enrolling on first scan
// @Tags Scan
// @Accept json
// @Produce json
// @Param request body request_models.WalletScanRequest true "Wallet scan payload"
// @Success 200 {object} utils.APIResponse
// @Router /scan/scan-wallet [post]
func (s *ScanController) ScanWallet(c *gin.Context) {
	var req request_models.WalletScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid business id")
		return
	}

	result, err := s.scanService.ScanByWalletSerial(c.Request.Context(), req.Serial, businessID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Scan success")
}
