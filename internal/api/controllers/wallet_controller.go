package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loyalty/internal/models/request_models"
	"loyalty/internal/services"
	"loyalty/pkg/utils"
)

type WalletController struct {
	walletService services.WalletServiceInterface
	publicOrigin  string
}

func NewWalletController(walletService services.WalletServiceInterface, publicOrigin string) *WalletController {
	return &WalletController{
		walletService: walletService,
		publicOrigin:  publicOrigin,
	}
}

// BusinessQR serves the printable join QR as a plain PNG, suitable for flyers
// or an <img> tag.
func (w *WalletController) BusinessQR(c *gin.Context) {
	raw := strings.TrimSuffix(c.Param("businessId"), ".png")
	businessID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid business id")
		return
	}

	png, err := w.walletService.BusinessJoinQR(c.Request.Context(), businessID, w.publicOrigin)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Register godoc
// @Summary Join a loyalty program and get a wallet pass
// @Description Upserts the customer, ensures the wallet record and mints the pass serial
// @Tags Wallet
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /wallet/register [post]
func (w *WalletController) Register(c *gin.Context) {
	var req request_models.WalletRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := w.walletService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Registration successful")
}

// Pass exposes the pass fields consumed by the Apple/Google issuers.
func (w *WalletController) Pass(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	pass, err := w.walletService.PassData(c.Request.Context(), customerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pass, "Pass data fetched successfully")
}
