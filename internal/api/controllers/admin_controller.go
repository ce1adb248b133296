package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loyalty/internal/services"
	"loyalty/pkg/utils"
)

type AdminController struct {
	businessService services.BusinessServiceInterface
	sweepService    services.SweepServiceInterface
}

func NewAdminController(businessService services.BusinessServiceInterface, sweepService services.SweepServiceInterface) *AdminController {
	return &AdminController{
		businessService: businessService,
		sweepService:    sweepService,
	}
}

func (a *AdminController) ListBusinesses(c *gin.Context) {
	businesses, err := a.businessService.ListBusinesses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, businesses, "Businesses fetched successfully")
}

func (a *AdminController) GetBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid business id")
		return
	}

	business, err := a.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, business, "Business fetched successfully")
}

func (a *AdminController) DeleteBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid business id")
		return
	}

	if err := a.businessService.DeleteBusiness(c.Request.Context(), businessID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Business deleted")
}

// RunSweep godoc
// @Summary Run the milestone/inactivity sweep on demand
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/sweep [post]
func (a *AdminController) RunSweep(c *gin.Context) {
	report, err := a.sweepService.Run(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Sweep completed")
}
