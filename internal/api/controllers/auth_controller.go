package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loyalty/internal/models/request_models"
	"loyalty/internal/services"
	"loyalty/pkg/utils"
)

type AuthController struct {
	businessService services.BusinessServiceInterface
}

func NewAuthController(businessService services.BusinessServiceInterface) *AuthController {
	return &AuthController{
		businessService: businessService,
	}
}

// Register godoc
// @Summary Register a new business
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterBusinessRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	business, err := a.businessService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, business, "Business registered successfully")
}

// Login godoc
// @Summary Login to a business account
// @Description Authenticates a business and returns a token plus plan features
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.businessService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}
