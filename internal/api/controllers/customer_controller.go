package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loyalty/internal/models/request_models"
	"loyalty/internal/services"
	"loyalty/pkg/utils"
)

type CustomerController struct {
	customerService services.CustomerServiceInterface
}

func NewCustomerController(customerService services.CustomerServiceInterface) *CustomerController {
	return &CustomerController{
		customerService: customerService,
	}
}

// List returns all customers of the requesting business.
func (cc *CustomerController) List(c *gin.Context) {
	businessID, err := uuid.Parse(c.Query("business_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "business_id required")
		return
	}

	customers, err := cc.customerService.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customers, "Customers fetched successfully")
}

// Add godoc
// @Summary Add a customer manually
// @Description Creates a customer and returns the printable join QR
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body request_models.AddCustomerRequest true "Customer payload"
// @Success 200 {object} utils.APIResponse
// @Router /customers/add [post]
func (cc *CustomerController) Add(c *gin.Context) {
	var req request_models.AddCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := cc.customerService.AddCustomer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Customer added successfully")
}

// Join handles the unauthenticated QR join; no reward type is assigned yet.
func (cc *CustomerController) Join(c *gin.Context) {
	var req request_models.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	customer, err := cc.customerService.Join(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, customer, "Customer registered successfully")
}

// AssignReward godoc
// @Summary Assign a reward type after enrollment
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer id"
// @Param request body request_models.AssignRewardRequest true "Reward type payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /customers/{id}/reward [put]
func (cc *CustomerController) AssignReward(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	var req request_models.AssignRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing reward type")
		return
	}

	if err := cc.customerService.AssignRewardType(c.Request.Context(), customerID, req.RewardType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reward type assigned successfully")
}
