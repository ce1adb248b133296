package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"loyalty/internal/models/request_models"
	"loyalty/internal/services"
	"loyalty/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// Send pushes a one-off message to a single customer.
func (n *NotificationController) Send(c *gin.Context) {
	var req request_models.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer id")
		return
	}

	if err := n.notificationService.SendToCustomer(c.Request.Context(), customerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification sent")
}

// Broadcast pushes a message to every customer with a registered token.
func (n *NotificationController) Broadcast(c *gin.Context) {
	var req request_models.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sent, failed, err := n.notificationService.Broadcast(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"sent": sent, "failed": failed}, "Broadcast completed")
}

// SendTemplate pushes one of the fixed campaign templates to a business's
// customers.
func (n *NotificationController) SendTemplate(c *gin.Context) {
	var req request_models.TemplateBroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid business id")
		return
	}

	sent, failed, err := n.notificationService.SendTemplate(c.Request.Context(), businessID, req.TemplateID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"sent": sent, "failed": failed}, "Template broadcast completed")
}
