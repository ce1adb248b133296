package request_models

type SendNotificationRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}

type BroadcastRequest struct {
	Message string `json:"message" binding:"required,max=500"`
}

type TemplateBroadcastRequest struct {
	BusinessID string `json:"business_id" binding:"required,uuid"`
	TemplateID int    `json:"template_id" binding:"required"`
}
