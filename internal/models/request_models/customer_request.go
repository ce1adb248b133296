package request_models

type AddCustomerRequest struct {
	BusinessID string `json:"business_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,max=120"`
	Email      string `json:"email" binding:"omitempty,email"`
	RewardType string `json:"reward_type" binding:"omitempty"`
}

type JoinRequest struct {
	BusinessID string `json:"business_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,max=120"`
	Email      string `json:"email" binding:"required,email"`
}

type AssignRewardRequest struct {
	RewardType string `json:"reward_type" binding:"required"`
}
