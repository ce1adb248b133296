package response_models

type PlanFeatures struct {
	Notifications   bool `json:"notifications"`
	Mailchimp       bool `json:"mailchimp"`
	AdvancedRewards bool `json:"advanced_rewards"`
}

type BusinessResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	PlanName string        `json:"plan_name,omitempty"`
	Features *PlanFeatures `json:"features,omitempty"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Business BusinessResponse `json:"business"`
}
