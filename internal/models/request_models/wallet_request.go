package request_models

// WalletRegisterRequest comes from the join form behind the business QR.
// Email is the preferred identity, phone second; a name-only join is the
// unauthenticated last resort.
type WalletRegisterRequest struct {
	BusinessID string `form:"business_id" json:"business_id" binding:"required,uuid"`
	Name       string `form:"name" json:"name" binding:"required,max=120"`
	Email      string `form:"email" json:"email" binding:"omitempty"`
	Phone      string `form:"phone" json:"phone" binding:"omitempty"`
}
