package response_models

type CustomerResponse struct {
	ID           string  `json:"id"`
	BusinessID   string  `json:"business_id"`
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	RewardType   string  `json:"reward_type"`
	Points       int     `json:"points"`
	ScanCount    int     `json:"scan_count"`
	LastVisit    *int64  `json:"last_visit,omitempty"` // unix seconds
	WalletSerial *string `json:"wallet_serial,omitempty"`
}

type CustomerWithQRResponse struct {
	Customer CustomerResponse `json:"customer"`
	QRCode   string           `json:"qr_code"` // data URL PNG
}
