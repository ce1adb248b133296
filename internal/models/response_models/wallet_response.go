package response_models

type WalletRegisterResponse struct {
	CustomerID   string `json:"customer_id"`
	WalletSerial string `json:"wallet_serial"`
	// Platform-specific install target for the client to follow.
	AppleInstallURL  string `json:"apple_install_url"`
	GoogleInstallURL string `json:"google_install_url"`
}

// WalletPassResponse carries the fields the Apple/Google pass issuers consume.
// Pass signing itself happens downstream.
type WalletPassResponse struct {
	CustomerID   string `json:"customer_id"`
	BusinessName string `json:"business_name"`
	Points       int    `json:"points"`
	LastScanned  *int64 `json:"last_scanned,omitempty"` // unix seconds
	WalletSerial string `json:"wallet_serial"`
}
