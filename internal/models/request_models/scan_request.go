package request_models

type ScanRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	// Optional: present when the scanning device is logged in as a business.
	// A mismatch against the customer's owner rejects the scan.
	BusinessID string `json:"business_id" binding:"omitempty,uuid"`
}

type WalletScanRequest struct {
	Serial     string `json:"serial" binding:"required"`
	BusinessID string `json:"business_id" binding:"required,uuid"`
}
