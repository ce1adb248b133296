package response_models

type ScanResponse struct {
	CustomerID string  `json:"customer_id"`
	Points     int     `json:"points"`
	Reward     *string `json:"reward"`
	ScanCount  int     `json:"scan_count"`
	// Returning distinguishes a repeat visit from an enrollment scan.
	Returning bool `json:"returning"`
}
