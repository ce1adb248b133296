package response_models

// SweepReport is the aggregate outcome of one sweep run. Individual customer
// failures are counted, never fatal.
type SweepReport struct {
	Scanned  int `json:"scanned"`
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}
