package models

// ActivePassRest is a read-only snapshot of the user's active pass, fetched
// from the pass API and used only as a pricing input. The validity window is
// [StartDate, EndDate).
type ActivePassRest struct {
	ID        int64  `json:"id"`
	PassType  string `json:"passType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Price     int    `json:"price"`
	Status    string `json:"status"`
	Valid     bool   `json:"valid"`
}
