package models

// PaymentConfirmRequest is the request sent to the payment API to confirm a
// charge after the user returns from the provider
type PaymentConfirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int    `json:"amount"`
}

// PaymentConfirmResponse is the response expected back from the payment API
// after a successful confirmation
type PaymentConfirmResponse struct {
	PaymentKey    string `json:"paymentKey"`
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
	Amount        int    `json:"amount"`
	Status        string `json:"status"`
	ApprovedAt    string `json:"approvedAt"`
}

// PaymentErrorResponse is the error body returned by the payment API on a
// rejected confirmation
type PaymentErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// SuccessCallbackParams are the query parameters the provider appends to the
// success return URL. All three are required; a missing or malformed value is
// an invalid outcome, not a crash.
type SuccessCallbackParams struct {
	PaymentKey string
	OrderID    string
	Amount     int
}

// FailCallbackParams are the query parameters the provider appends to the
// fail return URL
type FailCallbackParams struct {
	Code    string
	Message string
	OrderID string
}

// RedirectParams are the query parameters passed to the web result page when
// redirecting the user after reconciliation
type RedirectParams struct {
	Status            string
	Message           string
	OrderID           string
	ReservationNumber string
	Actions           []string
}
