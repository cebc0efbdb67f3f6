package models

// OutgoingTossPayRequest is the request sent to TossPay to create a hosted
// checkout session
type OutgoingTossPayRequest struct {
	Method     string `json:"method"`
	Amount     int    `json:"amount"`
	OrderID    string `json:"orderId"`
	OrderName  string `json:"orderName"`
	SuccessURL string `json:"successUrl"`
	FailURL    string `json:"failUrl"`
}

// IncomingTossPayResponse is the response expected back from TossPay after a
// checkout session has been created. On error only Code and Message are set.
type IncomingTossPayResponse struct {
	PaymentKey string       `json:"paymentKey"`
	OrderID    string       `json:"orderId"`
	OrderName  string       `json:"orderName"`
	Status     string       `json:"status"`
	Amount     int          `json:"totalAmount"`
	Checkout   TossCheckout `json:"checkout"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
}

// TossCheckout contains the hosted payment page to navigate the user to
type TossCheckout struct {
	URL string `json:"url"`
}
