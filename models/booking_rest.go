package models

import "time"

// PaymentMethod is how the user chooses to settle the fare.
type PaymentMethod string

// PaymentProvider is the external provider hosting the checkout page.
type PaymentProvider string

// Closed sets - anything outside these values is rejected at the boundary.
const (
	PaymentMethodPass    PaymentMethod = "pass"
	PaymentMethodGeneral PaymentMethod = "general"

	ProviderTossPay PaymentProvider = "toss"
	ProviderPayPal  PaymentProvider = "paypal"
)

// Valid reports whether the payment method is one of the closed set.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodPass || m == PaymentMethodGeneral
}

// Valid reports whether the provider is one of the closed set.
func (p PaymentProvider) Valid() bool {
	return p == ProviderTossPay || p == ProviderPayPal
}

// PutSelectionRequest is the data received in the body of the incoming
// request to set the route and travel date
type PutSelectionRequest struct {
	RouteID    int64  `json:"route_id"     validate:"required"`
	TravelDate string `json:"travel_date"  validate:"required,datetime=2006-01-02"`
}

// PatchSelectionRequest is the data received in the body of the incoming
// request to choose the payment method and provider
type PatchSelectionRequest struct {
	PaymentMethod string `json:"payment_method,omitempty" validate:"omitempty,oneof=pass general"`
	Provider      string `json:"provider,omitempty"       validate:"omitempty,oneof=toss paypal"`
}

// SelectionRest is the public facing selection returned in responses
type SelectionRest struct {
	RouteID       int64     `json:"route_id"`
	TravelDate    string    `json:"travel_date"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Provider      string    `json:"provider,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// CheckoutResponseRest is returned by the checkout dispatcher. Exactly one of
// Reservation (zero-amount path) or NextURL (hosted checkout path) is set.
type CheckoutResponseRest struct {
	Reservation *ReservationRest `json:"reservation,omitempty"`
	NextURL     string           `json:"next_url,omitempty"`
	OrderID     string           `json:"order_id,omitempty"`
	Amount      int              `json:"amount"`
}
