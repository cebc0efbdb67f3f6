package models

// CreateReservationRequest is the request sent to the reservation API. The
// payment fields are empty on the zero-amount pass path; on the paid path the
// order id is the idempotency key linking the charge to the reservation.
type CreateReservationRequest struct {
	RouteID         int64  `json:"routeId"`
	ReservationDate string `json:"reservationDate"`
	PaymentKey      string `json:"paymentKey,omitempty"`
	OrderID         string `json:"orderId,omitempty"`
	Amount          int    `json:"amount,omitempty"`
}

// ReservationRest is a confirmed reservation returned by the reservation API
type ReservationRest struct {
	ID                int64  `json:"id"`
	ReservationNumber string `json:"reservationNumber"`
	ReservationDate   string `json:"reservationDate"`
	HospitalName      string `json:"hospitalName"`
	StartTime         string `json:"startTime"`
	PickupLocation    string `json:"pickupLocation"`
	Status            string `json:"status"`
	Boarded           bool   `json:"boarded"`
	QRCode            string `json:"qrCode"`
}

// ReservationAPIResponse is the wrapper structure the reservation API returns
type ReservationAPIResponse struct {
	Success   bool             `json:"success"`
	Data      *ReservationRest `json:"data"`
	Message   string           `json:"message"`
	ErrorCode string           `json:"errorCode,omitempty"`
}
