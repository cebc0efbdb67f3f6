package models

import "time"

// SelectionDB is the in-progress booking selection stored in the DB, keyed by
// the caller's session so a full page reload can rehydrate it.
type SelectionDB struct {
	ID            string    `bson:"_id"`
	RouteID       int64     `bson:"route_id"`
	TravelDate    string    `bson:"travel_date"`
	PaymentMethod string    `bson:"payment_method,omitempty"`
	Provider      string    `bson:"provider,omitempty"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at,omitempty"`
}

// PendingPaymentDB is the durable hand-off record written immediately before
// redirecting to the external payment page. The order id doubles as the
// idempotency key for reconciliation, so it is the document id.
type PendingPaymentDB struct {
	ID        string             `bson:"_id"`
	SessionID string             `bson:"session_id"`
	Draft     ReservationDraftDB `bson:"draft"`
	Amount    int                `bson:"amount"`
	Provider  string             `bson:"provider"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

// ReservationDraftDB holds the reservation details needed to create the
// reservation once payment has been confirmed.
type ReservationDraftDB struct {
	RouteID         int64  `bson:"route_id"`
	ReservationDate string `bson:"reservation_date"`
}
