package service

import (
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// OutcomeKind categorises the result presented to the user after the payment
// return callback has been reconciled
type OutcomeKind int

// Enumerate the kinds of reconciliation outcome
const (
	OutcomeSuccess OutcomeKind = 1 + iota
	OutcomeCancelled
	OutcomeFailed
	OutcomeInvalid
	OutcomeChargedNotReserved
)

var outcomeKinds = [...]string{
	"success",
	"cancelled",
	"failed",
	"invalid",
	"charged-not-reserved",
}

// String returns the string representation of the outcome kind
func (o OutcomeKind) String() string {
	return outcomeKinds[o-1]
}

// Outcome is the result of reconciling a payment return callback, carrying
// everything the result page needs to render
type Outcome struct {
	Kind        OutcomeKind
	Reservation *models.ReservationRest
	Code        string
	Message     string
	OrderID     string
}

// InvalidOutcome returns an outcome for a callback that does not correspond
// to any payment this service dispatched
func InvalidOutcome(orderID string, message string) *Outcome {
	return &Outcome{
		Kind:    OutcomeInvalid,
		Message: message,
		OrderID: orderID,
	}
}

// failureMessages maps provider failure codes to messages fit for the result
// page. Codes outside the table fall back to the provider message.
var failureMessages = map[string]string{
	"USER_CANCEL":         "The payment was cancelled.",
	"INVALID_CARD":        "The card could not be used. Please try a different card.",
	"INSUFFICIENT_FUNDS":  "The card has insufficient funds.",
	"CARD_COMPANY_ERROR":  "The card company could not process the payment. Please try again later.",
	"INVALID_CARD_EXPIRY": "The card expiry date is not valid.",
	"INVALID_CARD_NUMBER": "The card number is not valid.",
	"NETWORK_ERROR":       "A network error interrupted the payment. Please try again.",
	"TIMEOUT":             "The payment timed out. Please try again.",
}

// UserMessage resolves a failure code to a user-facing message, falling back
// to the provider supplied message and then to a generic one
func UserMessage(code string, providerMessage string) string {
	if message, ok := failureMessages[code]; ok {
		return message
	}
	if providerMessage != "" {
		return providerMessage
	}
	return "The payment could not be completed."
}

// IsRetryable reports whether a failure with the given code should offer a
// retry action. A deliberate cancellation is not retried.
func IsRetryable(code string) bool {
	return code != "USER_CANCEL"
}

// Actions returns the follow-up actions offered to the user for this outcome,
// in the order they should be presented
func (outcome *Outcome) Actions() []string {
	switch outcome.Kind {
	case OutcomeSuccess:
		return []string{"view-reservation", "home"}
	case OutcomeCancelled:
		return []string{"checkout", "reselect-route", "home"}
	case OutcomeFailed:
		if IsRetryable(outcome.Code) {
			return []string{"retry-payment", "reselect-route", "home"}
		}
		return []string{"reselect-route", "home"}
	case OutcomeChargedNotReserved:
		// Never offer a retry when money has already been taken
		return []string{"contact-support", "home"}
	}
	return []string{"reselect-route", "home"}
}

// RedirectParams maps the outcome onto the query parameters of the web result
// page redirect
func (outcome *Outcome) RedirectParams() models.RedirectParams {
	params := models.RedirectParams{
		Status:  outcome.Kind.String(),
		Message: outcome.Message,
		OrderID: outcome.OrderID,
		Actions: outcome.Actions(),
	}
	if outcome.Reservation != nil {
		params.ReservationNumber = outcome.Reservation.ReservationNumber
	}
	return params
}
