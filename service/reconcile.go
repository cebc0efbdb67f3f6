package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// ReconcileService turns payment return callbacks into final outcomes. The
// order of operations matters: the charge is confirmed before the reservation
// is created, and the pending payment is only removed once there is nothing
// left to reconcile against it.
type ReconcileService struct {
	BookingService BookingService
	Reservations   *ReservationsClient
	Payments       *PaymentsClient
}

// ReconcileSuccess handles the provider's success return. The callback params
// alone prove nothing; they must match a pending payment this service wrote
// before the redirect.
func (service *ReconcileService) ReconcileSuccess(req *http.Request, params models.SuccessCallbackParams) *Outcome {
	pendingPayment, err := service.BookingService.DAO.GetPendingPayment(params.OrderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting pending payment from db: [%v]", err))
		return &Outcome{
			Kind:    OutcomeFailed,
			Code:    "STORAGE_ERROR",
			Message: UserMessage("", ""),
			OrderID: params.OrderID,
		}
	}
	if pendingPayment == nil {
		return InvalidOutcome(params.OrderID, "No payment in progress matches this order.")
	}

	if params.Amount != pendingPayment.Amount {
		log.InfoR(req, "Callback amount does not match pending payment", log.Data{
			"order_id":        params.OrderID,
			"callback_amount": params.Amount,
			"pending_amount":  pendingPayment.Amount,
		})
		return InvalidOutcome(params.OrderID, "The payment amount does not match the order.")
	}

	expired, err := IsExpired(pendingPayment, &service.BookingService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error checking pending payment expiry: [%v]", err))
		expired = true
	}
	if expired {
		if deleteErr := service.BookingService.DAO.DeletePendingPayment(pendingPayment.ID); deleteErr != nil {
			log.ErrorR(req, fmt.Errorf("error removing expired pending payment: [%v]", deleteErr))
		}
		return InvalidOutcome(params.OrderID, "The payment took too long to complete. Please start again.")
	}

	// A repeat callback for an order that already produced a reservation is
	// finalised without confirming the charge again
	existing, responseType, err := service.Reservations.GetReservationByOrderID(req, params.OrderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error checking for existing reservation: [%v]", err))
	}
	if responseType == Success && existing != nil {
		service.finalise(req, pendingPayment)
		return &Outcome{
			Kind:        OutcomeSuccess,
			Reservation: existing,
			OrderID:     params.OrderID,
		}
	}

	if err := service.BookingService.DAO.UpdatePendingPaymentStatus(pendingPayment.ID, Reconciling.String()); err != nil {
		log.ErrorR(req, fmt.Errorf("error updating pending payment status: [%v]", err))
	}

	_, _, err = service.Payments.ConfirmPayment(req, models.PaymentConfirmRequest{
		PaymentKey: params.PaymentKey,
		OrderID:    params.OrderID,
		Amount:     params.Amount,
	})
	if err != nil {
		// The pending payment is kept so the user can retry the charge
		var rejected *PaymentRejectedError
		if errors.As(err, &rejected) {
			return &Outcome{
				Kind:    OutcomeFailed,
				Code:    rejected.Code,
				Message: UserMessage(rejected.Code, rejected.Message),
				OrderID: params.OrderID,
			}
		}
		log.ErrorR(req, fmt.Errorf("error confirming payment: [%v]", err))
		return &Outcome{
			Kind:    OutcomeFailed,
			Code:    "NETWORK_ERROR",
			Message: UserMessage("NETWORK_ERROR", ""),
			OrderID: params.OrderID,
		}
	}

	reservation, _, err := service.Reservations.CreateReservation(req, models.CreateReservationRequest{
		RouteID:         pendingPayment.Draft.RouteID,
		ReservationDate: pendingPayment.Draft.ReservationDate,
		PaymentKey:      params.PaymentKey,
		OrderID:         params.OrderID,
		Amount:          params.Amount,
	})
	if err != nil {
		// The charge went through but the reservation did not. Retrying could
		// charge the user twice, so this ends in support hands.
		log.ErrorR(req, fmt.Errorf("payment confirmed but reservation creation failed: [%v]", err), log.Data{
			"order_id": params.OrderID,
		})
		if deleteErr := service.BookingService.DAO.DeletePendingPayment(pendingPayment.ID); deleteErr != nil {
			log.ErrorR(req, fmt.Errorf("error removing pending payment: [%v]", deleteErr))
		}
		return &Outcome{
			Kind:    OutcomeChargedNotReserved,
			Message: "The payment was taken but the reservation could not be created. Please contact support.",
			OrderID: params.OrderID,
		}
	}

	service.finalise(req, pendingPayment)

	log.InfoR(req, "Payment reconciled and reservation created", log.Data{
		"order_id":           params.OrderID,
		"reservation_number": reservation.ReservationNumber,
	})

	return &Outcome{
		Kind:        OutcomeSuccess,
		Reservation: reservation,
		OrderID:     params.OrderID,
	}
}

// ReconcileFail handles the provider's fail return. No money has moved, so
// the selection and pending payment are kept for a retry unless the callback
// is unrecognisable.
func (service *ReconcileService) ReconcileFail(req *http.Request, params models.FailCallbackParams) *Outcome {
	if params.Code == "" && params.OrderID == "" {
		return InvalidOutcome("", "The payment result could not be understood.")
	}

	if params.OrderID != "" {
		pendingPayment, err := service.BookingService.DAO.GetPendingPayment(params.OrderID)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error getting pending payment from db: [%v]", err))
		} else if pendingPayment == nil {
			return InvalidOutcome(params.OrderID, "No payment in progress matches this order.")
		}
	}

	if params.Code == "USER_CANCEL" {
		return &Outcome{
			Kind:    OutcomeCancelled,
			Code:    params.Code,
			Message: UserMessage(params.Code, params.Message),
			OrderID: params.OrderID,
		}
	}

	return &Outcome{
		Kind:    OutcomeFailed,
		Code:    params.Code,
		Message: UserMessage(params.Code, params.Message),
		OrderID: params.OrderID,
	}
}

// finalise removes the reconciled pending payment and the selection it came
// from. Failures here are logged only, the reservation already exists.
func (service *ReconcileService) finalise(req *http.Request, pendingPayment *models.PendingPaymentDB) {
	if err := service.BookingService.DAO.DeletePendingPayment(pendingPayment.ID); err != nil {
		log.ErrorR(req, fmt.Errorf("error removing reconciled pending payment: [%v]", err))
	}
	if err := service.BookingService.DAO.ClearSelection(pendingPayment.SessionID); err != nil {
		log.ErrorR(req, fmt.Errorf("error clearing selection after reservation: [%v]", err))
	}
}
