package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"

	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// CheckoutService branches a completed selection into either a direct
// zero-amount reservation or a provider-hosted checkout hand-off
type CheckoutService struct {
	BookingService BookingService
	Reservations   *ReservationsClient
	Passes         *PassService
	TossPay        PaymentProviderService
	PayPal         PaymentProviderService
}

// Dispatch runs the checkout for a session. The zero-amount path never
// contacts a provider; the paid path persists the hand-off record before the
// browser leaves, because nothing in memory survives the redirect.
func (service *CheckoutService) Dispatch(req *http.Request, sessionID string) (*models.CheckoutResponseRest, ResponseType, error) {
	selection, err := service.BookingService.DAO.GetSelection(sessionID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting selection from db: [%v]", err)
	}
	if selection == nil || selection.RouteID == 0 || selection.TravelDate == "" {
		return nil, IncompleteSelection, fmt.Errorf("route and travel date must be selected before checkout")
	}

	method := models.PaymentMethod(selection.PaymentMethod)
	if method == "" {
		method = models.PaymentMethodGeneral
	}

	activePass, hasPass := service.Passes.ActivePass(req)

	fare, err := FareAmount(&service.BookingService.Config)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading configured fare: [%v]", err)
	}
	amount := AmountFor(method, hasPass, fare)

	if amount == 0 {
		return service.dispatchPassReservation(req, sessionID, selection, activePass)
	}
	return service.dispatchProviderCheckout(req, sessionID, selection, amount)
}

func (service *CheckoutService) dispatchPassReservation(req *http.Request, sessionID string, selection *models.SelectionDB, activePass *models.ActivePassRest) (*models.CheckoutResponseRest, ResponseType, error) {
	createRequest := models.CreateReservationRequest{
		RouteID:         selection.RouteID,
		ReservationDate: selection.TravelDate,
	}

	reservation, responseType, err := service.Reservations.CreateReservation(req, createRequest)
	if err != nil {
		// Selection is kept so the user can retry
		return nil, responseType, fmt.Errorf("error creating pass reservation: [%v]", err)
	}

	service.cleanUpSession(req, sessionID)

	logData := log.Data{"reservation_number": reservation.ReservationNumber}
	if activePass != nil {
		logData["pass_type"] = activePass.PassType
	}
	log.InfoR(req, "Created reservation without charge", logData)

	return &models.CheckoutResponseRest{Reservation: reservation, Amount: 0}, Success, nil
}

func (service *CheckoutService) dispatchProviderCheckout(req *http.Request, sessionID string, selection *models.SelectionDB, amount int) (*models.CheckoutResponseRest, ResponseType, error) {
	provider := models.PaymentProvider(selection.Provider)
	if !provider.Valid() {
		return nil, IncompleteSelection, fmt.Errorf("payment provider must be chosen before checkout")
	}

	providerService, err := service.providerFor(provider)
	if err != nil {
		return nil, Error, err
	}

	pendingPayment := &models.PendingPaymentDB{
		ID:        generateOrderID(),
		SessionID: sessionID,
		Draft: models.ReservationDraftDB{
			RouteID:         selection.RouteID,
			ReservationDate: selection.TravelDate,
		},
		Amount:    amount,
		Provider:  string(provider),
		Status:    AwaitingRedirect.String(),
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	err = service.BookingService.DAO.CreatePendingPayment(pendingPayment)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing pending payment to db: [%v]", err)
	}

	nextURL, responseType, err := providerService.CreatePaymentAndGenerateNextURL(req, pendingPayment)
	if err != nil || nextURL == "" {
		// The hand-off never happened, so there is nothing to reconcile later
		if deleteErr := service.BookingService.DAO.DeletePendingPayment(pendingPayment.ID); deleteErr != nil {
			log.ErrorR(req, fmt.Errorf("error removing pending payment after failed hand-off: [%v]", deleteErr))
		}
		if err == nil {
			return nil, Error, fmt.Errorf("no next URL returned from payment provider")
		}
		return nil, responseType, fmt.Errorf("error communicating with payment provider: [%v]", err)
	}

	log.InfoR(req, "Dispatching to external payment page", log.Data{
		"order_id": pendingPayment.ID,
		"amount":   amount,
		"provider": string(provider),
	})

	return &models.CheckoutResponseRest{
		NextURL: nextURL,
		OrderID: pendingPayment.ID,
		Amount:  amount,
	}, Success, nil
}

func (service *CheckoutService) providerFor(provider models.PaymentProvider) (PaymentProviderService, error) {
	switch provider {
	case models.ProviderTossPay:
		return service.TossPay, nil
	case models.ProviderPayPal:
		return service.PayPal, nil
	}
	return nil, fmt.Errorf("payment provider [%s] not recognised", provider)
}

func (service *CheckoutService) cleanUpSession(req *http.Request, sessionID string) {
	if err := service.BookingService.DAO.ClearSelection(sessionID); err != nil {
		log.ErrorR(req, fmt.Errorf("error clearing selection after reservation: [%v]", err))
	}
	if err := service.BookingService.DAO.DeletePendingPaymentsForSession(sessionID); err != nil {
		log.ErrorR(req, fmt.Errorf("error clearing pending payments after reservation: [%v]", err))
	}
}

// generateOrderID generates an order id unique for the session without a
// server round trip, of the form ORDER_<unix millis>_<7 char suffix>
func generateOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("ORDER_%d_%s", time.Now().UnixMilli(), suffix)
}
