package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
	"github.com/medishuttle/bookings.api.medishuttle.kr/service"
)

// handleReservationMessage allows us to mock the call to produceReservationMessage for unit tests
var handleReservationMessage = produceReservationMessage

// HandlePaymentSuccessCallback handles the provider's success return and
// redirects the user to the web result page. The query params are provider
// supplied and untrusted; anything malformed produces an invalid outcome
// without contacting the payment or reservation APIs.
func HandlePaymentSuccessCallback(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	paymentKey := query.Get("paymentKey")
	if paymentKey == "" {
		// PayPal returns its order token instead of a payment key
		paymentKey = query.Get("token")
	}
	orderID := query.Get("orderId")
	amountParam := query.Get("amount")

	if paymentKey == "" || orderID == "" || amountParam == "" {
		log.ErrorR(req, fmt.Errorf("success callback missing required parameters"))
		redirectToResult(w, req, service.InvalidOutcome(orderID, "The payment result could not be understood."))
		return
	}

	amount, err := service.ParseAmountParam(amountParam)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("success callback amount invalid: [%v]", err))
		redirectToResult(w, req, service.InvalidOutcome(orderID, "The payment result could not be understood."))
		return
	}

	outcome := reconcileService.ReconcileSuccess(req, models.SuccessCallbackParams{
		PaymentKey: paymentKey,
		OrderID:    orderID,
		Amount:     amount,
	})

	if outcome.Kind == service.OutcomeSuccess {
		err = handleReservationMessage(orderID)
		if err != nil {
			// The reservation exists regardless, so the user still sees success
			log.ErrorR(req, fmt.Errorf("error producing reservation kafka message: [%v]", err))
		}
	}

	log.InfoR(req, "Reconciled success callback", log.Data{
		"order_id": orderID,
		"outcome":  outcome.Kind.String(),
	})

	redirectToResult(w, req, outcome)
}

// HandlePaymentFailCallback handles the provider's fail return and redirects
// the user to the web result page with the categorised failure
func HandlePaymentFailCallback(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	outcome := reconcileService.ReconcileFail(req, models.FailCallbackParams{
		Code:    query.Get("code"),
		Message: query.Get("message"),
		OrderID: query.Get("orderId"),
	})

	log.InfoR(req, "Reconciled fail callback", log.Data{
		"order_id": outcome.OrderID,
		"outcome":  outcome.Kind.String(),
		"code":     outcome.Code,
	})

	redirectToResult(w, req, outcome)
}

func redirectToResult(w http.ResponseWriter, req *http.Request, outcome *service.Outcome) {
	resultURL := reconcileService.BookingService.Config.BookingsWebURL + "/payment-result"
	redirectUser(w, req, resultURL, outcome.RedirectParams())
}
