package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/medishuttle/bookings.api.medishuttle.kr/service"
	"github.com/medishuttle/bookings.api.medishuttle.kr/utils"
)

// HandleCheckout runs the checkout for the session. On the zero-amount path
// the response carries the reservation; on the paid path it carries the
// provider's hosted checkout URL for the client to navigate to.
func HandleCheckout(w http.ResponseWriter, req *http.Request) {
	sessionID, ok := sessionIDFromContext(w, req)
	if !ok {
		return
	}

	checkoutResponse, responseType, err := checkoutService.Dispatch(req, sessionID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error dispatching checkout: [%v]", err))
		if responseType == service.IncompleteSelection {
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("selection is incomplete"), http.StatusConflict)
			return
		}
		writeErrorStatus(w, responseType)
		return
	}

	status := http.StatusCreated
	if checkoutResponse.NextURL != "" {
		w.Header().Set("Location", checkoutResponse.NextURL)
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err = json.NewEncoder(w).Encode(checkoutResponse)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request for checkout", log.Data{
		"order_id": checkoutResponse.OrderID,
		"amount":   checkoutResponse.Amount,
		"status":   status,
	})
}
