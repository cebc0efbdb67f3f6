package service

import (
	"net/http"

	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// PaymentProviderService is an interface for all the requests to external
// payment providers. The returned URL is where the browser must navigate to
// reach the provider's hosted checkout; control only returns via the success
// or fail return URLs.
type PaymentProviderService interface {
	CreatePaymentAndGenerateNextURL(req *http.Request, pendingPayment *models.PendingPaymentDB) (string, ResponseType, error)
}
