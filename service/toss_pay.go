package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// TossPayService handles the specific functionality of creating TossPay
// hosted checkout sessions
type TossPayService struct {
	BookingService BookingService
}

// CreatePaymentAndGenerateNextURL creates a TossPay checkout session for the
// pending payment and returns the hosted payment page URL. TossPay appends
// paymentKey, orderId and amount to the success URL, and code, message and
// orderId to the fail URL.
func (t *TossPayService) CreatePaymentAndGenerateNextURL(req *http.Request, pendingPayment *models.PendingPaymentDB) (string, ResponseType, error) {
	cfg := &t.BookingService.Config

	tossRequest := models.OutgoingTossPayRequest{
		Method:     "CARD",
		Amount:     pendingPayment.Amount,
		OrderID:    pendingPayment.ID,
		OrderName:  fmt.Sprintf("Hospital shuttle %s", pendingPayment.Draft.ReservationDate),
		SuccessURL: cfg.BookingsAPIURL + "/callback/payments/success",
		FailURL:    cfg.BookingsAPIURL + "/callback/payments/fail",
	}

	requestBody, err := json.Marshal(tossRequest)
	if err != nil {
		return "", Error, fmt.Errorf("error reading TossPayRequest: [%s]", err)
	}

	request, err := http.NewRequest("POST", cfg.TossPaymentsURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", Error, fmt.Errorf("error generating request for TossPay: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(cfg.TossSecretKey+":")))
	request.Header.Add("content-type", "application/json")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return "", Error, fmt.Errorf("error sending request to TossPay to start checkout session: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", Error, fmt.Errorf("error reading response from TossPay: [%s]", err)
	}

	tossResponse := &models.IncomingTossPayResponse{}
	err = json.Unmarshal(body, tossResponse)
	if err != nil {
		return "", Error, fmt.Errorf("error reading response from TossPay: [%s]", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", Error, fmt.Errorf("error status [%v] back from TossPay: [%s]", resp.StatusCode, tossResponse.Message)
	}

	if tossResponse.Checkout.URL == "" {
		return "", Error, fmt.Errorf("no checkout URL returned from TossPay")
	}

	return tossResponse.Checkout.URL, Success, nil
}
