package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// PaymentRejectedError is returned when the payment API rejects a
// confirmation. The code drives the user-facing message and retryability.
type PaymentRejectedError struct {
	Code    string
	Message string
}

func (e *PaymentRejectedError) Error() string {
	return fmt.Sprintf("payment confirmation rejected with code [%s]: %s", e.Code, e.Message)
}

// PaymentsClient calls the external payment API to confirm charges after the
// user returns from the provider's hosted checkout.
type PaymentsClient struct {
	Config config.Config
}

// ConfirmPayment confirms a charge with the payment API
func (c *PaymentsClient) ConfirmPayment(req *http.Request, confirmRequest models.PaymentConfirmRequest) (*models.PaymentConfirmResponse, ResponseType, error) {
	requestBody, err := json.Marshal(confirmRequest)
	if err != nil {
		return nil, Error, fmt.Errorf("error marshalling payment confirm request: [%v]", err)
	}

	confirmReq, err := http.NewRequest("POST", c.Config.ShuttleAPIURL+"/api/payments/confirm", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, Error, fmt.Errorf("failed to create payment confirm request: [%v]", err)
	}
	confirmReq.Header.Set("Authorization", req.Header.Get("Authorization"))
	confirmReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(confirmReq)
	if err != nil {
		return nil, Error, fmt.Errorf("error sending payment confirm request: [%v]", err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading payment confirm response: [%v]", err)
	}

	if resp.StatusCode != http.StatusOK {
		errorResponse := &models.PaymentErrorResponse{}
		err = json.Unmarshal(body, errorResponse)
		if err != nil || errorResponse.ErrorCode == "" {
			return nil, Error, &PaymentRejectedError{
				Code:    "PAYMENT_CONFIRM_FAILED",
				Message: fmt.Sprintf("error status [%v] back from payment API", resp.StatusCode),
			}
		}
		return nil, InvalidData, &PaymentRejectedError{
			Code:    errorResponse.ErrorCode,
			Message: errorResponse.Message,
		}
	}

	confirmResponse := &models.PaymentConfirmResponse{}
	err = json.Unmarshal(body, confirmResponse)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading payment confirm response: [%v]", err)
	}

	return confirmResponse, Success, nil
}
