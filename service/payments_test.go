package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

func TestUnitConfirmPayment(t *testing.T) {
	cfg := checkoutTestConfig()
	req, _ := http.NewRequest("GET", "/callback/payments/success", nil)

	confirmRequest := models.PaymentConfirmRequest{
		PaymentKey: "payment-key-1",
		OrderID:    "ORDER_1756350000000_abc1234",
		Amount:     5000,
	}

	Convey("Rejected confirmation carries the error code", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://shuttle-api.medishuttle.kr/api/payments/confirm",
			httpmock.NewStringResponder(http.StatusBadRequest, `{"success":false,"message":"card declined","errorCode":"INVALID_CARD"}`))

		paymentsClient := &PaymentsClient{Config: *cfg}

		confirmResponse, responseType, err := paymentsClient.ConfirmPayment(req, confirmRequest)

		So(confirmResponse, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)

		var rejected *PaymentRejectedError
		So(errors.As(err, &rejected), ShouldBeTrue)
		So(rejected.Code, ShouldEqual, "INVALID_CARD")
		So(rejected.Message, ShouldEqual, "card declined")
	})

	Convey("Rejection with an unreadable body gets a fallback code", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://shuttle-api.medishuttle.kr/api/payments/confirm",
			httpmock.NewStringResponder(http.StatusBadGateway, "upstream error"))

		paymentsClient := &PaymentsClient{Config: *cfg}

		confirmResponse, responseType, err := paymentsClient.ConfirmPayment(req, confirmRequest)

		So(confirmResponse, ShouldBeNil)
		So(responseType, ShouldEqual, Error)

		var rejected *PaymentRejectedError
		So(errors.As(err, &rejected), ShouldBeTrue)
		So(rejected.Code, ShouldEqual, "PAYMENT_CONFIRM_FAILED")
	})

	Convey("Successful confirmation returns the payment details", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://shuttle-api.medishuttle.kr/api/payments/confirm",
			httpmock.NewStringResponder(http.StatusOK, `{"paymentKey":"payment-key-1","orderId":"ORDER_1756350000000_abc1234","amount":5000,"status":"DONE"}`))

		paymentsClient := &PaymentsClient{Config: *cfg}

		confirmResponse, responseType, err := paymentsClient.ConfirmPayment(req, confirmRequest)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(confirmResponse.Status, ShouldEqual, "DONE")
		So(confirmResponse.Amount, ShouldEqual, 5000)
	})
}
