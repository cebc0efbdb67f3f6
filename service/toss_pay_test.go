package service

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/dao"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

func createMockTossPayService(mockDAO *dao.MockDAO, cfg *config.Config) TossPayService {
	return TossPayService{
		BookingService: createMockBookingService(mockDAO, cfg),
	}
}

func tossTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.TossPaymentsURL = "https://api.tosspayments.com/v1/payments"
	cfg.TossSecretKey = "test_sk_secret"
	cfg.BookingsAPIURL = "https://bookings-api.medishuttle.kr"
	return cfg
}

func TestUnitTossPayCreatePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg := tossTestConfig()

	req, _ := http.NewRequest("POST", "/bookings/checkout", nil)
	pendingPayment := &models.PendingPaymentDB{
		ID:     "ORDER_1756350000000_abc1234",
		Amount: 5000,
		Draft:  models.ReservationDraftDB{RouteID: 17, ReservationDate: "2026-09-02"},
	}

	Convey("Error response back from TossPay", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://api.tosspayments.com/v1/payments",
			httpmock.NewStringResponder(http.StatusUnauthorized, `{"code":"UNAUTHORIZED_KEY","message":"Invalid secret key"}`))

		mockTossPayService := createMockTossPayService(dao.NewMockDAO(mockCtrl), cfg)

		nextURL, responseType, err := mockTossPayService.CreatePaymentAndGenerateNextURL(req, pendingPayment)

		So(nextURL, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "Invalid secret key")
	})

	Convey("No checkout URL returned from TossPay", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://api.tosspayments.com/v1/payments",
			httpmock.NewStringResponder(http.StatusOK, `{"paymentKey":"key1","orderId":"ORDER_1756350000000_abc1234","status":"READY"}`))

		mockTossPayService := createMockTossPayService(dao.NewMockDAO(mockCtrl), cfg)

		nextURL, responseType, err := mockTossPayService.CreatePaymentAndGenerateNextURL(req, pendingPayment)

		So(nextURL, ShouldBeEmpty)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "no checkout URL returned from TossPay")
	})

	Convey("Successfully create a TossPay checkout session", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST", "https://api.tosspayments.com/v1/payments",
			httpmock.NewStringResponder(http.StatusOK, `{"paymentKey":"key1","orderId":"ORDER_1756350000000_abc1234","status":"READY","checkout":{"url":"https://pay.toss.im/checkout/abc"}}`))

		mockTossPayService := createMockTossPayService(dao.NewMockDAO(mockCtrl), cfg)

		nextURL, responseType, err := mockTossPayService.CreatePaymentAndGenerateNextURL(req, pendingPayment)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(nextURL, ShouldEqual, "https://pay.toss.im/checkout/abc")
	})
}
