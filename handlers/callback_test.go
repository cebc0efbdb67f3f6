package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/companieshouse/chs.go/avro"
	"github.com/golang/mock/gomock"
	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/dao"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
	"github.com/medishuttle/bookings.api.medishuttle.kr/service"
)

type CustomError struct {
	message string
}

func (e CustomError) Error() string {
	return e.message
}

// Mock function for erroring when preparing and sending kafka message
func mockProduceReservationMessageError(orderID string) error {
	return CustomError{"kafka unavailable"}
}

// Mock function for successful preparing and sending of kafka message
func mockProduceReservationMessage(orderID string) error {
	return nil
}

func createMockReconcileService(mockDAO *dao.MockDAO, cfg *config.Config) *service.ReconcileService {
	bookingService := createMockBookingService(mockDAO, cfg)
	return &service.ReconcileService{
		BookingService: *bookingService,
		Reservations:   &service.ReservationsClient{Config: *cfg},
		Payments:       &service.PaymentsClient{Config: *cfg},
	}
}

func callbackPendingPayment() *models.PendingPaymentDB {
	return &models.PendingPaymentDB{
		ID:        "ORDER_1756350000000_abc1234",
		SessionID: "session123",
		Draft:     models.ReservationDraftDB{RouteID: 17, ReservationDate: "2026-09-02"},
		Amount:    5000,
		Provider:  "toss",
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}
}

func TestUnitHandlePaymentSuccessCallback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.ShuttleAPIURL = "https://shuttle-api.medishuttle.kr"
	cfg.BookingsWebURL = "https://bookings.medishuttle.kr"

	Convey("Missing parameters redirect to an invalid result without any network call", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)

		req := httptest.NewRequest("GET", "/callback/payments/success?orderId=ORDER_1", nil)
		w := httptest.NewRecorder()
		HandlePaymentSuccessCallback(w, req)

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "https://bookings.medishuttle.kr/payment-result")
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=invalid")
		So(httpmock.GetTotalCallCount(), ShouldEqual, 0)
	})

	Convey("Malformed amount redirects to an invalid result without any network call", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)

		req := httptest.NewRequest("GET", "/callback/payments/success?paymentKey=key1&orderId=ORDER_1&amount=fivethousand", nil)
		w := httptest.NewRecorder()
		HandlePaymentSuccessCallback(w, req)

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=invalid")
		So(httpmock.GetTotalCallCount(), ShouldEqual, 0)
	})

	Convey("Successful reconciliation redirects with the reservation number and produces a kafka message", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/reservations/order/ORDER_1756350000000_abc1234",
			httpmock.NewStringResponder(http.StatusNotFound, ""))
		httpmock.RegisterResponder("POST", "https://shuttle-api.medishuttle.kr/api/payments/confirm",
			httpmock.NewStringResponder(http.StatusOK, `{"paymentKey":"key1","orderId":"ORDER_1756350000000_abc1234","amount":5000,"status":"DONE"}`))
		httpmock.RegisterResponder("POST", "https://shuttle-api.medishuttle.kr/api/reservations",
			httpmock.NewStringResponder(http.StatusCreated, `{"success":true,"data":{"id":901,"reservationNumber":"R-2026-0001"}}`))

		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)
		mock.EXPECT().GetPendingPayment("ORDER_1756350000000_abc1234").Return(callbackPendingPayment(), nil)
		mock.EXPECT().UpdatePendingPaymentStatus("ORDER_1756350000000_abc1234", service.Reconciling.String()).Return(nil)
		mock.EXPECT().DeletePendingPayment("ORDER_1756350000000_abc1234").Return(nil)
		mock.EXPECT().ClearSelection("session123").Return(nil)

		handleReservationMessage = mockProduceReservationMessage
		defer func() { handleReservationMessage = produceReservationMessage }()

		req := httptest.NewRequest("GET", "/callback/payments/success?paymentKey=key1&orderId=ORDER_1756350000000_abc1234&amount=5000", nil)
		w := httptest.NewRecorder()
		HandlePaymentSuccessCallback(w, req)

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=success")
		So(w.Header().Get("Location"), ShouldContainSubstring, "reservation_number=R-2026-0001")
	})

	Convey("Kafka failure does not hide a successful reservation", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://shuttle-api.medishuttle.kr/api/reservations/order/ORDER_1756350000000_abc1234",
			httpmock.NewStringResponder(http.StatusOK, `{"success":true,"data":{"id":901,"reservationNumber":"R-2026-0001"}}`))

		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)
		mock.EXPECT().GetPendingPayment("ORDER_1756350000000_abc1234").Return(callbackPendingPayment(), nil)
		mock.EXPECT().DeletePendingPayment("ORDER_1756350000000_abc1234").Return(nil)
		mock.EXPECT().ClearSelection("session123").Return(nil)

		handleReservationMessage = mockProduceReservationMessageError
		defer func() { handleReservationMessage = produceReservationMessage }()

		req := httptest.NewRequest("GET", "/callback/payments/success?paymentKey=key1&orderId=ORDER_1756350000000_abc1234&amount=5000", nil)
		w := httptest.NewRecorder()
		HandlePaymentSuccessCallback(w, req)

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=success")
	})

	Convey("PayPal token is accepted in place of a payment key", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)
		mock.EXPECT().GetPendingPayment("ORDER_1756350000000_abc1234").Return(nil, nil)

		req := httptest.NewRequest("GET", "/callback/payments/success?token=EC-123&orderId=ORDER_1756350000000_abc1234&amount=5000", nil)
		w := httptest.NewRecorder()
		HandlePaymentSuccessCallback(w, req)

		// Unknown order, but the params were understood and reconciliation ran
		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=invalid")
	})
}

func TestUnitHandlePaymentFailCallback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.BookingsWebURL = "https://bookings.medishuttle.kr"

	Convey("User cancellation redirects with cancelled status and resume actions", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)
		mock.EXPECT().GetPendingPayment("ORDER_1756350000000_abc1234").Return(callbackPendingPayment(), nil)

		req := httptest.NewRequest("GET", "/callback/payments/fail?code=USER_CANCEL&orderId=ORDER_1756350000000_abc1234", nil)
		w := httptest.NewRecorder()
		HandlePaymentFailCallback(w, req)

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=cancelled")
		So(w.Header().Get("Location"), ShouldContainSubstring, "checkout")
	})

	Convey("Retryable failure redirects with failed status", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)
		mock.EXPECT().GetPendingPayment("ORDER_1756350000000_abc1234").Return(callbackPendingPayment(), nil)

		req := httptest.NewRequest("GET", "/callback/payments/fail?code=TIMEOUT&orderId=ORDER_1756350000000_abc1234", nil)
		w := httptest.NewRecorder()
		HandlePaymentFailCallback(w, req)

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=failed")
		So(w.Header().Get("Location"), ShouldContainSubstring, "retry-payment")
	})

	Convey("Unrecognisable callback redirects with invalid status", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		reconcileService = createMockReconcileService(mock, cfg)

		req := httptest.NewRequest("GET", "/callback/payments/fail", nil)
		w := httptest.NewRecorder()
		HandlePaymentFailCallback(w, req)

		So(w.Code, ShouldEqual, http.StatusSeeOther)
		So(w.Header().Get("Location"), ShouldContainSubstring, "status=invalid")
	})
}

func TestUnitPrepareKafkaMessage(t *testing.T) {
	Convey("Prepare kafka message with the reservation confirmed schema", t, func() {
		reservationConfirmedSchema := `{"type":"record","name":"reservation_confirmed","namespace":"bookings","fields":[{"name":"order_id","type":"string"}]}`
		producerSchema := avro.Schema{Definition: reservationConfirmedSchema}

		message, err := prepareKafkaMessage("ORDER_1756350000000_abc1234", producerSchema)

		So(err, ShouldBeNil)
		So(message.Topic, ShouldEqual, ProducerTopic)
		So(message.Value, ShouldNotBeEmpty)
	})
}
