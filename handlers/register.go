package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/dao"
	"github.com/medishuttle/bookings.api.medishuttle.kr/interceptors"
	"github.com/medishuttle/bookings.api.medishuttle.kr/service"
)

var bookingService *service.BookingService
var checkoutService *service.CheckoutService
var reconcileService *service.ReconcileService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewDAOService(&cfg)

	bookingService = &service.BookingService{
		DAO:    m,
		Config: cfg,
	}

	reservationsClient := &service.ReservationsClient{Config: cfg}
	paymentsClient := &service.PaymentsClient{Config: cfg}
	passService := &service.PassService{Config: cfg}

	checkoutService = &service.CheckoutService{
		BookingService: *bookingService,
		Reservations:   reservationsClient,
		Passes:         passService,
		TossPay:        &service.TossPayService{BookingService: *bookingService},
		PayPal:         &service.PayPalService{BookingService: *bookingService},
	}

	reconcileService = &service.ReconcileService{
		BookingService: *bookingService,
		Reservations:   reservationsClient,
		Payments:       paymentsClient,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. The booking endpoints need the session interceptor,
	// the provider callbacks arrive with no session header at all, so the
	// router is split to allow per-subrouter middleware.

	bookingsRouter := mainRouter.PathPrefix("/bookings").Subrouter()
	bookingsRouter.HandleFunc("/selection", HandlePutSelection).Methods("PUT").Name("put-selection")
	bookingsRouter.HandleFunc("/selection", HandlePatchSelection).Methods("PATCH").Name("patch-selection")
	bookingsRouter.HandleFunc("/selection", HandleGetSelection).Methods("GET").Name("get-selection")
	bookingsRouter.HandleFunc("/selection", HandleDeleteSelection).Methods("DELETE").Name("delete-selection")
	bookingsRouter.HandleFunc("/checkout", HandleCheckout).Methods("POST").Name("create-checkout")

	// callback endpoints are hit by a browser returning from the provider, so
	// must not be intercepted by the session interceptor
	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/payments/success", HandlePaymentSuccessCallback).Methods("GET").Name("handle-success-callback")
	callbackRouter.HandleFunc("/payments/fail", HandlePaymentFailCallback).Methods("GET").Name("handle-fail-callback")

	// Set middleware for subrouters
	bookingsRouter.Use(log.Handler, interceptors.SessionIntercept)
	callbackRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
