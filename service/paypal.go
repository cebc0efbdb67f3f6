package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/plutov/paypal/v4"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

var payPalClient *paypal.Client

// GetPayPalClient returns an authenticated PayPal client
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if payPalClient != nil {
		return payPalClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	payPalClient = c
	return c, nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}

// PayPalSDK is an interface for all the PayPal client methods that will be
// used in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

// PayPalService handles the specific functionality of integrating PayPal into
// the checkout hand-off
type PayPalService struct {
	Client         PayPalSDK
	BookingService BookingService
}

// CreatePaymentAndGenerateNextURL creates a PayPal order for the pending
// payment and returns the approve link as the next URL. The return URL
// carries the order id and amount; PayPal appends its own order token, which
// the success callback accepts in place of a payment key.
func (pp *PayPalService) CreatePaymentAndGenerateNextURL(req *http.Request, pendingPayment *models.PendingPaymentDB) (string, ResponseType, error) {
	sdk, err := pp.sdk()
	if err != nil {
		return "", Error, fmt.Errorf("error getting paypal client: [%v]", err)
	}

	cfg := &pp.BookingService.Config
	returnURL := fmt.Sprintf("%s/callback/payments/success?orderId=%s&amount=%d",
		cfg.BookingsAPIURL, pendingPayment.ID, pendingPayment.Amount)
	cancelURL := fmt.Sprintf("%s/callback/payments/fail?code=USER_CANCEL&orderId=%s",
		cfg.BookingsAPIURL, pendingPayment.ID)

	order, err := sdk.CreateOrder(
		req.Context(),
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: pendingPayment.ID,
				Amount: &paypal.PurchaseUnitAmount{
					Value:    strconv.Itoa(pendingPayment.Amount),
					Currency: "KRW",
				},
			},
		},
		nil,
		&paypal.ApplicationContext{
			ReturnURL: returnURL,
			CancelURL: cancelURL,
		},
	)
	if err != nil {
		return "", Error, fmt.Errorf("error creating order: [%v]", err)
	}

	if order.Status != paypal.OrderStatusCreated {
		return "", Error, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	var nextURL string
	for _, link := range order.Links {
		if link.Rel == "approve" {
			nextURL = link.Href
		}
	}
	if nextURL == "" {
		return "", Error, fmt.Errorf("no approve link returned from PayPal")
	}

	return nextURL, Success, nil
}

func (pp *PayPalService) sdk() (PayPalSDK, error) {
	if pp.Client != nil {
		return pp.Client, nil
	}

	c, err := GetPayPalClient(pp.BookingService.Config)
	if err != nil {
		return nil, err
	}
	pp.Client = c
	return c, nil
}
