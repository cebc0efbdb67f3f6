// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                 string   `env:"BIND_ADDR"                  flag:"bind-addr"                  flagDesc:"Bind address"`
	MongoDBURL               string   `env:"MONGODB_URL"                flag:"mongodb-url"                flagDesc:"MongoDB server URL"`
	Database                 string   `env:"MONGODB_DATABASE"           flag:"mongodb-database"           flagDesc:"MongoDB database for booking data"`
	SelectionCollection      string   `env:"MONGODB_SELECTION_COLLECTION"       flag:"mongodb-selection-collection"       flagDesc:"MongoDB collection for booking selections"`
	PendingPaymentCollection string   `env:"MONGODB_PENDING_PAYMENT_COLLECTION" flag:"mongodb-pending-payment-collection" flagDesc:"MongoDB collection for pending payments"`
	ShuttleAPIURL            string   `env:"SHUTTLE_API_URL"            flag:"shuttle-api-url"            flagDesc:"Base URL for the shuttle reservation/pass/payment APIs"`
	BookingsAPIURL           string   `env:"BOOKINGS_API_URL"           flag:"bookings-api-url"           flagDesc:"Base URL of this service, used to build provider return URLs"`
	BookingsWebURL           string   `env:"BOOKINGS_WEB_URL"           flag:"bookings-web-url"           flagDesc:"Base URL for the booking web front end"`
	TossPaymentsURL          string   `env:"TOSS_PAYMENTS_URL"          flag:"toss-payments-url"          flagDesc:"URL used to create TossPay checkout sessions"`
	TossSecretKey            string   `env:"TOSS_SECRET_KEY"            flag:"toss-secret-key"            flagDesc:"Secret key used to authenticate API calls with TossPay"`
	PaypalEnv                string   `env:"PAYPAL_ENV"                 flag:"paypal-env"                 flagDesc:"PayPal environment, live or test"`
	PaypalClientID           string   `env:"PAYPAL_CLIENT_ID"           flag:"paypal-client-id"           flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret             string   `env:"PAYPAL_SECRET"              flag:"paypal-secret"              flagDesc:"Secret used to authenticate API calls with PayPal"`
	FareAmount               string   `env:"FARE_AMOUNT"                flag:"fare-amount"                flagDesc:"Fixed non-pass shuttle fare in whole currency units"`
	ExpiryTimeInMinutes      string   `env:"EXPIRY_TIME_IN_MINUTES"     flag:"expiry-time-in-minutes"     flagDesc:"Time in minutes before a pending payment expires"`
	BrokerAddr               []string `env:"KAFKA_BROKER_ADDR"          flag:"broker-addr"                flagDesc:"Kafka broker address"`
	SchemaRegistryURL        string   `env:"SCHEMA_REGISTRY_URL"        flag:"schema-registry-url"        flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                 "bookings",
		SelectionCollection:      "selections",
		PendingPaymentCollection: "pending-payments",
		FareAmount:               "5000",
		ExpiryTimeInMinutes:      "30",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
