package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/medishuttle/bookings.api.medishuttle.kr/config"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
)

// AmountFor derives the charge amount from the chosen payment method and the
// resolved pass eligibility. An active pass waives the fare entirely; every
// other combination pays the fixed non-pass fare.
func AmountFor(method models.PaymentMethod, hasPass bool, fare int) int {
	if method == models.PaymentMethodPass && hasPass {
		return 0
	}
	return fare
}

// FareAmount parses the configured non-pass fare. Fares are whole currency
// units, so a fractional or negative value is a configuration error.
func FareAmount(cfg *config.Config) (int, error) {
	return parseWholeAmount(cfg.FareAmount)
}

// ParseAmountParam parses an amount query parameter from a provider return
// URL. Malformed values must surface as invalid input, never a panic.
func ParseAmountParam(amount string) (int, error) {
	return parseWholeAmount(amount)
}

func parseWholeAmount(amount string) (int, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("amount [%s] format incorrect", amount)
	}
	if !parsed.Equal(parsed.Truncate(0)) || parsed.IsNegative() {
		return 0, fmt.Errorf("amount [%s] must be a whole non-negative number", amount)
	}
	return int(parsed.IntPart()), nil
}
