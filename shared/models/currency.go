package models

import "github.com/shopspring/decimal"

// Currency is an ISO 4217 code carrying its exchange rate to PLN.
type Currency string

const (
	PLN Currency = "PLN"
	USD Currency = "USD"
	EUR Currency = "EUR"
	CHF Currency = "CHF"
)

var Currencies = []Currency{PLN, USD, EUR, CHF}

var plnRates = map[Currency]decimal.Decimal{
	PLN: decimal.RequireFromString("1.00"),
	USD: decimal.RequireFromString("3.72"),
	EUR: decimal.RequireFromString("4.23"),
	CHF: decimal.RequireFromString("3.83"),
}

// Rate returns how many PLN one unit of c is worth.
// Unknown currencies have a zero rate.
func (c Currency) Rate() decimal.Decimal {
	return plnRates[c]
}
