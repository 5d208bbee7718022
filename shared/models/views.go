package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountRecord is the flat projection of an account written by the export.
// It never carries the owner; the line format is number|amount|currency.
type AccountRecord struct {
	Number   string
	Amount   string
	Currency Currency
}

func NewAccountRecord(a Account) AccountRecord {
	return AccountRecord{
		Number:   a.Number,
		Amount:   FormatAmount(a.Amount),
		Currency: a.Currency,
	}
}

// Line renders the record without a trailing newline.
func (r AccountRecord) Line() string {
	return strings.Join([]string{r.Number, r.Amount, string(r.Currency)}, "|")
}

// FormatAmount renders d keeping its scale, so 100.00 stays "100.00".
// decimal.Decimal.String trims trailing zeros, which would lose it.
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() >= 0 {
		return d.String()
	}
	return d.StringFixed(-d.Exponent())
}
