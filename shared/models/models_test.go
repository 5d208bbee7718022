package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "keeps trailing zeros", amount: decimal.RequireFromString("100.00"), expected: "100.00"},
		{name: "keeps four digit scale", amount: decimal.RequireFromString("10410.8592"), expected: "10410.8592"},
		{name: "integer", amount: decimal.NewFromInt(150), expected: "150"},
		{name: "product scale", amount: decimal.RequireFromString("1.0").Mul(USD.Rate()), expected: "3.720"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.amount); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestAccountRecordLine(t *testing.T) {
	account := Account{Number: "01439563", Amount: decimal.RequireFromString("1500.00"), Currency: PLN, Type: ROR1}
	if got := NewAccountRecord(account).Line(); got != "01439563|1500.00|PLN" {
		t.Errorf("unexpected line %q", got)
	}
}

func TestCurrencyRate(t *testing.T) {
	tests := []struct {
		currency Currency
		expected string
	}{
		{PLN, "1"},
		{USD, "3.72"},
		{EUR, "4.23"},
		{CHF, "3.83"},
		{Currency("GBP"), "0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			if !tt.currency.Rate().Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected rate %s, got %s", tt.expected, tt.currency.Rate())
			}
		})
	}
}

func TestAccountTypeOrdinal(t *testing.T) {
	for i, accountType := range AccountTypes {
		if accountType.Ordinal() != i {
			t.Errorf("expected %s at %d, got %d", accountType, i, accountType.Ordinal())
		}
	}
	if AccountType("XYZ").Ordinal() != -1 {
		t.Error("expected -1 for an unknown account type")
	}
}

func TestUserString(t *testing.T) {
	u := User{FirstName: "Zosia", LastName: "Psikuta", Age: 67, Sex: Woman}
	if u.FullName() != "Zosia Psikuta" {
		t.Errorf("unexpected full name %q", u.FullName())
	}
	if u.String() != "Zosia Psikuta (67, WOMAN)" {
		t.Errorf("unexpected string %q", u.String())
	}
}
