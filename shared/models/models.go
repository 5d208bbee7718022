package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Holding struct {
	Name      string    `json:"name" validate:"required"`
	Companies []Company `json:"companies" validate:"dive"`
}

type Company struct {
	Name  string `json:"name" validate:"required"`
	Users []User `json:"users" validate:"dive"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Age       int       `json:"age" validate:"gte=0"`
	Sex       Sex       `json:"sex" validate:"oneof=MAN WOMAN OTHER"`
	Accounts  []Account `json:"accounts" validate:"dive"`
}

// FullName returns "<first> <last>".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// String is the form written to the console side channel.
func (u User) String() string {
	return fmt.Sprintf("%s (%d, %s)", u.FullName(), u.Age, u.Sex)
}

type Account struct {
	Number   string          `json:"number" validate:"required,len=8,startswith=01,numeric"`
	Amount   decimal.Decimal `json:"amount" validate:"gte=0"`
	Currency Currency        `json:"currency" validate:"oneof=PLN USD EUR CHF"`
	Type     AccountType     `json:"type" validate:"oneof=ROR1 ROR2 LO1 LO2 RO1"`
}

// Sex is a closed three-valued set; Other is a real value, not a missing one.
type Sex string

const (
	Man   Sex = "MAN"
	Woman Sex = "WOMAN"
	Other Sex = "OTHER"
)

type AccountType string

const (
	ROR1 AccountType = "ROR1"
	ROR2 AccountType = "ROR2"
	LO1  AccountType = "LO1"
	LO2  AccountType = "LO2"
	RO1  AccountType = "RO1"
)

// AccountTypes lists every account type in natural order.
var AccountTypes = []AccountType{ROR1, ROR2, LO1, LO2, RO1}

// Ordinal is the position of t in AccountTypes, or -1 for an unknown type.
func (t AccountType) Ordinal() int {
	for i, known := range AccountTypes {
		if known == t {
			return i
		}
	}
	return -1
}
