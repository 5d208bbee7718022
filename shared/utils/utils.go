package utils

import (
	"strings"

	"github.com/google/uuid"
)

// userNamespace scopes the name-based user IDs of the workshop dataset.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("eaglebank.workshop.users"))

// UserID derives a stable ID from the user's position in the graph, so the
// same dataset always yields the same IDs.
func UserID(holding, company, firstName, lastName string) uuid.UUID {
	return uuid.NewSHA1(userNamespace, []byte(strings.Join([]string{holding, company, firstName, lastName}, "/")))
}

// ValidateAccountNumber validates the account number format: 8 digits starting with 01.
func ValidateAccountNumber(accountNumber string) bool {
	if len(accountNumber) != 8 || !strings.HasPrefix(accountNumber, "01") {
		return false
	}
	for _, r := range accountNumber {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
