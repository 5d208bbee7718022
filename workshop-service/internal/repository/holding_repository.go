package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/eaglebank/workshop/shared/models"
	"github.com/eaglebank/workshop/shared/utils"
	"github.com/eaglebank/workshop/shared/validation"
)

// ErrInvalidDataset is returned when the generated graph breaks a model invariant.
var ErrInvalidDataset = errors.New("invalid dataset")

// HoldingRepository is the read-only source of the holdings graph.
// The graph is generated once at construction and never mutated afterwards;
// callers must treat the returned slices as read-only.
type HoldingRepository struct {
	holdings []models.Holding
}

func NewHoldingRepository() (*HoldingRepository, error) {
	return newHoldingRepository(generateHoldings())
}

// MustNewHoldingRepository panics when the built-in dataset is invalid.
func MustNewHoldingRepository() *HoldingRepository {
	repo, err := NewHoldingRepository()
	if err != nil {
		panic(err)
	}
	return repo
}

func newHoldingRepository(holdings []models.Holding) (*HoldingRepository, error) {
	holdings = assignUserIDs(holdings)
	if err := validateHoldings(holdings); err != nil {
		return nil, err
	}
	log.Printf("Loaded %d holdings", len(holdings))
	return &HoldingRepository{holdings: holdings}, nil
}

// Holdings returns the graph in insertion order.
func (r *HoldingRepository) Holdings() []models.Holding {
	return r.holdings
}

func assignUserIDs(holdings []models.Holding) []models.Holding {
	for h := range holdings {
		for c := range holdings[h].Companies {
			company := &holdings[h].Companies[c]
			for u := range company.Users {
				user := &company.Users[u]
				user.ID = utils.UserID(holdings[h].Name, company.Name, user.FirstName, user.LastName)
			}
		}
	}
	return holdings
}

func validateHoldings(holdings []models.Holding) error {
	numbers := make(map[string]struct{})
	for _, h := range holdings {
		if errs := validation.ValidateStruct(h); errs != nil {
			return fmt.Errorf("%w: %s", ErrInvalidDataset, validation.Errors(errs).Error())
		}
		for _, c := range h.Companies {
			for _, u := range c.Users {
				for _, a := range u.Accounts {
					if !utils.ValidateAccountNumber(a.Number) {
						return fmt.Errorf("%w: malformed account number %q", ErrInvalidDataset, a.Number)
					}
					if _, dup := numbers[a.Number]; dup {
						return fmt.Errorf("%w: duplicate account number %s", ErrInvalidDataset, a.Number)
					}
					numbers[a.Number] = struct{}{}
				}
			}
		}
	}
	return nil
}
