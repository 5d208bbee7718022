package query

import (
	"fmt"
	"iter"
	"slices"

	"github.com/eaglebank/workshop/shared/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/lo/it"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

// AccountAmountInPLN converts the account balance to PLN. PLN balances are
// returned untouched; other currencies are multiplied by their rate without
// rounding, so the result carries the scale of amount and rate combined.
func (s *WorkshopQueryService) AccountAmountInPLN(account models.Account) decimal.Decimal {
	if account.Currency == models.PLN {
		return account.Amount
	}
	return account.Amount.Mul(account.Currency.Rate())
}

// TotalCashInPLN sums the PLN value of the given accounts.
func (s *WorkshopQueryService) TotalCashInPLN(accounts []models.Account) (decimal.Decimal, error) {
	if len(accounts) == 0 {
		return decimal.Zero, fmt.Errorf("total cash in PLN: %w", ErrNoAccounts)
	}
	amounts := lo.Map(accounts, func(a models.Account, _ int) decimal.Decimal { return s.AccountAmountInPLN(a) })
	return decimal.Sum(amounts[0], amounts[1:]...), nil
}

func (s *WorkshopQueryService) sumInPLN(accounts iter.Seq[models.Account]) decimal.Decimal {
	return it.Reduce(accounts, func(total decimal.Decimal, a models.Account) decimal.Decimal {
		return total.Add(s.AccountAmountInPLN(a))
	}, decimal.Zero)
}

// RichestWoman returns the woman with the largest PLN balance across all her
// accounts. The first one in graph order wins a tie.
func (s *WorkshopQueryService) RichestWoman() mo.Option[models.User] {
	women := it.Filter(s.users(), isWoman)
	if it.IsEmpty(women) {
		return mo.None[models.User]()
	}
	return mo.Some(it.MaxBy(women, func(a, b models.User) bool {
		return s.sumInPLN(slices.Values(a.Accounts)).GreaterThan(s.sumInPLN(slices.Values(b.Accounts)))
	}))
}

// MostPopularAccountType returns the account type held most often. Ties go
// to the type declared first in models.AccountTypes.
func (s *WorkshopQueryService) MostPopularAccountType() (models.AccountType, error) {
	counts := it.CountValuesBy(s.accounts(), func(a models.Account) models.AccountType { return a.Type })

	best, bestCount := models.AccountType(""), 0
	for _, t := range models.AccountTypes {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	if bestCount == 0 {
		return "", fmt.Errorf("most popular account type: %w", ErrNoAccounts)
	}
	return best, nil
}

// MoneyOnAccounts sums the PLN value of all accounts per account type.
func (s *WorkshopQueryService) MoneyOnAccounts() map[models.AccountType]decimal.Decimal {
	byType := it.GroupBy(s.accounts(), func(a models.Account) models.AccountType { return a.Type })
	return lo.MapValues(byType, func(accounts []models.Account, _ models.AccountType) decimal.Decimal {
		return s.sumInPLN(slices.Values(accounts))
	})
}

// MenMoneyPerAccountType maps every account type to the men holding it and
// the PLN sum of their accounts of that type.
func (s *WorkshopQueryService) MenMoneyPerAccountType() map[models.AccountType]map[uuid.UUID]decimal.Decimal {
	result := make(map[models.AccountType]map[uuid.UUID]decimal.Decimal)
	for u := range it.Filter(s.users(), func(u models.User) bool { return u.Sex == models.Man }) {
		for _, a := range u.Accounts {
			byUser, ok := result[a.Type]
			if !ok {
				byUser = make(map[uuid.UUID]decimal.Decimal)
				result[a.Type] = byUser
			}
			byUser[u.ID] = byUser[u.ID].Add(s.AccountAmountInPLN(a))
		}
	}
	return result
}

// OtherSexMoneyInPLN totals the PLN value held by users who are neither men nor women.
func (s *WorkshopQueryService) OtherSexMoneyInPLN() decimal.Decimal {
	others := it.Filter(s.users(), func(u models.User) bool { return u.Sex == models.Other })
	return s.sumInPLN(it.FlatMap(others, func(u models.User) iter.Seq[models.Account] { return slices.Values(u.Accounts) }))
}
