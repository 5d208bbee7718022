package query

import (
	"container/list"
	"slices"
	"strings"

	"github.com/eaglebank/workshop/shared/models"
	"github.com/eaglebank/workshop/shared/seq"
	"github.com/samber/lo"
	"github.com/samber/lo/it"
)

// HoldingsWithCompanies counts holdings owning at least one company.
func (s *WorkshopQueryService) HoldingsWithCompanies() int {
	return it.CountBy(s.holdingSeq(), func(h models.Holding) bool { return len(h.Companies) >= 1 })
}

// HoldingNames returns lower-cased holding names in graph order.
func (s *WorkshopQueryService) HoldingNames() []string {
	return slices.Collect(it.Map(s.holdingSeq(), func(h models.Holding) string { return strings.ToLower(h.Name) }))
}

// HoldingNamesAsString returns the sorted holding names as "(A, B, C)".
func (s *WorkshopQueryService) HoldingNamesAsString() string {
	names := slices.Sorted(it.Map(s.holdingSeq(), func(h models.Holding) string { return h.Name }))
	return "(" + strings.Join(names, ", ") + ")"
}

func (s *WorkshopQueryService) CompaniesAmount() int {
	return it.SumBy(s.holdingSeq(), func(h models.Holding) int { return len(h.Companies) })
}

func (s *WorkshopQueryService) AllUserAmount() int {
	return it.Length(s.users())
}

func (s *WorkshopQueryService) AllUserAccountsAmount() int {
	return it.Length(s.accounts())
}

func (s *WorkshopQueryService) WomanAmount() int {
	return it.CountBy(s.users(), isWoman)
}

func companyName(c models.Company) string { return c.Name }

func (s *WorkshopQueryService) AllCompaniesNames() []string {
	return slices.Collect(it.Map(s.companies(), companyName))
}

// AllCompaniesNamesAsLinkedList collects company names straight into a list.List.
func (s *WorkshopQueryService) AllCompaniesNamesAsLinkedList() *list.List {
	return it.Reduce(it.Map(s.companies(), companyName), func(l *list.List, name string) *list.List {
		l.PushBack(name)
		return l
	}, list.New())
}

// AllCompaniesNamesAsString joins company names with "+".
func (s *WorkshopQueryService) AllCompaniesNamesAsString() string {
	return strings.Join(s.AllCompaniesNames(), "+")
}

// AllCompaniesNamesUsingBuilder builds the same "+"-joined string by folding
// company names into a single builder accumulator.
func (s *WorkshopQueryService) AllCompaniesNamesUsingBuilder() string {
	return it.Reduce(it.Map(s.companies(), companyName), func(b *strings.Builder, name string) *strings.Builder {
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(name)
		return b
	}, &strings.Builder{}).String()
}

// AllCurrencies lists the distinct currencies in use as "CHF, EUR, PLN, USD".
func (s *WorkshopQueryService) AllCurrencies() string {
	return joinCurrencies(s.currenciesSet())
}

// AllCurrenciesUsingGenerate renders the same string, drawing the currencies
// from an infinite generator bounded by the size of the set.
func (s *WorkshopQueryService) AllCurrenciesUsingGenerate() string {
	currencies := s.currenciesSet()
	next := 0
	generated := seq.Take(seq.Generate(func() models.Currency {
		c := currencies[next%len(currencies)]
		next++
		return c
	}), len(currencies))
	return joinCurrencies(slices.Collect(generated))
}

func joinCurrencies(currencies []models.Currency) string {
	return strings.Join(lo.Map(currencies, func(c models.Currency, _ int) string { return string(c) }), ", ")
}

// UserNames returns distinct first names, sorted and separated by single spaces.
func (s *WorkshopQueryService) UserNames() string {
	names := it.UniqMap(s.users(), func(u models.User) string { return u.FirstName })
	return strings.Join(slices.Sorted(names), " ")
}
