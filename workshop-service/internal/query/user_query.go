package query

import (
	"fmt"
	"log"
	"slices"

	"github.com/eaglebank/workshop/shared/models"
	"github.com/eaglebank/workshop/shared/seq"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/lo/it"
	"github.com/samber/mo"
)

const missingUserStatus = "Brak użytkownika"

func firstName(u models.User) string { return u.FirstName }

// UsersForPredicate returns the first names of the users matching predicate.
func (s *WorkshopQueryService) UsersForPredicate(predicate UserPredicate) seq.Set[string] {
	return seq.ToSet(it.Map(it.Filter(s.users(), predicate), firstName))
}

// OldWoman writes every user older than age to the console, then returns the
// first names of the women among them in graph order.
func (s *WorkshopQueryService) OldWoman(age int) []string {
	older := it.Filter(s.users(), func(u models.User) bool { return u.Age > age })
	echoed := seq.Peek(older, func(u models.User) {
		if _, err := fmt.Fprintln(s.console, u); err != nil {
			log.Printf("Failed to write user to console: %v", err)
		}
	})
	return slices.Collect(it.Map(it.Filter(echoed, isWoman), firstName))
}

// ForEachCompany calls fn for every company in graph order.
func (s *WorkshopQueryService) ForEachCompany(fn func(models.Company)) {
	it.ForEach(s.companies(), fn)
}

// FirstNCompanies returns the names of the first n companies.
func (s *WorkshopQueryService) FirstNCompanies(n int) seq.Set[string] {
	return seq.ToSet(it.Map(seq.Take(s.companies(), n), companyName))
}

// User returns the first user in graph order matching predicate.
func (s *WorkshopQueryService) User(predicate UserPredicate) (models.User, error) {
	u, ok := it.Find(s.users(), predicate)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

// FindUser is User without the error: absence is an empty option.
func (s *WorkshopQueryService) FindUser(predicate UserPredicate) mo.Option[models.User] {
	u, ok := it.Find(s.users(), predicate)
	return mo.TupleToOption(u, ok)
}

// AdultantStatus describes the user's age, or reports that there is no user.
func (s *WorkshopQueryService) AdultantStatus(user mo.Option[models.User]) string {
	u, ok := user.Get()
	if !ok {
		return missingUserStatus
	}
	return fmt.Sprintf("%s %s ma lat %d", u.FirstName, u.LastName, u.Age)
}

// UserPerCompany maps company names to their users in graph order.
func (s *WorkshopQueryService) UserPerCompany() map[string][]models.User {
	return it.Associate(s.companies(), func(c models.Company) (string, []models.User) {
		return c.Name, c.Users
	})
}

// UserPerCompanyAsString maps company names to "First Last" of their users.
func (s *WorkshopQueryService) UserPerCompanyAsString() map[string][]string {
	return UserPerCompanyAs(s, models.User.FullName)
}

// UserPerCompanyAs maps company names to their users converted by convert.
func UserPerCompanyAs[T any](s *WorkshopQueryService, convert func(models.User) T) map[string][]T {
	return lo.MapValues(s.UserPerCompany(), func(users []models.User, _ string) []T {
		return lo.Map(users, func(u models.User, _ int) T { return convert(u) })
	})
}

// UserBySex partitions last names into men (true) and women (false).
// Users of other sex are left out; both keys are always present.
func (s *WorkshopQueryService) UserBySex() map[bool]seq.Set[string] {
	menOrWomen := it.Filter(s.users(), func(u models.User) bool { return u.Sex == models.Man || u.Sex == models.Woman })
	return it.Reduce(menOrWomen, func(m map[bool]seq.Set[string], u models.User) map[bool]seq.Set[string] {
		m[u.Sex == models.Man][u.LastName] = struct{}{}
		return m
	}, map[bool]seq.Set[string]{true: {}, false: {}})
}

// AccountsMap indexes every account by its number.
func (s *WorkshopQueryService) AccountsMap() map[string]models.Account {
	return it.KeyBy(s.accounts(), func(a models.Account) string { return a.Number })
}

// FirstUsers returns at most the first 10 users, keyed by ID.
func (s *WorkshopQueryService) FirstUsers() map[uuid.UUID]models.User {
	return it.KeyBy(seq.Take(s.users(), 10), func(u models.User) uuid.UUID { return u.ID })
}

func (s *WorkshopQueryService) AgeSquaresSum() int {
	return it.SumBy(s.users(), func(u models.User) int { return u.Age * u.Age })
}

// RandomUsers draws n distinct users uniformly at random.
func (s *WorkshopQueryService) RandomUsers(n int) ([]models.User, error) {
	pool := slices.Collect(s.users())
	if n < 0 || n > len(pool) {
		return nil, fmt.Errorf("%w: requested %d, have %d", ErrInvalidUserCount, n, len(pool))
	}
	indexes := seq.Take(it.Uniq(seq.Generate(func() int { return s.rng.IntN(len(pool)) })), n)
	return slices.Collect(it.Map(indexes, func(i int) models.User { return pool[i] })), nil
}
