package query

import (
	"errors"
	"io"
	"iter"
	"slices"

	"github.com/eaglebank/workshop/shared/models"
	"github.com/eaglebank/workshop/shared/seq"
	"github.com/samber/lo"
	"github.com/samber/lo/it"
)

var (
	// ErrUserNotFound is returned when no user matches a predicate
	ErrUserNotFound = errors.New("user not found")

	// ErrNoAccounts is returned by aggregations that are undefined over no accounts
	ErrNoAccounts = errors.New("no accounts to aggregate")

	// ErrInvalidUserCount is returned when a random sample size is negative or exceeds the pool
	ErrInvalidUserCount = errors.New("invalid number of random users")
)

// HoldingReader provides the holdings graph the queries run over.
type HoldingReader interface {
	Holdings() []models.Holding
}

// RandomSource picks a uniform index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// UserPredicate selects users.
type UserPredicate func(models.User) bool

var isWoman UserPredicate = func(u models.User) bool { return u.Sex == models.Woman }

// WorkshopQueryService answers read-only questions about the holdings graph.
// Every query except RandomUsers is a pure function of the graph; OldWoman
// additionally echoes the users it inspects to the console.
//
// The graph is copied at construction and every company or user handed out
// is a copy, so callers cannot change what later queries see.
type WorkshopQueryService struct {
	holdings []models.Holding
	console  io.Writer
	rng      RandomSource
}

func NewWorkshopQueryService(repo HoldingReader, console io.Writer, rng RandomSource) *WorkshopQueryService {
	return &WorkshopQueryService{
		holdings: lo.Map(repo.Holdings(), func(h models.Holding, _ int) models.Holding { return h.Clone() }),
		console:  console,
		rng:      rng,
	}
}

func (s *WorkshopQueryService) holdingSeq() iter.Seq[models.Holding] {
	return slices.Values(s.holdings)
}

func (s *WorkshopQueryService) companies() iter.Seq[models.Company] {
	return it.Map(models.CompanySeq(s.holdings), models.Company.Clone)
}

func (s *WorkshopQueryService) users() iter.Seq[models.User] {
	return it.Map(models.UserSeq(s.holdings), models.User.Clone)
}

func (s *WorkshopQueryService) accounts() iter.Seq[models.Account] {
	return models.AccountSeq(s.holdings)
}

// currenciesSet returns the distinct currencies in use, sorted by code.
func (s *WorkshopQueryService) currenciesSet() []models.Currency {
	return seq.Sorted(seq.ToSet(it.Map(s.accounts(), func(a models.Account) models.Currency { return a.Currency })))
}
