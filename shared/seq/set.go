package seq

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/samber/lo/it"
)

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](values ...T) Set[T] {
	return ToSet(slices.Values(values))
}

// ToSet drains a sequence into a set.
func ToSet[T comparable](s iter.Seq[T]) Set[T] {
	return it.Keyify(s)
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// Equal reports whether both sets hold the same values.
func (s Set[T]) Equal(other Set[T]) bool {
	return len(s) == len(other) && it.EveryBy(maps.Keys(s), other.Contains)
}

// Sorted returns the values of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
