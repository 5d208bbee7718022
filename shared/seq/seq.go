// Package seq adds the few iter.Seq stages that github.com/samber/lo/it does
// not provide: an infinite generator, a tap for side effects, and a Take that
// stops as soon as the n-th element has been yielded.
//
// it.Slice(s, 0, n) pulls element n+1 before stopping. Over a deduplicated
// generator whose values are exhausted that pull never returns, so bounded
// sampling uses Take instead.
package seq

import "iter"

// Generate returns an infinite sequence of next() results. Bound it with Take.
func Generate[T any](next func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(next()) {
		}
	}
}

// Peek calls fn on every element as it flows through.
func Peek[T any](s iter.Seq[T], fn func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			fn(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Take stops after n elements. n <= 0 yields nothing and never pulls from s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range s {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}
