package models

import (
	"iter"
	"slices"

	"github.com/samber/lo/it"
)

// CompanySeq streams the companies of holdings in graph order.
func CompanySeq(holdings []Holding) iter.Seq[Company] {
	return it.FlatMap(slices.Values(holdings), func(h Holding) iter.Seq[Company] { return slices.Values(h.Companies) })
}

// UserSeq streams the users of holdings in graph order.
func UserSeq(holdings []Holding) iter.Seq[User] {
	return it.FlatMap(CompanySeq(holdings), func(c Company) iter.Seq[User] { return slices.Values(c.Users) })
}

// AccountSeq streams the accounts of holdings in graph order.
func AccountSeq(holdings []Holding) iter.Seq[Account] {
	return it.FlatMap(UserSeq(holdings), func(u User) iter.Seq[Account] { return slices.Values(u.Accounts) })
}

// Clone returns a copy of u that shares no slices with it.
func (u User) Clone() User {
	u.Accounts = slices.Clone(u.Accounts)
	return u
}

// Clone returns a deep copy of c.
func (c Company) Clone() Company {
	c.Users = cloneAll(c.Users, User.Clone)
	return c
}

// Clone returns a deep copy of h.
func (h Holding) Clone() Holding {
	h.Companies = cloneAll(h.Companies, Company.Clone)
	return h
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
