package set

import (
	"fmt"
	"strings"
)

// Set is a collection of unique comparable values. Linked, Bounded and
// Persistent all implement it and differ only in how they store members.
type Set[T comparable] interface {
	// Add makes v a member. Adding an existing member is a no-op.
	Add(v T) error
	// Remove drops v and reports whether it was a member.
	Remove(v T) (bool, error)
	Contains(v T) bool
	// Elements returns a copy of the members. Only Bounded guarantees an order.
	Elements() []T
	// Replace discards every member and adds values one by one, collapsing duplicates.
	Replace(values ...T) error
	Len() int
}

var (
	_ Set[int] = (*Linked[int])(nil)
	_ Set[int] = (*Bounded[int])(nil)
	_ Set[int] = (*Persistent[int])(nil)
)

func format[T any](items []T) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprint(item))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return -1
}
