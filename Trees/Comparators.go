package Trees

import (
	"cmp"
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Comparator orders two values: negative if a<b, zero if a==b, positive if a>b.
// Only the sign of the result is used, so any magnitude is fine.
type Comparator[T any] func(a, b T) int

// Ordered is the natural order of T.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse the order given by c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// FromGods adapts a gods comparator, such as utils.IntComparator or
// utils.StringComparator, to T. c must accept values of type T.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}

// StringBySize orders shorter strings first and strings of the same length lexicographically.
func StringBySize(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
