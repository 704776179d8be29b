// Package collection holds generic slice helpers used by the catalog, the
// cart and the views.
//
//	names := collection.Map(items, func(f models.FoodItem) string { return f.Name })
//	veg := collection.Filter(items, func(f models.FoodItem) bool { return f.IsVegetarian })
//	groups := collection.GroupBy(items, func(f models.FoodItem) string { return f.Category })
package collection

// Map transforms each element of s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which fn returns true. The result is
// never nil so it encodes as [] rather than null.
func Filter[T any](s []T, fn func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// Group is one bucket produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions s by the key fn returns. Groups appear in the order
// their key is first seen and items keep their relative order.
func GroupBy[T any, K comparable](s []T, fn func(T) K) []Group[K, T] {
	index := make(map[K]int)
	var out []Group[K, T]
	for _, v := range s {
		k := fn(v)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Group[K, T]{Key: k})
		}
		out[i].Items = append(out[i].Items, v)
	}
	return out
}

// UniqueBy keeps the first element for each key fn returns.
func UniqueBy[T any, K comparable](s []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		k := fn(v)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value using fn, starting with initial.
func Reduce[T, R any](s []T, initial R, fn func(carry R, item T) R) R {
	carry := initial
	for _, v := range s {
		carry = fn(carry, v)
	}
	return carry
}

// Sum sums numeric values extracted by fn.
func Sum[T any](s []T, fn func(T) float64) float64 {
	return Reduce(s, 0.0, func(acc float64, v T) float64 { return acc + fn(v) })
}

// Max returns the largest value fn extracts, or 0 for an empty slice.
func Max[T any](s []T, fn func(T) float64) float64 {
	if len(s) == 0 {
		return 0
	}
	best := fn(s[0])
	for _, v := range s[1:] {
		if f := fn(v); f > best {
			best = f
		}
	}
	return best
}
