// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with Map, Filter,
Reduce and CountBy.

Map and Filter return nil for a nil input; callers that render JSON arrays
start from a non-nil slice.
*/
package slice

// Map maps a slice of type T to a slice of type U using transform.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements for which predicate is true, in order.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	result := make([]T, 0)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Reduce folds input into a single accumulated result.
func Reduce[T any, U any](input []T, initial U, reducer func(accumulator U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}

// CountBy counts the elements of input per key.
func CountBy[T any, K comparable](input []T, key func(T) K) map[K]int {
	return Reduce(input, make(map[K]int), func(counts map[K]int, current T) map[K]int {
		counts[key(current)]++
		return counts
	})
}

// Take returns at most the first n elements of input.
func Take[T any](input []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(input) <= n {
		return input
	}
	return input[:n]
}
