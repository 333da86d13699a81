// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Nil(t, Map[string, int](nil, func(s string) int { return len(s) }))
	assert.Equal(t, []int{3, 6}, Map([]string{"cut", "repair"}, func(s string) int { return len(s) }))
}

func TestFilter(t *testing.T) {
	assert.Nil(t, Filter[int](nil, func(int) bool { return true }))

	evens := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)

	none := Filter([]int{1, 3}, func(v int) bool { return v%2 == 0 })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestReduce(t *testing.T) {
	joined := Reduce([]string{"a", "b", "c"}, "", func(acc string, s string) string { return acc + s })
	assert.Equal(t, "abc", joined)
}

func TestCountBy(t *testing.T) {
	counts := CountBy([]string{"cooking", "sewing", "cooking"}, strings.ToUpper)
	assert.Equal(t, map[string]int{"COOKING": 2, "SEWING": 1}, counts)
	assert.Empty(t, CountBy[string, string](nil, strings.ToUpper))
}

func TestTake(t *testing.T) {
	values := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 2, 3}, Take(values, 3))
	assert.Equal(t, values, Take(values, 10))
	assert.Empty(t, Take(values, -1))
}
