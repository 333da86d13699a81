// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Malformed input never produces an error here: it becomes the zero value or
nil. Do not use this package where a malformed value must be rejected.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64P converts s to a *float64.
//
// It returns nil for an empty string, a malformed number and NaN, so an
// unusable value reads as "not provided".
func ToFloat64P(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}
