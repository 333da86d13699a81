// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerHelpers(t *testing.T) {
	value := To("cooking")
	assert.Equal(t, "cooking", *value)

	assert.Equal(t, "", Val[string](nil))
	assert.Equal(t, "cooking", Val(value))
}

func TestNilIfZero(t *testing.T) {
	assert.Nil(t, NilIfZero(""))
	assert.Nil(t, NilIfZero(0))

	search := NilIfZero("couscous")
	if assert.NotNil(t, search) {
		assert.Equal(t, "couscous", *search)
	}
}
