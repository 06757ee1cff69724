package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 12.35, RoundTo(12.346, 2))
	assert.Equal(t, 0.0, RoundTo(0.0001, 2))
	assert.Equal(t, 117.0, RoundTo(117.04, 0))
	assert.Equal(t, 58.1, RoundTo(58.06, 1))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "42.00", FormatFixed(42, 2))
	assert.Equal(t, "3.14", FormatFixed(3.14159, 2))
	assert.Equal(t, "82.8", FormatFixed(82.8, 1))
}

func TestNonEmptyPtr(t *testing.T) {
	assert.Nil(t, NonEmptyPtr("  "))
	if p := NonEmptyPtr("x"); assert.NotNil(t, p) {
		assert.Equal(t, "x", *p)
	}
}
