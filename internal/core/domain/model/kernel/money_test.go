package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	t.Run("should round to two decimal places", func(t *testing.T) {
		testCases := []struct {
			input    float64
			expected float64
		}{
			{0, 0},
			{42, 42},
			{12.3456, 12.35},
			{7.994, 7.99},
			{7.996, 8.0},
			{0.004, 0},
			{0.006, 0.01},
			{99.999, 100},
		}

		for _, tc := range testCases {
			assert.InDelta(t, tc.expected, kernel.RoundMoney(tc.input), 1e-9,
				"input: %v", tc.input)
		}
	})

	t.Run("should round negative amounts away from zero", func(t *testing.T) {
		assert.InDelta(t, -12.35, kernel.RoundMoney(-12.3456), 1e-9)
		assert.InDelta(t, -7.99, kernel.RoundMoney(-7.994), 1e-9)
	})

	t.Run("should be idempotent on already rounded amounts", func(t *testing.T) {
		for _, v := range []float64{15.5, 42.0, 0.01, 199.99} {
			assert.Equal(t, v, kernel.RoundMoney(v))
		}
	})
}
