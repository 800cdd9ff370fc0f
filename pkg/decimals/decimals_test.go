package decimals

import (
	"fmt"
	"math"
	"testing"

	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	testcases := []struct {
		raw      uint64
		decimals uint8
		expected string
	}{
		{0, 0, "0"},
		{1, 0, "1"},
		{1, 1, "0.1"},
		{1500, 2, "15"},
		{1, 9, "0.000000001"},
		{math.MaxUint64, 0, "18446744073709551615"},
		{math.MaxUint64, 9, "18446744073.709551615"},
		{math.MaxUint64, 36, "0.000000000000000018446744073709551615"},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%d_%d", tc.raw, tc.decimals), func(t *testing.T) {
			assert.Equal(t, tc.expected, ToDecimal(tc.raw, tc.decimals).String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []uint64{0, 1, 99, 123456789, math.MaxUint64} {
		for _, d := range []uint8{0, 2, 9} {
			actual, err := ToUint64(ToDecimal(raw, d), d)
			require.NoError(t, err)
			assert.Equal(t, raw, actual)
		}
	}
}

func TestToUint64(t *testing.T) {
	testcases := []struct {
		amount   string
		decimals uint8
		expected uint64
	}{
		{"0", 0, 0},
		{"1", 0, 1},
		{"10", 2, 1000},
		{"0.01", 2, 1},
		{"1.5", 8, 150000000},
		{"18446744073709551615", 0, math.MaxUint64},
		{"18446744073.709551615", 9, math.MaxUint64},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%s_%d", tc.amount, tc.decimals), func(t *testing.T) {
			actual, err := ToUint64(MustFromString(tc.amount), tc.decimals)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	t.Run("too_many_decimal_places", func(t *testing.T) {
		_, err := ToUint64(MustFromString("0.001"), 2)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("negative", func(t *testing.T) {
		_, err := ToUint64(decimal.NewFromInt(-1), 0)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
	t.Run("overflow", func(t *testing.T) {
		_, err := ToUint64(MustFromString("18446744073709551616"), 0)
		assert.ErrorIs(t, err, errs.OverflowUint64)
	})
}
