package decimals

import (
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/shopspring/decimal"
)

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// ToDecimal scales a raw integer quantity down by 10^decimals.
func ToDecimal(raw uint64, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(decimals))
}

// ToUint64 converts a display amount into raw units with the given number of decimals.
// Returns errs.InvalidArgument if the amount is negative or has more fractional digits than decimals,
// and errs.OverflowUint64 if the raw amount doesn't fit in 64 bits.
func ToUint64(amount decimal.Decimal, decimals uint8) (uint64, error) {
	if amount.IsNegative() {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s is negative", amount)
	}
	raw := amount.Mul(PowerOfTen(decimals))
	if !raw.Equal(raw.Truncate(0)) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s has more than %d decimal places", amount, decimals)
	}
	value := raw.BigInt()
	if !value.IsUint64() {
		return 0, errors.Wrapf(errs.OverflowUint64, "amount %s with %d decimals", amount, decimals)
	}
	return value.Uint64(), nil
}
