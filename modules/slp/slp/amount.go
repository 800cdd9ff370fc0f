package slp

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/pkg/decimals"
	"github.com/shopspring/decimal"
)

// MaxDecimals is the largest decimals value a genesis message may declare.
const MaxDecimals = 9

// ToRawAmount converts a display amount into the raw quantity written in marker scripts.
func ToRawAmount(amount decimal.Decimal, tokenDecimals uint8) (uint64, error) {
	raw, err := decimals.ToUint64(amount, tokenDecimals)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return raw, nil
}

// FromRawAmount scales a raw quantity into display units.
func FromRawAmount(raw uint64, tokenDecimals uint8) decimal.Decimal {
	return decimals.ToDecimal(raw, tokenDecimals)
}
