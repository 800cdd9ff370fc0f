package entity

import (
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/shopspring/decimal"
)

type TokenBalance struct {
	TokenId slp.TokenId
	Ticker  string
	Amount  decimal.Decimal
}
