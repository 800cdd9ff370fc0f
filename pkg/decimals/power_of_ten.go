package decimals

import (
	"github.com/shopspring/decimal"
)

// powerOfTen caches 10^n for every uint8 exponent a token may declare.
var powerOfTen = func() [256]decimal.Decimal {
	var table [256]decimal.Decimal
	ten := decimal.NewFromInt(10)
	table[0] = decimal.NewFromInt(1)
	for n := 1; n < len(table); n++ {
		table[n] = table[n-1].Mul(ten)
	}
	return table
}()

// PowerOfTen returns 10^n.
func PowerOfTen(n uint8) decimal.Decimal {
	return powerOfTen[n]
}
