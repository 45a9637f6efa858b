package number

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxPrecision max ledger precision
const MaxPrecision = 8

// ErrInvalidPrecision precision out of [0,8]
var ErrInvalidPrecision = errors.New("precision must be in [0,8]")

// Decimal parse a decimal from string
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Scale convert raw, an integer amount in the smallest displayed unit, to
// ledger fixed-point units: raw / 10^(8-precision). Exact exponent
// arithmetic, no binary floating point; the node keeps its own fixed-point
// accounting and the two must never disagree on rounding.
func Scale(raw int64, precision uint8) (decimal.Decimal, error) {
	if precision > MaxPrecision {
		return decimal.Zero, ErrInvalidPrecision
	}

	return decimal.New(raw, int32(precision)-MaxPrecision), nil
}
