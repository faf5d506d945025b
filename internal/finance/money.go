package finance

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ToDecimal coerces a decimal-like value into a decimal.Decimal.
// Unparseable, nil, or unsupported inputs yield zero. This leniency keeps
// dashboard rendering resilient to partially-dirty data; it is not a
// correctness guarantee for upstream writers.
func ToDecimal(value interface{}) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return *v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// RoundMoney rounds a monetary value to 2 decimal places using half-up
// rounding. Applied to final outputs only, never to intermediate sums.
func RoundMoney(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// RoundPercent computes part/whole as a whole-number percentage.
// Returns 0 when whole is not positive, so ratio computations never
// produce NaN or Infinity.
func RoundPercent(part, whole decimal.Decimal) int {
	if whole.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(part.Div(whole).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// PercentChange computes the period-over-period change between two totals,
// rounded to 1 decimal place. A zero previous value maps to 100 when the
// current value is positive and 0 otherwise, preserving "growth from
// nothing" semantics without dividing by zero.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1)
}
