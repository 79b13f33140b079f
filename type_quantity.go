package stockfolio

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a whole number of shares.
//
// Holdings are counted in whole shares; the decimal form is only derived
// when a per-share cost must be computed.
type Quantity int64

// Q builds a Quantity from an integer share count.
func Q(n int64) Quantity { return Quantity(n) }

// Decimal returns the share count as an exact decimal.
func (q Quantity) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(q)) }

func (q Quantity) Add(p Quantity) Quantity     { return q + p }
func (q Quantity) Sub(p Quantity) Quantity     { return q - p }
func (q Quantity) LessThan(p Quantity) bool    { return q < p }
func (q Quantity) GreaterThan(p Quantity) bool { return q > p }
func (q Quantity) IsPositive() bool            { return q > 0 }
func (q Quantity) IsZero() bool                { return q == 0 }
func (q Quantity) Int64() int64                { return int64(q) }
