package slicer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// rowSuffix marks the "Rest of World" variant of a currency code. Sales
// reports list those sales in plain USD, but the payments listing carries a
// separate exchange-rate entry labelled "USD - RoW".
const rowSuffix = " - RoW"

// RoWCurrency is the distinguished currency code of the "Rest of World"
// reporting bucket.
const RoWCurrency = "USD" + rowSuffix

// baseCurrency strips the RoW marker so that currency metadata lookups
// always see a real ISO code.
func baseCurrency(code string) string {
	return strings.TrimSuffix(code, rowSuffix)
}

// Money represents an exact monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported decimal value")
	}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, baseCurrency(m.cur)).Currency()
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) Neg() Money              { return Money{value: m.value.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// String returns the default string representation of the money value.
func (m Money) String() string {
	c := m.currency()
	dec := m.value.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(dec.IntPart())
}

// Format renders the money value without a currency symbol, using the
// locale's separators and the currency's fraction digits. The value is
// rounded for display only; arithmetic stays exact.
func (m Money) Format(loc Locale) string {
	c := m.currency()
	f := money.NewFormatter(c.Fraction, loc.Decimal, loc.Thousand, "", "$1")
	return f.Format(m.value.Shift(int32(c.Fraction)).Round(0).IntPart())
}

// Symbol returns the display symbol of a currency code, or the code itself
// when the currency has no well-known symbol.
func Symbol(code string) string {
	c := money.GetCurrency(baseCurrency(code))
	if c == nil || c.Grapheme == "" {
		return code
	}
	return c.Grapheme
}
