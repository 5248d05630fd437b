package number

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	// ErrOverflow result does not fit in 256 bits
	ErrOverflow = errors.New("number: 256-bit overflow")
	// ErrUnderflow result is below zero
	ErrUnderflow = errors.New("number: underflow")
	// ErrDivisionByZero division by zero
	ErrDivisionByZero = errors.New("number: division by zero")
)

// Amount unsigned 256-bit integer amount.
//
// All arithmetic is checked: an operation that would wrap returns an error
// instead of a truncated value. Division truncates toward zero.
type Amount struct {
	v uint256.Int
}

// Zero zero amount
var Zero = Amount{}

// NewAmount new amount from uint64
func NewAmount(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)
	return a
}

// MaxAmount 2^256-1
func MaxAmount() Amount {
	var a Amount
	a.v.SetAllOne()
	return a
}

// ParseAmount parse a base-10 integer string
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, nil
	}

	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}

	return Amount{v: *v}, nil
}

// MustParseAmount parse amount or panic
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return a
}

// AmountFromBig convert big.Int
func AmountFromBig(b *big.Int) (Amount, error) {
	if b.Sign() < 0 {
		return Zero, ErrUnderflow
	}

	v, overflow := uint256.FromBig(b)
	if overflow {
		return Zero, ErrOverflow
	}

	return Amount{v: *v}, nil
}

// AmountFromDecimal shift d by exp places and truncate the fraction,
// e.g. (1.5, 8) => 150000000
func AmountFromDecimal(d decimal.Decimal, exp int32) (Amount, error) {
	return AmountFromBig(d.Shift(exp).Truncate(0).BigInt())
}

// Decimal render as decimal with exp fractional places
func (a Amount) Decimal(exp int32) decimal.Decimal {
	return decimal.NewFromBigInt(a.Big(), -exp)
}

// Big convert to big.Int
func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

// Uint64 value as uint64, ok is false when it does not fit
func (a Amount) Uint64() (uint64, bool) {
	return a.v.Uint64(), a.v.IsUint64()
}

func (a Amount) String() string {
	return a.v.Dec()
}

// IsZero is zero
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// IsMax is 2^256-1
func (a Amount) IsMax() bool {
	return a.Equal(MaxAmount())
}

// Cmp compare
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Equal a == b
func (a Amount) Equal(b Amount) bool {
	return a.v.Eq(&b.v)
}

// LessThan a < b
func (a Amount) LessThan(b Amount) bool {
	return a.v.Lt(&b.v)
}

// GreaterThan a > b
func (a Amount) GreaterThan(b Amount) bool {
	return a.v.Gt(&b.v)
}

// Add a + b
func (a Amount) Add(b Amount) (Amount, error) {
	var z Amount
	if _, overflow := z.v.AddOverflow(&a.v, &b.v); overflow {
		return Zero, ErrOverflow
	}

	return z, nil
}

// Sub a - b
func (a Amount) Sub(b Amount) (Amount, error) {
	var z Amount
	if _, underflow := z.v.SubOverflow(&a.v, &b.v); underflow {
		return Zero, ErrUnderflow
	}

	return z, nil
}

// Mul a * b
func (a Amount) Mul(b Amount) (Amount, error) {
	var z Amount
	if _, overflow := z.v.MulOverflow(&a.v, &b.v); overflow {
		return Zero, ErrOverflow
	}

	return z, nil
}

// MulUint64 a * n
func (a Amount) MulUint64(n uint64) (Amount, error) {
	return a.Mul(NewAmount(n))
}

// Div a / b, truncating
func (a Amount) Div(b Amount) (Amount, error) {
	if b.IsZero() {
		return Zero, ErrDivisionByZero
	}

	var z Amount
	z.v.Div(&a.v, &b.v)
	return z, nil
}

// DivUint64 a / n, truncating
func (a Amount) DivUint64(n uint64) (Amount, error) {
	return a.Div(NewAmount(n))
}

// json encoding, always a quoted base-10 string

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		s = n.String()
	}

	v, err := ParseAmount(s)
	if err != nil {
		return err
	}

	*a = v
	return nil
}

// sql

func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Amount) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*a = Zero
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		if v < 0 {
			return ErrUnderflow
		}
		*a = NewAmount(uint64(v))
		return nil
	default:
		return fmt.Errorf("number: cannot scan %T into Amount", src)
	}

	v, err := ParseAmount(s)
	if err != nil {
		return err
	}

	*a = v
	return nil
}
