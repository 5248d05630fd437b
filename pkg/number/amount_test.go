package number

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountArithmetic(t *testing.T) {
	a := NewAmount(1000)
	b := NewAmount(15000)

	sum, err := a.Add(b)
	require.Nil(t, err)
	assert.Equal(t, "16000", sum.String())

	_, err = a.Sub(b)
	assert.ErrorIs(t, err, ErrUnderflow)

	diff, err := b.Sub(a)
	require.Nil(t, err)
	assert.Equal(t, "14000", diff.String())

	prod, err := a.MulUint64(10000)
	require.Nil(t, err)
	q, err := prod.Div(b)
	require.Nil(t, err)
	assert.Equal(t, "666", q.String(), "division truncates")

	_, err = a.Div(Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestAmountOverflow(t *testing.T) {
	max := MaxAmount()
	assert.True(t, max.IsMax())

	_, err := max.Add(NewAmount(1))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = max.MulUint64(2)
	assert.ErrorIs(t, err, ErrOverflow)

	half, err := max.DivUint64(2)
	require.Nil(t, err)
	_, err = half.MulUint64(2)
	assert.Nil(t, err)
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.Nil(t, err)
	assert.True(t, a.IsMax())

	_, err = ParseAmount("-1")
	assert.NotNil(t, err)

	_, err = ParseAmount("1.5")
	assert.NotNil(t, err)

	z, err := ParseAmount("")
	require.Nil(t, err)
	assert.True(t, z.IsZero())
}

func TestAmountDecimal(t *testing.T) {
	a, err := AmountFromDecimal(decimal.RequireFromString("1.234567891"), 8)
	require.Nil(t, err)
	assert.Equal(t, "123456789", a.String())
	assert.Equal(t, "1.23456789", a.Decimal(8).String())

	_, err = AmountFromDecimal(decimal.RequireFromString("-1"), 8)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestAmountJSON(t *testing.T) {
	var v struct {
		Amount Amount `json:"amount"`
	}

	v.Amount = NewAmount(42)
	bs, err := json.Marshal(v)
	require.Nil(t, err)
	assert.Equal(t, `{"amount":"42"}`, string(bs))

	require.Nil(t, json.Unmarshal([]byte(`{"amount":"1000"}`), &v))
	assert.Equal(t, NewAmount(1000), v.Amount)

	require.Nil(t, json.Unmarshal([]byte(`{"amount":7}`), &v))
	assert.Equal(t, NewAmount(7), v.Amount)
}

func TestAmountScan(t *testing.T) {
	var a Amount
	require.Nil(t, a.Scan([]byte("123")))
	assert.Equal(t, NewAmount(123), a)

	require.Nil(t, a.Scan(int64(9)))
	assert.Equal(t, NewAmount(9), a)

	require.Nil(t, a.Scan(nil))
	assert.True(t, a.IsZero())

	v, err := NewAmount(5).Value()
	require.Nil(t, err)
	assert.Equal(t, "5", v)
}
