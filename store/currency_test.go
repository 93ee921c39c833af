package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUSDPivot(t *testing.T) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)

	got, ok := currencies.Convert(10.00, "USD", "PHP")
	require.True(t, ok)
	assert.InDelta(t, 560.00, got, 0.01)

	got, ok = currencies.Convert(10.00, "USD", "KRW")
	require.True(t, ok)
	assert.InDelta(t, 13000.00, got, 0.01)
}

func TestConvertSameCurrencyIsIdentity(t *testing.T) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)

	got, ok := currencies.Convert(8.555, "USD", "USD")
	require.True(t, ok)
	assert.Equal(t, 8.56, got) // still rounded to 2 decimals
}

func TestConvertRoundTrip(t *testing.T) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)

	rates := map[string]float64{"USD": 1.0, "PHP": 56.0, "KRW": 1300.0}
	amounts := []float64{0.01, 1.00, 9.99, 123.45}

	for from, fromRate := range rates {
		for to, toRate := range rates {
			// Each leg rounds to a cent of its target currency; the outbound
			// half-cent is worth up to 0.005 * from/to back in the source.
			tolerance := 0.01 + 0.005*fromRate/toRate

			for _, amount := range amounts {
				there, ok := currencies.Convert(amount, from, to)
				require.True(t, ok)
				back, ok := currencies.Convert(there, to, from)
				require.True(t, ok)

				assert.LessOrEqual(t, math.Abs(back-amount), tolerance,
					"%v %s -> %s -> back came out %v", amount, from, to, back)
			}
		}
	}
}

func TestConvertUnknownCurrency(t *testing.T) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)

	_, ok := currencies.Convert(10, "USD", "EUR")
	assert.False(t, ok)
	_, ok = currencies.Convert(10, "EUR", "USD")
	assert.False(t, ok)
	assert.False(t, currencies.IsSupported("EUR"))
}

func TestSymbol(t *testing.T) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)

	assert.Equal(t, "$", currencies.Symbol("USD"))
	assert.Equal(t, "₱", currencies.Symbol("PHP"))
	assert.Equal(t, "XYZ", currencies.Symbol("XYZ")) // unknown falls back to the code
}

func TestUpdateRateIsLive(t *testing.T) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)

	require.True(t, currencies.UpdateRate("PHP", 50.0))

	got, ok := currencies.Convert(10.00, "USD", "PHP")
	require.True(t, ok)
	assert.InDelta(t, 500.00, got, 0.01)

	assert.False(t, currencies.UpdateRate("PHP", 0))   // non-positive rejected
	assert.False(t, currencies.UpdateRate("EUR", 1.5)) // unknown code
}

func TestSupportedListsAllCurrencies(t *testing.T) {
	db := openTestDB(t)
	currencies := NewCurrencyStore(db, nil)

	supported := currencies.Supported()
	require.Len(t, supported, 3)
	assert.Equal(t, "KRW", supported[0].Code) // sorted by code
}
