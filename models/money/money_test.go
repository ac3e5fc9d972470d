// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package money_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frikke/wallet-engine/models/money"
)

var (
	testBTC = mustCrypto("BTC", "₿", "Bitcoin", 8)
	testETH = mustCrypto("ETH", "Ξ", "Ethereum", 18)
	testUSD = mustFiat("USD", "$", "US Dollar", 2)
	testJPY = mustFiat("JPY", "¥", "Yen", 0)
)

func TestMoney_FromMajor(t *testing.T) {
	t.Run("nominal case, crypto", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMajor(testBTC, decimal.RequireFromString("1.23456789"))
		require.NoError(t, err)

		assert.Equal(t, big.NewInt(123456789), m.ToMinor())
		assert.True(t, m.Currency().Equal(testBTC))
	})

	t.Run("nominal case, fiat", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMajor(testUSD, decimal.RequireFromString("19.99"))
		require.NoError(t, err)

		assert.Equal(t, big.NewInt(1999), m.ToMinor())
	})

	t.Run("excess precision is rounded down", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMajor(testBTC, decimal.RequireFromString("0.123456789"))
		require.NoError(t, err)

		assert.Equal(t, big.NewInt(12345678), m.ToMinor())
	})

	t.Run("invalid currency", func(t *testing.T) {
		t.Parallel()

		_, err := money.FromMajor(money.Currency{}, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, money.ErrUnknownCurrency)
	})
}

func TestMoney_FromMinor(t *testing.T) {
	t.Run("nominal case, crypto", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMinorInt(testBTC, 150_000_000)
		require.NoError(t, err)

		assert.Equal(t, "1.5", m.NetworkString())
	})

	t.Run("nominal case, fiat", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMinorInt(testUSD, 1999)
		require.NoError(t, err)

		assert.Equal(t, "19.99", m.NetworkString())
	})

	t.Run("does not alias the input", func(t *testing.T) {
		t.Parallel()

		units := big.NewInt(100)
		m, err := money.FromMinor(testBTC, units)
		require.NoError(t, err)

		units.SetInt64(999)
		assert.Equal(t, big.NewInt(100), m.ToMinor())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add then subtract restores the original", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testBTC, decimal.RequireFromString("0.30000001"))
		require.NoError(t, err)
		b, err := money.FromMajor(testBTC, decimal.RequireFromString("0.12345678"))
		require.NoError(t, err)

		sum, err := a.Add(b)
		require.NoError(t, err)
		back, err := sum.Subtract(b)
		require.NoError(t, err)

		assert.True(t, back.Equals(a))
	})

	t.Run("zero is idempotent under addition", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testUSD, decimal.RequireFromString("42.42"))
		require.NoError(t, err)

		sum, err := a.Add(money.Zero(testUSD))
		require.NoError(t, err)

		assert.True(t, sum.Equals(a))
	})

	t.Run("compare with itself", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testBTC, decimal.NewFromInt(3))
		require.NoError(t, err)

		cmp, err := a.Compare(a)
		require.NoError(t, err)
		assert.Zero(t, cmp)
	})

	t.Run("currency mismatch fails every operator", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testBTC, decimal.NewFromInt(1))
		require.NoError(t, err)
		b, err := money.FromMajor(testETH, decimal.NewFromInt(1))
		require.NoError(t, err)

		_, err = a.Add(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

		_, err = a.Subtract(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

		_, err = a.Compare(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

		_, err = a.Divide(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("same code across kinds is still a mismatch", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(mustCrypto("USD", "$", "Dollar Token", 8), decimal.NewFromInt(1))
		require.NoError(t, err)
		b, err := money.FromMajor(testUSD, decimal.NewFromInt(100))
		require.NoError(t, err)

		_, err = a.Add(b)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)

		_, err = b.Add(a)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("divide truncates to the currency precision", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testUSD, decimal.NewFromInt(10))
		require.NoError(t, err)
		b, err := money.FromMajor(testUSD, decimal.NewFromInt(3))
		require.NoError(t, err)

		quotient, err := a.Divide(b)
		require.NoError(t, err)

		assert.Equal(t, "3.33", quotient.NetworkString())
	})

	t.Run("crypto division truncates to the minor unit", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMinorInt(testBTC, 1_000_000_000)
		require.NoError(t, err)
		b, err := money.FromMinorInt(testBTC, 300_000_000)
		require.NoError(t, err)

		// 10 / 3 BTC = 3.33333333... major units, truncated at 8 digits.
		quotient, err := a.Divide(b)
		require.NoError(t, err)

		assert.Equal(t, big.NewInt(333_333_333), quotient.ToMinor())
	})

	t.Run("divide by zero fails", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testUSD, decimal.NewFromInt(10))
		require.NoError(t, err)

		_, err = a.Divide(money.Zero(testUSD))
		assert.ErrorIs(t, err, money.ErrDivisionByZero)
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMinorInt(testBTC, 100)
		require.NoError(t, err)

		scaled := a.Multiply(decimal.RequireFromString("0.5"))
		assert.Equal(t, big.NewInt(50), scaled.ToMinor())
	})

	t.Run("result is re-quantized rounding down", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMinorInt(testBTC, 3)
		require.NoError(t, err)

		// 3 * 0.5 = 1.5 minor units, which rounds down to 1.
		scaled := a.Multiply(decimal.RequireFromString("0.5"))
		assert.Equal(t, big.NewInt(1), scaled.ToMinor())
	})

	t.Run("fiat keeps the official fraction digits", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testUSD, decimal.RequireFromString("10.00"))
		require.NoError(t, err)

		scaled := a.Multiply(decimal.RequireFromString("0.333"))
		assert.Equal(t, "3.33", scaled.NetworkString())
	})

	t.Run("float multiplier delegates to the decimal path", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMinorInt(testBTC, 100)
		require.NoError(t, err)

		scaled := a.MultiplyFloat(0.5)
		assert.True(t, scaled.Equals(a.Multiply(decimal.RequireFromString("0.5"))))
		assert.Equal(t, big.NewInt(50), scaled.ToMinor())
	})
}

func TestMoney_Unknown(t *testing.T) {
	t.Run("propagates through addition", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testBTC, decimal.NewFromInt(1))
		require.NoError(t, err)

		sum, err := a.Add(money.Unknown(testBTC))
		require.NoError(t, err)

		assert.True(t, sum.IsUnknown())
	})

	t.Run("comparison has no meaningful result", func(t *testing.T) {
		t.Parallel()

		a, err := money.FromMajor(testBTC, decimal.NewFromInt(1))
		require.NoError(t, err)

		_, err = a.Compare(money.Unknown(testBTC))
		assert.ErrorIs(t, err, money.ErrUnknownValue)
	})

	t.Run("renders as placeholder", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "--", money.Unknown(testUSD).StringWithSymbol(false))
	})
}

func TestMoney_Serializations(t *testing.T) {
	t.Run("display with symbol", func(t *testing.T) {
		t.Parallel()

		fiat, err := money.FromMajor(testUSD, decimal.RequireFromString("1234.5"))
		require.NoError(t, err)
		assert.Equal(t, "$1,234.50", fiat.StringWithSymbol(false))

		crypto, err := money.FromMajor(testBTC, decimal.RequireFromString("1234.5"))
		require.NoError(t, err)
		assert.Equal(t, "1,234.50000000 ₿", crypto.StringWithSymbol(false))
	})

	t.Run("negative fiat keeps the sign in front", func(t *testing.T) {
		t.Parallel()

		fiat, err := money.FromMajor(testUSD, decimal.RequireFromString("-1.5"))
		require.NoError(t, err)
		assert.Equal(t, "-$1.50", fiat.StringWithSymbol(false))
	})

	t.Run("whole numbers can drop fraction digits", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMajor(testBTC, decimal.NewFromInt(1234))
		require.NoError(t, err)

		assert.Equal(t, "1,234", m.StringWithoutSymbol(true))
		assert.Equal(t, "1,234.00000000", m.StringWithoutSymbol(false))
	})

	t.Run("zero-precision fiat", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMajor(testJPY, decimal.NewFromInt(1500))
		require.NoError(t, err)

		assert.Equal(t, "¥1,500", m.StringWithSymbol(false))
	})

	t.Run("network string has no grouping", func(t *testing.T) {
		t.Parallel()

		m, err := money.FromMajor(testBTC, decimal.RequireFromString("1234567.89"))
		require.NoError(t, err)

		assert.Equal(t, "1234567.89", m.NetworkString())
	})

	t.Run("JSON round trip", func(t *testing.T) {
		t.Parallel()

		original, err := money.FromMajor(testBTC, decimal.RequireFromString("0.12345678"))
		require.NoError(t, err)

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var restored money.Money
		require.NoError(t, json.Unmarshal(data, &restored))

		assert.True(t, restored.Equals(original))
	})
}

func mustCrypto(code string, symbol string, name string, precision int32) money.Currency {
	currency, err := money.NewCrypto(code, symbol, name, precision)
	if err != nil {
		panic(err)
	}
	return currency
}

func mustFiat(code string, symbol string, name string, precision int32) money.Currency {
	currency, err := money.NewFiat(code, symbol, name, precision)
	if err != nil {
		panic(err)
	}
	return currency
}
