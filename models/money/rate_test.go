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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frikke/wallet-engine/models/money"
)

func TestExchangeRate_Convert(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		rate := money.NewRate(testBTC, testUSD, decimal.NewFromInt(20_000))
		amount, err := money.FromMajor(testBTC, decimal.RequireFromString("0.5"))
		require.NoError(t, err)

		converted, err := rate.Convert(amount)
		require.NoError(t, err)

		assert.True(t, converted.Currency().Equal(testUSD))
		assert.Equal(t, "10000", converted.NetworkString())
	})

	t.Run("identity returns the same amount", func(t *testing.T) {
		t.Parallel()

		amount, err := money.FromMajor(testBTC, decimal.RequireFromString("0.12345678"))
		require.NoError(t, err)

		converted, err := money.Identity(testBTC).Convert(amount)
		require.NoError(t, err)

		assert.True(t, converted.Equals(amount))
	})

	t.Run("wrong source currency", func(t *testing.T) {
		t.Parallel()

		rate := money.NewRate(testBTC, testUSD, decimal.NewFromInt(20_000))
		amount, err := money.FromMajor(testETH, decimal.NewFromInt(1))
		require.NoError(t, err)

		_, err = rate.Convert(amount)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("unknown rate yields the unknown sentinel", func(t *testing.T) {
		t.Parallel()

		rate := money.UnknownRate(testBTC, testUSD)
		amount, err := money.FromMajor(testBTC, decimal.NewFromInt(1))
		require.NoError(t, err)

		converted, err := rate.Convert(amount)
		require.NoError(t, err)

		assert.True(t, converted.IsUnknown())
		assert.True(t, converted.Currency().Equal(testUSD))
	})

	t.Run("rounded conversion scales to the target precision", func(t *testing.T) {
		t.Parallel()

		rate := money.NewRate(testBTC, testUSD, decimal.RequireFromString("0.333"))
		amount, err := money.FromMajor(testBTC, decimal.NewFromInt(1))
		require.NoError(t, err)

		converted, err := rate.ConvertRounded(amount, money.RoundDown)
		require.NoError(t, err)
		assert.Equal(t, "0.33", converted.NetworkString())

		converted, err = rate.ConvertRounded(amount, money.RoundHalfUp)
		require.NoError(t, err)
		assert.Equal(t, "0.33", converted.NetworkString())
	})
}

func TestExchangeRate_Inverse(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		rate := money.NewRate(testBTC, testUSD, decimal.NewFromInt(4))
		inverse := rate.Inverse(money.RoundHalfEven, -1)

		assert.True(t, inverse.From().Equal(testUSD))
		assert.True(t, inverse.To().Equal(testBTC))

		value, known := inverse.Rate()
		assert.True(t, known)
		assert.True(t, value.Equal(decimal.RequireFromString("0.25")))
	})

	t.Run("double inversion approximately restores the rate", func(t *testing.T) {
		t.Parallel()

		// The default scale is the sum of both precisions (10 here), so
		// the round trip is accurate to within 10^-9.
		tolerance := decimal.New(1, -9)

		rate := money.NewRate(testBTC, testUSD, decimal.NewFromInt(3))
		back := rate.Inverse(money.RoundHalfEven, -1).Inverse(money.RoundHalfEven, -1)

		value, known := back.Rate()
		require.True(t, known)

		diff := value.Sub(decimal.NewFromInt(3)).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance), "diff %s exceeds tolerance", diff)
	})

	t.Run("zero rate inverts to a zero rate", func(t *testing.T) {
		t.Parallel()

		rate := money.NewRate(testBTC, testUSD, decimal.Decimal{})
		inverse := rate.Inverse(money.RoundHalfEven, -1)

		value, known := inverse.Rate()
		assert.True(t, known)
		assert.True(t, value.IsZero())
	})

	t.Run("unknown rate inverts to an unknown rate", func(t *testing.T) {
		t.Parallel()

		inverse := money.UnknownRate(testBTC, testUSD).Inverse(money.RoundHalfEven, -1)

		_, known := inverse.Rate()
		assert.False(t, known)
		assert.True(t, inverse.From().Equal(testUSD))
	})
}

func TestExchangeRate_Equal(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a := money.NewRate(testBTC, testUSD, decimal.NewFromInt(4))
		b := money.NewRate(testBTC, testUSD, decimal.NewFromInt(4))

		assert.True(t, a.Equal(b))
	})

	t.Run("different rate", func(t *testing.T) {
		t.Parallel()

		a := money.NewRate(testBTC, testUSD, decimal.NewFromInt(4))
		b := money.NewRate(testBTC, testUSD, decimal.NewFromInt(5))

		assert.False(t, a.Equal(b))
	})

	t.Run("different direction", func(t *testing.T) {
		t.Parallel()

		a := money.NewRate(testBTC, testUSD, decimal.NewFromInt(4))
		b := money.NewRate(testUSD, testBTC, decimal.NewFromInt(4))

		assert.False(t, a.Equal(b))
	})
}
