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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frikke/wallet-engine/models/money"
)

func TestNewCrypto(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		network := money.CoinNetwork{
			NativeTicker:  "ETH",
			ChainID:       1,
			FeeCurrencies: []string{"ETH"},
		}

		currency, err := money.NewCrypto("USDT", "₮", "Tether", 6,
			money.WithNetwork(network),
			money.WithContract("0xdac17f958d2ee523a2206206994597c13d831ec7"),
			money.WithCategories(money.CategoryTrading|money.CategoryCustodial),
		)
		require.NoError(t, err)

		assert.True(t, currency.IsCrypto())
		assert.False(t, currency.IsFiat())
		assert.Equal(t, int32(6), currency.Precision)
		require.NotNil(t, currency.Network)
		assert.Equal(t, "ETH", currency.Network.NativeTicker)
		assert.True(t, currency.Categories.Has(money.CategoryTrading))
		assert.False(t, currency.Categories.Has(money.CategoryDelegated))
	})

	t.Run("negative precision", func(t *testing.T) {
		t.Parallel()

		_, err := money.NewCrypto("BAD", "BAD", "Bad", -1)
		assert.Error(t, err)
	})

	t.Run("missing code", func(t *testing.T) {
		t.Parallel()

		_, err := money.NewCrypto("", "X", "Nameless", 8)
		assert.Error(t, err)
	})
}

func TestCurrency_Equal(t *testing.T) {
	t.Run("same network identifier", func(t *testing.T) {
		t.Parallel()

		a := mustCrypto("BTC", "₿", "Bitcoin", 8)
		b := mustCrypto("BTC", "BTC", "Bitcoin Colored Differently", 8)

		assert.True(t, a.Equal(b))
	})

	t.Run("different kinds sharing a code", func(t *testing.T) {
		t.Parallel()

		a := mustCrypto("USD", "$", "Dollar Token", 8)
		b := mustFiat("USD", "$", "US Dollar", 2)

		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})

	t.Run("token assets need a matching contract", func(t *testing.T) {
		t.Parallel()

		a, err := money.NewCrypto("USDT", "₮", "Tether", 6, money.WithContract("0xaa"))
		require.NoError(t, err)
		b, err := money.NewCrypto("USDT", "₮", "Tether", 6, money.WithContract("0xbb"))
		require.NoError(t, err)

		assert.False(t, a.Equal(b))
	})
}

func TestCatalogue(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		catalogue := money.NewCatalogue()
		require.NoError(t, catalogue.Register(testBTC))
		require.NoError(t, catalogue.Register(testUSD))

		currency, ok := catalogue.Lookup("BTC")
		require.True(t, ok)
		assert.True(t, currency.Equal(testBTC))

		assert.Equal(t, []string{"BTC", "USD"}, catalogue.Codes())
	})

	t.Run("duplicate code", func(t *testing.T) {
		t.Parallel()

		catalogue := money.NewCatalogue()
		require.NoError(t, catalogue.Register(testBTC))

		err := catalogue.Register(testBTC)
		assert.Error(t, err)
	})

	t.Run("invalid currency", func(t *testing.T) {
		t.Parallel()

		err := money.NewCatalogue().Register(money.Currency{})
		assert.Error(t, err)
	})

	t.Run("default catalogue", func(t *testing.T) {
		t.Parallel()

		catalogue := money.Default()

		usdt, ok := catalogue.Lookup("USDT")
		require.True(t, ok)
		require.NotNil(t, usdt.Network)
		assert.Equal(t, "ETH", usdt.Network.NativeTicker)
		assert.NotEmpty(t, usdt.Contract)

		usd, ok := catalogue.Lookup("USD")
		require.True(t, ok)
		assert.True(t, usd.IsFiat())
	})
}
