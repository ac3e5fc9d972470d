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

package money

import (
	"fmt"
	"sort"
)

// Catalogue is a registry of currency descriptors. Network identifiers are
// unique within a catalogue.
type Catalogue struct {
	currencies map[string]Currency
}

// NewCatalogue creates an empty currency catalogue.
func NewCatalogue() *Catalogue {

	c := Catalogue{
		currencies: make(map[string]Currency),
	}

	return &c
}

// Register adds a currency to the catalogue. It fails if the currency is
// invalid or if its network identifier is already taken.
func (c *Catalogue) Register(currency Currency) error {
	if !currency.Valid() {
		return fmt.Errorf("invalid currency (code: %s)", currency.Code)
	}
	_, ok := c.currencies[currency.Code]
	if ok {
		return fmt.Errorf("duplicate currency code (%s)", currency.Code)
	}

	c.currencies[currency.Code] = currency

	return nil
}

// Lookup returns the currency registered under the given network
// identifier.
func (c *Catalogue) Lookup(code string) (Currency, bool) {
	currency, ok := c.currencies[code]
	return currency, ok
}

// Codes returns the sorted network identifiers of all registered
// currencies.
func (c *Catalogue) Codes() []string {
	codes := make([]string, 0, len(c.currencies))
	for code := range c.currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Default returns a catalogue seeded with the currencies the engine is
// commonly used with.
func Default() *Catalogue {

	ethereum := CoinNetwork{
		NativeTicker:  "ETH",
		ChainID:       1,
		FeeCurrencies: []string{"ETH"},
		SupportsMemo:  false,
	}

	catalogue := NewCatalogue()
	for _, currency := range []Currency{
		mustCrypto("BTC", "₿", "Bitcoin", 8),
		mustCrypto("ETH", "Ξ", "Ethereum", 18, WithNetwork(ethereum)),
		mustCrypto("USDT", "₮", "Tether", 6,
			WithNetwork(ethereum),
			WithContract("0xdac17f958d2ee523a2206206994597c13d831ec7"),
		),
		mustCrypto("USDC", "USDC", "USD Coin", 6,
			WithNetwork(ethereum),
			WithContract("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"),
		),
		mustFiat("USD", "$", "US Dollar", 2),
		mustFiat("EUR", "€", "Euro", 2),
		mustFiat("GBP", "£", "Pound Sterling", 2),
		mustFiat("JPY", "¥", "Yen", 0),
	} {
		err := catalogue.Register(currency)
		if err != nil {
			panic(err)
		}
	}

	return catalogue
}

func mustCrypto(code string, symbol string, name string, precision int32, options ...CurrencyOption) Currency {
	currency, err := NewCrypto(code, symbol, name, precision, options...)
	if err != nil {
		panic(err)
	}
	return currency
}

func mustFiat(code string, symbol string, name string, precision int32) Currency {
	currency, err := NewFiat(code, symbol, name, precision)
	if err != nil {
		panic(err)
	}
	return currency
}
