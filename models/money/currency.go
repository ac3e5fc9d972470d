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
	"time"
)

// Kind discriminates the two closed variants of a currency. Dispatching on
// the kind is exhaustive; there is deliberately no open hierarchy.
type Kind uint8

// The following is an enumeration of all possible currency kinds.
const (
	KindCrypto Kind = iota + 1
	KindFiat
)

// String implements the Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindCrypto:
		return "crypto"
	case KindFiat:
		return "fiat"
	default:
		return fmt.Sprintf("invalid kind %d", k)
	}
}

// Category is a set of trading categories a currency can belong to.
type Category uint8

// The following is an enumeration of all currency categories. Categories
// combine as a bitmask.
const (
	CategoryTrading Category = 1 << iota
	CategoryCustodial
	CategoryNonCustodial
	CategoryDelegated
)

// Has returns true if the given category is part of the set.
func (c Category) Has(category Category) bool {
	return c&category != 0
}

// CoinNetwork describes the chain a crypto currency settles on.
type CoinNetwork struct {
	NativeTicker  string   `json:"native_ticker"`
	ChainID       uint64   `json:"chain_id"`
	FeeCurrencies []string `json:"fee_currencies"`
	SupportsMemo  bool     `json:"supports_memo"`
}

// Currency is the immutable descriptor of a tradeable unit. The zero value
// is invalid; currencies are built through NewCrypto and NewFiat, which
// enforce the invariants on code and precision.
type Currency struct {
	Kind       Kind         `json:"kind"`
	Code       string       `json:"code"`
	Symbol     string       `json:"symbol"`
	Name       string       `json:"name"`
	Categories Category     `json:"categories,omitempty"`
	Precision  int32        `json:"precision"`
	StartDate  time.Time    `json:"start_date,omitempty"`
	Network    *CoinNetwork `json:"network,omitempty"`

	// Contract disambiguates token assets that share a network with other
	// currencies. Empty for native assets and fiat.
	Contract string `json:"contract,omitempty"`
}

// NewCrypto creates a crypto currency descriptor with the given network
// identifier, display symbol, human-readable name and decimal precision.
func NewCrypto(code string, symbol string, name string, precision int32, options ...CurrencyOption) (Currency, error) {
	if code == "" {
		return Currency{}, fmt.Errorf("missing currency code")
	}
	if precision < 0 {
		return Currency{}, fmt.Errorf("invalid currency precision (%d)", precision)
	}

	c := Currency{
		Kind:      KindCrypto,
		Code:      code,
		Symbol:    symbol,
		Name:      name,
		Precision: precision,
	}
	for _, option := range options {
		option(&c)
	}

	return c, nil
}

// NewFiat creates a fiat currency descriptor with the given ISO code,
// display symbol, human-readable name and official fraction digits.
func NewFiat(code string, symbol string, name string, precision int32) (Currency, error) {
	if code == "" {
		return Currency{}, fmt.Errorf("missing currency code")
	}
	if precision < 0 {
		return Currency{}, fmt.Errorf("invalid currency precision (%d)", precision)
	}

	c := Currency{
		Kind:      KindFiat,
		Code:      code,
		Symbol:    symbol,
		Name:      name,
		Precision: precision,
	}

	return c, nil
}

// IsCrypto returns true if the currency is a crypto asset.
func (c Currency) IsCrypto() bool {
	return c.Kind == KindCrypto
}

// IsFiat returns true if the currency is a fiat currency.
func (c Currency) IsFiat() bool {
	return c.Kind == KindFiat
}

// Equal returns true if both currencies identify the same tradeable unit.
// The network identifier is authoritative within a kind, so a crypto asset
// never equals a fiat currency sharing its code; token assets additionally
// need a matching contract.
func (c Currency) Equal(other Currency) bool {
	if c.Kind != other.Kind {
		return false
	}
	if c.Code != other.Code {
		return false
	}
	return c.Contract == other.Contract
}

// Valid returns true if the currency was built through one of the
// constructors.
func (c Currency) Valid() bool {
	return (c.Kind == KindCrypto || c.Kind == KindFiat) && c.Code != "" && c.Precision >= 0
}
