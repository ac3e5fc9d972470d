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

	"github.com/shopspring/decimal"
)

// ExchangeRate is a directed conversion factor between two currencies. A
// rate can be unknown, in which case conversions yield the unknown
// sentinel amount instead of failing, so that callers can render a
// placeholder while a rate is unavailable.
type ExchangeRate struct {
	from  Currency
	to    Currency
	rate  decimal.Decimal
	known bool
}

// NewRate creates a known exchange rate converting amounts of the from
// currency into amounts of the to currency.
func NewRate(from Currency, to Currency, rate decimal.Decimal) ExchangeRate {
	return ExchangeRate{
		from:  from,
		to:    to,
		rate:  rate,
		known: true,
	}
}

// UnknownRate creates an exchange rate whose value is not available.
func UnknownRate(from Currency, to Currency) ExchangeRate {
	return ExchangeRate{
		from: from,
		to:   to,
	}
}

// Identity returns the rate that converts a currency into itself.
func Identity(currency Currency) ExchangeRate {
	return NewRate(currency, currency, decimal.NewFromInt(1))
}

// From returns the source currency of the rate.
func (r ExchangeRate) From() Currency {
	return r.from
}

// To returns the target currency of the rate.
func (r ExchangeRate) To() Currency {
	return r.to
}

// Rate returns the conversion factor and whether it is known.
func (r ExchangeRate) Rate() (decimal.Decimal, bool) {
	return r.rate, r.known
}

// Convert converts the given amount of the source currency into an amount
// of the target currency at full precision. It fails if the amount is not
// bound to the source currency. An unknown rate or an unknown input yields
// the unknown sentinel of the target currency.
func (r ExchangeRate) Convert(m Money) (Money, error) {
	if !m.Currency().Equal(r.from) {
		return Money{}, fmt.Errorf("%w (have: %s, want: %s)", ErrCurrencyMismatch, m.Currency().Code, r.from.Code)
	}
	if !r.known || m.IsUnknown() {
		return Unknown(r.to), nil
	}

	product := m.ToMajor().Mul(r.rate)
	switch r.to.Kind {
	case KindCrypto:
		// Amounts below the minor unit cannot be represented; round down.
		return Money{currency: r.to, units: product.Shift(r.to.Precision).BigInt()}, nil
	case KindFiat:
		return Money{currency: r.to, value: product}, nil
	default:
		return Money{}, fmt.Errorf("%w (code: %s)", ErrUnknownCurrency, r.to.Code)
	}
}

// ConvertRounded converts the given amount and scales the result to the
// target currency's precision with the given rounding mode.
func (r ExchangeRate) ConvertRounded(m Money, mode RoundingMode) (Money, error) {
	converted, err := r.Convert(m)
	if err != nil {
		return Money{}, err
	}
	if converted.IsUnknown() {
		return converted, nil
	}
	return FromMajor(r.to, mode.apply(converted.ToMajor(), r.to.Precision))
}

// Inverse returns the rate converting in the opposite direction, with its
// value scaled to the given number of fraction digits using the given
// rounding mode. A negative scale selects the default of the sum of both
// currencies' precisions, which keeps a double inversion close to the
// original rate. Inverting a zero or unknown rate yields a zero or unknown
// rate rather than a division failure.
func (r ExchangeRate) Inverse(mode RoundingMode, scale int32) ExchangeRate {
	if !r.known {
		return UnknownRate(r.to, r.from)
	}
	if r.rate.IsZero() {
		return NewRate(r.to, r.from, decimal.Decimal{})
	}

	if scale < 0 {
		scale = r.from.Precision + r.to.Precision
	}

	// Guard digits keep the final rounding mode in charge of the result.
	raw := decimal.NewFromInt(1).DivRound(r.rate, scale+4)
	return NewRate(r.to, r.from, mode.apply(raw, scale))
}

// Equal returns true if both rates convert between the same currencies
// with the same factor.
func (r ExchangeRate) Equal(other ExchangeRate) bool {
	if !r.from.Equal(other.from) || !r.to.Equal(other.to) {
		return false
	}
	if r.known != other.known {
		return false
	}
	return !r.known || r.rate.Equal(other.rate)
}

// String implements the Stringer interface.
func (r ExchangeRate) String() string {
	if !r.known {
		return fmt.Sprintf("%s/%s (unknown)", r.from.Code, r.to.Code)
	}
	return fmt.Sprintf("%s/%s %s", r.from.Code, r.to.Code, r.rate.String())
}
