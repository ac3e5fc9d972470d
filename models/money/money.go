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
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount of exactly one currency. Crypto amounts are
// held as scaled integers in the asset's minor unit, fiat amounts as
// decimals in major units scaled to the currency's fraction digits, so no
// binary floating-point error can enter the representation. All operations
// return new values; a Money is never mutated in place.
//
// A Money can also be the unknown sentinel for its currency, which is how
// conversions through an unknown exchange rate are reported. Addition and
// subtraction propagate the sentinel instead of failing, so that callers
// can keep composing amounts and render a placeholder at the end.
type Money struct {
	currency Currency
	units    *big.Int
	value    decimal.Decimal
	unknown  bool
}

// Zero returns the zero amount of the given currency. It is the identity
// element of addition.
func Zero(currency Currency) Money {
	return Money{
		currency: currency,
		units:    big.NewInt(0),
	}
}

// Unknown returns the unknown sentinel amount of the given currency.
func Unknown(currency Currency) Money {
	return Money{
		currency: currency,
		units:    big.NewInt(0),
		unknown:  true,
	}
}

// FromMajor creates an amount of the given currency from a decimal value
// in major units. The value is scaled down to the currency's precision,
// always rounding down so that no more value is reported than is actually
// held.
func FromMajor(currency Currency, value decimal.Decimal) (Money, error) {
	switch currency.Kind {
	case KindCrypto:
		units := value.Shift(currency.Precision).BigInt()
		return Money{currency: currency, units: units}, nil
	case KindFiat:
		return Money{currency: currency, value: value.RoundDown(currency.Precision)}, nil
	default:
		return Money{}, fmt.Errorf("%w (code: %s)", ErrUnknownCurrency, currency.Code)
	}
}

// FromMinor creates an amount of the given currency from an integer number
// of minor units.
func FromMinor(currency Currency, units *big.Int) (Money, error) {
	switch currency.Kind {
	case KindCrypto:
		return Money{currency: currency, units: new(big.Int).Set(units)}, nil
	case KindFiat:
		value := decimal.NewFromBigInt(units, -currency.Precision)
		return Money{currency: currency, value: value}, nil
	default:
		return Money{}, fmt.Errorf("%w (code: %s)", ErrUnknownCurrency, currency.Code)
	}
}

// FromMinorInt is a convenience wrapper around FromMinor for amounts that
// fit into an int64.
func FromMinorInt(currency Currency, units int64) (Money, error) {
	return FromMinor(currency, big.NewInt(units))
}

// Currency returns the currency the amount is bound to.
func (m Money) Currency() Currency {
	return m.currency
}

// IsUnknown returns true if the amount is the unknown sentinel.
func (m Money) IsUnknown() bool {
	return m.unknown
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return !m.unknown && m.Sign() == 0
}

// Sign returns -1, 0 or 1 depending on the sign of the amount.
func (m Money) Sign() int {
	switch m.currency.Kind {
	case KindCrypto:
		return m.minor().Sign()
	default:
		return m.value.Sign()
	}
}

// Add returns the sum of both amounts. It fails if the operands are bound
// to different currencies.
func (m Money) Add(other Money) (Money, error) {
	err := m.checkCurrency(other)
	if err != nil {
		return Money{}, fmt.Errorf("could not add amounts: %w", err)
	}
	if m.unknown || other.unknown {
		return Unknown(m.currency), nil
	}

	switch m.currency.Kind {
	case KindCrypto:
		units := new(big.Int).Add(m.minor(), other.minor())
		return Money{currency: m.currency, units: units}, nil
	default:
		return Money{currency: m.currency, value: m.value.Add(other.value)}, nil
	}
}

// Subtract returns the difference of both amounts. It fails if the
// operands are bound to different currencies.
func (m Money) Subtract(other Money) (Money, error) {
	err := m.checkCurrency(other)
	if err != nil {
		return Money{}, fmt.Errorf("could not subtract amounts: %w", err)
	}
	if m.unknown || other.unknown {
		return Unknown(m.currency), nil
	}

	switch m.currency.Kind {
	case KindCrypto:
		units := new(big.Int).Sub(m.minor(), other.minor())
		return Money{currency: m.currency, units: units}, nil
	default:
		return Money{currency: m.currency, value: m.value.Sub(other.value)}, nil
	}
}

// Compare returns -1, 0 or 1 depending on whether the amount is smaller
// than, equal to or greater than the other amount. It fails if the
// operands are bound to different currencies or if either is the unknown
// sentinel.
func (m Money) Compare(other Money) (int, error) {
	err := m.checkCurrency(other)
	if err != nil {
		return 0, fmt.Errorf("could not compare amounts: %w", err)
	}
	if m.unknown || other.unknown {
		return 0, ErrUnknownValue
	}

	switch m.currency.Kind {
	case KindCrypto:
		return m.minor().Cmp(other.minor()), nil
	default:
		return m.value.Cmp(other.value), nil
	}
}

// Divide returns the quotient of both amounts, expressed in the shared
// currency and truncated to its precision. It fails if the operands are
// bound to different currencies or if the divisor is zero.
func (m Money) Divide(other Money) (Money, error) {
	err := m.checkCurrency(other)
	if err != nil {
		return Money{}, fmt.Errorf("could not divide amounts: %w", err)
	}
	if m.unknown || other.unknown {
		return Unknown(m.currency), nil
	}
	if other.Sign() == 0 {
		return Money{}, ErrDivisionByZero
	}

	// Carry a few guard digits through the division before quantizing down
	// to the currency precision.
	quotient := m.ToMajor().DivRound(other.ToMajor(), m.currency.Precision+4)
	return FromMajor(m.currency, quotient.RoundDown(m.currency.Precision))
}

// Multiply scales the amount by the given decimal factor. The result is
// re-quantized to the currency's precision, rounding down.
func (m Money) Multiply(factor decimal.Decimal) Money {
	if m.unknown {
		return Unknown(m.currency)
	}

	switch m.currency.Kind {
	case KindCrypto:
		units := decimal.NewFromBigInt(m.minor(), 0).Mul(factor).BigInt()
		return Money{currency: m.currency, units: units}
	default:
		return Money{currency: m.currency, value: m.value.Mul(factor).RoundDown(m.currency.Precision)}
	}
}

// MultiplyFloat scales the amount by the given floating-point factor. The
// factor goes through a binary-to-decimal conversion first, which can
// carry a tiny representational error; use Multiply with a decimal factor
// wherever the multiplier is exact.
func (m Money) MultiplyFloat(factor float64) Money {
	return m.Multiply(decimal.NewFromFloat(factor))
}

// ToMinor returns the amount as an integer number of minor units. The
// returned value is an independent copy.
func (m Money) ToMinor() *big.Int {
	switch m.currency.Kind {
	case KindCrypto:
		return new(big.Int).Set(m.minor())
	default:
		return m.value.Shift(m.currency.Precision).BigInt()
	}
}

// ToMajor returns the amount as a decimal value in major units.
func (m Money) ToMajor() decimal.Decimal {
	switch m.currency.Kind {
	case KindCrypto:
		return decimal.NewFromBigInt(m.minor(), -m.currency.Precision)
	default:
		return m.value
	}
}

// Equals returns true if both values are bound to the same currency and
// hold the same amount, with unknown sentinels only equal to each other.
func (m Money) Equals(other Money) bool {
	if !m.currency.Equal(other.currency) {
		return false
	}
	if m.unknown || other.unknown {
		return m.unknown == other.unknown
	}
	cmp, err := m.Compare(other)
	return err == nil && cmp == 0
}

// StringWithSymbol renders the amount for display, including the currency
// symbol. Fiat symbols prefix the amount, crypto tickers follow it. If
// trimWhole is set, whole numbers are rendered without fraction digits.
func (m Money) StringWithSymbol(trimWhole bool) string {
	if m.unknown {
		return "--"
	}

	amount := m.format(trimWhole)
	symbol := m.currency.Symbol
	if symbol == "" {
		symbol = m.currency.Code
	}
	if m.currency.IsFiat() {
		if strings.HasPrefix(amount, "-") {
			return "-" + symbol + strings.TrimPrefix(amount, "-")
		}
		return symbol + amount
	}
	return amount + " " + symbol
}

// StringWithoutSymbol renders the amount for display without any currency
// indication. If trimWhole is set, whole numbers are rendered without
// fraction digits.
func (m Money) StringWithoutSymbol(trimWhole bool) string {
	if m.unknown {
		return "--"
	}
	return m.format(trimWhole)
}

// NetworkString renders the amount in the canonical machine format used on
// the wire: major units, '.' as decimal separator, no grouping separators
// and no trailing zeros.
func (m Money) NetworkString() string {
	return m.ToMajor().String()
}

// String implements the Stringer interface.
func (m Money) String() string {
	if m.unknown {
		return fmt.Sprintf("unknown %s", m.currency.Code)
	}
	return fmt.Sprintf("%s %s", m.NetworkString(), m.currency.Code)
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	enc := moneyEncoding{
		Currency: m.currency,
		Amount:   m.ToMajor().String(),
		Unknown:  m.unknown,
	}
	return json.Marshal(enc)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	var enc moneyEncoding
	err := json.Unmarshal(data, &enc)
	if err != nil {
		return fmt.Errorf("could not decode money: %w", err)
	}

	if enc.Unknown {
		*m = Unknown(enc.Currency)
		return nil
	}

	value, err := decimal.NewFromString(enc.Amount)
	if err != nil {
		return fmt.Errorf("could not parse money amount: %w", err)
	}
	decoded, err := FromMajor(enc.Currency, value)
	if err != nil {
		return fmt.Errorf("could not restore money amount: %w", err)
	}

	*m = decoded
	return nil
}

type moneyEncoding struct {
	Currency Currency `json:"currency"`
	Amount   string   `json:"amount"`
	Unknown  bool     `json:"unknown,omitempty"`
}

func (m Money) checkCurrency(other Money) error {
	if !m.currency.Equal(other.currency) {
		return fmt.Errorf("%w (have: %s, want: %s)", ErrCurrencyMismatch, other.currency.Code, m.currency.Code)
	}
	return nil
}

// minor tolerates values constructed without going through a factory, so
// that the zero Money does not panic on inspection.
func (m Money) minor() *big.Int {
	if m.units == nil {
		return big.NewInt(0)
	}
	return m.units
}

// format renders the major-unit amount with fixed fraction digits and
// thousands grouping. The canonical ungrouped form is NetworkString.
func (m Money) format(trimWhole bool) string {
	major := m.ToMajor()

	var rendered string
	if trimWhole && major.Equal(major.Truncate(0)) {
		rendered = major.Truncate(0).String()
	} else {
		rendered = major.StringFixed(m.currency.Precision)
	}

	negative := strings.HasPrefix(rendered, "-")
	rendered = strings.TrimPrefix(rendered, "-")
	parts := strings.SplitN(rendered, ".", 2)
	grouped := groupThousands(parts[0])
	if len(parts) == 2 {
		grouped = grouped + "." + parts[1]
	}
	if negative {
		grouped = "-" + grouped
	}
	return grouped
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
