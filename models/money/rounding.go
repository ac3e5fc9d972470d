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

// RoundingMode selects how a decimal value is scaled down to a target
// number of fraction digits.
type RoundingMode uint8

// The following is an enumeration of all supported rounding modes.
const (
	RoundDown RoundingMode = iota + 1
	RoundUp
	RoundHalfUp
	RoundHalfEven
)

// String implements the Stringer interface.
func (m RoundingMode) String() string {
	switch m {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundHalfUp:
		return "half-up"
	case RoundHalfEven:
		return "half-even"
	default:
		return fmt.Sprintf("invalid rounding mode %d", m)
	}
}

// apply scales the given decimal to the given number of fraction digits
// using the rounding mode. Unknown modes fall back to rounding down, which
// never overstates a value.
func (m RoundingMode) apply(d decimal.Decimal, places int32) decimal.Decimal {
	switch m {
	case RoundUp:
		return d.RoundUp(places)
	case RoundHalfUp:
		return d.Round(places)
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundDown:
		return d.RoundDown(places)
	default:
		return d.RoundDown(places)
	}
}
