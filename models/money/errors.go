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
	"errors"
)

var (
	// ErrCurrencyMismatch indicates arithmetic or conversion across two
	// different currencies. This is always a programming error and is never
	// silently coerced.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrUnknownCurrency indicates a currency descriptor that is neither a
	// recognized crypto nor fiat variant.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownValue indicates an operation that has no meaningful result
	// on the unknown sentinel amount.
	ErrUnknownValue = errors.New("unknown monetary value")

	// ErrDivisionByZero indicates a division by a zero amount.
	ErrDivisionByZero = errors.New("division by zero amount")
)
