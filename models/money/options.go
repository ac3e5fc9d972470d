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
	"time"
)

// CurrencyOption is an option that can be given to the crypto currency
// constructor to set optional descriptor fields.
type CurrencyOption func(*Currency)

// WithCategories sets the trading categories of the currency.
func WithCategories(categories Category) CurrencyOption {
	return func(c *Currency) {
		c.Categories = categories
	}
}

// WithStartDate sets the date from which historical charting data is
// available for the currency.
func WithStartDate(start time.Time) CurrencyOption {
	return func(c *Currency) {
		c.StartDate = start
	}
}

// WithNetwork sets the coin network descriptor of the currency.
func WithNetwork(network CoinNetwork) CurrencyOption {
	return func(c *Currency) {
		c.Network = &network
	}
}

// WithContract sets the contract identifier for token assets that share
// their settlement network with other currencies.
func WithContract(contract string) CurrencyOption {
	return func(c *Currency) {
		c.Contract = contract
	}
}
