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

package engine

import (
	"fmt"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

// Flow is the shared state of one transfer lifecycle. Concrete engines
// embed it to get the one-flow-per-instance rule and the status
// transitions of the contract for free. The zero value is ready to use.
type Flow struct {
	source  transfer.Account
	target  transfer.Target
	rates   []money.ExchangeRate
	started bool
	status  Status
}

// Start binds the flow to a source account, a target and the exchange
// rates known at the time. It fails on a second call.
func (f *Flow) Start(source transfer.Account, target transfer.Target, rates []money.ExchangeRate) error {
	if f.started {
		return ErrAlreadyStarted
	}
	if target.Address == "" {
		return fmt.Errorf("missing target address")
	}

	f.source = source
	f.target = target
	f.rates = rates
	f.started = true

	return nil
}

// Started returns true once the flow has been bound.
func (f *Flow) Started() bool {
	return f.started
}

// Source returns the source account of the flow.
func (f *Flow) Source() transfer.Account {
	return f.source
}

// Target returns the target of the flow.
func (f *Flow) Target() transfer.Target {
	return f.target
}

// Rate returns the exchange rate between the given currencies, or an
// unknown rate if none was provided at start.
func (f *Flow) Rate(from money.Currency, to money.Currency) money.ExchangeRate {
	for _, rate := range f.rates {
		if rate.From().Equal(from) && rate.To().Equal(to) {
			return rate
		}
	}
	return money.UnknownRate(from, to)
}

// RateTo returns the exchange rate from the source asset into the given
// currency.
func (f *Flow) RateTo(currency money.Currency) money.ExchangeRate {
	return f.Rate(f.source.Asset, currency)
}

// Fiat returns the fiat currency the caller wants amounts mirrored in,
// derived from the exchange rates provided at start. It is the zero
// currency when no fiat rate was provided.
func (f *Flow) Fiat() money.Currency {
	for _, rate := range f.rates {
		if rate.To().IsFiat() {
			return rate.To()
		}
	}
	return money.Currency{}
}

// Status returns the current lifecycle status of the flow.
func (f *Flow) Status() Status {
	if f.status == 0 {
		return StatusUninitialised
	}
	return f.status
}

// Advance moves the flow to the given status. It fails if the lifecycle
// does not allow the transition.
func (f *Flow) Advance(to Status) error {
	from := f.Status()
	if !canTransition(from, to) {
		return fmt.Errorf("%w (from: %s, to: %s)", ErrInvalidStatus, from, to)
	}
	f.status = to
	return nil
}

// Require fails unless the flow is started and currently in one of the
// given statuses.
func (f *Flow) Require(statuses ...Status) error {
	if !f.started {
		return ErrNotStarted
	}
	current := f.Status()
	for _, status := range statuses {
		if current == status {
			return nil
		}
	}
	return fmt.Errorf("%w (status: %s)", ErrInvalidStatus, current)
}
