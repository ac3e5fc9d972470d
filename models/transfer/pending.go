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

package transfer

import (
	"fmt"

	"github.com/frikke/wallet-engine/models/money"
)

// ValidationState is the business-rule verdict on a pending transaction.
// Rule violations are data, not errors: callers branch on the state to
// decide what to render, and only programming errors surface as failures.
type ValidationState uint8

// The following is an enumeration of all possible validation states.
const (
	ValidationUninitialised ValidationState = iota + 1
	ValidationCanExecute
	ValidationInsufficientFunds
	ValidationBelowMinLimit
	ValidationOverMaxLimit
	ValidationInvalidAmount
)

// String implements the Stringer interface.
func (v ValidationState) String() string {
	switch v {
	case ValidationUninitialised:
		return "uninitialised"
	case ValidationCanExecute:
		return "can_execute"
	case ValidationInsufficientFunds:
		return "insufficient_funds"
	case ValidationBelowMinLimit:
		return "below_min_limit"
	case ValidationOverMaxLimit:
		return "over_max_limit"
	case ValidationInvalidAmount:
		return "invalid_amount"
	default:
		return fmt.Sprintf("invalid validation state %d", v)
	}
}

// FeeSelection captures the fee choice of a pending transaction: the
// selected level, the levels the engine makes available, the computed fee
// per level and an optional custom amount.
type FeeSelection struct {
	Selected  FeeLevel                 `json:"selected"`
	Available Levels                   `json:"available"`
	Fees      map[FeeLevel]money.Money `json:"fees,omitempty"`
	Asset     money.Currency           `json:"asset"`
	Custom    *money.Money             `json:"custom,omitempty"`
}

// Limits bound the amount of a single transfer. The flags distinguish an
// absent bound from a legitimate zero bound.
type Limits struct {
	Min    money.Money `json:"min,omitempty"`
	Max    money.Money `json:"max,omitempty"`
	HasMin bool        `json:"has_min"`
	HasMax bool        `json:"has_max"`
}

// Confirmation is one line of the confirmation screen a caller renders
// before executing the transfer.
type Confirmation struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PendingTx accumulates the state of a single transaction under
// construction. It is mutated only by replacement: every lifecycle
// operation returns a fresh copy, so two snapshots never share mutable
// state. The value is plain and serializable; it is everything a caller
// needs to render a confirmation screen.
type PendingTx struct {
	ID                  string                 `json:"id"`
	Amount              money.Money            `json:"amount"`
	Total               money.Money            `json:"total"`
	Available           money.Money            `json:"available"`
	Fee                 money.Money            `json:"fee"`
	FeeForFullAvailable money.Money            `json:"fee_for_full_available"`
	Selection           FeeSelection           `json:"selection"`
	SelectedFiat        money.Currency         `json:"selected_fiat"`
	Confirmations       []Confirmation         `json:"confirmations,omitempty"`
	Limits              Limits                 `json:"limits"`
	State               ValidationState        `json:"state"`
	Engine              map[string]interface{} `json:"engine,omitempty"`
}

// Copy returns a deep copy of the pending transaction, so that derived
// snapshots never alias the confirmations, fees or engine scratch of the
// original.
func (p PendingTx) Copy() PendingTx {
	dup := p

	if p.Confirmations != nil {
		dup.Confirmations = make([]Confirmation, len(p.Confirmations))
		copy(dup.Confirmations, p.Confirmations)
	}
	if p.Selection.Available != nil {
		dup.Selection.Available = make(Levels, len(p.Selection.Available))
		copy(dup.Selection.Available, p.Selection.Available)
	}
	if p.Selection.Fees != nil {
		dup.Selection.Fees = make(map[FeeLevel]money.Money, len(p.Selection.Fees))
		for level, fee := range p.Selection.Fees {
			dup.Selection.Fees[level] = fee
		}
	}
	if p.Engine != nil {
		dup.Engine = make(map[string]interface{}, len(p.Engine))
		for key, val := range p.Engine {
			dup.Engine[key] = val
		}
	}

	return dup
}

// WithAmount returns a copy of the pending transaction with the given
// amount.
func (p PendingTx) WithAmount(amount money.Money) PendingTx {
	dup := p.Copy()
	dup.Amount = amount
	return dup
}

// WithState returns a copy of the pending transaction with the given
// validation state.
func (p PendingTx) WithState(state ValidationState) PendingTx {
	dup := p.Copy()
	dup.State = state
	return dup
}

// WithSelection returns a copy of the pending transaction with the given
// fee selection.
func (p PendingTx) WithSelection(selection FeeSelection) PendingTx {
	dup := p.Copy()
	dup.Selection = selection
	return dup
}

// WithConfirmations returns a copy of the pending transaction with the
// given confirmation lines.
func (p PendingTx) WithConfirmations(confirmations []Confirmation) PendingTx {
	dup := p.Copy()
	dup.Confirmations = confirmations
	return dup
}
