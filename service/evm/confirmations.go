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

package evm

import (
	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

// confirmations builds the confirmation lines a caller renders before
// executing the transfer. Fiat mirrors go through the exchange rates the
// flow was started with; an unknown rate renders as a placeholder rather
// than being dropped.
func (e *Engine) confirmations(ptx transfer.PendingTx) []transfer.Confirmation {

	source := e.Source()
	target := e.Target()

	from := source.Label
	if from == "" {
		from = source.Address
	}
	to := target.Label
	if to == "" {
		to = target.Address
	}

	lines := []transfer.Confirmation{
		{Label: "From", Value: from},
		{Label: "To", Value: to},
		{Label: "Amount", Value: ptx.Amount.StringWithSymbol(true)},
		{Label: "Network fee", Value: ptx.Fee.StringWithSymbol(true)},
	}

	fiat := ptx.SelectedFiat
	if !fiat.Valid() {
		return lines
	}

	amountFiat, err := e.RateTo(fiat).ConvertRounded(ptx.Amount, money.RoundDown)
	if err == nil {
		lines = append(lines, transfer.Confirmation{
			Label: "Value",
			Value: amountFiat.StringWithSymbol(false),
		})
	}
	feeFiat, err := e.Rate(ptx.Fee.Currency(), fiat).ConvertRounded(ptx.Fee, money.RoundDown)
	if err == nil {
		lines = append(lines, transfer.Confirmation{
			Label: "Fee value",
			Value: feeFiat.StringWithSymbol(false),
		})
	}

	return lines
}
