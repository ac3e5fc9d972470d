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
	"math/big"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

// Payload is the unsigned transaction handed to the signing and broadcast
// collaborators. When a transfer routes through a hot wallet, the payload
// carries both the hot-wallet address and the ultimate recipient; a direct
// transfer carries only the recipient.
type Payload struct {
	Nonce     uint64   `json:"nonce"`
	To        string   `json:"to"`
	HotWallet string   `json:"hot_wallet,omitempty"`
	Contract  string   `json:"contract,omitempty"`
	Amount    *big.Int `json:"amount"`
	GasLimit  uint64   `json:"gas_limit"`
	GasPrice  uint64   `json:"gas_price"`
	Memo      string   `json:"memo,omitempty"`
}

// buildPayload constructs the unsigned transaction for the given amount
// and fee parameters.
func (e *Engine) buildPayload(nonce uint64, amount money.Money, opts transfer.FeeOptions, level transfer.FeeLevel) (Payload, error) {
	price, err := priceForLevel(opts, level)
	if err != nil {
		return Payload{}, err
	}

	payload := Payload{
		Nonce:    nonce,
		To:       e.Target().Address,
		Contract: e.Source().Asset.Contract,
		Amount:   amount.ToMinor(),
		GasLimit: e.gasLimit(opts),
		GasPrice: price,
		Memo:     e.Target().Memo,
	}
	if e.cfg.HotWallet != "" {
		payload.HotWallet = e.cfg.HotWallet
	}

	return payload, nil
}
