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
	"context"
	"math/big"

	"github.com/frikke/wallet-engine/models/money"
)

// Account identifies a source of funds for one asset on one chain.
type Account struct {
	Address string         `json:"address"`
	Label   string         `json:"label,omitempty"`
	Asset   money.Currency `json:"asset"`
}

// Target identifies the recipient of a transfer.
type Target struct {
	Address string `json:"address"`
	Label   string `json:"label,omitempty"`
	Memo    string `json:"memo,omitempty"`
}

// AccountBalance is a snapshot of an account's funds, together with the
// rate into the user's selected fiat at the time of the snapshot.
type AccountBalance struct {
	Total        money.Money        `json:"total"`
	Withdrawable money.Money        `json:"withdrawable"`
	Pending      money.Money        `json:"pending"`
	Rate         money.ExchangeRate `json:"-"`
}

// FeeOptions are the chain parameters a concrete engine computes fees
// from. They are fetched once per engine session and treated as immutable
// for that session. Prices are expressed in minor units of the chain's
// native fee currency, per gas unit.
type FeeOptions struct {
	GasLimit         uint64   `json:"gas_limit"`
	GasLimitContract uint64   `json:"gas_limit_contract"`
	RegularFee       uint64   `json:"regular_fee"`
	PriorityFee      uint64   `json:"priority_fee"`
	MinAmount        *big.Int `json:"min_amount,omitempty"`
	MaxAmount        *big.Int `json:"max_amount,omitempty"`
}

// BalanceProvider returns balance snapshots for an account.
type BalanceProvider interface {
	Balance(ctx context.Context, account Account) (AccountBalance, error)
}

// FeeDataProvider returns the chain fee parameters for an asset.
type FeeDataProvider interface {
	FeeOptions(ctx context.Context, asset money.Currency) (FeeOptions, error)
}

// Broadcaster assigns nonces and submits signed payloads to the chain.
type Broadcaster interface {
	Nonce(ctx context.Context, address string) (uint64, error)
	Broadcast(ctx context.Context, payload []byte) (string, error)
}

// FeeLevelStore persists the last fee level a user selected per asset.
type FeeLevelStore interface {
	Get(asset money.Currency) FeeLevel
	Set(asset money.Currency, level FeeLevel) error
}
