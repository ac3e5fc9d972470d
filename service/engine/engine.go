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

// Package engine defines the lifecycle contract that every concrete
// transfer engine implements. An engine instance owns exactly one transfer
// flow: it is bound to a source and target once, produces an initial
// pending transaction, reshapes it through amount and fee-level updates,
// validates it and finally executes it. Every operation is a pure function
// from the previous pending transaction to a new one, so concurrent
// callers never share mutable state through the engine.
package engine

import (
	"context"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

// Result is the terminal outcome of an executed transfer.
type Result struct {
	TxHash string `json:"tx_hash"`
}

// Engine drives a single source-to-target transfer through its lifecycle.
// Implementations compute fees and validation rules specific to their
// chain family. Engines never retry failed collaborator calls; retry and
// backoff policy stays with the caller.
type Engine interface {

	// Start binds the engine to one transfer flow. It can be called once
	// per instance; a second call fails.
	Start(source transfer.Account, target transfer.Target, rates []money.ExchangeRate) error

	// InitialiseTx produces the initial pending transaction, with all
	// monetary fields zeroed in the source currency and the engine's
	// persisted default fee level selected.
	InitialiseTx(ctx context.Context) (transfer.PendingTx, error)

	// UpdateAmount recomputes the balance and fee fields for the given
	// amount and returns a new pending transaction.
	UpdateAmount(ctx context.Context, amount money.Money, ptx transfer.PendingTx) (transfer.PendingTx, error)

	// UpdateFeeLevel moves the pending transaction to a new fee level. It
	// fails if the level is not available on this engine, and persists the
	// chosen level for the asset on success.
	UpdateFeeLevel(ctx context.Context, ptx transfer.PendingTx, level transfer.FeeLevel, custom *money.Money) (transfer.PendingTx, error)

	// Validate checks the amount against the available balance and the
	// transfer limits, and records the verdict in the returned pending
	// transaction's validation state. Rule violations are data, never
	// errors.
	Validate(ctx context.Context, ptx transfer.PendingTx) (transfer.PendingTx, error)

	// Execute hands the validated pending transaction to the chain
	// collaborators for signing and broadcast.
	Execute(ctx context.Context, ptx transfer.PendingTx) (Result, error)
}
