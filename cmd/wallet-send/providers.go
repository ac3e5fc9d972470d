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

package main

import (
	"context"
	"errors"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

// staticBalances serves a fixed balance snapshot supplied on the command
// line.
type staticBalances struct {
	balance transfer.AccountBalance
}

func (s *staticBalances) Balance(_ context.Context, _ transfer.Account) (transfer.AccountBalance, error) {
	return s.balance, nil
}

// staticFeeData serves fixed chain fee parameters supplied on the command
// line.
type staticFeeData struct {
	opts transfer.FeeOptions
}

func (s *staticFeeData) FeeOptions(_ context.Context, _ money.Currency) (transfer.FeeOptions, error) {
	return s.opts, nil
}

// dryRunBroadcaster refuses to touch the chain; the command only quotes
// fees.
type dryRunBroadcaster struct{}

func (dryRunBroadcaster) Nonce(_ context.Context, _ string) (uint64, error) {
	return 0, errors.New("broadcast not available in dry run")
}

func (dryRunBroadcaster) Broadcast(_ context.Context, _ []byte) (string, error) {
	return "", errors.New("broadcast not available in dry run")
}
