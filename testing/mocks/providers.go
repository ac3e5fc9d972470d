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

package mocks

import (
	"context"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

type BalanceProvider struct {
	BalanceFunc func(ctx context.Context, account transfer.Account) (transfer.AccountBalance, error)
}

func (b *BalanceProvider) Balance(ctx context.Context, account transfer.Account) (transfer.AccountBalance, error) {
	return b.BalanceFunc(ctx, account)
}

type FeeDataProvider struct {
	FeeOptionsFunc func(ctx context.Context, asset money.Currency) (transfer.FeeOptions, error)
}

func (f *FeeDataProvider) FeeOptions(ctx context.Context, asset money.Currency) (transfer.FeeOptions, error) {
	return f.FeeOptionsFunc(ctx, asset)
}

type Broadcaster struct {
	NonceFunc     func(ctx context.Context, address string) (uint64, error)
	BroadcastFunc func(ctx context.Context, payload []byte) (string, error)
}

func (b *Broadcaster) Nonce(ctx context.Context, address string) (uint64, error) {
	return b.NonceFunc(ctx, address)
}

func (b *Broadcaster) Broadcast(ctx context.Context, payload []byte) (string, error) {
	return b.BroadcastFunc(ctx, payload)
}

type FeeLevelStore struct {
	GetFunc func(asset money.Currency) transfer.FeeLevel
	SetFunc func(asset money.Currency, level transfer.FeeLevel) error
}

func (f *FeeLevelStore) Get(asset money.Currency) transfer.FeeLevel {
	return f.GetFunc(asset)
}

func (f *FeeLevelStore) Set(asset money.Currency, level transfer.FeeLevel) error {
	return f.SetFunc(asset, level)
}

type Codec struct {
	MarshalFunc   func(value interface{}) ([]byte, error)
	UnmarshalFunc func(data []byte, value interface{}) error
}

func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	return c.MarshalFunc(value)
}

func (c *Codec) Unmarshal(data []byte, value interface{}) error {
	return c.UnmarshalFunc(data, value)
}
