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

// Option is an option that can be given to the engine constructor to
// change its configuration.
type Option func(*Config)

// WithHotWallet routes transfers through the given intermediary hot-wallet
// address instead of sending directly to the recipient. Routing through a
// hot wallet increases the contract-call gas allowance and encodes both
// addresses in the payload.
func WithHotWallet(address string) Option {
	return func(cfg *Config) {
		cfg.HotWallet = address
	}
}

// WithHotWalletExtraGas sets the fixed gas allowance added on top of the
// contract-call gas limit when routing through a hot wallet.
func WithHotWalletExtraGas(gas uint64) Option {
	return func(cfg *Config) {
		cfg.HotWalletExtraGas = gas
	}
}
