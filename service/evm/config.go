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

// Config contains the configurable parameters of the token transfer
// engine.
type Config struct {
	HotWallet         string
	HotWalletExtraGas uint64
}

// DefaultConfig is the default configuration for the token transfer
// engine: transfers route directly to the recipient and the hot-wallet
// surcharge only applies once a hot wallet is configured.
var DefaultConfig = Config{
	HotWallet:         "",
	HotWalletExtraGas: 15_000,
}
