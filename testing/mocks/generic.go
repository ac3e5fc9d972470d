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
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

// Global variables that can be used for testing. They are valid values for
// the types commonly needed to test engine components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericAsset = mustCurrency(money.NewCrypto("TKN", "TKN", "Generic Token", 8,
		money.WithContract("0x00000000000000000000000000000000000000aa"),
	))

	GenericFeeCurrency = mustCurrency(money.NewCrypto("ETH", "Ξ", "Ethereum", 18))

	GenericFiat = mustCurrency(money.NewFiat("USD", "$", "US Dollar", 2))

	GenericAccount = transfer.Account{
		Address: "0x1111111111111111111111111111111111111111",
		Label:   "Main Wallet",
		Asset:   GenericAsset,
	}

	GenericTarget = transfer.Target{
		Address: "0x2222222222222222222222222222222222222222",
		Label:   "Recipient",
	}

	GenericHotWallet = "0x3333333333333333333333333333333333333333"

	GenericRates = []money.ExchangeRate{
		money.NewRate(GenericAsset, GenericFiat, decimal.NewFromInt(2)),
		money.NewRate(GenericFeeCurrency, GenericFiat, decimal.NewFromInt(1800)),
	}

	GenericFeeOptions = transfer.FeeOptions{
		GasLimit:         21_000,
		GasLimitContract: 65_000,
		RegularFee:       2,
		PriorityFee:      5,
	}
)

// GenericAmount returns the given number of major units of the generic
// asset.
func GenericAmount(major int64) money.Money {
	amount, err := money.FromMajor(GenericAsset, decimal.NewFromInt(major))
	if err != nil {
		panic(err)
	}
	return amount
}

// GenericBalance returns a balance snapshot of the generic asset with the
// given total and withdrawable major units.
func GenericBalance(total int64, withdrawable int64) transfer.AccountBalance {
	return transfer.AccountBalance{
		Total:        GenericAmount(total),
		Withdrawable: GenericAmount(withdrawable),
		Pending:      money.Zero(GenericAsset),
		Rate:         GenericRates[0],
	}
}

func mustCurrency(currency money.Currency, err error) money.Currency {
	if err != nil {
		panic(err)
	}
	return currency
}
