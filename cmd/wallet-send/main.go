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
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/frikke/wallet-engine/codec/canonical"
	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
	"github.com/frikke/wallet-engine/service/evm"
	"github.com/frikke/wallet-engine/service/preferences"
)

const (
	success = 0
	failure = 1
)

// Config collects the command line parameters of a dry-run fee quote.
type Config struct {
	Asset    string `validate:"required"`
	From     string `validate:"required"`
	To       string `validate:"required"`
	Amount   string `validate:"required"`
	FeeLevel string `validate:"omitempty,oneof=regular priority"`
	Fiat     string `validate:"required"`
}

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAsset     string
		flagFrom      string
		flagTo        string
		flagAmount    string
		flagFeeLevel  string
		flagFiat      string
		flagRate      string
		flagBalance   string
		flagAvailable string
		flagGas       uint64
		flagGasCall   uint64
		flagRegular   uint64
		flagPriority  uint64
		flagHotWallet string
		flagPrefs     string
		flagLevel     string
	)

	pflag.StringVarP(&flagAsset, "asset", "a", "USDT", "code of the asset to transfer")
	pflag.StringVarP(&flagFrom, "from", "f", "", "address of the source account")
	pflag.StringVarP(&flagTo, "to", "t", "", "address of the recipient")
	pflag.StringVarP(&flagAmount, "amount", "m", "", "amount to transfer, in major units")
	pflag.StringVar(&flagFeeLevel, "fee-level", "", "fee level to select (regular or priority)")
	pflag.StringVar(&flagFiat, "fiat", "USD", "fiat currency for value mirrors")
	pflag.StringVar(&flagRate, "rate", "", "exchange rate from asset to fiat")
	pflag.StringVar(&flagBalance, "balance", "0", "total account balance, in major units")
	pflag.StringVar(&flagAvailable, "available", "0", "withdrawable account balance, in major units")
	pflag.Uint64Var(&flagGas, "gas-limit", 21_000, "gas limit for a simple transfer")
	pflag.Uint64Var(&flagGasCall, "gas-limit-contract", 65_000, "gas limit for a contract call")
	pflag.Uint64Var(&flagRegular, "regular-fee", 2, "regular price per gas unit, in fee-currency minor units")
	pflag.Uint64Var(&flagPriority, "priority-fee", 5, "priority price per gas unit, in fee-currency minor units")
	pflag.StringVar(&flagHotWallet, "hot-wallet", "", "route the transfer through the given hot-wallet address")
	pflag.StringVarP(&flagPrefs, "prefs", "p", "prefs", "path to database directory for preferences")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Command line parameter validation.
	cfg := Config{
		Asset:    flagAsset,
		From:     flagFrom,
		To:       flagTo,
		Amount:   flagAmount,
		FeeLevel: flagFeeLevel,
		Fiat:     flagFiat,
	}
	err = validator.New().Struct(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid command line parameters")
		return failure
	}

	catalogue := money.Default()
	asset, ok := catalogue.Lookup(cfg.Asset)
	if !ok {
		log.Error().Str("asset", cfg.Asset).Msg("unknown asset")
		return failure
	}
	fiat, ok := catalogue.Lookup(cfg.Fiat)
	if !ok || !fiat.IsFiat() {
		log.Error().Str("fiat", cfg.Fiat).Msg("unknown fiat currency")
		return failure
	}
	feeCurrency := asset
	if asset.Network != nil {
		native, ok := catalogue.Lookup(asset.Network.NativeTicker)
		if !ok {
			log.Error().Str("ticker", asset.Network.NativeTicker).Msg("unknown native fee currency")
			return failure
		}
		feeCurrency = native
	}

	amount, err := parseAmount(asset, cfg.Amount)
	if err != nil {
		log.Error().Err(err).Msg("could not parse amount")
		return failure
	}
	total, err := parseAmount(asset, flagBalance)
	if err != nil {
		log.Error().Err(err).Msg("could not parse balance")
		return failure
	}
	available, err := parseAmount(asset, flagAvailable)
	if err != nil {
		log.Error().Err(err).Msg("could not parse available balance")
		return failure
	}

	rates := []money.ExchangeRate{money.UnknownRate(asset, fiat)}
	if flagRate != "" {
		value, err := decimal.NewFromString(flagRate)
		if err != nil {
			log.Error().Err(err).Msg("could not parse exchange rate")
			return failure
		}
		rates = []money.ExchangeRate{money.NewRate(asset, fiat, value)}
	}

	// Open the preference database.
	prefsDB, err := badger.Open(badger.DefaultOptions(flagPrefs).WithLogger(nil))
	if err != nil {
		log.Error().Str("prefs", flagPrefs).Err(err).Msg("could not open preference database")
		return failure
	}
	defer prefsDB.Close()

	codec := canonical.NewCodec()
	store := preferences.NewStore(prefsDB, codec)

	balances := &staticBalances{balance: transfer.AccountBalance{
		Total:        total,
		Withdrawable: available,
		Pending:      money.Zero(asset),
		Rate:         rates[0],
	}}
	feeData := &staticFeeData{opts: transfer.FeeOptions{
		GasLimit:         flagGas,
		GasLimitContract: flagGasCall,
		RegularFee:       flagRegular,
		PriorityFee:      flagPriority,
	}}

	var options []evm.Option
	if flagHotWallet != "" {
		options = append(options, evm.WithHotWallet(flagHotWallet))
	}
	eng := evm.New(log, balances, feeData, dryRunBroadcaster{}, store, codec, feeCurrency, options...)

	source := transfer.Account{Address: cfg.From, Asset: asset}
	target := transfer.Target{Address: cfg.To}
	err = eng.Start(source, target, rates)
	if err != nil {
		log.Error().Err(err).Msg("could not start transfer flow")
		return failure
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sig
		log.Info().Msg("shutting down fee quote")
		cancel()
	}()

	ptx, err := eng.InitialiseTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not initialise pending transaction")
		return failure
	}
	ptx, err = eng.UpdateAmount(ctx, amount, ptx)
	if err != nil {
		log.Error().Err(err).Msg("could not update amount")
		return failure
	}
	if cfg.FeeLevel != "" {
		feeLevel, err := transfer.ParseFeeLevel(cfg.FeeLevel)
		if err != nil {
			log.Error().Err(err).Msg("could not parse fee level")
			return failure
		}
		ptx, err = eng.UpdateFeeLevel(ctx, ptx, feeLevel, nil)
		if err != nil {
			log.Error().Err(err).Msg("could not update fee level")
			return failure
		}
	}
	ptx, err = eng.Validate(ctx, ptx)
	if err != nil {
		log.Error().Err(err).Msg("could not validate pending transaction")
		return failure
	}

	output, err := json.MarshalIndent(ptx, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("could not encode pending transaction")
		return failure
	}
	fmt.Println(string(output))

	return success
}

func parseAmount(currency money.Currency, text string) (money.Money, error) {
	value, err := decimal.NewFromString(text)
	if err != nil {
		return money.Money{}, fmt.Errorf("could not parse decimal (%s): %w", text, err)
	}
	return money.FromMajor(currency, value)
}
