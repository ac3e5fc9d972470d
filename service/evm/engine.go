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

// Package evm implements the transfer engine for fungible-token assets on
// EVM-style chains. Fees are paid in the chain's native currency, not in
// the transferred asset, and are computed from the contract-call gas limit
// and a per-gas-unit price for the selected fee level.
package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
	"github.com/frikke/wallet-engine/service/engine"
)

// availableLevels are the fee levels this asset family supports. Anything
// else is rejected as a programming error.
var availableLevels = transfer.Levels{
	transfer.FeeLevelRegular,
	transfer.FeeLevelPriority,
}

// Codec encodes the unsigned transaction payload deterministically before
// it is handed to the broadcaster.
type Codec interface {
	Marshal(value interface{}) ([]byte, error)
}

// Engine drives a single fungible-token transfer on an EVM-style chain.
// Collaborators are injected at construction; the engine itself never
// retries their failures. The engine is owned by a single logical transfer
// flow and must not be shared between flows.
type Engine struct {
	engine.Flow

	cfg         Config
	log         zerolog.Logger
	balances    transfer.BalanceProvider
	feeData     transfer.FeeDataProvider
	broadcaster transfer.Broadcaster
	levels      transfer.FeeLevelStore
	codec       Codec
	feeCurrency money.Currency

	// Fee options are fetched once per engine session and held immutable
	// for the rest of the flow.
	opts *transfer.FeeOptions
}

// New creates a token transfer engine using the given dependencies and
// options. The fee currency is the chain's native asset, in which all
// computed fees are expressed.
func New(log zerolog.Logger, balances transfer.BalanceProvider, feeData transfer.FeeDataProvider, broadcaster transfer.Broadcaster, levels transfer.FeeLevelStore, codec Codec, feeCurrency money.Currency, options ...Option) *Engine {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	e := Engine{
		cfg:         cfg,
		log:         log.With().Str("component", "evm_engine").Logger(),
		balances:    balances,
		feeData:     feeData,
		broadcaster: broadcaster,
		levels:      levels,
		codec:       codec,
		feeCurrency: feeCurrency,
	}

	return &e
}

// InitialiseTx produces the initial pending transaction for the flow: all
// monetary fields zeroed, the persisted fee level for the asset selected
// and the supported fee levels exposed.
func (e *Engine) InitialiseTx(ctx context.Context) (transfer.PendingTx, error) {
	err := e.Require(engine.StatusUninitialised)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	asset := e.Source().Asset
	level := e.levels.Get(asset)
	if !availableLevels.Contains(level) {
		level = transfer.FeeLevelRegular
	}

	available := make(transfer.Levels, len(availableLevels))
	copy(available, availableLevels)

	ptx := transfer.PendingTx{
		ID:                  uuid.NewString(),
		Amount:              money.Zero(asset),
		Total:               money.Zero(asset),
		Available:           money.Zero(asset),
		Fee:                 money.Zero(e.feeCurrency),
		FeeForFullAvailable: money.Zero(e.feeCurrency),
		Selection: transfer.FeeSelection{
			Selected:  level,
			Available: available,
			Asset:     e.feeCurrency,
		},
		SelectedFiat: e.Fiat(),
		State:        transfer.ValidationUninitialised,
	}

	err = e.Advance(engine.StatusInitialised)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	e.log.Debug().
		Str("tx", ptx.ID).
		Str("asset", asset.Code).
		Str("fee_level", level.String()).
		Msg("pending transaction initialised")

	return ptx, nil
}

// UpdateAmount recomputes balances, fees and limits for the given amount
// and returns a new pending transaction. The input is never mutated.
func (e *Engine) UpdateAmount(ctx context.Context, amount money.Money, ptx transfer.PendingTx) (transfer.PendingTx, error) {
	err := e.Require(engine.StatusInitialised, engine.StatusAmountSet, engine.StatusValidated)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	asset := e.Source().Asset
	if !amount.Currency().Equal(asset) {
		return transfer.PendingTx{}, fmt.Errorf("%w (have: %s, want: %s)", money.ErrCurrencyMismatch, amount.Currency().Code, asset.Code)
	}

	balance, err := e.balances.Balance(ctx, e.Source())
	if err != nil {
		return transfer.PendingTx{}, fmt.Errorf("could not get account balance: %w", err)
	}
	opts, err := e.feeOptions(ctx)
	if err != nil {
		return transfer.PendingTx{}, fmt.Errorf("could not get fee options: %w", err)
	}

	// A cancelled flow must not apply partially computed fee data.
	err = ctx.Err()
	if err != nil {
		return transfer.PendingTx{}, err
	}

	fees, err := e.feesForLevels(opts)
	if err != nil {
		return transfer.PendingTx{}, err
	}
	fee := fees[ptx.Selection.Selected]

	limits, err := limitsFromOptions(asset, opts)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	dup := ptx.Copy()
	dup.Amount = amount
	dup.Total = balance.Total
	dup.Available = balance.Withdrawable
	dup.Fee = fee
	// Token transfers move the whole amount through the same contract
	// call, so spending the full available balance costs the same fee.
	dup.FeeForFullAvailable = fee
	dup.Limits = limits
	dup.Selection.Fees = fees
	dup.State = transfer.ValidationUninitialised
	dup.Confirmations = e.confirmations(dup)

	err = e.Advance(engine.StatusAmountSet)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	return dup, nil
}

// UpdateFeeLevel moves the pending transaction to a new fee level and
// persists the choice for the asset. Levels outside the supported set fail
// fast: that is a programming error on this asset family, not a transient
// validation failure.
func (e *Engine) UpdateFeeLevel(ctx context.Context, ptx transfer.PendingTx, level transfer.FeeLevel, custom *money.Money) (transfer.PendingTx, error) {
	err := e.Require(engine.StatusInitialised, engine.StatusAmountSet, engine.StatusValidated)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	asset := e.Source().Asset
	if !availableLevels.Contains(level) {
		return transfer.PendingTx{}, fmt.Errorf("%w (level: %s, asset: %s)", engine.ErrUnsupportedFeeLevel, level, asset.Code)
	}
	if custom != nil {
		return transfer.PendingTx{}, fmt.Errorf("%w (custom amounts not supported, asset: %s)", engine.ErrUnsupportedFeeLevel, asset.Code)
	}

	if level == ptx.Selection.Selected {
		return ptx.Copy(), nil
	}

	opts, err := e.feeOptions(ctx)
	if err != nil {
		return transfer.PendingTx{}, fmt.Errorf("could not get fee options: %w", err)
	}

	err = ctx.Err()
	if err != nil {
		return transfer.PendingTx{}, err
	}

	fees, err := e.feesForLevels(opts)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	err = e.levels.Set(asset, level)
	if err != nil {
		return transfer.PendingTx{}, fmt.Errorf("could not persist fee level: %w", err)
	}

	dup := ptx.Copy()
	dup.Selection.Selected = level
	dup.Selection.Fees = fees
	dup.Fee = fees[level]
	dup.FeeForFullAvailable = fees[level]
	dup.State = transfer.ValidationUninitialised
	dup.Confirmations = e.confirmations(dup)

	err = e.Advance(engine.StatusAmountSet)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	e.log.Debug().
		Str("tx", ptx.ID).
		Str("asset", asset.Code).
		Str("fee_level", level.String()).
		Msg("fee level updated")

	return dup, nil
}

// Validate checks the amount against the available balance and the
// transfer limits and records the verdict in the returned pending
// transaction. Rule violations land in the validation state; only
// programming errors fail.
func (e *Engine) Validate(ctx context.Context, ptx transfer.PendingTx) (transfer.PendingTx, error) {
	err := e.Require(engine.StatusAmountSet, engine.StatusValidated)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	state, err := verdict(ptx)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	dup := ptx.Copy()
	dup.State = state
	dup.Confirmations = e.confirmations(dup)

	next := engine.StatusAmountSet
	if state == transfer.ValidationCanExecute {
		next = engine.StatusValidated
	}
	err = e.Advance(next)
	if err != nil {
		return transfer.PendingTx{}, err
	}

	return dup, nil
}

// Execute hands the validated pending transaction to the chain
// collaborators and returns the broadcast transaction hash. Collaborator
// failures surface to the caller and leave the flow in the failed status.
func (e *Engine) Execute(ctx context.Context, ptx transfer.PendingTx) (engine.Result, error) {
	err := e.Require(engine.StatusValidated)
	if err != nil {
		return engine.Result{}, err
	}
	if ptx.State != transfer.ValidationCanExecute {
		return engine.Result{}, fmt.Errorf("%w (state: %s)", engine.ErrNotValidated, ptx.State)
	}

	err = e.Advance(engine.StatusExecuting)
	if err != nil {
		return engine.Result{}, err
	}

	opts, err := e.feeOptions(ctx)
	if err != nil {
		_ = e.Advance(engine.StatusFailed)
		return engine.Result{}, fmt.Errorf("could not get fee options: %w", err)
	}

	nonce, err := e.broadcaster.Nonce(ctx, e.Source().Address)
	if err != nil {
		_ = e.Advance(engine.StatusFailed)
		return engine.Result{}, fmt.Errorf("could not get nonce: %w", err)
	}

	payload, err := e.buildPayload(nonce, ptx.Amount, opts, ptx.Selection.Selected)
	if err != nil {
		_ = e.Advance(engine.StatusFailed)
		return engine.Result{}, err
	}
	data, err := e.codec.Marshal(payload)
	if err != nil {
		_ = e.Advance(engine.StatusFailed)
		return engine.Result{}, fmt.Errorf("could not encode payload: %w", err)
	}

	hash, err := e.broadcaster.Broadcast(ctx, data)
	if err != nil {
		_ = e.Advance(engine.StatusFailed)
		return engine.Result{}, fmt.Errorf("could not broadcast transaction: %w", err)
	}

	err = e.Advance(engine.StatusComplete)
	if err != nil {
		return engine.Result{}, err
	}

	e.log.Info().
		Str("tx", ptx.ID).
		Str("hash", hash).
		Msg("transfer executed")

	return engine.Result{TxHash: hash}, nil
}

// feeOptions returns the fee options of the session, fetching them from
// the fee-data collaborator on first use. The engine is owned by a single
// flow, so the cache needs no synchronization.
func (e *Engine) feeOptions(ctx context.Context) (transfer.FeeOptions, error) {
	if e.opts != nil {
		return *e.opts, nil
	}

	opts, err := e.feeData.FeeOptions(ctx, e.Source().Asset)
	if err != nil {
		return transfer.FeeOptions{}, err
	}

	e.opts = &opts
	return opts, nil
}

// gasLimit returns the gas allowance of a transfer: the contract-call gas
// limit, plus the fixed hot-wallet surcharge when routing through one.
func (e *Engine) gasLimit(opts transfer.FeeOptions) uint64 {
	gas := opts.GasLimitContract
	if e.cfg.HotWallet != "" {
		gas += e.cfg.HotWalletExtraGas
	}
	return gas
}

// fee computes the fee for one level as gas limit times price per gas
// unit, expressed in the chain's native fee currency.
func (e *Engine) fee(opts transfer.FeeOptions, level transfer.FeeLevel) (money.Money, error) {
	price, err := priceForLevel(opts, level)
	if err != nil {
		return money.Money{}, err
	}

	units := new(big.Int).Mul(
		new(big.Int).SetUint64(e.gasLimit(opts)),
		new(big.Int).SetUint64(price),
	)
	return money.FromMinor(e.feeCurrency, units)
}

// feesForLevels computes the fee for every supported level.
func (e *Engine) feesForLevels(opts transfer.FeeOptions) (map[transfer.FeeLevel]money.Money, error) {
	fees := make(map[transfer.FeeLevel]money.Money, len(availableLevels))
	for _, level := range availableLevels {
		fee, err := e.fee(opts, level)
		if err != nil {
			return nil, err
		}
		fees[level] = fee
	}
	return fees, nil
}

func priceForLevel(opts transfer.FeeOptions, level transfer.FeeLevel) (uint64, error) {
	switch level {
	case transfer.FeeLevelRegular:
		return opts.RegularFee, nil
	case transfer.FeeLevelPriority:
		return opts.PriorityFee, nil
	default:
		return 0, fmt.Errorf("%w (level: %s)", engine.ErrUnsupportedFeeLevel, level)
	}
}

func limitsFromOptions(asset money.Currency, opts transfer.FeeOptions) (transfer.Limits, error) {
	var limits transfer.Limits
	if opts.MinAmount != nil {
		min, err := money.FromMinor(asset, opts.MinAmount)
		if err != nil {
			return transfer.Limits{}, fmt.Errorf("could not convert minimum limit: %w", err)
		}
		limits.Min = min
		limits.HasMin = true
	}
	if opts.MaxAmount != nil {
		max, err := money.FromMinor(asset, opts.MaxAmount)
		if err != nil {
			return transfer.Limits{}, fmt.Errorf("could not convert maximum limit: %w", err)
		}
		limits.Max = max
		limits.HasMax = true
	}
	return limits, nil
}

// verdict applies the business rules to the pending transaction.
func verdict(ptx transfer.PendingTx) (transfer.ValidationState, error) {
	if ptx.Amount.Sign() <= 0 {
		return transfer.ValidationInvalidAmount, nil
	}

	over, err := ptx.Amount.Compare(ptx.Available)
	if err != nil {
		return 0, fmt.Errorf("could not compare amount with balance: %w", err)
	}
	if over > 0 {
		return transfer.ValidationInsufficientFunds, nil
	}

	if ptx.Limits.HasMin {
		below, err := ptx.Amount.Compare(ptx.Limits.Min)
		if err != nil {
			return 0, fmt.Errorf("could not compare amount with minimum limit: %w", err)
		}
		if below < 0 {
			return transfer.ValidationBelowMinLimit, nil
		}
	}
	if ptx.Limits.HasMax {
		above, err := ptx.Amount.Compare(ptx.Limits.Max)
		if err != nil {
			return 0, fmt.Errorf("could not compare amount with maximum limit: %w", err)
		}
		if above > 0 {
			return transfer.ValidationOverMaxLimit, nil
		}
	}

	return transfer.ValidationCanExecute, nil
}
