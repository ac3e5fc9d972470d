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

package engine

import (
	"errors"
)

var (
	// ErrAlreadyStarted indicates a second flow was started on an engine
	// instance. Each instance owns exactly one flow; starting another
	// transfer needs a fresh instance.
	ErrAlreadyStarted = errors.New("transfer flow already started")

	// ErrNotStarted indicates a lifecycle operation on an engine that was
	// never bound to a flow.
	ErrNotStarted = errors.New("transfer flow not started")

	// ErrUnsupportedFeeLevel indicates a fee-level transition outside the
	// set the concrete engine declares. This is a programming error,
	// distinct from a transient validation failure.
	ErrUnsupportedFeeLevel = errors.New("unsupported fee level")

	// ErrInvalidStatus indicates a lifecycle operation invoked out of
	// order.
	ErrInvalidStatus = errors.New("invalid flow status")

	// ErrNotValidated indicates an execution attempt on a pending
	// transaction that has not passed validation.
	ErrNotValidated = errors.New("pending transaction not validated")
)
