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

import "fmt"

// Status is a representation of the transfer lifecycle's status.
type Status uint8

// The following is an enumeration of all possible statuses a transfer
// flow can have.
const (
	StatusUninitialised Status = iota + 1
	StatusInitialised
	StatusAmountSet
	StatusValidated
	StatusExecuting
	StatusComplete
	StatusFailed
)

// String implements the Stringer interface.
func (s Status) String() string {
	switch s {
	case StatusUninitialised:
		return "uninitialised"
	case StatusInitialised:
		return "initialised"
	case StatusAmountSet:
		return "amount_set"
	case StatusValidated:
		return "validated"
	case StatusExecuting:
		return "executing"
	case StatusComplete:
		return "complete"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("invalid status %d", s)
	}
}

// transitions lists, for every status, the statuses a flow may move to
// next. Amount and fee updates loop on the amount-set status, and a failed
// validation drops a validated flow back into it.
var transitions = map[Status][]Status{
	StatusUninitialised: {StatusInitialised},
	StatusInitialised:   {StatusAmountSet},
	StatusAmountSet:     {StatusAmountSet, StatusValidated},
	StatusValidated:     {StatusAmountSet, StatusValidated, StatusExecuting},
	StatusExecuting:     {StatusComplete, StatusFailed},
}

// canTransition returns true if a flow may move from one status to the
// other.
func canTransition(from Status, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
