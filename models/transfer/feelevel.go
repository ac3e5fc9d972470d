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

package transfer

import (
	"fmt"
)

// FeeLevel selects how aggressively a transaction bids for inclusion on
// chain. Which levels are available depends on the concrete engine.
type FeeLevel uint8

// The following is an enumeration of all possible fee levels.
const (
	FeeLevelNone FeeLevel = iota + 1
	FeeLevelRegular
	FeeLevelPriority
	FeeLevelCustom
)

// String implements the Stringer interface.
func (l FeeLevel) String() string {
	switch l {
	case FeeLevelNone:
		return "none"
	case FeeLevelRegular:
		return "regular"
	case FeeLevelPriority:
		return "priority"
	case FeeLevelCustom:
		return "custom"
	default:
		return fmt.Sprintf("invalid fee level %d", l)
	}
}

// ParseFeeLevel converts the textual representation of a fee level back
// into its enumeration value.
func ParseFeeLevel(text string) (FeeLevel, error) {
	switch text {
	case "none":
		return FeeLevelNone, nil
	case "regular":
		return FeeLevelRegular, nil
	case "priority":
		return FeeLevelPriority, nil
	case "custom":
		return FeeLevelCustom, nil
	default:
		return 0, fmt.Errorf("invalid fee level (%s)", text)
	}
}

// Levels is a set of fee levels an engine supports.
type Levels []FeeLevel

// Contains returns true if the given level is part of the set.
func (l Levels) Contains(level FeeLevel) bool {
	for _, candidate := range l {
		if candidate == level {
			return true
		}
	}
	return false
}
