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

// Package preferences persists lightweight user choices between transfer
// flows. Currently that is the last-selected fee level, kept per asset
// with a global fallback.
package preferences

import (
	"time"

	"github.com/dgraph-io/badger/v2"

	"github.com/frikke/wallet-engine/models/money"
	"github.com/frikke/wallet-engine/models/transfer"
)

// Key prefixes for the preference database.
const (
	prefixAssetLevel   = 1
	prefixDefaultLevel = 2
	prefixUpdatedAt    = 3
)

// Codec encodes and decodes preference values.
type Codec interface {
	Marshal(value interface{}) ([]byte, error)
	Unmarshal(data []byte, value interface{}) error
}

// Store is a fee-level store backed by a badger database.
type Store struct {
	db    *badger.DB
	codec Codec
}

// NewStore creates a new preference store on the given database using the
// given codec.
func NewStore(db *badger.DB, codec Codec) *Store {

	s := Store{
		db:    db,
		codec: codec,
	}

	return &s
}

// Get returns the fee level persisted for the given asset. Assets without
// an explicit choice fall back to the global default, and a fresh database
// falls back to the regular level.
func (s *Store) Get(asset money.Currency) transfer.FeeLevel {
	var level transfer.FeeLevel
	err := s.db.View(Fallback(
		s.retrieve(encodeKey(prefixAssetLevel, asset.Code), &level),
		s.retrieve(encodeKey(prefixDefaultLevel, ""), &level),
	))
	if err != nil {
		return transfer.FeeLevelRegular
	}
	return level
}

// Set persists the fee level for the given asset. The most recent explicit
// choice also becomes the global default for assets that never had one.
func (s *Store) Set(asset money.Currency, level transfer.FeeLevel) error {
	return s.db.Update(Combine(
		s.save(encodeKey(prefixAssetLevel, asset.Code), level),
		s.save(encodeKey(prefixDefaultLevel, ""), level),
		s.save(encodeKey(prefixUpdatedAt, asset.Code), time.Now().UTC()),
	))
}

func encodeKey(prefix uint8, code string) []byte {
	key := make([]byte, 0, 1+len(code))
	key = append(key, prefix)
	key = append(key, code...)
	return key
}
