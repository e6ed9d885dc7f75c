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

package wallet

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// Keys lists the accounts a session can connect to.
type Keys interface {
	Addresses() []sui.Address
}

// Session is the wallet connection state shared by all widgets. At most one
// account is connected at a time.
type Session struct {
	log     zerolog.Logger
	keys    Keys
	mutex   *sync.RWMutex
	account *sui.Account
}

// NewSession creates a disconnected session over the given keys.
func NewSession(log zerolog.Logger, keys Keys) *Session {
	s := Session{
		log:   log.With().Str("component", "wallet_session").Logger(),
		keys:  keys,
		mutex: &sync.RWMutex{},
	}
	return &s
}

// Account returns the connected account, if any.
func (s *Session) Account() (sui.Account, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.account == nil {
		return sui.Account{}, false
	}
	return *s.account, true
}

// Addresses returns the addresses available for connection.
func (s *Session) Addresses() []sui.Address {
	return s.keys.Addresses()
}

// Connect connects the account with the given address. An empty address
// connects the first available account.
func (s *Session) Connect(address sui.Address) (sui.Account, error) {

	addresses := s.keys.Addresses()
	if address == "" {
		if len(addresses) == 0 {
			return sui.Account{}, failure.UnknownAccount{}
		}
		address = addresses[0]
	}

	found := false
	for _, candidate := range addresses {
		if candidate == address {
			found = true
			break
		}
	}
	if !found {
		return sui.Account{}, failure.UnknownAccount{Address: address.String()}
	}

	account := sui.Account{Address: address}

	s.mutex.Lock()
	s.account = &account
	s.mutex.Unlock()

	s.log.Info().Str("address", address.String()).Msg("wallet connected")

	return account, nil
}

// Disconnect drops the connected account.
func (s *Session) Disconnect() {
	s.mutex.Lock()
	s.account = nil
	s.mutex.Unlock()

	s.log.Info().Msg("wallet disconnected")
}
