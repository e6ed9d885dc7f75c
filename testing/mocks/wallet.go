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
	"context"
	"testing"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/sui"
)

type Session struct {
	AccountFunc    func() (sui.Account, bool)
	AddressesFunc  func() []sui.Address
	ConnectFunc    func(address sui.Address) (sui.Account, error)
	DisconnectFunc func()
}

func BaselineSession(t *testing.T) *Session {
	t.Helper()

	s := Session{
		AccountFunc: func() (sui.Account, bool) {
			return GenericAccount, true
		},
		AddressesFunc: func() []sui.Address {
			return []sui.Address{GenericAddress}
		},
		ConnectFunc: func(address sui.Address) (sui.Account, error) {
			return sui.Account{Address: address}, nil
		},
		DisconnectFunc: func() {},
	}

	return &s
}

// DisconnectedSession returns a session without a connected account.
func DisconnectedSession(t *testing.T) *Session {
	t.Helper()

	s := BaselineSession(t)
	s.AccountFunc = func() (sui.Account, bool) {
		return sui.Account{}, false
	}

	return s
}

func (s *Session) Account() (sui.Account, bool) {
	return s.AccountFunc()
}

func (s *Session) Addresses() []sui.Address {
	return s.AddressesFunc()
}

func (s *Session) Connect(address sui.Address) (sui.Account, error) {
	return s.ConnectFunc(address)
}

func (s *Session) Disconnect() {
	s.DisconnectFunc()
}

type Networks struct {
	ActiveFunc func() sui.Network
	ListFunc   func() []sui.Network
	SelectFunc func(name string) error
}

func BaselineNetworks(t *testing.T) *Networks {
	t.Helper()

	n := Networks{
		ActiveFunc: func() sui.Network {
			return GenericNetwork
		},
		ListFunc: func() []sui.Network {
			return GenericNetworks
		},
		SelectFunc: func(name string) error {
			return nil
		},
	}

	return &n
}

func (n *Networks) Active() sui.Network {
	return n.ActiveFunc()
}

func (n *Networks) List() []sui.Network {
	return n.ListFunc()
}

func (n *Networks) Select(name string) error {
	return n.SelectFunc(name)
}

type Wallet struct {
	SignAndExecuteFunc func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error)
}

func BaselineWallet(t *testing.T) *Wallet {
	t.Helper()

	w := Wallet{
		SignAndExecuteFunc: func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			return GenericReceipt, nil
		},
	}

	return &w
}

func (w *Wallet) SignAndExecute(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
	return w.SignAndExecuteFunc(ctx, tx)
}

type Signer struct {
	SignFunc func(address sui.Address, txBytes []byte) (string, error)
}

func BaselineSigner(t *testing.T) *Signer {
	t.Helper()

	s := Signer{
		SignFunc: func(address sui.Address, txBytes []byte) (string, error) {
			return GenericSignature, nil
		},
	}

	return &s
}

func (s *Signer) Sign(address sui.Address, txBytes []byte) (string, error) {
	return s.SignFunc(address, txBytes)
}

type Reporter struct {
	ReportFunc func(report dapp.Report)
}

func BaselineReporter(t *testing.T) *Reporter {
	t.Helper()

	r := Reporter{
		ReportFunc: func(report dapp.Report) {},
	}

	return &r
}

func (r *Reporter) Report(report dapp.Report) {
	r.ReportFunc(report)
}
