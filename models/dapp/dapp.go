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

package dapp

import (
	"context"

	"github.com/optakt/sui-dapp/models/sui"
)

// Accounts gives read access to the currently connected wallet account.
type Accounts interface {
	Account() (sui.Account, bool)
}

// Session is the process-wide wallet connection state.
type Session interface {
	Accounts
	Addresses() []sui.Address
	Connect(address sui.Address) (sui.Account, error)
	Disconnect()
}

// Networks is the registry of configured RPC networks.
type Networks interface {
	Active() sui.Network
	List() []sui.Network
	Select(name string) error
}

type CoinReader interface {
	Coins(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error)
}

type ObjectReader interface {
	OwnedObjects(ctx context.Context, owner sui.Address, structType string) ([]sui.OwnedObject, error)
}

type MetadataReader interface {
	CoinMetadata(ctx context.Context, coinType string) (sui.CoinMetadata, error)
}

// Builder has a node build unsigned transaction bytes.
type Builder interface {
	MoveCall(ctx context.Context, sender sui.Address, call sui.MoveCall, gasBudget uint64) (sui.TransactionBytes, error)
	PaySui(ctx context.Context, sender sui.Address, inputs []sui.ObjectID, recipients []sui.Address, amounts []uint64, gasBudget uint64) (sui.TransactionBytes, error)
}

type Executor interface {
	Execute(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error)
}

// Client is the full set of RPC operations used by the dapp.
type Client interface {
	CoinReader
	ObjectReader
	MetadataReader
	Builder
	Executor
}

// Signer signs transaction bytes on behalf of an account it holds a key for.
type Signer interface {
	Sign(address sui.Address, txBytes []byte) (string, error)
}

// Wallet signs and executes transactions for the connected account.
type Wallet interface {
	SignAndExecute(ctx context.Context, tx sui.Transaction) (sui.Receipt, error)
}

// Reporter receives the outcome of every user action.
type Reporter interface {
	Report(report Report)
}
