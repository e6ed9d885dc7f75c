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

package transactor

import (
	"context"
	"fmt"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// Client is what the transactor needs from the RPC node.
type Client interface {
	dapp.Builder
	dapp.CoinReader
}

// Transactor turns a transaction description into unsigned transaction bytes
// by having the node build them.
type Transactor struct {
	client Client
}

// New creates a transactor building transactions on the given client.
func New(client Client) *Transactor {
	t := Transactor{
		client: client,
	}
	return &t
}

// Build returns the unsigned bytes for the given transaction. Each
// transaction carries exactly one command.
func (t *Transactor) Build(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error) {

	if tx.Sender == "" {
		return sui.TransactionBytes{}, failure.InvalidTransaction{
			Description: failure.NewDescription("sender missing"),
			ID:          tx.ID,
		}
	}
	if tx.GasBudget == 0 {
		return sui.TransactionBytes{}, failure.InvalidTransaction{
			Description: failure.NewDescription("gas budget missing"),
			ID:          tx.ID,
		}
	}
	if len(tx.Commands) != 1 {
		return sui.TransactionBytes{}, failure.InvalidTransaction{
			Description: failure.NewDescription("unsupported number of commands", failure.WithInt("commands", len(tx.Commands))),
			ID:          tx.ID,
		}
	}

	switch command := tx.Commands[0].(type) {

	case sui.MoveCall:
		return t.client.MoveCall(ctx, tx.Sender, command, tx.GasBudget)

	case sui.SplitTransfer:
		return t.splitTransfer(ctx, tx, command)

	default:
		return sui.TransactionBytes{}, failure.InvalidTransaction{
			Description: failure.NewDescription("unsupported command", failure.WithString("command", fmt.Sprintf("%T", command))),
			ID:          tx.ID,
		}
	}
}

func (t *Transactor) splitTransfer(ctx context.Context, tx sui.Transaction, command sui.SplitTransfer) (sui.TransactionBytes, error) {

	if len(command.Amounts) == 0 {
		return sui.TransactionBytes{}, failure.InvalidTransaction{
			Description: failure.NewDescription("no amounts to split"),
			ID:          tx.ID,
		}
	}
	if command.Recipient == "" {
		return sui.TransactionBytes{}, failure.InvalidTransaction{
			Description: failure.NewDescription("recipient missing"),
			ID:          tx.ID,
		}
	}

	// The gas balance of an account is spread over its native coins; all of
	// them are merged into the gas coin before splitting.
	coins, err := t.client.Coins(ctx, tx.Sender, sui.NativeCoinType)
	if err != nil {
		return sui.TransactionBytes{}, fmt.Errorf("could not get gas coins: %w", err)
	}
	if len(coins) == 0 {
		return sui.TransactionBytes{}, failure.Rejected{
			Description: failure.NewDescription("no gas coins owned by sender", failure.WithString("sender", tx.Sender.String())),
		}
	}

	recipients := make([]sui.Address, 0, len(command.Amounts))
	for range command.Amounts {
		recipients = append(recipients, command.Recipient)
	}

	return t.client.PaySui(ctx, tx.Sender, coins.IDs(), recipients, command.Amounts, tx.GasBudget)
}
