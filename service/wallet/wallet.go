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
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// Transactor builds unsigned transaction bytes.
type Transactor interface {
	Build(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error)
}

// Wallet signs and executes transactions on behalf of the connected account.
type Wallet struct {
	log      zerolog.Logger
	accounts dapp.Accounts
	build    Transactor
	sign     dapp.Signer
	execute  dapp.Executor
}

// New creates a wallet for the accounts of the given session.
func New(log zerolog.Logger, accounts dapp.Accounts, build Transactor, sign dapp.Signer, execute dapp.Executor) *Wallet {
	w := Wallet{
		log:      log.With().Str("component", "wallet").Logger(),
		accounts: accounts,
		build:    build,
		sign:     sign,
		execute:  execute,
	}
	return &w
}

// SignAndExecute builds, signs and submits the transaction once. A receipt
// with failed effects is returned together with a rejection error.
func (w *Wallet) SignAndExecute(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {

	account, ok := w.accounts.Account()
	if !ok {
		return sui.Receipt{}, failure.NoAccount{Action: "sign_and_execute"}
	}
	if tx.Sender != account.Address {
		return sui.Receipt{}, failure.InvalidTransaction{
			Description: failure.NewDescription("sender is not the connected account",
				failure.WithString("sender", tx.Sender.String()),
				failure.WithString("account", account.Address.String()),
			),
			ID: tx.ID,
		}
	}

	log := w.log.With().Str("tx_id", tx.ID).Str("sender", tx.Sender.String()).Logger()

	unsigned, err := w.build.Build(ctx, tx)
	if err != nil {
		return sui.Receipt{}, fmt.Errorf("could not build transaction: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(unsigned.TxBytes)
	if err != nil {
		return sui.Receipt{}, fmt.Errorf("could not decode transaction bytes: %w", err)
	}

	signature, err := w.sign.Sign(account.Address, raw)
	if err != nil {
		return sui.Receipt{}, fmt.Errorf("could not sign transaction: %w", err)
	}

	receipt, err := w.execute.Execute(ctx, unsigned.TxBytes, []string{signature})
	if err != nil {
		return sui.Receipt{}, fmt.Errorf("could not submit transaction: %w", err)
	}

	if !receipt.Succeeded() {
		log.Warn().Str("digest", receipt.Digest).Str("error", receipt.Error).Msg("transaction execution failed")
		return receipt, failure.Rejected{
			Description: failure.NewDescription("execution failed", failure.WithString("status", receipt.Status), failure.WithString("error", receipt.Error)),
			Digest:      receipt.Digest,
		}
	}

	log.Info().Str("digest", receipt.Digest).Msg("transaction executed")

	return receipt, nil
}
