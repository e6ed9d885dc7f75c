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

package widget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// FreeCoinMinter requests test tokens from the configured mint.
type FreeCoinMinter struct {
	log      zerolog.Logger
	accounts dapp.Accounts
	wallet   dapp.Wallet
	report   dapp.Reporter
	cfg      MintConfig
}

func NewFreeCoinMinter(log zerolog.Logger, accounts dapp.Accounts, wallet dapp.Wallet, report dapp.Reporter, cfg MintConfig) *FreeCoinMinter {
	m := FreeCoinMinter{
		log:      log.With().Str("component", "free_coin_minter").Logger(),
		accounts: accounts,
		wallet:   wallet,
		report:   report,
		cfg:      cfg,
	}
	return &m
}

// Transaction returns the mint transaction for the given account. The move
// call always has three arguments: the mint object, the amount and the
// receiving address.
func (m *FreeCoinMinter) Transaction(account sui.Account) sui.Transaction {
	call := sui.MoveCall{
		Target: m.cfg.Target,
		Arguments: []sui.Argument{
			sui.Object(m.cfg.Object),
			sui.U64(m.cfg.Amount),
			sui.Pure(account.Address),
		},
	}
	tx := sui.Transaction{
		ID:        uuid.NewString(),
		Sender:    account.Address,
		GasBudget: m.cfg.GasBudget,
		Commands:  []sui.Command{call},
	}
	return tx
}

// Activate submits one mint transaction and reports the outcome.
func (m *FreeCoinMinter) Activate(ctx context.Context) dapp.Report {

	account, ok := m.accounts.Account()
	if !ok {
		report := dapp.NewReport(uuid.NewString(), dapp.ActionMint, failure.NoAccount{Action: dapp.ActionMint}, "")
		m.report.Report(report)
		return report
	}

	tx := m.Transaction(account)
	m.log.Debug().Str("tx_id", tx.ID).Str("target", m.cfg.Target.String()).Msg("submitting mint")

	receipt, err := m.wallet.SignAndExecute(ctx, tx)
	report := dapp.NewReport(tx.ID, dapp.ActionMint, err, fmt.Sprintf("received %d free coins", m.cfg.Amount))
	report.Digest = receipt.Digest
	m.report.Report(report)

	return report
}
