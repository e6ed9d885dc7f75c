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
	"math/big"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// SuiSender transfers a fixed amount of native tokens to a fixed recipient.
type SuiSender struct {
	log      zerolog.Logger
	accounts dapp.Accounts
	wallet   dapp.Wallet
	report   dapp.Reporter
	cfg      TransferConfig
}

func NewSuiSender(log zerolog.Logger, accounts dapp.Accounts, wallet dapp.Wallet, report dapp.Reporter, cfg TransferConfig) *SuiSender {
	s := SuiSender{
		log:      log.With().Str("component", "sui_sender").Logger(),
		accounts: accounts,
		wallet:   wallet,
		report:   report,
		cfg:      cfg,
	}
	return &s
}

// Transaction returns the transfer transaction for the given account.
func (s *SuiSender) Transaction(account sui.Account) sui.Transaction {
	transfer := sui.SplitTransfer{
		Amounts:   []uint64{s.cfg.Amount},
		Recipient: s.cfg.Recipient,
	}
	tx := sui.Transaction{
		ID:        uuid.NewString(),
		Sender:    account.Address,
		GasBudget: s.cfg.GasBudget,
		Commands:  []sui.Command{transfer},
	}
	return tx
}

// Activate submits one transfer transaction and reports the outcome.
func (s *SuiSender) Activate(ctx context.Context) dapp.Report {

	account, ok := s.accounts.Account()
	if !ok {
		report := dapp.NewReport(uuid.NewString(), dapp.ActionSend, failure.NoAccount{Action: dapp.ActionSend}, "")
		s.report.Report(report)
		return report
	}

	tx := s.Transaction(account)
	s.log.Debug().Str("tx_id", tx.ID).Str("recipient", s.cfg.Recipient.String()).Uint64("amount", s.cfg.Amount).Msg("submitting transfer")

	receipt, err := s.wallet.SignAndExecute(ctx, tx)
	report := dapp.NewReport(tx.ID, dapp.ActionSend, err, fmt.Sprintf("sent %s SUI to %s", sui.FormatAmount(new(big.Int).SetUint64(s.cfg.Amount), sui.NativeDecimals), s.cfg.Recipient.Short()))
	report.Digest = receipt.Digest
	s.report.Report(report)

	return report
}
