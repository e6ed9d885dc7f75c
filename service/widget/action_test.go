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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
	"github.com/optakt/sui-dapp/testing/mocks"
)

func genericMintConfig() MintConfig {
	return MintConfig{
		Target:    mocks.GenericTarget,
		Object:    mocks.GenericMintObject,
		Amount:    10,
		GasBudget: 10_000_000,
	}
}

func genericTransferConfig() TransferConfig {
	return TransferConfig{
		Recipient: mocks.GenericRecipient,
		Amount:    100_000_000,
		GasBudget: 10_000_000,
	}
}

func TestFreeCoinMinter_Transaction(t *testing.T) {
	m := NewFreeCoinMinter(mocks.NoopLogger, mocks.BaselineSession(t), mocks.BaselineWallet(t), mocks.BaselineReporter(t), genericMintConfig())

	tx := m.Transaction(mocks.GenericAccount)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, mocks.GenericAddress, tx.Sender)
	assert.Equal(t, uint64(10_000_000), tx.GasBudget)
	require.Len(t, tx.Commands, 1)
	call, ok := tx.Commands[0].(sui.MoveCall)
	require.True(t, ok)
	assert.Equal(t, mocks.GenericTarget, call.Target)
	assert.Empty(t, call.TypeArguments)
	want := []sui.Argument{
		sui.Object(mocks.GenericMintObject),
		sui.U64(10),
		sui.Pure(mocks.GenericAddress),
	}
	assert.Equal(t, want, call.Arguments)
}

func TestFreeCoinMinter_Activate(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		var submitted []sui.Transaction
		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			submitted = append(submitted, tx)
			return mocks.GenericReceipt, nil
		}
		var reports []dapp.Report
		reporter := mocks.BaselineReporter(t)
		reporter.ReportFunc = func(report dapp.Report) {
			reports = append(reports, report)
		}

		m := NewFreeCoinMinter(mocks.NoopLogger, mocks.BaselineSession(t), wallet, reporter, genericMintConfig())

		report := m.Activate(context.Background())

		assert.Len(t, submitted, 1)
		assert.True(t, report.Succeeded())
		assert.Equal(t, dapp.ActionMint, report.Action)
		assert.Equal(t, mocks.GenericDigest, report.Digest)
		assert.Equal(t, submitted[0].ID, report.ID)
		assert.Equal(t, "received 10 free coins", report.Message)
		assert.Equal(t, []dapp.Report{report}, reports)
	})

	t.Run("submits once per activation", func(t *testing.T) {
		t.Parallel()

		calls := 0
		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			calls++
			return mocks.GenericReceipt, nil
		}

		m := NewFreeCoinMinter(mocks.NoopLogger, mocks.BaselineSession(t), wallet, mocks.BaselineReporter(t), genericMintConfig())
		for i := 0; i < 3; i++ {
			m.Activate(context.Background())
		}

		assert.Equal(t, 3, calls)
	})

	t.Run("submits nothing without account", func(t *testing.T) {
		t.Parallel()

		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			t.Fatal("transaction submitted without account")
			return sui.Receipt{}, nil
		}

		m := NewFreeCoinMinter(mocks.NoopLogger, mocks.DisconnectedSession(t), wallet, mocks.BaselineReporter(t), genericMintConfig())

		report := m.Activate(context.Background())

		assert.Equal(t, failure.KindNoAccount, report.Kind)
	})

	t.Run("reports wallet failure", func(t *testing.T) {
		t.Parallel()

		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			return sui.Receipt{}, failure.Unavailable{Network: sui.Testnet, Method: "unsafe_moveCall"}
		}

		m := NewFreeCoinMinter(mocks.NoopLogger, mocks.BaselineSession(t), wallet, mocks.BaselineReporter(t), genericMintConfig())

		report := m.Activate(context.Background())

		assert.Equal(t, failure.KindNetwork, report.Kind)
		assert.Empty(t, report.Digest)
	})

	t.Run("reports rejected transaction with digest", func(t *testing.T) {
		t.Parallel()

		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			receipt := sui.Receipt{Digest: mocks.GenericDigest, Status: sui.StatusFailure, Error: "InsufficientGas"}
			return receipt, failure.Rejected{Digest: mocks.GenericDigest}
		}

		m := NewFreeCoinMinter(mocks.NoopLogger, mocks.BaselineSession(t), wallet, mocks.BaselineReporter(t), genericMintConfig())

		report := m.Activate(context.Background())

		assert.Equal(t, failure.KindRejected, report.Kind)
		assert.Equal(t, mocks.GenericDigest, report.Digest)
	})
}

func TestSuiSender_Activate(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		var submitted []sui.Transaction
		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			submitted = append(submitted, tx)
			return mocks.GenericReceipt, nil
		}

		s := NewSuiSender(mocks.NoopLogger, mocks.BaselineSession(t), wallet, mocks.BaselineReporter(t), genericTransferConfig())

		report := s.Activate(context.Background())

		require.Len(t, submitted, 1)
		assert.True(t, report.Succeeded())
		assert.Equal(t, dapp.ActionSend, report.Action)
		assert.Equal(t, "sent 0.1 SUI to "+mocks.GenericRecipient.Short(), report.Message)

		tx := submitted[0]
		assert.Equal(t, mocks.GenericAddress, tx.Sender)
		require.Len(t, tx.Commands, 1)
		transfer, ok := tx.Commands[0].(sui.SplitTransfer)
		require.True(t, ok)
		assert.Equal(t, []uint64{100_000_000}, transfer.Amounts)
		assert.Equal(t, mocks.GenericRecipient, transfer.Recipient)
	})

	t.Run("keeps amount across activations", func(t *testing.T) {
		t.Parallel()

		var amounts [][]uint64
		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			transfer := tx.Commands[0].(sui.SplitTransfer)
			amounts = append(amounts, transfer.Amounts)
			if len(amounts) == 1 {
				return sui.Receipt{}, mocks.GenericError
			}
			return mocks.GenericReceipt, nil
		}

		s := NewSuiSender(mocks.NoopLogger, mocks.BaselineSession(t), wallet, mocks.BaselineReporter(t), genericTransferConfig())
		first := s.Activate(context.Background())
		second := s.Activate(context.Background())
		third := s.Activate(context.Background())

		assert.False(t, first.Succeeded())
		assert.True(t, second.Succeeded())
		assert.True(t, third.Succeeded())
		assert.Equal(t, [][]uint64{{100_000_000}, {100_000_000}, {100_000_000}}, amounts)
		assert.NotEqual(t, second.ID, third.ID)
	})

	t.Run("submits nothing without account", func(t *testing.T) {
		t.Parallel()

		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			t.Fatal("transaction submitted without account")
			return sui.Receipt{}, nil
		}
		reported := false
		reporter := mocks.BaselineReporter(t)
		reporter.ReportFunc = func(report dapp.Report) {
			reported = true
			assert.Equal(t, failure.KindNoAccount, report.Kind)
		}

		s := NewSuiSender(mocks.NoopLogger, mocks.DisconnectedSession(t), wallet, reporter, genericTransferConfig())

		s.Activate(context.Background())

		assert.True(t, reported)
	})

	t.Run("reports internal failure", func(t *testing.T) {
		t.Parallel()

		wallet := mocks.BaselineWallet(t)
		wallet.SignAndExecuteFunc = func(ctx context.Context, tx sui.Transaction) (sui.Receipt, error) {
			return sui.Receipt{}, mocks.GenericError
		}

		s := NewSuiSender(mocks.NoopLogger, mocks.BaselineSession(t), wallet, mocks.BaselineReporter(t), genericTransferConfig())

		report := s.Activate(context.Background())

		assert.Equal(t, failure.KindInternal, report.Kind)
		assert.Equal(t, mocks.GenericError.Error(), report.Message)
	})
}

func TestNetworkSelector_Options(t *testing.T) {
	s := NewNetworkSelector(mocks.NoopLogger, mocks.BaselineNetworks(t), mocks.BaselineReporter(t))

	options := s.Options()

	require.Len(t, options, len(mocks.GenericNetworks))
	for i, network := range mocks.GenericNetworks {
		assert.Equal(t, network.Name, options[i].Name)
		assert.Equal(t, network.URL, options[i].URL)
		assert.Equal(t, network.Name == mocks.GenericNetwork.Name, options[i].Active)
	}
}

func TestNetworkSelector_Activate(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		var selected []string
		networks := mocks.BaselineNetworks(t)
		networks.SelectFunc = func(name string) error {
			selected = append(selected, name)
			return nil
		}

		s := NewNetworkSelector(mocks.NoopLogger, networks, mocks.BaselineReporter(t))

		report := s.Activate(sui.Devnet)

		assert.Equal(t, []string{sui.Devnet}, selected)
		assert.True(t, report.Succeeded())
		assert.Equal(t, dapp.ActionNetwork, report.Action)
	})

	t.Run("reports unknown network", func(t *testing.T) {
		t.Parallel()

		networks := mocks.BaselineNetworks(t)
		networks.SelectFunc = func(name string) error {
			return failure.UnknownNetwork{Network: name}
		}

		s := NewNetworkSelector(mocks.NoopLogger, networks, mocks.BaselineReporter(t))

		report := s.Activate("nowhere")

		assert.Equal(t, failure.KindUnknownNetwork, report.Kind)
	})
}
