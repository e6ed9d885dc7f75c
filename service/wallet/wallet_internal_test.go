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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
	"github.com/optakt/sui-dapp/testing/mocks"
)

type transactor struct {
	BuildFunc func(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error)
}

func (t *transactor) Build(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error) {
	return t.BuildFunc(ctx, tx)
}

func baselineTransactor() *transactor {
	return &transactor{
		BuildFunc: func(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error) {
			return mocks.GenericTxBytes, nil
		},
	}
}

func baselineTransaction() sui.Transaction {
	return sui.Transaction{
		ID:        "tx",
		Sender:    mocks.GenericAddress,
		GasBudget: 5000,
		Commands:  []sui.Command{sui.SplitTransfer{Amounts: []uint64{1}, Recipient: mocks.GenericRecipient}},
	}
}

func TestNew(t *testing.T) {
	accounts := mocks.BaselineSession(t)
	build := baselineTransactor()
	sign := mocks.BaselineSigner(t)
	execute := mocks.BaselineClient(t)

	w := New(mocks.NoopLogger, accounts, build, sign, execute)

	if assert.NotNil(t, w) {
		assert.Equal(t, accounts, w.accounts)
		assert.Equal(t, build, w.build)
		assert.Equal(t, sign, w.sign)
		assert.Equal(t, execute, w.execute)
	}
}

func TestWallet_SignAndExecute(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		raw, err := base64.StdEncoding.DecodeString(mocks.GenericTxBytes.TxBytes)
		require.NoError(t, err)

		sign := mocks.BaselineSigner(t)
		sign.SignFunc = func(address sui.Address, txBytes []byte) (string, error) {
			assert.Equal(t, mocks.GenericAddress, address)
			assert.Equal(t, raw, txBytes)
			return mocks.GenericSignature, nil
		}
		executions := 0
		execute := mocks.BaselineClient(t)
		execute.ExecuteFunc = func(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {
			executions++
			assert.Equal(t, mocks.GenericTxBytes.TxBytes, txBytes)
			assert.Equal(t, []string{mocks.GenericSignature}, signatures)
			return mocks.GenericReceipt, nil
		}

		w := New(mocks.NoopLogger, mocks.BaselineSession(t), baselineTransactor(), sign, execute)

		receipt, err := w.SignAndExecute(context.Background(), baselineTransaction())

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericReceipt, receipt)
		assert.Equal(t, 1, executions)
	})

	t.Run("handles disconnected wallet", func(t *testing.T) {
		t.Parallel()

		build := baselineTransactor()
		build.BuildFunc = func(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error) {
			t.Fatal("transaction built without account")
			return sui.TransactionBytes{}, nil
		}

		w := New(mocks.NoopLogger, mocks.DisconnectedSession(t), build, mocks.BaselineSigner(t), mocks.BaselineClient(t))

		_, err := w.SignAndExecute(context.Background(), baselineTransaction())

		assert.Equal(t, failure.KindNoAccount, failure.KindOf(err))
	})

	t.Run("handles foreign sender", func(t *testing.T) {
		t.Parallel()

		tx := baselineTransaction()
		tx.Sender = mocks.GenericRecipient

		w := New(mocks.NoopLogger, mocks.BaselineSession(t), baselineTransactor(), mocks.BaselineSigner(t), mocks.BaselineClient(t))

		_, err := w.SignAndExecute(context.Background(), tx)

		assert.Equal(t, failure.KindInvalid, failure.KindOf(err))
	})

	t.Run("handles build failure", func(t *testing.T) {
		t.Parallel()

		build := baselineTransactor()
		build.BuildFunc = func(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error) {
			return sui.TransactionBytes{}, mocks.GenericError
		}

		w := New(mocks.NoopLogger, mocks.BaselineSession(t), build, mocks.BaselineSigner(t), mocks.BaselineClient(t))

		_, err := w.SignAndExecute(context.Background(), baselineTransaction())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles invalid transaction bytes", func(t *testing.T) {
		t.Parallel()

		build := baselineTransactor()
		build.BuildFunc = func(ctx context.Context, tx sui.Transaction) (sui.TransactionBytes, error) {
			return sui.TransactionBytes{TxBytes: "%%%"}, nil
		}

		w := New(mocks.NoopLogger, mocks.BaselineSession(t), build, mocks.BaselineSigner(t), mocks.BaselineClient(t))

		_, err := w.SignAndExecute(context.Background(), baselineTransaction())

		assert.Error(t, err)
	})

	t.Run("handles signer failure", func(t *testing.T) {
		t.Parallel()

		sign := mocks.BaselineSigner(t)
		sign.SignFunc = func(address sui.Address, txBytes []byte) (string, error) {
			return "", mocks.GenericError
		}

		w := New(mocks.NoopLogger, mocks.BaselineSession(t), baselineTransactor(), sign, mocks.BaselineClient(t))

		_, err := w.SignAndExecute(context.Background(), baselineTransaction())

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles submission failure", func(t *testing.T) {
		t.Parallel()

		execute := mocks.BaselineClient(t)
		execute.ExecuteFunc = func(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {
			return sui.Receipt{}, failure.Unavailable{Network: sui.Testnet}
		}

		w := New(mocks.NoopLogger, mocks.BaselineSession(t), baselineTransactor(), mocks.BaselineSigner(t), execute)

		_, err := w.SignAndExecute(context.Background(), baselineTransaction())

		assert.Equal(t, failure.KindNetwork, failure.KindOf(err))
	})

	t.Run("handles failed execution", func(t *testing.T) {
		t.Parallel()

		execute := mocks.BaselineClient(t)
		execute.ExecuteFunc = func(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {
			return sui.Receipt{Digest: mocks.GenericDigest, Status: sui.StatusFailure, Error: "InsufficientCoinBalance"}, nil
		}

		w := New(mocks.NoopLogger, mocks.BaselineSession(t), baselineTransactor(), mocks.BaselineSigner(t), execute)

		receipt, err := w.SignAndExecute(context.Background(), baselineTransaction())

		var reErr failure.Rejected
		require.ErrorAs(t, err, &reErr)
		assert.Equal(t, mocks.GenericDigest, reErr.Digest)
		assert.Equal(t, mocks.GenericDigest, receipt.Digest)
	})
}
