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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
	"github.com/optakt/sui-dapp/testing/mocks"
)

func TestNew(t *testing.T) {
	client := mocks.BaselineClient(t)

	tr := New(client)

	if assert.NotNil(t, tr) {
		assert.Equal(t, client, tr.client)
	}
}

func TestTransactor_Build(t *testing.T) {
	mint := sui.MoveCall{
		Target: mocks.GenericTarget,
		Arguments: []sui.Argument{
			sui.Object(mocks.GenericMintObject),
			sui.U64(10),
			sui.Pure(mocks.GenericAddress),
		},
	}
	send := sui.SplitTransfer{
		Amounts:   []uint64{100_000_000},
		Recipient: mocks.GenericRecipient,
	}
	baseline := func(commands ...sui.Command) sui.Transaction {
		return sui.Transaction{
			ID:        "tx",
			Sender:    mocks.GenericAddress,
			GasBudget: 5000,
			Commands:  commands,
		}
	}

	t.Run("nominal case with move call", func(t *testing.T) {
		t.Parallel()

		client := mocks.BaselineClient(t)
		client.MoveCallFunc = func(ctx context.Context, sender sui.Address, call sui.MoveCall, gasBudget uint64) (sui.TransactionBytes, error) {
			assert.Equal(t, mocks.GenericAddress, sender)
			assert.Equal(t, mint, call)
			assert.Equal(t, uint64(5000), gasBudget)
			return mocks.GenericTxBytes, nil
		}

		got, err := New(client).Build(context.Background(), baseline(mint))

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericTxBytes, got)
	})

	t.Run("nominal case with split transfer", func(t *testing.T) {
		t.Parallel()

		coins := mocks.GenericCoins(2)
		client := mocks.BaselineClient(t)
		client.CoinsFunc = func(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {
			assert.Equal(t, mocks.GenericAddress, owner)
			assert.Equal(t, sui.NativeCoinType, coinType)
			return coins, nil
		}
		client.PaySuiFunc = func(ctx context.Context, sender sui.Address, inputs []sui.ObjectID, recipients []sui.Address, amounts []uint64, gasBudget uint64) (sui.TransactionBytes, error) {
			assert.Equal(t, coins.IDs(), inputs)
			assert.Equal(t, []sui.Address{mocks.GenericRecipient}, recipients)
			assert.Equal(t, []uint64{100_000_000}, amounts)
			return mocks.GenericTxBytes, nil
		}

		got, err := New(client).Build(context.Background(), baseline(send))

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericTxBytes, got)
	})

	t.Run("handles missing sender", func(t *testing.T) {
		t.Parallel()

		tx := baseline(mint)
		tx.Sender = ""

		_, err := New(mocks.BaselineClient(t)).Build(context.Background(), tx)

		assert.Equal(t, failure.KindInvalid, failure.KindOf(err))
	})

	t.Run("handles missing gas budget", func(t *testing.T) {
		t.Parallel()

		tx := baseline(mint)
		tx.GasBudget = 0

		_, err := New(mocks.BaselineClient(t)).Build(context.Background(), tx)

		assert.Equal(t, failure.KindInvalid, failure.KindOf(err))
	})

	t.Run("handles batched commands", func(t *testing.T) {
		t.Parallel()

		_, err := New(mocks.BaselineClient(t)).Build(context.Background(), baseline(mint, send))

		assert.Equal(t, failure.KindInvalid, failure.KindOf(err))
	})

	t.Run("handles empty split", func(t *testing.T) {
		t.Parallel()

		_, err := New(mocks.BaselineClient(t)).Build(context.Background(), baseline(sui.SplitTransfer{Recipient: mocks.GenericRecipient}))

		assert.Equal(t, failure.KindInvalid, failure.KindOf(err))
	})

	t.Run("handles missing gas coins", func(t *testing.T) {
		t.Parallel()

		client := mocks.BaselineClient(t)
		client.CoinsFunc = func(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {
			return nil, nil
		}

		_, err := New(client).Build(context.Background(), baseline(send))

		assert.Equal(t, failure.KindRejected, failure.KindOf(err))
	})

	t.Run("handles gas coin query failure", func(t *testing.T) {
		t.Parallel()

		client := mocks.BaselineClient(t)
		client.CoinsFunc = func(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {
			return nil, mocks.GenericError
		}

		_, err := New(client).Build(context.Background(), baseline(send))

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}
