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

package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-dapp/metrics/rcrowley"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
	"github.com/optakt/sui-dapp/testing/mocks"
)

func TestNewClient(t *testing.T) {
	reg := prometheus.NewRegistry()
	client := mocks.BaselineClient(t)
	tm := rcrowley.NewTime("rpc")
	spans := NoopTracer()

	c := NewClient(client, reg, tm, spans)

	assert.Equal(t, client, c.client)
	assert.Equal(t, tm, c.time)
	assert.Equal(t, spans, c.spans)
	assert.NotNil(t, c.requests)
	assert.NotNil(t, c.failures)
}

func TestClient(t *testing.T) {
	t.Run("counts and times successful calls", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		tm := rcrowley.NewTime("rpc")
		c := NewClient(mocks.BaselineClient(t), reg, tm, NoopTracer())
		ctx := context.Background()

		coins, err := c.Coins(ctx, mocks.GenericAddress, mocks.GenericCoinType)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericCoins(3), coins)
		_, err = c.Coins(ctx, mocks.GenericAddress, mocks.GenericCoinType)
		require.NoError(t, err)
		_, err = c.OwnedObjects(ctx, mocks.GenericAddress, "")
		require.NoError(t, err)
		_, err = c.CoinMetadata(ctx, mocks.GenericCoinType)
		require.NoError(t, err)
		_, err = c.MoveCall(ctx, mocks.GenericAddress, sui.MoveCall{Target: mocks.GenericTarget}, 1)
		require.NoError(t, err)
		_, err = c.PaySui(ctx, mocks.GenericAddress, nil, nil, nil, 1)
		require.NoError(t, err)
		receipt, err := c.Execute(ctx, mocks.GenericTxBytes.TxBytes, []string{mocks.GenericSignature})
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericReceipt, receipt)

		assert.Equal(t, float64(2), testutil.ToFloat64(c.requests.WithLabelValues("coins")))
		assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("execute")))
		assert.Equal(t, 0, testutil.CollectAndCount(c.failures))
		assert.Equal(t, int64(2), tm.Count("coins"))
		assert.Equal(t, int64(1), tm.Count("pay_sui"))
	})

	t.Run("counts failures by kind", func(t *testing.T) {
		t.Parallel()

		client := mocks.BaselineClient(t)
		client.CoinsFunc = func(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {
			return nil, failure.Unavailable{Network: sui.Testnet, Method: "suix_getCoins"}
		}
		client.ExecuteFunc = func(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {
			return sui.Receipt{}, failure.Rejected{Digest: mocks.GenericDigest}
		}

		c := NewClient(client, prometheus.NewRegistry(), rcrowley.NewTime("rpc"), NoopTracer())

		_, err := c.Coins(context.Background(), mocks.GenericAddress, mocks.GenericCoinType)
		assert.Error(t, err)
		_, err = c.Execute(context.Background(), mocks.GenericTxBytes.TxBytes, nil)
		assert.Error(t, err)

		assert.Equal(t, float64(1), testutil.ToFloat64(c.failures.WithLabelValues("coins", string(failure.KindNetwork))))
		assert.Equal(t, float64(1), testutil.ToFloat64(c.failures.WithLabelValues("execute", string(failure.KindRejected))))
	})
}

func TestServer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewClient(mocks.BaselineClient(t), reg, rcrowley.NewTime("rpc"), NoopTracer())
	_, err := c.Coins(context.Background(), mocks.GenericAddress, mocks.GenericCoinType)
	require.NoError(t, err)

	s := NewServer(mocks.NoopLogger, "127.0.0.1:0", reg)
	server := httptest.NewServer(s.server.Handler)
	defer server.Close()

	res, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `sui_dapp_rpc_requests_total{method="coins"} 1`)
}
