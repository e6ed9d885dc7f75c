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

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
	"github.com/optakt/sui-dapp/testing/mocks"
)

func TestNewRegistry(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		r, err := NewRegistry(mocks.NoopLogger, sui.Fullnodes, sui.Testnet)

		require.NoError(t, err)
		assert.Len(t, r.networks, len(sui.Fullnodes))
		assert.Equal(t, sui.Testnet, r.active)
	})

	t.Run("handles missing endpoints", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(mocks.NoopLogger, nil, sui.Testnet)

		assert.Error(t, err)
	})

	t.Run("handles unknown active network", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(mocks.NoopLogger, sui.Fullnodes, "nowhere")

		var nwErr failure.UnknownNetwork
		require.ErrorAs(t, err, &nwErr)
		assert.Equal(t, "nowhere", nwErr.Network)
	})
}

func TestRegistry_List(t *testing.T) {
	r, err := NewRegistry(mocks.NoopLogger, sui.Fullnodes, sui.Testnet)
	require.NoError(t, err)

	networks := r.List()

	require.Len(t, networks, 4)
	assert.Equal(t, sui.Devnet, networks[0].Name)
	assert.Equal(t, sui.Localnet, networks[1].Name)
	assert.Equal(t, sui.Mainnet, networks[2].Name)
	assert.Equal(t, sui.Testnet, networks[3].Name)
	assert.Equal(t, sui.Fullnodes[sui.Devnet], networks[0].URL)
}

func TestRegistry_Select(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		r, err := NewRegistry(mocks.NoopLogger, sui.Fullnodes, sui.Testnet)
		require.NoError(t, err)

		err = r.Select(sui.Devnet)

		require.NoError(t, err)
		assert.Equal(t, sui.Network{Name: sui.Devnet, URL: sui.Fullnodes[sui.Devnet]}, r.Active())
	})

	t.Run("keeps active network on unknown name", func(t *testing.T) {
		t.Parallel()

		r, err := NewRegistry(mocks.NoopLogger, sui.Fullnodes, sui.Testnet)
		require.NoError(t, err)

		err = r.Select("nowhere")

		assert.Equal(t, failure.KindUnknownNetwork, failure.KindOf(err))
		assert.Equal(t, sui.Testnet, r.Active().Name)
	})
}
