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

	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/sui"
)

// Endpoints exposes the active network.
type Endpoints interface {
	Active() sui.Network
}

// BalanceClient is what the balance viewer needs from the RPC node.
type BalanceClient interface {
	dapp.CoinReader
	dapp.MetadataReader
}

type balance struct {
	coins    sui.Coins
	metadata sui.CoinMetadata
}

// CoinBalanceViewer shows the coins of one coin type owned by the connected
// account. Coins are queried once per connected account and network; renders
// in between reuse the last result.
type CoinBalanceViewer struct {
	log       zerolog.Logger
	accounts  dapp.Accounts
	endpoints Endpoints
	client    BalanceClient
	coinType  string
	state     syncer[balance]
}

// NewCoinBalanceViewer creates a viewer for coins of the given type.
func NewCoinBalanceViewer(log zerolog.Logger, accounts dapp.Accounts, endpoints Endpoints, client BalanceClient, coinType string) *CoinBalanceViewer {
	v := CoinBalanceViewer{
		log:       log.With().Str("component", "coin_balance_viewer").Logger(),
		accounts:  accounts,
		endpoints: endpoints,
		client:    client,
		coinType:  coinType,
	}
	return &v
}

// Sync queries the coins if the connected account or the active network
// changed since the last query. Without an account, it clears the view and
// queries nothing.
func (v *CoinBalanceViewer) Sync(ctx context.Context) error {
	return v.sync(ctx, false)
}

// Reload queries the coins again for the current account and network.
func (v *CoinBalanceViewer) Reload(ctx context.Context) error {
	return v.sync(ctx, true)
}

// Invalidate marks the shown coins as outdated, so the next sync queries
// them again.
func (v *CoinBalanceViewer) Invalidate() {
	v.state.invalidate()
}

func (v *CoinBalanceViewer) sync(ctx context.Context, force bool) error {

	account, ok := v.accounts.Account()
	if !ok {
		v.state.reset()
		return nil
	}

	// The query goes to the network the identity names, even if the active
	// network changes while it runs.
	network := v.endpoints.Active()
	ctx = dapp.WithNetwork(ctx, network)

	id := identity{
		network: network.Name,
		owner:   account.Address,
	}
	generation, ok := v.state.begin(id, force)
	if !ok {
		return nil
	}

	log := v.log.With().Str("network", id.network).Str("owner", id.owner.String()).Logger()

	coins, err := v.client.Coins(ctx, account.Address, v.coinType)
	if err != nil {
		v.state.finish(generation, balance{}, err)
		return fmt.Errorf("could not query coins: %w", err)
	}

	metadata, err := v.client.CoinMetadata(ctx, v.coinType)
	if err != nil {
		log.Warn().Err(err).Str("coin_type", v.coinType).Msg("could not get coin metadata")
	}

	stored := v.state.finish(generation, balance{coins: coins, metadata: metadata}, nil)
	if !stored {
		log.Debug().Msg("dropped stale coin query result")
		return nil
	}

	log.Debug().Int("coins", len(coins)).Msg("coin balance updated")

	return nil
}

// View returns the current state of the viewer.
func (v *CoinBalanceViewer) View() dapp.Balance {

	value, loaded, err := v.state.snapshot()

	view := dapp.Balance{
		CoinType: v.coinType,
		Coins:    value.coins,
		Loaded:   loaded,
		Symbol:   value.metadata.Symbol,
	}
	if err != nil {
		view.Error = err.Error()
		return view
	}

	total, err := value.coins.Total()
	if err != nil {
		view.Error = err.Error()
		return view
	}
	view.Total = total.String()
	view.Formatted = sui.FormatAmount(total, value.metadata.Decimals)

	return view
}
