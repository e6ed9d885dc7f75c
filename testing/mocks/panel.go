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

package mocks

import (
	"context"
	"testing"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

type Panel struct {
	RenderFunc        func(ctx context.Context) dapp.Panel
	MintFunc          func(ctx context.Context) dapp.Report
	SendFunc          func(ctx context.Context) dapp.Report
	SelectNetworkFunc func(name string) dapp.Report
	ConnectFunc       func(address sui.Address) dapp.Report
	DisconnectFunc    func() dapp.Report
	ReloadFunc        func(ctx context.Context) dapp.Report
	RefreshFunc       func(ctx context.Context)
	AddressesFunc     func() []sui.Address
}

// GenericPanel returns the panel of a connected wallet with loaded widgets.
func GenericPanel() dapp.Panel {
	coins := GenericCoins(2)
	panel := dapp.Panel{
		Connected: true,
		Status:    "Wallet connected",
		Address:   GenericAddress,
		Network:   GenericNetwork,
		Balance: dapp.Balance{
			CoinType:  GenericCoinType,
			Coins:     coins,
			Total:     "3000000000",
			Formatted: "3",
			Symbol:    GenericMetadata.Symbol,
			Loaded:    true,
		},
		Objects: dapp.Objects{
			Items:  GenericObjects(1),
			Loaded: true,
		},
		Networks: []dapp.NetworkOption{
			{Name: sui.Devnet, URL: sui.Fullnodes[sui.Devnet]},
			{Name: sui.Testnet, URL: sui.Fullnodes[sui.Testnet], Active: true},
		},
		Reports: []dapp.Report{GenericReport(dapp.ActionMint)},
	}
	return panel
}

// GenericReport returns a successful report for the given action.
func GenericReport(action string) dapp.Report {
	report := dapp.Report{
		ID:      "4b8c9a3e-2f0e-4d1b-9a57-1c2d3e4f5a6b",
		Action:  action,
		Kind:    failure.KindSuccess,
		Digest:  GenericDigest,
		Message: action + " done",
	}
	return report
}

func BaselinePanel(t *testing.T) *Panel {
	t.Helper()

	p := Panel{
		RenderFunc: func(ctx context.Context) dapp.Panel {
			return GenericPanel()
		},
		MintFunc: func(ctx context.Context) dapp.Report {
			return GenericReport(dapp.ActionMint)
		},
		SendFunc: func(ctx context.Context) dapp.Report {
			return GenericReport(dapp.ActionSend)
		},
		SelectNetworkFunc: func(name string) dapp.Report {
			return GenericReport(dapp.ActionNetwork)
		},
		ConnectFunc: func(address sui.Address) dapp.Report {
			return GenericReport(dapp.ActionConnect)
		},
		DisconnectFunc: func() dapp.Report {
			return GenericReport(dapp.ActionDisconnect)
		},
		ReloadFunc: func(ctx context.Context) dapp.Report {
			return GenericReport(dapp.ActionReload)
		},
		RefreshFunc: func(ctx context.Context) {},
		AddressesFunc: func() []sui.Address {
			return []sui.Address{GenericAddress, GenericRecipient}
		},
	}

	return &p
}

func (p *Panel) Render(ctx context.Context) dapp.Panel {
	return p.RenderFunc(ctx)
}

func (p *Panel) Mint(ctx context.Context) dapp.Report {
	return p.MintFunc(ctx)
}

func (p *Panel) Send(ctx context.Context) dapp.Report {
	return p.SendFunc(ctx)
}

func (p *Panel) SelectNetwork(name string) dapp.Report {
	return p.SelectNetworkFunc(name)
}

func (p *Panel) Connect(address sui.Address) dapp.Report {
	return p.ConnectFunc(address)
}

func (p *Panel) Disconnect() dapp.Report {
	return p.DisconnectFunc()
}

func (p *Panel) Reload(ctx context.Context) dapp.Report {
	return p.ReloadFunc(ctx)
}

func (p *Panel) Refresh(ctx context.Context) {
	p.RefreshFunc(ctx)
}

func (p *Panel) Addresses() []sui.Address {
	return p.AddressesFunc()
}
