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
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// Connection status texts of the panel.
const (
	StatusConnected    = "Wallet connected"
	StatusNotConnected = "Wallet not connected"
)

// WalletStatusPanel composes the widgets into a single view and routes user
// actions to them. Every action outcome ends up in the feed.
type WalletStatusPanel struct {
	log      zerolog.Logger
	session  dapp.Session
	networks dapp.Networks
	balance  *CoinBalanceViewer
	objects  *OwnedObjectsViewer
	minter   *FreeCoinMinter
	sender   *SuiSender
	selector *NetworkSelector
	feed     *Feed
}

func NewWalletStatusPanel(
	log zerolog.Logger,
	session dapp.Session,
	networks dapp.Networks,
	balance *CoinBalanceViewer,
	objects *OwnedObjectsViewer,
	minter *FreeCoinMinter,
	sender *SuiSender,
	selector *NetworkSelector,
	feed *Feed,
) *WalletStatusPanel {

	p := WalletStatusPanel{
		log:      log.With().Str("component", "wallet_status_panel").Logger(),
		session:  session,
		networks: networks,
		balance:  balance,
		objects:  objects,
		minter:   minter,
		sender:   sender,
		selector: selector,
		feed:     feed,
	}

	return &p
}

// Render syncs the viewers and returns the state of the whole panel. Without
// a connected account, no widget issues any network call.
func (p *WalletStatusPanel) Render(ctx context.Context) dapp.Panel {

	err := p.balance.Sync(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("could not sync coin balance")
	}
	err = p.objects.Sync(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("could not sync owned objects")
	}

	panel := dapp.Panel{
		Status:   StatusNotConnected,
		Network:  p.networks.Active(),
		Balance:  p.balance.View(),
		Objects:  p.objects.View(),
		Networks: p.selector.Options(),
		Reports:  p.feed.Recent(),
	}

	account, ok := p.session.Account()
	if ok {
		panel.Connected = true
		panel.Status = StatusConnected
		panel.Address = account.Address
	}

	return panel
}

// Mint activates the free coin minter. A successful mint outdates the shown
// balance and objects.
func (p *WalletStatusPanel) Mint(ctx context.Context) dapp.Report {
	report := p.minter.Activate(ctx)
	if report.Succeeded() {
		p.invalidate()
	}
	return report
}

// Send activates the sender. A successful transfer outdates the shown
// balance and objects.
func (p *WalletStatusPanel) Send(ctx context.Context) dapp.Report {
	report := p.sender.Activate(ctx)
	if report.Succeeded() {
		p.invalidate()
	}
	return report
}

// SelectNetwork activates the network selector for the named network.
func (p *WalletStatusPanel) SelectNetwork(name string) dapp.Report {
	return p.selector.Activate(name)
}

// Connect connects the given account; an empty address connects the first
// available one.
func (p *WalletStatusPanel) Connect(address sui.Address) dapp.Report {
	account, err := p.session.Connect(address)
	report := dapp.NewReport(uuid.NewString(), dapp.ActionConnect, err, "connected "+account.Address.String())
	p.feed.Report(report)
	return report
}

// Disconnect disconnects the wallet.
func (p *WalletStatusPanel) Disconnect() dapp.Report {
	p.session.Disconnect()
	report := dapp.NewReport(uuid.NewString(), dapp.ActionDisconnect, nil, "wallet disconnected")
	p.feed.Report(report)
	return report
}

// Reload queries balance and objects again for the connected account.
func (p *WalletStatusPanel) Reload(ctx context.Context) dapp.Report {

	_, ok := p.session.Account()
	if !ok {
		report := dapp.NewReport(uuid.NewString(), dapp.ActionReload, failure.NoAccount{Action: dapp.ActionReload}, "")
		p.feed.Report(report)
		return report
	}

	var errs *multierror.Error
	err := p.balance.Reload(ctx)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	err = p.objects.Reload(ctx)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs != nil {
		errs.ErrorFormat = joinErrors
	}
	report := dapp.NewReport(uuid.NewString(), dapp.ActionReload, errs.ErrorOrNil(), "balance and objects reloaded")
	p.feed.Report(report)

	return report
}

// Refresh queries balance and objects again without reporting, for periodic
// polling. Without an account it does nothing.
func (p *WalletStatusPanel) Refresh(ctx context.Context) {

	_, ok := p.session.Account()
	if !ok {
		return
	}

	err := p.balance.Reload(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("could not refresh coin balance")
	}
	err = p.objects.Reload(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("could not refresh owned objects")
	}
}

func joinErrors(errs []error) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Addresses returns the accounts available for connection.
func (p *WalletStatusPanel) Addresses() []sui.Address {
	return p.session.Addresses()
}

func (p *WalletStatusPanel) invalidate() {
	p.balance.Invalidate()
	p.objects.Invalidate()
}
