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

package terminal

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/sui"
)

// Panel is the wallet status panel driven by the terminal.
type Panel interface {
	Render(ctx context.Context) dapp.Panel
	Mint(ctx context.Context) dapp.Report
	Send(ctx context.Context) dapp.Report
	SelectNetwork(name string) dapp.Report
	Connect(address sui.Address) dapp.Report
	Disconnect() dapp.Report
	Reload(ctx context.Context) dapp.Report
	Refresh(ctx context.Context)
}

// App is the terminal rendition of the wallet status panel. Actions run as
// commands off the update loop; their reports come back as messages.
type App struct {
	ctx   context.Context
	panel Panel
	poll  time.Duration
	view  dapp.Panel
	busy  string
	last  *dapp.Report
}

// New creates the terminal app. A positive poll interval refreshes balance
// and objects periodically.
func New(ctx context.Context, panel Panel, poll time.Duration) *App {
	a := App{
		ctx:   ctx,
		panel: panel,
		poll:  poll,
	}
	return &a
}

// messages
type panelMsg dapp.Panel

type reportMsg dapp.Report

type tickMsg time.Time

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.render(), a.tick())
}

func (a *App) render() tea.Cmd {
	return func() tea.Msg {
		return panelMsg(a.panel.Render(a.ctx))
	}
}

func (a *App) tick() tea.Cmd {
	if a.poll <= 0 {
		return nil
	}
	return tea.Tick(a.poll, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) refresh() tea.Cmd {
	return func() tea.Msg {
		a.panel.Refresh(a.ctx)
		return panelMsg(a.panel.Render(a.ctx))
	}
}

// act runs one action, unless another one is still running.
func (a *App) act(name string, action func() dapp.Report) tea.Cmd {
	if a.busy != "" {
		return nil
	}
	a.busy = name
	return func() tea.Msg {
		return reportMsg(action())
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(m)
	case panelMsg:
		a.view = dapp.Panel(m)
		return a, nil
	case reportMsg:
		report := dapp.Report(m)
		a.busy = ""
		a.last = &report
		return a, a.render()
	case tickMsg:
		return a, tea.Batch(a.refresh(), a.tick())
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := m.String()
	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "c":
		return a, a.act(dapp.ActionConnect, func() dapp.Report {
			return a.panel.Connect("")
		})
	case "d":
		return a, a.act(dapp.ActionDisconnect, a.panel.Disconnect)
	case "m":
		return a, a.act(dapp.ActionMint, func() dapp.Report {
			return a.panel.Mint(a.ctx)
		})
	case "s":
		return a, a.act(dapp.ActionSend, func() dapp.Report {
			return a.panel.Send(a.ctx)
		})
	case "r":
		return a, a.act(dapp.ActionReload, func() dapp.Report {
			return a.panel.Reload(a.ctx)
		})
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		index := int(key[0] - '1')
		if index < len(a.view.Networks) {
			name := a.view.Networks[index].Name
			return a, a.act(dapp.ActionNetwork, func() dapp.Report {
				return a.panel.SelectNetwork(name)
			})
		}
	}

	return a, nil
}

// styles
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	connectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	offStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	failureStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	activeStyle    = lipgloss.NewStyle().Bold(true)
)

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sui dapp"))
	b.WriteString("\n\n")

	if a.view.Connected {
		b.WriteString(connectedStyle.Render(a.view.Status))
		b.WriteString(" " + a.view.Address.Short())
	} else {
		b.WriteString(offStyle.Render(a.view.Status))
	}
	b.WriteString("\n")

	b.WriteString("Networks:")
	for i, option := range a.view.Networks {
		label := fmt.Sprintf(" [%d] %s", i+1, option.Name)
		if option.Active {
			label = activeStyle.Render(label + "*")
		}
		b.WriteString(label)
	}
	b.WriteString("\n\n")

	if a.view.Connected {
		b.WriteString(a.renderBalance())
		b.WriteString(a.renderObjects())
	}

	if a.busy != "" {
		b.WriteString(fmt.Sprintf("%s in progress...\n", a.busy))
	}
	if a.last != nil {
		b.WriteString(renderReport(*a.last))
		b.WriteString("\n")
	}

	b.WriteString("\n[c] connect  [d] disconnect  [m] mint  [s] send  [r] reload  [1-9] network  [q] quit\n")

	return b.String()
}

func (a *App) renderBalance() string {
	balance := a.view.Balance
	title := titleStyle.Render("Balance")
	if balance.Error != "" {
		return fmt.Sprintf("%s\n%s\n\n", title, failureStyle.Render(balance.Error))
	}
	if !balance.Loaded {
		return fmt.Sprintf("%s\nloading...\n\n", title)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n%s %s (%d coins)\n", title, balance.Formatted, balance.Symbol, len(balance.Coins)))
	for _, coin := range balance.Coins {
		b.WriteString(fmt.Sprintf("  %s  %s\n", coin.CoinObjectID.Short(), coin.Balance))
	}
	b.WriteString("\n")
	return b.String()
}

func (a *App) renderObjects() string {
	objects := a.view.Objects
	title := titleStyle.Render("Owned objects")
	if objects.Error != "" {
		return fmt.Sprintf("%s\n%s\n\n", title, failureStyle.Render(objects.Error))
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d)\n", title, len(objects.Items)))
	for _, object := range objects.Items {
		b.WriteString(fmt.Sprintf("  %s  %s\n", object.ObjectID.Short(), object.Type))
	}
	b.WriteString("\n")
	return b.String()
}

func renderReport(report dapp.Report) string {
	line := fmt.Sprintf("%s: %s", report.Action, report.Message)
	if report.Digest != "" {
		line += " (" + report.Digest + ")"
	}
	if !report.Succeeded() {
		return failureStyle.Render(line)
	}
	return line
}
