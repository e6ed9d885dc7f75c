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

package config

import (
	"fmt"

	"github.com/optakt/sui-dapp/models/sui"
	"github.com/optakt/sui-dapp/service/widget"
)

// MintSettings returns the settings of the free coin minter.
func (c Config) MintSettings() (widget.MintConfig, error) {
	target, err := sui.ParseMoveTarget(c.Mint.Target)
	if err != nil {
		return widget.MintConfig{}, fmt.Errorf("could not parse mint target: %w", err)
	}
	object, err := sui.ParseAddress(c.Mint.Object)
	if err != nil {
		return widget.MintConfig{}, fmt.Errorf("could not parse mint object: %w", err)
	}
	mint := widget.MintConfig{
		Target:    target,
		Object:    object,
		Amount:    c.Mint.Amount,
		GasBudget: c.Gas.Budget,
	}
	return mint, nil
}

// TransferSettings returns the settings of the sender.
func (c Config) TransferSettings() (widget.TransferConfig, error) {
	recipient, err := sui.ParseAddress(c.Transfer.Recipient)
	if err != nil {
		return widget.TransferConfig{}, fmt.Errorf("could not parse recipient: %w", err)
	}
	transfer := widget.TransferConfig{
		Recipient: recipient,
		Amount:    c.Transfer.Amount,
		GasBudget: c.Gas.Budget,
	}
	return transfer, nil
}

// WalletAddress returns the account to connect at startup. The zero address
// stands for the first key of the keystore.
func (c Config) WalletAddress() (sui.Address, error) {
	if c.Wallet.Address == "" {
		return "", nil
	}
	address, err := sui.ParseAddress(c.Wallet.Address)
	if err != nil {
		return "", fmt.Errorf("could not parse wallet address: %w", err)
	}
	return address, nil
}
