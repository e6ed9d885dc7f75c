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

package dapp

import (
	"github.com/optakt/sui-dapp/models/sui"
)

// Panel is the rendered state of the wallet status panel.
type Panel struct {
	Connected bool            `json:"connected"`
	Status    string          `json:"status"`
	Address   sui.Address     `json:"address,omitempty"`
	Network   sui.Network     `json:"network"`
	Balance   Balance         `json:"balance"`
	Objects   Objects         `json:"objects"`
	Networks  []NetworkOption `json:"networks"`
	Reports   []Report        `json:"reports"`
}

// Balance is the rendered state of the coin balance viewer.
type Balance struct {
	CoinType  string    `json:"coin_type"`
	Coins     sui.Coins `json:"coins"`
	Total     string    `json:"total"`
	Formatted string    `json:"formatted,omitempty"`
	Symbol    string    `json:"symbol,omitempty"`
	Loaded    bool      `json:"loaded"`
	Error     string    `json:"error,omitempty"`
}

// Objects is the rendered state of the owned objects viewer.
type Objects struct {
	Items  []sui.OwnedObject `json:"items"`
	Loaded bool              `json:"loaded"`
	Error  string            `json:"error,omitempty"`
}

// NetworkOption is one entry of the network selector.
type NetworkOption struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}
