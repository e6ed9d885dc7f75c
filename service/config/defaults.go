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
	"os"
	"path/filepath"
	"time"

	"github.com/optakt/sui-dapp/models/sui"
)

// Default values of the configuration keys.
const (
	DefaultCoinType       = "0xb564841a2b36b9e350bb0bbde52ac34310e2f6b0eed2cd0efe76eeb53d88d399::faucetucoin::FAUCETUCOIN"
	DefaultMintTarget     = "0xb564841a2b36b9e350bb0bbde52ac34310e2f6b0eed2cd0efe76eeb53d88d399::faucetucoin::mint"
	DefaultMintObject     = "0x771e68e7128b906eb3072e7ab246a3a4380e9070a7f1b0b9f8f3a6f7644f879f"
	DefaultMintAmount     = 10
	DefaultTransferAmount = 100_000_000
	DefaultGasBudget      = 10_000_000
	DefaultFeedSize       = 20
	DefaultTimeout        = 30 * time.Second
	DefaultMaxPages       = 20
	DefaultCacheSize      = 1024
)

// DefaultKeystore is where the Sui CLI keeps its keys.
func DefaultKeystore() string {
	return filepath.Join(os.Getenv("HOME"), ".sui", "sui_config", "sui.keystore")
}

func defaults() map[string]interface{} {
	values := map[string]interface{}{
		"network.active":        sui.Testnet,
		"wallet.keystore":       DefaultKeystore(),
		"wallet.address":        "",
		"wallet.connect":        true,
		"balance.coin_type":     DefaultCoinType,
		"balance.poll_interval": time.Duration(0),
		"objects.struct_type":   "",
		"mint.target":           DefaultMintTarget,
		"mint.object":           DefaultMintObject,
		"mint.amount":           DefaultMintAmount,
		"transfer.recipient":    "",
		"transfer.amount":       DefaultTransferAmount,
		"gas.budget":            DefaultGasBudget,
		"feed.size":             DefaultFeedSize,
		"rpc.timeout":           DefaultTimeout,
		"rpc.max_pages":         DefaultMaxPages,
		"cache.size":            DefaultCacheSize,
	}
	for name, url := range sui.Fullnodes {
		values["network.endpoints."+name] = url
	}
	return values
}
