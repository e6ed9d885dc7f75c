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

package sui

// Network is a named RPC endpoint of a Sui network.
type Network struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Names of the public Sui networks.
const (
	Mainnet  = "mainnet"
	Testnet  = "testnet"
	Devnet   = "devnet"
	Localnet = "localnet"
)

// Fullnodes maps the public networks to their fullnode RPC endpoints.
var Fullnodes = map[string]string{
	Mainnet:  "https://fullnode.mainnet.sui.io:443",
	Testnet:  "https://fullnode.testnet.sui.io:443",
	Devnet:   "https://fullnode.devnet.sui.io:443",
	Localnet: "http://127.0.0.1:9000",
}
