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

package page

import (
	"context"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/sui"
)

// Panel is the wallet status panel driven by the page.
type Panel interface {
	Render(ctx context.Context) dapp.Panel
	Mint(ctx context.Context) dapp.Report
	Send(ctx context.Context) dapp.Report
	SelectNetwork(name string) dapp.Report
	Connect(address sui.Address) dapp.Report
	Disconnect() dapp.Report
	Reload(ctx context.Context) dapp.Report
	Addresses() []sui.Address
}
