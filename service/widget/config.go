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
	"github.com/optakt/sui-dapp/models/sui"
)

// MintConfig is the on-chain addressing of the free coin mint.
type MintConfig struct {
	Target    sui.MoveTarget
	Object    sui.ObjectID
	Amount    uint64
	GasBudget uint64
}

// TransferConfig is the destination and amount of native token transfers.
type TransferConfig struct {
	Recipient sui.Address
	Amount    uint64
	GasBudget uint64
}
