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
	"context"

	"github.com/optakt/sui-dapp/models/sui"
)

type networkKey struct{}

// WithNetwork pins the network that RPC calls made with the returned context
// are sent to, regardless of later changes of the active network.
func WithNetwork(ctx context.Context, network sui.Network) context.Context {
	return context.WithValue(ctx, networkKey{}, network)
}

// NetworkFromContext returns the network pinned on the context, if any.
func NetworkFromContext(ctx context.Context) (sui.Network, bool) {
	network, ok := ctx.Value(networkKey{}).(sui.Network)
	return network, ok
}
