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
	"fmt"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/sui"
)

// OwnedObjectsViewer shows the objects owned by the connected account, with
// the same fetch discipline as the coin balance viewer.
type OwnedObjectsViewer struct {
	log        zerolog.Logger
	accounts   dapp.Accounts
	endpoints  Endpoints
	client     dapp.ObjectReader
	structType string
	state      syncer[[]sui.OwnedObject]
}

// NewOwnedObjectsViewer creates a viewer for owned objects. An empty struct
// type shows all objects.
func NewOwnedObjectsViewer(log zerolog.Logger, accounts dapp.Accounts, endpoints Endpoints, client dapp.ObjectReader, structType string) *OwnedObjectsViewer {
	v := OwnedObjectsViewer{
		log:        log.With().Str("component", "owned_objects_viewer").Logger(),
		accounts:   accounts,
		endpoints:  endpoints,
		client:     client,
		structType: structType,
	}
	return &v
}

func (v *OwnedObjectsViewer) Sync(ctx context.Context) error {
	return v.sync(ctx, false)
}

func (v *OwnedObjectsViewer) Reload(ctx context.Context) error {
	return v.sync(ctx, true)
}

func (v *OwnedObjectsViewer) Invalidate() {
	v.state.invalidate()
}

func (v *OwnedObjectsViewer) sync(ctx context.Context, force bool) error {

	account, ok := v.accounts.Account()
	if !ok {
		v.state.reset()
		return nil
	}

	network := v.endpoints.Active()
	ctx = dapp.WithNetwork(ctx, network)

	id := identity{
		network: network.Name,
		owner:   account.Address,
	}
	generation, ok := v.state.begin(id, force)
	if !ok {
		return nil
	}

	objects, err := v.client.OwnedObjects(ctx, account.Address, v.structType)
	v.state.finish(generation, objects, err)
	if err != nil {
		return fmt.Errorf("could not query owned objects: %w", err)
	}

	return nil
}

func (v *OwnedObjectsViewer) View() dapp.Objects {
	objects, loaded, err := v.state.snapshot()
	view := dapp.Objects{
		Items:  objects,
		Loaded: loaded,
	}
	if err != nil {
		view.Error = err.Error()
	}
	return view
}
