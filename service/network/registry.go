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

package network

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// Registry maps network names to RPC endpoints and tracks which network is
// active. The set of networks is fixed at construction; only the active
// selection changes.
type Registry struct {
	log      zerolog.Logger
	mutex    *sync.RWMutex
	networks map[string]sui.Network
	active   string
}

// NewRegistry creates a registry of the given endpoints, keyed by network
// name, with the given network active.
func NewRegistry(log zerolog.Logger, endpoints map[string]string, active string) (*Registry, error) {

	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no network endpoints configured")
	}

	networks := make(map[string]sui.Network, len(endpoints))
	for name, url := range endpoints {
		networks[name] = sui.Network{Name: name, URL: url}
	}

	_, ok := networks[active]
	if !ok {
		return nil, failure.UnknownNetwork{Network: active}
	}

	r := Registry{
		log:      log.With().Str("component", "network_registry").Logger(),
		mutex:    &sync.RWMutex{},
		networks: networks,
		active:   active,
	}

	return &r, nil
}

// Active returns the active network.
func (r *Registry) Active() sui.Network {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.networks[r.active]
}

// List returns all networks, sorted by name.
func (r *Registry) List() []sui.Network {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	networks := make([]sui.Network, 0, len(r.networks))
	for _, network := range r.networks {
		networks = append(networks, network)
	}
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Name < networks[j].Name
	})

	return networks
}

// Select makes the named network the active one.
func (r *Registry) Select(name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	network, ok := r.networks[name]
	if !ok {
		return failure.UnknownNetwork{Network: name}
	}

	previous := r.active
	r.active = name

	r.log.Info().
		Str("previous", previous).
		Str("network", network.Name).
		Str("url", network.URL).
		Msg("active network selected")

	return nil
}
