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
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
)

// NetworkSelector lists the configured networks and switches the active one.
// It holds no state of its own.
type NetworkSelector struct {
	log      zerolog.Logger
	networks dapp.Networks
	report   dapp.Reporter
}

func NewNetworkSelector(log zerolog.Logger, networks dapp.Networks, report dapp.Reporter) *NetworkSelector {
	s := NetworkSelector{
		log:      log.With().Str("component", "network_selector").Logger(),
		networks: networks,
		report:   report,
	}
	return &s
}

// Options returns one option per configured network.
func (s *NetworkSelector) Options() []dapp.NetworkOption {
	active := s.networks.Active()
	networks := s.networks.List()
	options := make([]dapp.NetworkOption, 0, len(networks))
	for _, network := range networks {
		option := dapp.NetworkOption{
			Name:   network.Name,
			URL:    network.URL,
			Active: network.Name == active.Name,
		}
		options = append(options, option)
	}
	return options
}

// Activate requests the named network to become the active one.
func (s *NetworkSelector) Activate(name string) dapp.Report {
	err := s.networks.Select(name)
	report := dapp.NewReport(uuid.NewString(), dapp.ActionNetwork, err, "selected network "+name)
	s.report.Report(report)
	return report
}
