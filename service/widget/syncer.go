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
	"sync"

	"github.com/optakt/sui-dapp/models/sui"
)

// identity is what a viewer's data depends on. Data is fetched again only
// when it changes, or on explicit reload.
type identity struct {
	network string
	owner   sui.Address
}

// syncer holds the fetched value of a viewer together with the identity it
// was fetched for. Each fetch gets a generation; a completion whose
// generation is no longer current is stale and gets dropped.
type syncer[T any] struct {
	mutex      sync.Mutex
	current    identity
	generation uint64
	inflight   bool
	loaded     bool
	value      T
	err        error
}

// begin decides whether a fetch is needed for the given identity and, if so,
// returns the generation the fetch has to complete with.
func (s *syncer[T]) begin(id identity, force bool) (uint64, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !force && s.current == id && (s.loaded || s.inflight) {
		return 0, false
	}

	if s.current != id {
		var zero T
		s.value = zero
		s.loaded = false
		s.err = nil
	}

	s.current = id
	s.generation++
	s.inflight = true

	return s.generation, true
}

// finish stores the outcome of a fetch, unless it is stale.
func (s *syncer[T]) finish(generation uint64, value T, err error) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if generation != s.generation {
		return false
	}

	s.inflight = false
	s.loaded = true
	s.err = err
	if err == nil {
		s.value = value
	}

	return true
}

// invalidate marks the value as outdated, so the next sync fetches again.
func (s *syncer[T]) invalidate() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.generation++
	s.inflight = false
	s.loaded = false
}

// reset forgets everything, dropping fetches still in flight.
func (s *syncer[T]) reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var zero T
	s.generation++
	s.current = identity{}
	s.inflight = false
	s.loaded = false
	s.value = zero
	s.err = nil
}

func (s *syncer[T]) snapshot() (T, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.value, s.loaded, s.err
}
