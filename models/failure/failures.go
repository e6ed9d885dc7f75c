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

package failure

import (
	"fmt"
)

// NoAccount is the error for an account-dependent action attempted while no
// wallet account is connected.
type NoAccount struct {
	Action string
}

// Error implements the error interface.
func (n NoAccount) Error() string {
	return fmt.Sprintf("no connected account for action %s", n.Action)
}

// Unavailable is the error for a failed call to the RPC node, because of
// transport problems or because the node refused the request.
type Unavailable struct {
	Description Description
	Network     string
	Method      string
}

// Error implements the error interface.
func (u Unavailable) Error() string {
	return fmt.Sprintf("rpc call %s on %s failed: %s", u.Method, u.Network, u.Description)
}

// Rejected is the error for a transaction the node or the chain refused to
// execute.
type Rejected struct {
	Description Description
	Digest      string
}

// Error implements the error interface.
func (r Rejected) Error() string {
	if r.Digest == "" {
		return fmt.Sprintf("transaction rejected: %s", r.Description)
	}
	return fmt.Sprintf("transaction rejected (digest: %s): %s", r.Digest, r.Description)
}

// UnknownNetwork is the error for a network name missing from the registry.
type UnknownNetwork struct {
	Network string
}

// Error implements the error interface.
func (u UnknownNetwork) Error() string {
	return fmt.Sprintf("unknown network %q", u.Network)
}

// InvalidTransaction is the error for a transaction that can't be built.
type InvalidTransaction struct {
	Description Description
	ID          string
}

// Error implements the error interface.
func (i InvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction (id: %s): %s", i.ID, i.Description)
}

// UnknownAccount is the error for an address without a key in the keystore.
type UnknownAccount struct {
	Address string
}

// Error implements the error interface.
func (u UnknownAccount) Error() string {
	return fmt.Sprintf("no key for account %s", u.Address)
}
