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

import (
	"strconv"
)

// ArgumentKind is the kind of a move-call argument.
type ArgumentKind string

// Supported argument kinds.
const (
	KindObject  ArgumentKind = "object"
	KindU64     ArgumentKind = "u64"
	KindAddress ArgumentKind = "address"
)

// Argument is a single move-call argument: either a reference to an object
// or a pure value.
type Argument struct {
	Kind  ArgumentKind `json:"kind"`
	Value string       `json:"value"`
}

// Object returns an argument referencing the given object.
func Object(id ObjectID) Argument {
	return Argument{Kind: KindObject, Value: string(id)}
}

// U64 returns a pure unsigned 64-bit integer argument.
func U64(v uint64) Argument {
	return Argument{Kind: KindU64, Value: strconv.FormatUint(v, 10)}
}

// Pure returns a pure address argument.
func Pure(address Address) Argument {
	return Argument{Kind: KindAddress, Value: string(address)}
}

// Command is a single operation of a transaction. It is implemented by
// MoveCall and SplitTransfer.
type Command interface {
	Name() string
}

// MoveCall invokes a Move function.
type MoveCall struct {
	Target        MoveTarget `json:"target"`
	TypeArguments []string   `json:"type_arguments,omitempty"`
	Arguments     []Argument `json:"arguments"`
}

// Name implements Command.
func (m MoveCall) Name() string {
	return "move_call"
}

// SplitTransfer splits the given amounts off the sender's gas balance and
// transfers the resulting coins to the recipient.
type SplitTransfer struct {
	Amounts   []uint64 `json:"amounts"`
	Recipient Address  `json:"recipient"`
}

// Name implements Command.
func (s SplitTransfer) Name() string {
	return "split_transfer"
}

// Transaction describes the commands a sender wants executed. It is built
// for a single submission and discarded afterwards.
type Transaction struct {
	ID        string    `json:"id"`
	Sender    Address   `json:"sender"`
	GasBudget uint64    `json:"gas_budget"`
	Commands  []Command `json:"commands"`
}

// TransactionBytes is an unsigned transaction as built by a fullnode.
type TransactionBytes struct {
	TxBytes      string        `json:"txBytes"`
	Gas          []ObjectRef   `json:"gas"`
	InputObjects []interface{} `json:"inputObjects"`
}

// ObjectRef is a versioned object reference.
type ObjectRef struct {
	ObjectID ObjectID    `json:"objectId"`
	Version  interface{} `json:"version"`
	Digest   string      `json:"digest"`
}

// Execution statuses reported in transaction effects.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Receipt is the outcome of an executed transaction.
type Receipt struct {
	Digest string `json:"digest"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Succeeded returns whether the transaction executed successfully.
func (r Receipt) Succeeded() bool {
	return r.Status == StatusSuccess
}
