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
	"time"

	"github.com/optakt/sui-dapp/models/failure"
)

// Actions a user can trigger.
const (
	ActionMint       = "mint"
	ActionSend       = "send"
	ActionNetwork    = "network"
	ActionConnect    = "connect"
	ActionDisconnect = "disconnect"
	ActionReload     = "reload"
)

// Report is the outcome of a single user action. Successes and failures
// share the same shape; Kind tells them apart.
type Report struct {
	ID      string       `json:"id"`
	Action  string       `json:"action"`
	Time    time.Time    `json:"time"`
	Kind    failure.Kind `json:"kind"`
	Digest  string       `json:"digest,omitempty"`
	Message string       `json:"message"`
}

// Succeeded returns whether the action succeeded.
func (r Report) Succeeded() bool {
	return r.Kind == failure.KindSuccess
}

// NewReport creates the report for an action, deriving its kind from err.
// The message is used for successes; failures carry the error text.
func NewReport(id string, action string, err error, message string) Report {
	r := Report{
		ID:      id,
		Action:  action,
		Time:    time.Now().UTC(),
		Kind:    failure.KindOf(err),
		Message: message,
	}
	if err != nil {
		r.Message = err.Error()
	}
	return r
}
