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
	"errors"
)

// Kind classifies an error for reporting to the user.
type Kind string

// Report kinds. Success is the only kind not derived from an error.
const (
	KindSuccess        Kind = "success"
	KindNoAccount      Kind = "no_account"
	KindNetwork        Kind = "network"
	KindRejected       Kind = "rejected"
	KindUnknownNetwork Kind = "unknown_network"
	KindUnknownAccount Kind = "unknown_account"
	KindInvalid        Kind = "invalid"
	KindInternal       Kind = "internal"
)

// KindOf returns the kind of the given error. A nil error is a success.
func KindOf(err error) Kind {
	if err == nil {
		return KindSuccess
	}

	var naErr NoAccount
	if errors.As(err, &naErr) {
		return KindNoAccount
	}
	var unErr Unavailable
	if errors.As(err, &unErr) {
		return KindNetwork
	}
	var reErr Rejected
	if errors.As(err, &reErr) {
		return KindRejected
	}
	var nwErr UnknownNetwork
	if errors.As(err, &nwErr) {
		return KindUnknownNetwork
	}
	var uaErr UnknownAccount
	if errors.As(err, &uaErr) {
		return KindUnknownAccount
	}
	var itErr InvalidTransaction
	if errors.As(err, &itErr) {
		return KindInvalid
	}

	return KindInternal
}
