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

package rpc

import (
	"github.com/optakt/sui-dapp/models/sui"
)

// JSON-RPC methods of the Sui fullnode API.
const (
	methodGetCoins        = "suix_getCoins"
	methodGetOwnedObjects = "suix_getOwnedObjects"
	methodGetCoinMetadata = "suix_getCoinMetadata"
	methodMoveCall        = "unsafe_moveCall"
	methodPaySui          = "unsafe_paySui"
	methodExecute         = "sui_executeTransactionBlock"
)

// requestType makes the node wait for the transaction to be applied locally
// before responding, so follow-up queries see its effects.
const requestType = "WaitForLocalExecution"

type coinPage struct {
	Data        sui.Coins `json:"data"`
	NextCursor  *string   `json:"nextCursor"`
	HasNextPage bool      `json:"hasNextPage"`
}

type objectPage struct {
	Data        []objectResponse `json:"data"`
	NextCursor  *string          `json:"nextCursor"`
	HasNextPage bool             `json:"hasNextPage"`
}

type objectResponse struct {
	Data  *sui.OwnedObject `json:"data"`
	Error interface{}      `json:"error"`
}

type objectQuery struct {
	Filter  *objectFilter `json:"filter,omitempty"`
	Options objectOptions `json:"options"`
}

type objectFilter struct {
	StructType string `json:"StructType"`
}

type objectOptions struct {
	ShowType bool `json:"showType"`
}

type executeOptions struct {
	ShowEffects bool `json:"showEffects"`
}

type executeResponse struct {
	Digest  string `json:"digest"`
	Effects *struct {
		Status struct {
			Status string `json:"status"`
			Error  string `json:"error"`
		} `json:"status"`
	} `json:"effects"`
}
