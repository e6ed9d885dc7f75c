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
	"fmt"
	"math/big"
	"strings"
)

// NativeCoinType is the coin type of the native gas currency.
const NativeCoinType = "0x2::sui::SUI"

// NativeDecimals is the number of decimals of the native gas currency.
const NativeDecimals = 9

// Coin is a single coin object as returned by a coin query.
type Coin struct {
	CoinType            string   `json:"coinType"`
	CoinObjectID        ObjectID `json:"coinObjectId"`
	Version             string   `json:"version"`
	Digest              string   `json:"digest"`
	Balance             string   `json:"balance"`
	PreviousTransaction string   `json:"previousTransaction"`
}

// Coins is the result of a coin query for an owner and coin type.
type Coins []Coin

// IDs returns the object IDs of the coins, in order.
func (c Coins) IDs() []ObjectID {
	ids := make([]ObjectID, 0, len(c))
	for _, coin := range c {
		ids = append(ids, coin.CoinObjectID)
	}
	return ids
}

// Total sums the balances of all coins.
func (c Coins) Total() (*big.Int, error) {
	total := big.NewInt(0)
	for _, coin := range c {
		balance, ok := new(big.Int).SetString(coin.Balance, 10)
		if !ok {
			return nil, fmt.Errorf("invalid balance for coin %s (%q)", coin.CoinObjectID, coin.Balance)
		}
		total.Add(total, balance)
	}
	return total, nil
}

// CoinMetadata describes a coin type.
type CoinMetadata struct {
	Decimals    uint8  `json:"decimals"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl,omitempty"`
}

// FormatAmount renders an integer amount of base units as a decimal number
// with the given number of decimals, trimming trailing zeroes.
func FormatAmount(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return ""
	}
	if decimals == 0 {
		return amount.String()
	}

	sign := ""
	abs := new(big.Int).Set(amount)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	digits := abs.String()
	if len(digits) <= int(decimals) {
		digits = strings.Repeat("0", int(decimals)-len(digits)+1) + digits
	}
	split := len(digits) - int(decimals)
	whole, fraction := digits[:split], strings.TrimRight(digits[split:], "0")
	if fraction == "" {
		return sign + whole
	}
	return sign + whole + "." + fraction
}

// OwnedObject is an object owned by an account.
type OwnedObject struct {
	ObjectID ObjectID `json:"objectId"`
	Version  string   `json:"version"`
	Digest   string   `json:"digest"`
	Type     string   `json:"type"`
}
