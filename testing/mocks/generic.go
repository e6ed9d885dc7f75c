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

package mocks

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/sui"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test dapp components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericAddress = sui.MustParseAddress("0xabc")

	GenericRecipient = sui.MustParseAddress("0xdef")

	GenericAccount = sui.Account{Address: GenericAddress}

	GenericPackage = sui.MustParseAddress("0xb564841a2b36b9e350bb0bbde52ac34310e2f6b0eed2cd0efe76eeb53d88d399")

	GenericMintObject = sui.MustParseAddress("0x771e68e7128b906eb3072e7ab246a3a4380e9070a7f1b0b9f8f3a6f7644f879f")

	GenericTarget = sui.MoveTarget{
		Package:  GenericPackage,
		Module:   "faucetucoin",
		Function: "mint",
	}

	GenericCoinType = string(GenericPackage) + "::faucetucoin::FAUCETUCOIN"

	GenericMetadata = sui.CoinMetadata{
		Decimals: 9,
		Name:     "Faucet Coin",
		Symbol:   "FUPC",
	}

	GenericNetwork = sui.Network{
		Name: sui.Testnet,
		URL:  sui.Fullnodes[sui.Testnet],
	}

	GenericNetworks = []sui.Network{
		{Name: sui.Devnet, URL: sui.Fullnodes[sui.Devnet]},
		{Name: sui.Mainnet, URL: sui.Fullnodes[sui.Mainnet]},
		GenericNetwork,
	}

	GenericDigest = "8Ef3ykW1PHrDG3yUfNKtVqXhuTSvymbMEbXySj8xjhYx"

	GenericTxBytes = sui.TransactionBytes{
		TxBytes: "AAACAAgKAAAAAAAAAA==",
	}

	GenericReceipt = sui.Receipt{
		Digest: GenericDigest,
		Status: sui.StatusSuccess,
	}

	GenericSignature = "AKD4XdltkCyBi1Heb4EJJ3lzuV3F4u7+CYeaE+Fd7qXpaT17yd4tHWjMf4CWq3TuXBLxTs9Vf8CLiBXxIPMr0gN4B9pRkjH3Ka5AgIUhFvtsmXjgcVExZ0RLm5gAcPJZCw=="
)

// GenericCoin returns a deterministic coin of the generic coin type.
func GenericCoin(index int) sui.Coin {
	coin := sui.Coin{
		CoinType:            GenericCoinType,
		CoinObjectID:        sui.MustParseAddress(fmt.Sprintf("0x%x", 0x1000+index)),
		Version:             fmt.Sprint(index + 1),
		Digest:              strings.Repeat(fmt.Sprint(index%10), 44),
		Balance:             fmt.Sprint((index + 1) * 1_000_000_000),
		PreviousTransaction: GenericDigest,
	}
	return coin
}

// GenericCoins returns the given number of generic coins.
func GenericCoins(number int) sui.Coins {
	coins := make(sui.Coins, 0, number)
	for i := 0; i < number; i++ {
		coins = append(coins, GenericCoin(i))
	}
	return coins
}

// GenericObjects returns the given number of generic owned objects.
func GenericObjects(number int) []sui.OwnedObject {
	objects := make([]sui.OwnedObject, 0, number)
	for i := 0; i < number; i++ {
		object := sui.OwnedObject{
			ObjectID: sui.MustParseAddress(fmt.Sprintf("0x%x", 0x2000+i)),
			Version:  fmt.Sprint(i + 1),
			Digest:   GenericDigest,
			Type:     "0x2::coin::Coin<0x2::sui::SUI>",
		}
		objects = append(objects, object)
	}
	return objects
}
