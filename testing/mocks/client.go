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
	"context"
	"testing"

	"github.com/optakt/sui-dapp/models/sui"
)

type Client struct {
	CoinsFunc        func(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error)
	OwnedObjectsFunc func(ctx context.Context, owner sui.Address, structType string) ([]sui.OwnedObject, error)
	CoinMetadataFunc func(ctx context.Context, coinType string) (sui.CoinMetadata, error)
	MoveCallFunc     func(ctx context.Context, sender sui.Address, call sui.MoveCall, gasBudget uint64) (sui.TransactionBytes, error)
	PaySuiFunc       func(ctx context.Context, sender sui.Address, inputs []sui.ObjectID, recipients []sui.Address, amounts []uint64, gasBudget uint64) (sui.TransactionBytes, error)
	ExecuteFunc      func(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error)
}

func BaselineClient(t *testing.T) *Client {
	t.Helper()

	c := Client{
		CoinsFunc: func(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {
			return GenericCoins(3), nil
		},
		OwnedObjectsFunc: func(ctx context.Context, owner sui.Address, structType string) ([]sui.OwnedObject, error) {
			return GenericObjects(2), nil
		},
		CoinMetadataFunc: func(ctx context.Context, coinType string) (sui.CoinMetadata, error) {
			return GenericMetadata, nil
		},
		MoveCallFunc: func(ctx context.Context, sender sui.Address, call sui.MoveCall, gasBudget uint64) (sui.TransactionBytes, error) {
			return GenericTxBytes, nil
		},
		PaySuiFunc: func(ctx context.Context, sender sui.Address, inputs []sui.ObjectID, recipients []sui.Address, amounts []uint64, gasBudget uint64) (sui.TransactionBytes, error) {
			return GenericTxBytes, nil
		},
		ExecuteFunc: func(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {
			return GenericReceipt, nil
		},
	}

	return &c
}

func (c *Client) Coins(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {
	return c.CoinsFunc(ctx, owner, coinType)
}

func (c *Client) OwnedObjects(ctx context.Context, owner sui.Address, structType string) ([]sui.OwnedObject, error) {
	return c.OwnedObjectsFunc(ctx, owner, structType)
}

func (c *Client) CoinMetadata(ctx context.Context, coinType string) (sui.CoinMetadata, error) {
	return c.CoinMetadataFunc(ctx, coinType)
}

func (c *Client) MoveCall(ctx context.Context, sender sui.Address, call sui.MoveCall, gasBudget uint64) (sui.TransactionBytes, error) {
	return c.MoveCallFunc(ctx, sender, call, gasBudget)
}

func (c *Client) PaySui(ctx context.Context, sender sui.Address, inputs []sui.ObjectID, recipients []sui.Address, amounts []uint64, gasBudget uint64) (sui.TransactionBytes, error) {
	return c.PaySuiFunc(ctx, sender, inputs, recipients, amounts, gasBudget)
}

func (c *Client) Execute(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {
	return c.ExecuteFunc(ctx, txBytes, signatures)
}
