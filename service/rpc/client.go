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
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog"
	"github.com/ybbus/jsonrpc/v3"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// Endpoints resolves the network that RPC calls are sent to.
type Endpoints interface {
	Active() sui.Network
}

// Client is a client for the JSON-RPC API of a Sui fullnode. It sends each
// call to the network pinned on the context, or to the currently active
// network, and keeps one connection handle per network for the lifetime of
// the process.
type Client struct {
	log       zerolog.Logger
	endpoints Endpoints
	cfg       Config
	cache     *ristretto.Cache

	mutex *sync.Mutex
	conns map[string]jsonrpc.RPCClient
}

// NewClient creates a new RPC client that sends calls to the active network
// of the given endpoints.
func NewClient(log zerolog.Logger, endpoints Endpoints, options ...func(*Config)) (*Client, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Ristretto recommends keeping ten times as many counters as items in the
	// cache when full. Each metadata entry has a cost of one.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.CacheSize * 10,
		MaxCost:     cfg.CacheSize,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize metadata cache: %w", err)
	}

	c := Client{
		log:       log.With().Str("component", "rpc_client").Logger(),
		endpoints: endpoints,
		cfg:       cfg,
		cache:     cache,
		mutex:     &sync.Mutex{},
		conns:     make(map[string]jsonrpc.RPCClient),
	}

	return &c, nil
}

// Coins returns all coins of the given type owned by the given address. It
// follows the result cursor until the node reports no further pages, or the
// configured page limit is reached.
func (c *Client) Coins(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {

	ctx = c.pin(ctx)

	var coins sui.Coins
	var cursor interface{}
	for page := uint(0); page < c.cfg.MaxPages; page++ {
		var res coinPage
		err := c.query(ctx, &res, methodGetCoins, owner, coinType, cursor, c.cfg.PageSize)
		if err != nil {
			return nil, fmt.Errorf("could not get coins: %w", err)
		}
		coins = append(coins, res.Data...)
		if !res.HasNextPage || res.NextCursor == nil {
			return coins, nil
		}
		cursor = *res.NextCursor
	}

	c.log.Warn().
		Str("owner", owner.String()).
		Str("coin_type", coinType).
		Uint("max_pages", c.cfg.MaxPages).
		Msg("coin query truncated at page limit")

	return coins, nil
}

// OwnedObjects returns the objects owned by the given address. A non-empty
// struct type restricts the result to objects of that type.
func (c *Client) OwnedObjects(ctx context.Context, owner sui.Address, structType string) ([]sui.OwnedObject, error) {

	ctx = c.pin(ctx)

	query := objectQuery{
		Options: objectOptions{ShowType: true},
	}
	if structType != "" {
		query.Filter = &objectFilter{StructType: structType}
	}

	var objects []sui.OwnedObject
	var cursor interface{}
	for page := uint(0); page < c.cfg.MaxPages; page++ {
		var res objectPage
		err := c.query(ctx, &res, methodGetOwnedObjects, owner, query, cursor, c.cfg.PageSize)
		if err != nil {
			return nil, fmt.Errorf("could not get owned objects: %w", err)
		}
		for _, object := range res.Data {
			if object.Data == nil {
				continue
			}
			objects = append(objects, *object.Data)
		}
		if !res.HasNextPage || res.NextCursor == nil {
			return objects, nil
		}
		cursor = *res.NextCursor
	}

	c.log.Warn().
		Str("owner", owner.String()).
		Uint("max_pages", c.cfg.MaxPages).
		Msg("object query truncated at page limit")

	return objects, nil
}

// CoinMetadata returns the metadata of a coin type. Metadata is immutable
// once published, so results are cached per network.
func (c *Client) CoinMetadata(ctx context.Context, coinType string) (sui.CoinMetadata, error) {

	ctx = c.pin(ctx)
	network, _ := dapp.NetworkFromContext(ctx)

	key := network.Name + "|" + coinType
	cached, ok := c.cache.Get(key)
	if ok {
		return cached.(sui.CoinMetadata), nil
	}

	var metadata *sui.CoinMetadata
	err := c.query(ctx, &metadata, methodGetCoinMetadata, coinType)
	if err != nil {
		return sui.CoinMetadata{}, fmt.Errorf("could not get coin metadata: %w", err)
	}

	// Coin types without published metadata yield a null result.
	if metadata == nil {
		return sui.CoinMetadata{}, nil
	}

	c.cache.Set(key, *metadata, 1)

	return *metadata, nil
}

// MoveCall has the node build an unsigned transaction calling a Move function.
func (c *Client) MoveCall(ctx context.Context, sender sui.Address, call sui.MoveCall, gasBudget uint64) (sui.TransactionBytes, error) {

	typeArgs := call.TypeArguments
	if typeArgs == nil {
		typeArgs = []string{}
	}
	args := make([]interface{}, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		args = append(args, arg.Value)
	}

	var tx sui.TransactionBytes
	err := c.transact(ctx, &tx, methodMoveCall,
		sender,
		call.Target.Package,
		call.Target.Module,
		call.Target.Function,
		typeArgs,
		args,
		nil,
		strconv.FormatUint(gasBudget, 10),
	)
	if err != nil {
		return sui.TransactionBytes{}, fmt.Errorf("could not build move call: %w", err)
	}

	return tx, nil
}

// PaySui has the node build an unsigned transaction that merges the input
// coins, splits the amounts off and sends them to the recipients. The
// remainder pays for gas.
func (c *Client) PaySui(ctx context.Context, sender sui.Address, inputs []sui.ObjectID, recipients []sui.Address, amounts []uint64, gasBudget uint64) (sui.TransactionBytes, error) {

	values := make([]string, 0, len(amounts))
	for _, amount := range amounts {
		values = append(values, strconv.FormatUint(amount, 10))
	}

	var tx sui.TransactionBytes
	err := c.transact(ctx, &tx, methodPaySui,
		sender,
		inputs,
		recipients,
		values,
		strconv.FormatUint(gasBudget, 10),
	)
	if err != nil {
		return sui.TransactionBytes{}, fmt.Errorf("could not build payment: %w", err)
	}

	return tx, nil
}

// Execute submits a signed transaction and waits for its effects.
func (c *Client) Execute(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {

	var res executeResponse
	err := c.transact(ctx, &res, methodExecute,
		txBytes,
		signatures,
		executeOptions{ShowEffects: true},
		requestType,
	)
	if err != nil {
		return sui.Receipt{}, fmt.Errorf("could not execute transaction: %w", err)
	}

	receipt := sui.Receipt{
		Digest: res.Digest,
	}
	if res.Effects != nil {
		receipt.Status = res.Effects.Status.Status
		receipt.Error = res.Effects.Status.Error
	}

	return receipt, nil
}

// query executes a read call; error responses of the node are reported as
// the node being unavailable for the request.
func (c *Client) query(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	network, err := c.call(ctx, out, method, params...)
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		return failure.Unavailable{
			Description: failure.NewDescription(rpcErr.Message, failure.WithInt("code", rpcErr.Code)),
			Network:     network.Name,
			Method:      method,
		}
	}
	return err
}

// transact executes a call that builds or submits a transaction; error
// responses of the node mean the transaction was rejected.
func (c *Client) transact(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	_, err := c.call(ctx, out, method, params...)
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		return failure.Rejected{
			Description: failure.NewDescription(rpcErr.Message, failure.WithInt("code", rpcErr.Code), failure.WithString("method", method)),
		}
	}
	return err
}

func (c *Client) call(ctx context.Context, out interface{}, method string, params ...interface{}) (sui.Network, error) {

	network, ok := dapp.NetworkFromContext(ctx)
	if !ok {
		network = c.endpoints.Active()
	}
	log := c.log.With().Str("network", network.Name).Str("method", method).Logger()

	res, err := c.connection(network).Call(ctx, method, params...)
	if err != nil {
		log.Debug().Err(err).Msg("rpc call failed")
		return network, failure.Unavailable{
			Description: failure.NewDescription("could not reach node", failure.WithString("url", network.URL), failure.WithErr(err)),
			Network:     network.Name,
			Method:      method,
		}
	}
	if res.Error != nil {
		log.Debug().Int("code", res.Error.Code).Str("message", res.Error.Message).Msg("rpc call returned error")
		return network, res.Error
	}

	err = res.GetObject(out)
	if err != nil {
		return network, fmt.Errorf("could not decode %s result: %w", method, err)
	}

	log.Trace().Msg("rpc call completed")

	return network, nil
}

// pin resolves the target network once, so that all calls of one operation
// go to the same network.
func (c *Client) pin(ctx context.Context) context.Context {
	_, ok := dapp.NetworkFromContext(ctx)
	if ok {
		return ctx
	}
	return dapp.WithNetwork(ctx, c.endpoints.Active())
}

func (c *Client) connection(network sui.Network) jsonrpc.RPCClient {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	conn, ok := c.conns[network.Name]
	if ok {
		return conn
	}

	httpClient := c.cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: c.cfg.Timeout}
	}
	conn = jsonrpc.NewClientWithOpts(network.URL, &jsonrpc.RPCClientOpts{
		HTTPClient: httpClient,
	})
	c.conns[network.Name] = conn

	return conn
}
