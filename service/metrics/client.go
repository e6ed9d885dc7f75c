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

package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

const namespaceDapp = "sui_dapp"

// Time measures how long named operations take.
type Time interface {
	Duration(name string) func()
}

// Spans starts a trace span for an operation.
type Spans interface {
	StartSpanFromContext(ctx context.Context, operationName SpanName, opts ...trace.SpanStartOption) (context.Context, trace.Span)
}

// Client wraps a dapp client to count, time and trace every RPC call.
type Client struct {
	client   dapp.Client
	time     Time
	spans    Spans
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewClient creates the metrics client and registers its counters with reg.
func NewClient(client dapp.Client, reg prometheus.Registerer, time Time, spans Spans) *Client {
	factory := promauto.With(reg)

	requestOpts := prometheus.CounterOpts{
		Name:      "rpc_requests_total",
		Namespace: namespaceDapp,
		Help:      "number of RPC requests sent to the node",
	}
	requests := factory.NewCounterVec(requestOpts, []string{"method"})

	failureOpts := prometheus.CounterOpts{
		Name:      "rpc_failures_total",
		Namespace: namespaceDapp,
		Help:      "number of failed RPC requests, by failure kind",
	}
	failures := factory.NewCounterVec(failureOpts, []string{"method", "kind"})

	c := Client{
		client:   client,
		time:     time,
		spans:    spans,
		requests: requests,
		failures: failures,
	}

	return &c
}

func (c *Client) Coins(ctx context.Context, owner sui.Address, coinType string) (sui.Coins, error) {
	ctx, span := c.spans.StartSpanFromContext(ctx, SpanCoins, trace.WithAttributes(
		attribute.String("owner", owner.String()),
		attribute.String("coin_type", coinType),
	))
	defer span.End()
	defer c.time.Duration("coins")()

	coins, err := c.client.Coins(ctx, owner, coinType)
	c.observe("coins", span, err)
	return coins, err
}

func (c *Client) OwnedObjects(ctx context.Context, owner sui.Address, structType string) ([]sui.OwnedObject, error) {
	ctx, span := c.spans.StartSpanFromContext(ctx, SpanOwnedObjects, trace.WithAttributes(
		attribute.String("owner", owner.String()),
	))
	defer span.End()
	defer c.time.Duration("owned_objects")()

	objects, err := c.client.OwnedObjects(ctx, owner, structType)
	c.observe("owned_objects", span, err)
	return objects, err
}

func (c *Client) CoinMetadata(ctx context.Context, coinType string) (sui.CoinMetadata, error) {
	ctx, span := c.spans.StartSpanFromContext(ctx, SpanCoinMetadata)
	defer span.End()
	defer c.time.Duration("coin_metadata")()

	metadata, err := c.client.CoinMetadata(ctx, coinType)
	c.observe("coin_metadata", span, err)
	return metadata, err
}

func (c *Client) MoveCall(ctx context.Context, sender sui.Address, call sui.MoveCall, gasBudget uint64) (sui.TransactionBytes, error) {
	ctx, span := c.spans.StartSpanFromContext(ctx, SpanMoveCall, trace.WithAttributes(
		attribute.String("target", call.Target.String()),
	))
	defer span.End()
	defer c.time.Duration("move_call")()

	tx, err := c.client.MoveCall(ctx, sender, call, gasBudget)
	c.observe("move_call", span, err)
	return tx, err
}

func (c *Client) PaySui(ctx context.Context, sender sui.Address, inputs []sui.ObjectID, recipients []sui.Address, amounts []uint64, gasBudget uint64) (sui.TransactionBytes, error) {
	ctx, span := c.spans.StartSpanFromContext(ctx, SpanPaySui, trace.WithAttributes(
		attribute.Int("inputs", len(inputs)),
	))
	defer span.End()
	defer c.time.Duration("pay_sui")()

	tx, err := c.client.PaySui(ctx, sender, inputs, recipients, amounts, gasBudget)
	c.observe("pay_sui", span, err)
	return tx, err
}

func (c *Client) Execute(ctx context.Context, txBytes string, signatures []string) (sui.Receipt, error) {
	ctx, span := c.spans.StartSpanFromContext(ctx, SpanExecute)
	defer span.End()
	defer c.time.Duration("execute")()

	receipt, err := c.client.Execute(ctx, txBytes, signatures)
	if receipt.Digest != "" {
		span.SetAttributes(attribute.String("digest", receipt.Digest))
	}
	c.observe("execute", span, err)
	return receipt, err
}

func (c *Client) observe(method string, span trace.Span, err error) {
	c.requests.WithLabelValues(method).Inc()
	if err == nil {
		return
	}
	c.failures.WithLabelValues(method, string(failure.KindOf(err))).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
