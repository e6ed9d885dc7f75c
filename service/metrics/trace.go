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
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.opentelemetry.io/otel/trace"
)

// SpanName is the name of a traced operation.
type SpanName string

// Span names of the traced RPC operations.
const (
	SpanCoins        SpanName = "rpc.coins"
	SpanOwnedObjects SpanName = "rpc.owned_objects"
	SpanCoinMetadata SpanName = "rpc.coin_metadata"
	SpanMoveCall     SpanName = "rpc.move_call"
	SpanPaySui       SpanName = "rpc.pay_sui"
	SpanExecute      SpanName = "rpc.execute"
)

// Tracer is a generic tracer implementation for the dapp's outgoing calls.
type Tracer struct {
	tracer   trace.Tracer
	shutdown func(context.Context) error
	log      zerolog.Logger
}

// NewTracer creates a tracer exporting spans over OTLP. Connection parameters
// for the exporter are taken from the environment, e.g.
// `OTEL_EXPORTER_OTLP_TRACES_ENDPOINT`.
func NewTracer(log zerolog.Logger, serviceName string) (*Tracer, error) {
	ctx := context.TODO()
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
		resource.WithFromEnv(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Debug().Err(err).Msg("tracing error")
	}))

	t := Tracer{
		tracer:   tracerProvider.Tracer(serviceName),
		shutdown: tracerProvider.Shutdown,
		log:      log,
	}

	return &t, nil
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() *Tracer {
	t := Tracer{
		tracer:   trace.NewNoopTracerProvider().Tracer(""),
		shutdown: func(context.Context) error { return nil },
		log:      zerolog.Nop(),
	}
	return &t
}

// Done returns a channel that will close when shutdown is complete.
func (t *Tracer) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		err := t.shutdown(ctx)
		if err != nil {
			t.log.Error().Err(err).Msg("failed to shutdown tracer")
		}
		close(done)
	}()
	return done
}

func (t *Tracer) StartSpanFromContext(
	ctx context.Context,
	operationName SpanName,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, string(operationName), opts...)
}
