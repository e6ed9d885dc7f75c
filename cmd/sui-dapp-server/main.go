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

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/sui-dapp/api/page"
	"github.com/optakt/sui-dapp/metrics/output"
	"github.com/optakt/sui-dapp/metrics/rcrowley"
	"github.com/optakt/sui-dapp/service/config"
	"github.com/optakt/sui-dapp/service/metrics"
	"github.com/optakt/sui-dapp/service/network"
	"github.com/optakt/sui-dapp/service/profiler"
	"github.com/optakt/sui-dapp/service/rpc"
	"github.com/optakt/sui-dapp/service/transactor"
	"github.com/optakt/sui-dapp/service/wallet"
	"github.com/optakt/sui-dapp/service/widget"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAddress  string
		flagConfig   string
		flagEnv      string
		flagLevel    string
		flagListen   string
		flagKeystore string
		flagMetrics  string
		flagNetwork  string
		flagProfiler string
		flagStats    time.Duration
		flagTracing  bool
	)

	pflag.StringVar(&flagAddress, "address", "", "wallet account to connect at startup")
	pflag.StringVarP(&flagConfig, "config", "c", "", "path to the configuration file (TOML or YAML)")
	pflag.StringVar(&flagEnv, "env", ".env", "path to an optional .env file")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagListen, "listen", "a", "127.0.0.1:8080", "address to serve the dapp page on")
	pflag.StringVarP(&flagKeystore, "keystore", "k", "", "path to the Sui keystore file")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are exposed when left empty)")
	pflag.StringVarP(&flagNetwork, "network", "n", "", "network to connect to at startup")
	pflag.StringVar(&flagProfiler, "profiler", "", "address on which to expose pprof (profiling is disabled when left empty)")
	pflag.DurationVar(&flagStats, "stats", 5*time.Minute, "interval for logging RPC timing statistics (only logged on shutdown when zero)")
	pflag.BoolVarP(&flagTracing, "tracing", "t", false, "export traces of RPC calls over OTLP")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Configuration values come from the file, the environment and the flags
	// that were explicitly set.
	cfg, err := config.Load(flagConfig, flagEnv, pflag.CommandLine)
	if err != nil {
		log.Error().Str("config", flagConfig).Err(err).Msg("could not load configuration")
		return failure
	}

	// The network registry decides where every RPC call goes; the RPC client
	// is created once and shared by every widget.
	registry, err := network.NewRegistry(log, cfg.Network.Endpoints, cfg.Network.Active)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize network registry")
		return failure
	}
	client, err := rpc.NewClient(log, registry,
		rpc.WithTimeout(cfg.RPC.Timeout),
		rpc.WithMaxPages(cfg.RPC.MaxPages),
		rpc.WithCacheSize(cfg.Cache.Size),
	)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize RPC client")
		return failure
	}

	tracer := metrics.NoopTracer()
	if flagTracing {
		tracer, err = metrics.NewTracer(log, "sui-dapp-server")
		if err != nil {
			log.Error().Err(err).Msg("could not initialize tracer")
			return failure
		}
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	timer := rcrowley.NewTime("rpc")
	stats := output.New(log, flagStats)
	stats.Register(timer)
	stats.Run()
	node := metrics.NewClient(client, reg, timer, tracer)

	// Wallet initialization, with the keys of the local keystore.
	keystore, err := wallet.LoadKeystore(cfg.Wallet.Keystore)
	if err != nil {
		log.Error().Str("keystore", cfg.Wallet.Keystore).Err(err).Msg("could not load keystore")
		return failure
	}
	if keystore.Skipped > 0 {
		log.Warn().Int("skipped", keystore.Skipped).Msg("skipped keys with unsupported signature scheme")
	}
	session := wallet.NewSession(log, keystore)
	if cfg.Wallet.Connect {
		address, err := cfg.WalletAddress()
		if err != nil {
			log.Error().Err(err).Msg("could not parse wallet address")
			return failure
		}
		_, err = session.Connect(address)
		if err != nil {
			log.Warn().Err(err).Msg("could not connect wallet at startup")
		}
	}
	build := transactor.New(node)
	sign := wallet.New(log, session, build, keystore, node)

	// Widget initialization.
	mint, err := cfg.MintSettings()
	if err != nil {
		log.Error().Err(err).Msg("could not read mint settings")
		return failure
	}
	transfer, err := cfg.TransferSettings()
	if err != nil {
		log.Error().Err(err).Msg("could not read transfer settings")
		return failure
	}
	feed := widget.NewFeed(log, cfg.Feed.Size)
	panel := widget.NewWalletStatusPanel(log, session, registry,
		widget.NewCoinBalanceViewer(log, session, registry, node, cfg.Balance.CoinType),
		widget.NewOwnedObjectsViewer(log, session, registry, node, cfg.Objects.StructType),
		widget.NewFreeCoinMinter(log, session, sign, feed, mint),
		widget.NewSuiSender(log, session, sign, feed, transfer),
		widget.NewNetworkSelector(log, registry, feed),
		feed,
	)

	// Page server initialization.
	renderer, err := page.NewRenderer()
	if err != nil {
		log.Error().Err(err).Msg("could not initialize page renderer")
		return failure
	}
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Renderer = renderer
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	page.NewController(panel).Register(server)

	var metricsServer *metrics.Server
	if flagMetrics != "" {
		metricsServer = metrics.NewServer(log, flagMetrics, reg)
	}
	var profilerServer *profiler.Server
	if flagProfiler != "" {
		profilerServer = profiler.NewServer(log, flagProfiler)
	}

	// This section launches the servers in their own goroutines, so they can
	// run concurrently. Afterwards, we wait for an interrupt signal or for one
	// of the servers to fail.
	group, ctx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		log.Info().Str("address", flagListen).Msg("Sui dapp server starting")
		err := server.Start(flagListen)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		log.Info().Msg("Sui dapp server stopped")
		return nil
	})
	if metricsServer != nil {
		group.Go(metricsServer.Start)
	}
	if profilerServer != nil {
		group.Go(profilerServer.Start)
	}

	select {
	case <-sig:
		log.Info().Msg("Sui dapp server stopping")
	case <-ctx.Done():
		log.Warn().Msg("Sui dapp server aborted")
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the servers are shutting down within the allocated time.
	shutdown, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result := success
	err = server.Shutdown(shutdown)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down dapp server")
		result = failure
	}
	if metricsServer != nil {
		err = metricsServer.Stop(shutdown)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
			result = failure
		}
	}
	if profilerServer != nil {
		err = profilerServer.Stop(shutdown)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down profiler")
			result = failure
		}
	}
	err = group.Wait()
	if err != nil {
		log.Error().Err(err).Msg("server failed")
		result = failure
	}
	<-tracer.Done()
	stats.Stop()

	return result
}
