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
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/sui-dapp/api/terminal"
	"github.com/optakt/sui-dapp/metrics/output"
	"github.com/optakt/sui-dapp/metrics/rcrowley"
	"github.com/optakt/sui-dapp/service/config"
	"github.com/optakt/sui-dapp/service/metrics"
	"github.com/optakt/sui-dapp/service/network"
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

	// Command line parameter initialization.
	var (
		flagAddress   string
		flagConfig    string
		flagEnv       string
		flagKeystore  string
		flagLevel     string
		flagLog       string
		flagMetrics   string
		flagNetwork   string
		flagRecipient string
		flagStats     time.Duration
		flagTracing   bool
	)

	pflag.StringVar(&flagAddress, "address", "", "wallet account to connect at startup")
	pflag.StringVarP(&flagConfig, "config", "c", "", "path to the configuration file (TOML or YAML)")
	pflag.StringVar(&flagEnv, "env", ".env", "path to an optional .env file")
	pflag.StringVarP(&flagKeystore, "keystore", "k", "", "path to the Sui keystore file")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVar(&flagLog, "log", "sui-dapp.log", "path to the log file")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are exposed when left empty)")
	pflag.StringVarP(&flagNetwork, "network", "n", "", "network to connect to at startup")
	pflag.StringVarP(&flagRecipient, "recipient", "r", "", "recipient of SUI transfers")
	pflag.DurationVar(&flagStats, "stats", 5*time.Minute, "interval for logging RPC timing statistics (only logged on shutdown when zero)")
	pflag.BoolVarP(&flagTracing, "tracing", "t", false, "export traces of RPC calls over OTLP")

	pflag.Parse()

	// Logger initialization. The terminal belongs to the user interface, so
	// logs go to a file.
	file, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		stderr := zerolog.New(os.Stderr)
		stderr.Error().Str("log", flagLog).Err(err).Msg("could not open log file")
		return failure
	}
	defer file.Close()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(file).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	cfg, err := config.Load(flagConfig, flagEnv, pflag.CommandLine)
	if err != nil {
		log.Error().Str("config", flagConfig).Err(err).Msg("could not load configuration")
		return failure
	}

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
		tracer, err = metrics.NewTracer(log, "sui-dapp-terminal")
		if err != nil {
			log.Error().Err(err).Msg("could not initialize tracer")
			return failure
		}
	}
	reg := prometheus.NewRegistry()
	timer := rcrowley.NewTime("rpc")
	stats := output.New(log, flagStats)
	stats.Register(timer)
	stats.Run()
	node := metrics.NewClient(client, reg, timer, tracer)

	keystore, err := wallet.LoadKeystore(cfg.Wallet.Keystore)
	if err != nil {
		log.Error().Str("keystore", cfg.Wallet.Keystore).Err(err).Msg("could not load keystore")
		return failure
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

	var metricsServer *metrics.Server
	if flagMetrics != "" {
		metricsServer = metrics.NewServer(log, flagMetrics, reg)
		go func() {
			err := metricsServer.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	// The program's context is canceled on quit, which aborts the RPC calls
	// still in flight.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app := terminal.New(ctx, panel, cfg.Balance.PollInterval)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	log.Info().Msg("Sui dapp terminal starting")
	_, err = program.Run()
	cancel()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error().Err(err).Msg("terminal program failed")
		return failure
	}
	log.Info().Msg("Sui dapp terminal stopped")

	if metricsServer != nil {
		shutdown, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		err = metricsServer.Stop(shutdown)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
		}
	}
	<-tracer.Done()
	stats.Stop()

	return success
}
