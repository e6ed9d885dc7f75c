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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. SUIDAPP_NETWORK_ACTIVE for network.active.
const EnvPrefix = "SUIDAPP"

// Config is the configuration of the dapp binaries.
type Config struct {
	Network  NetworkConfig  `mapstructure:"network"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Balance  BalanceConfig  `mapstructure:"balance"`
	Objects  ObjectsConfig  `mapstructure:"objects"`
	Mint     MintConfig     `mapstructure:"mint"`
	Transfer TransferConfig `mapstructure:"transfer"`
	Gas      GasConfig      `mapstructure:"gas"`
	Feed     FeedConfig     `mapstructure:"feed"`
	RPC      RPCConfig      `mapstructure:"rpc"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

type NetworkConfig struct {
	Active    string            `mapstructure:"active" validate:"required"`
	Endpoints map[string]string `mapstructure:"endpoints" validate:"required,min=1,dive,keys,required,endkeys,url"`
}

type WalletConfig struct {
	Keystore string `mapstructure:"keystore" validate:"required"`
	Address  string `mapstructure:"address" validate:"omitempty,sui_address"`
	Connect  bool   `mapstructure:"connect"`
}

type BalanceConfig struct {
	CoinType     string        `mapstructure:"coin_type" validate:"required"`
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"min=0"`
}

type ObjectsConfig struct {
	StructType string `mapstructure:"struct_type"`
}

type MintConfig struct {
	Target string `mapstructure:"target" validate:"required,move_target"`
	Object string `mapstructure:"object" validate:"required,sui_address"`
	Amount uint64 `mapstructure:"amount" validate:"gt=0"`
}

type TransferConfig struct {
	Recipient string `mapstructure:"recipient" validate:"required,sui_address"`
	Amount    uint64 `mapstructure:"amount" validate:"gt=0"`
}

type GasConfig struct {
	Budget uint64 `mapstructure:"budget" validate:"gt=0"`
}

type FeedConfig struct {
	Size int `mapstructure:"size" validate:"gt=0"`
}

type RPCConfig struct {
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxPages uint          `mapstructure:"max_pages" validate:"gt=0"`
}

type CacheConfig struct {
	Size int64 `mapstructure:"size" validate:"gt=0"`
}

// Flags maps command line flags to the configuration keys they override.
var Flags = map[string]string{
	"network":   "network.active",
	"keystore":  "wallet.keystore",
	"address":   "wallet.address",
	"recipient": "transfer.recipient",
}

// Load reads the configuration. Values come, in order of precedence, from
// the flags that were set, the environment, the config file at path and the
// defaults. An optional .env file at envFile is loaded into the environment
// first. An empty path skips the config file.
func Load(path string, envFile string, flags *pflag.FlagSet) (Config, error) {

	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load env file: %w", err)
		}
	}

	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range Flags {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			err := v.BindPFlag(key, flag)
			if err != nil {
				return Config{}, fmt.Errorf("could not bind flag (name: %s): %w", name, err)
			}
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}

	if strings.HasPrefix(cfg.Wallet.Keystore, "~/") {
		cfg.Wallet.Keystore = filepath.Join(os.Getenv("HOME"), cfg.Wallet.Keystore[2:])
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
