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
	"net/http"
	"time"
)

// DefaultConfig is the default configuration for the RPC client.
var DefaultConfig = Config{
	Timeout:   30 * time.Second,
	PageSize:  50,
	MaxPages:  20,
	CacheSize: 1024,
}

// Config is the configuration for the RPC client.
type Config struct {
	Timeout    time.Duration
	PageSize   uint
	MaxPages   uint
	CacheSize  int64
	HTTPClient *http.Client
}

// WithTimeout sets the timeout of each HTTP request to the node.
func WithTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithPageSize sets how many records are requested per page on paginated
// queries.
func WithPageSize(size uint) func(*Config) {
	return func(cfg *Config) {
		cfg.PageSize = size
	}
}

// WithMaxPages bounds how many pages a single paginated query follows.
func WithMaxPages(pages uint) func(*Config) {
	return func(cfg *Config) {
		cfg.MaxPages = pages
	}
}

// WithCacheSize sets the maximum number of coin metadata entries cached.
func WithCacheSize(size int64) func(*Config) {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}

// WithHTTPClient makes the RPC client use the given HTTP client, instead of
// one built from the timeout.
func WithHTTPClient(client *http.Client) func(*Config) {
	return func(cfg *Config) {
		cfg.HTTPClient = client
	}
}
