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

package profiler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	_ "net/http/pprof"

	"github.com/rs/zerolog"
)

// Server is the http server that will be serving the /debug/pprof/ request for pprof.
type Server struct {
	server *http.Server
	log    zerolog.Logger
}

// NewServer creates a new server that exposes pprof endpoint.
func NewServer(log zerolog.Logger, address string) *Server {
	m := Server{
		server: &http.Server{
			Addr:    address,
			Handler: http.DefaultServeMux,
		},
		log: log.With().Str("component", "profiler").Logger(),
	}

	return &m
}

// Start launches the server. It returns nil once the server is shut down.
func (s *Server) Start() error {
	s.log.Info().Str("address", s.server.Addr).Msg("profiler server starting")
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not listen and serve: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("could not shut down profiler: %w", err)
	}
	return nil
}
