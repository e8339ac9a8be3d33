// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/handler"
	"github.com/MKhiriev/voyager/internal/logger"
)

// shutdownTimeout bounds the graceful part of Shutdown. In-flight requests
// still running after it are cut off.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer opens a listener for every address set in cfg and binds it to the
// matching handler.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil {
		handlers = &handler.Handlers{}
	}
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, fmt.Errorf("%w: http %s", errNoHandler, cfg.HTTPAddress)
		}

		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating http server: %w", err)
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			servers.closeListeners()
			return nil, fmt.Errorf("%w: grpc %s", errNoHandler, cfg.GRPCAddress)
		}

		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.closeListeners()
			return nil, fmt.Errorf("error creating grpc server: %w", err)
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoListeners
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.Addr()).Msg("launching HTTP server")
		go func() { errCh <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.Addr()).Msg("launching gRPC server")
		go func() { errCh <- s.gRPCServer.RunServer() }()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	s.Shutdown()
	return err
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// closeListeners releases listeners opened before NewServer failed.
func (s *server) closeListeners() {
	if s.httpServer != nil {
		_ = s.httpServer.listener.Close()
	}
}
