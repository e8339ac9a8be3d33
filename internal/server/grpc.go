// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/voyager/internal/config"
	myGRPC "github.com/MKhiriev/voyager/internal/handler/grpc"
	"github.com/MKhiriev/voyager/internal/logger"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, err
	}

	srv := grpc.NewServer(handler.ServerOptions()...)
	handler.RegisterService(srv)

	return &grpcServer{
		server:          srv,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
		return err
	}
	return nil
}

// Shutdown waits for in-flight calls up to shutdownTimeout and then closes
// the remaining connections.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		g.server.Stop()
	}
}
