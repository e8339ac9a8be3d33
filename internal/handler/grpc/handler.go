// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/service"
)

var _ VoyagerServer = (*Handler)(nil)

// Handler is the gRPC transport of the Voyager service. It implements
// [VoyagerServer] on top of the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// ServerOptions returns the options a grpc.Server needs to serve h: the
// interceptor chain of recovery, trace id, access logging and bearer auth.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			h.withRecovery,
			h.withTraceID,
			h.withLogging,
			h.auth,
		),
	}
}

// RegisterService attaches h to s under [ServiceName].
func (h *Handler) RegisterService(s grpc.ServiceRegistrar) {
	RegisterVoyagerServer(s, h)
}
