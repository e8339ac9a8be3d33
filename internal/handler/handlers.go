// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers the server exposes.
package handler

import (
	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/handler/grpc"
	"github.com/MKhiriev/voyager/internal/handler/http"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/service"
)

// Handlers holds one handler per configured transport. A nil field means the
// transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler when cfg.HTTPAddress is set and the
// gRPC handler when cfg.GRPCAddress is set. At least one must be set.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.RequestTimeout, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportConfigured
	}

	return handlers, nil
}
