// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/voyager/internal/adapter"
	"github.com/MKhiriev/voyager/internal/logger"
)

// ClientServices is the service layer of the terminal client. Its services
// share one session.
type ClientServices struct {
	AuthService ClientAuthService
	PostService ClientPostService
	UserService ClientUserService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	session := newClientSession(serverAdapter)

	return &ClientServices{
		AuthService: newClientAuthService(serverAdapter, session, logger),
		PostService: newClientPostService(serverAdapter, session, logger),
		UserService: NewClientUserService(serverAdapter),
	}
}
