// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportConfigured is returned by NewHandlers when neither
// SERVER_ADDRESS nor SERVER_GRPC_ADDRESS is set.
var errNoTransportConfigured = errors.New("neither HTTP nor gRPC address is configured")
