// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// seqIDs hands out "id-1", "id-2", ...
type seqIDs struct {
	n int
}

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "voyager",
		TokenDuration: time.Hour,
	}
}

func newTestTokenService(now time.Time) *tokenService {
	svc := NewTokenService(testAppConfig(), logger.Nop()).(*tokenService)
	svc.now = fixedClock(now)
	return svc
}
