// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/voyager/internal/adapter"
	"github.com/MKhiriev/voyager/models"
)

// clientSession is shared by the client services. Bubble Tea commands run on
// their own goroutines, so access is guarded.
type clientSession struct {
	mu      sync.RWMutex
	current models.Session
	open    bool

	adapter adapter.ServerAdapter
}

func newClientSession(serverAdapter adapter.ServerAdapter) *clientSession {
	return &clientSession{adapter: serverAdapter}
}

func (s *clientSession) set(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
	s.open = true
}

func (s *clientSession) get() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.open
}

// clear closes the session and drops the adapter token.
func (s *clientSession) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{}
	s.open = false
	s.adapter.SetToken("")
}
