package client

import (
	"context"
	"sync"
)

// State is the session lifecycle: Uninitialized -> Loading -> Ready. Guards
// must not make redirect decisions before Ready, or the user gets bounced
// to login while the initial probe is still in flight.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// Session is the explicit session context shared by UI components and the
// route guard. It is safe for concurrent use.
type Session struct {
	mu            sync.RWMutex
	state         State
	authenticated bool
	user          *User
}

// NewSession returns an uninitialized session.
func NewSession() *Session {
	return &Session{state: StateUninitialized}
}

// Init probes the API for an existing session and resolves the state to
// Ready. Any failure — no cookie, expired token, server error — resolves to
// ready(anonymous) rather than leaving stale state behind.
func (s *Session) Init(ctx context.Context, api *Client) {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	user, err := api.Profile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateReady
	if err != nil {
		s.authenticated = false
		s.user = nil
		return
	}
	s.authenticated = true
	s.user = user
}

// Clear resets the session to ready(anonymous). Call after logout or when
// any API call reports the session is no longer valid.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateReady
	s.authenticated = false
	s.user = nil
}

// State reports the lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsReady reports whether the initial session probe has resolved.
func (s *Session) IsReady() bool {
	return s.State() == StateReady
}

// IsAuthenticated reports whether a confirmed session exists. Only
// meaningful once IsReady is true.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateReady && s.authenticated
}

// User returns the confirmed user, or nil when anonymous or not ready.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authenticated {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the confirmed role, or "" when anonymous or not ready.
func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authenticated || s.user == nil {
		return ""
	}
	return s.user.Role
}
