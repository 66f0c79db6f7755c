// Package session holds the authenticated user for the current process. The
// state is two-phase: a stored token makes the session "hydrated" (probably
// logged in) before the profile endpoint confirms it as "verified".
package session

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"storefront-client/clients"
	"storefront-client/common/apierrors"
	"storefront-client/models"
	"storefront-client/storage"
)

type State string

const (
	// StateAnonymous means no token is held.
	StateAnonymous State = "anonymous"
	// StateHydrated means a token was restored from storage but the server
	// has not confirmed it yet.
	StateHydrated State = "hydrated"
	// StateVerified means the server accepted the token since this process
	// started.
	StateVerified State = "verified"
)

// Storage keys. The token is written under both keys; older consumers of the
// state directory still read "token".
const (
	accessTokenKey = "access_token"
	legacyTokenKey = "token"
	userKey        = "user"
)

type Session struct {
	mu      sync.RWMutex
	auth    clients.AuthAPI
	storage storage.Storage
	logger  *zap.Logger

	token string
	user  *models.User
	state State
}

// New restores any stored token and user. A present token puts the session in
// StateHydrated immediately; malformed stored state is discarded.
func New(auth clients.AuthAPI, st storage.Storage, logger *zap.Logger) *Session {
	s := &Session{
		auth:    auth,
		storage: st,
		logger:  logger,
		state:   StateAnonymous,
	}

	data, ok := st.Get(accessTokenKey)
	if !ok {
		data, ok = st.Get(legacyTokenKey)
	}
	if !ok || len(data) == 0 {
		return s
	}
	s.token = string(data)
	s.state = StateHydrated

	if raw, ok := st.Get(userKey); ok {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			logger.Warn("Discarding malformed stored user", zap.Error(err))
		} else {
			s.user = &user
		}
	}
	return s
}

// Login posts credentials. On success token and user are set together, in
// memory and in storage; on failure the caller gets a single human-readable
// message and the session is untouched.
func (s *Session) Login(ctx context.Context, username, password string) error {
	creds, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", zap.String("username", username), zap.Error(err))
		return apierrors.New(apierrors.StatusCode(err), apierrors.UserMessage(err), err)
	}
	s.establish(creds)
	return nil
}

// Register creates an account, optionally carrying a referral code, and logs
// the new user in with the same contract as Login.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) error {
	creds, err := s.auth.Register(ctx, req)
	if err != nil {
		s.logger.Warn("Registration failed", zap.String("username", req.Username), zap.Error(err))
		return apierrors.New(apierrors.StatusCode(err), apierrors.UserMessage(err), err)
	}
	s.establish(creds)
	return nil
}

func (s *Session) establish(creds *models.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = creds.Token
	user := creds.User
	s.user = &user
	s.state = StateVerified
	s.persist()
}

// Logout clears memory and every related storage key unconditionally.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

// Verify is the boot-time token check. A 401 forces a logout; any other
// failure (network, 5xx) keeps the session active, deliberately trading
// strictness for not logging users out on transient errors.
func (s *Session) Verify(ctx context.Context) error {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return nil
	}

	user, err := s.auth.Profile(ctx, token)
	if err != nil {
		if apierrors.IsUnauthorized(err) {
			s.logger.Info("Stored token rejected, clearing session")
			s.mu.Lock()
			s.clear()
			s.mu.Unlock()
			return err
		}
		s.logger.Warn("Could not verify session, keeping it", zap.Error(err))
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.state = StateVerified
	s.persistUser()
	s.mu.Unlock()
	return nil
}

// Token implements the per-call token lookup consumers attach to their own
// requests. Empty when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user, nil when anonymous.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// persist writes token (both keys) and user together; they are never stored
// piecemeal. Called with the lock held.
func (s *Session) persist() {
	if err := s.storage.Set(accessTokenKey, []byte(s.token)); err != nil {
		s.logger.Error("Failed to persist token", zap.Error(err))
	}
	if err := s.storage.Set(legacyTokenKey, []byte(s.token)); err != nil {
		s.logger.Error("Failed to persist legacy token", zap.Error(err))
	}
	s.persistUser()
}

func (s *Session) persistUser() {
	if s.user == nil {
		return
	}
	data, err := json.Marshal(s.user)
	if err != nil {
		s.logger.Error("Failed to encode user", zap.Error(err))
		return
	}
	if err := s.storage.Set(userKey, data); err != nil {
		s.logger.Error("Failed to persist user", zap.Error(err))
	}
}

// clear resets memory and storage. Called with the lock held.
func (s *Session) clear() {
	s.token = ""
	s.user = nil
	s.state = StateAnonymous

	for _, key := range []string{accessTokenKey, legacyTokenKey, userKey} {
		if err := s.storage.Delete(key); err != nil {
			s.logger.Error("Failed to clear session key", zap.String("key", key), zap.Error(err))
		}
	}
}
