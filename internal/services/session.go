package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airlineempire/cli/internal/common"
	"github.com/airlineempire/cli/internal/cryptox"
	"github.com/airlineempire/cli/internal/logging"
	"github.com/airlineempire/cli/internal/models"
	"github.com/airlineempire/cli/internal/repositories/state"
	"github.com/airlineempire/cli/internal/repositories/users"
	"github.com/airlineempire/cli/internal/sessiontoken"
)

// State store keys owned by the session service.
const (
	StateKeySessionRef = "session_ref"
	StateKeySigningKey = "signing_key"
)

const signingKeySize = 32

// SessionService owns the authentication state machine.
//
// Contract:
//   - Restore: run once at startup; resolves the persisted session reference
//     or falls back to anonymous. Never fails outward.
//   - Login/Register: report expected failures (bad credentials, duplicate
//     username, empty input) as ok=false with a nil error; store faults are
//     logged, degrade the session to anonymous, and are returned for the UI
//     to show a generic message.
//   - Logout: always succeeds, idempotent.
//   - Current: consistent snapshot of {status, user}.
//
// All methods honor context cancellation; every store access additionally
// runs under the configured timeout so the state can never stick at loading.
type SessionService interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, username string, secret []byte) (bool, error)
	Register(ctx context.Context, username string, secret []byte, email string) (bool, error)
	Logout(ctx context.Context)
	Current() models.Session
}

// sessionService is the concrete SessionService backed by the local user and
// state repositories.
type sessionService struct {
	users         users.Repository
	state         state.Repository
	log           logging.Logger
	storeTimeout  time.Duration
	tokenValidity time.Duration
	now           func() time.Time

	mu      sync.Mutex
	opSeq   uint64
	session models.Session
}

// NewSessionService constructs a SessionService. storeTimeout bounds each
// store access; tokenValidity bounds how long a persisted session survives.
func NewSessionService(u users.Repository, s state.Repository, log logging.Logger,
	storeTimeout, tokenValidity time.Duration) SessionService {
	return &sessionService{
		users:         u,
		state:         s,
		log:           log,
		storeTimeout:  storeTimeout,
		tokenValidity: tokenValidity,
		now:           time.Now,
		session:       models.Session{Status: models.StatusIdle},
	}
}

// Current returns a copy of the session snapshot. The user record is copied
// so callers can never observe a torn or later-mutated state.
func (s *sessionService) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := models.Session{Status: s.session.Status}
	if s.session.User != nil {
		u := *s.session.User
		snap.User = &u
	}
	return snap
}

// begin marks a new in-flight operation: the status switches to loading and a
// fresh generation number is taken. Any operation still in flight with an
// older generation becomes stale and its result will be discarded.
func (s *sessionService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opSeq++
	s.session = models.Session{Status: models.StatusLoading}
	return s.opSeq
}

// commit applies the outcome of the operation with generation gen. It is a
// no-op when a newer operation has started since: only the latest issued
// call's result is honored.
func (s *sessionService) commit(gen uint64, sess models.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.opSeq {
		return false
	}
	s.session = sess
	return true
}

func (s *sessionService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// Restore resolves the persisted session reference. Missing or invalid
// references, references to since-deleted users, and store faults all resolve
// to anonymous; a valid reference resolves to authenticated.
func (s *sessionService) Restore(ctx context.Context) {
	gen := s.begin()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.resolvePersistedRef(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) && !errors.Is(err, common.ErrInvalidToken) {
			s.log.Warn(ctx, "session restore failed", "error", err)
		}
		s.clearPersistedRef(ctx)
		s.commit(gen, models.Session{Status: models.StatusAnonymous})
		return
	}

	s.commit(gen, models.Session{Status: models.StatusAuthenticated, User: user})
}

func (s *sessionService) resolvePersistedRef(ctx context.Context) (*models.User, error) {
	ref, err := s.state.Get(ctx, StateKeySessionRef)
	if err != nil {
		return nil, err
	}

	key, err := s.signingKey(ctx)
	if err != nil {
		return nil, err
	}

	userID, err := sessiontoken.UserID(string(ref), key)
	if err != nil {
		return nil, err
	}

	return s.users.FindByID(ctx, userID)
}

// Login authenticates against the local account store. Unknown usernames and
// wrong secrets are indistinguishable to the caller.
func (s *sessionService) Login(ctx context.Context, username string, secret []byte) (bool, error) {
	if username == "" || len(secret) == 0 {
		return false, nil
	}

	gen := s.begin()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.commit(gen, models.Session{Status: models.StatusAnonymous})
			return false, nil
		}
		s.log.Error(ctx, "account lookup failed", "error", err)
		s.commit(gen, models.Session{Status: models.StatusAnonymous})
		return false, common.ErrInternal
	}

	if !cryptox.VerifySecret(secret, user.Salt, user.Verifier) {
		s.commit(gen, models.Session{Status: models.StatusAnonymous})
		return false, nil
	}

	// Persist only after the commit: a superseded login must not write a
	// session reference the user no longer holds.
	ok := s.commit(gen, models.Session{Status: models.StatusAuthenticated, User: user})
	if ok {
		s.persistRef(ctx, user.ID)
	}
	return ok, nil
}

// Register creates a new standard account and, on success, immediately
// authenticates it. The duplicate-username check is enforced by the store's
// unique constraint, so the existing record is never altered.
func (s *sessionService) Register(ctx context.Context, username string, secret []byte, email string) (bool, error) {
	if username == "" || len(secret) == 0 {
		return false, nil
	}

	gen := s.begin()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	user := &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Salt:      salt,
		Verifier:  cryptox.HashSecret(secret, salt),
		Email:     email,
		Role:      models.RoleStandard,
		CreatedAt: s.now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.commit(gen, models.Session{Status: models.StatusAnonymous})
		if errors.Is(err, common.ErrAlreadyExists) {
			return false, nil
		}
		s.log.Error(ctx, "account creation failed", "error", err)
		return false, common.ErrInternal
	}

	ok := s.commit(gen, models.Session{Status: models.StatusAuthenticated, User: user})
	if ok {
		s.persistRef(ctx, user.ID)
	}
	return ok, nil
}

// Logout clears the session and removes the persisted reference. It is
// idempotent and also supersedes any operation still in flight, so a slow
// login can never resurrect a session the user already left.
func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.opSeq++
	s.session = models.Session{Status: models.StatusAnonymous}
	s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	s.clearPersistedRef(ctx)
}

// persistRef stores a signed session reference for userID. Persistence is
// best-effort: a failure only means the session will not survive a restart.
func (s *sessionService) persistRef(ctx context.Context, userID string) {
	key, err := s.signingKey(ctx)
	if err != nil {
		s.log.Warn(ctx, "session will not be persisted", "error", err)
		return
	}

	token, err := sessiontoken.Issue(userID, key, s.tokenValidity)
	if err != nil {
		s.log.Warn(ctx, "session will not be persisted", "error", err)
		return
	}

	if err := s.state.Set(ctx, StateKeySessionRef, []byte(token)); err != nil {
		s.log.Warn(ctx, "session will not be persisted", "error", err)
	}
}

func (s *sessionService) clearPersistedRef(ctx context.Context) {
	if err := s.state.Delete(ctx, StateKeySessionRef); err != nil {
		s.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}

// signingKey returns the device-local token signing key, generating and
// storing one on first use.
func (s *sessionService) signingKey(ctx context.Context) ([]byte, error) {
	key, err := s.state.Get(ctx, StateKeySigningKey)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	key = common.GenerateRandByteArray(signingKeySize)
	if err := s.state.Set(ctx, StateKeySigningKey, key); err != nil {
		return nil, err
	}
	return key, nil
}
