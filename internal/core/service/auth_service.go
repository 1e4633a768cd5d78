package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/roamly/booking-api/internal/core/domain"
	"github.com/roamly/booking-api/internal/core/ports"
	"github.com/roamly/booking-api/internal/core/token"
)

// LoginThrottle limits failed login attempts per email. Implementations may
// degrade open: a throttle backend outage must not lock users out.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements signup, login, logout and profile resolution.
type AuthService struct {
	users    ports.UserRepository
	tokens   *token.Service
	throttle LoginThrottle
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Service, throttle LoginThrottle, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, audit: audit, log: log}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Balance:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	tkn, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.record(domain.AuthEvent{UserID: created.ID, Email: created.Email, Action: domain.ActionSignup})
	return tkn, created, nil
}

// Login verifies credentials. An unknown email and a wrong password produce
// the same domain.ErrInvalidCredentials so the response never reveals
// whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Only an unknown account takes the uniform-failure branch. A store
		// outage is not a credential failure: it must surface as a server
		// error and never count against the caller's throttle budget.
		if errors.Is(err, domain.ErrUserNotFound) {
			s.failedAttempt(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.failedAttempt(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	s.record(domain.AuthEvent{UserID: user.ID, Email: user.Email, Action: domain.ActionLogin})
	return tkn, user, nil
}

func (s *AuthService) Logout(ctx context.Context, userID, email string) {
	if userID == "" && email == "" {
		// Already anonymous; logout stays a no-op success.
		return
	}
	s.record(domain.AuthEvent{UserID: userID, Email: email, Action: domain.ActionLogout})
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) failedAttempt(ctx context.Context, email string) {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	s.record(domain.AuthEvent{Email: email, Action: domain.ActionLoginFailed})
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Enqueue(event)
}
