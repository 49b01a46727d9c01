package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
	ErrExpiredToken       = errors.New("token expired")
)

const defaultTokenTTL = 24 * time.Hour

type AuthProcessor struct {
	store     AuthStore
	events    EventPublisher
	jwtSecret string
	tokenTTL  time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AuthStore, events EventPublisher, jwtSecret string, tokenTTL time.Duration, logger *observability.Logger) AuthProcessor {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return AuthProcessor{
		store:     store,
		events:    events,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

type LoggedInUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      LoggedInUser `json:"user"`
}

func toLoggedInUser(u store.User) LoggedInUser {
	return LoggedInUser{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

// Login checks the password of an active user and issues a signed token.
// Unknown emails, wrong passwords and deactivated users are indistinguishable
// to the caller.
func (p *AuthProcessor) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return LoginResult{}, err
	}
	if !user.IsActive {
		p.logger.Warn(ctx, "login attempt for deactivated user")
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}

	if err := p.store.TouchLastLogin(ctx, user.ID); err != nil {
		p.logger.Error(ctx, "failed to record last login", err)
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, User: toLoggedInUser(user)}, nil
}

// ForgotPassword requests a reset link. It never reports whether the
// account exists; lookup failures are logged and swallowed.
func (p *AuthProcessor) ForgotPassword(ctx context.Context, email string) {
	email = strings.TrimSpace(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to look up user for password reset", err)
		}
		return
	}
	if !user.IsActive {
		return
	}

	p.logger.Info(ctx, "password reset requested")
	p.events.PasswordResetRequested(ctx, user.ID, user.Email)
}

// Authenticate validates a bearer token and resolves it to the current
// state of its user, so role changes and deactivation apply immediately.
func (p *AuthProcessor) Authenticate(ctx context.Context, token string) (actor.Actor, error) {
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return actor.Actor{}, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return actor.Actor{}, ErrInvalidJWTToken
	}

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return actor.Actor{}, ErrInvalidJWTToken
		}
		p.logger.Error(ctx, "failed to load authenticated user", err)
		return actor.Actor{}, err
	}
	if !user.IsActive {
		return actor.Actor{}, ErrInvalidJWTToken
	}

	return actor.Actor{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// GetUser returns the profile of a signed-in user
func (p *AuthProcessor) GetUser(ctx context.Context, userID uuid.UUID) (LoggedInUser, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoggedInUser{}, ErrInvalidJWTToken
		}
		p.logger.Error(ctx, "failed to get user", err)
		return LoggedInUser{}, err
	}
	return toLoggedInUser(user), nil
}
