package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/service/auth"
	"github.com/agendamed/agenda-api/internal/store"
)

// TokenBundle is the token payload returned by login and refresh. The
// refresh token has a longer lifetime than the access token and is the
// bearer credential for the refresh endpoint.
type TokenBundle struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // access token, seconds
	User         *domain.User `json:"user"`
}

// AuthService orchestrates registration, login and token refresh.
// The caller's identity always arrives as an explicit parameter; there is no
// ambient "current user" state.
type AuthService struct {
	users    store.UserStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(
	users store.UserStore,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthService {
	return &AuthService{
		users:    users,
		jwt:      jwt,
		hasher:   hasher,
		verifier: verifier,
	}
}

// Register hashes the password, creates the user and immediately issues an
// access token (auto-login).
// Returns store.ErrEmailExists if the email is already taken.
func (s *AuthService) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, string, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, "", err
	}

	user.HashedPassword, err = s.hasher.Hash(user.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and returns a token bundle.
// Returns auth.ErrInvalidCredentials when the email is unknown or the
// password does not match.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenBundle, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.bundleFor(ctx, user)
}

// CurrentUser returns the user for the authenticated caller's ID.
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Refresh re-issues a token bundle for the authenticated caller. The caller
// proved their identity with a refresh token; both tokens are rotated.
func (s *AuthService) Refresh(ctx context.Context, userID uuid.UUID) (*TokenBundle, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.bundleFor(ctx, user)
}

func (s *AuthService) bundleFor(ctx context.Context, user *domain.User) (*TokenBundle, error) {
	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenBundle{
		AccessToken:  token,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(s.jwt.AccessTokenLifetime().Seconds()),
		User:         user,
	}, nil
}
