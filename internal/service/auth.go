package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/msomdec/recipe-hub/internal/domain"
)

const minPasswordLength = 6

// AuthService handles user registration, credential verification, and
// resolving bearer tokens back to users.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenService
	hasher PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *TokenService, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, tokens: tokens, hasher: hasher}
}

// Register creates a new user account after validating inputs. The email is
// lowercased before storage so uniqueness and lookups are case-insensitive.
func (s *AuthService) Register(ctx context.Context, email, password string, fullName *string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: malformed email address", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns a signed bearer token. Unknown
// emails and wrong passwords are indistinguishable to the caller: both
// yield domain.ErrUnauthorized, and the unknown-email path still performs a
// bcrypt comparison so timing does not differ either.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.VerifyDummy(password)
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrUnauthorized
	}
	if !user.IsActive {
		return "", domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// UserFromToken verifies a bearer token and resolves its subject to a user.
// Numeric subjects are treated as user IDs; anything else falls back to an
// email lookup. A valid token whose subject no longer exists, or names an
// inactive user, is unauthorized.
func (s *AuthService) UserFromToken(ctx context.Context, tokenString string) (*domain.User, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	if id, convErr := strconv.ParseInt(subject, 10, 64); convErr == nil {
		user, err = s.users.GetByID(ctx, id)
	} else {
		user, err = s.users.GetByEmail(ctx, normalizeEmail(subject))
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
