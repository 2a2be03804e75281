package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// bcryptCost matches the work factor the original user base was hashed with.
const bcryptCost = 10

// AuthService implements registration, login and token issuance.
type AuthService struct {
	repo        ports.AuthRepository
	jwtSecret   string
	tokenTTL    time.Duration
	allowLegacy bool
}

// NewAuthService builds an AuthService. allowLegacy enables the plain-text
// password fallback for unmigrated records; it never applies to accounts this
// service creates.
func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration, allowLegacy bool) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, allowLegacy: allowLegacy}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// bcrypt only keys on the first 72 bytes; GenerateFromPassword rejects
	// longer inputs outright while CompareHashAndPassword ignores the tail.
	// Truncate so long passwords register and then log in, as they did when
	// the user base was built up.
	secret := []byte(password)
	if len(secret) > 72 {
		secret = secret[:72]
	}

	hash, err := bcrypt.GenerateFromPassword(secret, bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:  username,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and returns a token carrying the requested
// role. An unknown username yields ErrInvalidCredentials, indistinguishable
// from a wrong password, so the endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password, role string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	if role != domain.RoleAdmin && role != domain.RoleClient {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.passwordMatches(password, user.Password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(user.Username, role)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// passwordMatches checks the submitted password against the stored value.
// Primary path is a bcrypt comparison; when that fails and legacy support is
// on, a verbatim equality check accepts records whose password was stored
// before hashing was introduced.
func (s *AuthService) passwordMatches(submitted, stored string) bool {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil {
		return true
	}
	return s.allowLegacy && submitted == stored
}

func (s *AuthService) generateToken(username, role string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
