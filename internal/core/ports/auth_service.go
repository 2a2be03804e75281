package ports

import (
	"context"

	"github.com/storelabs/store-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed token carrying the
	// given role. The role is chosen by the calling endpoint, not stored on
	// the account.
	Login(ctx context.Context, username, password, role string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
