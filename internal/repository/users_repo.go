package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// UsersRepository user accounts
type UsersRepository interface {
	GetUser(ctx context.Context, userID uint) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}
