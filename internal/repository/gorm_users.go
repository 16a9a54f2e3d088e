package repository

import (
	"context"

	"github.com/pablotanner/RocketRealtor/internal/domain"

	"gorm.io/gorm"
)

type gormUsersRepository struct {
	db *gorm.DB
}

func NewGormUsersRepository(db *gorm.DB) UsersRepository {
	return &gormUsersRepository{db: db}
}

func (r *gormUsersRepository) GetUser(ctx context.Context, userID uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, translate(err, "User")
	}
	return &u, nil
}

func (r *gormUsersRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err, "User")
	}
	return &u, nil
}

func (r *gormUsersRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
