package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/repository"

	"go.uber.org/zap"
)

type UserService interface {
	GetUser(ctx context.Context, req GetUserRequest) (*GetUserResponse, error)
	// EnsureUser returns the realtor with the given email, creating it if needed
	EnsureUser(ctx context.Context, req EnsureUserRequest) (*EnsureUserResponse, error)
}

type userService struct {
	usersRepo repository.UsersRepository
	logger    *zap.Logger
}

func NewUserService(usersRepo repository.UsersRepository, logger *zap.Logger) UserService {
	return &userService{usersRepo: usersRepo, logger: logger}
}

type GetUserRequest struct {
	UserID uint
}

type GetUserResponse struct {
	User *domain.User `json:"user"`
}

type EnsureUserRequest struct {
	Email string
	Name  string
}

type EnsureUserResponse struct {
	User    *domain.User `json:"user"`
	Created bool         `json:"created"`
}

func (s *userService) GetUser(ctx context.Context, req GetUserRequest) (*GetUserResponse, error) {
	u, err := s.usersRepo.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return &GetUserResponse{User: u}, nil
}

func (s *userService) EnsureUser(ctx context.Context, req EnsureUserRequest) (*EnsureUserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, domain.ValidationErrors{{Field: "email", Message: "Email is required"}}
	}

	u, err := s.usersRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return &EnsureUserResponse{User: u}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	u = &domain.User{Email: email, Role: domain.RoleRealtor, Status: domain.AccountActive}
	if req.Name != "" {
		name := req.Name
		u.Name = &name
	}
	if err := s.usersRepo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info("realtor created", zap.Uint("user_id", u.ID), zap.String("email", email))
	return &EnsureUserResponse{User: u, Created: true}, nil
}
