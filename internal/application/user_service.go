package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	userDomain "github.com/shareit/service-booking/internal/domain/user"
)

// CreateUserRequest is the request DTO for registering a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest is the request DTO for a partial user update.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// UserDTO is the API response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService handles user directory use cases.
type UserService struct {
	repo   userDomain.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo userDomain.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser registers a user; the email must be unused.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := userDomain.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Int64("user_id", u.ID()))
	return toUserDTO(u), nil
}

// UpdateUser applies a partial update to a user.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.Update(req.Name, req.Email); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.Int64("user_id", userID))
	return toUserDTO(u), nil
}

// GetUser returns a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

// ListUsers returns every registered user.
func (s *UserService) ListUsers(ctx context.Context) ([]*UserDTO, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

// Exists reports whether the user is registered.
func (s *UserService) Exists(ctx context.Context, userID int64) (bool, error) {
	exists, err := s.repo.Exists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

func toUserDTO(u *userDomain.User) *UserDTO {
	return &UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}
