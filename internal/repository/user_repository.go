package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	userDomain "github.com/shareit/service-booking/internal/domain/user"
	"github.com/shareit/service-booking/internal/platform/domain"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (UserModel) TableName() string { return "users" }

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return toUserDomain(&model), nil
}

func (r *GormUserRepository) FindAll(ctx context.Context) ([]*userDomain.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]*userDomain.User, len(models))
	for i := range models {
		users[i] = toUserDomain(&models[i])
	}
	return users, nil
}

func (r *GormUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}

func (r *GormUserRepository) Save(ctx context.Context, u *userDomain.User) error {
	model := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("email already registered: " + u.Email())
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	u.AssignID(model.ID)
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, u *userDomain.User) error {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"name":       u.Name(),
			"email":      u.Email(),
			"updated_at": u.UpdatedAt(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("email already registered: " + u.Email())
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("User", strconv.FormatInt(u.ID(), 10))
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("User", strconv.FormatInt(id, 10))
	}
	return nil
}

func toUserModel(u *userDomain.User) *UserModel {
	return &UserModel{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func toUserDomain(m *UserModel) *userDomain.User {
	return userDomain.Reconstruct(m.ID, m.Name, m.Email, m.CreatedAt, m.UpdatedAt)
}
