package user

import "context"

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Save inserts a user; a duplicate email yields a conflict error.
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}
