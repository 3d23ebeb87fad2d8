package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shareit/service-booking/internal/platform/domain"
)

// User is a registered marketplace participant.
type User struct {
	id        int64
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a user with a validated name and email.
func NewUser(name, email string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("user name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{name: name, email: email, createdAt: now, updatedAt: now}, nil
}

// Reconstruct rebuilds a User from persistence.
func Reconstruct(id int64, name, email string, createdAt, updatedAt time.Time) *User {
	return &User{id: id, name: name, email: email, createdAt: createdAt, updatedAt: updatedAt}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// AssignID records the identifier generated by the store.
func (u *User) AssignID(id int64) {
	if u.id == 0 {
		u.id = id
	}
}

// Update applies a partial update of name and email.
func (u *User) Update(name, email *string) error {
	if email != nil {
		if err := validateEmail(*email); err != nil {
			return err
		}
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		u.name = *name
	}
	if email != nil {
		u.email = *email
	}
	u.updatedAt = time.Now().UTC()
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("user email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.NewValidationError("invalid email: " + email)
	}
	return nil
}
