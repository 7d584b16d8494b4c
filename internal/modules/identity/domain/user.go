package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var (
	// ErrInvalidCredentials rejects a login with a missing email or password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation wraps field validation failures.
	ErrValidation = errors.New("validation failed")
)

// User is the identity making requests. RestaurantID is set iff the role is
// admin and links to the single restaurant this identity administers.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar,omitempty"`
	Role         Role   `json:"role,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`
	Provider     string `json:"provider,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

// IsAdmin reports whether the identity holds the administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// LoginCommand carries the credential pair. Any non-empty pair is accepted by
// the mock credential check; only blanks are rejected.
type LoginCommand struct {
	Email    string
	Password string
}

func (c *LoginCommand) Validate() error {
	if strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Password) == "" {
		return ErrInvalidCredentials
	}
	return nil
}

// RegisterCommand creates a new identity with the default user role.
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

func (c *RegisterCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if strings.TrimSpace(c.Password) == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return nil
}

// UpdateProfileCommand merges the non-nil fields into the stored identity.
type UpdateProfileCommand struct {
	Name    *string
	Email   *string
	Avatar  *string
	Phone   *string
	Address *string
	Bio     *string
}

// Apply copies the set fields onto the user.
func (c *UpdateProfileCommand) Apply(u *User) {
	if c.Name != nil {
		u.Name = *c.Name
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.Avatar != nil {
		u.Avatar = *c.Avatar
	}
	if c.Phone != nil {
		u.Phone = *c.Phone
	}
	if c.Address != nil {
		u.Address = *c.Address
	}
	if c.Bio != nil {
		u.Bio = *c.Bio
	}
}
