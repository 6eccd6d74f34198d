package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role determines what a user may do. Admins operate across all
// restaurants; chiefs and staff are bound to exactly one.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleChief Role = "chief"
	RoleStaff Role = "staff"
)

// ParseRole validates and returns a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleChief, RoleStaff:
		return Role(s), nil
	default:
		return "", shared.NewDomainError("INVALID_ROLE", "Role must be admin, chief or staff")
	}
}

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// Password cost for bcrypt
const bcryptCost = 12

// User is the aggregate root for account operations.
// RestaurantID is nil only for admins.
type User struct {
	shared.BaseAggregateRoot
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Role         Role       `gorm:"type:varchar(20);not null"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates an active user. Non-admin roles must carry a restaurant.
func NewUser(email, password, name string, role Role, restaurantID *uuid.UUID) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if role != RoleAdmin && restaurantID == nil {
		return nil, shared.NewDomainError("RESTAURANT_REQUIRED", "Chief and staff accounts must belong to a restaurant")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		Name:              strings.TrimSpace(name),
		Role:              role,
		RestaurantID:      restaurantID,
		Status:            UserStatusActive,
	}, nil
}

// Rename updates the user's display name
func (u *User) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	u.Name = strings.TrimSpace(name)
	u.Touch()
	u.IncrementVersion()
	return nil
}

// ChangeRole moves the user to a different role. Demoting an admin into a
// tenant role requires a restaurant; promoting to admin clears it.
func (u *User) ChangeRole(role Role, restaurantID *uuid.UUID) error {
	if role != RoleAdmin && restaurantID == nil {
		return shared.NewDomainError("RESTAURANT_REQUIRED", "Chief and staff accounts must belong to a restaurant")
	}
	u.Role = role
	if role == RoleAdmin {
		u.RestaurantID = nil
	} else {
		u.RestaurantID = restaurantID
	}
	u.Touch()
	u.IncrementVersion()
	return nil
}

// ChangePassword changes the password after verifying the current one
func (u *User) ChangePassword(currentPassword, newPassword string) error {
	if !u.VerifyPassword(currentPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password (admin reset, no current password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.Touch()
	u.IncrementVersion()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Activate re-enables the account
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}
	u.Status = UserStatusActive
	u.Touch()
	u.IncrementVersion()
	return nil
}

// Deactivate disables the account without deleting it
func (u *User) Deactivate() error {
	if u.Status == UserStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "User is already inactive")
	}
	u.Status = UserStatusInactive
	u.Touch()
	u.IncrementVersion()
	return nil
}

// RecordLogin stores the last successful login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.Touch()
	u.IncrementVersion()
}

// IsActive returns true if the user may log in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsAdmin returns true for global administrator accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BelongsTo reports whether the user works at the given restaurant
func (u *User) BelongsTo(restaurantID uuid.UUID) bool {
	return u.RestaurantID != nil && *u.RestaurantID == restaurantID
}

// Validation functions

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
