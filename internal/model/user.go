package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated user in the system
type User struct {
	ID          string    `bson:"_id" json:"id"`
	Username    string    `bson:"username" json:"username" validate:"required"`
	Password    string    `bson:"password" json:"-"` // bcrypt hash, hidden from JSON
	FullName    string    `bson:"full_name" json:"full_name"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Role        Role      `bson:"role" json:"role"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        Role   `json:"role"`
	IsActive    bool   `json:"is_active"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}

// UserPatch carries a partial update; nil fields are left untouched.
// Role and IsActive are privileged fields, administrators only.
type UserPatch struct {
	Username    *string `json:"username"`
	FullName    *string `json:"full_name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Role        *Role   `json:"role"`
	IsActive    *bool   `json:"is_active"`
}

func (p UserPatch) Empty() bool {
	return p.Username == nil && p.FullName == nil && p.Email == nil &&
		p.PhoneNumber == nil && p.Role == nil && p.IsActive == nil
}

// TouchesPrivilegedFields reports whether the patch changes fields only an
// administrator may write.
func (p UserPatch) TouchesPrivilegedFields() bool {
	return p.Role != nil || p.IsActive != nil
}
