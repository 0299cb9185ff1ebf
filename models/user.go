package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleBuyer  UserRole = "buyer"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

// User is an account on the marketplace. Role is fixed at registration.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	PhoneNumber  *string   `gorm:"size:20" json:"phone_number,omitempty"`
	ProfileImage *string   `gorm:"type:text" json:"profile_image,omitempty"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'buyer'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Addresses []Address `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Address belongs to a user and is removed with it.
type Address struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	City        string    `gorm:"size:100;not null" json:"city"`
	District    string    `gorm:"size:100;not null" json:"district"`
	FullAddress string    `gorm:"type:text;not null" json:"full_address"`
	PostalCode  string    `gorm:"size:20;not null" json:"postal_code"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
