package entity

import (
	"time"
)

// User represents a registered student/visitor account.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	Status       Status    `bson:"status" json:"status"`
	Stats        UserStats `bson:"stats" json:"stats"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserStats holds denormalized activity counters for a user.
type UserStats struct {
	ReviewsCount   int `bson:"reviews_count" json:"reviewsCount"`
	EnquiriesCount int `bson:"enquiries_count" json:"enquiriesCount"`
}

// Role is the coarse authorization role carried in tokens.
type Role string

const (
	RoleUser      Role = "user"
	RoleInstitute Role = "institute"
	RoleAdmin     Role = "admin"
)

// Status is the lifecycle state of an identity account.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

func DefaultRole() Role {
	return RoleUser
}
