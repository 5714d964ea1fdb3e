package entity

import (
	"time"
)

// Admin represents a platform moderator account. Admins live in their own
// collection with a narrower role enum; all of them authorize as RoleAdmin.
type Admin struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	AdminRole    AdminRole `bson:"admin_role" json:"adminRole"`
	Status       Status    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// AdminRole is the fine-grained admin tier.
type AdminRole string

const (
	AdminRoleSuper         AdminRole = "superadmin"
	AdminRoleAdministrator AdminRole = "administrator"
	AdminRoleModerator     AdminRole = "moderator"
)
