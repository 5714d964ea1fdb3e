package dto

import (
	"time"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// RegisterRequest is the signup payload for both users and institutes.
type RegisterRequest struct {
	Role        string `json:"role" binding:"required,oneof=user institute"`
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the editable profile fields; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	Description *string `json:"description,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Pincode     *string `json:"pincode,omitempty"`
}

// ToMap flattens the set fields into the dotted update keys the repositories
// expect.
func (r UpdateProfileRequest) ToMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Website != nil {
		updates["website"] = *r.Website
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.City != nil {
		updates["address.city"] = *r.City
	}
	if r.State != nil {
		updates["address.state"] = *r.State
	}
	if r.Pincode != nil {
		updates["address.pincode"] = *r.Pincode
	}
	return updates
}

// ChangePasswordRequest is the password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ActorResponse is the identity attached to a login response.
type ActorResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// LoginResponse is the payload for a successful login.
type LoginResponse struct {
	User  ActorResponse `json:"user"`
	Token string        `json:"token"`
}

// ToActorResponse converts an entity.Actor to its response DTO.
func ToActorResponse(actor entity.Actor) ActorResponse {
	return ActorResponse{
		ID:     actor.ID,
		Name:   actor.Name,
		Email:  actor.Email,
		Role:   string(actor.Role),
		Status: string(actor.Status),
	}
}

// RegisteredResponse is the payload for a successful registration.
type RegisteredResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
