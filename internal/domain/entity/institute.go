package entity

import (
	"time"
)

// Institute represents an educational organization that lists courses and
// receives enquiries and reviews.
type Institute struct {
	ID           string         `bson:"_id,omitempty" json:"id"`
	Name         string         `bson:"name" json:"name"`
	Email        string         `bson:"email" json:"email"`
	PasswordHash string         `bson:"password_hash" json:"-"`
	Phone        string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Website      string         `bson:"website,omitempty" json:"website,omitempty"`
	Description  string         `bson:"description,omitempty" json:"description,omitempty"`
	Address      Address        `bson:"address,omitempty" json:"address,omitempty"`
	Role         Role           `bson:"role" json:"role"`
	Status       Status         `bson:"status" json:"status"`
	Stats        InstituteStats `bson:"stats" json:"stats"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updated_at"`
}

// Address is an institute's physical location.
type Address struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

// InstituteStats caches aggregates over an institute's reviews, courses and
// enquiries. Rating and ReviewsCount are derived from approved reviews only
// and are overwritten by a full recompute after every review mutation; they
// are never the source of truth.
type InstituteStats struct {
	Rating         float64   `bson:"rating" json:"rating"`
	ReviewsCount   int       `bson:"reviews_count" json:"reviewsCount"`
	CoursesCount   int       `bson:"courses_count" json:"coursesCount"`
	EnquiriesCount int       `bson:"enquiries_count" json:"enquiriesCount"`
	LastUpdatedAt  time.Time `bson:"last_updated_at,omitempty" json:"lastUpdatedAt,omitempty"`
}
