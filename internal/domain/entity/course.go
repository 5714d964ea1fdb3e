package entity

import (
	"time"
)

// Course is a listing owned by exactly one institute.
type Course struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	InstituteID string         `bson:"institute_id" json:"instituteId"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Category    CourseCategory `bson:"category" json:"category"`
	Price       float64        `bson:"price" json:"price"`
	Duration    string         `bson:"duration,omitempty" json:"duration,omitempty"`
	Status      CourseStatus   `bson:"status" json:"status"`
	Curriculum  []string       `bson:"curriculum,omitempty" json:"curriculum,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updated_at"`
}

// CourseCategory is the closed set of listing categories.
type CourseCategory string

const (
	CategoryProgramming CourseCategory = "programming"
	CategoryDesign      CourseCategory = "design"
	CategoryBusiness    CourseCategory = "business"
	CategoryMarketing   CourseCategory = "marketing"
	CategoryLanguage    CourseCategory = "language"
	CategoryScience     CourseCategory = "science"
	CategoryArts        CourseCategory = "arts"
	CategoryOther       CourseCategory = "other"
)

// ValidCategory reports whether c is one of the closed category values.
func ValidCategory(c CourseCategory) bool {
	switch c {
	case CategoryProgramming, CategoryDesign, CategoryBusiness, CategoryMarketing,
		CategoryLanguage, CategoryScience, CategoryArts, CategoryOther:
		return true
	}
	return false
}

// CourseStatus is the lifecycle state of a course listing.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusActive    CourseStatus = "active"
	CourseStatusArchived  CourseStatus = "archived"
	CourseStatusSuspended CourseStatus = "suspended"
)

// ValidCourseStatus reports whether s is one of the fixed status values.
func ValidCourseStatus(s CourseStatus) bool {
	switch s {
	case CourseStatusDraft, CourseStatusActive, CourseStatusArchived, CourseStatusSuspended:
		return true
	}
	return false
}
