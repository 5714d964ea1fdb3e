package entity

import (
	"time"
)

// Enquiry is a contact/lead submission from a prospective student to an
// institute. UserID is set only when the submitter was authenticated.
type Enquiry struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	InstituteID string        `bson:"institute_id" json:"instituteId"`
	UserID      string        `bson:"user_id,omitempty" json:"userId,omitempty"`
	CourseID    string        `bson:"course_id,omitempty" json:"courseId,omitempty"`
	Name        string        `bson:"name" json:"name"`
	Email       string        `bson:"email" json:"email"`
	Phone       string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Message     string        `bson:"message" json:"message"`
	Status      EnquiryStatus `bson:"status" json:"status"`
	Reply       *EnquiryReply `bson:"reply,omitempty" json:"reply,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// EnquiryReply is the embedded response from an institute or admin.
type EnquiryReply struct {
	Message       string    `bson:"message" json:"message"`
	ResponderID   string    `bson:"responder_id" json:"responderId"`
	ResponderRole Role      `bson:"responder_role" json:"responderRole"`
	RepliedAt     time.Time `bson:"replied_at" json:"repliedAt"`
}

// EnquiryStatus is the fixed enquiry state set. No transition table is
// enforced beyond membership in this set.
type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "pending"
	EnquiryStatusReplied   EnquiryStatus = "replied"
	EnquiryStatusResolved  EnquiryStatus = "resolved"
	EnquiryStatusCancelled EnquiryStatus = "cancelled"
)

// ValidEnquiryStatus reports whether s is one of the fixed status values.
func ValidEnquiryStatus(s EnquiryStatus) bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusReplied, EnquiryStatusResolved, EnquiryStatusCancelled:
		return true
	}
	return false
}
