package entity

import (
	"time"
)

// Review is a rated, moderated testimonial from a user about an institute.
// A user may hold at most one review per institute.
//
// Approved and Flagged are deliberately two independent booleans rather than
// a single enum: flagging forces approved=false, and the approve action
// forces flagged=false, but the fields are otherwise freely combinable.
// Consumers depend on this two-boolean shape.
type Review struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	UserID      string       `bson:"user_id" json:"userId"`
	InstituteID string       `bson:"institute_id" json:"instituteId"`
	Rating      int          `bson:"rating" json:"rating"`
	Comment     string       `bson:"comment,omitempty" json:"comment,omitempty"`
	Approved    bool         `bson:"approved" json:"approved"`
	Flagged     bool         `bson:"flagged" json:"flagged"`
	FlagReason  string       `bson:"flag_reason,omitempty" json:"flagReason,omitempty"`
	Approval    *ReviewAudit `bson:"approval,omitempty" json:"approval,omitempty"`
	Flag        *ReviewAudit `bson:"flag,omitempty" json:"flag,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

// ReviewAudit records who performed a moderation action and when.
type ReviewAudit struct {
	By string    `bson:"by" json:"by"`
	At time.Time `bson:"at" json:"at"`
}
