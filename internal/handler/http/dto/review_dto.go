package dto

// CreateReviewRequest is the payload for submitting a review.
type CreateReviewRequest struct {
	Institute string `json:"institute" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty" binding:"omitempty,max=2000"`
}

// UpdateReviewRequest carries the editable review fields.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=2000"`
}

// FlagReviewRequest toggles the flagged bit. A nil Flagged defaults to true.
type FlagReviewRequest struct {
	Flagged *bool  `json:"flagged,omitempty"`
	Reason  string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

// ApproveReviewRequest toggles the approved bit. A nil Approved defaults to
// true.
type ApproveReviewRequest struct {
	Approved *bool `json:"approved,omitempty"`
}
