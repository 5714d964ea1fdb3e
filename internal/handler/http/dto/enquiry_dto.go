package dto

// CreateEnquiryRequest is the public enquiry submission payload.
type CreateEnquiryRequest struct {
	Institute string `json:"institute" binding:"required"`
	Course    string `json:"course,omitempty"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message" binding:"required,min=5,max=2000"`
}

// ReplyEnquiryRequest is the institute/admin reply payload.
type ReplyEnquiryRequest struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

// UpdateEnquiryStatusRequest sets an enquiry's status from the fixed set.
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required,enquirystatus"`
}
