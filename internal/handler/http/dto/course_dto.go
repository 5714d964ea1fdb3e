package dto

// CreateCourseRequest is the payload for creating a course. Institute is
// only honored for admin callers; institute callers always create for
// themselves.
type CreateCourseRequest struct {
	Institute   string   `json:"institute,omitempty"`
	Name        string   `json:"name" binding:"required,min=2,max=200"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category" binding:"required,coursecategory"`
	Price       float64  `json:"price" binding:"gte=0"`
	Duration    string   `json:"duration,omitempty"`
	Status      string   `json:"status,omitempty" binding:"omitempty,coursestatus"`
	Curriculum  []string `json:"curriculum,omitempty"`
}

// UpdateCourseRequest carries the editable course fields.
type UpdateCourseRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty" binding:"omitempty,coursecategory"`
	Price       *float64  `json:"price,omitempty" binding:"omitempty,gte=0"`
	Duration    *string   `json:"duration,omitempty"`
	Status      *string   `json:"status,omitempty" binding:"omitempty,coursestatus"`
	Curriculum  *[]string `json:"curriculum,omitempty"`
}

// ToMap flattens the set fields into update keys.
func (r UpdateCourseRequest) ToMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.Duration != nil {
		updates["duration"] = *r.Duration
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Curriculum != nil {
		updates["curriculum"] = *r.Curriculum
	}
	return updates
}
