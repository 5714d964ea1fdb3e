package dto

// Response is the JSON envelope carried by every API response: a success
// flag and a human-readable message, plus optional payload, pagination and a
// machine-readable code on authorization failures.
type Response struct {
	Success       bool        `json:"success"`
	Message       string      `json:"message"`
	Code          string      `json:"code,omitempty"`
	Data          interface{} `json:"data,omitempty"`
	Errors        []string    `json:"errors,omitempty"`
	Pagination    *Pagination `json:"pagination,omitempty"`
	RequiredRoles []string    `json:"requiredRoles,omitempty"`
	ActualRole    string      `json:"actualRole,omitempty"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination computes the page count for a list response.
func NewPagination(page, limit int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// Machine-readable authorization failure codes.
const (
	CodeNoToken            = "NO_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeAuthFailed         = "AUTH_FAILED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeAccountDeactivated = "ACCOUNT_DEACTIVATED"
	CodeAuthRequired       = "AUTH_REQUIRED"
	CodeRoleForbidden      = "ROLE_FORBIDDEN"
	CodeServerError        = "SERVER_ERROR"
)
