package contract

// IValidator validates values that binding tags cannot cover.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
