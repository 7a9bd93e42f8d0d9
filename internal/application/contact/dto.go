package contact

// Submission carries one contact-form POST. It lives for exactly one request
// and is never persisted.
type Submission struct {
	Name         string `form:"name"`
	Email        string `form:"email"`
	Phone        string `form:"phone"`
	Message      string `form:"message"`
	CaptchaToken string `form:"cf-turnstile-response"`
}

// requiredFields is the trimmed view of a submission the validator checks.
// Phone is deliberately absent: it is optional, and field formats are left to
// the browser's native form constraints.
type requiredFields struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}
