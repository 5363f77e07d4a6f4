package dto

// AuthClaims is the verified identity carried through the request context.
type AuthClaims struct {
	UserID uint    `json:"user_id"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Expiry float64 `json:"expiry"`
}

// RegisterRequest is a tagged union: Role selects which of the two nested
// payloads must be present, checked by one exhaustive switch in the service.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student recruiter"`

	Student   *StudentRegistration   `json:"student,omitempty"`
	Recruiter *RecruiterRegistration `json:"recruiter,omitempty"`
}

type StudentRegistration struct {
	College        string   `json:"college" validate:"required"`
	Year           int      `json:"year" validate:"omitempty,oneof=1 2 3 4"`
	Skills         []string `json:"skills,omitempty"`
	PortfolioLinks []string `json:"portfolio_links,omitempty"`
	Resume         string   `json:"resume,omitempty"` // data URI or URL
	Avatar         string   `json:"avatar,omitempty"`
}

type RecruiterRegistration struct {
	CompanyName        string `json:"company_name" validate:"required"`
	CompanyDescription string `json:"company_description,omitempty"`
	Avatar             string `json:"avatar,omitempty"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries only the fields the caller wants changed;
// role-specific fields are ignored for the other role.
type UpdateProfileRequest struct {
	Name           *string  `json:"name,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Avatar         string   `json:"avatar,omitempty"`
	Resume         string   `json:"resume,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	PortfolioLinks []string `json:"portfolio_links,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	ContactNumber  *string  `json:"contact_number,omitempty"`

	// student-only
	College *string `json:"college,omitempty"`
	Year    *int    `json:"year,omitempty"`

	// recruiter-only (verified_recruiter is never client-settable)
	CompanyName        *string `json:"company_name,omitempty"`
	CompanyDescription *string `json:"company_description,omitempty"`
}
