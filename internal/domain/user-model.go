package domain

import "time"

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// FileRef is a media asset hosted on Cloudinary (or any URL the client
// already owns, in which case PublicID stays empty).
type FileRef struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

func (f FileRef) IsZero() bool {
	return f.PublicID == "" && f.URL == ""
}

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `gorm:"type:varchar(20);not null" json:"role"`
	Avatar       FileRef `gorm:"embedded;embeddedPrefix:avatar_" json:"avatar"`

	// student-only
	College        string   `json:"college,omitempty"`
	Year           int      `json:"year,omitempty"`
	Skills         []string `gorm:"serializer:json" json:"skills,omitempty"`
	PortfolioLinks []string `gorm:"serializer:json" json:"portfolio_links,omitempty"`
	Resume         FileRef  `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`

	// recruiter-only
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	VerifiedRecruiter  bool   `json:"verified_recruiter"`

	// common
	Bio           string `gorm:"size:1000" json:"bio,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) IsStudent() bool   { return u.Role == RoleStudent }
func (u *User) IsRecruiter() bool { return u.Role == RoleRecruiter }
func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }

// SavedJob is one entry of a student's saved-gigs set. The unique index
// makes the save/unsave toggle idempotent per (user, job) pair.
type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_saved_job;not null" json:"user_id"`
	JobID     uint      `gorm:"uniqueIndex:idx_user_saved_job;not null" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}
