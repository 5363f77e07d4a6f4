package domain

import "time"

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

const (
	PayTypeFixed   = "fixed"
	PayTypeHourly  = "hourly"
	PayTypeStipend = "stipend"
)

var (
	AllowedEmploymentTypes = []string{"micro-gig", "freelance", "internship", "part-time", "contract", "full-time"}
	AllowedRemoteTypes     = []string{"remote", "on-site", "hybrid"}
	AllowedPayTypes        = []string{PayTypeFixed, PayTypeHourly, PayTypeStipend}
)

// Eligibility is the academic-year range (1..4) a gig accepts.
type Eligibility struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

type Job struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"not null" json:"description"`
	CompanyName string  `gorm:"not null" json:"company_name"`
	CompanyLogo FileRef `gorm:"embedded;embeddedPrefix:company_logo_" json:"company_logo"`
	Location    string  `json:"location,omitempty"`

	SkillsRequired []string `gorm:"serializer:json" json:"skills_required"`
	Category       string   `json:"category,omitempty"`
	EmploymentType string   `gorm:"type:varchar(20)" json:"employment_type"`
	Experience     string   `json:"experience,omitempty"`

	PayType string `gorm:"type:varchar(10)" json:"pay_type"`
	PayMin  int    `json:"pay_min"`
	PayMax  int    `json:"pay_max"`

	DurationWeeks int `json:"duration_weeks"`
	HoursPerWeek  int `json:"hours_per_week"`

	RemoteType  string      `gorm:"type:varchar(10)" json:"remote_type"`
	Eligibility Eligibility `gorm:"embedded;embeddedPrefix:eligibility_" json:"eligibility"`

	MaxApplicants int       `json:"max_applicants"`
	Attachments   []FileRef `gorm:"serializer:json" json:"attachments"`

	PostedByID uint  `gorm:"index;not null" json:"posted_by_id"`
	PostedBy   *User `gorm:"foreignKey:PostedByID" json:"posted_by,omitempty"`

	IsStudentGig bool   `json:"is_student_gig"`
	IsApproved   bool   `json:"is_approved"`
	Status       string `gorm:"type:varchar(10)" json:"status"`

	// denormalized counter, mutated only through atomic SQL expressions
	ApplicationCount int `json:"application_count"`

	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"-"`
}

func (j *Job) IsOpen() bool {
	return j.IsApproved && j.Status == JobStatusActive
}
