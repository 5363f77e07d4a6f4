package domain

import "time"

const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Availability is the date window the applicant can work in.
type Availability struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Application links one Job and one student. The unique index on
// (job_id, applicant_id) is what makes the duplicate-application check safe
// under concurrent requests: the second insert fails at the store instead of
// racing past a check-then-insert.
type Application struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	JobID       uint  `gorm:"uniqueIndex:idx_job_applicant;not null" json:"job_id"`
	ApplicantID uint  `gorm:"uniqueIndex:idx_job_applicant;not null" json:"applicant_id"`
	Job         *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant   *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`

	// snapshot of the student's resume at apply time, not a live reference
	ApplicantResume FileRef `gorm:"embedded;embeddedPrefix:resume_" json:"applicant_resume"`

	CoverLetter      string       `gorm:"size:2000" json:"cover_letter"`
	Availability     Availability `gorm:"embedded;embeddedPrefix:availability_" json:"availability"`
	ExpectedEarnings int          `json:"expected_earnings"`
	PortfolioLink    string       `json:"portfolio_link,omitempty"`
	WorkSamples      []FileRef    `gorm:"serializer:json" json:"work_samples"`

	Status    string    `gorm:"type:varchar(10)" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// IsTerminal reports whether the status admits no further transition.
func (a *Application) IsTerminal() bool {
	return a.Status == ApplicationAccepted || a.Status == ApplicationRejected
}
