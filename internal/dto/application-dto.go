package dto

import (
	"time"

	"github.com/campusgig/gig_service/internal/domain"
)

type CreateApplicationRequest struct {
	CoverLetter      string   `json:"cover_letter" validate:"omitempty,max=2000"`
	AvailabilityFrom string   `json:"availability_from,omitempty"` // RFC 3339
	AvailabilityTo   string   `json:"availability_to,omitempty"`
	ExpectedEarnings int      `json:"expected_earnings,omitempty"`
	PortfolioLink    string   `json:"portfolio_link,omitempty"`
	WorkSamples      []string `json:"work_samples,omitempty"` // data URIs or URLs
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ApplicantSummary is what recruiters see of a student next to an application.
type ApplicantSummary struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	College string         `json:"college"`
	Year    int            `json:"year"`
	Skills  []string       `json:"skills"`
	Avatar  domain.FileRef `json:"avatar"`
	Resume  domain.FileRef `json:"resume"`
}

func NewApplicantSummary(u *domain.User) *ApplicantSummary {
	if u == nil {
		return nil
	}
	return &ApplicantSummary{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		College: u.College,
		Year:    u.Year,
		Skills:  u.Skills,
		Avatar:  u.Avatar,
		Resume:  u.Resume,
	}
}

// JobSummary is the slice of job fields shown next to an application.
type JobSummary struct {
	ID             uint           `json:"id"`
	Title          string         `json:"title"`
	CompanyName    string         `json:"company_name"`
	Location       string         `json:"location"`
	Category       string         `json:"category"`
	EmploymentType string         `json:"employment_type"`
	RemoteType     string         `json:"remote_type"`
	PayType        string         `json:"pay_type"`
	PayMin         int            `json:"pay_min"`
	PayMax         int            `json:"pay_max"`
	Status         string         `json:"status"`
	PostedBy       *PosterSummary `json:"posted_by,omitempty"`
}

func NewJobSummary(j *domain.Job) *JobSummary {
	if j == nil {
		return nil
	}
	return &JobSummary{
		ID:             j.ID,
		Title:          j.Title,
		CompanyName:    j.CompanyName,
		Location:       j.Location,
		Category:       j.Category,
		EmploymentType: j.EmploymentType,
		RemoteType:     j.RemoteType,
		PayType:        j.PayType,
		PayMin:         j.PayMin,
		PayMax:         j.PayMax,
		Status:         j.Status,
		PostedBy:       NewPosterSummary(j.PostedBy),
	}
}

// ApplicationView is one application shaped for display in either the student
// or the recruiter list.
type ApplicationView struct {
	ID               uint                `json:"id"`
	Status           string              `json:"status"`
	CoverLetter      string              `json:"cover_letter"`
	ExpectedEarnings int                 `json:"expected_earnings"`
	PortfolioLink    string              `json:"portfolio_link"`
	WorkSamples      []domain.FileRef    `json:"work_samples"`
	ApplicantResume  domain.FileRef      `json:"applicant_resume"`
	Availability     domain.Availability `json:"availability"`
	CreatedAt        string              `json:"created_at"`
	Job              *JobSummary         `json:"job,omitempty"`
	Applicant        *ApplicantSummary   `json:"applicant,omitempty"`
}

func NewApplicationView(a *domain.Application) ApplicationView {
	return ApplicationView{
		ID:               a.ID,
		Status:           a.Status,
		CoverLetter:      a.CoverLetter,
		ExpectedEarnings: a.ExpectedEarnings,
		PortfolioLink:    a.PortfolioLink,
		WorkSamples:      a.WorkSamples,
		ApplicantResume:  a.ApplicantResume,
		Availability:     a.Availability,
		CreatedAt:        a.CreatedAt.UTC().Format(time.RFC3339),
		Job:              NewJobSummary(a.Job),
		Applicant:        NewApplicantSummary(a.Applicant),
	}
}
