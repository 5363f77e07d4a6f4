package dto

import (
	"strconv"
	"strings"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	CompanyLogo string `json:"company_logo,omitempty"` // data URI or URL
	Location    string `json:"location,omitempty"`

	SkillsRequired []string `json:"skills_required,omitempty"`
	Category       string   `json:"category,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Experience     string   `json:"experience,omitempty"`

	PayType string `json:"pay_type,omitempty"`
	PayMin  int    `json:"pay_min,omitempty"`
	PayMax  int    `json:"pay_max,omitempty"`

	DurationWeeks int `json:"duration_weeks,omitempty"`
	HoursPerWeek  int `json:"hours_per_week,omitempty"`

	RemoteType         string `json:"remote_type,omitempty"`
	EligibilityMinYear int    `json:"eligibility_min_year,omitempty"`
	EligibilityMaxYear int    `json:"eligibility_max_year,omitempty"`

	MaxApplicants int      `json:"max_applicants,omitempty"`
	Attachments   []string `json:"attachments,omitempty"` // data URIs or URLs
	Deadline      string   `json:"deadline,omitempty"`    // RFC 3339

	IsStudentGig *bool `json:"is_student_gig,omitempty"`
}

// UpdateJobRequest reuses the create shape; ownership decides who may send it.
type UpdateJobRequest = CreateJobRequest

// JobQuery is the parsed listing filter. Pointer fields distinguish "bound
// supplied" from "bound absent"; malformed numerics stay absent by design.
type JobQuery struct {
	Q           string
	StudentGigs *bool
	PayMin      *int
	PayMax      *int
	MinYear     *int
	MaxYear     *int
	Skills      []string
	Employment  string
	RemoteType  string
	Sort        string
	Page        int
	Limit       int
}

const (
	SortRecent   = "recent"
	SortPayDesc  = "payDesc"
	SortPayAsc   = "payAsc"
	SortDeadline = "deadline"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// ParseJobQuery reads the listing filter from the query string. A numeric
// parameter that fails to parse is treated as if it were not supplied.
func ParseJobQuery(ctx *fiber.Ctx) JobQuery {
	q := JobQuery{
		Q:          strings.TrimSpace(ctx.Query("q")),
		Employment: strings.TrimSpace(ctx.Query("employmentType")),
		RemoteType: strings.TrimSpace(ctx.Query("remoteType")),
		Sort:       ctx.Query("sort", SortRecent),
		Page:       1,
		Limit:      defaultPageSize,
	}

	if v := ctx.Query("studentGigs"); v != "" {
		flag := v == "true"
		q.StudentGigs = &flag
	}

	q.PayMin = parseIntParam(ctx.Query("payMin"))
	q.PayMax = parseIntParam(ctx.Query("payMax"))
	q.MinYear = parseIntParam(ctx.Query("minYear"))
	q.MaxYear = parseIntParam(ctx.Query("maxYear"))

	if skills := ctx.Query("skills"); skills != "" {
		for _, s := range strings.Split(skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Skills = append(q.Skills, s)
			}
		}
	}

	if page := parseIntParam(ctx.Query("page")); page != nil && *page >= 1 {
		q.Page = *page
	}
	if limit := parseIntParam(ctx.Query("limit")); limit != nil && *limit > 0 {
		q.Limit = *limit
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}

	return q
}

func parseIntParam(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}

type JobListResponse struct {
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"perPage"`
	Jobs    []domain.Job `json:"jobs"`
}

// PosterSummary is the slice of recruiter fields shown alongside listings.
type PosterSummary struct {
	ID                uint           `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email,omitempty"`
	Avatar            domain.FileRef `json:"avatar"`
	CompanyName       string         `json:"company_name"`
	VerifiedRecruiter bool           `json:"verified_recruiter"`
}

func NewPosterSummary(u *domain.User) *PosterSummary {
	if u == nil {
		return nil
	}
	return &PosterSummary{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Avatar:            u.Avatar,
		CompanyName:       u.CompanyName,
		VerifiedRecruiter: u.VerifiedRecruiter,
	}
}
