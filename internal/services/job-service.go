package services

import (
	"context"
	"errors"
	"time"

	"github.com/campusgig/gig_service/config"
	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper"
	"github.com/campusgig/gig_service/internal/interfaces"
	"github.com/campusgig/gig_service/internal/repository"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type JobService struct {
	Repo      repository.JobRepository
	SavedRepo repository.SavedJobRepository
	Uploader  interfaces.Uploader
	Producer  interfaces.ProducerHandler
	Config    config.Config
}

// CreateJob posts a new gig. The listing goes live immediately only when the
// poster is a verified recruiter (or an admin); otherwise it waits for
// approval.
func (s *JobService) CreateJob(ctx context.Context, actor *domain.User, input dto.CreateJobRequest) (*domain.Job, error) {
	if !actor.IsRecruiter() && !actor.IsAdmin() {
		return nil, errForbidden("only recruiters can post gigs")
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	job := &domain.Job{
		PostedByID:   actor.ID,
		IsStudentGig: lo.FromPtrOr(input.IsStudentGig, true),
		IsApproved:   actor.VerifiedRecruiter || actor.IsAdmin(),
		Status:       domain.JobStatusActive,
	}
	if err := s.applyJobInput(ctx, job, input); err != nil {
		return nil, err
	}

	created, err := s.Repo.Create(job)
	if err != nil {
		return nil, err
	}

	publishEvent(s.Producer, "job.created", map[string]any{
		"job_id":    created.ID,
		"posted_by": created.PostedByID,
		"approved":  created.IsApproved,
	})
	return created, nil
}

func (s *JobService) List(q dto.JobQuery) (dto.JobListResponse, error) {
	jobs, total, err := s.Repo.Search(q)
	if err != nil {
		return dto.JobListResponse{}, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return dto.JobListResponse{
		Total:   total,
		Page:    q.Page,
		PerPage: q.Limit,
		Jobs:    jobs,
	}, nil
}

func (s *JobService) GetJob(jobID uint) (*domain.Job, error) {
	job, err := s.Repo.FindByIDWithPoster(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("gig not found")
		}
		return nil, err
	}
	return job, nil
}

// ToggleSave bookmarks the job for the user, or removes the bookmark when it
// is already saved. The returned flag reports the resulting state.
func (s *JobService) ToggleSave(actor *domain.User, jobID uint) (bool, error) {
	if _, err := s.Repo.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errNotFound("gig not found")
		}
		return false, err
	}
	return s.SavedRepo.Toggle(actor.ID, jobID)
}

func (s *JobService) SavedJobs(userID uint) ([]domain.Job, error) {
	ids, err := s.SavedRepo.ListJobIDsByUser(userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.Repo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (s *JobService) MyJobs(actor *domain.User) ([]domain.Job, error) {
	if !actor.IsRecruiter() && !actor.IsAdmin() {
		return nil, errForbidden("only recruiters can view their gigs")
	}
	return s.Repo.ListByRecruiter(actor.ID)
}

func (s *JobService) ListAll() ([]domain.Job, error) {
	return s.Repo.ListAll()
}

func (s *JobService) UpdateJob(ctx context.Context, actor *domain.User, jobID uint, input dto.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.ownedJob(actor, jobID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if input.IsStudentGig != nil {
		job.IsStudentGig = *input.IsStudentGig
	}
	if err := s.applyJobInput(ctx, job, input); err != nil {
		return nil, err
	}
	if err := s.Repo.Save(job); err != nil {
		return nil, err
	}
	return job, nil
}

// SetJobStatus opens or closes a gig without touching the rest of the listing.
func (s *JobService) SetJobStatus(actor *domain.User, jobID uint, status string) (*domain.Job, error) {
	if status != domain.JobStatusActive && status != domain.JobStatusClosed {
		return nil, errBadRequest("status must be active or closed")
	}
	job, err := s.ownedJob(actor, jobID)
	if err != nil {
		return nil, err
	}
	job.Status = status
	if err := s.Repo.Save(job); err != nil {
		return nil, err
	}
	return job, nil
}

// SetJobApproval is the moderation switch; the admin-only route guards it.
func (s *JobService) SetJobApproval(jobID uint, approved bool) (*domain.Job, error) {
	job, err := s.Repo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("gig not found")
		}
		return nil, err
	}
	job.IsApproved = approved
	if err := s.Repo.Save(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) DeleteJob(actor *domain.User, jobID uint) error {
	if _, err := s.ownedJob(actor, jobID); err != nil {
		return err
	}
	if err := s.Repo.Delete(jobID, s.Config.JobDeleteCascade); err != nil {
		return err
	}
	if err := s.SavedRepo.DeleteByJob(jobID); err != nil {
		log.Warnf("clear saved entries for job %d: %v", jobID, err)
	}
	publishEvent(s.Producer, "job.deleted", map[string]any{"job_id": jobID})
	return nil
}

func (s *JobService) ownedJob(actor *domain.User, jobID uint) (*domain.Job, error) {
	job, err := s.Repo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("gig not found")
		}
		return nil, err
	}
	if job.PostedByID != actor.ID && !actor.IsAdmin() {
		return nil, errForbidden("you are not allowed to modify this gig")
	}
	return job, nil
}

// applyJobInput validates the request and writes its fields onto the job.
// Absent enum fields fall back to the micro-gig defaults.
func (s *JobService) applyJobInput(ctx context.Context, job *domain.Job, input dto.CreateJobRequest) error {
	employment := lo.Ternary(input.EmploymentType != "", input.EmploymentType, "micro-gig")
	if !lo.Contains(domain.AllowedEmploymentTypes, employment) {
		return errBadRequest("invalid employment type")
	}
	payType := lo.Ternary(input.PayType != "", input.PayType, domain.PayTypeFixed)
	if !lo.Contains(domain.AllowedPayTypes, payType) {
		return errBadRequest("invalid pay type")
	}
	remote := lo.Ternary(input.RemoteType != "", input.RemoteType, "remote")
	if !lo.Contains(domain.AllowedRemoteTypes, remote) {
		return errBadRequest("invalid remote type")
	}

	if input.PayMin < 0 || input.PayMax < 0 {
		return errBadRequest("pay must be non-negative")
	}
	payMin, payMax := input.PayMin, input.PayMax
	if payMax == 0 {
		payMax = payMin
	}
	if payMin > payMax {
		return errBadRequest("payMin cannot be greater than payMax")
	}

	minYear := lo.Ternary(input.EligibilityMinYear != 0, input.EligibilityMinYear, 1)
	maxYear := lo.Ternary(input.EligibilityMaxYear != 0, input.EligibilityMaxYear, 4)
	if minYear < 1 || maxYear > 4 || minYear > maxYear {
		return errBadRequest("invalid eligibility range")
	}

	var deadline *time.Time
	if input.Deadline != "" {
		t, err := time.Parse(time.RFC3339, input.Deadline)
		if err != nil {
			return errBadRequest("invalid deadline format")
		}
		deadline = &t
	}

	job.Title = input.Title
	job.Description = input.Description
	job.CompanyName = input.CompanyName
	job.Location = input.Location
	job.SkillsRequired = helper.NormalizeSkills(input.SkillsRequired)
	job.Category = input.Category
	job.EmploymentType = employment
	job.Experience = lo.Ternary(input.Experience != "", input.Experience, "no experience")
	job.PayType = payType
	job.PayMin = payMin
	job.PayMax = payMax
	job.DurationWeeks = input.DurationWeeks
	job.HoursPerWeek = input.HoursPerWeek
	job.RemoteType = remote
	job.Eligibility = domain.Eligibility{MinYear: minYear, MaxYear: maxYear}
	job.MaxApplicants = lo.Ternary(input.MaxApplicants > 0, input.MaxApplicants, 50)
	job.Deadline = deadline

	if input.CompanyLogo != "" {
		ref, err := resolveFileRef(ctx, s.Uploader, "company-logos", input.CompanyLogo)
		if err != nil {
			log.Warnf("upload company logo: %v", err)
		} else {
			job.CompanyLogo = ref
		}
	}
	if input.Attachments != nil {
		job.Attachments = resolveFileRefs(ctx, s.Uploader, "job-attachments", input.Attachments)
	}
	return nil
}
