package services

import (
	"context"
	"errors"
	"time"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/campusgig/gig_service/internal/helper"
	"github.com/campusgig/gig_service/internal/interfaces"
	"github.com/campusgig/gig_service/internal/repository"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ApplicationService struct {
	Repo     repository.ApplicationRepository
	JobRepo  repository.JobRepository
	Uploader interfaces.Uploader
	Producer interfaces.ProducerHandler
}

// Create submits an application to a gig. Preconditions are checked in a
// fixed order so the caller always gets the earliest failure: role, gig
// existence, gig open, deadline, capacity, then duplicate.
func (s *ApplicationService) Create(ctx context.Context, actor *domain.User, jobID uint, input dto.CreateApplicationRequest) (*domain.Application, error) {
	if !actor.IsStudent() {
		return nil, errForbidden("only students can apply to gigs")
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	job, err := s.JobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("gig not found")
		}
		return nil, err
	}
	if !job.IsOpen() {
		return nil, errBadRequest("this gig is not open for applications")
	}
	if job.Deadline != nil && time.Now().After(*job.Deadline) {
		return nil, errBadRequest("application deadline has passed")
	}
	if job.MaxApplicants > 0 && job.ApplicationCount >= job.MaxApplicants {
		return nil, errBadRequest("this gig has reached the maximum number of applicants")
	}
	if _, err := s.Repo.FindByJobAndApplicant(jobID, actor.ID); err == nil {
		return nil, errBadRequest("you have already applied to this gig")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	availability, err := parseAvailability(input.AvailabilityFrom, input.AvailabilityTo)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: actor.ID,
		// the resume travels with the application as a snapshot; a student
		// without one applies with an empty placeholder
		ApplicantResume:  actor.Resume,
		CoverLetter:      input.CoverLetter,
		Availability:     availability,
		ExpectedEarnings: input.ExpectedEarnings,
		PortfolioLink:    input.PortfolioLink,
		WorkSamples:      resolveFileRefs(ctx, s.Uploader, "work-samples", input.WorkSamples),
		Status:           domain.ApplicationPending,
	}

	if _, err := s.Repo.Create(app); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, errBadRequest("you have already applied to this gig")
		}
		return nil, err
	}

	if err := s.JobRepo.IncrementApplicationCount(jobID, 1); err != nil {
		log.Errorf("increment application count for job %d: %v", jobID, err)
	}

	publishEvent(s.Producer, "application.created", map[string]any{
		"application_id": app.ID,
		"job_id":         jobID,
		"applicant_id":   actor.ID,
	})
	return app, nil
}

// Get returns one application; only the applicant, the gig's poster, or an
// admin may see it.
func (s *ApplicationService) Get(actor *domain.User, appID uint) (dto.ApplicationView, error) {
	app, err := s.findWithRefs(appID)
	if err != nil {
		return dto.ApplicationView{}, err
	}
	if !s.canView(actor, app) {
		return dto.ApplicationView{}, errForbidden("you are not allowed to view this application")
	}
	return dto.NewApplicationView(app), nil
}

// UpdateStatus moves a pending application to accepted or rejected. Both are
// final: once set, the status never changes again.
func (s *ApplicationService) UpdateStatus(actor *domain.User, appID uint, status string) (dto.ApplicationView, error) {
	if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
		return dto.ApplicationView{}, errBadRequest("status must be accepted or rejected")
	}

	app, err := s.findWithRefs(appID)
	if err != nil {
		return dto.ApplicationView{}, err
	}
	if !s.isPoster(actor, app) && !actor.IsAdmin() {
		return dto.ApplicationView{}, errForbidden("you are not allowed to update this application")
	}
	if app.IsTerminal() {
		return dto.ApplicationView{}, errBadRequest("application status is final")
	}

	updated, err := s.Repo.UpdateStatus(appID, status)
	if err != nil {
		return dto.ApplicationView{}, err
	}
	if !updated {
		// lost the race to another decision
		return dto.ApplicationView{}, errBadRequest("application status is final")
	}
	app.Status = status

	publishEvent(s.Producer, "application.status_changed", map[string]any{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"status":         status,
	})
	return dto.NewApplicationView(app), nil
}

// Delete withdraws an application. The applicant, the gig's poster, and
// admins may delete; the gig's applicant counter is decremented and floored
// at zero.
func (s *ApplicationService) Delete(actor *domain.User, appID uint) error {
	app, err := s.findWithRefs(appID)
	if err != nil {
		return err
	}
	if app.ApplicantID != actor.ID && !s.isPoster(actor, app) && !actor.IsAdmin() {
		return errForbidden("you are not allowed to delete this application")
	}

	if err := s.Repo.Delete(appID); err != nil {
		return err
	}
	if err := s.JobRepo.IncrementApplicationCount(app.JobID, -1); err != nil {
		log.Errorf("decrement application count for job %d: %v", app.JobID, err)
	}

	publishEvent(s.Producer, "application.deleted", map[string]any{
		"application_id": appID,
		"job_id":         app.JobID,
	})
	return nil
}

// ListForActor shapes the application list by role: students see their own
// applications, recruiters see applications across their own gigs, admins see
// everything.
func (s *ApplicationService) ListForActor(actor *domain.User) ([]dto.ApplicationView, error) {
	var apps []domain.Application
	var err error

	switch {
	case actor.IsAdmin():
		apps, err = s.Repo.ListAll()
	case actor.IsRecruiter():
		var jobIDs []uint
		jobIDs, err = s.JobRepo.ListIDsByRecruiter(actor.ID)
		if err == nil {
			apps, err = s.Repo.ListByJobIDs(jobIDs)
		}
	default:
		apps, err = s.Repo.ListByApplicant(actor.ID)
	}
	if err != nil {
		return nil, err
	}

	return lo.Map(apps, func(a domain.Application, _ int) dto.ApplicationView {
		return dto.NewApplicationView(&a)
	}), nil
}

func (s *ApplicationService) findWithRefs(appID uint) (*domain.Application, error) {
	app, err := s.Repo.FindByIDWithRefs(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("application not found")
		}
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) isPoster(actor *domain.User, app *domain.Application) bool {
	return app.Job != nil && app.Job.PostedByID == actor.ID
}

func (s *ApplicationService) canView(actor *domain.User, app *domain.Application) bool {
	return app.ApplicantID == actor.ID || s.isPoster(actor, app) || actor.IsAdmin()
}

func parseAvailability(from, to string) (domain.Availability, error) {
	var a domain.Availability
	if from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return a, errBadRequest("invalid availability date")
		}
		a.From = &t
	}
	if to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return a, errBadRequest("invalid availability date")
		}
		a.To = &t
	}
	return a, nil
}
