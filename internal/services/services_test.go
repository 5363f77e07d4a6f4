package services

import (
	"fmt"
	"testing"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/helper"
	"github.com/campusgig/gig_service/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Job{},
		&domain.Application{},
		&domain.Portfolio{},
		&domain.SavedJob{},
	))
	return db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role string) *domain.User {
	t.Helper()
	userSeq++
	user := &domain.User{
		Name:  fmt.Sprintf("user-%d", userSeq),
		Email: fmt.Sprintf("user-%d@example.com", userSeq),
		Role:  role,
	}
	if role == domain.RoleStudent {
		user.College = "Test College"
		user.Year = 2
	}
	if role == domain.RoleRecruiter {
		user.CompanyName = "Test Co"
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, posterID uint, mut func(*domain.Job)) *domain.Job {
	t.Helper()
	job := &domain.Job{
		Title:          "Flyer design",
		Description:    "Design a flyer for the campus fest",
		CompanyName:    "Test Co",
		EmploymentType: "micro-gig",
		Experience:     "no experience",
		PayType:        domain.PayTypeFixed,
		PayMin:         100,
		PayMax:         500,
		RemoteType:     "remote",
		Eligibility:    domain.Eligibility{MinYear: 1, MaxYear: 4},
		MaxApplicants:  50,
		PostedByID:     posterID,
		IsStudentGig:   true,
		IsApproved:     true,
		Status:         domain.JobStatusActive,
	}
	if mut != nil {
		mut(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func newJobService(db *gorm.DB) *JobService {
	return &JobService{
		Repo:      repository.NewJobRepository(db),
		SavedRepo: repository.NewSavedJobRepository(db),
	}
}

func newApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		Repo:    repository.NewApplicationRepository(db),
		JobRepo: repository.NewJobRepository(db),
	}
}

func newUserService(db *gorm.DB) *UserService {
	return &UserService{
		Repo:          repository.NewUserRepository(db),
		PortfolioRepo: repository.NewPortfolioRepository(db),
		Auth:          helper.SetupAuth("test-secret"),
	}
}

func requireServiceError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	svcErr, ok := AsError(err)
	require.True(t, ok, "expected a service error, got %v", err)
	require.Equal(t, status, svcErr.Status)
	require.Equal(t, msg, svcErr.Message)
}
