package repository

import (
	"github.com/campusgig/gig_service/internal/domain"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(app *domain.Application) (*domain.Application, error)
	FindByID(id uint) (*domain.Application, error)
	FindByIDWithRefs(id uint) (*domain.Application, error)
	FindByJobAndApplicant(jobID, applicantID uint) (*domain.Application, error)
	ListByApplicant(applicantID uint) ([]domain.Application, error)
	ListByJobIDs(jobIDs []uint) ([]domain.Application, error)
	ListAll() ([]domain.Application, error)
	// UpdateStatus finalizes a pending application. It reports false when the
	// row was no longer pending, so two concurrent decisions cannot both win.
	UpdateStatus(id uint, status string) (bool, error)
	Delete(id uint) error
	CountByJob(jobID uint) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *domain.Application) (*domain.Application, error) {
	if err := r.db.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) FindByID(id uint) (*domain.Application, error) {
	app := &domain.Application{}
	if err := r.db.First(app, id).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) FindByIDWithRefs(id uint) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.Preload("Job").Preload("Job.PostedBy").Preload("Applicant").
		First(app, id).Error
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) FindByJobAndApplicant(jobID, applicantID uint) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(app).Error
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) ListByApplicant(applicantID uint) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Where("applicant_id = ?", applicantID).
		Preload("Job").Preload("Job.PostedBy").Preload("Applicant").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListByJobIDs(jobIDs []uint) ([]domain.Application, error) {
	var apps []domain.Application
	if len(jobIDs) == 0 {
		return apps, nil
	}
	err := r.db.Where("job_id IN ?", jobIDs).
		Preload("Job").Preload("Applicant").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListAll() ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Preload("Job").Preload("Applicant").
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(id uint, status string) (bool, error) {
	res := r.db.Model(&domain.Application{}).
		Where("id = ? AND status = ?", id, domain.ApplicationPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *applicationRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Application{}, id).Error
}

func (r *applicationRepository) CountByJob(jobID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
