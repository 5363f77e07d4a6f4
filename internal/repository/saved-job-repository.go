package repository

import (
	"errors"

	"github.com/campusgig/gig_service/internal/domain"
	"gorm.io/gorm"
)

type SavedJobRepository interface {
	// Toggle saves the job for the user, or removes the bookmark when it
	// already exists. Returns true when the job ends up saved.
	Toggle(userID, jobID uint) (bool, error)
	ListJobIDsByUser(userID uint) ([]uint, error)
	DeleteByJob(jobID uint) error
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Toggle(userID, jobID uint) (bool, error) {
	saved := &domain.SavedJob{}
	err := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).First(saved).Error
	if err == nil {
		if err := r.db.Delete(saved).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	saved = &domain.SavedJob{UserID: userID, JobID: jobID}
	if err := r.db.Create(saved).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *savedJobRepository) ListJobIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&domain.SavedJob{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *savedJobRepository) DeleteByJob(jobID uint) error {
	return r.db.Where("job_id = ?", jobID).Delete(&domain.SavedJob{}).Error
}
