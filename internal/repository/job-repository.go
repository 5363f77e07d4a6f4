package repository

import (
	"encoding/json"
	"strings"

	"github.com/campusgig/gig_service/internal/domain"
	"github.com/campusgig/gig_service/internal/dto"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *domain.Job) (*domain.Job, error)
	FindByID(jobID uint) (*domain.Job, error)
	FindByIDWithPoster(jobID uint) (*domain.Job, error)
	Save(job *domain.Job) error
	// Delete removes the job and, when cascade is set, its applications in
	// the same transaction.
	Delete(jobID uint, cascade bool) error
	Search(q dto.JobQuery) ([]domain.Job, int64, error)
	ListByRecruiter(recruiterID uint) ([]domain.Job, error)
	ListIDsByRecruiter(recruiterID uint) ([]uint, error)
	ListAll() ([]domain.Job, error)
	FindByIDs(ids []uint) ([]domain.Job, error)
	// IncrementApplicationCount adds delta atomically; decrements are floored
	// at zero so the counter can never go negative.
	IncrementApplicationCount(jobID uint, delta int) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *domain.Job) (*domain.Job, error) {
	if err := r.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) FindByID(jobID uint) (*domain.Job, error) {
	job := &domain.Job{}
	if err := r.db.First(job, jobID).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) FindByIDWithPoster(jobID uint) (*domain.Job, error) {
	job := &domain.Job{}
	if err := r.db.Preload("PostedBy").First(job, jobID).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) Save(job *domain.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(jobID uint, cascade bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if cascade {
			if err := tx.Where("job_id = ?", jobID).Delete(&domain.Application{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Job{}, jobID).Error
	})
}

// applyFilter composes the listing predicate. Every clause is additive; the
// base predicate (approved + active) is always present.
func (r *jobRepository) applyFilter(q dto.JobQuery) *gorm.DB {
	tx := r.db.Model(&domain.Job{}).
		Where("is_approved = ? AND status = ?", true, domain.JobStatusActive).
		Where("is_student_gig = ?", lo.FromPtrOr(q.StudentGigs, true))

	if q.PayMin != nil {
		tx = tx.Where("pay_max >= ?", *q.PayMin)
	}
	if q.PayMax != nil {
		tx = tx.Where("pay_min <= ?", *q.PayMax)
	}
	if q.MinYear != nil {
		tx = tx.Where("eligibility_min_year <= ?", *q.MinYear)
	}
	if q.MaxYear != nil {
		tx = tx.Where("eligibility_max_year >= ?", *q.MaxYear)
	}
	// conjunctive "all" match against the JSON-serialized skills column
	for _, skill := range q.Skills {
		tx = tx.Where(`skills_required LIKE ? ESCAPE '\'`, "%"+likePattern(skill)+"%")
	}
	if q.Employment != "" {
		tx = tx.Where("employment_type = ?", q.Employment)
	}
	if q.RemoteType != "" {
		tx = tx.Where("remote_type = ?", q.RemoteType)
	}
	if q.Q != "" {
		// LOWER on both sides keeps the match case-insensitive under both
		// the postgres and sqlite drivers
		pattern := "%" + strings.ToLower(q.Q) + "%"
		tx = tx.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?)", pattern, pattern, pattern)
	}
	return tx
}

// likePattern renders a skill exactly as the JSON serializer stores it (quoted
// and escaped) and then neutralizes LIKE wildcards, so a skill containing
// %, _ or quotes matches only itself.
func likePattern(skill string) string {
	encoded, _ := json.Marshal(skill)
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(string(encoded))
}

func (r *jobRepository) Search(q dto.JobQuery) ([]domain.Job, int64, error) {
	var total int64
	if err := r.applyFilter(q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := r.applyFilter(q)
	switch q.Sort {
	case dto.SortPayDesc:
		tx = tx.Order("pay_max DESC")
	case dto.SortPayAsc:
		tx = tx.Order("pay_min ASC")
	case dto.SortDeadline:
		tx = tx.Order("deadline ASC")
	default: // recent; secondary id ordering keeps pages deterministic
		tx = tx.Order("created_at DESC, id DESC")
	}

	var jobs []domain.Job
	err := tx.Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Preload("PostedBy").
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) ListByRecruiter(recruiterID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.Where("posted_by_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) ListIDsByRecruiter(recruiterID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&domain.Job{}).
		Where("posted_by_id = ?", recruiterID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *jobRepository) ListAll() ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) FindByIDs(ids []uint) ([]domain.Job, error) {
	var jobs []domain.Job
	if len(ids) == 0 {
		return jobs, nil
	}
	if err := r.db.Where("id IN ?", ids).Preload("PostedBy").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) IncrementApplicationCount(jobID uint, delta int) error {
	expr := gorm.Expr("application_count + ?", delta)
	if delta < 0 {
		expr = gorm.Expr("CASE WHEN application_count + ? < 0 THEN 0 ELSE application_count + ? END", delta, delta)
	}
	return r.db.Model(&domain.Job{}).
		Where("id = ?", jobID).
		UpdateColumn("application_count", expr).Error
}
