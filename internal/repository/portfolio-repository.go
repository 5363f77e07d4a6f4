package repository

import (
	"github.com/campusgig/gig_service/internal/domain"
	"gorm.io/gorm"
)

type PortfolioRepository interface {
	FindByUserID(userID uint) (*domain.Portfolio, error)
	Upsert(p *domain.Portfolio) error
	DeleteByUserID(userID uint) error
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) FindByUserID(userID uint) (*domain.Portfolio, error) {
	p := &domain.Portfolio{}
	if err := r.db.First(p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *portfolioRepository) Upsert(p *domain.Portfolio) error {
	return r.db.Save(p).Error
}

func (r *portfolioRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Portfolio{}).Error
}
